// Package regrep is a small regular-expression engine in the spirit of
// classic grep: anchors, character classes, alternation, grouping, greedy
// "+"/"?" quantifiers, and back-references over 8-bit input. It does not
// attempt POSIX or PCRE coverage, Unicode-aware classes, lookaround,
// non-greedy quantifiers, or counted repetition.
package regrep
