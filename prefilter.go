package regrep

import "github.com/coregx/ahocorasick"

// prefilter narrows the unanchored search driver's candidate starting
// offsets ahead of the backtracking matcher, using a multi-pattern
// Aho-Corasick automaton over a pattern's mandatory literal prefix. It never
// participates in deciding whether a match exists — every offset it
// surfaces is still handed to matchFrom for verification — but offsets it
// does not surface are never tried, so the extracted literals must be a
// mandatory prefix of every match for the result to stay unchanged.
type prefilter struct {
	automaton *ahocorasick.Automaton
}

// find returns the start of the first occurrence of any of the prefilter's
// literals at or after at.
func (p *prefilter) find(input []byte, at int) (start int, ok bool) {
	m := p.automaton.Find(input, at)
	if m == nil {
		return 0, false
	}
	return m.Start, true
}

// buildPrefilter extracts a mandatory literal prefix from tree, if one
// exists, and compiles it into a prefilter. It returns nil when no such
// prefix can be extracted, or when the pattern is already start-anchored
// (where a prefilter buys nothing: the driver only ever tries position 0).
//
// Two shapes are recognized, mirroring the UseAhoCorasick / anchored-literal
// strategies of a full-featured NFA/DFA regex engine scaled down to this
// engine's backtracker:
//
//   - a leading run of Exactly-one literal atoms, e.g. "log" in "log.ine",
//     which yields a single required literal;
//   - a leading Exactly-one Group whose every alternative is itself a run of
//     Exactly-one literal atoms, e.g. "(cat|dog)" in "(cat|dog)s?", which
//     yields one required literal per alternative.
//
// Anything else (a class, a backref, a nested alternative with its own
// quantifiers, an empty alternative) is left unhandled and causes
// buildPrefilter to bail out with nil rather than guess.
func buildPrefilter(tree *Tree) *prefilter {
	if tree.AnchoredStart || len(tree.Atoms) == 0 {
		return nil
	}

	var literals [][]byte
	first := tree.Atoms[0]
	switch {
	case first.Kind == KindLiteral && first.Quant == QuantOne:
		var buf []byte
		for _, a := range tree.Atoms {
			if a.Kind != KindLiteral || a.Quant != QuantOne {
				break
			}
			buf = append(buf, a.Literal)
		}
		literals = [][]byte{buf}
	case first.Kind == KindGroup && first.Quant == QuantOne:
		for _, alt := range first.Group.Alternatives {
			lit, ok := literalRun(alt)
			if !ok || len(lit) == 0 {
				return nil
			}
			literals = append(literals, lit)
		}
	default:
		return nil
	}

	if len(literals) == 0 {
		return nil
	}
	for _, lit := range literals {
		if len(lit) == 0 {
			return nil
		}
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern(lit)
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &prefilter{automaton: automaton}
}

// literalRun reports whether every atom in atoms is an Exactly-one literal,
// returning the concatenated bytes if so.
func literalRun(atoms []Atom) ([]byte, bool) {
	buf := make([]byte, 0, len(atoms))
	for _, a := range atoms {
		if a.Kind != KindLiteral || a.Quant != QuantOne {
			return nil, false
		}
		buf = append(buf, a.Literal)
	}
	return buf, true
}
