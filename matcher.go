package regrep

import "bytes"

// capture is the byte range [start, end) captured by a group, or {-1, -1}
// if the group has not yet completed on this branch.
type capture struct {
	start, end int
}

// captures holds one capture per group, 1-indexed by group id (index 0 is
// unused). It is threaded through the matcher by value: nothing ever writes
// through an existing captures slice in place. A branch that needs to record
// a group completion calls clone() first, so sibling branches that still
// hold the pre-clone slice see it unchanged — backtracking past a group
// reverts its capture for free, without an explicit undo log.
type captures []capture

func newCaptures(numGroups int) captures {
	c := make(captures, numGroups+1)
	for i := range c {
		c[i] = capture{start: -1, end: -1}
	}
	return c
}

func (c captures) clone() captures {
	out := make(captures, len(c))
	copy(out, c)
	return out
}

// step is one candidate outcome of advancing through part of a pattern: a
// position in the input together with the capture state at that position.
type step struct {
	pos   int
	state captures
}

// advanceOne attempts one occurrence of a single atom starting at pos. It
// returns every viable outcome; for most atom kinds that is at most one
// step, but a Group may yield many, one per alternative and per way that
// alternative's own quantifiers can complete.
func advanceOne(atom Atom, input []byte, pos int, state captures) []step {
	switch atom.Kind {
	case KindStartAnchor:
		if pos == 0 {
			return []step{{pos, state}}
		}
		return nil
	case KindEndAnchor:
		if pos == len(input) {
			return []step{{pos, state}}
		}
		return nil
	case KindLiteral:
		if pos < len(input) && input[pos] == atom.Literal {
			return []step{{pos + 1, state}}
		}
		return nil
	case KindDigit:
		if pos < len(input) && isDigit(input[pos]) {
			return []step{{pos + 1, state}}
		}
		return nil
	case KindWord:
		if pos < len(input) && isWordByte(input[pos]) {
			return []step{{pos + 1, state}}
		}
		return nil
	case KindDot:
		if pos < len(input) {
			return []step{{pos + 1, state}}
		}
		return nil
	case KindPosClass:
		if pos < len(input) && atom.Class.contains(input[pos]) {
			return []step{{pos + 1, state}}
		}
		return nil
	case KindNegClass:
		if pos < len(input) && !atom.Class.contains(input[pos]) {
			return []step{{pos + 1, state}}
		}
		return nil
	case KindBackref:
		if atom.Backref <= 0 || atom.Backref >= len(state) {
			return nil
		}
		c := state[atom.Backref]
		if c.start == -1 {
			return nil
		}
		n := c.end - c.start
		if n == 0 {
			return []step{{pos, state}}
		}
		if pos+n > len(input) || !bytes.Equal(input[pos:pos+n], input[c.start:c.end]) {
			return nil
		}
		return []step{{pos + n, state}}
	case KindGroup:
		var results []step
		for _, alt := range atom.Group.Alternatives {
			for _, end := range collectEnds(alt, 0, input, pos, state) {
				s := end.state.clone()
				s[atom.Group.ID] = capture{start: pos, end: end.pos}
				results = append(results, step{end.pos, s})
			}
		}
		return results
	default:
		return nil
	}
}

// reachableFrontier computes every position (with capture state) reachable
// by one or more consecutive occurrences of atom, for the One-or-more
// quantifier. Results are ordered greedily: outcomes reached by more
// occurrences come first. The occurrence count is capped implicitly by
// tracking which positions have already been reached, so an atom capable of
// matching the empty string (e.g. a quantified group with an optional body)
// cannot loop forever.
func reachableFrontier(atom Atom, input []byte, pos int, state captures) []step {
	var levels [][]step
	frontier := []step{{pos, state}}
	seen := map[int]bool{pos: true}

	for {
		var next []step
		for _, f := range frontier {
			next = append(next, advanceOne(atom, input, f.pos, f.state)...)
		}
		if len(next) == 0 {
			break
		}
		levels = append(levels, next)

		progressed := false
		for _, s := range next {
			if !seen[s.pos] {
				seen[s.pos] = true
				progressed = true
			}
		}
		frontier = next
		if !progressed {
			break
		}
	}

	var result []step
	for i := len(levels) - 1; i >= 0; i-- {
		result = append(result, levels[i]...)
	}
	return result
}

// collectEnds enumerates every (position, state) at which atoms[idx:] can
// complete matching against input, starting from pos. Unlike matchSequence
// it does not short-circuit: a Group atom needs every completion of its
// alternatives, because which one lets the rest of the overall pattern
// succeed isn't known until that rest is tried.
func collectEnds(atoms []Atom, idx int, input []byte, pos int, state captures) []step {
	if idx == len(atoms) {
		return []step{{pos, state}}
	}

	atom := atoms[idx]
	var occurrences []step
	switch atom.Quant {
	case QuantQuestion:
		occurrences = append(advanceOne(atom, input, pos, state), step{pos, state})
	case QuantPlus:
		occurrences = reachableFrontier(atom, input, pos, state)
	default:
		occurrences = advanceOne(atom, input, pos, state)
	}

	var results []step
	for _, o := range occurrences {
		results = append(results, collectEnds(atoms, idx+1, input, o.pos, o.state)...)
	}
	return results
}

// matchSequence matches atoms[idx:] against input[pos:], returning on the
// first successful completion. Quantifier handling mirrors collectEnds, but
// stops exploring as soon as one branch lets the rest of the sequence
// succeed, which is what makes the common case linear instead of
// exponential.
func matchSequence(atoms []Atom, idx int, input []byte, pos int, state captures) bool {
	if idx == len(atoms) {
		return true
	}

	atom := atoms[idx]
	switch atom.Quant {
	case QuantQuestion:
		for _, s := range advanceOne(atom, input, pos, state) {
			if matchSequence(atoms, idx+1, input, s.pos, s.state) {
				return true
			}
		}
		return matchSequence(atoms, idx+1, input, pos, state)
	case QuantPlus:
		for _, s := range reachableFrontier(atom, input, pos, state) {
			if matchSequence(atoms, idx+1, input, s.pos, s.state) {
				return true
			}
		}
		return false
	default:
		for _, s := range advanceOne(atom, input, pos, state) {
			if matchSequence(atoms, idx+1, input, s.pos, s.state) {
				return true
			}
		}
		return false
	}
}

// matchFrom reports whether some prefix of input[start:] is matched by the
// entire tree.
func matchFrom(tree *Tree, input []byte, start int) bool {
	return matchSequence(tree.Atoms, 0, input, start, newCaptures(tree.NumGroups))
}
