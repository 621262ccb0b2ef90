package regrep

// IsMatch reports whether some substring of input is matched by tree,
// applying the anchoring rules derived from the tree's first and last
// atoms. A start-anchored pattern only ever tries position 0; an
// end-anchored-only pattern is unanchored at the driver level because the
// matcher itself enforces the end anchor as the last atom in the sequence.
func IsMatch(tree *Tree, input []byte) bool {
	if tree.AnchoredStart {
		return matchFrom(tree, input, 0)
	}
	for start := 0; start <= len(input); start++ {
		if matchFrom(tree, input, start) {
			return true
		}
	}
	return false
}

// isMatchPrefiltered is IsMatch with an optional literal prefilter ahead of
// the byte-by-byte start position scan. It never changes the result: every
// candidate offset the prefilter reports is still verified by matchFrom.
func isMatchPrefiltered(tree *Tree, input []byte, pf *prefilter) bool {
	if tree.AnchoredStart || pf == nil {
		return IsMatch(tree, input)
	}
	at := 0
	for at <= len(input) {
		start, ok := pf.find(input, at)
		if !ok {
			return false
		}
		if matchFrom(tree, input, start) {
			return true
		}
		at = start + 1
	}
	return false
}
