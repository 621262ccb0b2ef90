package regrep

// Regexp is a compiled pattern. It is safe for concurrent use by multiple
// goroutines: the underlying Tree is read-only after Compile returns, and
// every match attempt owns its own capture state.
type Regexp struct {
	tree *Tree
	pf   *prefilter
}

// Compile parses pattern and returns a Regexp that can be applied against
// byte slices or strings. It returns a *SyntaxError if pattern is malformed.
func Compile(pattern string) (*Regexp, error) {
	tree, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	return &Regexp{tree: tree, pf: buildPrefilter(tree)}, nil
}

// MustCompile is like Compile but panics if pattern cannot be parsed. It
// simplifies safe initialization of global variables holding patterns.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic("regrep: MustCompile: " + err.Error())
	}
	return re
}

// Match reports whether b contains a match for r.
func (r *Regexp) Match(b []byte) bool {
	return isMatchPrefiltered(r.tree, b, r.pf)
}

// MatchString reports whether s contains a match for r.
func (r *Regexp) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// NumGroups returns the number of capturing groups in the compiled pattern.
func (r *Regexp) NumGroups() int {
	return r.tree.NumGroups
}
