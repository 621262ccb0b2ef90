package regrep

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func mustTree(t *testing.T, pattern string) *Tree {
	t.Helper()
	tree, err := Parse(pattern)
	assert.NilError(t, err)
	return tree
}

func TestMatchFromCaptureReflectsMostRecentCompletion(t *testing.T) {
	// Within a quantified group, the capture belongs to the branch that
	// ultimately lets the whole pattern succeed, not necessarily the
	// longest one tried first.
	tree := mustTree(t, `^(a)+$`)
	input := []byte("aaa")
	state := newCaptures(tree.NumGroups)
	ok := matchSequence(tree.Atoms, 0, input, 0, state)
	assert.Assert(t, ok)

	ends := collectEnds(tree.Atoms, 0, input, 0, newCaptures(tree.NumGroups))
	assert.Equal(t, len(ends), 1)
	assert.Equal(t, ends[0].pos, 3)
	assert.DeepEqual(t, ends[0].state[1], capture{start: 2, end: 3}, cmp.AllowUnexported(capture{}))
}

func TestMatchSequenceEmptyAtomsSucceedsImmediately(t *testing.T) {
	assert.Assert(t, matchSequence(nil, 0, []byte("x"), 0, nil))
}

func TestAdvanceOneSimpleAtoms(t *testing.T) {
	input := []byte("a1_ ")
	cases := []struct {
		name string
		atom Atom
		pos  int
		want bool
	}{
		{"literal-hit", Atom{Kind: KindLiteral, Literal: 'a'}, 0, true},
		{"literal-miss", Atom{Kind: KindLiteral, Literal: 'a'}, 1, false},
		{"digit-hit", Atom{Kind: KindDigit}, 1, true},
		{"digit-miss", Atom{Kind: KindDigit}, 0, false},
		{"word-underscore", Atom{Kind: KindWord}, 2, true},
		{"word-space-miss", Atom{Kind: KindWord}, 3, false},
		{"dot-any", Atom{Kind: KindDot}, 3, true},
		{"start-anchor-at-zero", Atom{Kind: KindStartAnchor}, 0, true},
		{"start-anchor-elsewhere", Atom{Kind: KindStartAnchor}, 1, false},
		{"end-anchor-at-len", Atom{Kind: KindEndAnchor}, 4, true},
		{"end-anchor-elsewhere", Atom{Kind: KindEndAnchor}, 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			steps := advanceOne(tc.atom, input, tc.pos, nil)
			assert.Equal(t, len(steps) > 0, tc.want)
		})
	}
}

func TestReachableFrontierStopsOnZeroWidthAtom(t *testing.T) {
	// StartAnchor never advances pos, so a naive frontier walk would spin
	// forever; reachableFrontier must terminate.
	done := make(chan []step, 1)
	go func() {
		done <- reachableFrontier(Atom{Kind: KindStartAnchor}, []byte("abc"), 0, nil)
	}()
	select {
	case steps := <-done:
		assert.Assert(t, len(steps) > 0)
	case <-time.After(time.Second):
		t.Fatal("reachableFrontier did not terminate on a zero-width atom")
	}
}

func TestCapturesCloneIsIndependent(t *testing.T) {
	c := newCaptures(2)
	c[1] = capture{start: 0, end: 3}
	clone := c.clone()
	clone[1] = capture{start: 5, end: 9}
	assert.DeepEqual(t, c[1], capture{start: 0, end: 3}, cmp.AllowUnexported(capture{}))
	assert.DeepEqual(t, clone[1], capture{start: 5, end: 9}, cmp.AllowUnexported(capture{}))
}
