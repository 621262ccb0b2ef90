package regrep

// byteSet is a set of bytes, represented as a 256-bit bitmap. The core spec
// treats input as 8-bit code units rather than Unicode codepoints, so a
// bitmap over the full byte range is simpler and cheaper than the range-list
// representation a Unicode-aware engine needs.
type byteSet [4]uint64

func (s *byteSet) add(b byte) {
	s[b>>6] |= 1 << (b & 63)
}

func (s byteSet) contains(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}

func (s byteSet) empty() bool {
	return s[0] == 0 && s[1] == 0 && s[2] == 0 && s[3] == 0
}

func newByteSetRange(lo, hi byte) byteSet {
	var s byteSet
	for c := int(lo); c <= int(hi); c++ {
		s.add(byte(c))
	}
	return s
}

// union folds another set into s in place, so the built-in \d and \w
// classes below can be assembled from several ranges.
func (s *byteSet) union(other byteSet) {
	for i := range s {
		s[i] |= other[i]
	}
}

var digitSet = newByteSetRange('0', '9')

var wordSet = func() byteSet {
	var s byteSet
	s.union(newByteSetRange('a', 'z'))
	s.union(newByteSetRange('A', 'Z'))
	s.union(digitSet)
	s.add('_')
	return s
}()

func isDigit(b byte) bool {
	return digitSet.contains(b)
}

func isWordByte(b byte) bool {
	return wordSet.contains(b)
}
