package msbfs

import "math/bits"

// SourceSet enumerates the sources encoded in a 32-bit mask. Bit position k
// maps to ids[k] for explicit sources or to offset+k for a source range.
//
// A SourceSet handed to a Consumer is only valid during that call. It is
// re-armed for the next delivery.
type SourceSet struct {
	ids    []int64
	offset int64
	length int

	mask uint32
	pos  int
}

func newSortedSources(ids []int64) *SourceSet {
	return &SourceSet{ids: ids, length: len(ids)}
}

func newRangeSources(offset int64, length int) *SourceSet {
	return &SourceSet{offset: offset, length: length}
}

// HasNext reports whether Next returns another source.
func (s *SourceSet) HasNext() bool {
	return s.pos < s.length
}

// Next returns the next source id in ascending bit order, or -1 when the set
// is exhausted.
func (s *SourceSet) Next() int64 {
	if s.pos >= s.length {
		return -1
	}
	cur := s.pos
	s.advance()
	return s.at(cur)
}

// Size returns the number of sources in the set.
func (s *SourceSet) Size() int {
	return bits.OnesCount32(s.mask)
}

// Reset rewinds the enumeration to the first source.
func (s *SourceSet) Reset() {
	s.pos = -1
	s.advance()
}

// AppendTo appends all sources to dst without moving the cursor.
func (s *SourceSet) AppendTo(dst []int64) []int64 {
	for m := s.mask; m != 0; m &= m - 1 {
		k := bits.TrailingZeros32(m)
		if k >= s.length {
			break
		}
		dst = append(dst, s.at(k))
	}
	return dst
}

func (s *SourceSet) reset(mask uint32) {
	s.mask = mask
	s.Reset()
}

func (s *SourceSet) at(k int) int64 {
	if s.ids != nil {
		return s.ids[k]
	}
	return s.offset + int64(k)
}

func (s *SourceSet) advance() {
	s.pos++
	if s.pos >= s.length {
		s.pos = s.length
		return
	}
	rest := s.mask >> uint(s.pos)
	if rest == 0 {
		s.pos = s.length
		return
	}
	s.pos += bits.TrailingZeros32(rest)
	if s.pos > s.length {
		s.pos = s.length
	}
}
