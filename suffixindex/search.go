package suffixindex

import "sort"

// Range is a half-open [Lo, Hi) interval of suffix-array slots, as
// returned by Find.
type Range struct {
	Lo, Hi Index
}

// Len returns the number of slots in the range.
func (r Range) Len() int {
	return int(r.Hi - r.Lo)
}

// patternLess compares the first len(pattern) code units of suffix(pos)
// against pattern under the byte-wise UTF-16LE order, truncating the
// suffix to the pattern's length (or text end, whichever is shorter) as
// spec's §4.E requires.
func patternLess(text []uint16, pos Index, pattern []uint16) bool {
	n := len(text)
	for i, want := range pattern {
		p := int(pos) + i
		if p >= n {
			return true // suffix ran out first: it's a strict prefix, so it's smaller.
		}
		got := text[p]
		if got != want {
			return lessUnit(got, want)
		}
	}
	return false
}

// patternGreater is the mirror of patternLess, used for the upper bound:
// whether pattern sorts before suffix(pos) over the pattern's length.
func patternGreater(text []uint16, pattern []uint16, pos Index) bool {
	n := len(text)
	for i, want := range pattern {
		p := int(pos) + i
		if p >= n {
			return false // suffix ran out first: pattern can't be smaller than it.
		}
		got := text[p]
		if want != got {
			return lessUnit(want, got)
		}
	}
	return false
}

// Find returns the half-open SA slot range of suffixes whose first
// len(pattern) code units equal pattern under the byte-wise UTF-16LE
// order. An empty pattern matches the whole array.
func Find(text []uint16, sa []Index, pattern []uint16) Range {
	if len(pattern) == 0 {
		return Range{Lo: 0, Hi: Index(len(sa))}
	}

	lo := lowerBound(text, sa, pattern)
	hi := upperBound(text, sa[lo:], pattern)
	return Range{Lo: Index(lo), Hi: Index(lo) + Index(hi)}
}

// lowerBound returns the smallest slot i such that suffix(sa[i]) >=
// pattern (over the pattern's length).
func lowerBound(text []uint16, sa []Index, pattern []uint16) int {
	return sort.Search(len(sa), func(i int) bool {
		return !patternLess(text, sa[i], pattern)
	})
}

// upperBound returns the smallest slot i (relative to sa) such that
// suffix(sa[i]) > pattern, searched only within sa (the caller passes
// the [lo:] slice so the search space is already narrowed).
func upperBound(text []uint16, sa []Index, pattern []uint16) int {
	return sort.Search(len(sa), func(i int) bool {
		return patternGreater(text, pattern, sa[i])
	})
}
