package suffixindex

import "sort"

// Strategy selects one of the three buffering strategies for the MSD
// radix descent, operating byte-wise and depth-first over UTF-16LE text.
type Strategy int

const (
	// SharedBuffer reuses one auxiliary buffer of size N across the
	// whole sort, sized once at the top-level call.
	SharedBuffer Strategy = iota
	// OwnBuffer allocates a fresh buffer sized to each recursion's
	// range. More allocation pressure, better locality on deep ranges.
	OwnBuffer
	// InPlace partitions each range by swapping elements to their
	// bucket's write cursor, using no auxiliary memory at all.
	InPlace
)

// DefaultCutoff is the sub-range size below which the radix descent
// falls back to a comparison sort.
const DefaultCutoff = 80

// SortOptions configures BuildSuffixArray.
type SortOptions struct {
	Strategy Strategy
	// Cutoff is the sub-range size below which the descent switches to
	// a comparison sort. Zero disables the cutoff (pure radix descent
	// all the way down to single-element buckets).
	Cutoff int
}

// DefaultSortOptions returns the facade's default construction options:
// shared-buffer strategy with the default cutoff.
func DefaultSortOptions() SortOptions {
	return SortOptions{Strategy: SharedBuffer, Cutoff: DefaultCutoff}
}

// BuildSuffixArray sorts sa (assumed preinitialized to 0..len(sa)-1) into
// the suffix array of text, in place, using the given strategy.
func BuildSuffixArray(text []uint16, sa []Index, opts SortOptions) {
	if len(sa) < 2 {
		return
	}
	switch opts.Strategy {
	case SharedBuffer:
		buf := make([]Index, len(sa))
		radixSort(text, sa, 0, opts.Cutoff, sharedBufferPartitioner{buf})
	case OwnBuffer:
		radixSort(text, sa, 0, opts.Cutoff, ownBufferPartitioner{})
	case InPlace:
		radixSort(text, sa, 0, opts.Cutoff, inPlacePartitioner{})
	default:
		buf := make([]Index, len(sa))
		radixSort(text, sa, 0, opts.Cutoff, sharedBufferPartitioner{buf})
	}
}

// partitioner groups sa by the byte at depth d, given the bucket starts
// already computed by an exclusive scan of the histogram (starts is
// mutated in place into the bucket ends, for the caller to recurse on).
type partitioner interface {
	partition(text []uint16, d int, starts *[256]Index, sa []Index)
}

type sharedBufferPartitioner struct{ buf []Index }

func (p sharedBufferPartitioner) partition(text []uint16, d int, starts *[256]Index, sa []Index) {
	buf := p.buf[:len(sa)]
	moveToBuckets(text, d, starts, sa, buf)
	copy(sa, buf)
}

type ownBufferPartitioner struct{}

func (ownBufferPartitioner) partition(text []uint16, d int, starts *[256]Index, sa []Index) {
	buf := make([]Index, len(sa))
	moveToBuckets(text, d, starts, sa, buf)
	copy(sa, buf)
}

func moveToBuckets(text []uint16, d int, starts *[256]Index, sa, buf []Index) {
	for _, suffix := range sa {
		b := byteAt(text, suffix, d)
		buf[starts[b]] = suffix
		starts[b]++
	}
}

// inPlacePartitioner permutes sa into bucket order by repeatedly cycling
// each element into its bucket's write cursor, without any auxiliary
// buffer. Elements whose bucket starts ahead of the current scan
// position are left in place and revisited once an earlier bucket's
// cursor reaches them.
type inPlacePartitioner struct{}

func (inPlacePartitioner) partition(text []uint16, d int, starts *[256]Index, sa []Index) {
	i := 0
	for i < len(sa) {
		suffix := sa[i]
		b := byteAt(text, suffix, d)
		off := int(starts[b])

		if off > i {
			i++
			continue
		}
		if off == i {
			i++
		} else {
			sa[off], sa[i] = sa[i], sa[off]
		}
		starts[b]++
	}
}

// radixSort descends the radix tree at byte depth d over the range sa,
// falling back to a comparison sort below the cutoff and recursing
// without partitioning when every suffix shares the same byte (the
// natural way separator-terminated items bucket-sort before any longer
// continuation, since 0x00 sorts first).
func radixSort(text []uint16, sa []Index, d, cutoff int, p partitioner) {
	if len(sa) < 2 {
		return
	}
	if cutoff > 0 && len(sa) < cutoff {
		comparisonSort(text, sa)
		return
	}

	var histogram [256]Index
	for _, suffix := range sa {
		histogram[byteAt(text, suffix, d)]++
	}

	first := byteAt(text, sa[0], d)
	if int(histogram[first]) == len(sa) {
		// Once every suffix in the range has run past the end of text,
		// they tie under zero padding at every further depth; hand them
		// to the comparison sort, which orders them by start position.
		exhausted := true
		for _, suffix := range sa {
			if int(suffix)+d/2 < len(text) {
				exhausted = false
				break
			}
		}
		if exhausted {
			comparisonSort(text, sa)
			return
		}
		radixSort(text, sa, d+1, cutoff, p)
		return
	}

	var starts [256]Index
	var acc Index
	for b, count := range histogram {
		starts[b] = acc
		acc += count
	}

	p.partition(text, d, &starts, sa)

	// starts now holds, per bucket, the end of that bucket (every
	// partitioner advances starts[b] once per placed element), so a
	// bucket boundary is just the previous end and the current one.
	var last Index
	for _, end := range starts {
		if end != last && end-last > 1 {
			radixSort(text, sa[last:end], d+1, cutoff, p)
		}
		last = end
	}
}

// comparisonSort sorts sa lexicographically under the byte-wise UTF-16LE
// order. Used as the cutoff fallback and for ranges whose suffixes have
// all run past the end of text.
func comparisonSort(text []uint16, sa []Index) {
	sort.Slice(sa, func(i, j int) bool {
		return suffixLess(text, sa[i], sa[j])
	})
}
