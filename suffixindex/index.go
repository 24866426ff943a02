package suffixindex

import "github.com/pkg/errors"

// SearchIndex owns the suffix array, item map and previous-occurrence table
// built over a borrowed text buffer. It is built once at construction;
// none of its state changes afterwards, so its query methods are safe
// for concurrent use by multiple readers. Construction itself is not:
// finish building before sharing a *SearchIndex across goroutines.
type SearchIndex struct {
	text  []uint16
	sa    []Index
	items ItemMap
	prev  PrevTable
}

// Option configures New.
type Option func(*SortOptions)

// WithStrategy selects the buffering strategy used to build the suffix
// array.
func WithStrategy(s Strategy) Option {
	return func(o *SortOptions) { o.Strategy = s }
}

// WithCutoff overrides the sub-range size below which construction
// falls back to a comparison sort. 0 disables the cutoff.
func WithCutoff(cutoff int) Option {
	return func(o *SortOptions) { o.Cutoff = cutoff }
}

// New builds a SearchIndex over text. text must be a contiguous sequence of
// UTF-16LE code units in which every item, including the last, is
// terminated by a 0x0000 separator; New returns ErrNotTerminated
// otherwise. The caller must keep text valid for the SearchIndex's lifetime.
func New(text []uint16, opts ...Option) (*SearchIndex, error) {
	if len(text) == 0 || text[len(text)-1] != Separator {
		return nil, ErrNotTerminated
	}

	options := DefaultSortOptions()
	for _, opt := range opts {
		opt(&options)
	}

	sa := make([]Index, len(text))
	for i := range sa {
		sa[i] = Index(i)
	}
	BuildSuffixArray(text, sa, options)

	items := BuildItemMap(text)
	prev := BuildPrevTable(sa, items)

	return &SearchIndex{text: text, sa: sa, items: items, prev: prev}, nil
}

// check returns ErrInvalidIndex for a nil receiver, the facade's
// analogue of the C wrapper's InvalidInstance check.
func (idx *SearchIndex) check() error {
	if idx == nil {
		return ErrInvalidIndex
	}
	return nil
}

// SuffixArray returns the built suffix array, as text positions in
// ascending suffix order.
func (idx *SearchIndex) SuffixArray() []Index {
	return idx.sa
}

// ItemOf returns the id of the item owning text position pos.
func (idx *SearchIndex) ItemOf(pos Index) Index {
	return idx.items.ItemOf(pos)
}

// ItemCount returns the number of items in the indexed text.
func (idx *SearchIndex) ItemCount() int {
	return idx.items.ItemCount()
}

// Find returns the SA slot range of suffixes starting with pattern.
func (idx *SearchIndex) Find(pattern []uint16) (Range, error) {
	if err := idx.check(); err != nil {
		return Range{}, err
	}
	return Find(idx.text, idx.sa, pattern), nil
}

// FindUniqueInRange performs a paginated unique-items scan over an
// already-computed range (e.g. from Find).
func (idx *SearchIndex) FindUniqueInRange(rng Range, out []Index, offset int) (FindUniqueResult, error) {
	if err := idx.check(); err != nil {
		return FindUniqueResult{}, err
	}
	return FindUniqueInRange(idx.sa, idx.prev, rng, out, offset)
}

// FindUniqueResultWithTotal additionally reports the range size before
// uniqueness was applied, for the facade variant of findUnique that
// takes a pattern directly rather than an already-computed range.
type FindUniqueResultWithTotal struct {
	TotalCount int
	FindUniqueResult
}

// FindUnique runs Find(pattern) and then a paginated unique-items scan
// over the resulting range, mapping each written suffix to its owning
// item id.
func (idx *SearchIndex) FindUnique(pattern []uint16, out []Index, offset int) (FindUniqueResultWithTotal, error) {
	if err := idx.check(); err != nil {
		return FindUniqueResultWithTotal{}, err
	}

	rng, _ := idx.Find(pattern)
	if offset > rng.Len() {
		return FindUniqueResultWithTotal{}, errors.Wrap(ErrOffsetOutOfBounds, "find unique")
	}

	res, err := idx.FindUniqueInRange(rng, out, offset)
	if err != nil {
		return FindUniqueResultWithTotal{}, errors.Wrap(err, "find unique")
	}

	for i := 0; i < res.Count; i++ {
		out[i] = idx.items.ItemOf(out[i])
	}

	return FindUniqueResultWithTotal{TotalCount: rng.Len(), FindUniqueResult: res}, nil
}

// FindUniqueMulti combines several already-computed keyword ranges under
// mode, writing the resulting item ids into out starting at offset.
func (idx *SearchIndex) FindUniqueMulti(ranges []Range, mode MatchMode, out []Index, offset int) (FindUniqueMultiResult, error) {
	if err := idx.check(); err != nil {
		return FindUniqueMultiResult{}, err
	}
	combined := CombineUnique(idx.sa, idx.prev, idx.items, ranges, mode)
	return WriteCombined(combined, out, offset)
}

// FindUniqueKeywords splits pattern on U+0020 and combines the per-
// keyword results under mode. A single keyword reduces to the plain
// FindUnique path over that one token's mapped-to-item form.
func (idx *SearchIndex) FindUniqueKeywords(pattern []uint16, mode MatchMode, out []Index, offset int) (FindUniqueMultiResult, error) {
	if err := idx.check(); err != nil {
		return FindUniqueMultiResult{}, err
	}

	keywords := ParseKeywords(pattern)
	if len(keywords) == 1 {
		res, err := idx.FindUnique(keywords[0], out, offset)
		if err != nil {
			return FindUniqueMultiResult{}, errors.Wrap(err, "find unique keywords")
		}
		return FindUniqueMultiResult{TotalCount: res.TotalCount, Count: res.Count}, nil
	}

	ranges := make([]Range, len(keywords))
	for i, kw := range keywords {
		ranges[i], _ = idx.Find(kw)
	}

	return idx.FindUniqueMulti(ranges, mode, out, offset)
}
