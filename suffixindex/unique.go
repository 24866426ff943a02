package suffixindex

// UniqueItemsIterator streams the suffix-array slots of a range that are
// the first occurrence, within that range, of the item they belong to.
// A slot i qualifies when PreviousEntryOf(i) falls before the range's
// start, meaning no earlier slot in the range already represents its
// item.
type UniqueItemsIterator struct {
	prev   PrevTable
	sa     []Index
	rng    Range
	cursor Index
}

// NewUniqueItemsIterator constructs an iterator over rng, starting at SA
// slot rng.Lo+start (start is the offset already consumed, in [0,
// rng.Len()]). The cursor is advanced past any duplicate at its initial
// position, so Suffix/Done reflect the first qualifying slot immediately
// after construction.
func NewUniqueItemsIterator(sa []Index, prev PrevTable, rng Range, start Index) *UniqueItemsIterator {
	it := &UniqueItemsIterator{
		prev:   prev,
		sa:     sa,
		rng:    rng,
		cursor: rng.Lo + start,
	}
	if it.cursor < it.rng.Hi && it.isDuplicate() {
		it.Advance()
	}
	return it
}

// Done reports whether the iterator has consumed the whole range.
func (it *UniqueItemsIterator) Done() bool {
	return it.cursor >= it.rng.Hi
}

// isDuplicate reports whether the slot at the cursor represents an item
// already emitted earlier in this range.
func (it *UniqueItemsIterator) isDuplicate() bool {
	return it.prev.PreviousEntryOf(it.cursor) >= it.rng.Lo
}

// Suffix returns the text position at the cursor. Only valid when Done
// is false.
func (it *UniqueItemsIterator) Suffix() Index {
	return it.sa[it.cursor]
}

// Advance moves the cursor to the next non-duplicate slot, or to rng.Hi
// if none remains.
func (it *UniqueItemsIterator) Advance() {
	for {
		it.cursor++
		if it.cursor >= it.rng.Hi || !it.isDuplicate() {
			return
		}
	}
}

// OffsetFromRangeBegin returns how many slots, counted from rng.Lo, the
// cursor has advanced past, including the initial start skip and any
// duplicates scanned over.
func (it *UniqueItemsIterator) OffsetFromRangeBegin() Index {
	return it.cursor - it.rng.Lo
}

// FindUniqueResult is the output of a paginated unique-items scan:
// Count suffixes were written, and Consumed slots (from range.Lo) were
// scanned to produce them.
type FindUniqueResult struct {
	Count    int
	Consumed int
}

// FindUniqueInRange streams rng through a UniqueItemsIterator, writing
// successive suffix positions into out until either the iterator is
// done or out is full, starting at rng.Lo+offset.
//
// The caller must ensure offset <= rng.Len(). That bound is checked here
// too, returning ErrOffsetOutOfBounds, since the cost of checking is
// negligible next to an out-of-range panic.
func FindUniqueInRange(sa []Index, prev PrevTable, rng Range, out []Index, offset int) (FindUniqueResult, error) {
	if offset < 0 || offset > rng.Len() {
		return FindUniqueResult{}, ErrOffsetOutOfBounds
	}

	it := NewUniqueItemsIterator(sa, prev, rng, Index(offset))
	count := 0
	for count < len(out) && !it.Done() {
		out[count] = it.Suffix()
		count++
		it.Advance()
	}

	return FindUniqueResult{
		Count:    count,
		Consumed: int(it.OffsetFromRangeBegin()),
	}, nil
}
