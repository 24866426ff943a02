package suffixindex

import "sort"

// MatchMode selects the multi-keyword combination semantics.
type MatchMode int

const (
	// MatchAll keeps only items that contain every keyword range.
	MatchAll MatchMode = iota
	// MatchAtLeastOne keeps items that contain any keyword range,
	// ranked by how many keywords they matched.
	MatchAtLeastOne
)

// itemHit tracks, for one item id, how many of the keyword ranges it
// matched and the index of the first range it was seen under.
type itemHit struct {
	item             Index
	count            int
	firstContainingK int
}

// CombineUnique builds the AtLeastOne/All combination of several
// keyword ranges, each reduced to its distinct matching items via
// FindUniqueInRange over the whole range. No pagination happens at this
// stage; pagination is applied to the combined, sorted result.
//
// Ordering for MatchAtLeastOne: count descending, then
// firstContainingK ascending. Ties within equal (count, firstContainingK)
// break on ascending item id, a deterministic choice since nothing else
// about the accumulation order is a committed contract.
func CombineUnique(sa []Index, prev PrevTable, items ItemMap, ranges []Range, mode MatchMode) []Index {
	hits := make(map[Index]*itemHit)
	order := make([]Index, 0)

	for k, rng := range ranges {
		buf := make([]Index, rng.Len())
		res, _ := FindUniqueInRange(sa, prev, rng, buf, 0)
		for _, suffix := range buf[:res.Count] {
			item := items.ItemOf(suffix)
			h, ok := hits[item]
			if !ok {
				h = &itemHit{item: item, firstContainingK: k}
				hits[item] = h
				order = append(order, item)
			}
			h.count++
		}
	}

	flattened := make([]itemHit, 0, len(order))
	for _, item := range order {
		flattened = append(flattened, *hits[item])
	}

	if mode == MatchAll {
		filtered := flattened[:0]
		for _, h := range flattened {
			if h.count == len(ranges) {
				filtered = append(filtered, h)
			}
		}
		flattened = filtered
	}

	sort.SliceStable(flattened, func(i, j int) bool {
		a, b := flattened[i], flattened[j]
		if a.count != b.count {
			return a.count > b.count
		}
		if a.firstContainingK != b.firstContainingK {
			return a.firstContainingK < b.firstContainingK
		}
		return a.item < b.item
	})

	out := make([]Index, len(flattened))
	for i, h := range flattened {
		out[i] = h.item
	}
	return out
}

// FindUniqueMultiResult is the output of a combined multi-keyword query:
// TotalCount is the size of the combined list before offset/truncation,
// Count is the number of item ids actually written.
type FindUniqueMultiResult struct {
	TotalCount int
	Count      int
}

// WriteCombined writes the combined, ordered item list into out starting
// at offset, and reports the (TotalCount, Count) pair.
func WriteCombined(combined []Index, out []Index, offset int) (FindUniqueMultiResult, error) {
	if offset < 0 || offset > len(combined) {
		return FindUniqueMultiResult{}, ErrOffsetOutOfBounds
	}
	remaining := combined[offset:]
	n := copy(out, remaining)
	return FindUniqueMultiResult{TotalCount: len(combined), Count: n}, nil
}
