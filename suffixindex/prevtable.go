package suffixindex

// PrevTable records, for each suffix-array slot, the slot holding the
// previous suffix belonging to the same item (or notFound for an item's
// first occurrence in SA order). It lets the unique-items iterator skip
// repeats of an already-seen item in O(1) per slot, without any sorting
// or extra lookups beyond the item map.
type PrevTable struct {
	prev []Index
}

// BuildPrevTable computes the previous-occurrence table in a single pass
// over sa, given the item map it was built from.
func BuildPrevTable(sa []Index, items ItemMap) PrevTable {
	last := make([]Index, items.ItemCount())
	for i := range last {
		last[i] = notFound
	}

	prev := make([]Index, len(sa))
	for i, suffix := range sa {
		item := items.ItemOf(suffix)
		prev[i] = last[item]
		last[item] = Index(i)
	}
	return PrevTable{prev: prev}
}

// PreviousEntryOf returns the SA slot of the previous suffix belonging to
// the same item as slot i, or notFound if i is that item's first
// occurrence in SA order.
func (t PrevTable) PreviousEntryOf(i Index) Index {
	return t.prev[i]
}
