package suffixindex

// ItemMap maps every text position to the zero-based id of the item that
// owns it, derived in a single pass: the id advances each time a
// separator is recorded as belonging to the item it terminates.
type ItemMap struct {
	items     []Index
	itemCount int
}

// BuildItemMap computes the item map for text in O(len(text)).
func BuildItemMap(text []uint16) ItemMap {
	items := make([]Index, len(text))
	k := Index(0)
	for p, u := range text {
		items[p] = k
		if u == Separator {
			k++
		}
	}
	return ItemMap{items: items, itemCount: int(k)}
}

// ItemOf returns the id of the item owning text position pos.
func (m ItemMap) ItemOf(pos Index) Index {
	return m.items[pos]
}

// ItemCount returns the number of items (separators) found in the text.
func (m ItemMap) ItemCount() int {
	return m.itemCount
}
