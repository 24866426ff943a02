package suffixindex

// spaceUnit is U+0020 encoded as a UTF-16 code unit, the only separator
// keyword splitting recognizes. Any other whitespace is preserved as
// part of a token; this is deliberate and narrow.
const spaceUnit uint16 = 0x0020

// ParseKeywords splits pattern on U+0020, discarding empty tokens
// (leading, trailing, and repeated spaces all collapse away).
func ParseKeywords(pattern []uint16) [][]uint16 {
	var keywords [][]uint16

	start := -1
	for i, u := range pattern {
		if u == spaceUnit {
			if start >= 0 {
				keywords = append(keywords, pattern[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		keywords = append(keywords, pattern[start:])
	}

	return keywords
}
