package suffixindex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteAtSplitsLowThenHighByte(t *testing.T) {
	text := []uint16{0xABCD}

	require.Equal(t, byte(0xCD), byteAt(text, 0, 0), "depth 0 is the low byte")
	require.Equal(t, byte(0xAB), byteAt(text, 0, 1), "depth 1 is the high byte")
}

func TestByteAtPastEndIsZero(t *testing.T) {
	text := []uint16{0x0041}

	require.Equal(t, byte(0), byteAt(text, 0, 2))
	require.Equal(t, byte(0), byteAt(text, 0, 3))
	require.Equal(t, byte(0), byteAt(text, 5, 0))
}

func TestLessUnitOrdersLowByteFirst(t *testing.T) {
	// 0x0100 has low byte 0x00, high byte 0x01.
	// 0x0001 has low byte 0x01, high byte 0x00.
	// Byte-wise order compares low bytes first, so 0x0100 < 0x0001
	// even though the numeric values disagree.
	require.True(t, lessUnit(0x0100, 0x0001))
	require.False(t, lessUnit(0x0001, 0x0100))
	require.False(t, lessUnit(0x0041, 0x0041))
}

func TestSuffixLessOrdersByCommonPrefix(t *testing.T) {
	text := encodeItems("AB", "AC")
	// text = A B \0 A C \0
	require.True(t, suffixLess(text, 0, 3), "AB... < AC...")
	require.False(t, suffixLess(text, 3, 0))
}

func TestSuffixLessBreaksDegenerateTieByPosition(t *testing.T) {
	// Several consecutive empty items at the end of the text: every
	// remaining suffix is nothing but separators, so zero-padded
	// comparison ties forever. The documented tiebreak is ascending
	// start position.
	text := []uint16{Separator, Separator, Separator}
	require.True(t, suffixLess(text, 0, 1))
	require.True(t, suffixLess(text, 1, 2))
	require.False(t, suffixLess(text, 2, 0))
}
