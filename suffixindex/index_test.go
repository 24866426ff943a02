package suffixindex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnterminatedText(t *testing.T) {
	_, err := New([]uint16{'A', 'B'})
	require.ErrorIs(t, err, ErrNotTerminated)

	_, err = New(nil)
	require.ErrorIs(t, err, ErrNotTerminated)
}

func TestNewBuildsConsistentIndexAcrossStrategies(t *testing.T) {
	text := encodeItems("A", "BB", "CCC", "DD", "E")

	for _, strategy := range allStrategies {
		idx, err := New(text, WithStrategy(strategy))
		require.NoError(t, err)
		require.Equal(t, []Index{13, 1, 4, 8, 11, 0, 3, 2, 7, 6, 5, 10, 9, 12}, idx.SuffixArray())
		require.Equal(t, 5, idx.ItemCount())
	}
}

func TestIndexFindAndFindUnique(t *testing.T) {
	text := encodeItems("A", "BB", "CCC", "DD", "E")
	idx, err := New(text)
	require.NoError(t, err)

	rng, err := idx.Find(utf16Of("C"))
	require.NoError(t, err)
	require.Equal(t, Range{8, 11}, rng)

	out := make([]Index, 4)
	res, err := idx.FindUnique(utf16Of("C"), out, 0)
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	require.Equal(t, Index(2), out[0]) // item id of "CCC"
}

func TestIndexFindUniqueKeywordsSingleWordMatchesFindUnique(t *testing.T) {
	text := encodeItems("A", "BB", "CCC", "DD", "E")
	idx, err := New(text)
	require.NoError(t, err)

	direct := make([]Index, 4)
	directRes, err := idx.FindUnique(utf16Of("B"), direct, 0)
	require.NoError(t, err)

	viaKeywords := make([]Index, 4)
	kwRes, err := idx.FindUniqueKeywords(utf16Of("B"), MatchAtLeastOne, viaKeywords, 0)
	require.NoError(t, err)

	require.Equal(t, directRes.Count, kwRes.Count)
	require.Equal(t, direct[:directRes.Count], viaKeywords[:kwRes.Count])
}

func TestIndexFindUniqueKeywordsMultiWordAtLeastOneAndAll(t *testing.T) {
	text := encodeItems("AB", "BA", "A", "B")
	idx, err := New(text)
	require.NoError(t, err)

	out := make([]Index, 4)
	atLeastOne, err := idx.FindUniqueKeywords(utf16Of("A B"), MatchAtLeastOne, out, 0)
	require.NoError(t, err)
	require.Equal(t, 4, atLeastOne.Count)
	require.ElementsMatch(t, []Index{0, 1}, out[:2])

	all, err := idx.FindUniqueKeywords(utf16Of("A B"), MatchAll, out, 0)
	require.NoError(t, err)
	require.Equal(t, 2, all.Count)
	require.ElementsMatch(t, []Index{0, 1}, out[:2])
}

func TestIndexMethodsRejectNilReceiver(t *testing.T) {
	var idx *SearchIndex

	_, err := idx.Find(nil)
	require.ErrorIs(t, err, ErrInvalidIndex)

	_, err = idx.FindUnique(nil, nil, 0)
	require.ErrorIs(t, err, ErrInvalidIndex)

	_, err = idx.FindUniqueMulti(nil, MatchAll, nil, 0)
	require.ErrorIs(t, err, ErrInvalidIndex)

	_, err = idx.FindUniqueKeywords(nil, MatchAll, nil, 0)
	require.ErrorIs(t, err, ErrInvalidIndex)

	_, err = idx.FindUniqueInRange(Range{}, nil, 0)
	require.ErrorIs(t, err, ErrInvalidIndex)
}

func TestIndexFindUniqueOffsetOutOfBoundsWraps(t *testing.T) {
	text := encodeItems("A", "BB")
	idx, err := New(text)
	require.NoError(t, err)

	rng, err := idx.Find(utf16Of("A"))
	require.NoError(t, err)

	_, err = idx.FindUnique(utf16Of("A"), make([]Index, 1), rng.Len()+1)
	require.ErrorIs(t, err, ErrOffsetOutOfBounds)
}
