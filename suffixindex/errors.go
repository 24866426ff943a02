package suffixindex

import "github.com/pkg/errors"

// Sentinel errors returned by the facade. The three cases below (a nil
// *SearchIndex, a non-terminated text and an offset past the available
// matches) are the only preconditions that are checked; other violations
// are not detected and may panic.
var (
	// ErrInvalidIndex is returned when a method is called on a nil
	// *SearchIndex.
	ErrInvalidIndex = errors.New("suffixindex: invalid index")

	// ErrNotTerminated is returned by New when the text does not end in
	// a separator code unit, violating the precondition every item
	// (including the last) is separator-terminated.
	ErrNotTerminated = errors.New("suffixindex: text must end with a separator code unit")

	// ErrOffsetOutOfBounds is returned when a caller-supplied offset is
	// larger than the total number of matches available to skip.
	ErrOffsetOutOfBounds = errors.New("suffixindex: offset out of bounds")
)
