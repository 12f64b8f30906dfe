package sortutil

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSequence indicates a nil slice was passed to Quicksort.
	ErrNilSequence = errors.New("sortutil: nil sequence")

	// ErrIndexOutOfRange indicates an index outside the valid bounds.
	ErrIndexOutOfRange = errors.New("sortutil: index out of range")

	// ErrTypeMismatch indicates elements without an intrinsic order were sorted
	// without a comparator.
	ErrTypeMismatch = errors.New("sortutil: elements are not comparable")

	// ErrNilElement indicates a comparison touched an absent element.
	ErrNilElement = errors.New("sortutil: nil element in comparison")
)

// IndexError reports an index checked against a length.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: index %d, length %d", ErrIndexOutOfRange, e.Index, e.Length)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// CheckIndex returns an *IndexError unless 0 <= index < length.
func CheckIndex(index, length int) error {
	if index < 0 || index >= length {
		return &IndexError{Index: index, Length: length}
	}
	return nil
}
