package Trees

import (
	"errors"
	"fmt"
)

// ErrNotFound is the root of every "no such value" failure. Use errors.Is to test
// for it; the concrete error may carry more detail.
var ErrNotFound = errors.New("Trees: not found")

// ErrEmptyTree is returned by Minimum and Maximum on a nil tree.
var ErrEmptyTree = fmt.Errorf("%w: empty tree", ErrNotFound)

// RankError reports a k outside [1, Size] for KthSmallest.
type RankError struct {
	K, Size int
}

func (e *RankError) Error() string {
	return fmt.Sprintf("Trees: rank %d out of range [1, %d]", e.K, e.Size)
}

func (e *RankError) Unwrap() error {
	return ErrNotFound
}

// InvalidSliceError reports input to a balanced build that cannot produce a valid
// tree. Index is the position of the offending element.
type InvalidSliceError struct {
	Index int
	Msg   string
}

func (e *InvalidSliceError) Error() string {
	return fmt.Sprintf("Trees: invalid input at index %d: %s", e.Index, e.Msg)
}
