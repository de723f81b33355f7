package huffman

import (
	"errors"
)

var (
	// ErrEmptyStructure is returned by PriorityQueue.ExtractMin when the
	// queue holds no nodes.  Seeing it from the tree builder means a bug.
	ErrEmptyStructure = errors.New("extract from empty priority queue")

	// ErrUnknownSymbol is returned by Encode when an input Symbol has no
	// code in the supplied CodeTable.
	ErrUnknownSymbol = errors.New("symbol has no code")

	// ErrTruncatedStream is returned when the bits run out partway down a
	// path from the root.
	ErrTruncatedStream = errors.New("bit stream ends mid-code")

	// ErrInvalidBit is returned when a bit is neither 0 nor 1, or when it
	// selects a branch that the tree does not have.
	ErrInvalidBit = errors.New("invalid bit")

	// ErrNullTree is returned when a non-empty bit stream is decoded
	// without a tree.
	ErrNullTree = errors.New("no tree to decode with")

	// ErrInvalidCode is returned by TreeFromCodes and ParseBits for codes
	// that cannot form a prefix-free code tree.
	ErrInvalidCode = errors.New("invalid code")
)

// StageError records which pipeline stage failed.
type StageError struct {
	Stage string
	Err   error
}

// Error returns the string representation of this StageError.
func (e *StageError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}

var _ error = (*StageError)(nil)
