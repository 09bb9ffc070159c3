package indexspace

import "errors"

// Sentinel errors for index-space operations.
var (
	// ErrInvalidExtent indicates a non-positive extent, or an extent product
	// exceeding the signed range of the space's integer width.
	ErrInvalidExtent = errors.New("indexspace: extent must be positive and the extent product must fit the index width")

	// ErrInvalidRange indicates a construction range that does not start at 1
	// or is empty.
	ErrInvalidRange = errors.New("indexspace: range must be one-based and non-empty")

	// ErrRankMismatch indicates a coordinate or selector count that does not
	// match the space's rank.
	ErrRankMismatch = errors.New("indexspace: argument count does not match rank")

	// ErrIndexOutOfBounds indicates a checked access outside [1, Length()]
	// or outside a per-axis range.
	ErrIndexOutOfBounds = errors.New("indexspace: index out of bounds")
)
