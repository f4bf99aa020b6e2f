// Package errors defines all exported error sentinels for the radixsort library.
//
// This is the single source of truth for error values. Both the top-level
// radixsort package and its internal packages import from here, ensuring
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Configuration errors
var (
	ErrNilCodec              = errors.New("radixsort: codec is nil")
	ErrInvalidCodec          = errors.New("radixsort: codec reports a negative digit count")
	ErrInvalidWorkers        = errors.New("radixsort: worker count must not be negative")
	ErrInvalidBufferCapacity = errors.New("radixsort: buffer capacity out of range")
	ErrInvalidPartitionLen   = errors.New("radixsort: minimum partition length must not be negative")
	ErrInvalidArenaThreshold = errors.New("radixsort: arena threshold must not be negative")
	ErrInvalidConfig         = errors.New("radixsort: invalid configuration")
)

// Contract errors. These are never returned by a sort call; they are raised
// as panics by verification mode when a codec breaks its digit contract.
var (
	ErrCodecContract = errors.New("radixsort: codec violated the digit contract")
)

// Resource errors
var (
	ErrArenaMap   = errors.New("radixsort: anonymous arena mapping failed")
	ErrArenaUnmap = errors.New("radixsort: anonymous arena unmapping failed")
)
