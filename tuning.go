package radixsort

import (
	"github.com/klauspost/cpuid/v2"

	"github.com/tamirms/radixsort/internal/histogram"
)

const (
	// DefaultBufferCapacity is the number of elements staged per bucket
	// before a derandomization buffer is flushed. Empirically tuned: large
	// enough that most writes become block copies, small enough that the
	// 256 buffers of a worker stay cache resident.
	DefaultBufferCapacity = 96

	// MaxBufferCapacity bounds WithBufferCapacity.
	MaxBufferCapacity = 4096

	// minDerivedCapacity is the floor when the cache budget shrinks the
	// default for large element types. Below it flushes degrade to the
	// scattered writes the buffers exist to avoid.
	minDerivedCapacity = 8

	// fallbackL2Size is assumed when the CPU does not report its L2 size.
	fallbackL2Size = 256 << 10
)

// derivedBufferCapacity returns DefaultBufferCapacity, reduced so that a
// worker's full staging area (256 buckets of capacity elements) fits in half
// of the per-core L2 cache.
func derivedBufferCapacity(elemSize int) int {
	if elemSize <= 0 {
		return DefaultBufferCapacity
	}
	l2 := cpuid.CPU.Cache.L2
	if l2 <= 0 {
		l2 = fallbackL2Size
	}
	fit := (l2 / 2) / (histogram.Buckets * elemSize)
	if fit >= DefaultBufferCapacity {
		return DefaultBufferCapacity
	}
	return max(fit, minDerivedCapacity)
}
