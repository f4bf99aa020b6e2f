package radixsort

import (
	"sync"

	"github.com/tamirms/radixsort/internal/histogram"
)

// stage is the derandomization buffer set of one partition for one pass:
// capacity slots for each of the 256 buckets, laid out bucket after bucket
// in a single allocation. Stages are pooled per Sorter but a stage is
// always empty between passes.
type stage[T any] struct {
	slots    []T
	fill     [histogram.Buckets]int
	capacity int
}

func newStage[T any](capacity int) *stage[T] {
	return &stage[T]{
		slots:    make([]T, histogram.Buckets*capacity),
		capacity: capacity,
	}
}

// newStagePool returns a pool of empty stages of the given capacity.
func newStagePool[T any](capacity int) *sync.Pool {
	return &sync.Pool{New: func() any { return newStage[T](capacity) }}
}

// scatter moves every element of src to dst, at the positions given by offs.
// Elements are staged per destination bucket and written out as contiguous
// blocks once a bucket's buffer is full, then every partially filled buffer
// is flushed at the end. offs is advanced as blocks are written, so after
// the call each entry points one past the partition's run for that bucket.
//
// dst is shared with the other partitions of the pass. The partition only
// writes inside its own runs, which Resolve made disjoint from all others.
func (st *stage[T]) scatter(src, dst []T, c Codec[T], pass int, offs *histogram.Offsets) {
	capacity := st.capacity
	for _, v := range src {
		d := c.Digit(v, pass)
		base := int(d) * capacity
		n := st.fill[d]
		if n == capacity {
			offs[d] = flush(dst, offs[d], st.slots[base:base+capacity])
			n = 0
		}
		st.slots[base+n] = v
		st.fill[d] = n + 1
	}

	for d, n := range &st.fill {
		if n == 0 {
			continue
		}
		base := d * capacity
		offs[d] = flush(dst, offs[d], st.slots[base:base+n])
		st.fill[d] = 0
	}
}

// flush copies a staged block to dst[at:] and returns the index just past it.
func flush[T any](dst []T, at int, block []T) int {
	end := at + len(block)
	copy(dst[at:end], block)
	return end
}
