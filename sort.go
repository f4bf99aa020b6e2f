package radixsort

import (
	"reflect"
	"sync"

	"github.com/zeebo/xxh3"

	"github.com/tamirms/radixsort/internal/workerpool"
)

// sharedPool backs the package-level sort functions. It is sized to
// GOMAXPROCS at first use and lives for the rest of the process.
var sharedPool = sync.OnceValue(func() *workerpool.Pool {
	return workerpool.New(0)
})

// stagePools holds the staging buffers of Sorters built on sharedPool, so
// that package-level calls reuse them across calls.
var stagePools sync.Map // stagePoolKey -> *sync.Pool

type stagePoolKey struct {
	elem     reflect.Type
	capacity int
}

// sharedStagePool returns the process-wide stage pool for T and capacity.
func sharedStagePool[T any](capacity int) *sync.Pool {
	key := stagePoolKey{elem: reflect.TypeFor[T](), capacity: capacity}
	if p, ok := stagePools.Load(key); ok {
		return p.(*sync.Pool)
	}
	p, _ := stagePools.LoadOrStore(key, newStagePool[T](capacity))
	return p.(*sync.Pool)
}

// Sort sorts data in place by codec with the default configuration.
// The sort is stable. codec must not be nil.
func Sort[T any](data []T, codec Codec[T]) {
	if len(data) < 2 {
		return
	}
	newSorter(codec, defaultSortConfig(), sharedPool(), false).Sort(data)
}

// SortUnsigned sorts unsigned integers in ascending order.
func SortUnsigned[T UnsignedInteger](data []T) {
	Sort(data, Unsigned[T]{})
}

// SortSigned sorts signed integers in ascending order.
func SortSigned[T SignedInteger](data []T) {
	Sort(data, Signed[T]{})
}

// SortFloats sorts floating point values by their total order; see Float.
func SortFloats[T Floating](data []T) {
	Sort(data, Float[T]{})
}

// SortHashes sorts 128-bit xxh3 hashes in ascending order.
func SortHashes(data []xxh3.Uint128) {
	Sort(data, Hash128{})
}

// SortByKey stably sorts composite elements by the field key extracts.
func SortByKey[T, K any](data []T, key func(T) K, codec Codec[K]) {
	Sort(data, ByKey(key, codec))
}
