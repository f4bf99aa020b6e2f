package radixsort

import (
	"cmp"
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/tamirms/radixsort/internal/bits"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// testSizes covers the empty and singleton cases, sizes around the unroll
// width, and inputs large enough to fill many derandomization buffers.
var testSizes = []int{0, 1, 2, 3, 5, 100, 4099, 100_003}

// parallelOpts forces several partitions even for small inputs.
func parallelOpts(workers int) []Option {
	return []Option{WithWorkers(workers), WithMinPartitionLen(1)}
}

// sorterVariants are the configurations every correctness test runs under.
var sorterVariants = []struct {
	name string
	opts []Option
}{
	{"default", nil},
	{"parallel", parallelOpts(4)},
	{"parallel-odd", parallelOpts(7)},
	{"single", []Option{WithWorkers(1)}},
	{"tiny-buffers", append(parallelOpts(3), WithBufferCapacity(1))},
	{"small-buffers", append(parallelOpts(5), WithBufferCapacity(3))},
	{"no-skip", append(parallelOpts(4), WithSkipSorted(false))},
	{"verify", append(parallelOpts(4), WithVerify(true))},
}

// newTestSorter creates a Sorter that is closed when the test ends.
func newTestSorter[T any](t testing.TB, c Codec[T], opts ...Option) *Sorter[T] {
	t.Helper()
	s, err := NewSorter(c, opts...)
	if err != nil {
		t.Fatalf("NewSorter: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

// randomSlice returns n values drawn by gen.
func randomSlice[T any](n int, gen func() T) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = gen()
	}
	return out
}

// stableReference sorts a copy of data with the standard library's stable
// sort under cmpFn.
func stableReference[T any](data []T, cmpFn func(a, b T) int) []T {
	out := slices.Clone(data)
	slices.SortStableFunc(out, cmpFn)
	return out
}

// requireEqual fails the test at the first mismatching index.
func requireEqual[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// checkSorted sorts a copy of data with every sorter variant and compares the
// result with the stable reference.
func checkSorted[T comparable](t *testing.T, data []T, c Codec[T], cmpFn func(a, b T) int) {
	t.Helper()
	want := stableReference(data, cmpFn)
	for _, v := range sorterVariants {
		t.Run(v.name, func(t *testing.T) {
			got := slices.Clone(data)
			newTestSorter(t, c, v.opts...).Sort(got)
			requireEqual(t, got, want)
		})
	}
	t.Run("package", func(t *testing.T) {
		got := slices.Clone(data)
		Sort(got, c)
		requireEqual(t, got, want)
	})
}

// float64TotalCmp orders floats by their bit-pattern total order.
func float64TotalCmp(a, b float64) int {
	return cmp.Compare(bits.Float64Key(math.Float64bits(a)), bits.Float64Key(math.Float64bits(b)))
}

func float32TotalCmp(a, b float32) int {
	return cmp.Compare(bits.Float32Key(math.Float32bits(a)), bits.Float32Key(math.Float32bits(b)))
}

// float32Bits converts to bit patterns so NaNs compare equal to themselves.
func float32Bits(s []float32) []uint32 {
	out := make([]uint32, len(s))
	for i, v := range s {
		out[i] = math.Float32bits(v)
	}
	return out
}

func float64Bits(s []float64) []uint64 {
	out := make([]uint64, len(s))
	for i, v := range s {
		out[i] = math.Float64bits(v)
	}
	return out
}
