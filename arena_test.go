package radixsort

import (
	"reflect"
	"slices"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
)

func TestPointerFree(t *testing.T) {
	tests := []struct {
		typ  reflect.Type
		want bool
	}{
		{reflect.TypeFor[uint64](), true},
		{reflect.TypeFor[float32](), true},
		{reflect.TypeFor[xxh3.Uint128](), true},
		{reflect.TypeFor[record](), true},
		{reflect.TypeFor[[4]int16](), true},
		{reflect.TypeFor[struct{}](), true},
		{reflect.TypeFor[[0]*int](), true},
		{reflect.TypeFor[string](), false},
		{reflect.TypeFor[*int](), false},
		{reflect.TypeFor[[]byte](), false},
		{reflect.TypeFor[labeled](), false},
		{reflect.TypeFor[[2]labeled](), false},
		{reflect.TypeFor[map[int]int](), false},
		{reflect.TypeFor[any](), false},
	}
	for _, tt := range tests {
		if got := pointerFree(tt.typ); got != tt.want {
			t.Errorf("pointerFree(%v) = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestScratchArena(t *testing.T) {
	s := newScratch[uint64](1000, 1, logrus.StandardLogger())
	if !s.arena() {
		t.Fatal("pointer-free buffer above threshold is not mapped")
	}
	if len(s.data) != 1000 {
		t.Fatalf("len(data) = %d, want 1000", len(s.data))
	}

	for i := range s.data {
		s.data[i] = uint64(i) * 3
	}
	if got := s.data[999]; got != 999*3 {
		t.Errorf("data[999] = %d, want %d", got, 999*3)
	}

	if err := s.release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if s.data != nil {
		t.Error("data still set after release")
	}
	if err := s.release(); err != nil {
		t.Fatalf("second release: %v", err)
	}
}

func TestScratchHeap(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		threshold int64
	}{
		{"disabled", 1000, 0},
		{"below threshold", 10, 1 << 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newScratch[uint32](tt.n, tt.threshold, logrus.StandardLogger())
			if s.arena() {
				t.Error("buffer is mapped")
			}
			if len(s.data) != tt.n {
				t.Errorf("len(data) = %d, want %d", len(s.data), tt.n)
			}
			if err := s.release(); err != nil {
				t.Errorf("release: %v", err)
			}
		})
	}

	s := newScratch[labeled](100, 1, logrus.StandardLogger())
	if s.arena() {
		t.Error("pointer-bearing type was mapped")
	}
	if err := s.release(); err != nil {
		t.Errorf("release: %v", err)
	}
}

func TestSortArenaBacked(t *testing.T) {
	rng := newTestRNG(t)
	data := randomSlice(50_000, rng.Uint64)
	want := slices.Clone(data)
	slices.Sort(want)

	s := newTestSorter(t, Unsigned[uint64]{}, append(parallelOpts(4), WithArenaThreshold(1))...)
	s.Sort(data)
	requireEqual(t, data, want)
	if !s.Stats().ArenaBacked {
		t.Error("secondary buffer was not mapped")
	}

	// Odd pass count: the result is copied out of the mapping before unmap.
	small := randomSlice(50_000, func() uint8 { return uint8(rng.Uint32()) })
	bs := newTestSorter(t, Unsigned[uint8]{}, append(parallelOpts(4), WithArenaThreshold(1))...)
	bs.Sort(small)
	if !slices.IsSorted(small) {
		t.Error("output not sorted")
	}
	if stats := bs.Stats(); !stats.Swapped || !stats.ArenaBacked {
		t.Errorf("stats = %+v, want swapped and arena-backed", stats)
	}
}

func TestSortPointerTypeNeverArena(t *testing.T) {
	data := []labeled{{3, "c"}, {1, "a"}, {2, "b"}}
	codec := ByKey(func(l labeled) int32 { return l.Rank }, Signed[int32]{})
	s := newTestSorter(t, codec, WithArenaThreshold(1))
	s.Sort(data)
	requireEqual(t, data, []labeled{{1, "a"}, {2, "b"}, {3, "c"}})
	if s.Stats().ArenaBacked {
		t.Error("pointer-bearing type was arena-backed")
	}
}
