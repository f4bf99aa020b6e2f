package histogram

import "testing"

func TestPartitionCovers(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100, 1001} {
		for _, parts := range []int{1, 2, 3, 8, 17} {
			ranges := Partition(n, parts)
			if len(ranges) != parts {
				t.Fatalf("n=%d parts=%d: got %d ranges", n, parts, len(ranges))
			}
			next := 0
			for p, r := range ranges {
				if r.Start != next {
					t.Fatalf("n=%d parts=%d: range %d starts at %d, want %d", n, parts, p, r.Start, next)
				}
				if r.Len() < 0 {
					t.Fatalf("n=%d parts=%d: range %d has negative length", n, parts, p)
				}
				next = r.End
			}
			if next != n {
				t.Fatalf("n=%d parts=%d: ranges end at %d", n, parts, next)
			}
		}
	}
}

// TestPartitionRemainderToLast checks the even split with the remainder
// assigned to the final partition.
func TestPartitionRemainderToLast(t *testing.T) {
	ranges := Partition(10, 4)
	want := []Range{{0, 2}, {2, 4}, {4, 6}, {6, 10}}
	for i := range want {
		if ranges[i] != want[i] {
			t.Errorf("range %d = %+v, want %+v", i, ranges[i], want[i])
		}
	}
}

func TestPartitionNonPositiveParts(t *testing.T) {
	ranges := Partition(5, 0)
	if len(ranges) != 1 || ranges[0] != (Range{0, 5}) {
		t.Errorf("Partition(5, 0) = %+v, want single full range", ranges)
	}
}

func TestPartitionCount(t *testing.T) {
	tests := []struct {
		n, workers, minLen int
		want               int
	}{
		{n: 100, workers: 8, minLen: 0, want: 8},
		{n: 100, workers: 8, minLen: 1, want: 8},
		{n: 100, workers: 8, minLen: 30, want: 3},
		{n: 10, workers: 8, minLen: 4096, want: 1},
		{n: 1 << 20, workers: 8, minLen: 4096, want: 8},
		{n: 100, workers: 0, minLen: 1, want: 1},
	}
	for _, tt := range tests {
		if got := PartitionCount(tt.n, tt.workers, tt.minLen); got != tt.want {
			t.Errorf("PartitionCount(%d, %d, %d) = %d, want %d", tt.n, tt.workers, tt.minLen, got, tt.want)
		}
	}
}
