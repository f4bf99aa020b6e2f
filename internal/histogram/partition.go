package histogram

// Range is the half-open index interval [Start, End) of one partition.
type Range struct {
	Start int
	End   int
}

// Len returns the number of elements in r.
func (r Range) Len() int {
	return r.End - r.Start
}

// Partition splits n elements into parts contiguous, non-overlapping ranges
// that together cover [0, n). Every range gets n/parts elements and the last
// one also takes the remainder. parts < 1 is treated as 1.
func Partition(n, parts int) []Range {
	if parts < 1 {
		parts = 1
	}
	ranges := make([]Range, parts)
	width := n / parts
	for p := range ranges {
		ranges[p] = Range{Start: p * width, End: (p + 1) * width}
	}
	ranges[parts-1].End = n
	return ranges
}

// PartitionCount picks how many partitions to use for n elements given the
// available workers and the minimum number of elements worth a partition.
// The result is always in [1, workers] (or 1 when workers < 1).
func PartitionCount(n, workers, minLen int) int {
	if workers < 1 {
		return 1
	}
	if minLen < 1 {
		return workers
	}
	parts := n / minLen
	if parts < 1 {
		return 1
	}
	return min(parts, workers)
}
