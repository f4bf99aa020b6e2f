// Package histogram holds the codec-independent bookkeeping of a radix pass:
// per-partition digit histograms, the offset tables derived from them, and
// the partition layout they are indexed by.
package histogram

// Buckets is the number of distinct values of one 8-bit digit.
const Buckets = 256

// Histogram counts occurrences of each digit value within one partition
// for one digit pass. The entries sum to the partition's length.
type Histogram [Buckets]int

// Offsets holds, for one partition, the destination index at which its
// elements of each digit value start. A scatter advances the entries as it
// writes, so a table is consumed by the pass it was resolved for.
type Offsets [Buckets]int

// Reset zeroes h.
func (h *Histogram) Reset() {
	*h = Histogram{}
}

// Total returns the number of elements counted in h.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}
	return total
}

// Add accumulates o into h.
func (h *Histogram) Add(o *Histogram) {
	for i := range h {
		h[i] += o[i]
	}
}

// Resolve converts per-partition histograms, given in partition order, into
// write offsets. Runs are laid out by digit value first and partition index
// second: for a fixed value, partition p's run immediately precedes partition
// p+1's, and the last run of value v immediately precedes the first run of
// value v+1. That layout is what makes the pass stable.
//
// offsets must have the same length as hists. Returns the total element count.
func Resolve(hists []Histogram, offsets []Offsets) int {
	if len(offsets) != len(hists) {
		panic("histogram: Resolve: offsets and histograms differ in length")
	}
	sum := 0
	for v := range Buckets {
		for p := range hists {
			offsets[p][v] = sum
			sum += hists[p][v]
		}
	}
	return sum
}

// Run summarizes one partition's digit sequence for the sortedness check.
type Run struct {
	Len    int
	Sorted bool  // digits are non-decreasing within the partition
	First  uint8 // digit of the first element; meaningless when Len == 0
	Last   uint8 // digit of the last element; meaningless when Len == 0
}

// Ordered reports whether the concatenation of runs, in partition order, is
// non-decreasing: every run is internally sorted and no run starts below the
// end of the closest non-empty run before it. Empty runs are ignored.
func Ordered(runs []Run) bool {
	prev := -1
	for _, r := range runs {
		if r.Len == 0 {
			continue
		}
		if !r.Sorted || int(r.First) < prev {
			return false
		}
		prev = int(r.Last)
	}
	return true
}
