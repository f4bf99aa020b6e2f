package radixsort

import "github.com/tamirms/radixsort/internal/histogram"

// countDigits adds the histogram of digit pass over src to h.
// Four interleaved tables break the store-to-load dependency that runs of
// equal digits create on a single table.
func countDigits[T any](src []T, c Codec[T], pass int, h *histogram.Histogram) {
	var h1, h2, h3 histogram.Histogram
	i := 0
	for ; i+4 <= len(src); i += 4 {
		h[c.Digit(src[i], pass)]++
		h1[c.Digit(src[i+1], pass)]++
		h2[c.Digit(src[i+2], pass)]++
		h3[c.Digit(src[i+3], pass)]++
	}
	for ; i < len(src); i++ {
		h[c.Digit(src[i], pass)]++
	}
	h.Add(&h1)
	h.Add(&h2)
	h.Add(&h3)
}

// scanDigits overwrites h with the histogram of digit pass over src and
// summarizes the partition for the sortedness check. Monotonicity is
// tracked only until the first descent; the remainder is plainly counted.
func scanDigits[T any](src []T, c Codec[T], pass int, h *histogram.Histogram) histogram.Run {
	h.Reset()
	run := histogram.Run{Len: len(src), Sorted: true}
	if len(src) == 0 {
		return run
	}

	last := c.Digit(src[0], pass)
	run.First = last
	i := 0
	for ; i < len(src); i++ {
		d := c.Digit(src[i], pass)
		h[d]++
		if d < last {
			run.Sorted = false
			i++
			break
		}
		last = d
	}
	if run.Sorted {
		run.Last = last
		return run
	}

	countDigits(src[i:], c, pass, h)
	run.Last = c.Digit(src[len(src)-1], pass)
	return run
}
