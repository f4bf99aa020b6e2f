package radixsort

import "cmp"

// IsSorted reports whether data is in non-decreasing digit order under codec,
// comparing most significant digits first.
func IsSorted[T any](data []T, codec Codec[T]) bool {
	for i := 1; i < len(data); i++ {
		if compareDigits(codec, data[i-1], data[i]) > 0 {
			return false
		}
	}
	return true
}

// compareDigits compares the digit sequences of a and b, most significant
// digit first.
func compareDigits[T any](c Codec[T], a, b T) int {
	for i := c.Digits() - 1; i >= 0; i-- {
		if da, db := c.Digit(a, i), c.Digit(b, i); da != db {
			return cmp.Compare(da, db)
		}
	}
	return 0
}
