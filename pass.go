package radixsort

import (
	"fmt"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"

	sorterrors "github.com/tamirms/radixsort/errors"
	"github.com/tamirms/radixsort/internal/histogram"
)

// Sort reorders data in place so that element digit sequences are
// non-decreasing, most significant digit first. Elements with equal digit
// sequences keep their input order.
//
// Each digit pass, least significant first, counts digits per partition in
// parallel, resolves write offsets, then scatters every partition in
// parallel into the other buffer. Input already in order is detected up
// front and left untouched; otherwise passes on which the data is already
// ordered on the digit are skipped. Inputs shorter than two elements are
// left untouched.
func (s *Sorter[T]) Sort(data []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats = Stats{Elements: len(data)}
	digits := s.codec.Digits()
	if len(data) < 2 || digits == 0 {
		return
	}

	s.layout(len(data))
	s.stats.Partitions = len(s.parts)

	// Input ordered on the full key is ordered on every digit, but the
	// per-digit check cannot see that for the low digits.
	if s.cfg.skipSorted && s.ordered(data) {
		s.stats.SkippedPasses = digits
		s.log.WithFields(logrus.Fields{
			"elements":   len(data),
			"partitions": len(s.parts),
		}).Debug("radixsort: input already ordered, all passes skipped")
		return
	}

	var digest uint64
	if s.cfg.verify {
		digest = s.digest(data)
	}

	// The secondary buffer is allocated on the first pass that scatters, so
	// fully ordered input never pays for it.
	var buf *scratch[T]
	src := data
	var dst []T
	for pass := range digits {
		if s.count(src, pass) {
			s.stats.SkippedPasses++
			s.log.WithFields(logrus.Fields{
				"pass":       pass,
				"elements":   len(data),
				"partitions": len(s.parts),
			}).Debug("radixsort: digit already ordered, pass skipped")
			continue
		}

		if buf == nil {
			buf = newScratch[T](len(data), s.cfg.arenaThreshold, s.log)
			s.stats.ArenaBacked = buf.arena()
			dst = buf.data
		}
		histogram.Resolve(s.hists, s.offsets)
		s.scatter(src, dst, pass)
		src, dst = dst, src
		s.stats.Passes++
	}

	// An odd number of scatters leaves the result in the secondary buffer.
	if s.stats.Passes%2 == 1 {
		s.copyBack(data, src)
		s.stats.Swapped = true
	}
	if buf != nil {
		if err := buf.release(); err != nil {
			s.log.WithError(err).Warn("radixsort: releasing scratch buffer")
		}
	}

	s.log.WithFields(logrus.Fields{
		"elements": len(data),
		"passes":   s.stats.Passes,
		"skipped":  s.stats.SkippedPasses,
		"swapped":  s.stats.Swapped,
	}).Debug("radixsort: sorted")

	if s.cfg.verify {
		s.check(data, digits, digest)
	}
}

// count builds this pass's histograms for every partition. With the
// sortedness check enabled it also reports whether src is already ordered on
// the digit, in which case the pass must be skipped.
func (s *Sorter[T]) count(src []T, pass int) (ordered bool) {
	if !s.cfg.skipSorted {
		s.pool.ForEach(len(s.parts), func(p int) {
			r := s.parts[p]
			s.hists[p].Reset()
			countDigits(src[r.Start:r.End], s.codec, pass, &s.hists[p])
		})
		return false
	}

	s.pool.ForEach(len(s.parts), func(p int) {
		r := s.parts[p]
		s.runs[p] = scanDigits(src[r.Start:r.End], s.codec, pass, &s.hists[p])
	})
	return histogram.Ordered(s.runs)
}

// ordered reports whether data is already in full-key order. Each partition
// is scanned in parallel together with the last element of the partition
// before it.
func (s *Sorter[T]) ordered(data []T) bool {
	var unordered atomic.Bool
	s.pool.ForEach(len(s.parts), func(p int) {
		r := s.parts[p]
		if r.Start > 0 && compareDigits(s.codec, data[r.Start-1], data[r.Start]) > 0 {
			unordered.Store(true)
			return
		}
		if !IsSorted(data[r.Start:r.End], s.codec) {
			unordered.Store(true)
		}
	})
	return !unordered.Load()
}

// scatter runs the derandomizing scatter of every partition from src to dst.
func (s *Sorter[T]) scatter(src, dst []T, pass int) {
	s.pool.ForEach(len(s.parts), func(p int) {
		r := s.parts[p]
		st := s.stages.Get().(*stage[T])
		st.scatter(src[r.Start:r.End], dst, s.codec, pass, &s.offsets[p])
		if s.clearStages {
			clear(st.slots)
		}
		s.stages.Put(st)
	})
}

// copyBack copies the sorted result from the secondary buffer into the
// caller's slice, one partition per worker.
func (s *Sorter[T]) copyBack(data, sorted []T) {
	s.pool.ForEach(len(s.parts), func(p int) {
		r := s.parts[p]
		copy(data[r.Start:r.End], sorted[r.Start:r.End])
	})
}

// digest returns an order-independent digest of the keys in data: the
// wrapping sum of the xxHash64 of each element's digit string.
func (s *Sorter[T]) digest(data []T) uint64 {
	digits := s.codec.Digits()
	sums := make([]uint64, len(s.parts))
	s.pool.ForEach(len(s.parts), func(p int) {
		r := s.parts[p]
		key := make([]byte, digits)
		var sum uint64
		for _, v := range data[r.Start:r.End] {
			for i := range digits {
				key[i] = s.codec.Digit(v, i)
			}
			sum += xxhash.Sum64(key)
		}
		sums[p] = sum
	})

	var total uint64
	for _, sum := range sums {
		total += sum
	}
	return total
}

// check verifies a finished sort and panics if the codec broke its contract.
func (s *Sorter[T]) check(data []T, digits int, digest uint64) {
	if got := s.codec.Digits(); got != digits {
		panic(fmt.Errorf("%w: digit count changed from %d to %d during sort", sorterrors.ErrCodecContract, digits, got))
	}

	// Chunks follow the worker count, not the partitions.
	var unordered atomic.Bool
	s.pool.ParallelFor(len(data), func(start, end int) {
		// Include the element before the chunk to check the boundary.
		if !IsSorted(data[max(start-1, 0):end], s.codec) {
			unordered.Store(true)
		}
	})
	if unordered.Load() {
		panic(fmt.Errorf("%w: output is out of order", sorterrors.ErrCodecContract))
	}

	if got := s.digest(data); got != digest {
		panic(fmt.Errorf("%w: key multiset changed (digest %#x, want %#x)", sorterrors.ErrCodecContract, got, digest))
	}
}
