// Package radixsort implements a parallel, stable LSD radix sort for
// fixed-width keys: unsigned and signed integers, IEEE floats, 128-bit
// hashes, and composite elements ordered by one leading key field.
//
// # Basic Usage
//
// Sorting with the defaults (one worker per GOMAXPROCS):
//
//	radixsort.SortUnsigned(ids)        // []uint64
//	radixsort.SortFloats(samples)      // []float32, total order
//	radixsort.SortByKey(events, func(e Event) int64 { return e.At }, radixsort.Signed[int64]{})
//
// Reusing a configured engine:
//
//	s, err := radixsort.NewSorter(radixsort.Unsigned[uint32]{},
//	    radixsort.WithWorkers(16), radixsort.WithBufferCapacity(128))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//	s.Sort(keys)
//
// # Algorithm
//
// Keys are split into 8-bit digits by a Codec. For each digit, least
// significant first, the input is divided into contiguous partitions, one
// per worker, and:
//
//  1. every partition builds a 256-bucket histogram of the digit in parallel;
//  2. the histograms are turned into per-partition write offsets, ordered by
//     digit value and then partition index, which keeps the pass stable;
//  3. every partition scatters its elements to the other buffer in parallel,
//     staging them in small per-bucket buffers that are flushed as blocks.
//
// The two buffers swap roles after each pass. When the data is already
// ordered on a digit the pass is skipped and the buffers stay as they are.
// If the result ends in the secondary buffer it is copied back.
//
// A sort call has no failure mode: every bit pattern of a supported key has a
// digit sequence. Running out of memory is fatal, as for any allocation.
//
// # Package Structure
//
//   - Public API: sort.go (Sort and typed shortcuts), sorter.go (Sorter, Stats)
//   - Digit codecs: codec.go (Unsigned, Signed, Float, Hash128), codec_key.go (ByKey, Method)
//   - Pass pipeline: pass.go (orchestration), histogram.go (counting, sortedness scan),
//     scatter.go (derandomizing scatter)
//   - Configuration: options.go (Option, With* functions), config.go (YAML Config), tuning.go
//   - Secondary buffer: arena.go, arena_*.go (anonymous-mapped arena)
//   - Verification: verify.go (IsSorted)
//   - Offsets and partitions: internal/histogram/; workers: internal/workerpool/
package radixsort
