package radixsort

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/sirupsen/logrus"

	sorterrors "github.com/tamirms/radixsort/errors"
	"github.com/tamirms/radixsort/internal/encoding"
	"github.com/tamirms/radixsort/internal/histogram"
	"github.com/tamirms/radixsort/internal/workerpool"
)

// Stats describes the most recent Sort call of a Sorter.
type Stats struct {
	Elements      int
	Partitions    int
	Passes        int  // digit passes that ran the scatter phase
	SkippedPasses int  // digit passes skipped because the data was already ordered on that digit
	Swapped       bool // the result was copied back from the secondary buffer
	ArenaBacked   bool // the secondary buffer lived in an anonymous mapping
}

// Sorter is a configured radix sort engine for one element type.
//
// A Sorter owns a pool of persistent workers that is reused by every digit
// pass of every Sort call, so creating one per program (or per element type)
// and reusing it is the intended usage:
//
//	s, err := radixsort.NewSorter(radixsort.Unsigned[uint64]{}, radixsort.WithWorkers(8))
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	for batch := range batches {
//	    s.Sort(batch)
//	}
//
// Sort calls on the same Sorter are serialized.
type Sorter[T any] struct {
	codec       Codec[T]
	cfg         *sortConfig
	capacity    int
	pool        *workerpool.Pool
	ownsPool    bool
	log         logrus.FieldLogger
	stages      *sync.Pool // *stage[T]
	clearStages bool       // T holds pointers; stale staged values must not stay reachable

	mu sync.Mutex

	// Partition layout, recomputed only when the element count changes.
	n       int
	parts   []histogram.Range
	hists   []histogram.Histogram
	offsets []histogram.Offsets
	runs    []histogram.Run

	stats Stats
}

// NewSorter creates a Sorter for codec with the given options.
// The Sorter must be closed to release its workers.
func NewSorter[T any](codec Codec[T], opts ...Option) (*Sorter[T], error) {
	if codec == nil {
		return nil, sorterrors.ErrNilCodec
	}
	if d := codec.Digits(); d < 0 {
		return nil, fmt.Errorf("%w: got %d", sorterrors.ErrInvalidCodec, d)
	}

	cfg := defaultSortConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return newSorter(codec, cfg, workerpool.New(cfg.workers), true), nil
}

// newSorter assembles a Sorter around an existing pool. cfg must be valid.
func newSorter[T any](codec Codec[T], cfg *sortConfig, pool *workerpool.Pool, ownsPool bool) *Sorter[T] {
	capacity := cfg.bufferCapacity
	if !cfg.fixedCapacity {
		capacity = derivedBufferCapacity(encoding.Size[T]())
	}

	s := &Sorter[T]{
		codec:       codec,
		cfg:         cfg,
		capacity:    capacity,
		pool:        pool,
		ownsPool:    ownsPool,
		log:         cfg.logger,
		clearStages: !pointerFree(reflect.TypeFor[T]()),
		n:           -1,
	}
	if ownsPool {
		s.stages = newStagePool[T](capacity)
	} else {
		s.stages = sharedStagePool[T](capacity)
	}
	return s
}

// BufferCapacity returns the per-bucket derandomization buffer capacity in use.
func (s *Sorter[T]) BufferCapacity() int {
	return s.capacity
}

// Workers returns the number of workers, the upper bound on partitions.
func (s *Sorter[T]) Workers() int {
	return s.pool.NumWorkers()
}

// Stats returns the statistics of the most recent Sort call.
func (s *Sorter[T]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Close releases the worker pool. Calling Close multiple times is safe.
// A closed Sorter keeps working, single-threaded.
func (s *Sorter[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsPool {
		return nil
	}
	return s.pool.Close()
}

// layout prepares partitions and per-partition tables for n elements.
func (s *Sorter[T]) layout(n int) {
	if n == s.n {
		return
	}
	parts := histogram.PartitionCount(n, s.pool.NumWorkers(), s.cfg.minPartitionLen)
	s.n = n
	s.parts = histogram.Partition(n, parts)
	s.hists = make([]histogram.Histogram, parts)
	s.offsets = make([]histogram.Offsets, parts)
	s.runs = make([]histogram.Run, parts)
}
