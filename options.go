package radixsort

import (
	"fmt"

	"github.com/sirupsen/logrus"

	sorterrors "github.com/tamirms/radixsort/errors"
)

const (
	// defaultMinPartitionLen is the smallest input share worth a partition of
	// its own. Below it the fan-out cost exceeds the counting and scatter work.
	defaultMinPartitionLen = 4096

	// defaultArenaThreshold is the secondary buffer size, in bytes, from which
	// pointer-free element types get an anonymous-mapped arena.
	defaultArenaThreshold = 64 << 20
)

// Option is a functional option for configuring a Sorter.
type Option func(*sortConfig)

type sortConfig struct {
	workers         int // 0 selects GOMAXPROCS
	bufferCapacity  int
	fixedCapacity   bool // false selects the cache-derived default
	skipSorted      bool
	minPartitionLen int
	arenaThreshold  int64 // 0 disables the arena
	verify          bool
	logger          logrus.FieldLogger
}

func defaultSortConfig() *sortConfig {
	return &sortConfig{
		skipSorted:      true,
		minPartitionLen: defaultMinPartitionLen,
		arenaThreshold:  defaultArenaThreshold,
		logger:          logrus.StandardLogger(),
	}
}

// validate checks every field against its allowed range.
func (c *sortConfig) validate() error {
	if c.workers < 0 {
		return fmt.Errorf("%w: got %d", sorterrors.ErrInvalidWorkers, c.workers)
	}
	if c.fixedCapacity && (c.bufferCapacity < 1 || c.bufferCapacity > MaxBufferCapacity) {
		return fmt.Errorf("%w: got %d, want 1..%d", sorterrors.ErrInvalidBufferCapacity, c.bufferCapacity, MaxBufferCapacity)
	}
	if c.minPartitionLen < 0 {
		return fmt.Errorf("%w: got %d", sorterrors.ErrInvalidPartitionLen, c.minPartitionLen)
	}
	if c.arenaThreshold < 0 {
		return fmt.Errorf("%w: got %d", sorterrors.ErrInvalidArenaThreshold, c.arenaThreshold)
	}
	return nil
}

// WithWorkers sets the number of workers, which is also the upper bound on
// the number of partitions. 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *sortConfig) {
		c.workers = n
	}
}

// WithBufferCapacity sets how many elements each derandomization buffer holds
// per bucket before it is flushed. Every worker uses the same capacity for
// the lifetime of the Sorter. Must be in [1, MaxBufferCapacity]; when unset,
// DefaultBufferCapacity is used, reduced if 256 buffers of T would not fit in
// half the L2 cache.
func WithBufferCapacity(n int) Option {
	return func(c *sortConfig) {
		c.bufferCapacity = n
		c.fixedCapacity = true
	}
}

// WithSkipSorted enables or disables the sortedness check that skips digit
// passes on which the data is already ordered. Enabled by default.
func WithSkipSorted(enabled bool) Option {
	return func(c *sortConfig) {
		c.skipSorted = enabled
	}
}

// WithMinPartitionLen sets the minimum number of elements per partition.
// Inputs shorter than two partitions run single-threaded. 0 always uses one
// partition per worker.
func WithMinPartitionLen(n int) Option {
	return func(c *sortConfig) {
		c.minPartitionLen = n
	}
}

// WithArenaThreshold sets the secondary buffer size in bytes at which
// pointer-free element types are staged in an anonymous memory mapping
// instead of the Go heap. The mapping is not zero-filled up front and is
// returned to the OS when the sort call ends. 0 disables the arena.
func WithArenaThreshold(bytes int64) Option {
	return func(c *sortConfig) {
		c.arenaThreshold = bytes
	}
}

// WithVerify makes every sort check its own output: the result must be
// ordered and hold the same multiset of keys as the input. A failure means
// the codec broke its contract and panics with an error wrapping
// errors.ErrCodecContract. Intended for testing codecs; it adds two scans.
func WithVerify(enabled bool) Option {
	return func(c *sortConfig) {
		c.verify = enabled
	}
}

// WithLogger sets the logger for pass-level debug output.
// The default is logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *sortConfig) {
		if l == nil {
			l = logrus.StandardLogger()
		}
		c.logger = l
	}
}
