package radixsort

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	sorterrors "github.com/tamirms/radixsort/errors"
)

// Config is the file form of the tuning options, for services that keep
// sorter tuning next to the rest of their configuration:
//
//	workers: 16
//	buffer_capacity: 128
//	skip_sorted: true
//	min_partition_len: 8192
//	arena_threshold: 134217728
//	verify: false
//
// Omitted fields keep their defaults.
type Config struct {
	Workers         int    `yaml:"workers"`
	BufferCapacity  *int   `yaml:"buffer_capacity,omitempty"`
	SkipSorted      *bool  `yaml:"skip_sorted,omitempty"`
	MinPartitionLen *int   `yaml:"min_partition_len,omitempty"`
	ArenaThreshold  *int64 `yaml:"arena_threshold,omitempty"`
	Verify          bool   `yaml:"verify"`
}

// LoadConfig decodes a YAML Config from r and validates it. Unknown fields
// are rejected. An empty document yields the zero Config (all defaults).
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", sorterrors.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the options described by c are acceptable to
// NewSorter.
func (c Config) Validate() error {
	sc := defaultSortConfig()
	for _, opt := range c.Options() {
		opt(sc)
	}
	if err := sc.validate(); err != nil {
		return fmt.Errorf("%w: %w", sorterrors.ErrInvalidConfig, err)
	}
	return nil
}

// Options converts c into the equivalent functional options.
func (c Config) Options() []Option {
	opts := []Option{WithWorkers(c.Workers), WithVerify(c.Verify)}
	if c.BufferCapacity != nil {
		opts = append(opts, WithBufferCapacity(*c.BufferCapacity))
	}
	if c.SkipSorted != nil {
		opts = append(opts, WithSkipSorted(*c.SkipSorted))
	}
	if c.MinPartitionLen != nil {
		opts = append(opts, WithMinPartitionLen(*c.MinPartitionLen))
	}
	if c.ArenaThreshold != nil {
		opts = append(opts, WithArenaThreshold(*c.ArenaThreshold))
	}
	return opts
}
