package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/movecodec-go/internal/errors"
)

// MaxRawMove is one past the largest raw move integer.
const MaxRawMove = 1 << 32

// CensusConfig holds settings for sweeping the raw move space.
type CensusConfig struct {
	// Workers is the number of goroutines classifying spans
	Workers int

	// ChunkSize is the number of raw integers per work item
	ChunkSize uint64

	// Start and End bound the half-open range [Start, End) of raw integers
	Start uint64
	End   uint64
}

// NewCensusConfig creates a CensusConfig covering the used 27-bit layout.
func NewCensusConfig() *CensusConfig {
	return &CensusConfig{
		Workers:   runtime.NumCPU(),
		ChunkSize: 1 << 16,
		Start:     0,
		End:       1 << 27,
	}
}

// Validate checks that the census configuration is valid.
func (c *CensusConfig) Validate() error {
	if c.Start > c.End {
		return fmt.Errorf("census start (%d) > end (%d): %w", c.Start, c.End, errors.ErrInvalidConfig)
	}
	if c.End > MaxRawMove {
		return fmt.Errorf("census end (%d) beyond the 32-bit space: %w", c.End, errors.ErrInvalidConfig)
	}
	if c.ChunkSize == 0 {
		return fmt.Errorf("census chunk size must be positive: %w", errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("census needs at least one worker, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// Len returns the number of raw integers in the range.
func (c *CensusConfig) Len() uint64 {
	if c.End <= c.Start {
		return 0
	}
	return c.End - c.Start
}
