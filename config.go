package mmr3

import (
	"fmt"
	"math"
)

// The Config type carries the configuration options of the Hash function.
//
// Config implements the Option interface so it can be used directly as
// argument to Hash when needed, for example:
//
//	d, err := mmr3.Hash(mmr3.Width128, key, &mmr3.Config{
//		Seed:   42,
//		Signed: true,
//	})
type Config struct {
	Seed   uint32
	Signed bool
}

// Apply applies the given list of options to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.ConfigureHash(c)
	}
}

// ConfigureHash applies configuration options from c to config.
func (c *Config) ConfigureHash(config *Config) {
	*config = Config{
		Seed:   c.Seed,
		Signed: c.Signed,
	}
}

// Option is an interface implemented by types that carry configuration
// options for the Hash function.
type Option interface {
	ConfigureHash(*Config)
}

// Seed creates a configuration option which sets the seed used as initial
// value of the hash lanes.
//
// Defaults to zero.
func Seed(seed uint32) Option {
	return hashOption(func(config *Config) { config.Seed = seed })
}

// Signed creates a configuration option which configures whether digests are
// interpreted as two's complement signed integers.
//
// Defaults to false.
func Signed(signed bool) Option {
	return hashOption(func(config *Config) { config.Signed = signed })
}

// SeedFromInt64 converts seed to the 32 bits unsigned integer type of seeds.
//
// Values out of the [0, 2^32) range are rejected with an error wrapping
// ErrInvalidSeed rather than being masked to their lower 32 bits.
func SeedFromInt64(seed int64) (uint32, error) {
	if seed < 0 || seed > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSeed, seed)
	}
	return uint32(seed), nil
}

type hashOption func(*Config)

func (opt hashOption) ConfigureHash(config *Config) { opt(config) }
