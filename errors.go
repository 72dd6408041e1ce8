package mmr3

import "errors"

var (
	// ErrInvalidWidth is returned when a hash width other than 32 or 128 bits
	// is requested.
	ErrInvalidWidth = errors.New("hash width should be either 32 or 128 bits")

	// ErrInvalidSeed is returned when converting an integer which does not fit
	// in 32 bits unsigned to a seed. Seeds are never truncated.
	ErrInvalidSeed = errors.New("seed out of the range of 32 bits unsigned integers")
)
