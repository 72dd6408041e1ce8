package main

import (
	"fmt"

	"github.com/segmentio/mmr3"
)

// hashFlags are the options shared by the commands computing digests.
type hashFlags struct {
	Width  int
	Seed   int64
	Signed bool
	Hex    bool
}

// digester validates the flags and returns a function computing the printed
// form of the digest of a key.
func (f hashFlags) digester() (func([]byte) (string, error), error) {
	width, err := mmr3.ParseWidth(f.Width)
	if err != nil {
		return nil, err
	}
	seed, err := mmr3.SeedFromInt64(f.Seed)
	if err != nil {
		return nil, err
	}
	options := []mmr3.Option{mmr3.Seed(seed), mmr3.Signed(f.Signed)}

	return func(key []byte) (string, error) {
		d, err := mmr3.Hash(width, key, options...)
		if err != nil {
			return "", err
		}
		if f.Hex {
			return formatHex(d), nil
		}
		return d.String(), nil
	}, nil
}

func formatHex(d mmr3.Digest) string {
	if d.Width() == mmr3.Width32 {
		return fmt.Sprintf("%08x", d.Uint32())
	}
	u := d.Uint128()
	return fmt.Sprintf("%016x%016x", u.Hi, u.Lo)
}
