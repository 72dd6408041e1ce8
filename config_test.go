package mmr3_test

import (
	"errors"
	"math"
	"testing"

	"github.com/segmentio/mmr3"
)

func TestSeedFromInt64(t *testing.T) {
	for _, seed := range []int64{0, 1, 100, math.MaxInt32, math.MaxUint32} {
		s, err := mmr3.SeedFromInt64(seed)
		if err != nil {
			t.Errorf("SeedFromInt64(%d): %v", seed, err)
		}
		if int64(s) != seed {
			t.Errorf("SeedFromInt64(%d): got %d", seed, s)
		}
	}

	for _, seed := range []int64{-1, math.MinInt32, math.MaxUint32 + 1, math.MaxInt64, math.MinInt64} {
		s, err := mmr3.SeedFromInt64(seed)
		if !errors.Is(err, mmr3.ErrInvalidSeed) {
			t.Errorf("SeedFromInt64(%d): got error %v; want %v", seed, err, mmr3.ErrInvalidSeed)
		}
		if s != 0 {
			t.Errorf("SeedFromInt64(%d): got %d on error; want 0", seed, s)
		}
	}
}

func TestConfigApply(t *testing.T) {
	config := mmr3.Config{}
	config.Apply(mmr3.Seed(42), mmr3.Signed(true))

	if config.Seed != 42 || !config.Signed {
		t.Errorf("unexpected configuration: %+v", config)
	}

	config.Apply(&mmr3.Config{Seed: 1})
	if config.Seed != 1 || config.Signed {
		t.Errorf("configuration not replaced: %+v", config)
	}
}
