package benchmark

import (
	"fmt"
	"strings"
	"time"
)

// DefaultRandomSeed is the seed of the random source generating keys.
const DefaultRandomSeed = 100

// Config carries the configuration of benchmark runs.
//
// Config implements the Option interface so it can be passed directly to Run
// and RunAll.
type Config struct {
	Rounds     []Round
	Scale      float64
	RandomSeed int64
	Timer      func(fn func([]byte), key []byte, runs int) time.Duration
}

// DefaultConfig returns a new Config value initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{
		Rounds:     DefaultRounds,
		Scale:      1,
		RandomSeed: DefaultRandomSeed,
		Timer:      Timeit,
	}
}

// Apply applies the given list of options to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.ConfigureBenchmark(c)
	}
}

// ConfigureBenchmark applies configuration options from c to config.
func (c *Config) ConfigureBenchmark(config *Config) {
	*config = Config{
		Rounds:     coalesceRounds(c.Rounds, config.Rounds),
		Scale:      coalesceFloat64(c.Scale, config.Scale),
		RandomSeed: coalesceInt64(c.RandomSeed, config.RandomSeed),
		Timer:      coalesceTimer(c.Timer, config.Timer),
	}
}

// Validate returns a non-nil error if the configuration of c is invalid.
func (c *Config) Validate() error {
	const baseName = "benchmark.(*Config)."
	return errorInvalidConfiguration(
		validatePositiveFloat64(baseName+"Scale", c.Scale),
		validateNotEmpty(baseName+"Rounds", len(c.Rounds)),
		validateNotNil(baseName+"Timer", c.Timer == nil),
	)
}

func (c *Config) runs(round Round) int {
	n := int(float64(round.Runs) * c.Scale)
	if n < 1 {
		n = 1
	}
	return n
}

// Option is an interface implemented by types that carry configuration
// options for benchmark runs.
type Option interface {
	ConfigureBenchmark(*Config)
}

// Scale multiplies the number of runs of each round.
//
// Defaults to 1.
func Scale(scale float64) Option {
	return benchmarkOption(func(config *Config) { config.Scale = scale })
}

// Rounds configures the list of rounds run for each task.
//
// Defaults to DefaultRounds.
func Rounds(rounds ...Round) Option {
	return benchmarkOption(func(config *Config) { config.Rounds = rounds })
}

// RandomSeed configures the seed of the random keys.
//
// Defaults to DefaultRandomSeed.
func RandomSeed(seed int64) Option {
	return benchmarkOption(func(config *Config) { config.RandomSeed = seed })
}

type benchmarkOption func(*Config)

func (opt benchmarkOption) ConfigureBenchmark(config *Config) { opt(config) }

func coalesceRounds(r1, r2 []Round) []Round {
	if r1 != nil {
		return r1
	}
	return r2
}

func coalesceFloat64(f1, f2 float64) float64 {
	if f1 != 0 {
		return f1
	}
	return f2
}

func coalesceInt64(i1, i2 int64) int64 {
	if i1 != 0 {
		return i1
	}
	return i2
}

func coalesceTimer(t1, t2 func(func([]byte), []byte, int) time.Duration) func(func([]byte), []byte, int) time.Duration {
	if t1 != nil {
		return t1
	}
	return t2
}

func validatePositiveFloat64(optionName string, optionValue float64) error {
	if optionValue > 0 {
		return nil
	}
	return errorInvalidOptionValue(optionName, optionValue)
}

func validateNotEmpty(optionName string, length int) error {
	if length > 0 {
		return nil
	}
	return errorInvalidOptionValue(optionName, "[]")
}

func validateNotNil(optionName string, isNil bool) error {
	if !isNil {
		return nil
	}
	return errorInvalidOptionValue(optionName, nil)
}

func errorInvalidOptionValue(optionName string, optionValue interface{}) error {
	return fmt.Errorf("invalid option value: %s: %v", optionName, optionValue)
}

func errorInvalidConfiguration(reasons ...error) error {
	var err *invalidConfiguration

	for _, reason := range reasons {
		if reason != nil {
			if err == nil {
				err = new(invalidConfiguration)
			}
			err.reasons = append(err.reasons, reason)
		}
	}

	if err != nil {
		return err
	}

	return nil
}

type invalidConfiguration struct {
	reasons []error
}

func (err *invalidConfiguration) Error() string {
	errorMessage := new(strings.Builder)
	for _, reason := range err.reasons {
		errorMessage.WriteString(reason.Error())
		errorMessage.WriteString("\n")
	}
	errorString := errorMessage.String()
	if errorString != "" {
		errorString = errorString[:len(errorString)-1]
	}
	return errorString
}
