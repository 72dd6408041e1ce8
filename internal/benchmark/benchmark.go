// Package benchmark compares the throughput of the mmr3 hash functions with
// another implementation of MurmurHash3.
//
// Each task is timed over a series of rounds hashing keys of increasing
// lengths. The score of a round is the ratio of the time spent by the other
// implementation to the time spent by mmr3, so a score of 2.0x means that mmr3
// was twice as fast.
package benchmark

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spaolacci/murmur3"

	"github.com/segmentio/mmr3"
	mmr3debug "github.com/segmentio/mmr3/internal/debug"
)

// Round describes one round of a benchmark: Runs calls with a key of Size
// bytes.
type Round struct {
	Name string `json:"name"`
	Size int    `json:"size"`
	Runs int    `json:"runs"`
}

// DefaultRounds is the list of rounds run when none are configured.
var DefaultRounds = []Round{
	{Name: "XS", Size: 1, Runs: 1000000},
	{Name: "S", Size: 10, Runs: 1000000},
	{Name: "M", Size: 100, Runs: 100000},
	{Name: "L", Size: 1000, Runs: 100000},
	{Name: "XL", Size: 10000, Runs: 100000},
}

// Task is a pair of functions computing the same hash, one from mmr3 and one
// from the implementation it is compared to.
type Task struct {
	Name  string
	Ours  func(key []byte)
	Other func(key []byte)
}

// Tasks returns the list of available benchmark tasks.
func Tasks() []Task {
	return []Task{
		{
			Name:  "Hash32",
			Ours:  func(key []byte) { sink32 = mmr3.Hash32(key, 0) },
			Other: func(key []byte) { sink32 = murmur3.Sum32WithSeed(key, 0) },
		},
		{
			Name:  "Hash128",
			Ours:  func(key []byte) { sink128 = mmr3.Hash128x64(key, 0) },
			Other: func(key []byte) { sink128.Lo, sink128.Hi = murmur3.Sum128WithSeed(key, 0) },
		},
	}
}

// LookupTask returns the task with the given name, ignoring case.
func LookupTask(name string) (Task, error) {
	for _, task := range Tasks() {
		if strings.EqualFold(task.Name, name) {
			return task, nil
		}
	}
	return Task{}, fmt.Errorf("unknown benchmark task: %q", name)
}

var (
	sink32  uint32
	sink128 mmr3.Uint128
)

// Score is the result of running a task.
type Score struct {
	Name   string
	Rounds []string
	Ratios []float64
}

// Average returns the mean of the round ratios, rounded to one decimal.
func (s Score) Average() float64 {
	if len(s.Ratios) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range s.Ratios {
		sum += r
	}
	return roundRatio(sum / float64(len(s.Ratios)))
}

// Faster returns true if mmr3 was faster on average.
func (s Score) Faster() bool {
	return s.Average() > 1
}

// Cells returns the row of s in a result table: the task name, the ratio of
// each round, the average ratio, and Y or N depending on whether mmr3 was
// faster.
func (s Score) Cells() []string {
	cells := make([]string, 0, len(s.Ratios)+3)
	cells = append(cells, s.Name)
	for _, r := range s.Ratios {
		cells = append(cells, formatRatio(r))
	}
	cells = append(cells, formatRatio(s.Average()))
	if s.Faster() {
		cells = append(cells, "Y")
	} else {
		cells = append(cells, "N")
	}
	return cells
}

// Run times task over the rounds configured by options.
func Run(task Task, options ...Option) (Score, error) {
	config := DefaultConfig()
	config.Apply(options...)
	if err := config.Validate(); err != nil {
		return Score{}, err
	}
	return run(task, config), nil
}

// RunAll runs each task in sequence with the garbage collector disabled,
// collecting garbage between tasks.
func RunAll(tasks []Task, options ...Option) ([]Score, error) {
	config := DefaultConfig()
	config.Apply(options...)
	if err := config.Validate(); err != nil {
		return nil, err
	}

	mmr3debug.Format("disabling the garbage collector")
	defer debug.SetGCPercent(debug.SetGCPercent(-1))

	scores := make([]Score, 0, len(tasks))
	for _, task := range tasks {
		scores = append(scores, run(task, config))
		runtime.GC()
	}
	return scores, nil
}

func run(task Task, config *Config) Score {
	keys := Keys(config.RandomSeed, config.Rounds)
	score := Score{
		Name:   task.Name,
		Rounds: make([]string, len(config.Rounds)),
		Ratios: make([]float64, len(config.Rounds)),
	}

	for i, round := range config.Rounds {
		runs := config.runs(round)
		ours := config.Timer(task.Ours, keys[i], runs)
		other := config.Timer(task.Other, keys[i], runs)

		score.Rounds[i] = round.Name
		score.Ratios[i] = ratio(other, ours)
		mmr3debug.Format("%s/%s: %d runs, mmr3=%s other=%s ratio=%.1f", task.Name, round.Name, runs, ours, other, score.Ratios[i])
	}
	return score
}

// Keys generates one random key of lowercase ASCII letters per round, with
// the length of the round.
func Keys(seed int64, rounds []Round) [][]byte {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	r := rand.New(rand.NewSource(seed))
	keys := make([][]byte, len(rounds))
	for i, round := range rounds {
		key := make([]byte, round.Size)
		for j := range key {
			key[j] = letters[r.Intn(len(letters))]
		}
		keys[i] = key
	}
	return keys
}

// Timeit measures the time it takes to call fn runs times with key.
func Timeit(fn func([]byte), key []byte, runs int) time.Duration {
	start := time.Now()
	for i := 0; i < runs; i++ {
		fn(key)
	}
	return time.Since(start)
}

func ratio(other, ours time.Duration) float64 {
	if ours <= 0 {
		ours = 1
	}
	return roundRatio(float64(other) / float64(ours))
}

func roundRatio(r float64) float64 {
	return math.Round(r*10) / 10
}

func formatRatio(r float64) string {
	return fmt.Sprintf("%.1fx", r)
}
