package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/segmentio/mmr3/internal/benchmark"
	"github.com/segmentio/mmr3/internal/debug"
)

type benchFlags struct {
	_      struct{} `help:"Compare the speed of mmr3 with github.com/spaolacci/murmur3"`
	Format string   `flag:"--format" help:"Output format, markdown or json" default:"markdown"`
	Tasks  string   `flag:"--tasks" help:"Comma separated list of tasks to run" default:"hash32,hash128"`
	Scale  float64  `flag:"--scale" help:"Multiplier of the number of runs of each round" default:"1"`
	Debug  bool     `flag:"--debug" help:"Display debugging logs" default:"false"`
}

func benchCommand(stdout io.Writer, flags benchFlags) error {
	debug.Toggle(flags.Debug)

	var write func(*benchmark.Report, io.Writer) error
	switch strings.ToLower(flags.Format) {
	case "markdown", "md":
		write = (*benchmark.Report).WriteMarkdown
	case "json":
		write = (*benchmark.Report).WriteJSON
	default:
		err := fmt.Errorf("unsupported output format: %q", flags.Format)
		perrorf("%s", err)
		return err
	}

	var tasks []benchmark.Task
	for _, name := range strings.Split(flags.Tasks, ",") {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		task, err := benchmark.LookupTask(name)
		if err != nil {
			perrorf("%s", err)
			return err
		}
		tasks = append(tasks, task)
	}

	debug.Format("benchmarking %d tasks", len(tasks))
	scores, err := benchmark.RunAll(tasks, benchmark.Scale(flags.Scale))
	if err != nil {
		perrorf("%s", err)
		return err
	}
	return write(benchmark.NewReport(scores), stdout)
}
