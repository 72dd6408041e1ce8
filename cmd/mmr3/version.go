package main

import (
	"fmt"
	"io"

	"github.com/segmentio/mmr3"
	"github.com/segmentio/mmr3/internal/benchmark"
)

type versionFlags struct {
	_ struct{} `help:"Print the version of mmr3 and of the reference implementation"`
}

func versionCommand(stdout io.Writer, _ versionFlags) error {
	_, err := fmt.Fprintf(stdout, "mmr3 version: %s\nmurmur3 version: %s\n",
		mmr3.Version, benchmark.ModuleVersion(benchmark.ReferenceModule))
	return err
}
