// Command mmr3 computes MurmurHash3 digests and benchmarks the mmr3 package.
//
// Usage:
//
//	mmr3 sum [-w 32|128] [--seed N] [--signed] [--hex] [-d] [-j N] [FILE...]
//	mmr3 string [-w 32|128] [--seed N] [--signed] [--hex] STRING...
//	mmr3 bench [--format markdown|json] [--tasks hash32,hash128] [--scale F]
//	mmr3 version
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	color "github.com/logrusorgru/aurora/v3"
	"github.com/segmentio/cli"
)

func main() {
	cli.Exec(cli.CommandSet{
		"sum": cli.Command(func(flags sumFlags, files []string) error {
			return sumCommand(context.Background(), os.Stdin, os.Stdout, flags, files)
		}),
		"string": cli.Command(func(flags stringFlags, args []string) error {
			return stringCommand(os.Stdout, flags, args)
		}),
		"bench": cli.Command(func(flags benchFlags) error {
			return benchCommand(os.Stdout, flags)
		}),
		"version": cli.Command(func(flags versionFlags) error {
			return versionCommand(os.Stdout, flags)
		}),
	})
}

func perrorf(format string, args ...interface{}) {
	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, color.Red(format).String(), args...)
}
