package main

import (
	"fmt"
	"io"
)

type stringFlags struct {
	_      struct{} `help:"Print MurmurHash3 digests of the strings passed as arguments"`
	Width  int      `flag:"-w,--width" help:"Width of the digests in bits, 32 or 128" default:"32"`
	Seed   int64    `flag:"--seed" help:"Seed of the hash function, in [0, 2^32)" default:"0"`
	Signed bool     `flag:"--signed" help:"Print digests as signed integers" default:"false"`
	Hex    bool     `flag:"--hex" help:"Print digests in hexadecimal" default:"false"`
}

func stringCommand(stdout io.Writer, flags stringFlags, args []string) error {
	h := hashFlags{Width: flags.Width, Seed: flags.Seed, Signed: flags.Signed, Hex: flags.Hex}

	digest, err := h.digester()
	if err != nil {
		perrorf("%s", err)
		return err
	}

	for _, arg := range args {
		s, err := digest([]byte(arg))
		if err != nil {
			perrorf("%s", err)
			return err
		}
		fmt.Fprintf(stdout, "%s  %q\n", s, arg)
	}
	return nil
}
