package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/segmentio/mmr3/compress"
	"github.com/segmentio/mmr3/compress/brotli"
	"github.com/segmentio/mmr3/compress/gzip"
	"github.com/segmentio/mmr3/compress/lz4"
	"github.com/segmentio/mmr3/compress/snappy"
	"github.com/segmentio/mmr3/compress/uncompressed"
	"github.com/segmentio/mmr3/compress/zstd"
	"github.com/segmentio/mmr3/internal/debug"
)

var (
	codecs   compress.Registry
	identity = new(uncompressed.Codec)
)

func init() {
	codecs.Register(new(gzip.Codec))
	codecs.Register(new(snappy.Codec))
	codecs.Register(new(brotli.Codec))
	codecs.Register(new(zstd.Codec))
	codecs.Register(new(lz4.Codec))
}

type sumFlags struct {
	_          struct{} `help:"Print MurmurHash3 digests of files, or of stdin if none are given"`
	Width      int      `flag:"-w,--width" help:"Width of the digests in bits, 32 or 128" default:"32"`
	Seed       int64    `flag:"--seed" help:"Seed of the hash function, in [0, 2^32)" default:"0"`
	Signed     bool     `flag:"--signed" help:"Print digests as signed integers" default:"false"`
	Hex        bool     `flag:"--hex" help:"Print digests in hexadecimal" default:"false"`
	Decompress bool     `flag:"-d,--decompress" help:"Hash the decompressed content of .gz, .zst, .lz4, .br and .sz files" default:"false"`
	Jobs       int      `flag:"-j,--jobs" help:"Number of files hashed concurrently" default:"4"`
	Debug      bool     `flag:"--debug" help:"Display debugging logs" default:"false"`
}

func (f sumFlags) hashFlags() hashFlags {
	return hashFlags{Width: f.Width, Seed: f.Seed, Signed: f.Signed, Hex: f.Hex}
}

func sumCommand(ctx context.Context, stdin io.Reader, stdout io.Writer, flags sumFlags, files []string) error {
	debug.Toggle(flags.Debug)

	digest, err := flags.hashFlags().digester()
	if err != nil {
		perrorf("%s", err)
		return err
	}
	if len(files) == 0 {
		files = []string{"-"}
	}

	// stdin can only be consumed once, every "-" argument shares its content.
	var input []byte
	for _, name := range files {
		if name == "-" {
			if input, err = io.ReadAll(stdin); err != nil {
				perrorf("reading stdin: %s", err)
				return err
			}
			debug.Format("read %d bytes from stdin", len(input))
			break
		}
	}

	jobs := flags.Jobs
	if jobs < 1 {
		jobs = 1
	}

	results := make([]string, len(files))
	errs := make([]error, len(files))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for i := range files {
		i := i
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := readInput(input, files[i], flags.Decompress)
			if err == nil {
				results[i], err = digest(data)
			}
			errs[i] = err
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, name := range files {
		if errs[i] != nil {
			perrorf("%s: %s", name, errs[i])
			failed++
			continue
		}
		fmt.Fprintf(stdout, "%s  %s\n", results[i], name)
	}

	if failed != 0 {
		return fmt.Errorf("%d of %d inputs could not be hashed", failed, len(files))
	}
	return nil
}

func readInput(stdin []byte, name string, decompress bool) ([]byte, error) {
	if name == "-" {
		return stdin, nil
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	debug.Format("read %d bytes from %s", len(data), name)

	if decompress {
		codec := codecFor(name)
		if data, err = codec.Decode(nil, data); err != nil {
			return nil, fmt.Errorf("decoding %s content: %w", codec, err)
		}
		debug.Format("decoded %s as %s to %d bytes", name, codec, len(data))
	}
	return data, nil
}

// codecFor returns the codec registered for the extension of name, falling
// back to the identity codec for unknown extensions.
func codecFor(name string) compress.Codec {
	if codec := codecs.ForPath(name); codec != nil {
		return codec
	}
	return identity
}
