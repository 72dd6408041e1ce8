package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segmentio/mmr3"
	"github.com/segmentio/mmr3/compress/gzip"
	"github.com/segmentio/mmr3/compress/uncompressed"
	"github.com/segmentio/mmr3/compress/zstd"
)

func TestStringCommand(t *testing.T) {
	tests := []struct {
		scenario string
		flags    stringFlags
		output   string
	}{
		{
			scenario: "32 bits",
			flags:    stringFlags{Width: 32},
			output:   "613153351  \"hello\"\n",
		},
		{
			scenario: "32 bits hexadecimal",
			flags:    stringFlags{Width: 32, Hex: true},
			output:   "248bfa47  \"hello\"\n",
		},
		{
			scenario: "128 bits",
			flags:    stringFlags{Width: 128},
			output:   "121118445609844952839898260755277781762  \"hello\"\n",
		},
		{
			scenario: "128 bits hexadecimal",
			flags:    stringFlags{Width: 128, Hex: true},
			output:   "5b1e906a48ae1d19cbd8a7b341bd9b02  \"hello\"\n",
		},
		{
			scenario: "seeded signed 128 bits",
			flags:    stringFlags{Width: 128, Seed: 100, Signed: true},
			output:   "-5406129137293606925601101536342076629  \"foo\"\n",
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			arg := "hello"
			if test.flags.Seed != 0 {
				arg = "foo"
			}
			out := new(bytes.Buffer)
			require.NoError(t, stringCommand(out, test.flags, []string{arg}))
			assert.Equal(t, test.output, out.String())
		})
	}
}

func TestStringCommandInvalidFlags(t *testing.T) {
	out := new(bytes.Buffer)

	err := stringCommand(out, stringFlags{Width: 64}, []string{"hello"})
	assert.ErrorIs(t, err, mmr3.ErrInvalidWidth)

	err = stringCommand(out, stringFlags{Width: 32, Seed: -1}, []string{"hello"})
	assert.ErrorIs(t, err, mmr3.ErrInvalidSeed)

	err = stringCommand(out, stringFlags{Width: 32, Seed: 1 << 32}, []string{"hello"})
	assert.ErrorIs(t, err, mmr3.ErrInvalidSeed)

	assert.Empty(t, out.String())
}

func TestSumCommand(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "hello.txt")
	compressed := filepath.Join(dir, "hello.txt.gz")
	zstandard := filepath.Join(dir, "hello.txt.zst")

	require.NoError(t, os.WriteFile(plain, []byte("hello"), 0o644))

	b, err := new(gzip.Codec).Encode(nil, []byte("hello"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(compressed, b, 0o644))

	b, err = new(zstd.Codec).Encode(nil, []byte("hello"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(zstandard, b, 0o644))

	files := []string{plain, compressed, zstandard}

	t.Run("decompress", func(t *testing.T) {
		out := new(bytes.Buffer)
		flags := sumFlags{Width: 32, Decompress: true, Jobs: 2}
		require.NoError(t, sumCommand(context.Background(), nil, out, flags, files))
		assert.Equal(t,
			"613153351  "+plain+"\n"+
				"613153351  "+compressed+"\n"+
				"613153351  "+zstandard+"\n",
			out.String())
	})

	t.Run("raw", func(t *testing.T) {
		out := new(bytes.Buffer)
		flags := sumFlags{Width: 32, Jobs: 1}
		require.NoError(t, sumCommand(context.Background(), nil, out, flags, files))

		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "613153351  "+plain, lines[0])
		assert.NotEqual(t, "613153351  "+compressed, lines[1])
	})
}

func TestSumCommandStdin(t *testing.T) {
	out := new(bytes.Buffer)
	flags := sumFlags{Width: 128, Hex: true}
	require.NoError(t, sumCommand(context.Background(), strings.NewReader("hello"), out, flags, nil))
	assert.Equal(t, "5b1e906a48ae1d19cbd8a7b341bd9b02  -\n", out.String())
}

func TestSumCommandStdinRepeated(t *testing.T) {
	out := new(bytes.Buffer)
	flags := sumFlags{Width: 32, Jobs: 4}
	require.NoError(t, sumCommand(context.Background(), strings.NewReader("hello"), out, flags, []string{"-", "-", "-"}))
	assert.Equal(t, strings.Repeat("613153351  -\n", 3), out.String())
}

func TestCodecFor(t *testing.T) {
	tests := []struct {
		name  string
		codec string
	}{
		{name: "data.gz", codec: new(gzip.Codec).String()},
		{name: "data.ZST", codec: new(zstd.Codec).String()},
		{name: "data.txt", codec: new(uncompressed.Codec).String()},
		{name: "data", codec: new(uncompressed.Codec).String()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.codec, codecFor(test.name).String())
		})
	}
}

func TestSumCommandMissingFile(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "hello.txt")
	missing := filepath.Join(dir, "missing.txt")
	require.NoError(t, os.WriteFile(plain, []byte("hello"), 0o644))

	out := new(bytes.Buffer)
	err := sumCommand(context.Background(), nil, out, sumFlags{Width: 32, Jobs: 4}, []string{missing, plain})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 inputs")
	assert.Equal(t, "613153351  "+plain+"\n", out.String())
}

func TestBenchCommand(t *testing.T) {
	out := new(bytes.Buffer)
	flags := benchFlags{Format: "json", Tasks: "hash32", Scale: 0.0001}
	require.NoError(t, benchCommand(out, flags))

	var report struct {
		ID     string `json:"id"`
		Scores []struct {
			Name   string    `json:"name"`
			Rounds []string  `json:"rounds"`
			Ratios []float64 `json:"ratios"`
		} `json:"scores"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.NotEmpty(t, report.ID)
	require.Len(t, report.Scores, 1)
	assert.Equal(t, "Hash32", report.Scores[0].Name)
	assert.Equal(t, []string{"XS", "S", "M", "L", "XL"}, report.Scores[0].Rounds)
	assert.Len(t, report.Scores[0].Ratios, 5)
}

func TestBenchCommandMarkdown(t *testing.T) {
	out := new(bytes.Buffer)
	flags := benchFlags{Format: "markdown", Tasks: "hash32,hash128", Scale: 0.0001}
	require.NoError(t, benchCommand(out, flags))
	assert.Contains(t, out.String(), "Result:")
	assert.Contains(t, out.String(), "tasks are faster!")
}

func TestBenchCommandInvalidFlags(t *testing.T) {
	out := new(bytes.Buffer)
	assert.Error(t, benchCommand(out, benchFlags{Format: "xml", Tasks: "hash32", Scale: 1}))
	assert.Error(t, benchCommand(out, benchFlags{Format: "json", Tasks: "hash64", Scale: 1}))
	assert.Error(t, benchCommand(out, benchFlags{Format: "json", Tasks: "hash32", Scale: -1}))
	assert.Empty(t, out.String())
}

func TestVersionCommand(t *testing.T) {
	out := new(bytes.Buffer)
	require.NoError(t, versionCommand(out, versionFlags{}))
	assert.True(t, strings.HasPrefix(out.String(), "mmr3 version: "+mmr3.Version+"\n"))
	assert.Contains(t, out.String(), "murmur3 version: ")
}
