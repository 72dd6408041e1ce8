// Package snappy implements the framed SNAPPY compression codec.
package snappy

import (
	"io"

	"github.com/klauspost/compress/snappy"
	"github.com/segmentio/mmr3/compress"
)

type Codec struct {
	r compress.Decompressor
	w compress.Compressor
}

func (c *Codec) String() string {
	return "SNAPPY"
}

func (c *Codec) Extension() string {
	return ".sz"
}

func (c *Codec) Encode(dst, src []byte) ([]byte, error) {
	return c.w.Encode(dst, src, func(w io.Writer) (compress.Writer, error) {
		return writer{snappy.NewBufferedWriter(w)}, nil
	})
}

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	return c.r.Decode(dst, src, func(r io.Reader) (compress.Reader, error) {
		return reader{snappy.NewReader(r)}, nil
	})
}

type reader struct{ *snappy.Reader }

func (r reader) Close() error             { return nil }
func (r reader) Reset(rr io.Reader) error { r.Reader.Reset(rr); return nil }

type writer struct{ *snappy.Writer }

func (w writer) Reset(ww io.Writer) error { w.Writer.Reset(ww); return nil }
