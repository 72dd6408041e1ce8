// Package compress provides the generic APIs implemented by the compression
// codecs used to read compressed inputs before hashing their content.
package compress

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"sync"
)

// The Codec interface represents compression codecs implemented by the
// compress sub-packages.
//
// Codec instances must be safe to use concurrently from multiple goroutines.
type Codec interface {
	// Returns a human-readable name for the codec.
	String() string

	// Returns the file extension of inputs compressed with the codec,
	// including the leading dot.
	Extension() string

	// Writes the compressed version of src to dst and returns it.
	//
	// The method automatically reallocates the output buffer if its capacity
	// was too small to hold the compressed data.
	Encode(dst, src []byte) ([]byte, error)

	// Writes the uncompressed version of src to dst and returns it.
	//
	// The method automatically reallocates the output buffer if its capacity
	// was too small to hold the uncompressed data.
	Decode(dst, src []byte) ([]byte, error)
}

type Reader interface {
	io.ReadCloser
	Reset(io.Reader) error
}

type Writer interface {
	io.WriteCloser
	Reset(io.Writer) error
}

type Compressor struct {
	writers sync.Pool
}

func (c *Compressor) Encode(dst, src []byte, newWriter func(io.Writer) (Writer, error)) ([]byte, error) {
	output := bytes.NewBuffer(dst[:0])

	w, _ := c.writers.Get().(Writer)
	if w != nil {
		if err := w.Reset(output); err != nil {
			return dst, err
		}
	} else {
		var err error
		if w, err = newWriter(output); err != nil {
			return dst, err
		}
	}
	defer c.writers.Put(w)
	defer w.Reset(io.Discard)

	if _, err := w.Write(src); err != nil {
		return output.Bytes(), err
	}
	if err := w.Close(); err != nil {
		return output.Bytes(), err
	}
	return output.Bytes(), nil
}

type Decompressor struct {
	readers sync.Pool
}

func (d *Decompressor) Decode(dst, src []byte, newReader func(io.Reader) (Reader, error)) ([]byte, error) {
	input := bytes.NewReader(src)

	r, _ := d.readers.Get().(Reader)
	if r != nil {
		if err := r.Reset(input); err != nil {
			return dst, err
		}
	} else {
		var err error
		if r, err = newReader(input); err != nil {
			return dst, err
		}
	}

	defer func() {
		if err := r.Reset(nil); err == nil {
			d.readers.Put(r)
		}
	}()

	output := bytes.NewBuffer(dst[:0])
	_, err := output.ReadFrom(r)
	return output.Bytes(), err
}

// Registry maps file extensions to codecs.
//
// The zero value is an empty registry. Registries are safe to use
// concurrently once all codecs were registered.
type Registry struct {
	codecs map[string]Codec
}

// Register adds codec to the registry, replacing any codec previously
// registered for the same extension.
func (r *Registry) Register(codec Codec) {
	if r.codecs == nil {
		r.codecs = make(map[string]Codec)
	}
	r.codecs[strings.ToLower(codec.Extension())] = codec
}

// Lookup returns the codec registered for the extension ext, or nil if there
// were none.
func (r *Registry) Lookup(ext string) Codec {
	return r.codecs[strings.ToLower(ext)]
}

// ForPath returns the codec registered for the extension of path, or nil if
// there were none.
func (r *Registry) ForPath(path string) Codec {
	return r.Lookup(filepath.Ext(path))
}
