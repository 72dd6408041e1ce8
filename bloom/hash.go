package bloom

import (
	"encoding/binary"

	"github.com/segmentio/mmr3"
)

// Hash is an interface abstracting the hashing algorithm used in bloom filters.
//
// Hash instances must be safe to use concurrently from multiple goroutines.
type Hash interface {
	// Returns the 64 bit hash of the value passed as argument.
	Sum64(value []byte) uint64
	// Compute hashes of the array of values passed as arguments, returning the
	// number of hashes written to the destination buffer.
	MultiSum64(dst []uint64, src [][]byte) int
	// Compute hashes of fixed size values, each encoded in little-endian
	// byte order before being hashed.
	MultiSum64Uint32(dst []uint64, src []uint32) int
	MultiSum64Uint64(dst []uint64, src []uint64) int
	MultiSum64Uint128(dst []uint64, src [][16]byte) int
}

// MurmurHash3 is an implementation of the Hash interface using the lower 64
// bits of the MurmurHash3_x64_128 digest.
type MurmurHash3 struct {
	Seed uint32
}

func (h MurmurHash3) Sum64(b []byte) uint64 {
	return mmr3.Hash128x64(b, h.Seed).Lo
}

func (h MurmurHash3) MultiSum64(dst []uint64, src [][]byte) int {
	n := min(len(dst), len(src))
	for i := range src[:n] {
		dst[i] = h.Sum64(src[i])
	}
	return n
}

func (h MurmurHash3) MultiSum64Uint32(dst []uint64, src []uint32) int {
	n := min(len(dst), len(src))
	b := [4]byte{}
	for i := range src[:n] {
		binary.LittleEndian.PutUint32(b[:], src[i])
		dst[i] = h.Sum64(b[:])
	}
	return n
}

func (h MurmurHash3) MultiSum64Uint64(dst []uint64, src []uint64) int {
	n := min(len(dst), len(src))
	b := [8]byte{}
	for i := range src[:n] {
		binary.LittleEndian.PutUint64(b[:], src[i])
		dst[i] = h.Sum64(b[:])
	}
	return n
}

func (h MurmurHash3) MultiSum64Uint128(dst []uint64, src [][16]byte) int {
	n := min(len(dst), len(src))
	for i := range src[:n] {
		dst[i] = h.Sum64(src[i][:])
	}
	return n
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

var (
	_ Hash = MurmurHash3{}
)
