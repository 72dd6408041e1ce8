package mmr3

import (
	"encoding/binary"
	"math/bits"
)

const (
	c1_32 = 0xcc9e2d51
	c2_32 = 0x1b873593
)

// Hash32 computes the MurmurHash3_x86_32 digest of key.
//
// The signed form of the digest, matching implementations which return signed
// integers, is int32(Hash32(key, seed)).
func Hash32(key []byte, seed uint32) uint32 {
	h1 := seed
	n := len(key)
	i := 0

	for ; n-i >= 4; i += 4 {
		k1 := binary.LittleEndian.Uint32(key[i:])
		h1 ^= mix32(k1)
		h1 = bits.RotateLeft32(h1, 13)
		h1 = h1*5 + 0xe6546b64
	}

	var k1 uint32
	switch tail := key[i:]; len(tail) {
	case 3:
		k1 ^= uint32(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint32(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint32(tail[0])
		h1 ^= mix32(k1)
	}

	return Fmix32(h1 ^ uint32(n))
}

// MultiHash32 computes the 32 bits digests of keys, writing them to hashes.
// The number of digests written, which is the smallest of len(hashes) and
// len(keys), is returned.
func MultiHash32(hashes []uint32, keys [][]byte, seed uint32) int {
	n := min(len(hashes), len(keys))
	hashes = hashes[:n]
	keys = keys[:n]
	for i := range keys {
		hashes[i] = Hash32(keys[i], seed)
	}
	return n
}

func mix32(k uint32) uint32 {
	k *= c1_32
	k = bits.RotateLeft32(k, 15)
	k *= c2_32
	return k
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
