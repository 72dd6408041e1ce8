package mmr3

import (
	"encoding/binary"
	"math/bits"
)

const (
	c1_64 = 0x87c37b91114253d5
	c2_64 = 0x4cf5ad432745937f
)

// Hash128x64 computes the MurmurHash3_x64_128 digest of key.
//
// The first 64 bits lane of the algorithm is returned in the Lo field of the
// result, the second lane in Hi, so the digest reads as the 128 bits integer
// (Hi << 64) | Lo.
func Hash128x64(key []byte, seed uint32) Uint128 {
	h1 := uint64(seed)
	h2 := uint64(seed)
	n := len(key)
	i := 0

	for ; n-i >= 16; i += 16 {
		k1 := binary.LittleEndian.Uint64(key[i:])
		k2 := binary.LittleEndian.Uint64(key[i+8:])

		h1 ^= mixK1(k1)
		h1 = bits.RotateLeft64(h1, 27)
		h1 += h2
		h1 = h1*5 + 0x52dce729

		h2 ^= mixK2(k2)
		h2 = bits.RotateLeft64(h2, 31)
		h2 += h1
		h2 = h2*5 + 0x38495ab5
	}

	var k1, k2 uint64
	switch tail := key[i:]; len(tail) {
	case 15:
		k2 ^= uint64(tail[14]) << 48
		fallthrough
	case 14:
		k2 ^= uint64(tail[13]) << 40
		fallthrough
	case 13:
		k2 ^= uint64(tail[12]) << 32
		fallthrough
	case 12:
		k2 ^= uint64(tail[11]) << 24
		fallthrough
	case 11:
		k2 ^= uint64(tail[10]) << 16
		fallthrough
	case 10:
		k2 ^= uint64(tail[9]) << 8
		fallthrough
	case 9:
		k2 ^= uint64(tail[8])
		h2 ^= mixK2(k2)
		fallthrough
	case 8:
		k1 ^= uint64(tail[7]) << 56
		fallthrough
	case 7:
		k1 ^= uint64(tail[6]) << 48
		fallthrough
	case 6:
		k1 ^= uint64(tail[5]) << 40
		fallthrough
	case 5:
		k1 ^= uint64(tail[4]) << 32
		fallthrough
	case 4:
		k1 ^= uint64(tail[3]) << 24
		fallthrough
	case 3:
		k1 ^= uint64(tail[2]) << 16
		fallthrough
	case 2:
		k1 ^= uint64(tail[1]) << 8
		fallthrough
	case 1:
		k1 ^= uint64(tail[0])
		h1 ^= mixK1(k1)
	}

	h1 ^= uint64(n)
	h2 ^= uint64(n)

	h1 += h2
	h2 += h1

	h1 = Fmix64(h1)
	h2 = Fmix64(h2)

	h1 += h2
	h2 += h1

	return Uint128{Hi: h2, Lo: h1}
}

// MultiHash128x64 is the 128 bits counterpart of MultiHash32.
func MultiHash128x64(hashes []Uint128, keys [][]byte, seed uint32) int {
	n := min(len(hashes), len(keys))
	hashes = hashes[:n]
	keys = keys[:n]
	for i := range keys {
		hashes[i] = Hash128x64(keys[i], seed)
	}
	return n
}

func mixK1(k uint64) uint64 {
	k *= c1_64
	k = bits.RotateLeft64(k, 31)
	k *= c2_64
	return k
}

func mixK2(k uint64) uint64 {
	k *= c2_64
	k = bits.RotateLeft64(k, 33)
	k *= c1_64
	return k
}
