package mmr3

import (
	"encoding/binary"
	"math/big"
)

// Uint128 is an unsigned 128 bits integer, holding the value (Hi << 64) | Lo.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 returns the two's complement reinterpretation of u as a signed 128
// bits integer. The bit pattern is unchanged.
func (u Uint128) Int128() Int128 {
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}
}

// Big returns u as a newly allocated big.Int.
func (u Uint128) Big() *big.Int {
	hi := new(big.Int).SetUint64(u.Hi)
	lo := new(big.Int).SetUint64(u.Lo)
	return hi.Lsh(hi, 64).Add(hi, lo)
}

// Bytes returns the 16 bytes big-endian representation of u.
func (u Uint128) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:], u.Lo)
	return b
}

// String returns the decimal representation of u.
func (u Uint128) String() string {
	return u.Big().String()
}

// Int128 is a signed two's complement 128 bits integer, holding the value
// (Hi << 64) + Lo.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Uint128 reinterprets i as an unsigned 128 bits integer.
func (i Int128) Uint128() Uint128 {
	return Uint128{Hi: uint64(i.Hi), Lo: i.Lo}
}

// Sign returns -1, 0, or +1 depending on the sign of i.
func (i Int128) Sign() int {
	switch {
	case i.Hi < 0:
		return -1
	case i.Hi == 0 && i.Lo == 0:
		return 0
	default:
		return +1
	}
}

// Big returns i as a newly allocated big.Int.
func (i Int128) Big() *big.Int {
	hi := big.NewInt(i.Hi)
	lo := new(big.Int).SetUint64(i.Lo)
	return hi.Lsh(hi, 64).Add(hi, lo)
}

// String returns the decimal representation of i.
func (i Int128) String() string {
	return i.Big().String()
}
