package mmr3

import (
	"fmt"
	"math/big"
	"strconv"
)

// Width enumerates the digest sizes supported by Hash.
type Width int

const (
	// Width32 selects the MurmurHash3_x86_32 function.
	Width32 Width = 32
	// Width128 selects the MurmurHash3_x64_128 function.
	Width128 Width = 128
)

// ParseWidth converts a number of bits to a Width. It returns an error
// wrapping ErrInvalidWidth if bits is neither 32 nor 128.
func ParseWidth(bits int) (Width, error) {
	switch w := Width(bits); w {
	case Width32, Width128:
		return w, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidWidth, bits)
	}
}

// Bits returns the number of bits of w.
func (w Width) Bits() int { return int(w) }

func (w Width) String() string {
	return strconv.Itoa(int(w)) + " bits"
}

// Digest is the result of a call to Hash.
//
// The digest retains the width and signedness it was computed with; Big and
// String honor them, while the typed accessors give direct access to the bits.
type Digest struct {
	width  Width
	signed bool
	sum    Uint128
}

// Width returns the width of the hash function which produced d.
func (d Digest) Width() Width { return d.width }

// Signed returns true if d is interpreted as a signed integer.
func (d Digest) Signed() bool { return d.signed }

// Uint32 returns the lower 32 bits of d.
func (d Digest) Uint32() uint32 { return uint32(d.sum.Lo) }

// Int32 returns the lower 32 bits of d as a signed integer.
func (d Digest) Int32() int32 { return int32(d.sum.Lo) }

// Uint128 returns the bits of d zero-extended to 128 bits.
func (d Digest) Uint128() Uint128 { return d.sum }

// Int128 returns the signed value of d, sign-extended to 128 bits when d is
// a 32 bits digest.
func (d Digest) Int128() Int128 {
	if d.width == Width32 {
		v := int64(d.Int32())
		return Int128{Hi: v >> 63, Lo: uint64(v)}
	}
	return d.sum.Int128()
}

// Big returns the integer value of d, decoded as a two's complement integer
// when d is signed.
func (d Digest) Big() *big.Int {
	if d.signed {
		return d.Int128().Big()
	}
	return d.sum.Big()
}

// String returns the decimal representation of d.
func (d Digest) String() string {
	switch {
	case d.width == Width32 && d.signed:
		return strconv.FormatInt(int64(d.Int32()), 10)
	case d.width == Width32:
		return strconv.FormatUint(uint64(d.Uint32()), 10)
	default:
		return d.Big().String()
	}
}

// Hash computes the digest of key with the hash function of the given width.
//
// The seed and signedness of the result are configured with options. An error
// wrapping ErrInvalidWidth is returned if width is not one of Width32 or
// Width128; the zero Digest is returned in that case.
func Hash(width Width, key []byte, options ...Option) (Digest, error) {
	config := Config{}
	config.Apply(options...)

	d := Digest{width: width, signed: config.Signed}
	switch width {
	case Width32:
		d.sum.Lo = uint64(Hash32(key, config.Seed))
	case Width128:
		d.sum = Hash128x64(key, config.Seed)
	default:
		return Digest{}, fmt.Errorf("%w: %d", ErrInvalidWidth, int(width))
	}
	return d, nil
}

// HashBits is like Hash but takes the width as a number of bits.
func HashBits(bits int, key []byte, options ...Option) (Digest, error) {
	width, err := ParseWidth(bits)
	if err != nil {
		return Digest{}, err
	}
	return Hash(width, key, options...)
}
