package bloom

import "unsafe"

// BlockSize is the size of bloom filter blocks in bytes.
const BlockSize = 32

// Salt factors of the split block bloom filter, one per word of a block.
var salt = [8]uint32{
	0x47b6137b,
	0x44974d91,
	0x8824ad5b,
	0xa2b7289d,
	0x705495c7,
	0x2df1424b,
	0x9efc4947,
	0x5c6bfb31,
}

// Block represents bloom filter blocks of eight 32 bits words, each word
// holding one of the bits set by an insertion.
type Block [8]uint32

// Insert sets the bits of x in b.
func (b *Block) Insert(x uint32) {
	for i := range b {
		b[i] |= 1 << ((x * salt[i]) >> 27)
	}
}

// Check tests whether all the bits of x are set in b.
func (b *Block) Check(x uint32) bool {
	for i := range b {
		if (b[i] & (1 << ((x * salt[i]) >> 27))) == 0 {
			return false
		}
	}
	return true
}

// Bytes returns b as a byte slice sharing the memory of b.
func (b *Block) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(b)), BlockSize)
}
