package bloom

import (
	"io"
	"unsafe"
)

// Filter is an interface representing read-only bloom filters where programs
// can probe for the possible presence of a hash key.
type Filter interface {
	Check(uint64) bool
}

// SplitBlockFilter is an in-memory implementation of split block bloom
// filters.
//
// This type is useful as a fast pre-filter in front of exact equality checks:
// a negative answer from Check is definite, a positive answer means the key
// must be compared for real.
type SplitBlockFilter []Block

// NumSplitBlocksOf returns the number of blocks in a filter intended to hold
// the given number of values and bits of filter per value.
//
// This function is useful to determine the number of blocks when creating bloom
// filters in memory, for example:
//
//	f := make(bloom.SplitBlockFilter, bloom.NumSplitBlocksOf(n, 10))
func NumSplitBlocksOf(numValues, bitsPerValue int) int {
	numBytes := (uint(numValues)*uint(bitsPerValue) + 7) / 8
	numBlocks := (int(numBytes) + (BlockSize - 1)) / BlockSize
	return numBlocks
}

// Reset clears the content of the filter f.
func (f SplitBlockFilter) Reset() {
	for i := range f {
		f[i] = Block{}
	}
}

// Block returns a pointer to the block that the given value hashes to in the
// bloom filter.
//
// The upper 32 bits of x select the block, the lower 32 bits are inserted in
// or checked against it.
func (f SplitBlockFilter) Block(x uint64) *Block {
	return &f[blockIndex(x, uint64(len(f)))]
}

// Insert adds x to f.
func (f SplitBlockFilter) Insert(x uint64) {
	f.Block(x).Insert(uint32(x))
}

// InsertBulk adds all values of x to f.
func (f SplitBlockFilter) InsertBulk(x []uint64) {
	for i := range x {
		f.Insert(x[i])
	}
}

// Check tests whether x is in f.
func (f SplitBlockFilter) Check(x uint64) bool {
	return f.Block(x).Check(uint32(x))
}

// InsertKey hashes key with h and adds the hash to f.
func (f SplitBlockFilter) InsertKey(h Hash, key []byte) {
	f.Insert(h.Sum64(key))
}

// InsertKeys hashes all keys with h and adds them to f. The buf slice is used
// as scratch space to hold the hashes; it is grown if it is too short and the
// possibly reallocated buffer is returned so it can be reused.
func (f SplitBlockFilter) InsertKeys(h Hash, keys [][]byte, buf []uint64) []uint64 {
	if cap(buf) < len(keys) {
		buf = make([]uint64, len(keys))
	}
	buf = buf[:len(keys)]
	n := h.MultiSum64(buf, keys)
	f.InsertBulk(buf[:n])
	return buf
}

// CheckKey tests whether the hash of key computed by h is in f.
func (f SplitBlockFilter) CheckKey(h Hash, key []byte) bool {
	return f.Check(h.Sum64(key))
}

// Bytes converts f to a byte slice.
//
// The returned slice shares the memory of f. The method is intended to be used
// to serialize the bloom filter to a storage medium.
func (f SplitBlockFilter) Bytes() []byte {
	if len(f) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&f[0])), len(f)*BlockSize)
}

// CheckSplitBlock is similar to bloom.SplitBlockFilter.Check but reads the
// bloom filter of n bytes from r, using b as buffer to load the block in which
// to check for the existence of x.
//
// The size n of the bloom filter is assumed to be a multiple of the block size.
func CheckSplitBlock(r io.ReaderAt, n int64, b *Block, x uint64) (bool, error) {
	offset := BlockSize * blockIndex(x, uint64(n)/BlockSize)
	_, err := r.ReadAt(b.Bytes(), int64(offset))
	return b.Check(uint32(x)), err
}

func blockIndex(x, n uint64) uint64 {
	return ((x >> 32) * n) >> 32
}
