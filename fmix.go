package mmr3

// Fmix32 is the finalization mix of the 32 bits variant of MurmurHash3. It
// forces all bits of h to avalanche.
func Fmix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// Fmix64 is the 64 bits counterpart of Fmix32, used to finalize both lanes of
// the 128 bits variant.
func Fmix64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}
