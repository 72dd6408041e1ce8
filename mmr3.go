/*
Package mmr3 implements the MurmurHash3 family of non-cryptographic hash
functions.

Two variants are provided: the 32 bits x86 function (Hash32) and the 128 bits
x64 function (Hash128x64). Both produce results that are bit-for-bit identical
to the reference implementation, which makes them suitable to compute bucket
or shard indexes that must agree with other systems.

# Hashing

The functions operate on whole byte slices; there is no streaming API. Keys
are never modified nor retained, and all functions are safe to call from
concurrent goroutines.

	h := mmr3.Hash32([]byte("foo"), 0)          // 0xf6a5c420
	x := mmr3.Hash128x64([]byte("foo"), 0)      // x.Hi, x.Lo
	d, err := mmr3.HashBits(128, key, mmr3.Seed(42), mmr3.Signed(true))

# Signed Results

Signed interpretations of the digests are obtained by reinterpreting the bits
as two's complement integers of the same width, for example int32(Hash32(k, s))
or Hash128x64(k, s).Int128().

# Tooling

The module also ships a command line program at ./cmd/mmr3, which computes
digests of files and benchmarks the package against another MurmurHash3
implementation.
*/
package mmr3

// Version is the version of the mmr3 package.
const Version = "1.3.1"
