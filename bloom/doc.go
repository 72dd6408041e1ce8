// Package bloom implements split block bloom filters keyed by MurmurHash3
// digests.
//
// Filters are commonly used to skip expensive lookups of keys which are known
// to be absent from a data set.
package bloom
