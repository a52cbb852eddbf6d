// Package hash provides xxHash64 helpers shared by the definition table name
// index and the snapshot checksum.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum computes the xxHash64 of the given byte slice.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
