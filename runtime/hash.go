package runtime

import "github.com/cespare/xxhash/v2"

// HashString returns the 64-bit xxhash of s.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}
