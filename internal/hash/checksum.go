package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of a chunk payload. The chunk container
// stores it next to each compressed chunk and verifies it on decode.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
