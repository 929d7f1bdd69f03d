package rng

import (
	"crypto/sha256"
	"encoding/binary"
)

// LcgNext is the stateless mixing step used by the biome zoom hash and the
// legacy layer seeds.
func LcgNext(seed, salt uint64) uint64 {
	seed *= seed*6364136223846793005 + 1442695040888963407
	return seed + salt
}

// ZoomSeed obfuscates a world seed for the voronoi biome zoom: the first
// eight bytes of SHA-256 over the little-endian seed.
func ZoomSeed(seed uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	sum := sha256.Sum256(buf[:])
	return binary.LittleEndian.Uint64(sum[:8])
}
