// Package random provides seed generation and deterministic shuffling.
//
// Seeds come from crypto/rand so that every round is unpredictable, while
// the shuffle itself is a seeded pseudo-random permutation: the same seed
// always yields the same order, which keeps dealing reproducible in tests.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// SeedSource produces seeds for new rounds.
type SeedSource func() (int64, error)

// FixedSeeds returns a SeedSource that yields seeds in order and then
// repeats the last one. It is meant for tests.
func FixedSeeds(seeds ...int64) SeedSource {
	i := 0
	return func() (int64, error) {
		if len(seeds) == 0 {
			return 0, nil
		}
		s := seeds[min(i, len(seeds)-1)]
		i++
		return s, nil
	}
}
