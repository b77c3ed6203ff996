package random

import "math/rand"

// Shuffle returns a permutation of items determined entirely by seed.
// The input slice is not modified.
func Shuffle[T any](items []T, seed int64) []T {
	out := make([]T, len(items))
	copy(out, items)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Intn returns a value in [0, n) determined by seed. It panics if n <= 0.
func Intn(seed int64, n int) int {
	return rand.New(rand.NewSource(seed)).Intn(n)
}
