package utils

import "math/rand/v2"

// Sample returns up to n distinct elements of items chosen uniformly at
// random. items is not modified.
func Sample[T any](items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	if n <= 0 {
		return []T{}
	}

	pool := make([]T, len(items))
	copy(pool, items)

	// Partial Fisher-Yates: only the first n slots need to be settled
	for i := 0; i < n; i++ {
		j := i + rand.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n]
}

// Choice returns one element of items chosen uniformly at random.
// items must not be empty.
func Choice[T any](items []T) T {
	return items[rand.IntN(len(items))]
}
