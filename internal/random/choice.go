package random

// Pick returns a uniformly chosen element. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntRange(0, len(items)-1)]
}

// Weighted returns items[i] with probability proportional to weights[i].
func Weighted[T any](src Source, items []T, weights []float64) T {
	return items[src.WeightedIndex(weights)]
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Sample returns k distinct elements in random order (partial Fisher-Yates).
func Sample[T any](src Source, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return []T{}
	}
	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < k; i++ {
		j := src.IntRange(i, len(pool)-1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

// Digits returns n independent uniform decimal digits.
func Digits(src Source, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + src.IntRange(0, 9))
	}
	return string(b)
}
