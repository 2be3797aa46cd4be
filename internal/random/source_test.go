package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameStream(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntRange(0, 1000), b.IntRange(0, 1000))
	}
}

func TestIntRangeBounds(t *testing.T) {
	src := NewSource(7)
	for i := 0; i < 1000; i++ {
		n := src.IntRange(3, 9)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 9)
	}
	assert.Equal(t, 5, src.IntRange(5, 5))
	assert.Equal(t, 5, src.IntRange(5, 1))
}

func TestWeightedIndexSkipsZeroWeights(t *testing.T) {
	src := NewSource(1)
	for i := 0; i < 500; i++ {
		idx := src.WeightedIndex([]float64{0, 1, 0, 3})
		assert.Contains(t, []int{1, 3}, idx)
	}
}

func TestWeightedIndexFollowsWeights(t *testing.T) {
	src := NewSource(3)
	counts := make([]int, 2)
	for i := 0; i < 4000; i++ {
		counts[src.WeightedIndex([]float64{0.9, 0.1})]++
	}
	assert.Greater(t, counts[0], counts[1]*4)
}

func TestSample(t *testing.T) {
	src := NewSource(9)
	items := []string{"a", "b", "c", "d"}

	got := Sample(src, items, 3)
	assert.Len(t, got, 3)
	seen := map[string]bool{}
	for _, s := range got {
		assert.False(t, seen[s])
		seen[s] = true
	}

	assert.Len(t, Sample(src, items, 10), 4)
	assert.Empty(t, Sample(src, items, 0))
	assert.Equal(t, []string{"a", "b", "c", "d"}, items)
}

func TestDigits(t *testing.T) {
	assert.Regexp(t, `^\d{7}$`, Digits(NewSource(5), 7))
}
