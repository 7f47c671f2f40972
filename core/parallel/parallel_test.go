package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelizeCoversEveryItemOnce(t *testing.T) {
	for _, items := range []int{1, 7, 100, 1001} {
		counts := make([]int32, items)
		Parallelize(items, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&counts[i], 1)
			}
		})
		for i, c := range counts {
			assert.Equalf(t, int32(1), c, "item %d of %d", i, items)
		}
	}
}

func TestParallelizeNZeroItems(t *testing.T) {
	called := false
	ParallelizeN(0, 4, func(start, end int) { called = true })
	assert.False(t, called)
}

func TestParallelizeNSingleWorker(t *testing.T) {
	var ranges [][2]int
	ParallelizeN(10, 0, func(start, end int) {
		ranges = append(ranges, [2]int{start, end})
	})
	assert.Equal(t, [][2]int{{0, 10}}, ranges)
}

func TestParallelizeWithThresholdSequential(t *testing.T) {
	var ranges [][2]int
	ParallelizeWithThreshold(50, 100, func(start, end int) {
		ranges = append(ranges, [2]int{start, end})
	})
	assert.Equal(t, [][2]int{{0, 50}}, ranges)
}
