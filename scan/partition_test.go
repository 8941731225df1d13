package scan

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCoversPortSpace(t *testing.T, workers int, partitions []Partition) {
	seen := make([]int, MaxPort+1)
	for _, p := range partitions {
		for port := p.First; port <= p.Last; port++ {
			require.True(t, port >= MinPort && port <= MaxPort, "port %d out of range for %d workers", port, workers)
			seen[port]++
		}
	}
	for port := MinPort; port <= MaxPort; port++ {
		if seen[port] != 1 {
			t.Fatalf("port %d seen %d times with %d workers", port, seen[port], workers)
		}
	}
}

func TestPartitionsCoverPortSpace(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 7, 100, 101, 1000, 4096, 32767, 65534, 65535} {
		t.Run(fmt.Sprintf("%d workers", workers), func(t *testing.T) {
			partitions, err := Partitions(workers)
			require.NoError(t, err)
			assert.Len(t, partitions, workers)
			assertCoversPortSpace(t, workers, partitions)
		})
	}
}

func TestPartitionsAreContiguous(t *testing.T) {
	for workers := 1; workers <= 2000; workers++ {
		partitions, err := Partitions(workers)
		require.NoError(t, err)
		require.Len(t, partitions, workers)

		next := MinPort
		for _, p := range partitions {
			require.Equal(t, next, p.First, "gap or overlap with %d workers", workers)
			next = p.Last + 1
		}
		require.Equal(t, MaxPort+1, next)
	}
}

func TestPartitionsLastChunkAbsorbsRemainder(t *testing.T) {
	partitions, err := Partitions(100)
	require.NoError(t, err)

	for _, p := range partitions[:99] {
		assert.Equal(t, 655, p.Len())
	}
	last := partitions[99]
	assert.Equal(t, 64846, last.First)
	assert.Equal(t, MaxPort, last.Last)
	assert.Equal(t, 655+35, last.Len())
}

func TestPartitionsWithMoreWorkersThanPorts(t *testing.T) {
	for _, workers := range []int{MaxPort + 1, MaxPort + 10, math.MaxInt32} {
		partitions, err := Partitions(workers)
		require.NoError(t, err)
		require.Len(t, partitions, 1)
		assert.Equal(t, Partition{First: MinPort, Last: MaxPort}, partitions[0])
		assertCoversPortSpace(t, workers, partitions)
	}
}

func TestPartitionsRejectInvalidConcurrency(t *testing.T) {
	for _, workers := range []int{0, -1, -100} {
		partitions, err := Partitions(workers)
		assert.Nil(t, partitions)
		require.Error(t, err)
		_, ok := err.(*InvalidConcurrencyError)
		assert.True(t, ok, "unexpected error type %T", err)
	}
}
