// SPDX-License-Identifier: MIT
package matrix

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGatherOptionsDefaults pins the zero-option configuration.
func TestGatherOptionsDefaults(t *testing.T) {
	o := gatherOptions()
	require.Equal(t, DefaultParallel, o.parallel)
	require.Equal(t, DefaultParallelThreshold, o.threshold)
	require.Equal(t, runtime.GOMAXPROCS(0), o.workers)
}

// TestGatherOptionsLastWriterWins ensures setters apply in order.
func TestGatherOptionsLastWriterWins(t *testing.T) {
	o := gatherOptions(WithSequential(), WithWorkers(2), WithParallel(), WithWorkers(5), WithParallelThreshold(3))
	require.True(t, o.parallel)
	require.Equal(t, 5, o.workers)
	require.Equal(t, 3, o.threshold)
}

// TestFanOut covers every switch that can keep an expansion sequential.
func TestFanOut(t *testing.T) {
	o := gatherOptions(WithWorkers(4), WithParallelThreshold(3))
	require.False(t, o.fanOut(2))
	require.True(t, o.fanOut(3))

	require.False(t, gatherOptions(WithWorkers(1), WithParallelThreshold(2)).fanOut(5))
	require.False(t, gatherOptions(WithSequential(), WithWorkers(4), WithParallelThreshold(2)).fanOut(5))
}

// TestOptionPanics ensures nonsensical values are rejected at construction.
func TestOptionPanics(t *testing.T) {
	require.PanicsWithValue(t, panicWorkersInvalid, func() { WithWorkers(0) })
	require.PanicsWithValue(t, panicThresholdInvalid, func() { WithParallelThreshold(1) })
}

// TestMinorHelperSkipsIndices exercises the unchecked kernel directly.
func TestMinorHelperSkipsIndices(t *testing.T) {
	m := MustNew([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.Equal(t, []int{1, 3, 7, 9}, minor(m, 1, 1).data)
	require.Equal(t, 2, minor(m, 2, 2).n)
}

// TestSignOf checks the alternating sign helper.
func TestSignOf(t *testing.T) {
	require.Equal(t, 1, signOf[int](0))
	require.Equal(t, -1, signOf[int](1))
	require.Equal(t, 1.0, signOf[float64](4))
	require.Equal(t, -1.0, signOf[float64](7))
}
