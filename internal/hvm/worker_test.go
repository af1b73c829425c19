package hvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolForkJoinRoundTrip(t *testing.T) {
	prog := NewSampleProgram()
	pool := NewPool(2, 1<<12, prog)
	pool.start()
	defer pool.stop()

	w1 := pool.workers[1]
	host := mustAlloc(w1, 1)
	Link(w1, host, Num(99))

	v := newVisited(pool.Heap().Size())
	pool.Fork(1, host, 1, 1, v)
	result := pool.Join(1)

	assert.Equal(t, Num(99), result)
}

func TestPoolTotalCostSumsAllWorkers(t *testing.T) {
	prog := NewSampleProgram()
	pool := NewPool(3, 1<<12, prog)
	pool.workers[0].IncCost()
	pool.workers[1].IncCost()
	pool.workers[1].IncCost()
	assert.Equal(t, uint64(3), pool.TotalCost())
}

func TestPoolStopsCleanlyAfterNoWork(t *testing.T) {
	prog := NewSampleProgram()
	pool := NewPool(3, 1<<12, prog)
	pool.start()
	pool.stop()
	// A pool that never received a work packet must still shut down cleanly.
}
