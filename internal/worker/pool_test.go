package worker

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// occupiedProcessFunc reports whether the probed square holds a piece.
func occupiedProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, From: item.From, Found: item.Board.Occupied(item.From)}
	}
}

// countingProcessFunc returns a process function that increments a counter.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index, From: item.From}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// squareItems builds one work item per square of the board, in row-major order.
func squareItems(board *chess.Board) []WorkItem {
	var items []WorkItem
	for i, p := range chess.AllPositions() {
		items = append(items, WorkItem{Board: board, From: p, Index: i})
	}
	return items
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPoolWithOptions(countingProcessFunc(&processed), WithWorkers(4), WithBufferSize(64))
	pool.Start()

	items := squareItems(chess.NewBoard())
	for _, item := range items {
		pool.Submit(item)
	}

	go pool.Close()

	resultCount := collectResults(pool)
	if resultCount != len(items) {
		t.Errorf("results = %d; want %d", resultCount, len(items))
	}
	if got := atomic.LoadInt32(&processed); got != int32(len(items)) {
		t.Errorf("processed = %d; want %d", got, len(items))
	}
}

// TestPoolSingleWorker tests pool with single worker.
func TestPoolSingleWorker(t *testing.T) {
	board := chess.NewBoard()
	board.SetupInitialPosition()

	pool := NewPoolWithOptions(occupiedProcessFunc(), WithWorkers(1), WithBufferSize(64))
	pool.Start()
	for _, item := range squareItems(board) {
		pool.Submit(item)
	}
	go pool.Close()

	found := 0
	for result := range pool.Results() {
		if result.Found {
			found++
		}
	}
	if found != 32 {
		t.Errorf("occupied squares = %d; want 32", found)
	}
}

// TestPoolEarlyStop tests early termination with Stop().
func TestPoolEarlyStop(t *testing.T) {
	var processedCount int32

	slowProcessFunc := func(item WorkItem) ProcessResult {
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&processedCount, 1)
		return ProcessResult{Index: item.Index}
	}

	pool := NewPoolWithOptions(slowProcessFunc, WithWorkers(2), WithBufferSize(64))
	pool.Start()

	items := squareItems(chess.NewBoard())
	for _, item := range items {
		pool.Submit(item)
	}

	time.Sleep(30 * time.Millisecond)
	pool.Stop()

	go pool.Close()
	collectResults(pool)

	if processed := atomic.LoadInt32(&processedCount); processed >= int32(len(items)) {
		t.Logf("early stop may not have prevented all processing: %d processed", processed)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPoolWithOptions(occupiedProcessFunc(), WithWorkers(2), WithBufferSize(10))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}

	pool.Stop()

	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

// TestPoolWorkerCount tests the worker count option.
func TestPoolWorkerCount(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"valid workers", 4, 4},
		{"minimum workers", 1, 1},
		{"zero defaults to 1", 0, 1},
		{"negative defaults to 1", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithOptions(occupiedProcessFunc(), WithWorkers(tt.input))
			if got := pool.numWorkers; got != tt.expected {
				t.Errorf("numWorkers = %d; want %d", got, tt.expected)
			}
		})
	}
}

// TestPoolResultOrder tests that all results are received regardless of order.
func TestPoolResultOrder(t *testing.T) {
	variableDelayFunc := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(time.Millisecond)
		}
		return ProcessResult{Index: item.Index, From: item.From}
	}

	pool := NewPoolWithOptions(variableDelayFunc, WithWorkers(4), WithBufferSize(64))
	pool.Start()

	items := squareItems(chess.NewBoard())
	for _, item := range items {
		pool.Submit(item)
	}

	go pool.Close()

	seen := make(map[int]chess.Position)
	for result := range pool.Results() {
		seen[result.Index] = result.From
	}

	if len(seen) != len(items) {
		t.Errorf("received %d results; want %d", len(seen), len(items))
	}
	for _, item := range items {
		if got, ok := seen[item.Index]; !ok || got != item.From {
			t.Errorf("result %d = %v; want %v", item.Index, got, item.From)
		}
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPoolWithOptions(countingProcessFunc(&counter), WithWorkers(8), WithBufferSize(16))
	pool.Start()

	board := chess.NewBoard()
	board.SetupInitialPosition()
	items := squareItems(board)

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != int32(len(items)) {
		t.Errorf("processed = %d; want %d", got, len(items))
	}
}

// TestPoolAnyFound tests the stop-at-first-hit helper.
func TestPoolAnyFound(t *testing.T) {
	board := chess.NewBoard()
	board.SetupInitialPosition()

	tests := []struct {
		name  string
		items []WorkItem
		want  bool
	}{
		{"occupied squares present", squareItems(board), true},
		{"only empty squares", squareItems(board)[16:48], false},
		{"no items", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithOptions(occupiedProcessFunc(), WithWorkers(4))
			if got := pool.AnyFound(tt.items); got != tt.want {
				t.Errorf("AnyFound() = %v; want %v", got, tt.want)
			}
		})
	}
}

// TestNewPoolWithOptions tests the functional options constructor.
func TestNewPoolWithOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		pool := NewPoolWithOptions(occupiedProcessFunc())
		if pool.numWorkers != 1 {
			t.Errorf("default workers = %d; want 1", pool.numWorkers)
		}
		if pool.bufferSize != 64 {
			t.Errorf("default bufferSize = %d; want 64", pool.bufferSize)
		}
	})

	t.Run("with multiple options", func(t *testing.T) {
		pool := NewPoolWithOptions(occupiedProcessFunc(), WithWorkers(8), WithBufferSize(100))
		if pool.numWorkers != 8 {
			t.Errorf("numWorkers = %d; want 8", pool.numWorkers)
		}
		if pool.bufferSize != 100 {
			t.Errorf("bufferSize = %d; want 100", pool.bufferSize)
		}
	})

	t.Run("invalid options ignored", func(t *testing.T) {
		pool := NewPoolWithOptions(occupiedProcessFunc(), WithWorkers(0), WithBufferSize(-5))
		if pool.numWorkers != 1 {
			t.Errorf("numWorkers = %d; want 1 (default)", pool.numWorkers)
		}
		if pool.bufferSize != 64 {
			t.Errorf("bufferSize = %d; want 64 (default)", pool.bufferSize)
		}
	})
}
