package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// WorkerPool Tests
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -3} {
		pool := NewWorkerPool(n)
		if pool.Workers() != runtime.GOMAXPROCS(0) {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want GOMAXPROCS", n, pool.Workers())
		}
		pool.Close()
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}
	pool.ExecuteAll(work)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestWorkerPool_ExecuteAllEmpty(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()
	pool.ExecuteAll(nil)
}

func TestWorkerPool_ExecuteAllMoreTasksThanQueue(t *testing.T) {
	pool := NewWorkerPool(1)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 1000)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}
	pool.ExecuteAll(work)

	if counter.Load() != 1000 {
		t.Errorf("counter = %d, want 1000", counter.Load())
	}
}

func TestWorkerPool_UnevenTasks(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 30)
	for i := range work {
		d := time.Duration(i%4) * time.Millisecond
		work[i] = func() {
			time.Sleep(d)
			counter.Add(1)
		}
	}

	done := make(chan struct{})
	go func() {
		pool.ExecuteAll(work)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("ExecuteAll did not return")
	}
	if counter.Load() != 30 {
		t.Errorf("counter = %d, want 30", counter.Load())
	}
}

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(3)
	pool.Close()
	pool.Close()
	if pool.IsRunning() {
		t.Error("pool still running after Close")
	}
}

func TestWorkerPool_ExecuteAfterClose(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	var counter atomic.Int64
	pool.ExecuteAll([]func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	})
	if counter.Load() != 2 {
		t.Errorf("counter = %d, want 2 (inline after Close)", counter.Load())
	}
}

// =============================================================================
// Band Tests
// =============================================================================

func TestBands(t *testing.T) {
	tests := []struct {
		height, n int
		want      int
	}{
		{0, 4, 0},
		{5, 4, 1},
		{100, 1, 1},
		{100, 4, 4},
		{100, 64, 12},
		{101, 3, 3},
		{1080, 16, 16},
	}
	for _, tt := range tests {
		bands := Bands(tt.height, tt.n)
		if len(bands) != tt.want {
			t.Errorf("Bands(%d, %d) = %d bands, want %d", tt.height, tt.n, len(bands), tt.want)
			continue
		}
		y := 0
		for i, b := range bands {
			if b.Index != i || b.Y0 != y || b.Rows() <= 0 {
				t.Errorf("Bands(%d, %d)[%d] = %+v", tt.height, tt.n, i, b)
			}
			if len(bands) > 1 && b.Rows() < MinBandRows {
				t.Errorf("Bands(%d, %d)[%d] has %d rows", tt.height, tt.n, i, b.Rows())
			}
			y = b.Y1
		}
		if len(bands) > 0 && y != tt.height {
			t.Errorf("Bands(%d, %d) covers %d rows", tt.height, tt.n, y)
		}
	}
}

func TestWorkerPool_ForEachBandCoversEveryRowOnce(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	const height = 237
	var mu sync.Mutex
	seen := make([]int, height)
	pool.ForEachBand(height, func(b Band) {
		for y := b.Y0; y < b.Y1; y++ {
			mu.Lock()
			seen[y]++
			mu.Unlock()
		}
	})
	for y, n := range seen {
		if n != 1 {
			t.Fatalf("row %d visited %d times", y, n)
		}
	}
}

func BenchmarkWorkerPool_ForEachBand(b *testing.B) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	rows := make([]float64, 1080)
	for b.Loop() {
		pool.ForEachBand(len(rows), func(band Band) {
			for y := band.Y0; y < band.Y1; y++ {
				rows[y] = float64(y) * 0.5
			}
		})
	}
}
