package renderer

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// WorkerPool hands out pixel indices from a shared counter to a fixed set of workers
type WorkerPool struct {
	workers    []*Worker
	numWorkers int
	next       atomic.Int64 // next pixel index to claim
	done       atomic.Int64 // pixels finished
	total      int64
	wg         sync.WaitGroup
}

// Worker renders the pixels it claims with its own sampler
type Worker struct {
	ID      int
	sampler core.Sampler
	pool    *WorkerPool // Reference to parent pool for the shared counters
}

// NewWorkerPool creates a pool for total pixels. Each worker's sampler is
// seeded from seed plus its ID.
func NewWorkerPool(total int, numWorkers int, seed int64) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{numWorkers: numWorkers, total: int64(total)}
	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:      i,
			sampler: core.NewSeededSampler(seed + int64(i)),
			pool:    wp,
		})
	}
	return wp
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run starts every worker and blocks until all pixels are done or ctx is
// cancelled. render is called once per claimed pixel index; progress, when
// set, receives the running count of finished pixels.
func (wp *WorkerPool) Run(ctx context.Context, render func(index int, sampler core.Sampler), progress func(done int64)) error {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, render, progress)
	}
	wp.wg.Wait()
	if wp.done.Load() == wp.total {
		return nil
	}
	return ctx.Err()
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, render func(int, core.Sampler), progress func(int64)) {
	defer w.pool.wg.Done()

	for ctx.Err() == nil {
		index := w.pool.next.Add(1) - 1
		if index >= w.pool.total {
			return
		}
		render(int(index), w.sampler)

		done := w.pool.done.Add(1)
		if progress != nil {
			progress(done)
		}
	}
}
