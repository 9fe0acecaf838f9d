package renderer

import (
	"runtime"
	"sync"
)

// RowTask represents one framebuffer row to render
type RowTask struct {
	Row int
}

// RowResult reports a completed row
type RowResult struct {
	Row    int
	Pixels int
}

// WorkerPool manages parallel row rendering. Every pixel is an independent
// computation over the read-only scene, and workers write to disjoint rows of
// the shared framebuffer, so the task and result channels are the only
// synchronization.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers
// for an image of the given height. numWorkers <= 0 means one per CPU.
func NewWorkerPool(numWorkers, height int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		// Buffer for every row so SubmitTask and workers never block
		taskQueue:   make(chan RowTask, height),
		resultQueue: make(chan RowResult, height),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers; renderRow must be safe for concurrent calls with
// distinct rows and returns the number of pixels it wrote.
func (wp *WorkerPool) Start(renderRow func(row int) int) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(renderRow)
	}
}

// run is the main worker loop
func (wp *WorkerPool) run(renderRow func(row int) int) {
	defer wp.wg.Done()
	for task := range wp.taskQueue {
		wp.resultQueue <- RowResult{Row: task.Row, Pixels: renderRow(task.Row)}
	}
}

// SubmitTask submits a row task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// Results returns the channel of completed row results
func (wp *WorkerPool) Results() <-chan RowResult {
	return wp.resultQueue
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}
