// Package worker provides a worker pool that sweeps ranges of raw integers in parallel.
package worker

import (
	"sync"
	"sync/atomic"
)

// Span is the half-open range [Lo, Hi) of raw integers.
type Span struct {
	Lo uint64
	Hi uint64
}

// Len returns the number of integers in the span.
func (s Span) Len() uint64 {
	if s.Hi <= s.Lo {
		return 0
	}
	return s.Hi - s.Lo
}

// Split cuts [lo, hi) into consecutive spans of at most size integers.
func Split(lo, hi, size uint64) []Span {
	if size == 0 {
		size = 1
	}
	var spans []Span
	for start := lo; start < hi; {
		end := hi
		if hi-start > size {
			end = start + size
		}
		spans = append(spans, Span{Lo: start, Hi: end})
		start = end
	}
	return spans
}

// WorkItem represents a span to be processed.
type WorkItem struct {
	Span  Span
	Index int // Original index for tracking
}

// ProcessResult represents the result of processing a span.
type ProcessResult struct {
	Span  Span
	Index int
	Tally interface{} // Opaque per-span payload; typed by consumer
	Error error       // Set instead of Tally when the span could not be processed
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel span processing.
type Pool struct {
	numWorkers  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// NewPool creates a pool of numWorkers workers whose channels hold bufferSize items.
// Both are raised to at least 1.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers:  numWorkers,
		workChan:    make(chan WorkItem, bufferSize),
		resultChan:  make(chan ProcessResult, bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a span and reports whether it was accepted. A stopped pool accepts
// nothing. Submit may block while the work channel is full.
func (p *Pool) Submit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	p.workChan <- item
	return true
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
