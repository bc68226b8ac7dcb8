package sim

import "container/heap"

// wakeup pairs a due-time with the process to resume. The sequence number
// records insertion order: wakeups due at the same instant fire
// first-scheduled-first, which keeps replay deterministic for a fixed seed.
type wakeup struct {
	at   float64
	seq  uint64
	proc Process
}

// wakeupHeap implements heap.Interface ordered by due-time, ties broken by
// insertion order.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type wakeupHeap []*wakeup

func (h wakeupHeap) Len() int { return len(h) }
func (h wakeupHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}
func (h wakeupHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *wakeupHeap) Push(x any) {
	*h = append(*h, x.(*wakeup))
}

func (h *wakeupHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// EventQueue holds the pending wakeups of all suspended processes, ordered by
// due-time with FIFO fairness among simultaneously-due entries. Due-times are
// always produced from non-negative delays relative to the current clock, so
// the queue can never fire in the simulated past.
type EventQueue struct {
	heap wakeupHeap
	seq  uint64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	eq := &EventQueue{heap: make(wakeupHeap, 0)}
	heap.Init(&eq.heap)
	return eq
}

// Push schedules a wakeup for proc at the given due-time.
func (eq *EventQueue) Push(at float64, proc Process) {
	heap.Push(&eq.heap, &wakeup{at: at, seq: eq.seq, proc: proc})
	eq.seq++
}

// NextDue returns the due-time of the earliest pending wakeup.
// The second return value is false if the queue is empty.
func (eq *EventQueue) NextDue() (float64, bool) {
	if len(eq.heap) == 0 {
		return 0, false
	}
	return eq.heap[0].at, true
}

// Pop removes and returns the earliest pending wakeup.
// Must not be called on an empty queue.
func (eq *EventQueue) Pop() (float64, Process) {
	w := heap.Pop(&eq.heap).(*wakeup)
	return w.at, w.proc
}

// Len returns the number of pending wakeups.
func (eq *EventQueue) Len() int {
	return len(eq.heap)
}
