package cts

import (
	"container/heap"
	"math/rand"
)

// event is a pending transition for one link. Time is absolute; epoch is
// the link's epoch at scheduling time. The destination channel is not
// fixed here: it is resolved when the event executes, against the
// pair-state current at that moment.
type event struct {
	at    float64
	link  int32
	epoch uint64
	seq   uint64
}

// eventHeap orders events by time, breaking ties by insertion sequence
// so a fixed random stream replays in an identical order.
type eventHeap []event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(event)) }

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// scheduler is a min-priority queue of pending events. It performs no
// validity checks of its own: stale entries are detected by the engine
// at pop time (lazy invalidation), which avoids O(log n) removals on
// every neighbouring state change.
type scheduler struct {
	heap eventHeap
	seq  uint64
}

// schedule draws an exponential waiting time with rate totalRate
// (mean 1/totalRate) and queues the event at now + wait.
func (s *scheduler) schedule(rng *rand.Rand, now, totalRate float64, link int32, epoch uint64) {
	wait := rng.ExpFloat64() / totalRate
	s.seq++
	heap.Push(&s.heap, event{at: now + wait, link: link, epoch: epoch, seq: s.seq})
}

// peek returns the minimum-time event without removing it.
func (s *scheduler) peek() (event, bool) {
	if len(s.heap) == 0 {
		return event{}, false
	}
	return s.heap[0], true
}

// pop removes and returns the minimum-time event.
func (s *scheduler) pop() event {
	return heap.Pop(&s.heap).(event)
}

func (s *scheduler) len() int { return len(s.heap) }
