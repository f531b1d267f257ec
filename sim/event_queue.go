package sim

import "container/heap"

// eventHeap implements heap.Interface ordered by (Time, Seq).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type eventHeap []*Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	return h[i].Seq < h[j].Seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(*Event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// EventQueue is a min-priority queue of events.
// Events with equal times pop in push order, whatever the heap layout.
type EventQueue struct {
	events  eventHeap
	nextSeq int64
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{events: make(eventHeap, 0)}
	heap.Init(&q.events)
	return q
}

// Push inserts an event and returns it with its sequence id assigned.
func (q *EventQueue) Push(time int64, source, destination string, payload Payload) *Event {
	if payload == nil {
		panic("EventQueue.Push: payload must not be nil")
	}
	ev := &Event{
		Time:        time,
		Seq:         q.nextSeq,
		Source:      source,
		Destination: destination,
		Payload:     payload,
	}
	q.nextSeq++
	heap.Push(&q.events, ev)
	return ev
}

// Pop removes and returns the event with the smallest (Time, Seq).
// Returns ErrEmptyQueue if nothing is pending.
func (q *EventQueue) Pop() (*Event, error) {
	if len(q.events) == 0 {
		return nil, ErrEmptyQueue
	}
	return heap.Pop(&q.events).(*Event), nil
}

// Peek returns the next event without removing it, or nil if the queue is empty.
func (q *EventQueue) Peek() *Event {
	if len(q.events) == 0 {
		return nil
	}
	return q.events[0]
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
