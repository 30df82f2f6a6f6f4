package event

import "github.com/zyedidia/generic/queue"

// Queue is the FIFO the main loop drains each frame. The input layer
// and the clock push into it; the active scene consumes from it in
// arrival order.
type Queue struct {
	events *queue.Queue[Event]
}

// NewQueue returns an empty event queue.
func NewQueue() *Queue {
	return &Queue{events: queue.New[Event]()}
}

// Push appends ev to the back of the queue.
func (q *Queue) Push(ev Event) {
	q.events.Enqueue(ev)
}

// Pop removes and returns the oldest queued event. ok is false when
// the queue is empty.
func (q *Queue) Pop() (ev Event, ok bool) {
	if q.events.Empty() {
		return Event{}, false
	}
	return q.events.Dequeue(), true
}

// Clear discards all queued events. Used when a scene ends so stale
// input does not leak into its successor.
func (q *Queue) Clear() {
	for !q.events.Empty() {
		q.events.Dequeue()
	}
}
