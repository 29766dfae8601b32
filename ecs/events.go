package ecs

// Event is a world event published for systems to observe.
type Event struct {
	Type string
	Data any
}

// EventWindowClosing is pushed by the host loop when the window is about to
// close. It has no payload.
const EventWindowClosing = "window_closing"

// EventQueue is a simple FIFO queue. Events survive until the end of the
// update they were pushed in, so multiple systems can observe the same event.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns all pending events without clearing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
