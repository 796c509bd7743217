package gui

import "github.com/appengine-ltd/pretender/internal/command"

// frameBurst bounds the input one frame can queue. A fast typist produces a
// handful of key presses per frame, a pasted or held key a few dozen.
const frameBurst = 128

type EventSink interface {
	Enqueue(command.Event)
}

// eventQueue buffers the events polled during one frame until the session
// drains them. Window close bypasses it and is dispatched directly, so a full
// queue only ever loses keys and clicks, which it counts.
type eventQueue struct {
	ch      chan command.Event
	dropped int
}

func newEventQueue(size int) *eventQueue {
	if size < 1 {
		size = frameBurst
	}
	return &eventQueue{ch: make(chan command.Event, size)}
}

func (q *eventQueue) Enqueue(ev command.Event) {
	if q == nil {
		return
	}
	select {
	case q.ch <- ev:
	default:
		q.dropped++
	}
}

func (q *eventQueue) Dequeue() (command.Event, bool) {
	if q == nil {
		return command.Event{}, false
	}
	select {
	case ev := <-q.ch:
		return ev, true
	default:
		return command.Event{}, false
	}
}

// TakeDropped reports how many events were lost since the last call.
func (q *eventQueue) TakeDropped() int {
	if q == nil {
		return 0
	}
	n := q.dropped
	q.dropped = 0
	return n
}
