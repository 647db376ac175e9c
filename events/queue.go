package events

import "github.com/lixenwraith/vi-lockpick/parameter"

// EventQueue is a FIFO buffer for events emitted during one tick
// Single-threaded: the simulation pushes and drains on the same goroutine
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, parameter.EventQueueInitialCap),
	}
}

// Push appends an event, preserving emission order
func (eq *EventQueue) Push(event GameEvent) {
	eq.events = append(eq.events, event)
}

// Consume returns all pending events in FIFO order and empties the queue
// The returned slice is owned by the caller
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(eq.events))
	copy(out, eq.events)
	eq.events = eq.events[:0]
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return len(eq.events)
}
