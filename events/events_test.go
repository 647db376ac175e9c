package events

import (
	"reflect"
	"testing"
)

// TestEventQueueBasic tests push and consume ordering
func TestEventQueueBasic(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(GameEvent{Type: EventPickStateChanged, Payload: "test1", Tick: 1})
	eq.Push(GameEvent{Type: EventPickMoved, Payload: "test2", Tick: 1})
	eq.Push(GameEvent{Type: EventCylinderUnlocked, Payload: "test3", Tick: 2})

	if eq.Len() != 3 {
		t.Fatalf("Len mismatch: got %d", eq.Len())
	}

	events := eq.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	if events[0].Type != EventPickStateChanged || events[0].Payload != "test1" {
		t.Errorf("Event 1 mismatch: got type=%v, payload=%v", events[0].Type, events[0].Payload)
	}
	if events[1].Type != EventPickMoved || events[1].Payload != "test2" {
		t.Errorf("Event 2 mismatch: got type=%v, payload=%v", events[1].Type, events[1].Payload)
	}
	if events[2].Type != EventCylinderUnlocked || events[2].Payload != "test3" {
		t.Errorf("Event 3 mismatch: got type=%v, payload=%v", events[2].Type, events[2].Payload)
	}

	if events2 := eq.Consume(); len(events2) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(events2))
	}
}

// TestEventQueueConsumeOwnsSlice verifies pushes after consume do not alias returned events
func TestEventQueueConsumeOwnsSlice(t *testing.T) {
	eq := NewEventQueue()
	eq.Push(GameEvent{Type: EventPickBroken})
	got := eq.Consume()
	eq.Push(GameEvent{Type: EventCylinderUnlocked})
	if got[0].Type != EventPickBroken {
		t.Errorf("consumed event overwritten: got %v", got[0].Type)
	}
}

type orderHandler struct {
	name  string
	types []EventType
	seen  *[]string
}

func (h *orderHandler) HandleEvent(ctx int, ev GameEvent) {
	*h.seen = append(*h.seen, h.name+":"+ev.Type.String())
}

func (h *orderHandler) EventTypes() []EventType { return h.types }

// TestRouterDispatchOrder verifies FIFO delivery and registration order per event
func TestRouterDispatchOrder(t *testing.T) {
	eq := NewEventQueue()
	r := NewRouter[int](eq)

	var seen []string
	r.Register(&orderHandler{name: "a", types: []EventType{EventPickBroken, EventPickMoved}, seen: &seen})
	r.Register(&orderHandler{name: "b", types: []EventType{EventPickBroken}, seen: &seen})

	eq.Push(GameEvent{Type: EventPickMoved})
	eq.Push(GameEvent{Type: EventPickBroken})
	eq.Push(GameEvent{Type: EventCylinderUnlocked}) // No handler

	if n := r.DispatchAll(0); n != 3 {
		t.Errorf("dispatched count mismatch: got %d", n)
	}

	want := []string{"a:PickMoved", "a:PickBroken", "b:PickBroken"}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("dispatch order mismatch: got %v, want %v", seen, want)
	}
	if !r.HasHandlers(EventPickBroken) || r.HandlerCount(EventPickBroken) != 2 {
		t.Errorf("handler registry mismatch: count=%d", r.HandlerCount(EventPickBroken))
	}
	if r.HasHandlers(EventLockStarted) {
		t.Error("unexpected handler for EventLockStarted")
	}
}

// TestRouterDeliversNestedEmissions verifies events pushed by a handler reach dispatch in the same call
func TestRouterDeliversNestedEmissions(t *testing.T) {
	eq := NewEventQueue()
	r := NewRouter[int](eq)

	var seen []EventType
	r.Register(HandlerFunc[int]{
		Types: []EventType{EventPickBroken, EventPickStateChanged},
		Fn: func(_ int, ev GameEvent) {
			seen = append(seen, ev.Type)
			if ev.Type == EventPickBroken {
				eq.Push(GameEvent{Type: EventPickStateChanged})
			}
		},
	})

	eq.Push(GameEvent{Type: EventPickBroken})
	r.DispatchAll(0)

	want := []EventType{EventPickBroken, EventPickStateChanged}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("nested dispatch mismatch: got %v, want %v", seen, want)
	}
	if eq.Len() != 0 {
		t.Errorf("queue not drained: %d", eq.Len())
	}
}

func TestEventNames(t *testing.T) {
	et, ok := GetEventType("pickbroken")
	if !ok || et != EventPickBroken {
		t.Errorf("GetEventType mismatch: got %v, %v", et, ok)
	}
	if name := GetEventName(EventCylinderUnlocked); name != "CylinderUnlocked" {
		t.Errorf("GetEventName mismatch: got %q", name)
	}
	if name := EventType(999).String(); name != "Unknown" {
		t.Errorf("unknown name mismatch: got %q", name)
	}
}
