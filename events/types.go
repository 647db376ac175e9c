// Package events carries lock notifications from the simulation to presentation
package events

import "time"

// EventType represents the type of lock event
type EventType int

const (
	// EventNone is the zero value, never emitted
	EventNone EventType = iota

	// EventPickStateChanged signals any pick state transition
	// Trigger: Pick.Update, Pick.SetBreaking, ResetPick
	// Consumer: Session, Audio (grind loop) | Payload: *PickStateChangedPayload
	EventPickStateChanged

	// EventPickMoved signals a pick rotation change during Moving
	// Trigger: Pick.Update | Payload: *PickMovedPayload
	// Consumer: Audio (bucket clicks)
	EventPickMoved

	// EventPickBroken signals pick life reaching 0
	// Trigger: Breaking -> Broken transition, once per pick
	// Consumer: Session (recovery, attempts), Audio | Payload: nil
	EventPickBroken

	// EventCylinderStateChanged signals any cylinder state transition
	// Trigger: Cylinder.Update | Payload: *CylinderStateChangedPayload
	EventCylinderStateChanged

	// EventCylinderUnlocked signals the cylinder reaching full travel
	// Trigger: Moving -> Unlocked transition, once per crossing
	// Consumer: Session (finish), Audio | Payload: nil
	EventCylinderUnlocked

	// EventLockStarted signals a new lock after SetDifficulty
	// Trigger: Simulation.SetDifficulty | Payload: *LockStartedPayload
	EventLockStarted
)

// GameEvent is a single queued notification
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64        // Simulation tick that emitted the event
	Elapsed time.Duration // Simulated time of the lock at emission
}
