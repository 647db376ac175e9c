package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the simulation tick interval
	// Lock feel depends on small dt, keep well under the audio buffer
	GameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps the dt fed to a single tick after a stall (debugger, suspend)
	MaxTickDelta = 100 * time.Millisecond
)

// Event Queue
const (
	// EventQueueInitialCap is the initial capacity of the per-tick event buffer
	// A single tick emits at most a handful of events
	EventQueueInitialCap = 16
)
