// Package status publishes the lock's observable values from the game loop to readers
// on other goroutines (renderer, audio) without sharing the simulation itself
package status

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-lockpick/actuator"
	"github.com/lixenwraith/vi-lockpick/engine"
)

// Board is single-writer, multi-reader. Each cell is atomic; a Snapshot is not a
// consistent cut across cells, which is fine for display
type Board struct {
	CylinderRotation AtomicFloat
	MaxTension       AtomicFloat
	PickRotation     AtomicFloat
	PickLife         AtomicFloat

	CylinderState atomic.Int32
	PickState     atomic.Int32

	Difficulty atomic.Int64
	Breaks     atomic.Int64 // Picks broken on the current lock
	Locks      atomic.Int64 // Locks opened this session
	ElapsedNs  atomic.Int64

	Phase  AtomicString
	Paused atomic.Bool
}

// NewBoard creates a board showing a full-life, resting lock
func NewBoard() *Board {
	b := &Board{}
	b.PickLife.Set(1)
	b.MaxTension.Set(1)
	return b
}

// PublishView copies the simulation view into the board
func (b *Board) PublishView(v engine.View) {
	b.CylinderRotation.Set(v.CylinderRotation)
	b.MaxTension.Set(v.MaxTension)
	b.PickRotation.Set(v.PickRotation)
	b.PickLife.Set(v.PickLife)
	b.CylinderState.Store(int32(v.CylinderState))
	b.PickState.Store(int32(v.PickState))
	b.Difficulty.Store(int64(v.Difficulty))
	b.ElapsedNs.Store(int64(v.Elapsed))
}

// Snapshot is a plain copy of the board for one frame
type Snapshot struct {
	CylinderRotation float64
	MaxTension       float64
	PickRotation     float64
	PickLife         float64
	CylinderState    actuator.CylinderState
	PickState        actuator.PickState
	Difficulty       int
	Breaks           int
	Locks            int
	Elapsed          time.Duration
	Phase            string
	Paused           bool
}

// Snapshot reads every cell
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		CylinderRotation: b.CylinderRotation.Get(),
		MaxTension:       b.MaxTension.Get(),
		PickRotation:     b.PickRotation.Get(),
		PickLife:         b.PickLife.Get(),
		CylinderState:    actuator.CylinderState(b.CylinderState.Load()),
		PickState:        actuator.PickState(b.PickState.Load()),
		Difficulty:       int(b.Difficulty.Load()),
		Breaks:           int(b.Breaks.Load()),
		Locks:            int(b.Locks.Load()),
		Elapsed:          time.Duration(b.ElapsedNs.Load()),
		Phase:            b.Phase.Load(),
		Paused:           b.Paused.Load(),
	}
}
