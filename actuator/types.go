// Package actuator holds the two coupled state machines of a lock: the tensioned cylinder
// and the pick. Each is advanced once per tick by a signed drive delta; state evaluation may
// fall through to the next state within the same tick, at most once
package actuator

import "fmt"

// maxPasses bounds state evaluations per Update: the entry state plus one fallthrough
const maxPasses = 2

// CylinderState is the cylinder's finite state
type CylinderState int

const (
	CylinderIdle CylinderState = iota
	CylinderMoving
	CylinderStuck
	CylinderUnlocked
)

var cylinderStateNames = [...]string{"Idle", "Moving", "Stuck", "Unlocked"}

func (s CylinderState) String() string {
	if s >= 0 && int(s) < len(cylinderStateNames) {
		return cylinderStateNames[s]
	}
	return fmt.Sprintf("CylinderState(%d)", int(s))
}

// PickState is the pick's finite state
type PickState int

const (
	PickIdle PickState = iota
	PickMoving
	PickBreaking
	PickBroken
)

var pickStateNames = [...]string{"Idle", "Moving", "Breaking", "Broken"}

func (s PickState) String() string {
	if s >= 0 && int(s) < len(pickStateNames) {
		return pickStateNames[s]
	}
	return fmt.Sprintf("PickState(%d)", int(s))
}

// CylinderObserver receives cylinder notifications synchronously, in emission order
type CylinderObserver interface {
	// CylinderStateChanged fires on every transition, including intermediate fallthrough states
	CylinderStateChanged(old, current CylinderState)

	// CylinderUnlocked fires once on the transition into CylinderUnlocked
	CylinderUnlocked()
}

// PickObserver receives pick notifications synchronously, in emission order
type PickObserver interface {
	// PickStateChanged fires on every transition with the state being left
	PickStateChanged(old, current PickState)

	// PickMoved fires when a Moving step changed rotation, carrying the pre-update rotation
	PickMoved(oldRotation, rotation float64)
}
