package events

import (
	"github.com/lixenwraith/vi-lockpick/actuator"
	"github.com/lixenwraith/vi-lockpick/difficulty"
)

// PickStateChangedPayload carries the state left and the state entered
type PickStateChangedPayload struct {
	Old     actuator.PickState
	Current actuator.PickState
}

// PickMovedPayload carries the pre-update rotation
// Consumers compare OldRotation against Rotation to detect bucket crossings
type PickMovedPayload struct {
	OldRotation float64
	Rotation    float64
}

// CylinderStateChangedPayload carries the state left and the state entered
type CylinderStateChangedPayload struct {
	Old     actuator.CylinderState
	Current actuator.CylinderState
}

// LockStartedPayload carries the freshly computed profile
type LockStartedPayload struct {
	Profile difficulty.Profile
}
