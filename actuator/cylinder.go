package actuator

import (
	"github.com/lixenwraith/vi-lockpick/parameter"
	"github.com/lixenwraith/vi-lockpick/vmath"
)

// Cylinder is the tension axis of the lock
// Rotation 0 is resting, 1 is fully turned (unlocked)
type Cylinder struct {
	// TensionSpeed is full travel per second under full tension
	TensionSpeed float64

	// ReturnSpeed is full travel per second of spring-back with no tension applied
	ReturnSpeed float64

	rotation           float64
	state              CylinderState
	maxTensionRotation float64
	movementEnabled    bool

	observer CylinderObserver
}

// NewCylinder creates a resting, idle cylinder with an unconstrained ceiling
func NewCylinder(tensionSpeed, returnSpeed float64) *Cylinder {
	return &Cylinder{
		TensionSpeed:       tensionSpeed,
		ReturnSpeed:        returnSpeed,
		state:              CylinderIdle,
		maxTensionRotation: parameter.CylinderRotationMax,
		movementEnabled:    true,
	}
}

// SetObserver attaches the notification sink, nil detaches
func (c *Cylinder) SetObserver(o CylinderObserver) {
	c.observer = o
}

func (c *Cylinder) Rotation() float64 { return c.rotation }
func (c *Cylinder) State() CylinderState { return c.state }
func (c *Cylinder) MaxTensionRotation() float64 { return c.maxTensionRotation }
func (c *Cylinder) MovementEnabled() bool { return c.movementEnabled }

// SetRotation places the cylinder directly, clamped to [0, 1]
// State is re-evaluated on the next Update
func (c *Cylinder) SetRotation(v float64) {
	c.rotation = vmath.Clamp(v, parameter.CylinderRotationMin, parameter.CylinderRotationMax)
}

// SetMovementEnabled gates all drive; a disabled cylinder holds its rotation
func (c *Cylinder) SetMovementEnabled(enabled bool) {
	c.movementEnabled = enabled
}

// DriveDelta converts an input axis in [-1, 1] into this tick's signed rotation delta
// No input with the cylinder off rest springs it back at ReturnSpeed
func (c *Cylinder) DriveDelta(axis, dt float64) float64 {
	if !c.movementEnabled || dt <= 0 {
		return 0
	}
	drive := vmath.Clamp(axis, -1, 1) * c.TensionSpeed
	if drive == 0 && c.rotation != 0 {
		drive = -c.ReturnSpeed
	}
	return drive * dt
}

// Update advances the state machine one tick
// maxTensionRotation is the ceiling positive drive may not push past this tick; 1 is unconstrained
func (c *Cylinder) Update(driveDelta, maxTensionRotation float64) {
	c.maxTensionRotation = vmath.Clamp01(maxTensionRotation)

	for pass := 0; pass < maxPasses; pass++ {
		if !c.step(driveDelta) {
			return
		}
	}
}

// step evaluates the current state once, returning true to request a fallthrough evaluation
func (c *Cylinder) step(driveDelta float64) bool {
	switch c.state {
	case CylinderIdle:
		if driveDelta != 0 {
			c.transition(CylinderMoving)
			return true
		}

	case CylinderMoving:
		if driveDelta == 0 {
			c.transition(CylinderIdle)
			return false
		}
		prev := c.rotation
		c.SetRotation(c.rotation + driveDelta)

		if driveDelta > 0 && c.maxTensionRotation < parameter.CylinderRotationMax &&
			c.rotation >= c.maxTensionRotation {
			// Jammed: hold position, the excess drive goes into the pick
			c.rotation = prev
			c.transition(CylinderStuck)
			return false
		}
		if c.rotation >= parameter.CylinderRotationMax {
			c.transition(CylinderUnlocked)
			if c.observer != nil {
				c.observer.CylinderUnlocked()
			}
		}

	case CylinderStuck:
		// Released, reversed, or the ceiling moved out of the way
		if driveDelta <= 0 || c.maxTensionRotation >= parameter.CylinderRotationMax ||
			c.rotation+driveDelta < c.maxTensionRotation {
			c.transition(CylinderMoving)
			return true
		}

	case CylinderUnlocked:
		if c.rotation < parameter.CylinderRotationMax {
			// Moved externally
			c.transition(CylinderIdle)
			return true
		}
		if driveDelta < 0 {
			c.SetRotation(c.rotation + driveDelta)
			if c.rotation < parameter.CylinderRotationMax {
				c.transition(CylinderIdle)
			}
		}
	}
	return false
}

func (c *Cylinder) transition(next CylinderState) {
	old := c.state
	c.state = next
	if c.observer != nil {
		c.observer.CylinderStateChanged(old, next)
	}
}
