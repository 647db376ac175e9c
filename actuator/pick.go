package actuator

import (
	"github.com/lixenwraith/vi-lockpick/parameter"
	"github.com/lixenwraith/vi-lockpick/vmath"
)

// Pick is the positional axis of the lock, rotation in [-1, 1]
// It degrades while Breaking and stays Broken until Reset
type Pick struct {
	// RotationSpeed is rotation units per second at full input (half the travel)
	RotationSpeed float64

	rotation        float64
	life            float64
	degradation     float64
	state           PickState
	movementEnabled bool

	observer PickObserver
}

// NewPick creates a centered, full-life, idle pick
func NewPick(rotationSpeed, degradation float64) *Pick {
	p := &Pick{
		RotationSpeed:   rotationSpeed,
		movementEnabled: true,
	}
	p.Reset(degradation)
	return p
}

// SetObserver attaches the notification sink, nil detaches
func (p *Pick) SetObserver(o PickObserver) {
	p.observer = o
}

func (p *Pick) Rotation() float64 { return p.rotation }
func (p *Pick) Life() float64 { return p.life }
func (p *Pick) Degradation() float64 { return p.degradation }
func (p *Pick) State() PickState { return p.state }
func (p *Pick) MovementEnabled() bool { return p.movementEnabled }

// RotationNormalized maps rotation from [-1, 1] to [0, 1]
func (p *Pick) RotationNormalized() float64 {
	return (p.rotation + 1) / 2
}

// SetMovementEnabled gates all drive; a disabled pick holds its rotation
func (p *Pick) SetMovementEnabled(enabled bool) {
	p.movementEnabled = enabled
}

// DriveDelta converts an input axis in [-1, 1] into this tick's signed rotation delta
func (p *Pick) DriveDelta(axis, dt float64) float64 {
	if !p.movementEnabled || dt <= 0 {
		return 0
	}
	return vmath.Clamp(axis, -1, 1) * p.RotationSpeed * dt
}

// Breaking reports whether the pick is currently taking damage
func (p *Pick) Breaking() bool {
	return p.state == PickBreaking
}

// SetBreaking forces Breaking (true) or Idle (false)
// No-op on a Broken pick: only Reset recovers it
func (p *Pick) SetBreaking(breaking bool) {
	if p.state == PickBroken {
		return
	}
	next := PickIdle
	if breaking {
		next = PickBreaking
	}
	if next != p.state {
		p.transition(next)
	}
}

// Reset restores a fresh pick in place
func (p *Pick) Reset(degradation float64) {
	p.life = parameter.PickLifeMax
	p.degradation = max(degradation, 0)
	p.state = PickIdle
	p.rotation = 0
}

// Update advances the state machine one tick
// dt is in seconds and drives degradation while Breaking
func (p *Pick) Update(driveDelta, dt float64) {
	for pass := 0; pass < maxPasses; pass++ {
		if !p.step(driveDelta, dt) {
			return
		}
	}
}

// step evaluates the current state once, returning true to request a fallthrough evaluation
func (p *Pick) step(driveDelta, dt float64) bool {
	switch p.state {
	case PickIdle:
		if driveDelta != 0 {
			p.transition(PickMoving)
			return true
		}

	case PickMoving:
		if driveDelta == 0 {
			p.transition(PickIdle)
			return false
		}
		old := p.rotation
		p.rotation = vmath.Clamp(p.rotation+driveDelta, parameter.PickRotationMin, parameter.PickRotationMax)
		if p.rotation != old && p.observer != nil {
			p.observer.PickMoved(old, p.rotation)
		}

	case PickBreaking:
		if dt <= 0 {
			return false
		}
		p.life -= p.degradation * dt
		if p.life <= 0 {
			p.life = 0
			p.transition(PickBroken)
		}

	case PickBroken:
		// Sink until Reset
	}
	return false
}

func (p *Pick) transition(next PickState) {
	old := p.state
	p.state = next
	if p.observer != nil {
		p.observer.PickStateChanged(old, next)
	}
}
