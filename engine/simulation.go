// Package engine runs one lock-picking attempt: it owns the cylinder and pick actuators,
// couples them through the difficulty profile each tick, and relays their notifications
package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/vi-lockpick/actuator"
	"github.com/lixenwraith/vi-lockpick/difficulty"
	"github.com/lixenwraith/vi-lockpick/events"
	"github.com/lixenwraith/vi-lockpick/parameter"
	"github.com/lixenwraith/vi-lockpick/vmath"
)

// Config holds the tuning a Simulation is built with
type Config struct {
	Curve difficulty.Curve

	CylinderTensionSpeed float64
	CylinderReturnSpeed  float64
	PickRotationSpeed    float64

	// Random draws solution centers; nil uses difficulty.DefaultSource
	Random difficulty.RandomSource
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		Curve:                difficulty.DefaultCurve(),
		CylinderTensionSpeed: parameter.CylinderTensionSpeed,
		CylinderReturnSpeed:  parameter.CylinderReturnSpeed,
		PickRotationSpeed:    parameter.PickRotationSpeed,
	}
}

// Simulation is a single lock. Not safe for concurrent use: one goroutine drives Tick
// and every mutator; handlers run on that goroutine inside the emitting call
type Simulation struct {
	cfg Config
	rng difficulty.RandomSource

	profile  difficulty.Profile
	ready    bool
	cylinder *actuator.Cylinder
	pick     *actuator.Pick

	maxTension      float64
	movementEnabled bool

	tick    uint64
	elapsed time.Duration

	queue       *events.EventQueue
	router      *events.Router[*Simulation]
	dispatching bool
}

// NewSimulation creates a simulation with no lock; SetDifficulty must be called before Tick
func NewSimulation(cfg Config) *Simulation {
	rng := cfg.Random
	if rng == nil {
		rng = difficulty.DefaultSource()
	}
	queue := events.NewEventQueue()
	return &Simulation{
		cfg:             cfg,
		rng:             rng,
		maxTension:      parameter.CylinderRotationMax,
		movementEnabled: true,
		queue:           queue,
		router:          events.NewRouter[*Simulation](queue),
	}
}

// Register subscribes a handler; delivery is synchronous and in emission order
func (s *Simulation) Register(h events.Handler[*Simulation]) {
	s.router.Register(h)
}

// SetDifficulty draws a new solution for difficulty (clamped to 0-100) and installs a fresh lock
func (s *Simulation) SetDifficulty(d int) {
	s.SetProfile(difficulty.Compute(d, s.cfg.Curve, s.rng))
}

// SetProfile installs a fresh lock for an already computed profile
// Actuators are recreated idle and at rest; movement enablement carries over
func (s *Simulation) SetProfile(p difficulty.Profile) {
	s.profile = p
	s.ready = true

	s.cylinder = actuator.NewCylinder(s.cfg.CylinderTensionSpeed, s.cfg.CylinderReturnSpeed)
	s.pick = actuator.NewPick(s.cfg.PickRotationSpeed, p.PickDegradation)

	obs := observer{s}
	s.cylinder.SetObserver(obs)
	s.pick.SetObserver(obs)
	s.cylinder.SetMovementEnabled(s.movementEnabled)
	s.pick.SetMovementEnabled(s.movementEnabled)

	s.maxTension = p.MaxTensionRotation(s.pick.Rotation())
	s.tick = 0
	s.elapsed = 0

	s.emit(events.EventLockStarted, &events.LockStartedPayload{Profile: p})
	s.dispatch()
}

// Tick advances the lock by dt with the two input axes in [-1, 1]
// Panics if no difficulty has been set
func (s *Simulation) Tick(cylinderAxis, pickAxis float64, dt time.Duration) {
	if !s.ready {
		panic("engine: Tick called before SetDifficulty")
	}
	if dt < 0 {
		dt = 0
	}
	secs := dt.Seconds()
	s.tick++
	s.elapsed += dt

	// Coupling: pick distance from the solution caps cylinder travel
	s.maxTension = s.profile.MaxTensionRotation(s.pick.Rotation())

	s.cylinder.Update(s.cylinder.DriveDelta(sanitizeAxis(cylinderAxis), secs), s.maxTension)
	s.pick.Update(s.pick.DriveDelta(sanitizeAxis(pickAxis), secs), secs)

	// A jammed cylinder is what damages the pick
	if stuck := s.cylinder.State() == actuator.CylinderStuck; s.pick.Breaking() != stuck {
		s.pick.SetBreaking(stuck)
	}

	s.dispatch()
}

// ResetPick replaces a broken (or any) pick in place with full life and the given degradation
func (s *Simulation) ResetPick(degradation float64) {
	s.mustBeReady("ResetPick")
	old := s.pick.State()
	s.pick.Reset(degradation)
	if old != s.pick.State() {
		s.emit(events.EventPickStateChanged, &events.PickStateChangedPayload{Old: old, Current: s.pick.State()})
	}
	s.dispatch()
}

// SetCylinderRotation places the cylinder directly, used to wind it back during pick recovery
func (s *Simulation) SetCylinderRotation(v float64) {
	s.mustBeReady("SetCylinderRotation")
	s.cylinder.SetRotation(v)
}

// SetMovementEnabled gates both actuators together
func (s *Simulation) SetMovementEnabled(enabled bool) {
	s.movementEnabled = enabled
	if s.ready {
		s.cylinder.SetMovementEnabled(enabled)
		s.pick.SetMovementEnabled(enabled)
	}
}

// MovementEnabled reports whether both actuators accept drive
func (s *Simulation) MovementEnabled() bool {
	return s.movementEnabled
}

// --- Observers ---

func (s *Simulation) Ready() bool { return s.ready }
func (s *Simulation) Profile() difficulty.Profile { return s.profile }
func (s *Simulation) Difficulty() int { return s.profile.Difficulty }
func (s *Simulation) TickCount() uint64 { return s.tick }
func (s *Simulation) Elapsed() time.Duration { return s.elapsed }
func (s *Simulation) MaxTensionRotation() float64 { return s.maxTension }
func (s *Simulation) CylinderRotation() float64 { return s.cylinderOr().Rotation() }
func (s *Simulation) CylinderState() actuator.CylinderState { return s.cylinderOr().State() }
func (s *Simulation) PickRotation() float64 { return s.pickOr().Rotation() }
func (s *Simulation) PickRotationNormalized() float64 { return s.pickOr().RotationNormalized() }
func (s *Simulation) PickLife() float64 { return s.pickOr().Life() }
func (s *Simulation) PickDegradation() float64 { return s.pickOr().Degradation() }
func (s *Simulation) PickState() actuator.PickState { return s.pickOr().State() }

// View is a copy of the observable lock state
type View struct {
	Tick       uint64
	Elapsed    time.Duration
	Difficulty int

	CylinderRotation float64
	CylinderState    actuator.CylinderState
	MaxTension       float64

	PickRotation           float64
	PickRotationNormalized float64
	PickLife               float64
	PickState              actuator.PickState

	MovementEnabled bool
}

// View snapshots the observable state
func (s *Simulation) View() View {
	c, p := s.cylinderOr(), s.pickOr()
	return View{
		Tick:                   s.tick,
		Elapsed:                s.elapsed,
		Difficulty:             s.profile.Difficulty,
		CylinderRotation:       c.Rotation(),
		CylinderState:          c.State(),
		MaxTension:             s.maxTension,
		PickRotation:           p.Rotation(),
		PickRotationNormalized: p.RotationNormalized(),
		PickLife:               p.Life(),
		PickState:              p.State(),
		MovementEnabled:        s.movementEnabled,
	}
}

// --- Internals ---

// Resting stand-ins so observers are safe before the first lock
var (
	restingCylinder = actuator.NewCylinder(0, 0)
	restingPick     = actuator.NewPick(0, 0)
)

func (s *Simulation) cylinderOr() *actuator.Cylinder {
	if s.cylinder == nil {
		return restingCylinder
	}
	return s.cylinder
}

func (s *Simulation) pickOr() *actuator.Pick {
	if s.pick == nil {
		return restingPick
	}
	return s.pick
}

func (s *Simulation) mustBeReady(op string) {
	if !s.ready {
		panic("engine: " + op + " called before SetDifficulty")
	}
}

// dispatch drains the queue to handlers
// A mutator called from inside a handler only enqueues; the outer drain delivers it in order
func (s *Simulation) dispatch() {
	if s.dispatching {
		return
	}
	s.dispatching = true
	defer func() { s.dispatching = false }()
	s.router.DispatchAll(s)
}

func (s *Simulation) emit(t events.EventType, payload any) {
	s.queue.Push(events.GameEvent{
		Type:    t,
		Payload: payload,
		Tick:    s.tick,
		Elapsed: s.elapsed,
	})
}

// sanitizeAxis clamps to [-1, 1] and treats NaN as no input
func sanitizeAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return vmath.Clamp(v, -1, 1)
}

// observer adapts actuator callbacks onto the event queue without widening Simulation's API
type observer struct {
	s *Simulation
}

func (o observer) CylinderStateChanged(old, current actuator.CylinderState) {
	o.s.emit(events.EventCylinderStateChanged, &events.CylinderStateChangedPayload{Old: old, Current: current})
}

func (o observer) CylinderUnlocked() {
	o.s.emit(events.EventCylinderUnlocked, nil)
}

func (o observer) PickStateChanged(old, current actuator.PickState) {
	o.s.emit(events.EventPickStateChanged, &events.PickStateChangedPayload{Old: old, Current: current})
	if current == actuator.PickBroken {
		o.s.emit(events.EventPickBroken, nil)
	}
}

func (o observer) PickMoved(oldRotation, rotation float64) {
	o.s.emit(events.EventPickMoved, &events.PickMovedPayload{OldRotation: oldRotation, Rotation: rotation})
}
