// Package session drives the lock lifecycle around a Simulation: pick recovery after a
// break, the unlock hold, and the next lock
package session

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/vi-lockpick/difficulty"
	"github.com/lixenwraith/vi-lockpick/engine"
	"github.com/lixenwraith/vi-lockpick/events"
	"github.com/lixenwraith/vi-lockpick/parameter"
	"github.com/lixenwraith/vi-lockpick/status"
	"github.com/lixenwraith/vi-lockpick/vmath"
)

// Phase is the lifecycle stage of the current lock
type Phase int

const (
	// PhasePlaying accepts input
	PhasePlaying Phase = iota

	// PhaseRecovering follows a broken pick: pause, wind the cylinder back, fresh pick
	PhaseRecovering

	// PhaseUnlocking holds the opened lock on screen
	PhaseUnlocking

	// PhaseFinished waits for the next lock
	PhaseFinished
)

var phaseNames = [...]string{"playing", "recovering", "unlocking", "finished"}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Config holds lifecycle timing
type Config struct {
	BreakPause          time.Duration
	RecoveryReturnSpeed float64
	UnlockPause         time.Duration
	NextLockPause       time.Duration

	// RandomDifficulty draws every lock after the first uniformly from 0-100
	RandomDifficulty bool
	StartDifficulty  int
}

// DefaultConfig returns the stock lifecycle timing
func DefaultConfig() Config {
	return Config{
		BreakPause:          parameter.BreakPause,
		RecoveryReturnSpeed: parameter.RecoveryReturnSpeed,
		UnlockPause:         parameter.UnlockPause,
		NextLockPause:       parameter.NextLockPause,
		RandomDifficulty:    true,
		StartDifficulty:     parameter.DifficultyDefault,
	}
}

// Result summarizes one closed lock
type Result struct {
	Difficulty     int
	SolutionCenter float64
	Breaks         int
	Duration       time.Duration // Simulated time from lock start to unlock or abandon
	Unlocked       bool
	StartedAt      time.Time
}

// Game owns the lifecycle of successive locks on one Simulation
// Not safe for concurrent use; the game loop goroutine calls every method
type Game struct {
	cfg    Config
	sim    *engine.Simulation
	board  *status.Board
	logger *log.Logger
	rng    difficulty.RandomSource
	now    func() time.Time

	timers  Scheduler
	phase   Phase
	paused  bool
	winding bool

	breaks    int
	locks     int
	openedAt  time.Duration
	startedAt time.Time

	onFinished []func(Result)
}

// Option configures a Game
type Option func(*Game)

// WithBoard publishes the lock view to b after every update
func WithBoard(b *status.Board) Option { return func(g *Game) { g.board = b } }

// WithLogger sets the lifecycle logger; the default discards
func WithLogger(l *log.Logger) Option { return func(g *Game) { g.logger = l } }

// WithRandom sets the source used to draw random difficulties
func WithRandom(r difficulty.RandomSource) Option { return func(g *Game) { g.rng = r } }

// WithClock sets the wall clock stamped on results
func WithClock(now func() time.Time) Option { return func(g *Game) { g.now = now } }

// NewGame attaches lifecycle handling to sim; call Start before Update
func NewGame(sim *engine.Simulation, cfg Config, opts ...Option) *Game {
	g := &Game{
		cfg: cfg,
		sim: sim,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.rng == nil {
		g.rng = difficulty.DefaultSource()
	}
	sim.Register(lifecycleHandler{g})
	return g
}

// OnFinished registers fn to receive every closed lock, unlocked or abandoned
func (g *Game) OnFinished(fn func(Result)) {
	g.onFinished = append(g.onFinished, fn)
}

// Start installs the first lock at the configured start difficulty
func (g *Game) Start() {
	g.startLock(g.cfg.StartDifficulty)
}

// NewLock closes the current lock and starts the next one
// An open lock is abandoned; a lock already opened and still holding is recorded as unlocked
func (g *Game) NewLock() {
	if g.sim.Ready() {
		switch g.phase {
		case PhasePlaying, PhaseRecovering:
			g.logger.Info("lock abandoned", "difficulty", g.sim.Difficulty(), "breaks", g.breaks)
			g.finish(false)
		case PhaseUnlocking:
			g.finish(true)
		}
	}
	g.nextLock()
}

// SetPaused freezes simulated time; timers and actuators do not advance while paused
func (g *Game) SetPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	g.logger.Debug("pause", "paused", paused)
	g.publish()
}

// TogglePause flips the pause state
func (g *Game) TogglePause() { g.SetPaused(!g.paused) }

// Update runs timers, recovery wind-back, then one simulation tick
func (g *Game) Update(cylinderAxis, pickAxis float64, dt time.Duration) {
	if g.paused {
		return
	}
	if dt < 0 {
		dt = 0
	}

	g.timers.Advance(dt)
	if g.winding {
		g.windBack(dt)
	}
	g.sim.Tick(cylinderAxis, pickAxis, dt)
	g.publish()
}

func (g *Game) Phase() Phase { return g.phase }
func (g *Game) Paused() bool { return g.paused }
func (g *Game) Breaks() int { return g.breaks }
func (g *Game) Locks() int { return g.locks }
func (g *Game) Simulation() *engine.Simulation { return g.sim }

// === Lifecycle ===

func (g *Game) startLock(d int) {
	g.timers.Clear()
	g.winding = false
	g.breaks = 0
	g.openedAt = 0
	g.startedAt = g.now()

	g.sim.SetMovementEnabled(true)
	g.sim.SetDifficulty(d)
	g.phase = PhasePlaying

	p := g.sim.Profile()
	g.logger.Info("lock started", "difficulty", p.Difficulty)
	g.logger.Debug("lock profile",
		"center", p.SolutionCenter,
		"range", p.SolutionRange,
		"falloff", p.SolutionFalloff,
		"degradation", p.PickDegradation,
	)
	g.publish()
}

func (g *Game) nextLock() {
	d := g.cfg.StartDifficulty
	if g.cfg.RandomDifficulty {
		span := parameter.DifficultyMax - parameter.DifficultyMin + 1
		d = vmath.ClampInt(parameter.DifficultyMin+int(g.rng.Float64()*float64(span)),
			parameter.DifficultyMin, parameter.DifficultyMax)
	}
	g.startLock(d)
}

func (g *Game) onPickBroken() {
	if g.phase != PhasePlaying {
		return
	}
	g.breaks++
	g.phase = PhaseRecovering
	g.sim.SetMovementEnabled(false)
	g.logger.Info("pick broken", "difficulty", g.sim.Difficulty(), "breaks", g.breaks)

	g.timers.After(g.cfg.BreakPause, func() { g.winding = true })
}

// windBack returns the cylinder to rest, then hands over a fresh pick
func (g *Game) windBack(dt time.Duration) {
	r := g.sim.CylinderRotation() - g.cfg.RecoveryReturnSpeed*dt.Seconds()
	if r > 0 {
		g.sim.SetCylinderRotation(r)
		return
	}

	g.sim.SetCylinderRotation(0)
	g.winding = false
	g.sim.ResetPick(g.sim.Profile().PickDegradation)
	g.sim.SetMovementEnabled(true)
	g.phase = PhasePlaying
	g.logger.Debug("pick replaced", "breaks", g.breaks)
}

func (g *Game) onUnlocked() {
	if g.phase != PhasePlaying {
		return
	}
	g.phase = PhaseUnlocking
	g.openedAt = g.sim.Elapsed()
	g.sim.SetMovementEnabled(false)
	g.logger.Info("lock opened",
		"difficulty", g.sim.Difficulty(),
		"breaks", g.breaks,
		"elapsed", g.openedAt,
	)

	g.timers.After(g.cfg.UnlockPause, func() {
		g.finish(true)
		g.timers.After(g.cfg.NextLockPause, g.nextLock)
	})
}

func (g *Game) finish(unlocked bool) {
	g.phase = PhaseFinished
	if unlocked {
		g.locks++
	}

	duration := g.sim.Elapsed()
	if unlocked {
		duration = g.openedAt
	}
	res := Result{
		Difficulty:     g.sim.Difficulty(),
		SolutionCenter: g.sim.Profile().SolutionCenter,
		Breaks:         g.breaks,
		Duration:       duration,
		Unlocked:       unlocked,
		StartedAt:      g.startedAt,
	}
	for _, fn := range g.onFinished {
		fn(res)
	}
	g.publish()
}

func (g *Game) publish() {
	if g.board == nil {
		return
	}
	g.board.PublishView(g.sim.View())
	g.board.Breaks.Store(int64(g.breaks))
	g.board.Locks.Store(int64(g.locks))
	g.board.Phase.Store(g.phase.String())
	g.board.Paused.Store(g.paused)
}

// lifecycleHandler routes simulation notifications into the game
type lifecycleHandler struct {
	g *Game
}

func (h lifecycleHandler) EventTypes() []events.EventType {
	return []events.EventType{events.EventPickBroken, events.EventCylinderUnlocked}
}

func (h lifecycleHandler) HandleEvent(_ *engine.Simulation, ev events.GameEvent) {
	switch ev.Type {
	case events.EventPickBroken:
		h.g.onPickBroken()
	case events.EventCylinderUnlocked:
		h.g.onUnlocked()
	}
}
