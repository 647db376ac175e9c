package session

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/vi-lockpick/actuator"
	"github.com/lixenwraith/vi-lockpick/engine"
	"github.com/lixenwraith/vi-lockpick/status"
)

const step = 125 * time.Millisecond // Binary-exact in seconds

// fixedSource always returns v
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

// newTestGame builds a game whose simulation draws center0 = 2*v-1 for every lock
func newTestGame(t *testing.T, start int, v float64, random bool) (*Game, *status.Board, *[]Result) {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.Random = fixedSource(v)
	sim := engine.NewSimulation(cfg)

	sc := DefaultConfig()
	sc.StartDifficulty = start
	sc.RandomDifficulty = random

	board := status.NewBoard()
	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	g := NewGame(sim, sc,
		WithBoard(board),
		WithRandom(fixedSource(v)),
		WithClock(func() time.Time { return stamp }),
	)
	results := &[]Result{}
	g.OnFinished(func(r Result) { *results = append(*results, r) })
	g.Start()
	return g, board, results
}

// steerPick drives the pick to target without tension
func steerPick(t *testing.T, g *Game, target float64) {
	t.Helper()
	sim := g.Simulation()
	maxStep := step.Seconds()
	for i := 0; math.Abs(sim.PickRotation()-target) > 1e-9; i++ {
		if i > 64 {
			t.Fatalf("pick did not reach %v, at %v", target, sim.PickRotation())
		}
		axis := math.Max(-1, math.Min(1, (target-sim.PickRotation())/maxStep))
		g.Update(0, axis, step)
	}
	g.Update(0, 0, step)
}

func TestStartPublishesFirstLock(t *testing.T) {
	g, board, _ := newTestGame(t, 30, 0.75, true)

	if g.Phase() != PhasePlaying {
		t.Errorf("phase mismatch: got %v", g.Phase())
	}
	if g.Simulation().Difficulty() != 30 {
		t.Errorf("start difficulty mismatch: got %d", g.Simulation().Difficulty())
	}
	snap := board.Snapshot()
	if snap.Phase != "playing" || snap.Difficulty != 30 || snap.PickLife != 1 {
		t.Errorf("board mismatch: %+v", snap)
	}
}

func TestBrokenPickRecovers(t *testing.T) {
	// Difficulty 100 with center 0: a pick at 0.05 caps the cylinder near 0.6
	g, board, _ := newTestGame(t, 100, 0.5, false)
	sim := g.Simulation()
	steerPick(t, g, 0.05)

	for i := 0; g.Phase() == PhasePlaying; i++ {
		if i > 40 {
			t.Fatalf("pick never broke, life %v state %v", sim.PickLife(), sim.PickState())
		}
		g.Update(1, 0, step)
	}

	if g.Phase() != PhaseRecovering || g.Breaks() != 1 {
		t.Fatalf("after break: phase %v breaks %d", g.Phase(), g.Breaks())
	}
	if sim.PickState() != actuator.PickBroken || sim.MovementEnabled() {
		t.Errorf("pick %v movement %v, want Broken and disabled", sim.PickState(), sim.MovementEnabled())
	}
	jammedAt := sim.CylinderRotation()
	if math.Abs(jammedAt-0.5) > 1e-9 {
		t.Errorf("jam rotation mismatch: got %v, want 0.5", jammedAt)
	}

	// Break pause: cylinder holds, input ignored
	for i := 0; i < 3; i++ {
		g.Update(1, 1, step)
		if g.Phase() != PhaseRecovering {
			t.Fatalf("pause ended early at update %d", i)
		}
		if sim.CylinderRotation() != jammedAt || sim.PickRotation() != 0.05 {
			t.Fatalf("lock moved during pause: cyl %v pick %v", sim.CylinderRotation(), sim.PickRotation())
		}
	}

	g.Update(0, 0, step)
	if g.Phase() != PhasePlaying {
		t.Fatalf("phase after recovery mismatch: got %v", g.Phase())
	}
	if sim.CylinderRotation() != 0 || sim.PickLife() != 1 || sim.PickState() != actuator.PickIdle {
		t.Errorf("recovered lock mismatch: cyl %v life %v pick %v",
			sim.CylinderRotation(), sim.PickLife(), sim.PickState())
	}
	if !sim.MovementEnabled() {
		t.Error("movement not re-enabled")
	}
	if snap := board.Snapshot(); snap.Breaks != 1 || snap.Phase != "playing" {
		t.Errorf("board mismatch: %+v", snap)
	}
}

func TestSlowWindBack(t *testing.T) {
	g, _, _ := newTestGame(t, 100, 0.5, false)
	g.cfg.RecoveryReturnSpeed = 1
	g.cfg.BreakPause = 0
	sim := g.Simulation()
	steerPick(t, g, 0.05)

	for i := 0; g.Phase() == PhasePlaying; i++ {
		if i > 40 {
			t.Fatal("pick never broke")
		}
		g.Update(1, 0, step)
	}

	// Zero pause fires on the next update; 0.5 at 1/s takes four updates
	prev := sim.CylinderRotation()
	for i := 0; i < 3; i++ {
		g.Update(0, 0, step)
		if r := sim.CylinderRotation(); r >= prev || g.Phase() != PhaseRecovering {
			t.Fatalf("update %d: rotation %v (prev %v) phase %v", i, r, prev, g.Phase())
		}
		prev = sim.CylinderRotation()
	}
	g.Update(0, 0, step)
	if g.Phase() != PhasePlaying || sim.CylinderRotation() != 0 {
		t.Errorf("wind back mismatch: phase %v rotation %v", g.Phase(), sim.CylinderRotation())
	}
}

func TestUnlockFinishesAndStartsNext(t *testing.T) {
	// Difficulty 0 with center 0.5; next lock draws 0.75 * 101 = 75
	g, board, results := newTestGame(t, 0, 0.75, true)
	sim := g.Simulation()
	steerPick(t, g, 0.5)

	for i := 0; g.Phase() == PhasePlaying; i++ {
		if i > 16 {
			t.Fatalf("lock never opened, cylinder %v state %v", sim.CylinderRotation(), sim.CylinderState())
		}
		g.Update(1, 0, step)
	}
	if g.Phase() != PhaseUnlocking || sim.CylinderState() != actuator.CylinderUnlocked {
		t.Fatalf("after unlock: phase %v cylinder %v", g.Phase(), sim.CylinderState())
	}
	openedAt := sim.Elapsed()

	// 750ms hold = 6 updates
	for i := 0; i < 5; i++ {
		g.Update(0, 0, step)
	}
	if g.Phase() != PhaseUnlocking || sim.CylinderState() != actuator.CylinderUnlocked {
		t.Fatalf("hold mismatch: phase %v cylinder %v", g.Phase(), sim.CylinderState())
	}
	g.Update(0, 0, step)
	if g.Phase() != PhaseFinished {
		t.Fatalf("phase after hold mismatch: got %v", g.Phase())
	}

	if len(*results) != 1 {
		t.Fatalf("results mismatch: got %d", len(*results))
	}
	res := (*results)[0]
	if !res.Unlocked || res.Difficulty != 0 || res.Breaks != 0 || res.Duration != openedAt {
		t.Errorf("result mismatch: %+v (opened at %v)", res, openedAt)
	}
	if res.SolutionCenter != 0.5 || res.StartedAt.IsZero() {
		t.Errorf("result profile mismatch: %+v", res)
	}
	if g.Locks() != 1 || board.Snapshot().Locks != 1 {
		t.Errorf("locks mismatch: game %d board %d", g.Locks(), board.Snapshot().Locks)
	}

	// 250ms gap = 2 updates
	g.Update(0, 0, step)
	g.Update(0, 0, step)
	if g.Phase() != PhasePlaying || sim.Difficulty() != 75 {
		t.Errorf("next lock mismatch: phase %v difficulty %d", g.Phase(), sim.Difficulty())
	}
	if sim.CylinderRotation() != 0 || !sim.MovementEnabled() || g.Breaks() != 0 {
		t.Errorf("next lock not fresh: cyl %v movement %v breaks %d",
			sim.CylinderRotation(), sim.MovementEnabled(), g.Breaks())
	}
}

func TestNewLockDuringHoldRecordsOpen(t *testing.T) {
	g, board, results := newTestGame(t, 0, 0.75, true)
	sim := g.Simulation()
	steerPick(t, g, 0.5)

	for i := 0; g.Phase() == PhasePlaying; i++ {
		if i > 16 {
			t.Fatalf("lock never opened, cylinder %v", sim.CylinderRotation())
		}
		g.Update(1, 0, step)
	}
	if g.Phase() != PhaseUnlocking {
		t.Fatalf("phase mismatch: got %v, want %v", g.Phase(), PhaseUnlocking)
	}
	openedAt := sim.Elapsed()

	g.Update(0, 0, step)
	g.NewLock()
	if len(*results) != 1 {
		t.Fatalf("results mismatch: got %d, want 1", len(*results))
	}
	res := (*results)[0]
	if !res.Unlocked || res.Difficulty != 0 || res.Duration != openedAt {
		t.Errorf("result mismatch: %+v (opened at %v)", res, openedAt)
	}
	if g.Locks() != 1 || board.Snapshot().Locks != 1 {
		t.Errorf("locks mismatch: game %d board %d", g.Locks(), board.Snapshot().Locks)
	}
	if g.Phase() != PhasePlaying || sim.Difficulty() != 75 {
		t.Errorf("next lock mismatch: phase %v difficulty %d", g.Phase(), sim.Difficulty())
	}

	// The cancelled hold timer must not fire a second result
	for i := 0; i < 20; i++ {
		g.Update(0, 0, step)
	}
	if len(*results) != 1 || g.Locks() != 1 {
		t.Errorf("duplicate finish: results %d locks %d", len(*results), g.Locks())
	}
}

func TestFixedDifficultyRepeats(t *testing.T) {
	g, _, _ := newTestGame(t, 40, 0.25, false)
	g.NewLock()
	if d := g.Simulation().Difficulty(); d != 40 {
		t.Errorf("difficulty mismatch: got %d, want 40", d)
	}
}

func TestNewLockAbandons(t *testing.T) {
	g, _, results := newTestGame(t, 20, 0.5, true)
	g.Update(0, 1, step)
	g.Update(0, 1, step)

	g.NewLock()
	if len(*results) != 1 {
		t.Fatalf("results mismatch: got %d", len(*results))
	}
	res := (*results)[0]
	if res.Unlocked || res.Difficulty != 20 || res.Duration != 2*step {
		t.Errorf("abandon result mismatch: %+v", res)
	}
	if g.Locks() != 0 {
		t.Errorf("abandoned lock counted as opened")
	}
	if g.Phase() != PhasePlaying || g.Simulation().Difficulty() != 50 {
		t.Errorf("new lock mismatch: phase %v difficulty %d", g.Phase(), g.Simulation().Difficulty())
	}
}

func TestPauseFreezesTime(t *testing.T) {
	g, board, _ := newTestGame(t, 50, 0.5, false)
	sim := g.Simulation()
	g.Update(1, 1, step)
	ticks := sim.TickCount()
	cyl := sim.CylinderRotation()

	g.TogglePause()
	if !g.Paused() || !board.Snapshot().Paused {
		t.Fatal("pause not published")
	}
	for i := 0; i < 10; i++ {
		g.Update(1, 1, step)
	}
	if sim.TickCount() != ticks || sim.CylinderRotation() != cyl {
		t.Errorf("paused game advanced: ticks %d->%d cyl %v->%v", ticks, sim.TickCount(), cyl, sim.CylinderRotation())
	}

	g.SetPaused(false)
	g.Update(0, 0, step)
	if sim.TickCount() != ticks+1 {
		t.Errorf("resume mismatch: got %d ticks", sim.TickCount())
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseRecovering.String() != "recovering" {
		t.Errorf("name mismatch: got %q", PhaseRecovering.String())
	}
	if Phase(9).String() != "Phase(9)" {
		t.Errorf("unknown name mismatch: got %q", Phase(9).String())
	}
}
