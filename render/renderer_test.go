package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-lockpick/actuator"
	"github.com/lixenwraith/vi-lockpick/parameter"
	"github.com/lixenwraith/vi-lockpick/status"
)

func newTestRenderer(t *testing.T, w, h int) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return NewRenderer(screen, 7), screen
}

func rowText(screen tcell.Screen, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func countRune(screen tcell.Screen, y, x0, w int, r rune) int {
	n := 0
	for x := x0; x < x0+w; x++ {
		if ch, _, _, _ := screen.GetContent(x, y); ch == r {
			n++
		}
	}
	return n
}

func findRune(screen tcell.Screen, y, x0, w int, r rune) int {
	for x := x0; x < x0+w; x++ {
		if ch, _, _, _ := screen.GetContent(x, y); ch == r {
			return x - x0
		}
	}
	return -1
}

func baseSnapshot() status.Snapshot {
	return status.Snapshot{
		CylinderRotation: 0.5,
		MaxTension:       1,
		PickRotation:     0,
		PickLife:         0.25,
		CylinderState:    actuator.CylinderMoving,
		PickState:        actuator.PickIdle,
		Difficulty:       63,
		Breaks:           2,
		Locks:            1,
		Elapsed:          3 * time.Second,
		Phase:            "playing",
	}
}

func TestDrawPanel(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)
	r.Draw(baseSnapshot(), 0, false)

	top := parameter.TopMargin + 1
	w := r.BarWidth()
	x0 := parameter.LeftMargin + parameter.LabelWidth

	if !strings.Contains(rowText(screen, 0, 80), "LOCKPICK") {
		t.Errorf("title missing: %q", rowText(screen, 0, 80))
	}
	if !strings.Contains(rowText(screen, 0, 80), strings.TrimSpace(parameter.AudioStr)) {
		t.Error("audio indicator missing while unmuted")
	}

	info := rowText(screen, top+rowInfo, 80)
	if !strings.Contains(info, "Difficulty  63") || !strings.Contains(info, "Broken picks 2") {
		t.Errorf("info row mismatch: %q", info)
	}

	if n := countRune(screen, top+rowCylinder, x0, w, parameter.BarFull); n != BarCells(0.5, w) {
		t.Errorf("tension cells mismatch: got %d, want %d", n, BarCells(0.5, w))
	}
	if n := countRune(screen, top+rowLife, x0, w, parameter.BarFull); n != BarCells(0.25, w) {
		t.Errorf("life cells mismatch: got %d, want %d", n, BarCells(0.25, w))
	}
	if col := findRune(screen, top+rowPick, x0, w, parameter.PickNeedle); col != NeedleColumn(0.5, w) {
		t.Errorf("needle column mismatch: got %d, want %d", col, NeedleColumn(0.5, w))
	}
	if !strings.Contains(rowText(screen, 23, 80), "q quit") {
		t.Errorf("help row mismatch: %q", rowText(screen, 23, 80))
	}
}

func TestDrawMutedHidesIndicator(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)
	r.Draw(baseSnapshot(), 0, true)
	if strings.Contains(rowText(screen, 0, 80), strings.TrimSpace(parameter.AudioStr)) {
		t.Error("audio indicator shown while muted")
	}
}

func TestDrawStuckMarksCeiling(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)
	snap := baseSnapshot()
	snap.CylinderState = actuator.CylinderStuck
	snap.CylinderRotation = 0.3
	r.Draw(snap, 0, false)

	top := parameter.TopMargin + 1
	x0 := parameter.LeftMargin + parameter.LabelWidth
	w := r.BarWidth()
	if col := findRune(screen, top+rowCylinder, x0, w, parameter.BarCeiling); col != BarCells(0.3, w) {
		t.Errorf("ceiling column mismatch: got %d, want %d", col, BarCells(0.3, w))
	}
	if !strings.Contains(rowText(screen, top+rowMessage, 80), "jammed") {
		t.Errorf("message mismatch: %q", rowText(screen, top+rowMessage, 80))
	}
}

func TestBreakingNeedleShakesWithinAmplitude(t *testing.T) {
	r, screen := newTestRenderer(t, 80, 24)
	snap := baseSnapshot()
	snap.PickState = actuator.PickBreaking

	top := parameter.TopMargin + 1
	x0 := parameter.LeftMargin + parameter.LabelWidth
	w := r.BarWidth()
	rest := NeedleColumn(0.5, w)
	ampF := parameter.ShakeAmplitude + 0.5
	amp := int(ampF)

	seen := map[int]bool{}
	for i := 0; i < 60; i++ {
		r.Draw(snap, time.Duration(i)*37*time.Millisecond, false)
		col := findRune(screen, top+rowPick, x0, w, parameter.PickNeedle)
		if col < rest-amp || col > rest+amp {
			t.Fatalf("frame %d: needle at %d, rest %d amplitude %d", i, col, rest, amp)
		}
		seen[col] = true
	}
	if len(seen) < 2 {
		t.Errorf("needle never moved while breaking: %v", seen)
	}
}

func TestDrawPhaseMessages(t *testing.T) {
	tests := []struct {
		phase  string
		paused bool
		want   string
	}{
		{"recovering", false, "snapped"},
		{"unlocking", false, "Unlocked!"},
		{"finished", false, "Unlocked!"},
		{"playing", true, "PAUSED"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			r, screen := newTestRenderer(t, 80, 24)
			snap := baseSnapshot()
			snap.Phase = tt.phase
			snap.Paused = tt.paused
			r.Draw(snap, 0, false)

			row := rowText(screen, parameter.TopMargin+1+rowMessage, 80)
			if !strings.Contains(row, tt.want) {
				t.Errorf("message mismatch: got %q, want %q", row, tt.want)
			}
		})
	}
}

func TestDrawTooSmall(t *testing.T) {
	r, screen := newTestRenderer(t, 12, 4)
	r.Draw(baseSnapshot(), 0, false)
	if !strings.HasPrefix(rowText(screen, 0, 12), "terminal to") {
		t.Errorf("small terminal message mismatch: %q", rowText(screen, 0, 12))
	}
}

func TestBarHelpers(t *testing.T) {
	if BarCells(-1, 10) != 0 || BarCells(2, 10) != 10 || BarCells(0.55, 10) != 6 {
		t.Errorf("BarCells mismatch: %d %d %d", BarCells(-1, 10), BarCells(2, 10), BarCells(0.55, 10))
	}
	if NeedleColumn(0, 21) != 0 || NeedleColumn(1, 21) != 20 || NeedleColumn(0.5, 21) != 10 {
		t.Error("NeedleColumn endpoints mismatch")
	}
	if NeedleColumn(0.7, 1) != 0 {
		t.Error("NeedleColumn single cell mismatch")
	}
}

func TestLifeColorEnds(t *testing.T) {
	if LifeColor(1) != RgbLifeFull || LifeColor(0) != RgbLifeEmpty {
		t.Error("LifeColor endpoints mismatch")
	}
}
