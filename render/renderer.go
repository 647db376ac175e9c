// Package render draws the lock panel onto a tcell screen from a status snapshot
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/lixenwraith/vi-lockpick/actuator"
	"github.com/lixenwraith/vi-lockpick/parameter"
	"github.com/lixenwraith/vi-lockpick/status"
	"github.com/lixenwraith/vi-lockpick/vmath"
)

// Panel rows, relative to TopMargin
const (
	rowInfo = iota
	rowBlank
	rowCylinder
	rowPick
	rowLife
	rowBlank2
	rowMessage
	panelRows
)

const helpText = "a/d pick  w/space tension  s ease  r new lock  p pause  m mute  q quit"

// Renderer owns drawing; only the render goroutine calls it
type Renderer struct {
	screen tcell.Screen
	noise  opensimplex.Noise

	defaultStyle tcell.Style
	width        int
	height       int
}

// NewRenderer creates a renderer; seed varies the needle shake pattern
func NewRenderer(screen tcell.Screen, seed int64) *Renderer {
	r := &Renderer{
		screen:       screen,
		noise:        opensimplex.New(seed),
		defaultStyle: tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText),
	}
	r.Resize()
	return r
}

// Resize refreshes the cached screen size
func (r *Renderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// BarWidth returns the gauge width for the current screen
func (r *Renderer) BarWidth() int {
	w := r.width - parameter.LeftMargin - parameter.LabelWidth - 2
	return vmath.ClampInt(w, parameter.BarMinWidth, parameter.BarMaxWidth)
}

// Draw renders one frame; at is the animation clock
func (r *Renderer) Draw(snap status.Snapshot, at time.Duration, muted bool) {
	r.screen.SetStyle(r.defaultStyle)
	r.screen.Clear()

	if r.width < parameter.LeftMargin+parameter.LabelWidth+parameter.BarMinWidth+2 ||
		r.height < parameter.TopMargin+panelRows+1 {
		r.drawText(0, 0, "terminal too small", r.defaultStyle.Foreground(RgbCylinderStuck))
		r.screen.Show()
		return
	}

	r.drawHeader(muted)
	top := parameter.TopMargin + 1
	r.drawInfo(top+rowInfo, snap)
	r.drawCylinder(top+rowCylinder, snap)
	r.drawPick(top+rowPick, snap, at)
	r.drawLife(top+rowLife, snap)
	r.drawMessage(top+rowMessage, snap)
	r.drawText(parameter.LeftMargin, r.height-1, helpText, r.defaultStyle.Foreground(RgbDim))

	r.screen.Show()
}

func (r *Renderer) drawHeader(muted bool) {
	r.drawText(parameter.LeftMargin, 0, "LOCKPICK", r.defaultStyle.Foreground(RgbTitle).Bold(true))
	if !muted {
		x := r.width - len([]rune(parameter.AudioStr)) - 1
		r.drawText(x, 0, parameter.AudioStr, r.defaultStyle.Foreground(RgbTitle))
	}
}

func (r *Renderer) drawInfo(y int, snap status.Snapshot) {
	info := fmt.Sprintf("Difficulty %3d   Broken picks %d   Opened %d   %5.1fs",
		snap.Difficulty, snap.Breaks, snap.Locks, snap.Elapsed.Seconds())
	r.drawText(parameter.LeftMargin, y, info, r.defaultStyle)
}

func (r *Renderer) drawCylinder(y int, snap status.Snapshot) {
	r.drawLabel(y, "Tension")

	color := RgbCylinder
	switch snap.CylinderState {
	case actuator.CylinderStuck:
		color = RgbCylinderStuck
	case actuator.CylinderUnlocked:
		color = RgbCylinderOpen
	}

	w := r.BarWidth()
	filled := r.drawBar(y, snap.CylinderRotation, color)
	if snap.CylinderState == actuator.CylinderStuck && filled < w {
		r.screen.SetContent(r.barX()+filled, y, parameter.BarCeiling, nil, r.defaultStyle.Foreground(color))
	}
}

func (r *Renderer) drawPick(y int, snap status.Snapshot, at time.Duration) {
	r.drawLabel(y, "Pick")

	w := r.BarWidth()
	x0 := r.barX()
	track := r.defaultStyle.Foreground(RgbDim)
	for i := 0; i < w; i++ {
		r.screen.SetContent(x0+i, y, parameter.PickTrack, nil, track)
	}

	norm := vmath.InverseLerp(parameter.PickRotationMin, parameter.PickRotationMax, snap.PickRotation)
	col := NeedleColumn(norm, w)

	color := RgbPick
	switch snap.PickState {
	case actuator.PickBreaking:
		color = RgbPickBreaking
		col = vmath.ClampInt(col+r.shake(at), 0, w-1)
	case actuator.PickBroken:
		color = RgbPickBroken
	}
	r.screen.SetContent(x0+col, y, parameter.PickNeedle, nil, r.defaultStyle.Foreground(color).Bold(true))
}

func (r *Renderer) drawLife(y int, snap status.Snapshot) {
	r.drawLabel(y, "Pick life")
	r.drawBar(y, snap.PickLife, LifeColor(snap.PickLife))
}

func (r *Renderer) drawMessage(y int, snap status.Snapshot) {
	var msg string
	color := RgbText
	switch {
	case snap.Paused:
		msg, color = "PAUSED", RgbTitle
	case snap.Phase == "recovering":
		msg, color = "The pick snapped. Fetching another...", RgbCylinderStuck
	case snap.Phase == "unlocking" || snap.Phase == "finished":
		msg, color = "Unlocked!", RgbCylinderOpen
	case snap.CylinderState == actuator.CylinderStuck:
		msg, color = "The lock is jammed", RgbPickBreaking
	default:
		msg = fmt.Sprintf("cylinder %s, pick %s", snap.CylinderState, snap.PickState)
		color = RgbDim
	}
	r.drawText(parameter.LeftMargin, y, msg, r.defaultStyle.Foreground(color))
}

// shake offsets the needle by smooth noise while the pick strains
func (r *Renderer) shake(at time.Duration) int {
	n := r.noise.Eval2(at.Seconds()*parameter.ShakeFrequency, 0)
	return int(math.Round(n * parameter.ShakeAmplitude))
}

// === Primitives ===

func (r *Renderer) barX() int {
	return parameter.LeftMargin + parameter.LabelWidth
}

func (r *Renderer) drawLabel(y int, label string) {
	r.drawText(parameter.LeftMargin, y, label, r.defaultStyle)
}

// drawBar fills a gauge for v in [0, 1] and returns the filled cell count
func (r *Renderer) drawBar(y int, v float64, color tcell.Color) int {
	w := r.BarWidth()
	filled := BarCells(v, w)
	full := r.defaultStyle.Foreground(color)
	empty := r.defaultStyle.Foreground(RgbDim)
	x0 := r.barX()
	for i := 0; i < w; i++ {
		if i < filled {
			r.screen.SetContent(x0+i, y, parameter.BarFull, nil, full)
		} else {
			r.screen.SetContent(x0+i, y, parameter.BarEmpty, nil, empty)
		}
	}
	return filled
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= r.width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

// BarCells returns how many of w cells a gauge at v in [0, 1] fills
func BarCells(v float64, w int) int {
	return vmath.ClampInt(int(math.Round(vmath.Clamp01(v)*float64(w))), 0, w)
}

// NeedleColumn maps a normalized pick position to a track column
func NeedleColumn(norm float64, w int) int {
	if w <= 1 {
		return 0
	}
	return vmath.ClampInt(int(math.Round(vmath.Clamp01(norm)*float64(w-1))), 0, w-1)
}
