package input

import (
	"time"

	"github.com/lixenwraith/vi-lockpick/parameter"
)

// Axes turns discrete key repeats into held analog values
// A terminal reports no key release: an axis stays at its last direction until its hold
// expires. The first press of a direction waits out the longer initial repeat delay
// Not safe for concurrent use
type Axes struct {
	hold      time.Duration
	holdFirst time.Duration

	dir    [axisCount]float64
	until  [axisCount]time.Time
	repeat [axisCount]bool
}

// NewAxes creates axes with the given repeat hold; hold <= 0 uses the default
func NewAxes(hold time.Duration) *Axes {
	if hold <= 0 {
		hold = parameter.AxisHold
	}
	first := parameter.AxisHoldFirst
	if first < hold {
		first = hold
	}
	return &Axes{hold: hold, holdFirst: first}
}

// Press engages axis in dir at now
func (a *Axes) Press(axis AxisID, dir float64, now time.Time) {
	if axis >= axisCount {
		return
	}
	held := a.dir[axis] == dir && now.Before(a.until[axis])
	if held {
		a.repeat[axis] = true
		a.until[axis] = now.Add(a.hold)
		return
	}
	a.dir[axis] = dir
	a.repeat[axis] = false
	a.until[axis] = now.Add(a.holdFirst)
}

// Value returns the axis value at now, releasing it once the hold has lapsed
func (a *Axes) Value(axis AxisID, now time.Time) float64 {
	if axis >= axisCount {
		return 0
	}
	if a.dir[axis] != 0 && !now.Before(a.until[axis]) {
		a.dir[axis] = 0
		a.repeat[axis] = false
	}
	return a.dir[axis]
}

// Values returns (cylinder, pick) at now
func (a *Axes) Values(now time.Time) (float64, float64) {
	return a.Value(AxisCylinder, now), a.Value(AxisPick, now)
}

// Release drops every axis to zero
func (a *Axes) Release() {
	for i := range a.dir {
		a.dir[i] = 0
		a.repeat[i] = false
		a.until[i] = time.Time{}
	}
}
