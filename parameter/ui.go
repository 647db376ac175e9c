package parameter

import "time"

// Layout & Margins
const (
	// TopMargin above the lock panel (1 line for title)
	TopMargin = 1

	// LeftMargin (1 left padding + label column)
	LeftMargin = 2

	// LabelWidth is the fixed column for bar labels
	LabelWidth = 10

	// BarMinWidth is the narrowest usable gauge
	BarMinWidth = 10

	// BarMaxWidth keeps gauges readable on wide terminals
	BarMaxWidth = 60
)

// Input
const (
	// AxisHold keeps an axis engaged after the last key repeat
	// Terminals report no key release; repeat rate is typically 30-50ms after the first delay
	AxisHold = 180 * time.Millisecond

	// AxisHoldFirst covers the longer initial key-repeat delay
	AxisHoldFirst = 550 * time.Millisecond
)

// Pick Shake
const (
	// ShakeAmplitude is the needle offset in cells while breaking
	ShakeAmplitude = 1.0

	// ShakeFrequency is noise samples per second
	ShakeFrequency = 18.0
)

// UI Symbols
const (
	BarFull    = '█'
	BarEmpty   = '░'
	BarCeiling = '│'
	PickNeedle = '▲'
	PickTrack  = '─'
	AudioStr   = "♫ "
)
