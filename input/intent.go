// Package input maps terminal key events to lock axes and session intents
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C
	IntentTogglePause // p
	IntentToggleMute  // m
	IntentNewLock     // r
	IntentResize      // Terminal resize event

	// Lock control
	IntentAxis // Held axis input; Axes already updated
)

// AxisID identifies one of the two analog inputs
type AxisID uint8

const (
	AxisCylinder AxisID = iota // Tension wrench
	AxisPick                   // Pick rotation
	axisCount
)

// Intent is the result of one key event
type Intent struct {
	Type IntentType
	Axis AxisID
	Dir  float64 // -1 or +1 for IntentAxis
}
