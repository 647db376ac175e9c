package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent IntentType
	Axis   AxisID
	Dir    float64
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings, matched case-insensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings
// Pick: a/d or Left/Right. Tension: w/Up/Space applies, s/Down eases off
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyLeft:   {Intent: IntentAxis, Axis: AxisPick, Dir: -1},
			tcell.KeyRight:  {Intent: IntentAxis, Axis: AxisPick, Dir: 1},
			tcell.KeyUp:     {Intent: IntentAxis, Axis: AxisCylinder, Dir: 1},
			tcell.KeyDown:   {Intent: IntentAxis, Axis: AxisCylinder, Dir: -1},
		},
		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			'p': {Intent: IntentTogglePause},
			'm': {Intent: IntentToggleMute},
			'r': {Intent: IntentNewLock},
			'a': {Intent: IntentAxis, Axis: AxisPick, Dir: -1},
			'd': {Intent: IntentAxis, Axis: AxisPick, Dir: 1},
			'w': {Intent: IntentAxis, Axis: AxisCylinder, Dir: 1},
			's': {Intent: IntentAxis, Axis: AxisCylinder, Dir: -1},
			' ': {Intent: IntentAxis, Axis: AxisCylinder, Dir: 1},
		},
	}
}

// Lookup resolves a key event to its entry
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		// Some terminals report Ctrl+letter as a modified rune
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if r == 'c' {
				return KeyEntry{Intent: IntentQuit}, true
			}
			return KeyEntry{}, false
		}
		e, ok := kt.Runes[r]
		return e, ok
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}
