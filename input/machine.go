package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Machine classifies terminal events and feeds held axes
type Machine struct {
	keys *KeyTable
	axes *Axes
}

// NewMachine creates a machine; a nil table uses DefaultKeyTable
func NewMachine(keys *KeyTable, axes *Axes) *Machine {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	if axes == nil {
		axes = NewAxes(0)
	}
	return &Machine{keys: keys, axes: axes}
}

// Axes returns the held axes fed by this machine
func (m *Machine) Axes() *Axes { return m.axes }

// Process handles one terminal event at now
func (m *Machine) Process(ev tcell.Event, now time.Time) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		entry, ok := m.keys.Lookup(ev)
		if !ok {
			return Intent{}
		}
		if entry.Intent == IntentAxis {
			m.axes.Press(entry.Axis, entry.Dir, now)
		}
		return Intent{Type: entry.Intent, Axis: entry.Axis, Dir: entry.Dir}
	}
	return Intent{}
}
