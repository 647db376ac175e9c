package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-lockpick/actuator"
	"github.com/lixenwraith/vi-lockpick/engine"
	"github.com/lixenwraith/vi-lockpick/events"
	"github.com/lixenwraith/vi-lockpick/parameter"
	"github.com/lixenwraith/vi-lockpick/vmath"
)

// Cues maps simulation events to sounds
// Runs on the simulation goroutine; only the streamers it hands to the sink cross goroutines
type Cues struct {
	sink    Sink
	rate    beep.SampleRate
	buckets int

	lastClick time.Duration
	clicked   bool

	grind *gate
}

// NewCues creates a handler; buckets < 1 uses the default pick bucket count
func NewCues(sink Sink, rate beep.SampleRate, buckets int) *Cues {
	if buckets < 1 {
		buckets = parameter.PickMoveBuckets
	}
	return &Cues{sink: sink, rate: rate, buckets: buckets}
}

func (c *Cues) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventPickMoved,
		events.EventPickStateChanged,
		events.EventPickBroken,
		events.EventCylinderUnlocked,
		events.EventLockStarted,
	}
}

func (c *Cues) HandleEvent(_ *engine.Simulation, ev events.GameEvent) {
	switch ev.Type {
	case events.EventPickMoved:
		if p, ok := ev.Payload.(*events.PickMovedPayload); ok {
			c.onPickMoved(p, ev.Elapsed)
		}

	case events.EventPickStateChanged:
		p, ok := ev.Payload.(*events.PickStateChangedPayload)
		if !ok {
			return
		}
		if p.Current == actuator.PickBreaking {
			c.startGrind()
		} else if p.Old == actuator.PickBreaking {
			c.stopGrind()
		}

	case events.EventPickBroken:
		c.stopGrind()
		c.sink.Play(SoundSnap, CreateSnapSound(c.rate))

	case events.EventCylinderUnlocked:
		c.sink.Play(SoundChime, CreateChimeSound(c.rate))

	case events.EventLockStarted:
		c.stopGrind()
		c.clicked = false
	}
}

// onPickMoved clicks when the pick enters a new bucket, at most once per MinClickGap
func (c *Cues) onPickMoved(p *events.PickMovedPayload, at time.Duration) {
	from := vmath.Bucket(p.OldRotation, parameter.PickRotationMin, parameter.PickRotationMax, c.buckets)
	to := vmath.Bucket(p.Rotation, parameter.PickRotationMin, parameter.PickRotationMax, c.buckets)
	if from == to {
		return
	}
	if c.clicked && at-c.lastClick < parameter.MinClickGap {
		return
	}
	c.clicked = true
	c.lastClick = at

	pitch := vmath.InverseLerp(parameter.PickRotationMin, parameter.PickRotationMax, p.Rotation)
	c.sink.Play(SoundClick, CreateClickSound(c.rate, pitch))
}

func (c *Cues) startGrind() {
	if c.grind != nil {
		return
	}
	c.grind = &gate{streamer: beep.Iterate(func() beep.Streamer {
		return CreateGrindSound(c.rate)
	})}
	c.sink.Play(SoundGrind, c.grind)
}

func (c *Cues) stopGrind() {
	if c.grind == nil {
		return
	}
	c.grind.close()
	c.grind = nil
}

// Grinding reports whether the strain loop is playing
func (c *Cues) Grinding() bool { return c.grind != nil }

// gate ends a streamer on request; the mixer drops it on the next buffer
type gate struct {
	streamer beep.Streamer
	closed   atomic.Bool
}

func (g *gate) Stream(samples [][2]float64) (int, bool) {
	if g.closed.Load() {
		return 0, false
	}
	return g.streamer.Stream(samples)
}

func (g *gate) Err() error { return g.streamer.Err() }

func (g *gate) close() { g.closed.Store(true) }
