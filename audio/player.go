package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-lockpick/parameter"
)

// Sink accepts cue streamers for playback
type Sink interface {
	Play(kind SoundType, s beep.Streamer)
}

// Player mixes cues onto the system speaker
// Before Initialize succeeds, and while muted, Play drops cues
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool

	muted  atomic.Bool
	played [soundTypeCount]atomic.Int64
}

// NewPlayer creates a player at the given sample rate
func NewPlayer(rate beep.SampleRate) *Player {
	return &Player{
		rate:  rate,
		mixer: &beep.Mixer{},
	}
}

// SampleRate returns the playback rate cues should be generated at
func (p *Player) SampleRate() beep.SampleRate { return p.rate }

// Initialize opens the speaker; on error the player stays silent and usable
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play adds s to the mix
func (p *Player) Play(kind SoundType, s beep.Streamer) {
	if s == nil || p.muted.Load() {
		return
	}
	p.mu.Lock()
	ready := p.initialized
	p.mu.Unlock()
	if !ready {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()

	if kind >= 0 && kind < soundTypeCount {
		p.played[kind].Add(1)
	}
}

// Played returns how many cues of kind reached the mixer
func (p *Player) Played(kind SoundType) int64 {
	if kind < 0 || kind >= soundTypeCount {
		return 0
	}
	return p.played[kind].Load()
}

// SetMuted drops future cues and silences the current mix
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
	if !muted {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
}

func (p *Player) Muted() bool { return p.muted.Load() }

// ToggleMute flips the mute state and returns the new value
func (p *Player) ToggleMute() bool {
	m := !p.muted.Load()
	p.SetMuted(m)
	return m
}

// Close stops playback and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
