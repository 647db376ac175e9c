package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-lockpick/parameter"
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = math.Max(0, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a log2 gain; gain at or below -10 is silent
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: gain, Silent: gain <= -10}
}

// === Cues ===

// CreateClickSound generates a short tick for a pick bucket crossing
// pitch in [0, 1] raises the tone with pick position so sweeps are audible
func CreateClickSound(rate beep.SampleRate, pitch float64) beep.Streamer {
	freq := parameter.ClickSoundFreq * (0.75 + 0.5*pitch)
	osc := NewOscillator(freq, parameter.ClickSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.ClickSoundDuration, parameter.ClickSoundAttack, parameter.ClickSoundRelease, rate)
	return newVolume(shaped, parameter.ClickVolume)
}

// CreateGrindSound generates one period of the strain loop: low saw under filtered noise
func CreateGrindSound(rate beep.SampleRate) beep.Streamer {
	body := NewOscillator(parameter.GrindSoundFreq, parameter.GrindSoundDuration, WaveSaw, rate)
	grit := NewOscillator(0, parameter.GrindSoundDuration, WaveNoise, rate)

	mixed := beep.Mix(
		newVolume(body, -1),
		newVolume(grit, -3),
	)
	shaped := NewEnvelope(mixed, parameter.GrindSoundDuration, parameter.GrindSoundAttack, parameter.GrindSoundRelease, rate)
	return newVolume(shaped, parameter.GrindVolume)
}

// CreateSnapSound generates a sharp crack for a broken pick
func CreateSnapSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.SnapSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.SnapSoundDuration, parameter.SnapSoundAttack, parameter.SnapSoundRelease, rate)
	return newVolume(shaped, parameter.SnapVolume)
}

// CreateChimeSound generates a bell for an opened lock
func CreateChimeSound(rate beep.SampleRate) beep.Streamer {
	fund, err := generators.SineTone(rate, parameter.ChimeSoundFreq)
	if err != nil {
		fund = NewOscillator(parameter.ChimeSoundFreq, parameter.ChimeSoundDuration, WaveSine, rate)
	}
	fund = beep.Take(rate.N(parameter.ChimeSoundDuration), fund)
	fundShaped := NewEnvelope(fund, parameter.ChimeSoundDuration, parameter.ChimeSoundAttack, parameter.ChimeSoundRelease, rate)

	// Octave up, shorter tail
	over := NewOscillator(2*parameter.ChimeSoundFreq, parameter.ChimeSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.ChimeSoundDuration, parameter.ChimeSoundAttack, parameter.ChimeSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, -0.5),
		newVolume(overShaped, -1.7),
	)
	return newVolume(mixed, parameter.ChimeVolume)
}

// GetSoundEffect returns a one-shot streamer for the cue
func GetSoundEffect(s SoundType, rate beep.SampleRate) beep.Streamer {
	switch s {
	case SoundClick:
		return CreateClickSound(rate, 0.5)
	case SoundGrind:
		return CreateGrindSound(rate)
	case SoundSnap:
		return CreateSnapSound(rate)
	case SoundChime:
		return CreateChimeSound(rate)
	default:
		return nil
	}
}
