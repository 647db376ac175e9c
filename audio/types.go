// Package audio turns lock notifications into short synthesized cues played through beep
package audio

// SoundType identifies a cue
type SoundType int

const (
	SoundClick SoundType = iota // Pick crosses a bucket boundary
	SoundGrind                  // Pick straining against a jammed cylinder, looped
	SoundSnap                   // Pick breaks
	SoundChime                  // Lock opens
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"click", "grind", "snap", "chime"}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)
