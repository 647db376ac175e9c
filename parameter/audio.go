package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines cue latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Pick Movement
const (
	// PickMoveBuckets splits pick travel into coarse positions; crossing one clicks
	PickMoveBuckets = 12

	// MinClickGap is the shortest interval between two pick clicks
	MinClickGap = 30 * time.Millisecond
)

// Click Sound
const (
	ClickSoundDuration = 25 * time.Millisecond
	ClickSoundAttack   = 2 * time.Millisecond
	ClickSoundRelease  = 15 * time.Millisecond
	ClickSoundFreq     = 2400.0
)

// Grind Sound
const (
	GrindSoundDuration = 120 * time.Millisecond
	GrindSoundAttack   = 10 * time.Millisecond
	GrindSoundRelease  = 60 * time.Millisecond
	GrindSoundFreq     = 90.0
)

// Snap Sound
const (
	SnapSoundDuration = 90 * time.Millisecond
	SnapSoundAttack   = 1 * time.Millisecond
	SnapSoundRelease  = 70 * time.Millisecond
)

// Chime Sound
const (
	ChimeSoundDuration = 600 * time.Millisecond
	ChimeSoundAttack   = 5 * time.Millisecond
	ChimeSoundRelease  = 550 * time.Millisecond
	ChimeSoundFreq     = 880.0
)

// Cue Volumes (log2 scale, 0 = unity)
const (
	ClickVolume = -1.5
	GrindVolume = -2.0
	SnapVolume  = -0.5
	ChimeVolume = -1.0
)
