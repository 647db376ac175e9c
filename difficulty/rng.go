package difficulty

import (
	"math/rand"

	"github.com/lixenwraith/vi-lockpick/vmath"
)

// RandomSource yields uniform values in [0, 1)
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource draws from the runtime-seeded global generator, safe for concurrent use
func DefaultSource() RandomSource { return globalSource{} }

// NewSeededSource returns a replayable source, not safe for concurrent use
func NewSeededSource(seed uint64) RandomSource {
	return vmath.NewFastRand(seed)
}
