// Package difficulty maps a 0-100 difficulty to the hidden solution window of a lock
package difficulty

import (
	"fmt"
	"math"

	"github.com/lixenwraith/vi-lockpick/parameter"
	"github.com/lixenwraith/vi-lockpick/vmath"
)

// Profile is the per-lock parameter set derived from a difficulty, immutable once computed
type Profile struct {
	Difficulty int // Clamped input

	SolutionCenter  float64 // Pick rotation of the window center, [-1, 1]
	SolutionRange   float64 // Exact-match half-width around SolutionCenter
	SolutionFalloff float64 // Half-width beyond SolutionRange over which travel ramps to 0
	PickDegradation float64 // Life lost per second while breaking
	ZeroBias        float64 // Blend weight toward the heavy-biased center, [0, 1]
}

// Normalized returns clamp(difficulty, 0, 100) / 100
func Normalized(difficulty int) float64 {
	return float64(vmath.ClampInt(difficulty, parameter.DifficultyMin, parameter.DifficultyMax)) /
		float64(parameter.DifficultyMax)
}

// Compute derives a Profile, drawing the raw solution center from rng
// A nil rng uses DefaultSource
func Compute(difficulty int, curve Curve, rng RandomSource) Profile {
	if rng == nil {
		rng = DefaultSource()
	}
	center0 := rng.Float64()*2 - 1
	return ComputeWithCenter(difficulty, curve, center0)
}

// ComputeWithCenter derives a Profile from an explicit raw center in [-1, 1]
// This is the deterministic half of Compute
func ComputeWithCenter(difficulty int, curve Curve, center0 float64) Profile {
	d := Normalized(difficulty)
	center0 = vmath.Clamp(center0, -1, 1)

	sign := vmath.Sign(center0)
	heavyBias := math.Pow(center0, parameter.SolutionZeroBiasExponent)
	zeroBias := curve.zeroBias(d)

	return Profile{
		Difficulty:      vmath.ClampInt(difficulty, parameter.DifficultyMin, parameter.DifficultyMax),
		SolutionCenter:  vmath.Lerp(math.Abs(center0), heavyBias, zeroBias) * sign,
		SolutionRange:   vmath.Lerp(curve.Range.Max(), curve.Range.Min(), d),
		SolutionFalloff: vmath.Lerp(curve.Falloff.Max(), curve.Falloff.Min(), d),
		PickDegradation: vmath.Lerp(curve.Degradation.Min(), curve.Degradation.Max(), d),
		ZeroBias:        zeroBias,
	}
}

// MaxTensionRotation is the furthest the cylinder can be driven with the pick at pickRotation
// 1 inside the solution window, linear ramp to 0 across the falloff band, 0 beyond it
func (p Profile) MaxTensionRotation(pickRotation float64) float64 {
	excess := math.Abs(pickRotation-p.SolutionCenter) - p.SolutionRange
	if p.SolutionFalloff <= 0 {
		if excess > 0 {
			return 0
		}
		return 1
	}
	return 1 - vmath.Clamp01(excess/p.SolutionFalloff)
}

func (p Profile) String() string {
	return fmt.Sprintf("difficulty=%d center=%.3f range=%.3f falloff=%.3f degradation=%.3f zeroBias=%.3f",
		p.Difficulty, p.SolutionCenter, p.SolutionRange, p.SolutionFalloff, p.PickDegradation, p.ZeroBias)
}
