package difficulty

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-lockpick/parameter"
	"github.com/lixenwraith/vi-lockpick/vmath"
)

// ZeroBiasPolicy selects which end of the difficulty scale pulls the solution toward center
type ZeroBiasPolicy int

const (
	// PolicyHardBiased ramps zero bias from none at difficulty 0 to MaxZeroBias at 100
	// Hard locks get their solution pulled toward center, near the pick's resting position
	PolicyHardBiased ZeroBiasPolicy = iota

	// PolicyEasyBiased ramps zero bias from MaxZeroBias at difficulty 0 to none at 100
	PolicyEasyBiased
)

var policyNames = map[ZeroBiasPolicy]string{
	PolicyHardBiased: "hard-biased",
	PolicyEasyBiased: "easy-biased",
}

func (p ZeroBiasPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("ZeroBiasPolicy(%d)", int(p))
}

// ParsePolicy resolves a policy name, case-insensitive
func ParsePolicy(name string) (ZeroBiasPolicy, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range policyNames {
		if n == name {
			return p, true
		}
	}
	return 0, false
}

// Span is an order-insensitive pair of curve endpoints
type Span struct {
	A float64
	B float64
}

func (s Span) Min() float64 {
	if s.A < s.B {
		return s.A
	}
	return s.B
}

func (s Span) Max() float64 {
	if s.A > s.B {
		return s.A
	}
	return s.B
}

func (s Span) Length() float64 {
	return s.Max() - s.Min()
}

func (s Span) String() string {
	return fmt.Sprintf("[%g, %g]", s.Min(), s.Max())
}

// Curve holds the designer-tunable endpoints mapping difficulty to a Profile
type Curve struct {
	// MaxZeroBias is the strongest blend toward the heavy-biased center, in [0, 1]
	MaxZeroBias float64

	// Range is the solution half-width; Max applies at difficulty 0, Min at 100
	Range Span

	// Falloff is the ramp half-width beyond Range; Max at difficulty 0, Min at 100
	Falloff Span

	// Degradation is pick life lost per second while breaking; Min at 0, Max at 100
	Degradation Span

	Policy ZeroBiasPolicy
}

// DefaultCurve returns the stock tuning
func DefaultCurve() Curve {
	return Curve{
		MaxZeroBias: parameter.SolutionMaxZeroBias,
		Range:       Span{A: parameter.SolutionRangeLo, B: parameter.SolutionRangeHi},
		Falloff:     Span{A: parameter.SolutionFalloffLo, B: parameter.SolutionFalloffHi},
		Degradation: Span{A: parameter.PickDegradationLo, B: parameter.PickDegradationHi},
		Policy:      PolicyHardBiased,
	}
}

// zeroBias returns the bias blend for normalized difficulty d
func (c Curve) zeroBias(d float64) float64 {
	maxBias := vmath.Clamp01(c.MaxZeroBias)
	if c.Policy == PolicyEasyBiased {
		return vmath.Lerp(maxBias, 0, d)
	}
	return vmath.Lerp(0, maxBias, d)
}
