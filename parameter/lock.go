package parameter

// Difficulty Scale
const (
	// DifficultyMin is the easiest lock
	DifficultyMin = 0

	// DifficultyMax is the hardest lock
	DifficultyMax = 100

	// DifficultyDefault is the difficulty used when none is configured
	DifficultyDefault = 50
)

// Solution Curve
// Span endpoints are order-insensitive; Lo is used at one difficulty extreme, Hi at the other
const (
	// SolutionMaxZeroBias is the strongest pull of the solution center toward 0
	SolutionMaxZeroBias = 0.5

	// SolutionZeroBiasExponent shapes the heavy bias term (center0^10)
	SolutionZeroBiasExponent = 10

	// SolutionRangeLo is the solution half-width at difficulty 100
	SolutionRangeLo = 0.01
	// SolutionRangeHi is the solution half-width at difficulty 0
	SolutionRangeHi = 0.1

	// SolutionFalloffLo is the falloff half-width at difficulty 100
	SolutionFalloffLo = 0.1
	// SolutionFalloffHi is the falloff half-width at difficulty 0
	SolutionFalloffHi = 0.25

	// PickDegradationLo is life lost per second while breaking at difficulty 0
	PickDegradationLo = 0.1
	// PickDegradationHi is life lost per second while breaking at difficulty 100
	PickDegradationHi = 1.0
)

// Actuator Speeds (full travel per second)
const (
	// CylinderTensionSpeed rotates the cylinder from 0 to 1 in one second under full tension
	CylinderTensionSpeed = 1.0

	// CylinderReturnSpeed springs the cylinder back to rest when no tension is applied
	CylinderReturnSpeed = 1.0

	// PickRotationSpeed moves the pick half its travel (one unit) per second
	PickRotationSpeed = 1.0
)

// Actuator Bounds
const (
	CylinderRotationMin = 0.0
	CylinderRotationMax = 1.0
	PickRotationMin     = -1.0
	PickRotationMax     = 1.0
	PickLifeMax         = 1.0
)
