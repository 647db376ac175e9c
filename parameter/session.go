package parameter

import "time"

// Pick Recovery
const (
	// BreakPause is the delay after a pick breaks before the cylinder is wound back
	BreakPause = 500 * time.Millisecond

	// RecoveryReturnSpeed winds the cylinder back to rest while a new pick is fetched
	RecoveryReturnSpeed = 5.0
)

// Lock Lifecycle
const (
	// UnlockPause holds the opened lock on screen before the attempt is closed
	UnlockPause = 750 * time.Millisecond

	// NextLockPause is the gap between a finished attempt and the next lock
	NextLockPause = 250 * time.Millisecond
)
