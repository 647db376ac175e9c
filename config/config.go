// Package config loads lock tuning from YAML, overlaid on the stock defaults
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-lockpick/difficulty"
	"github.com/lixenwraith/vi-lockpick/engine"
	"github.com/lixenwraith/vi-lockpick/parameter"
	"github.com/lixenwraith/vi-lockpick/session"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Duration is a time.Duration written as a Go duration string ("500ms", "1.5s")
type Duration time.Duration

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// Span is a YAML pair [a, b]
type Span [2]float64

func (s Span) toSpan() difficulty.Span { return difficulty.Span{A: s[0], B: s[1]} }

// Curve mirrors difficulty.Curve with a named policy
type Curve struct {
	MaxZeroBias float64 `yaml:"max_zero_bias"`
	Range       Span    `yaml:"range"`
	Falloff     Span    `yaml:"falloff"`
	Degradation Span    `yaml:"degradation"`
	Policy      string  `yaml:"policy"`
}

type Cylinder struct {
	TensionSpeed float64 `yaml:"tension_speed"`
	ReturnSpeed  float64 `yaml:"return_speed"`
}

type Pick struct {
	RotationSpeed float64 `yaml:"rotation_speed"`
}

type Session struct {
	BreakPause          Duration `yaml:"break_pause"`
	RecoveryReturnSpeed float64  `yaml:"recovery_return_speed"`
	UnlockPause         Duration `yaml:"unlock_pause"`
	NextLockPause       Duration `yaml:"next_lock_pause"`
	RandomDifficulty    bool     `yaml:"random_difficulty"`
	StartDifficulty     int      `yaml:"start_difficulty"`
}

type Host struct {
	TickInterval Duration `yaml:"tick_interval"`
	MoveBuckets  int      `yaml:"move_buckets"`
	AxisHold     Duration `yaml:"axis_hold"`
}

// Config is the complete tunable surface of the game
type Config struct {
	Curve    Curve    `yaml:"curve"`
	Cylinder Cylinder `yaml:"cylinder"`
	Pick     Pick     `yaml:"pick"`
	Session  Session  `yaml:"session"`
	Host     Host     `yaml:"host"`
}

// Default returns the stock tuning
func Default() Config {
	c := difficulty.DefaultCurve()
	return Config{
		Curve: Curve{
			MaxZeroBias: c.MaxZeroBias,
			Range:       Span{c.Range.A, c.Range.B},
			Falloff:     Span{c.Falloff.A, c.Falloff.B},
			Degradation: Span{c.Degradation.A, c.Degradation.B},
			Policy:      c.Policy.String(),
		},
		Cylinder: Cylinder{
			TensionSpeed: parameter.CylinderTensionSpeed,
			ReturnSpeed:  parameter.CylinderReturnSpeed,
		},
		Pick: Pick{RotationSpeed: parameter.PickRotationSpeed},
		Session: Session{
			BreakPause:          Duration(parameter.BreakPause),
			RecoveryReturnSpeed: parameter.RecoveryReturnSpeed,
			UnlockPause:         Duration(parameter.UnlockPause),
			NextLockPause:       Duration(parameter.NextLockPause),
			RandomDifficulty:    true,
			StartDifficulty:     parameter.DifficultyDefault,
		},
		Host: Host{
			TickInterval: Duration(parameter.GameUpdateInterval),
			MoveBuckets:  parameter.PickMoveBuckets,
			AxisHold:     Duration(parameter.AxisHold),
		},
	}
}

// Load reads a YAML file over the defaults; keys absent from the file keep their default
// An empty path returns the validated defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders the config as YAML, used to print an annotated starting file
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports the first out-of-range value
func (c Config) Validate() error {
	if _, ok := difficulty.ParsePolicy(c.Curve.Policy); !ok {
		return fmt.Errorf("%w: curve.policy %q", ErrInvalid, c.Curve.Policy)
	}
	if !unit(c.Curve.MaxZeroBias) {
		return fmt.Errorf("%w: curve.max_zero_bias %g not in [0, 1]", ErrInvalid, c.Curve.MaxZeroBias)
	}
	spans := []struct {
		name string
		s    Span
	}{
		{"curve.range", c.Curve.Range},
		{"curve.falloff", c.Curve.Falloff},
		{"curve.degradation", c.Curve.Degradation},
	}
	for _, sp := range spans {
		if !finite(sp.s[0]) || !finite(sp.s[1]) || sp.s[0] < 0 || sp.s[1] < 0 {
			return fmt.Errorf("%w: %s %v must be non-negative", ErrInvalid, sp.name, sp.s)
		}
	}
	// Window half-width and falloff band must stay strictly positive at every difficulty
	for _, sp := range spans[:2] {
		if sp.s[0] == 0 || sp.s[1] == 0 {
			return fmt.Errorf("%w: %s %v must be positive", ErrInvalid, sp.name, sp.s)
		}
	}
	if c.Curve.Degradation.toSpan().Max() == 0 {
		return fmt.Errorf("%w: curve.degradation is empty, picks would never break", ErrInvalid)
	}

	speeds := []struct {
		name string
		v    float64
	}{
		{"cylinder.tension_speed", c.Cylinder.TensionSpeed},
		{"cylinder.return_speed", c.Cylinder.ReturnSpeed},
		{"pick.rotation_speed", c.Pick.RotationSpeed},
		{"session.recovery_return_speed", c.Session.RecoveryReturnSpeed},
	}
	for _, sp := range speeds {
		if !finite(sp.v) || sp.v <= 0 {
			return fmt.Errorf("%w: %s %g must be positive", ErrInvalid, sp.name, sp.v)
		}
	}

	if c.Session.BreakPause < 0 || c.Session.UnlockPause < 0 || c.Session.NextLockPause < 0 {
		return fmt.Errorf("%w: session pauses must be non-negative", ErrInvalid)
	}
	if c.Session.StartDifficulty < parameter.DifficultyMin || c.Session.StartDifficulty > parameter.DifficultyMax {
		return fmt.Errorf("%w: session.start_difficulty %d not in [%d, %d]",
			ErrInvalid, c.Session.StartDifficulty, parameter.DifficultyMin, parameter.DifficultyMax)
	}
	if c.Host.TickInterval <= 0 || time.Duration(c.Host.TickInterval) > parameter.MaxTickDelta {
		return fmt.Errorf("%w: host.tick_interval %s not in (0, %s]",
			ErrInvalid, time.Duration(c.Host.TickInterval), parameter.MaxTickDelta)
	}
	if c.Host.MoveBuckets < 1 {
		return fmt.Errorf("%w: host.move_buckets %d must be at least 1", ErrInvalid, c.Host.MoveBuckets)
	}
	if c.Host.AxisHold <= 0 {
		return fmt.Errorf("%w: host.axis_hold must be positive", ErrInvalid)
	}
	return nil
}

// DifficultyCurve converts to the core curve; call after Validate
func (c Config) DifficultyCurve() difficulty.Curve {
	policy, _ := difficulty.ParsePolicy(c.Curve.Policy)
	return difficulty.Curve{
		MaxZeroBias: c.Curve.MaxZeroBias,
		Range:       c.Curve.Range.toSpan(),
		Falloff:     c.Curve.Falloff.toSpan(),
		Degradation: c.Curve.Degradation.toSpan(),
		Policy:      policy,
	}
}

// Engine builds the simulation config; rng may be nil
func (c Config) Engine(rng difficulty.RandomSource) engine.Config {
	return engine.Config{
		Curve:                c.DifficultyCurve(),
		CylinderTensionSpeed: c.Cylinder.TensionSpeed,
		CylinderReturnSpeed:  c.Cylinder.ReturnSpeed,
		PickRotationSpeed:    c.Pick.RotationSpeed,
		Random:               rng,
	}
}

// SessionConfig builds the game lifecycle config
func (c Config) SessionConfig() session.Config {
	return session.Config{
		BreakPause:          time.Duration(c.Session.BreakPause),
		RecoveryReturnSpeed: c.Session.RecoveryReturnSpeed,
		UnlockPause:         time.Duration(c.Session.UnlockPause),
		NextLockPause:       time.Duration(c.Session.NextLockPause),
		RandomDifficulty:    c.Session.RandomDifficulty,
		StartDifficulty:     c.Session.StartDifficulty,
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func unit(v float64) bool { return finite(v) && v >= 0 && v <= 1 }
