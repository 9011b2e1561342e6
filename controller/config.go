package controller

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("controller: invalid config")
	ErrNilBody       = errors.New("controller: body is nil")
	ErrNilRaycaster  = errors.New("controller: raycaster is nil")
)

// Config holds the construction-time tuning of a Controller. Speeds are in
// world units per second, times in seconds, gravity in units per second
// squared (negative is down).
type Config struct {
	MoveSpeed    float64
	Gravity      float64
	DashRange    float64
	DashDuration float64
	DashCooldown float64
	// DashProbeDistance is the length of the forward ray that cancels a dash.
	DashProbeDistance float64
}

func DefaultConfig() Config {
	return Config{
		MoveSpeed:         10.0,
		Gravity:           -9.8,
		DashRange:         30.0,
		DashDuration:      1.0,
		DashCooldown:      0.25,
		DashProbeDistance: 1.0,
	}
}

// DashSpeed is the constant speed that covers DashRange in DashDuration.
func (c Config) DashSpeed() float64 {
	return c.DashRange / c.DashDuration
}

func (c Config) Validate() error {
	switch {
	case c.MoveSpeed <= 0:
		return fmt.Errorf("%w: move speed must be positive, got %v", ErrInvalidConfig, c.MoveSpeed)
	case c.Gravity >= 0:
		return fmt.Errorf("%w: gravity must point down, got %v", ErrInvalidConfig, c.Gravity)
	case c.DashRange <= 0:
		return fmt.Errorf("%w: dash range must be positive, got %v", ErrInvalidConfig, c.DashRange)
	case c.DashDuration <= 0:
		return fmt.Errorf("%w: dash duration must be positive, got %v", ErrInvalidConfig, c.DashDuration)
	case c.DashCooldown < 0:
		return fmt.Errorf("%w: dash cooldown must not be negative, got %v", ErrInvalidConfig, c.DashCooldown)
	case c.DashProbeDistance <= 0:
		return fmt.Errorf("%w: dash probe distance must be positive, got %v", ErrInvalidConfig, c.DashProbeDistance)
	}
	return nil
}
