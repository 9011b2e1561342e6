package controller

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/dasher/common"
	"go.uber.org/zap"
)

// Frame is one tick of raw input. Axes are in [-1, 1]; DashPressed is true
// only on the tick the dash button went down.
type Frame struct {
	Horizontal  float64
	Vertical    float64
	DashPressed bool
}

// Source produces input frames for the logic tick.
type Source interface {
	Poll(now float64) Frame
}

// SampleInput stores the clamped stick vector, steers the look direction and
// starts a dash when one is requested and the cooldown has passed.
func (c *Controller) SampleInput(now float64, in Frame) {
	if c == nil {
		return
	}

	input := common.ClampMagnitude(mgl64.Vec2{in.Horizontal, in.Vertical}, 1.0)
	c.state.Input = input

	shouldDash := in.DashPressed && now > c.state.DashCooldownEndTime
	hasInput := input.Dot(input) > 0

	if c.state.MoveType == MoveNormal && hasInput {
		c.state.LookDirection = common.PlaneDirection(input)
	}

	if !shouldDash {
		return
	}

	c.state.MoveType = MoveDash
	c.state.DashEndTime = now + c.cfg.DashDuration
	c.state.DashCooldownEndTime = c.state.DashEndTime + c.cfg.DashCooldown

	if input == (mgl64.Vec2{}) {
		c.state.DashDirection = c.state.LookDirection
	} else {
		c.state.DashDirection = common.PlaneDirection(input)
	}
	c.state.LookDirection = c.state.DashDirection

	c.log.Debug("dash started",
		zap.Float64("now", now),
		zap.Float64("end", c.state.DashEndTime),
		zap.Float64s("direction", c.state.DashDirection[:]),
	)
}
