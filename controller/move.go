package controller

import (
	"github.com/milk9111/dasher/common"
	"go.uber.org/zap"
)

// Move resolves a pending timed dash end, then runs the velocity rule of the
// resulting mode once and hands velocity*dt to the body.
func (c *Controller) Move(now, dt float64) {
	if c == nil {
		return
	}

	if c.state.MoveType == MoveDash && now >= c.state.DashEndTime {
		c.state.MoveType = MoveNormal
		c.log.Debug("dash ended", zap.Float64("now", now))
	}

	switch c.state.MoveType {
	case MoveNormal:
		c.moveNormal(dt)
	case MoveDash:
		c.moveDash(dt)
	}
}

func (c *Controller) moveNormal(dt float64) {
	if c.body.IsGrounded() {
		c.state.Velocity = common.PlaneDirection(c.state.Input).Mul(c.cfg.MoveSpeed)
	}

	c.state.Velocity[1] += c.cfg.Gravity * dt
	c.body.Move(c.state.Velocity.Mul(dt))
}

func (c *Controller) moveDash(dt float64) {
	if c.body.IsGrounded() {
		c.state.Velocity[1] = 0
	}

	c.state.Velocity = c.state.DashDirection.Mul(c.cfg.DashSpeed())

	c.state.Velocity[1] += c.cfg.Gravity * dt
	c.body.Move(c.state.Velocity.Mul(dt))
}
