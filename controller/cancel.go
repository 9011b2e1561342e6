package controller

import "go.uber.org/zap"

// FixedUpdate runs on the physics tick. While dashing it probes ahead along
// the current facing and ends the dash on any hit, restarting the cooldown
// from now.
func (c *Controller) FixedUpdate(now float64) {
	if c == nil || c.state.MoveType != MoveDash {
		return
	}

	// Probe along the facing, not DashDirection; LateUpdate turns the
	// facing toward the dash so the two converge.
	if !c.query.Raycast(c.body.Position(), c.Forward(), c.cfg.DashProbeDistance) {
		return
	}

	c.state.MoveType = MoveNormal
	c.state.DashEndTime = now
	c.state.DashCooldownEndTime = c.state.DashEndTime + c.cfg.DashCooldown

	c.log.Debug("dash cancelled by collision",
		zap.Float64("now", now),
		zap.Float64("cooldown_end", c.state.DashCooldownEndTime),
	)
}
