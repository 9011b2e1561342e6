package controller

import "github.com/milk9111/dasher/common"

// turnSmoothing is the fraction of the remaining turn applied per late tick.
const turnSmoothing = 0.2

// LateUpdate eases the facing rotation toward LookDirection.
func (c *Controller) LateUpdate() {
	if c == nil {
		return
	}
	target := common.YawRotation(c.state.LookDirection)
	c.state.Rotation = common.Slerp(c.state.Rotation, target, turnSmoothing)
}
