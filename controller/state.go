package controller

import "github.com/go-gl/mathgl/mgl64"

// MoveType is the active movement mode.
type MoveType int

const (
	MoveNormal MoveType = iota
	MoveDash
)

func (m MoveType) String() string {
	switch m {
	case MoveNormal:
		return "normal"
	case MoveDash:
		return "dash"
	default:
		return "unknown"
	}
}

// State is the per-character movement state. It is owned by one Controller
// and only mutated from its tick methods.
type State struct {
	MoveType MoveType

	// Input is the last sampled stick vector, clamped to the unit disc.
	Input mgl64.Vec2
	// Velocity persists across steps so gravity can accumulate while airborne.
	Velocity mgl64.Vec3

	// LookDirection is the facing target. Y is always zero.
	LookDirection mgl64.Vec3
	// DashDirection is frozen when a dash starts.
	DashDirection mgl64.Vec3

	DashEndTime         float64
	DashCooldownEndTime float64

	// Rotation is the current facing, eased toward LookDirection each late tick.
	Rotation mgl64.Quat
}
