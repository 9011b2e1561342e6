package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/dasher/common"
	"go.uber.org/zap"
)

// Body moves the controlled character through the world.
type Body interface {
	// Move displaces the body by delta, resolving against world collision.
	Move(delta mgl64.Vec3)
	// IsGrounded reports whether the last Move left the body supported.
	IsGrounded() bool
	Position() mgl64.Vec3
}

// Raycaster answers hit/no-hit ray queries against world geometry.
type Raycaster interface {
	Raycast(origin, dir mgl64.Vec3, maxDistance float64) bool
}

// Controller turns sampled input into body motion and facing. It is driven by
// an external loop: Update on the logic tick, FixedUpdate on the physics
// tick and LateUpdate at the end of the frame. It is not safe for concurrent
// use.
type Controller struct {
	cfg   Config
	body  Body
	query Raycaster
	log   *zap.Logger

	state State
}

type Option func(*Controller)

// WithLogger routes movement transitions to logger at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.log = logger
		}
	}
}

// WithFacing sets the spawn facing. Only its horizontal part is used.
func WithFacing(dir mgl64.Vec3) Option {
	return func(c *Controller) {
		flat := mgl64.Vec3{dir.X(), 0, dir.Z()}
		if flat.Len() == 0 {
			return
		}
		c.state.LookDirection = flat
		c.state.Rotation = common.YawRotation(flat)
	}
}

// WithRotation overrides the current facing rotation, so a rebuilt
// controller keeps easing from where the old one was. Apply after WithFacing.
func WithRotation(q mgl64.Quat) Option {
	return func(c *Controller) {
		if q.Len() == 0 {
			return
		}
		c.state.Rotation = q.Normalize()
	}
}

func New(cfg Config, body Body, query Raycaster, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, ErrNilBody
	}
	if query == nil {
		return nil, ErrNilRaycaster
	}

	c := &Controller{
		cfg:   cfg,
		body:  body,
		query: query,
		log:   zap.NewNop(),
		state: State{
			MoveType:            MoveNormal,
			LookDirection:       common.Forward,
			DashCooldownEndTime: math.Inf(-1),
			Rotation:            mgl64.QuatIdent(),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Controller) Config() Config {
	return c.cfg
}

// State returns a copy of the current movement state.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) MoveType() MoveType {
	return c.state.MoveType
}

func (c *Controller) Body() Body {
	return c.body
}

// Forward is the horizontal direction the character currently faces.
func (c *Controller) Forward() mgl64.Vec3 {
	return c.state.Rotation.Rotate(common.Forward)
}

// Update runs one logic tick: sample input, then move.
func (c *Controller) Update(now, dt float64, in Frame) {
	if c == nil {
		return
	}
	c.SampleInput(now, in)
	c.Move(now, dt)
}
