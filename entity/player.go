package entity

import (
	"fmt"

	"github.com/milk9111/dasher/controller"
	"github.com/milk9111/dasher/physics"
	"github.com/milk9111/dasher/prefabs"
	"go.uber.org/zap"
)

// Player bundles a controller with the body it drives.
type Player struct {
	Controller *controller.Controller
	Body       *physics.Body
}

// NewPlayer spawns a body at the arena spawn point and builds a controller
// for it from controller.yaml.
func NewPlayer(w *physics.World, arena *prefabs.ArenaSpec, log *zap.Logger) (*Player, error) {
	if arena == nil {
		return nil, fmt.Errorf("player: nil arena")
	}
	body := w.NewBody(arena.Spawn.Vec3(), arena.Radius)
	return newPlayer(w, body, log, controller.WithFacing(arena.Facing.Vec3()))
}

// Rebuild reloads controller.yaml and replaces the controller, keeping the
// body and current facing. The old player is returned on error.
func (p *Player) Rebuild(w *physics.World, log *zap.Logger) (*Player, error) {
	next, err := newPlayer(w, p.Body, log, p.carryFacing()...)
	if err != nil {
		return p, err
	}
	return next, nil
}

// MoveTo rehomes the player's body into w at its current position.
func (p *Player) MoveTo(w *physics.World, radius float64, log *zap.Logger) (*Player, error) {
	body := w.NewBody(p.Body.Position(), radius)
	next, err := newPlayer(w, body, log, p.carryFacing()...)
	if err != nil {
		return p, err
	}
	return next, nil
}

// carryFacing keeps both the look target and the mid-turn rotation.
func (p *Player) carryFacing() []controller.Option {
	st := p.Controller.State()
	return []controller.Option{
		controller.WithFacing(st.LookDirection),
		controller.WithRotation(st.Rotation),
	}
}

func newPlayer(w *physics.World, body *physics.Body, log *zap.Logger, opts ...controller.Option) (*Player, error) {
	spec, err := prefabs.LoadControllerSpec()
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	cfg, err := spec.Config()
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}

	c, err := controller.New(cfg, body, w, append(opts, controller.WithLogger(log))...)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	return &Player{Controller: c, Body: body}, nil
}
