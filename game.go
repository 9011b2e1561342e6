package main

import (
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/dasher/controller"
	"github.com/milk9111/dasher/entity"
	"github.com/milk9111/dasher/input"
	"github.com/milk9111/dasher/loop"
	"github.com/milk9111/dasher/physics"
	"github.com/milk9111/dasher/prefabs"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// maxFrameDelta caps the logic step after a stall (window drag, breakpoint).
	maxFrameDelta = 0.1
)

var (
	colorFloor  = colornames.Darkslategray
	colorWall   = colornames.Lightslategray
	colorPlayer = colornames.Whitesmoke
	colorDash   = colornames.Turquoise
	colorFacing = colornames.Tomato
	colorLook   = colornames.Yellowgreen
)

type Game struct {
	log   *zap.Logger
	debug bool

	arena  *prefabs.ArenaSpec
	world  *physics.World
	player *entity.Player

	driver  *controller.Driver
	script  *input.Script
	sched   *loop.Scheduler
	watcher *prefabs.Watcher

	last time.Time
}

// NewGame builds the arena and player. With a script name the player is
// driven by that tengo script instead of the keyboard.
func NewGame(log *zap.Logger, fixedStep float64, script string, debug, watch bool) (*Game, error) {
	arena, err := prefabs.LoadArenaSpec()
	if err != nil {
		return nil, err
	}
	world := physics.NewWorld(arena)
	player, err := entity.NewPlayer(world, arena, log)
	if err != nil {
		return nil, err
	}

	var (
		src controller.Source = NewKeyboard()
		scr *input.Script
	)
	if script != "" {
		scr, err = input.LoadScript(script, log)
		if err != nil {
			return nil, err
		}
		src = scr
	}

	driver := controller.Bind(player.Controller, src)
	g := &Game{
		log:    log,
		debug:  debug,
		arena:  arena,
		world:  world,
		player: player,
		driver: driver,
		script: scr,
		sched:  loop.NewScheduler(fixedStep, driver),
	}

	if dirs := prefabs.WatchDirs(); watch && len(dirs) > 0 {
		w, err := prefabs.NewWatcher(log, dirs...)
		if err != nil {
			log.Warn("prefab watcher disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.pollReload()

	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	dt := math.Min(now.Sub(g.last).Seconds(), maxFrameDelta)
	g.last = now

	g.sched.Advance(dt)
	return nil
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	switch filepath.Base(path) {
	case prefabs.ArenaFile:
		arena, err := prefabs.LoadArenaSpec()
		if err != nil {
			g.log.Warn("arena reload failed", zap.Error(err))
			return
		}
		world := physics.NewWorld(arena)
		next, err := g.player.MoveTo(world, arena.Radius, g.log)
		if err != nil {
			g.log.Warn("arena reload failed", zap.Error(err))
			return
		}
		g.arena, g.world, g.player = arena, world, next
	case prefabs.ControllerFile:
		next, err := g.player.Rebuild(g.world, g.log)
		if err != nil {
			g.log.Warn("controller reload failed", zap.Error(err))
			return
		}
		g.player = next
	default:
		if !g.script.Matches(path) {
			return
		}
		if err := g.script.Reload(); err != nil {
			g.log.Warn("script reload failed", zap.Error(err))
			return
		}
	}

	g.driver.Controller = g.player.Controller
	g.log.Info("prefab reloaded", zap.String("path", path))
}

func (g *Game) Draw(screen *ebiten.Image) {
	scale, ox, oy := g.viewport()
	toScreen := func(x, z float64) (float32, float32) {
		return float32(ox + x*scale), float32(oy + (g.arena.Depth-z)*scale)
	}

	vector.DrawFilledRect(screen, float32(ox), float32(oy), float32(g.arena.Width*scale), float32(g.arena.Depth*scale), colorFloor, false)
	for _, w := range g.arena.Walls {
		x, y := toScreen(w.X, w.Z+w.D)
		vector.DrawFilledRect(screen, x, y, float32(w.W*scale), float32(w.D*scale), colorWall, false)
	}

	c := g.player.Controller
	state := c.State()
	pos := g.player.Body.Position()
	cx, cy := toScreen(pos.X(), pos.Z())
	r := float32(g.player.Body.Radius() * scale)

	body := colorPlayer
	if state.MoveType == controller.MoveDash {
		body = colorDash
	}
	vector.DrawFilledCircle(screen, cx, cy, r, body, true)

	fwd := c.Forward()
	fx, fy := toScreen(pos.X()+fwd.X()*2*g.player.Body.Radius(), pos.Z()+fwd.Z()*2*g.player.Body.Radius())
	vector.StrokeLine(screen, cx, cy, fx, fy, 2, colorFacing, true)

	if g.debug {
		look := state.LookDirection.Normalize()
		lx, ly := toScreen(pos.X()+look.X()*c.Config().DashProbeDistance, pos.Z()+look.Z()*c.Config().DashProbeDistance)
		vector.StrokeLine(screen, cx, cy, lx, ly, 1, colorLook, true)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"TPS: %.1f  t=%.2f  mode=%s  grounded=%v\npos=(%.2f, %.2f, %.2f)  vel=(%.2f, %.2f, %.2f)\ncooldown until %.2f",
		ebiten.ActualTPS(), g.sched.Now(), state.MoveType, g.player.Body.IsGrounded(),
		pos.X(), pos.Y(), pos.Z(),
		state.Velocity.X(), state.Velocity.Y(), state.Velocity.Z(),
		state.DashCooldownEndTime,
	))
}

// viewport fits the arena into the base resolution with a margin.
func (g *Game) viewport() (scale, ox, oy float64) {
	w, d := g.arena.Width, g.arena.Depth
	if w <= 0 || d <= 0 {
		w, d = 32, 18
	}
	scale = 0.9 * math.Min(baseWidth/w, baseHeight/d)
	ox = (baseWidth - w*scale) / 2
	oy = (baseHeight - d*scale) / 2
	return scale, ox, oy
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
