package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/milk9111/dasher/common"
	"github.com/milk9111/dasher/controller"
	"github.com/milk9111/dasher/entity"
	"github.com/milk9111/dasher/input"
	"github.com/milk9111/dasher/loop"
	"github.com/milk9111/dasher/physics"
	"github.com/milk9111/dasher/prefabs"
	"go.uber.org/zap"
)

// simulate runs the controller headless against a scripted input source and
// logs the trajectory. Useful for tuning controller.yaml without a window.
func main() {
	script := flag.String("script", "patrol.tengo", "input script under prefabs/scripts")
	duration := flag.Float64("duration", 10, "simulated seconds")
	dt := flag.Float64("dt", 1.0/60.0, "frame length in seconds")
	jitter := flag.Float64("jitter", 0, "relative frame length jitter in [0, 1)")
	fixedStep := flag.Float64("fixed", loop.DefaultFixedStep, "physics tick length in seconds")
	every := flag.Int("every", 30, "log the state every n frames (0 logs transitions only)")
	seed := flag.Int64("seed", 1, "jitter seed")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := common.NewLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if *dt <= 0 || *jitter < 0 || *jitter >= 1 {
		logger.Fatal("bad frame timing", zap.Float64("dt", *dt), zap.Float64("jitter", *jitter))
	}
	for _, name := range []string{prefabs.ControllerFile, prefabs.ArenaFile} {
		if mt, ok := prefabs.ModTime(name); ok {
			logger.Info("prefab from disk", zap.String("file", name), zap.Time("modified", mt))
		}
	}

	arena, err := prefabs.LoadArenaSpec()
	if err != nil {
		logger.Fatal("load arena", zap.Error(err))
	}
	world := physics.NewWorld(arena)
	player, err := entity.NewPlayer(world, arena, logger)
	if err != nil {
		logger.Fatal("spawn player", zap.Error(err))
	}
	src, err := input.LoadScript(*script, logger)
	if err != nil {
		logger.Fatal("load script", zap.Error(err))
	}

	sched := loop.NewScheduler(*fixedStep, controller.Bind(player.Controller, src))
	rng := rand.New(rand.NewSource(*seed))

	var (
		frames   int
		ticks    int
		dashes   int
		lastMode = player.Controller.MoveType()
	)
	for sched.Now() < *duration {
		step := *dt
		if *jitter > 0 {
			step *= 1 + *jitter*(2*rng.Float64()-1)
		}
		ticks += sched.Advance(step)
		frames++

		mode := player.Controller.MoveType()
		changed := mode != lastMode
		if changed && mode == controller.MoveDash {
			dashes++
		}
		lastMode = mode

		if changed || (*every > 0 && frames%*every == 0) {
			logState(logger, sched.Now(), player)
		}
	}

	pos := player.Body.Position()
	logger.Info("done",
		zap.Int("frames", frames),
		zap.Int("fixed_ticks", ticks),
		zap.Int("dashes", dashes),
		zap.Float64s("position", pos[:]),
	)
}

func logState(logger *zap.Logger, now float64, p *entity.Player) {
	st := p.Controller.State()
	pos := p.Body.Position()
	fwd := p.Controller.Forward()
	logger.Info("state",
		zap.Float64("t", now),
		zap.Stringer("mode", st.MoveType),
		zap.Float64s("position", pos[:]),
		zap.Float64s("velocity", st.Velocity[:]),
		zap.Float64s("forward", fwd[:]),
		zap.Bool("grounded", p.Body.IsGrounded()),
	)
}
