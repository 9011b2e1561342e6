package input

import (
	"fmt"
	"path/filepath"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/dasher/controller"
	"github.com/milk9111/dasher/prefabs"
	"go.uber.org/zap"
)

// Script is an input source driven by a tengo script. Each poll the script
// sees the globals time (seconds) and tick (poll count) and must assign the
// globals horizontal, vertical (numbers in [-1, 1]) and dash (held state).
// The dash edge is derived here: DashPressed is true only on the poll where
// dash goes from false to true.
type Script struct {
	name     string
	compiled *tengo.Compiled
	log      *zap.Logger

	tick     int
	prevDash bool
}

// LoadScript compiles a script from the prefab scripts directory.
func LoadScript(name string, log *zap.Logger) (*Script, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("input: load script %s: %w", name, err)
	}
	return NewScript(name, src, log)
}

func NewScript(name string, src []byte, log *zap.Logger) (*Script, error) {
	if log == nil {
		log = zap.NewNop()
	}

	script := tengo.NewScript(src)
	_ = script.Add("time", 0.0)
	_ = script.Add("tick", 0)
	_ = script.Add("horizontal", 0.0)
	_ = script.Add("vertical", 0.0)
	_ = script.Add("dash", false)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile script %s: %w", name, err)
	}

	return &Script{name: name, compiled: compiled, log: log}, nil
}

// Matches reports whether a changed file path is this script's source.
func (s *Script) Matches(path string) bool {
	return s != nil && filepath.Base(path) == filepath.Base(s.name)
}

// Reload recompiles the script from the prefab scripts directory. The tick
// count carries over; the dash edge restarts. On error the old program stays.
func (s *Script) Reload() error {
	next, err := LoadScript(s.name, s.log)
	if err != nil {
		return err
	}
	s.compiled = next.compiled
	s.prevDash = false
	return nil
}

func (s *Script) Poll(now float64) controller.Frame {
	if s == nil || s.compiled == nil {
		return controller.Frame{}
	}

	frame, dash, err := s.run(now)
	s.tick++
	if err != nil {
		s.log.Warn("input script failed", zap.String("script", s.name), zap.Error(err))
		s.prevDash = false
		return controller.Frame{}
	}

	frame.DashPressed = dash && !s.prevDash
	s.prevDash = dash
	return frame
}

func (s *Script) run(now float64) (controller.Frame, bool, error) {
	globals := map[string]any{
		"time":       now,
		"tick":       s.tick,
		"horizontal": 0.0,
		"vertical":   0.0,
		"dash":       false,
	}
	for k, v := range globals {
		if err := s.compiled.Set(k, v); err != nil {
			return controller.Frame{}, false, err
		}
	}

	if err := s.compiled.Run(); err != nil {
		return controller.Frame{}, false, err
	}

	frame := controller.Frame{
		Horizontal: mgl64.Clamp(s.compiled.Get("horizontal").Float(), -1, 1),
		Vertical:   mgl64.Clamp(s.compiled.Get("vertical").Float(), -1, 1),
	}
	return frame, s.compiled.Get("dash").Bool(), nil
}

// Static always returns the same frame.
type Static struct {
	Frame controller.Frame
}

func (s Static) Poll(float64) controller.Frame {
	return s.Frame
}
