package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/dasher/controller"
	"gopkg.in/yaml.v3"
)

const (
	ControllerFile = "controller.yaml"
	ArenaFile      = "arena.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ControllerSpec is the YAML form of controller.Config. Missing fields keep
// the controller defaults.
type ControllerSpec struct {
	Name              string   `yaml:"name"`
	MoveSpeed         *float64 `yaml:"move_speed"`
	Gravity           *float64 `yaml:"gravity"`
	DashRange         *float64 `yaml:"dash_range"`
	DashDuration      *float64 `yaml:"dash_duration"`
	DashCooldown      *float64 `yaml:"dash_cooldown"`
	DashProbeDistance *float64 `yaml:"dash_probe_distance"`
}

func LoadControllerSpec() (*ControllerSpec, error) {
	spec, err := LoadSpec[ControllerSpec](ControllerFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Config merges the spec over controller.DefaultConfig and validates it.
func (s *ControllerSpec) Config() (controller.Config, error) {
	cfg := controller.DefaultConfig()
	if s == nil {
		return cfg, nil
	}
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.MoveSpeed, s.MoveSpeed)
	set(&cfg.Gravity, s.Gravity)
	set(&cfg.DashRange, s.DashRange)
	set(&cfg.DashDuration, s.DashDuration)
	set(&cfg.DashCooldown, s.DashCooldown)
	set(&cfg.DashProbeDistance, s.DashProbeDistance)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("prefabs: %s: %w", ControllerFile, err)
	}
	return cfg, nil
}

type ArenaSpec struct {
	Name   string     `yaml:"name"`
	FloorY float64    `yaml:"floor_y"`
	Width  float64    `yaml:"width"`
	Depth  float64    `yaml:"depth"`
	Radius float64    `yaml:"radius"`
	Spawn  PointSpec  `yaml:"spawn"`
	Facing PointSpec  `yaml:"facing"`
	Walls  []WallSpec `yaml:"walls"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (p PointSpec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// WallSpec is an axis-aligned box on the floor plane. X/Z is the minimum
// corner, W extends along x and D along z.
type WallSpec struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
	W float64 `yaml:"w"`
	D float64 `yaml:"d"`
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](ArenaFile)
	if err != nil {
		return nil, err
	}
	if spec.Radius <= 0 {
		return nil, fmt.Errorf("prefabs: %s: radius must be positive, got %v", ArenaFile, spec.Radius)
	}
	for i, w := range spec.Walls {
		if w.W <= 0 || w.D <= 0 {
			return nil, fmt.Errorf("prefabs: %s: wall %d has non-positive size %vx%v", ArenaFile, i, w.W, w.D)
		}
	}
	return &spec, nil
}
