package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/dasher/common"
	"github.com/milk9111/dasher/controller"
	"github.com/milk9111/dasher/loop"
	"github.com/milk9111/dasher/physics"
	"github.com/milk9111/dasher/prefabs"
)

// pressOnce holds right and presses dash on the first poll only.
type pressOnce struct{ polled bool }

func (p *pressOnce) Poll(float64) controller.Frame {
	f := controller.Frame{Horizontal: 1, DashPressed: !p.polled}
	p.polled = true
	return f
}

func testArena() *prefabs.ArenaSpec {
	return &prefabs.ArenaSpec{
		Width:  40,
		Depth:  20,
		Radius: 0.5,
		Spawn:  prefabs.PointSpec{X: 2, Z: 10},
		Facing: prefabs.PointSpec{X: 1},
		Walls:  []prefabs.WallSpec{{X: 10, Z: 0, W: 2, D: 20}},
	}
}

func TestNewPlayer(t *testing.T) {
	arena := testArena()
	w := physics.NewWorld(arena)
	p, err := NewPlayer(w, arena, nil)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if got := p.Body.Position(); got != (mgl64.Vec3{2, 0, 10}) {
		t.Fatalf("expected spawn (2,0,10), got %v", got)
	}
	if got := p.Controller.State().LookDirection; got != (mgl64.Vec3{1, 0, 0}) {
		t.Fatalf("expected facing +x, got %v", got)
	}

	p.Body.Move(mgl64.Vec3{1, 0, 0})
	next, err := p.Rebuild(w, nil)
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	if next.Body != p.Body {
		t.Fatalf("expected rebuild to keep the body")
	}

	moved, err := next.MoveTo(physics.NewWorld(nil), 0.25, nil)
	if err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if moved.Body.Position() != p.Body.Position() || moved.Body.Radius() != 0.25 {
		t.Fatalf("expected body at %v with radius 0.25, got %v r=%v", p.Body.Position(), moved.Body.Position(), moved.Body.Radius())
	}
}

func TestRebuildKeepsMidTurnRotation(t *testing.T) {
	arena := testArena()
	w := physics.NewWorld(arena)
	p, err := NewPlayer(w, arena, nil)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	// spawned facing +x, now turning toward +z
	p.Controller.SampleInput(0, controller.Frame{Vertical: 1})
	p.Controller.LateUpdate()
	before := p.Controller.State().Rotation

	next, err := p.Rebuild(w, nil)
	if err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	st := next.Controller.State()
	if st.LookDirection != (mgl64.Vec3{0, 0, 1}) {
		t.Fatalf("expected look +z to carry over, got %v", st.LookDirection)
	}
	if a := common.QuatAngle(before, st.Rotation); a > 1e-9 {
		t.Fatalf("expected rotation to carry over, off by %v rad", a)
	}
	if a := common.QuatAngle(st.Rotation, common.YawRotation(st.LookDirection)); a < 1e-3 {
		t.Fatalf("expected rebuild to keep easing, rotation snapped to target")
	}

	moved, err := next.MoveTo(physics.NewWorld(arena), arena.Radius, nil)
	if err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	if a := common.QuatAngle(before, moved.Controller.State().Rotation); a > 1e-9 {
		t.Fatalf("expected MoveTo to keep rotation, off by %v rad", a)
	}
}

func TestDashIntoWallIsCancelled(t *testing.T) {
	arena := testArena()
	w := physics.NewWorld(arena)
	p, err := NewPlayer(w, arena, nil)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	s := loop.NewScheduler(1.0/50, controller.Bind(p.Controller, &pressOnce{}))
	s.Advance(1.0 / 60)
	if p.Controller.MoveType() != controller.MoveDash {
		t.Fatalf("expected dash after first tick, got %v", p.Controller.MoveType())
	}

	for i := 0; i < 59; i++ {
		s.Advance(1.0 / 60)
	}

	st := p.Controller.State()
	if st.MoveType != controller.MoveNormal {
		t.Fatalf("expected dash to be over, got %v", st.MoveType)
	}
	if st.DashEndTime >= 0.5 {
		t.Fatalf("expected the wall to cut the dash short, dash ended at %v", st.DashEndTime)
	}
	if x := p.Body.Position().X(); x >= 9.5 {
		t.Fatalf("expected body in front of the wall, got x=%v", x)
	}
	if !p.Body.IsGrounded() {
		t.Fatalf("expected body to stay on the floor")
	}
}
