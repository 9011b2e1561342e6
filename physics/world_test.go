package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/dasher/prefabs"
)

// wallWorld has a single tall wall occupying x in [5, 6], z in [-5, 5].
func wallWorld() *World {
	w := NewWorld(nil)
	w.AddWall(5, -5, 1, 10)
	return w
}

func TestRaycast(t *testing.T) {
	w := wallWorld()

	cases := []struct {
		name   string
		origin mgl64.Vec3
		dir    mgl64.Vec3
		dist   float64
		want   bool
	}{
		{"hit_ahead", mgl64.Vec3{4.5, 0, 0}, mgl64.Vec3{1, 0, 0}, 1, true},
		{"hit_ignores_height", mgl64.Vec3{4.5, 30, 0}, mgl64.Vec3{1, 0, 0}, 1, true},
		{"unnormalised_dir", mgl64.Vec3{4.5, 0, 0}, mgl64.Vec3{7, 0, 0}, 1, true},
		{"too_far", mgl64.Vec3{3, 0, 0}, mgl64.Vec3{1, 0, 0}, 1, false},
		{"facing_away", mgl64.Vec3{4.5, 0, 0}, mgl64.Vec3{-1, 0, 0}, 1, false},
		{"passes_beside", mgl64.Vec3{4.5, 0, 6}, mgl64.Vec3{1, 0, 0}, 3, false},
		{"vertical_dir", mgl64.Vec3{4.5, 0, 0}, mgl64.Vec3{0, 1, 0}, 1, false},
		{"zero_distance", mgl64.Vec3{4.5, 0, 0}, mgl64.Vec3{1, 0, 0}, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := w.Raycast(tc.origin, tc.dir, tc.dist); got != tc.want {
				t.Fatalf("expected hit=%v, got %v", tc.want, got)
			}
		})
	}
}

func TestBodyMoveHorizontal(t *testing.T) {
	t.Run("open_space", func(t *testing.T) {
		b := NewWorld(nil).NewBody(mgl64.Vec3{}, 0.5)
		b.Move(mgl64.Vec3{1, 0, -2})
		if got := b.Position(); got.Sub(mgl64.Vec3{1, 0, -2}).Len() > 1e-12 {
			t.Fatalf("expected (1,0,-2), got %v", got)
		}
	})

	t.Run("blocked_by_wall", func(t *testing.T) {
		b := wallWorld().NewBody(mgl64.Vec3{}, 0.5)
		b.Move(mgl64.Vec3{10, 0, 0})
		x := b.Position().X()
		if x > 4.5 || x < 4.3 {
			t.Fatalf("expected to stop short of the wall near x=4.5, got %v", x)
		}
	})

	t.Run("slides_along_wall", func(t *testing.T) {
		b := wallWorld().NewBody(mgl64.Vec3{}, 0.5)
		b.Move(mgl64.Vec3{10, 0, 2})
		p := b.Position()
		if p.X() > 4.5 {
			t.Fatalf("expected to stay in front of the wall, got x=%v", p.X())
		}
		if math.Abs(p.Z()-2) > 0.05 {
			t.Fatalf("expected to keep the sideways travel, got z=%v", p.Z())
		}
	})

	t.Run("arena_bounds", func(t *testing.T) {
		w := NewWorld(&prefabs.ArenaSpec{Width: 10, Depth: 10, Radius: 0.5})
		b := w.NewBody(mgl64.Vec3{5, 0, 5}, 0.5)
		b.Move(mgl64.Vec3{-20, 0, 0})
		if x := b.Position().X(); x < 0.4 || x > 0.6 {
			t.Fatalf("expected to stop at the left bound, got x=%v", x)
		}
	})
}

func TestBodyGrounded(t *testing.T) {
	w := NewWorld(&prefabs.ArenaSpec{FloorY: 0, Radius: 0.5})
	b := w.NewBody(mgl64.Vec3{0, 0, 0}, 0.5)
	if !b.IsGrounded() {
		t.Fatalf("expected body spawned on the floor to be grounded")
	}

	steps := []struct {
		name         string
		delta        float64
		wantY        float64
		wantGrounded bool
	}{
		{"press_into_floor", -0.1, 0, true},
		{"jump_up", 1, 1, false},
		{"fall_partway", -0.5, 0.5, false},
		{"land", -1, 0, true},
	}
	for _, st := range steps {
		t.Run(st.name, func(t *testing.T) {
			b.Move(mgl64.Vec3{0, st.delta, 0})
			if y := b.Position().Y(); y != st.wantY {
				t.Fatalf("expected y=%v, got %v", st.wantY, y)
			}
			if b.IsGrounded() != st.wantGrounded {
				t.Fatalf("expected grounded=%v", st.wantGrounded)
			}
		})
	}
}
