package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

const (
	// skinWidth keeps a swept body this far off a contact so the next sweep
	// does not start inside the wall.
	skinWidth = 0.01
	maxSlides = 3
	minTravel = 1e-12
)

// Body is a kinematic circle that moves by swept displacement. It is the
// motion integrator handed to the movement controller.
type Body struct {
	world    *World
	pos      mgl64.Vec3
	radius   float64
	grounded bool
}

func (w *World) NewBody(pos mgl64.Vec3, radius float64) *Body {
	b := &Body{world: w, pos: pos, radius: radius}
	if w != nil && pos.Y() <= w.FloorY {
		b.pos[1] = w.FloorY
		b.grounded = true
	}
	return b
}

func (b *Body) Position() mgl64.Vec3 {
	return b.pos
}

func (b *Body) Radius() float64 {
	return b.radius
}

func (b *Body) IsGrounded() bool {
	return b.grounded
}

// Move sweeps the horizontal part of delta against walls, sliding along any
// contact, then applies the vertical part against the floor.
func (b *Body) Move(delta mgl64.Vec3) {
	if b == nil {
		return
	}
	p := b.sweep(planar(b.pos), planar(delta))
	b.pos[0], b.pos[2] = p.X, p.Y

	if b.world == nil {
		b.pos[1] += delta.Y()
		return
	}

	y := b.pos.Y() + delta.Y()
	b.grounded = false
	if y <= b.world.FloorY {
		y = b.world.FloorY
		b.grounded = delta.Y() <= 0
	}
	b.pos[1] = y
}

func (b *Body) sweep(p, remaining cp.Vector) cp.Vector {
	if b.world == nil || b.world.space == nil {
		return p.Add(remaining)
	}
	space := b.world.space

	for i := 0; i < maxSlides && remaining.LengthSq() > minTravel; i++ {
		end := p.Add(remaining)
		info := space.SegmentQueryFirst(p, end, b.radius, cp.SHAPE_FILTER_ALL)
		if info.Shape == nil {
			return end
		}

		p = p.Add(remaining.Mult(info.Alpha)).Add(info.Normal.Mult(skinWidth))

		// slide: keep only the part of what is left that runs along the wall
		remaining = remaining.Mult(1 - info.Alpha)
		remaining = remaining.Sub(info.Normal.Mult(remaining.Dot(info.Normal)))
	}
	return p
}
