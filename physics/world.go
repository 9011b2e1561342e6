package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/dasher/prefabs"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeBounds
)

// World is a top-down collision world. Walls are infinitely tall columns, so
// horizontal collision lives in a Chipmunk space whose X/Y axes are the world
// X/Z axes, and vertical support is a flat floor at FloorY.
type World struct {
	space  *cp.Space
	FloorY float64
}

// NewWorld builds static shapes for every wall in the arena plus a frame
// around its bounds when it has a size.
func NewWorld(arena *prefabs.ArenaSpec) *World {
	w := &World{space: cp.NewSpace()}
	if arena == nil {
		return w
	}
	w.FloorY = arena.FloorY
	w.buildStaticShapes(arena)
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// AddWall adds a static box spanning [x, x+width] by [z, z+depth].
func (w *World) AddWall(x, z, width, depth float64) {
	if w == nil || w.space == nil {
		return
	}
	bb := cp.BB{L: x, B: z, R: x + width, T: z + depth}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetCollisionType(collisionTypeSolid)
	w.space.AddShape(shape)
}

func (w *World) buildStaticShapes(arena *prefabs.ArenaSpec) {
	for _, wall := range arena.Walls {
		w.AddWall(wall.X, wall.Z, wall.W, wall.D)
	}

	if arena.Width <= 0 || arena.Depth <= 0 {
		return
	}
	width, depth := arena.Width, arena.Depth
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: width, Y: 0}},
		{a: cp.Vector{X: 0, Y: depth}, b: cp.Vector{X: width, Y: depth}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: depth}},
		{a: cp.Vector{X: width, Y: 0}, b: cp.Vector{X: width, Y: depth}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, 0)
		shape.SetCollisionType(collisionTypeBounds)
		w.space.AddShape(shape)
	}
}

// Raycast reports whether a ray from origin along the horizontal part of dir
// meets any wall within maxDistance.
func (w *World) Raycast(origin, dir mgl64.Vec3, maxDistance float64) bool {
	if w == nil || w.space == nil || maxDistance <= 0 {
		return false
	}
	flat := planar(dir)
	if flat.LengthSq() == 0 {
		return false
	}
	start := planar(origin)
	end := start.Add(flat.Normalize().Mult(maxDistance))
	info := w.space.SegmentQueryFirst(start, end, 0, cp.SHAPE_FILTER_ALL)
	return info.Shape != nil
}

func planar(v mgl64.Vec3) cp.Vector {
	return cp.Vector{X: v.X(), Y: v.Z()}
}
