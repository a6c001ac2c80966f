// pkg/physics/world.go
package physics

import "math"

// Box is a static axis-aligned collider.
type Box struct {
	Min, Max Vec2
}

func NewBox(min, max Vec2) Box {
	return Box{Min: min, Max: max}
}

func (b Box) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func (b Box) Center() Vec2 {
	return Vec2{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

// RaycastHit describes the nearest intersection found by World.Raycast.
type RaycastHit struct {
	Point    Vec2
	Normal   Vec2
	Distance float64
}

// World owns the dynamic bodies and the static geometry. All access is
// single-threaded within the frame callback.
type World struct {
	Gravity Vec2

	bodies []*Body
	boxes  []Box
}

func NewWorld(gravity Vec2) *World {
	return &World{Gravity: gravity}
}

func (w *World) AddBody(b *Body) {
	w.bodies = append(w.bodies, b)
}

func (w *World) RemoveBody(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

func (w *World) AddBox(b Box) {
	w.boxes = append(w.boxes, b)
}

func (w *World) Bodies() []*Body { return w.bodies }

func (w *World) Boxes() []Box { return w.boxes }

// Step advances every body by dt and resolves collisions against the
// static geometry.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		b.integrate(dt, w.Gravity)
		if b.Continuous {
			w.sweep(b)
		}
		for _, box := range w.boxes {
			resolveCircleBox(b, box)
		}
	}
}

// sweep clamps a fast body to the first static surface crossed between its
// last and current positions.
func (w *World) sweep(b *Body) {
	delta := b.position.Sub(b.lastPosition)
	dist := delta.Length()
	if dist <= b.Radius {
		return
	}
	dir := delta.Scale(1 / dist)
	if hit, ok := w.Raycast(b.lastPosition, dir, dist); ok {
		b.position = hit.Point.Add(hit.Normal.Scale(b.Radius))
	}
}

// Raycast finds the nearest static box intersected by the ray. The boolean
// is false when nothing lies within maxDist; that is an ordinary outcome,
// not an error.
func (w *World) Raycast(origin, dir Vec2, maxDist float64) (RaycastHit, bool) {
	best := RaycastHit{Distance: math.Inf(1)}
	found := false
	for _, box := range w.boxes {
		if hit, ok := raycastBox(origin, dir, maxDist, box); ok && hit.Distance < best.Distance {
			best = hit
			found = true
		}
	}
	return best, found
}

// OverlapCircle returns every dynamic body whose center lies strictly
// within radius of center. The caller filters itself out if needed.
func (w *World) OverlapCircle(center Vec2, radius float64) []*Body {
	var result []*Body
	rr := radius * radius
	for _, b := range w.bodies {
		if b.position.Sub(center).LengthSquared() < rr {
			result = append(result, b)
		}
	}
	return result
}

// raycastBox is the slab method against a single AABB.
func raycastBox(origin, dir Vec2, maxDist float64, box Box) (RaycastHit, bool) {
	tMin := 0.0
	tMax := maxDist
	normal := Vec2{}

	for axis := 0; axis < 2; axis++ {
		var o, d, lo, hi float64
		if axis == 0 {
			o, d, lo, hi = origin.X, dir.X, box.Min.X, box.Max.X
		} else {
			o, d, lo, hi = origin.Y, dir.Y, box.Min.Y, box.Max.Y
		}
		if math.Abs(d) < 1e-12 {
			if o < lo || o > hi {
				return RaycastHit{}, false
			}
			continue
		}
		inv := 1 / d
		t1 := (lo - o) * inv
		t2 := (hi - o) * inv
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}
		if t1 > tMin {
			tMin = t1
			if axis == 0 {
				normal = Vec2{sign, 0}
			} else {
				normal = Vec2{0, sign}
			}
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return RaycastHit{}, false
		}
	}

	// Ray starting inside the box counts as no hit: the caller wants a
	// surface to land on, not the volume it is already in.
	if tMin == 0 && box.Contains(origin) {
		return RaycastHit{}, false
	}
	return RaycastHit{
		Point:    origin.Add(dir.Scale(tMin)),
		Normal:   normal,
		Distance: tMin,
	}, true
}

// resolveCircleBox pushes a circle body out of a static box and reflects
// the normal component of its velocity.
func resolveCircleBox(b *Body, box Box) {
	closest := Vec2{
		X: math.Max(box.Min.X, math.Min(b.position.X, box.Max.X)),
		Y: math.Max(box.Min.Y, math.Min(b.position.Y, box.Max.Y)),
	}
	delta := b.position.Sub(closest)
	distSq := delta.LengthSquared()
	if distSq >= b.Radius*b.Radius {
		return
	}

	var normal Vec2
	var penetration float64
	if distSq > 1e-12 {
		dist := math.Sqrt(distSq)
		normal = delta.Scale(1 / dist)
		penetration = b.Radius - dist
	} else {
		// Center is inside the box: push along the smallest overlap axis.
		left := b.position.X - box.Min.X
		right := box.Max.X - b.position.X
		down := b.position.Y - box.Min.Y
		up := box.Max.Y - b.position.Y
		min := math.Min(math.Min(left, right), math.Min(down, up))
		switch min {
		case left:
			normal = Vec2{-1, 0}
			penetration = left + b.Radius
		case right:
			normal = Vec2{1, 0}
			penetration = right + b.Radius
		case down:
			normal = Vec2{0, -1}
			penetration = down + b.Radius
		default:
			normal = Vec2{0, 1}
			penetration = up + b.Radius
		}
	}

	b.position = b.position.Add(normal.Scale(penetration))

	vn := b.velocity.Dot(normal)
	if vn < 0 {
		// Reflect the normal component, apply ground friction to the rest.
		normalPart := normal.Scale(vn)
		tangentPart := b.velocity.Sub(normalPart)
		b.velocity = tangentPart.Scale(0.98).Sub(normalPart.Scale(b.Restitution))
		b.angularVelocity *= 0.98
	}
}
