// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"bspcollide/math/vec"
)

type Shape int

const (
	Ray Shape = iota
	Sphere
	Box
)

// Bounds describes the swept volume of one trace: a point, sphere or
// axis aligned box moving from Start to End. At most one of
// SphereRadius and BoxMin/BoxMax may be set.
type Bounds struct {
	Start vec.Vec3
	End   vec.Vec3
	// SphereRadius > 0 selects a sphere sweep.
	SphereRadius float32
	// A non zero BoxMin/BoxMax pair selects a box sweep. The box is
	// relative to the moving point.
	BoxMin vec.Vec3
	BoxMax vec.Vec3
}

func RayBounds(start, end vec.Vec3) Bounds {
	return Bounds{Start: start, End: end}
}

func SphereBounds(start, end vec.Vec3, radius float32) Bounds {
	return Bounds{Start: start, End: end, SphereRadius: radius}
}

func BoxBounds(start, end, mins, maxs vec.Vec3) Bounds {
	return Bounds{Start: start, End: end, BoxMin: mins, BoxMax: maxs}
}

// Shape returns the volume variant the bounds describe. A box with
// both corners zero degenerates to a ray.
func (b Bounds) Shape() Shape {
	if b.BoxMin != (vec.Vec3{}) || b.BoxMax != (vec.Vec3{}) {
		return Box
	}
	if b.SphereRadius > 0 {
		return Sphere
	}
	return Ray
}

func (b Bounds) Validate() error {
	if b.SphereRadius < 0 {
		return errors.Errorf("negative sphere radius %f", b.SphereRadius)
	}
	if b.SphereRadius > 0 && b.Shape() == Box {
		return errors.New("bounds combine sphere and box")
	}
	return nil
}

// traceWork carries the per query constants of one trace. It lives on
// the caller's stack, the trace itself never allocates.
type traceWork struct {
	start   vec.Vec3
	end     vec.Vec3
	shape   Shape
	radius  float32
	mins    vec.Vec3
	maxs    vec.Vec3
	extents vec.Vec3
	aabbMin vec.Vec3
	aabbMax vec.Vec3
	epsilon float32
}

func newTraceWork(b *Bounds, tun Tuning) traceWork {
	tw := traceWork{
		start:   b.Start,
		end:     b.End,
		shape:   b.Shape(),
		epsilon: tun.Epsilon,
	}
	lo, hi := vec.MinMax(b.Start, b.End)
	switch tw.shape {
	case Ray:
		tw.aabbMin, tw.aabbMax = lo, hi
	case Sphere:
		tw.radius = b.SphereRadius
		r := vec.Vec3{X: b.SphereRadius, Y: b.SphereRadius, Z: b.SphereRadius}
		tw.aabbMin = vec.Sub(lo, r)
		tw.aabbMax = vec.Add(hi, r)
	case Box:
		tw.mins = b.BoxMin
		tw.maxs = b.BoxMax
		tw.extents = vec.Vec3{
			X: math32.Max(-b.BoxMin.X, b.BoxMax.X),
			Y: math32.Max(-b.BoxMin.Y, b.BoxMax.Y),
			Z: math32.Max(-b.BoxMin.Z, b.BoxMax.Z),
		}
		tw.aabbMin = vec.Add(lo, b.BoxMin)
		tw.aabbMax = vec.Add(hi, b.BoxMax)
	}
	return tw
}

// nodeOffset is the projected thickness of the swept volume onto the
// plane normal.
func (tw *traceWork) nodeOffset(pl *Plane) float32 {
	switch tw.shape {
	case Sphere:
		return tw.radius
	case Box:
		return math32.Abs(tw.extents.X*pl.Normal.X) +
			math32.Abs(tw.extents.Y*pl.Normal.Y) +
			math32.Abs(tw.extents.Z*pl.Normal.Z)
	default:
		return 0
	}
}

// boxOffset picks the box corner reaching furthest against the plane
// normal, the first corner to cross into the half space.
func (tw *traceWork) boxOffset(pl *Plane) vec.Vec3 {
	pick := func(n, min, max float32) float32 {
		if n < 0 {
			return max
		}
		return min
	}
	return vec.Vec3{
		X: pick(pl.Normal.X, tw.mins.X, tw.maxs.X),
		Y: pick(pl.Normal.Y, tw.mins.Y, tw.maxs.Y),
		Z: pick(pl.Normal.Z, tw.mins.Z, tw.maxs.Z),
	}
}
