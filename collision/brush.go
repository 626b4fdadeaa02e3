// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"bspcollide/math"
	"bspcollide/math/vec"
)

// checkBrush clips the full swept segment against one brush and
// returns the better of result and the contact it finds. The brush's
// first 6 sides are its bounding box faces and are skipped, the broad
// phase already dealt with them.
func checkBrush(bsp *CollisionBsp, tw *traceWork, brush *Brush, result TraceResult) TraceResult {
	startFraction := float32(-1)
	endFraction := float32(1)
	startsOut := false
	endsOut := false
	var hitPlane *Plane

	for i := int32(6); i < brush.SideCount; i++ {
		side := &bsp.BrushSides[brush.FirstBrushSide+i]
		plane := &bsp.Planes[side.Plane]

		var off vec.Vec3
		if tw.shape == Box {
			off = tw.boxOffset(plane)
		}
		// A sphere is clipped against the plane pushed out by its
		// radius.
		dist := plane.Dist + tw.radius
		startDistance := vec.Dot(vec.Add(tw.start, off), plane.Normal) - dist
		endDistance := vec.Dot(vec.Add(tw.end, off), plane.Normal) - dist

		if startDistance > 0 {
			startsOut = true
		}
		if endDistance > 0 {
			endsOut = true
		}

		if startDistance > 0 && endDistance > 0 {
			// the whole segment is in front of this side, it never
			// enters the brush
			return result
		}
		if startDistance <= 0 && endDistance <= 0 {
			// behind this side for the whole segment, another side
			// will clip it
			continue
		}

		if startDistance > endDistance {
			// entering the brush through this side
			f := (startDistance - tw.epsilon) / (startDistance - endDistance)
			if f > startFraction {
				startFraction = f
				hitPlane = plane
			}
		} else {
			// leaving the brush through this side
			f := (startDistance + tw.epsilon) / (startDistance - endDistance)
			if f < endFraction {
				endFraction = f
			}
		}
	}

	if !startsOut {
		// The start point is embedded in this brush. That is not a
		// collision, only the classification changes; an earlier
		// contact keeps its fraction and plane.
		if endsOut {
			return TraceResult{
				PathFraction: result.PathFraction,
				Info:         StartsInsideEndsOutsideSolid,
				Plane:        result.Plane,
			}
		}
		return TraceResult{
			PathFraction: result.PathFraction,
			Info:         InsideSolid,
			Plane:        result.Plane,
		}
	}

	if startFraction < endFraction && startFraction > -1 &&
		startFraction < result.PathFraction {
		return TraceResult{
			PathFraction: math.Clamp(0, startFraction, 1),
			Info:         OutsideSolid,
			Plane:        hitPlane,
		}
	}
	return result
}
