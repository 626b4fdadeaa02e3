// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"log/slog"
	"runtime/debug"

	"bspcollide/math"
	"bspcollide/math/vec"
)

type PathInfo int

const (
	// OutsideSolid: the path ran start to end through free space, or
	// hit a brush it started outside of.
	OutsideSolid PathInfo = iota
	// StartsInsideEndsOutsideSolid: the start point was embedded in a
	// brush the end point is free of.
	StartsInsideEndsOutsideSolid
	// InsideSolid: start and end are both embedded.
	InsideSolid
)

type TraceResult struct {
	// PathFraction is the parameter along start->end of the first
	// contact, 1 means the path is free.
	PathFraction float32
	Info         PathInfo
	// Plane is the struck plane, nil unless a collision happened in
	// free space.
	Plane *Plane
}

// Trace sweeps bounds through the world and returns the first contact.
// The resolved end position is vec.Lerp(start, end, PathFraction).
func Trace(bsp *CollisionBsp, bounds Bounds) TraceResult {
	return TraceTuned(bsp, bounds, DefaultTuning())
}

// TraceTuned is Trace with explicit tuning. Invalid bounds are a
// programmer error and panic.
func TraceTuned(bsp *CollisionBsp, bounds Bounds, tun Tuning) TraceResult {
	if err := bounds.Validate(); err != nil {
		debug.PrintStack()
		slog.Error("Trace: bad bounds", slog.Any("err", err), slog.Any("bsp", bsp.LoadID))
		panic(err)
	}
	tw := newTraceWork(&bounds, tun)
	free := TraceResult{PathFraction: 1, Info: OutsideSolid}
	return checkNode(bsp, &tw, 0, 0, 1, bounds.Start, bounds.End, free)
}

func checkNode(bsp *CollisionBsp, tw *traceWork, num int32, p1f, p2f float32, p1, p2 vec.Vec3, result TraceResult) TraceResult {
	if num < 0 {
		return checkLeaf(bsp, tw, -(num + 1), result)
	}
	if int(num) >= len(bsp.Nodes) {
		debug.PrintStack()
		slog.Error("checkNode: bad node number", slog.Int64("node", int64(num)), slog.Any("bsp", bsp.LoadID))
		panic("checkNode: bad node number")
	}
	node := &bsp.Nodes[num]
	plane := &bsp.Planes[node.Plane]

	t1 := plane.SignedDistance(p1)
	t2 := plane.SignedDistance(p2)
	offset := tw.nodeOffset(plane)

	if t1 >= offset && t2 >= offset {
		return checkNode(bsp, tw, node.Children[0], p1f, p2f, p1, p2, result)
	}
	if t1 < -offset && t2 < -offset {
		return checkNode(bsp, tw, node.Children[1], p1f, p2f, p1, p2, result)
	}

	// The segment spans the splitting plane. The near side runs past
	// the plane by the volume offset, plus epsilon going from front to
	// back and minus epsilon going from back to front; the far side
	// starts offset plus epsilon before it, so a volume hugging the
	// plane is seen by both subtrees.
	side, frac1, frac2 := func() (int, float32, float32) {
		switch {
		case t1 < t2:
			inv := 1 / (t1 - t2)
			return 1, (t1 - offset + tw.epsilon) * inv, (t1 + offset + tw.epsilon) * inv
		case t1 > t2:
			inv := 1 / (t1 - t2)
			return 0, (t1 + offset + tw.epsilon) * inv, (t1 - offset - tw.epsilon) * inv
		default:
			return 0, 1, 0
		}
	}()
	frac1 = math.Clamp(0, frac1, 1)
	frac2 = math.Clamp(0, frac2, 1)

	midf := math.Lerp(p1f, p2f, frac1)
	mid := vec.Lerp(p1, p2, frac1)
	result = checkNode(bsp, tw, node.Children[side], p1f, midf, p1, mid, result)

	midf = math.Lerp(p1f, p2f, frac2)
	mid = vec.Lerp(p1, p2, frac2)
	return checkNode(bsp, tw, node.Children[side^1], midf, p2f, mid, p2, result)
}

func checkLeaf(bsp *CollisionBsp, tw *traceWork, num int32, result TraceResult) TraceResult {
	leaf := &bsp.Leaves[num]
	for i := int32(0); i < leaf.LeafBrushCount; i++ {
		brush := &bsp.Brushes[bsp.LeafBrushes[leaf.FirstLeafBrush+i]]
		if brush.SideCount < 6 {
			continue
		}
		if bsp.Textures[brush.Texture].ContentFlags&ContentsSolid == 0 {
			continue
		}
		if !aabbOverlap(tw.aabbMin, tw.aabbMax, brush.Mins, brush.Maxs) {
			continue
		}
		result = checkBrush(bsp, tw, brush, result)
	}
	return result
}

func aabbOverlap(aMin, aMax, bMin, bMax vec.Vec3) bool {
	return aMin.X <= bMax.X && aMax.X >= bMin.X &&
		aMin.Y <= bMax.Y && aMax.Y >= bMin.Y &&
		aMin.Z <= bMax.Z && aMax.Z >= bMin.Z
}
