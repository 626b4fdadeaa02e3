// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"github.com/google/uuid"

	"bspcollide/math/vec"
)

// Content flag bits carried by Texture.ContentFlags. Only solid
// volumes take part in collision.
const (
	ContentsSolid = 1 << 0
)

// Plane is n * p = Dist for points p on the plane, with a unit length
// normal. Points in front of the plane have a positive signed
// distance.
type Plane struct {
	Normal vec.Vec3
	Dist   float32
}

// SignedDistance returns the distance of p from the plane, positive in
// front and negative behind.
func (pl *Plane) SignedDistance(p vec.Vec3) float32 {
	return vec.DoublePrecDot(pl.Normal, p) - pl.Dist
}

// Node is an inner node of the bsp tree. A negative child c refers to
// leaf -(c+1), a non negative child to another node.
type Node struct {
	Plane    int32
	Children [2]int32
}

// Leaf lists the brushes overlapping one convex region of space,
// through the LeafBrushes indirection so brushes can be shared
// between leaves.
type Leaf struct {
	FirstLeafBrush int32
	LeafBrushCount int32
}

// Brush is a convex solid, the intersection of the half spaces behind
// its sides. The first 6 sides are always the faces of its bounding
// box, Mins/Maxs cache that box for the broad phase.
type Brush struct {
	FirstBrushSide int32
	SideCount      int32
	Texture        int32
	Mins           vec.Vec3
	Maxs           vec.Vec3
}

type BrushSide struct {
	Plane   int32
	Texture int32
}

type Texture struct {
	Name         string
	Flags        int32
	ContentFlags int32
}

// CollisionBsp is the immutable collision world. It is built once by
// NewCollisionBsp and never written afterwards, so any number of
// goroutines may trace against it without synchronization.
type CollisionBsp struct {
	LoadID      uuid.UUID
	Planes      []Plane
	Nodes       []Node
	Leaves      []Leaf
	LeafBrushes []int32
	Brushes     []Brush
	BrushSides  []BrushSide
	Textures    []Texture
}
