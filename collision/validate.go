// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"bspcollide/collision/diag"
)

// NewCollisionBsp bundles loader output into an immutable collision
// world. Every cross array index the trace and mesh code follow is
// checked here once, the trace code trusts them afterwards;
// BrushSide.Texture is not checked. The loader must have normalized all plane
// normals to unit length.
func NewCollisionBsp(planes []Plane, nodes []Node, leaves []Leaf, leafBrushes []int32, brushes []Brush, brushSides []BrushSide, textures []Texture) (*CollisionBsp, error) {
	if len(nodes) == 0 {
		return nil, errors.New("bsp has no root node")
	}
	for i, n := range nodes {
		if n.Plane < 0 || int(n.Plane) >= len(planes) {
			return nil, errors.Errorf("node %d: plane %d out of range", i, n.Plane)
		}
		for _, c := range n.Children {
			if c >= 0 {
				if int(c) >= len(nodes) {
					return nil, errors.Errorf("node %d: child node %d out of range", i, c)
				}
			} else if int(-(c+1)) >= len(leaves) {
				return nil, errors.Errorf("node %d: child leaf %d out of range", i, -(c + 1))
			}
		}
	}
	for i, l := range leaves {
		if l.FirstLeafBrush < 0 || l.LeafBrushCount < 0 ||
			int(l.FirstLeafBrush)+int(l.LeafBrushCount) > len(leafBrushes) {
			return nil, errors.Errorf("leaf %d: brushes [%d,%d) out of range",
				i, l.FirstLeafBrush, l.FirstLeafBrush+l.LeafBrushCount)
		}
	}
	for i, b := range leafBrushes {
		if b < 0 || int(b) >= len(brushes) {
			return nil, errors.Errorf("leaf brush %d: brush %d out of range", i, b)
		}
	}
	for i, b := range brushes {
		if b.FirstBrushSide < 0 || b.SideCount < 0 ||
			int(b.FirstBrushSide)+int(b.SideCount) > len(brushSides) {
			return nil, errors.Errorf("brush %d: sides [%d,%d) out of range",
				i, b.FirstBrushSide, b.FirstBrushSide+b.SideCount)
		}
		if b.Texture < 0 || int(b.Texture) >= len(textures) {
			return nil, errors.Errorf("brush %d: texture %d out of range", i, b.Texture)
		}
	}
	for i, s := range brushSides {
		if s.Plane < 0 || int(s.Plane) >= len(planes) {
			return nil, errors.Errorf("brush side %d: plane %d out of range", i, s.Plane)
		}
	}

	bsp := &CollisionBsp{
		LoadID:      uuid.Must(uuid.NewV7()),
		Planes:      planes,
		Nodes:       nodes,
		Leaves:      leaves,
		LeafBrushes: leafBrushes,
		Brushes:     brushes,
		BrushSides:  brushSides,
		Textures:    textures,
	}
	diag.Printf("collision: bsp %s: %d nodes, %d leaves, %d brushes\n",
		bsp.LoadID, len(nodes), len(leaves), len(brushes))
	return bsp, nil
}
