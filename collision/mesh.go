// SPDX-License-Identifier: GPL-2.0-or-later

package collision

import (
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/stat/combin"

	"bspcollide/collision/diag"
	"bspcollide/math/vec"
)

// Mesh is the visualization geometry of one brush: the corner cloud
// of its polytope with per vertex normals pointing away from the
// centroid.
// TODO: run the cloud through a convex hull and fill Indices with a
// triangle list.
type Mesh struct {
	Vertices []vec.Vec3
	Normals  []vec.Vec3
	Indices  []int32
}

// VerticesFromIntersectingPlanes returns the corner points of the
// convex polytope bounded by planes. Planes are taken in the inward
// form n*p + d <= 0, the opposite sign of what the bsp arrays and the
// trace code use; BrushMeshes flips the sign when collecting brush
// sides.
func VerticesFromIntersectingPlanes(planes []Plane) []vec.Vec3 {
	return verticesFromIntersectingPlanes(planes, DefaultTuning())
}

func verticesFromIntersectingPlanes(planes []Plane, tun Tuning) []vec.Vec3 {
	if len(planes) < 3 {
		return nil
	}
	var result []vec.Vec3
	for _, c := range combin.Combinations(len(planes), 3) {
		p1, p2, p3 := &planes[c[0]], &planes[c[1]], &planes[c[2]]

		c23 := vec.Cross(p2.Normal, p3.Normal)
		c31 := vec.Cross(p3.Normal, p1.Normal)
		c12 := vec.Cross(p1.Normal, p2.Normal)
		if vec.Dot(c23, c23) < tun.MeshMinCrossSquared ||
			vec.Dot(c31, c31) < tun.MeshMinCrossSquared ||
			vec.Dot(c12, c12) < tun.MeshMinCrossSquared {
			continue
		}

		denom := vec.Dot(p1.Normal, c23)
		if math32.Abs(denom) <= tun.MeshMinDenom {
			diag.DPrintf("mesh: planes %d %d %d have no meet point\n", c[0], c[1], c[2])
			continue
		}

		//       d1(n2 x n3) + d2(n3 x n1) + d3(n1 x n2)
		// p = - ----------------------------------------
		//                n1 . (n2 x n3)
		point := vec.Add(
			vec.Add(c23.Scale(p1.Dist), c31.Scale(p2.Dist)),
			c12.Scale(p3.Dist),
		).Scale(-1 / denom)

		if !insidePlanes(planes, point, tun.MeshEpsilon) {
			continue
		}
		result = append(result, point)
	}
	return result
}

func insidePlanes(planes []Plane, p vec.Vec3, epsilon float32) bool {
	for i := range planes {
		if vec.Dot(planes[i].Normal, p)+planes[i].Dist-epsilon > 0 {
			return false
		}
	}
	return true
}

// BrushMeshes builds one Mesh per solid brush referenced by a leaf.
// Brushes shared between leaves are emitted once; brushes whose planes
// yield no vertices get no Mesh.
func BrushMeshes(bsp *CollisionBsp) []Mesh {
	return brushMeshes(bsp, DefaultTuning())
}

func brushMeshes(bsp *CollisionBsp, tun Tuning) []Mesh {
	var result []Mesh
	done := make([]bool, len(bsp.Brushes))

	for l := range bsp.Leaves {
		leaf := &bsp.Leaves[l]
		for i := int32(0); i < leaf.LeafBrushCount; i++ {
			index := bsp.LeafBrushes[leaf.FirstLeafBrush+i]
			if done[index] {
				continue
			}
			done[index] = true

			brush := &bsp.Brushes[index]
			if bsp.Textures[brush.Texture].ContentFlags&ContentsSolid == 0 {
				continue
			}

			planes := make([]Plane, 0, brush.SideCount)
			for j := int32(0); j < brush.SideCount; j++ {
				side := &bsp.BrushSides[brush.FirstBrushSide+j]
				pl := bsp.Planes[side.Plane]
				// the reconstructor wants inward planes
				pl.Dist = -pl.Dist
				planes = append(planes, pl)
			}

			vertices := verticesFromIntersectingPlanes(planes, tun)
			if len(vertices) == 0 {
				continue
			}
			result = append(result, meshFromCloud(vertices))
		}
	}
	return result
}

func meshFromCloud(vertices []vec.Vec3) Mesh {
	var centroid vec.Vec3
	for _, v := range vertices {
		centroid = vec.Add(centroid, v)
	}
	centroid = centroid.Scale(1 / float32(len(vertices)))

	normals := make([]vec.Vec3, len(vertices))
	for i, v := range vertices {
		n := vec.Sub(v, centroid)
		normals[i] = n.Normalize()
	}
	return Mesh{Vertices: vertices, Normals: normals}
}
