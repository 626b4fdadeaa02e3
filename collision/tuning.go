// SPDX-License-Identifier: GPL-2.0-or-later

package collision

// Tuning bundles the numeric biases of the trace and mesh code.
type Tuning struct {
	// Epsilon keeps resolved positions about 1/8 unit away from the
	// surface so they stay outside it after float rounding and network
	// coordinate snapping.
	Epsilon float32
	// MeshEpsilon is the inside-all-planes slack of the vertex filter.
	MeshEpsilon float32
	// MeshMinCrossSquared rejects near parallel plane pairs.
	MeshMinCrossSquared float32
	// MeshMinDenom rejects plane triples without a unique meet point.
	MeshMinDenom float32
}

func DefaultTuning() Tuning {
	return Tuning{
		Epsilon:             0.125,
		MeshEpsilon:         0.01,
		MeshMinCrossSquared: 1e-4,
		MeshMinDenom:        1e-6,
	}
}
