package hull

import "math"

// extrema records, for each axis, the input vertex attaining the maximum
// and minimum coordinate along that axis.
type extrema struct {
	maxVtxs [3]*vertex
	minVtxs [3]*vertex
}

// computeExtrema scans vertices once and returns the six extremal
// vertices, two per axis. vertices must be non-empty.
func computeExtrema(vertices []*vertex) extrema {
	var ext extrema
	for i := 0; i < 3; i++ {
		ext.maxVtxs[i] = vertices[0]
		ext.minVtxs[i] = vertices[0]
	}
	maxP := vertices[0].point
	minP := vertices[0].point
	for _, v := range vertices[1:] {
		p := v.point
		switch {
		case p.X > maxP.X:
			maxP.X = p.X
			ext.maxVtxs[0] = v
		case p.X < minP.X:
			minP.X = p.X
			ext.minVtxs[0] = v
		}
		switch {
		case p.Y > maxP.Y:
			maxP.Y = p.Y
			ext.maxVtxs[1] = v
		case p.Y < minP.Y:
			minP.Y = p.Y
			ext.minVtxs[1] = v
		}
		switch {
		case p.Z > maxP.Z:
			maxP.Z = p.Z
			ext.maxVtxs[2] = v
		case p.Z < minP.Z:
			minP.Z = p.Z
			ext.minVtxs[2] = v
		}
	}
	return ext
}

// computeTolerance derives the single distance tolerance used throughout
// the engine from the coordinate magnitudes of the extremal points:
// tol = 3*eps*sum_over_axes(max(|max|,|min|)).
func computeTolerance(ext extrema) float64 {
	sum := 0.0
	for i := 0; i < 3; i++ {
		sum += math.Max(math.Abs(ext.maxVtxs[i].point.Get(i)), math.Abs(ext.minVtxs[i].point.Get(i)))
	}
	return 3 * machineEpsilon * sum
}
