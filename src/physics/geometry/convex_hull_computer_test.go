package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func cubeCoords() []float64 {
	var coords []float64
	for _, x := range []float64{0, 1} {
		for _, y := range []float64{0, 1} {
			for _, z := range []float64{0, 1} {
				coords = append(coords, x, y, z)
			}
		}
	}
	return coords
}

func TestComputeRejectsEmptyInput(t *testing.T) {
	var c ConvexHullComputer
	shrink := c.Compute(nil, 3, 0, 0, 0)
	require.Equal(t, 0.0, shrink)
	require.Nil(t, c.Vertices)
	require.Nil(t, c.Edges)
	require.Nil(t, c.Faces)
}

func TestComputeCubeProducesAllVertices(t *testing.T) {
	var c ConvexHullComputer
	shrink := c.Compute(cubeCoords(), 3, 8, 0, 0)
	require.Equal(t, 0.0, shrink)
	require.Len(t, c.Vertices, 8)
	require.NotEmpty(t, c.Faces)
	require.NotEmpty(t, c.Edges)

	for _, faceEdgeIdx := range c.Faces {
		start := &c.Edges[faceEdgeIdx]
		e := start
		n := 0
		for {
			require.NotNil(t, e.GetReverse(), "face edge %d has no reverse", faceEdgeIdx)
			e = e.GetNextEdgeOfFace()
			n++
			require.Less(t, n, 20, "face ring failed to close")
			if e == start {
				break
			}
		}
		require.GreaterOrEqual(t, n, 3)
	}
}

func TestComputeDropsInteriorPoint(t *testing.T) {
	coords := append(cubeCoords(), 0.5, 0.5, 0.5)
	var c ConvexHullComputer
	c.Compute(coords, 3, 9, 0, 0)
	require.Len(t, c.Vertices, 8)
}

func TestComputeShrinkClampsAndMovesVerticesInward(t *testing.T) {
	var c ConvexHullComputer
	applied := c.Compute(cubeCoords(), 3, 8, 10, 0.05)
	require.InDelta(t, 0.05, applied, 1e-12)

	for _, v := range c.Vertices {
		// Every vertex moves the clamped shrink amount towards the interior
		// along its averaged corner normal, so no coordinate stays on the
		// [0,1] cube boundary; the X coordinate is checked here.
		require.NotEqual(t, 0.0, v.X)
		require.NotEqual(t, 1.0, v.X)
	}
}

func TestComputeStridePicksThreeOfMoreFields(t *testing.T) {
	// stride 4 packs an extra field (e.g. a padding/weight component)
	// after each point's x,y,z.
	coords := []float64{
		0, 0, 0, 99,
		1, 0, 0, 99,
		0, 1, 0, 99,
		0, 0, 1, 99,
	}
	var c ConvexHullComputer
	c.Compute(coords, 4, 4, 0, 0)
	require.Len(t, c.Vertices, 4)
}
