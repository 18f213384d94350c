package hull

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func indexSet(faces [][]int) map[int]bool {
	set := map[int]bool{}
	for _, f := range faces {
		for _, idx := range f {
			set[idx] = true
		}
	}
	return set
}

func TestBuildHullTetrahedron(t *testing.T) {
	points := []Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 1, 0),
		NewVec3(0, 0, 1),
	}
	qh, err := New(points)
	require.NoError(t, err)
	require.NoError(t, qh.BuildHull())

	faces := qh.Faces()
	require.Len(t, faces, 4)
	for _, f := range faces {
		require.Len(t, f, 3)
	}
	require.Equal(t, map[int]bool{0: true, 1: true, 2: true, 3: true}, indexSet(faces))
	require.True(t, qh.Check(nil))
}

func TestBuildHullCubeAllVerticesOnHull(t *testing.T) {
	var points []Vec3
	for _, x := range []float64{0, 1} {
		for _, y := range []float64{0, 1} {
			for _, z := range []float64{0, 1} {
				points = append(points, NewVec3(x, y, z))
			}
		}
	}
	qh, err := New(points)
	require.NoError(t, err)
	require.NoError(t, qh.BuildHull())

	faces := qh.Faces()
	require.NotEmpty(t, faces)
	seen := indexSet(faces)
	for i := 0; i < 8; i++ {
		require.Truef(t, seen[i], "vertex %d missing from hull", i)
	}
	require.True(t, qh.Check(nil))
}

func TestBuildHullDropsInteriorPoint(t *testing.T) {
	var points []Vec3
	for _, x := range []float64{0, 1} {
		for _, y := range []float64{0, 1} {
			for _, z := range []float64{0, 1} {
				points = append(points, NewVec3(x, y, z))
			}
		}
	}
	interiorIndex := len(points)
	points = append(points, NewVec3(0.5, 0.5, 0.5))

	qh, err := New(points)
	require.NoError(t, err)
	require.NoError(t, qh.BuildHull())

	seen := indexSet(qh.Faces())
	require.False(t, seen[interiorIndex], "interior point must not appear on the hull")
}

func TestBuildHullRejectsCoincidentPoints(t *testing.T) {
	p := NewVec3(1, 2, 3)
	points := []Vec3{p, p, p, p}
	qh, err := New(points)
	require.NoError(t, err)

	err = qh.BuildHull()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrCoincident))
}

func TestBuildHullRejectsColinearPoints(t *testing.T) {
	points := []Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, 0, 0),
		NewVec3(2, 0, 0),
		NewVec3(3, 0, 0),
	}
	qh, err := New(points)
	require.NoError(t, err)

	err = qh.BuildHull()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrColinear))
}

func TestBuildHullRejectsCoplanarPoints(t *testing.T) {
	points := []Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 1, 0),
		NewVec3(1, 1, 0),
	}
	qh, err := New(points)
	require.NoError(t, err)

	err = qh.BuildHull()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrCoplanar))
}

func TestNewFromXYZRejectsBadStride(t *testing.T) {
	_, err := NewFromXYZ([]float64{0, 0, 0, 1, 1})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedInput))
}

func TestNewRejectsTooFewPoints(t *testing.T) {
	_, err := New([]Vec3{NewVec3(0, 0, 0), NewVec3(1, 0, 0)})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedInput))
}

func TestNewFromXYZBuildsSameHullAsNew(t *testing.T) {
	coords := []float64{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		0.9, 0.9, 0.9,
	}
	qh, err := NewFromXYZ(coords)
	require.NoError(t, err)
	require.NoError(t, qh.BuildHull())
	require.True(t, qh.Check(nil))
}

func TestExplicitToleranceOverridesAutomatic(t *testing.T) {
	points := []Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 1, 0),
		NewVec3(0, 0, 1),
	}
	qh, err := New(points, WithExplicitTolerance(1e-3))
	require.NoError(t, err)
	require.NoError(t, qh.BuildHull())
	require.Equal(t, 1e-3, qh.DistanceTolerance())
}

func TestSetDebugToggle(t *testing.T) {
	qh, err := New([]Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 1, 0),
		NewVec3(0, 0, 1),
	})
	require.NoError(t, err)
	require.False(t, qh.Debug())
	qh.SetDebug(true)
	require.True(t, qh.Debug())
	require.NoError(t, qh.BuildHull())
}
