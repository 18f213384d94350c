// Package geometry adapts hedron's incremental quickhull engine to a
// Bullet-style ConvexHullComputer API: a flat, strided coordinate buffer
// in, a renumbered vertex/edge/face mesh out, with an optional inward
// shrink for use as a collision margin.
package geometry

import "hedron/src/hull"

// ConvexHullComputer computes and holds the convex hull of a point set,
// renumbered to only the points that survived onto the hull, with the
// resulting boundary exposed as a directed-edge mesh.
type ConvexHullComputer struct {
	Vertices []Vector3
	Edges    []Edge
	Faces    []int
}

// Compute builds the convex hull of count points, packed stride floats
// apart starting at coords (so callers can carry extra per-point fields
// alongside x, y, z). When shrink is positive, the hull is additionally
// contracted inward along each vertex's averaged incident face normals by
// min(shrink, shrinkClamp) (shrinkClamp <= 0 means unclamped); Compute
// returns the shrink distance actually applied.
func (c *ConvexHullComputer) Compute(coords []float64, stride int, count int, shrink float64, shrinkClamp float64) float64 {
	c.Vertices = nil
	c.Edges = nil
	c.Faces = nil

	if count <= 0 || stride <= 0 {
		return 0
	}

	points := make([]hull.Vec3, count)
	for i := 0; i < count; i++ {
		base := i * stride
		points[i] = hull.NewVec3(coords[base], coords[base+1], coords[base+2])
	}

	qh, err := hull.New(points)
	if err != nil {
		return 0
	}
	if err := qh.BuildHull(); err != nil {
		return 0
	}

	faces := qh.HullFaces()

	// Renumber: only points that appear on some hull face become output
	// vertices, in first-seen order across the face list.
	remap := make(map[int]int)
	for _, f := range faces {
		for _, idx := range f.Indices {
			if _, ok := remap[idx]; !ok {
				remap[idx] = len(c.Vertices)
				c.Vertices = append(c.Vertices, vec3ToVector3(qh.Point(idx)))
			}
		}
	}

	appliedShrink := 0.0
	if shrink > 0 {
		appliedShrink = shrink
		if shrinkClamp > 0 && appliedShrink > shrinkClamp {
			appliedShrink = shrinkClamp
		}
		shrinkVertices(c.Vertices, faces, remap, appliedShrink)
	}

	c.buildEdges(faces, remap)
	return appliedShrink
}

// buildEdges lays out one Edge per (face, boundary-edge) pair, threads
// faceNext around each face's ring, vertexNext across edges sharing a
// source vertex in the order they're encountered, and pairs up reverse
// edges by their (source, target) endpoints.
func (c *ConvexHullComputer) buildEdges(faces []hull.HullFace, remap map[int]int) {
	type key struct{ a, b int }
	byEndpoints := make(map[key]int)
	lastOfVertex := make(map[int]int)

	for _, f := range faces {
		n := len(f.Indices)
		if n == 0 {
			continue
		}
		faceStart := len(c.Edges)
		c.Faces = append(c.Faces, faceStart)

		for i := 0; i < n; i++ {
			src := remap[f.Indices[i]]
			dst := remap[f.Indices[(i+1)%n]]
			c.Edges = append(c.Edges, Edge{sourceVertex: src, targetVertex: dst})
		}
		for i := 0; i < n; i++ {
			idx := faceStart + i
			c.Edges[idx].faceNext = &c.Edges[faceStart+(i+1)%n]

			src := c.Edges[idx].sourceVertex
			if prev, ok := lastOfVertex[src]; ok {
				c.Edges[prev].vertexNext = &c.Edges[idx]
			}
			lastOfVertex[src] = idx

			byEndpoints[key{c.Edges[idx].targetVertex, src}] = idx
		}
	}

	for i := range c.Edges {
		if j, ok := byEndpoints[key{c.Edges[i].sourceVertex, c.Edges[i].targetVertex}]; ok {
			c.Edges[i].reverse = &c.Edges[j]
		}
	}
}

func vec3ToVector3(v hull.Vec3) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// shrinkVertices moves each output vertex inward along the average of its
// incident hull faces' unit normals, scaled by amount. This approximates
// (rather than exactly reproduces) shrinking the hull by offsetting every
// face plane inward and re-intersecting, which is a materially more
// expensive computation than a physics engine's collision margin needs.
func shrinkVertices(vertices []Vector3, faces []hull.HullFace, remap map[int]int, amount float64) {
	sums := make([]hull.Vec3, len(vertices))
	counts := make([]int, len(vertices))

	for _, f := range faces {
		for _, idx := range f.Indices {
			v := remap[idx]
			sums[v] = sums[v].Add(f.Normal)
			counts[v]++
		}
	}

	for i, v := range vertices {
		if counts[i] == 0 {
			continue
		}
		dir := sums[i].Scale(1 / float64(counts[i]))
		dir.Normalize()
		vertices[i] = Vector3{
			X: v.X - dir.X*amount,
			Y: v.Y - dir.Y*amount,
			Z: v.Z - dir.Z*amount,
		}
	}
}
