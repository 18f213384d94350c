package geometry

// Edge is one directed boundary edge of a computed convex hull face,
// reconstructed by ConvexHullComputer from the vertex rings QuickHull
// returns. faceNext walks the ring of the face this edge bounds; vertexNext
// chains together every edge that shares this edge's source vertex, in the
// order Compute discovered them (not a true angular fan order, since
// ConvexHullComputer.Faces does not expose per-vertex adjacency); reverse
// is this edge's counterpart on the neighboring face, when one is known.
type Edge struct {
	faceNext, vertexNext *Edge
	reverse              *Edge
	sourceVertex         int
	targetVertex         int
}

// GetSourceVertex returns the vertex this edge originates from.
func (e Edge) GetSourceVertex() int {
	return e.sourceVertex
}

// GetTargetVertex returns the vertex this edge points to.
func (e Edge) GetTargetVertex() int {
	return e.targetVertex
}

// GetNextEdgeOfVertex returns the next edge originating at the same source
// vertex, or nil if e is the last one recorded.
func (e *Edge) GetNextEdgeOfVertex() *Edge {
	return e.vertexNext
}

// GetNextEdgeOfFace returns the next edge around the face e bounds. The
// ring is circular: the last edge of a face leads back to its first.
func (e *Edge) GetNextEdgeOfFace() *Edge {
	return e.faceNext
}

// GetReverse returns e's counterpart on the neighboring face, or nil if
// the owning face's neighbor across this edge was not itself a hull face
// (should not happen for a consistent hull, but Compute does not assert
// it here).
func (e *Edge) GetReverse() *Edge {
	return e.reverse
}
