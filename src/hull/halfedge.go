package hull

// halfEdge is one oriented edge of a face's boundary ring. Its head is the
// vertex it points to; its tail is prev.head. Two half-edges across the
// same undirected edge are paired through opposite, symmetrically.
type halfEdge struct {
	head *vertex
	face *face

	next, prev, opposite *halfEdge
}

func newHalfEdge(head *vertex, f *face) *halfEdge {
	return &halfEdge{head: head, face: f}
}

// tail returns the origin vertex of the edge, i.e. prev's head.
func (e *halfEdge) tail() *vertex {
	if e.prev == nil {
		return nil
	}
	return e.prev.head
}

// setOpposite pairs e and o symmetrically.
func (e *halfEdge) setOpposite(o *halfEdge) {
	e.opposite = o
	o.opposite = e
}

// oppositeFace returns the face across this edge, or nil if e has no
// opposite yet (only true transiently during mesh rewiring).
func (e *halfEdge) oppositeFace() *face {
	if e.opposite == nil {
		return nil
	}
	return e.opposite.face
}

// length returns the Euclidean length of the edge.
func (e *halfEdge) length() float64 {
	t := e.tail()
	if t == nil {
		return -1
	}
	return e.head.point.Distance(t.point)
}
