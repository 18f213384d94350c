package hull

// vertex represents one input point together with the bookkeeping the
// Quickhull driver needs while the hull is under construction: its slot in
// whichever claim list currently holds it, and the face (if any) that has
// claimed it as an outside point.
type vertex struct {
	point Vec3
	index int

	prev, next *vertex
	face       *face
}

func newVertex(index int, point Vec3) *vertex {
	return &vertex{point: point, index: index}
}
