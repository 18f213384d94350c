package hull

// faceList is a singly-linked list of faces threaded through the
// transient face.next field. It exists only for the duration of one
// main-loop iteration, tracking the faces erected around the current
// horizon so the two merge passes and the unclaimed-point resolution can
// walk them. The face.next field must not be relied upon outside that
// single iteration; createTriangle and mergeAdjacentFace never touch it.
type faceList struct {
	head, tail *face
}

// add appends f at the tail of the list.
func (l *faceList) add(f *face) {
	if l.head == nil {
		l.head = f
	} else {
		l.tail.next = f
	}
	f.next = nil
	l.tail = f
}

// first returns the head of the list, or nil if empty.
func (l *faceList) first() *face {
	return l.head
}
