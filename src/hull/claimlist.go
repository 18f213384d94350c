package hull

// vertexList is a doubly-linked list of vertex records threaded through
// their own prev/next fields, used for both the claimed and unclaimed
// point lists. The claimed list additionally maintains, by construction,
// the invariant that every face's outside points form a contiguous run:
// new entries are always inserted adjacent to the face's current outside
// vertex.
type vertexList struct {
	head, tail *vertex
}

// add appends v at the tail of the list.
func (l *vertexList) add(v *vertex) {
	if l.head == nil {
		l.head = v
	} else {
		l.tail.next = v
	}
	v.prev = l.tail
	v.next = nil
	l.tail = v
}

// addAll splices the external chain starting at head onto the tail of the
// list.
func (l *vertexList) addAll(head *vertex) {
	if l.head == nil {
		l.head = head
	} else {
		l.tail.next = head
	}
	head.prev = l.tail
	for v := head; v != nil; v = v.next {
		l.tail = v
	}
}

// insertBefore inserts v immediately before anchor. anchor must already be
// a member of this list.
func (l *vertexList) insertBefore(v, anchor *vertex) {
	v.prev = anchor.prev
	if anchor.prev == nil {
		l.head = v
	} else {
		anchor.prev.next = v
	}
	v.next = anchor
	anchor.prev = v
}

// delete unlinks v from the list.
func (l *vertexList) delete(v *vertex) {
	if v.prev == nil {
		l.head = v.next
	} else {
		v.prev.next = v.next
	}
	if v.next == nil {
		l.tail = v.prev
	} else {
		v.next.prev = v.prev
	}
}

// deleteRange unlinks the inclusive contiguous segment [from, to].
func (l *vertexList) deleteRange(from, to *vertex) {
	if from.prev == nil {
		l.head = to.next
	} else {
		from.prev.next = to.next
	}
	if to.next == nil {
		l.tail = from.prev
	} else {
		to.next.prev = from.prev
	}
}

// first returns the head of the list, or nil if empty.
func (l *vertexList) first() *vertex {
	return l.head
}

// isEmpty reports whether the list has no members.
func (l *vertexList) isEmpty() bool {
	return l.head == nil
}

// clear empties the list without touching the members' own prev/next
// fields (callers that need to reuse those vertices elsewhere are
// responsible for relinking them first).
func (l *vertexList) clear() {
	l.head = nil
	l.tail = nil
}
