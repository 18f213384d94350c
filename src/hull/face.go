package hull

import (
	"fmt"
	"math"
)

// faceMark classifies a face's current role in the mesh.
type faceMark int

const (
	markVisible faceMark = iota
	markNonConvex
	markDeleted
)

func (m faceMark) String() string {
	switch m {
	case markVisible:
		return "visible"
	case markNonConvex:
		return "non-convex"
	case markDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// face is a convex polygon in the evolving hull mesh: a ring of half-edges
// anchored at he0, a cached plane (normal + planeOffset), a cached
// centroid and area, a mark, and the head of the CLAIMED-list segment of
// points currently claimed by this face.
type face struct {
	he0 *halfEdge

	normal      Vec3
	planeOffset float64
	area        float64
	centroid    Vec3
	numVerts    int

	mark    faceMark
	outside *vertex

	// next threads this face onto the transient per-iteration new-faces
	// list; meaningful only between addNewFaces and the end of that
	// iteration's merge passes.
	next *face
}

// createTriangle builds a triangular face from three vertices in the
// order v0, v1, v2 (edges v0->v1, v1->v2, v2->v0) and computes its plane.
// If minArea is positive and the resulting area is smaller than it, the
// normal is stabilized using the longest edge (see computeNormal).
func createTriangle(v0, v1, v2 *vertex, minArea float64) *face {
	f := &face{}
	he0 := newHalfEdge(v1, f)
	he1 := newHalfEdge(v2, f)
	he2 := newHalfEdge(v0, f)

	he0.next, he0.prev = he1, he2
	he1.next, he1.prev = he2, he0
	he2.next, he2.prev = he0, he1

	f.he0 = he0
	f.computeNormalAndCentroid(minArea)
	return f
}

// getEdge returns he0 advanced i steps forward (i >= 0) or |i| steps
// backward (i < 0); getEdge(-1) is he0.prev.
func (f *face) getEdge(i int) *halfEdge {
	e := f.he0
	for i > 0 {
		e = e.next
		i--
	}
	for i < 0 {
		e = e.prev
		i++
	}
	return e
}

// distanceToPlane returns the signed distance from p to the face's plane;
// positive means p is on the outward side.
func (f *face) distanceToPlane(p Vec3) float64 {
	return f.normal.Dot(p) - f.planeOffset
}

func (f *face) computeCentroid() {
	var sum Vec3
	n := 0
	e := f.he0
	for {
		sum = sum.Add(e.head.point)
		n++
		e = e.next
		if e == f.he0 {
			break
		}
	}
	f.centroid = sum.Scale(1 / float64(n))
}

// computeNormal computes the face's unit normal and area as the running
// sum of triangle cross-products around the edge ring (Newell's method,
// specialized to a fan from he0's head). When minArea is positive and the
// resulting area falls below it, the normal is stabilized by projecting
// out its component along the longest edge and renormalizing, rather than
// trusting a numerically thin polygon's raw cross-product sum.
func (f *face) computeNormal(minArea float64) {
	he1 := f.he0.next
	he2 := he1.next

	p0 := f.he0.head.point
	p2 := he1.head.point
	d2 := p2.Sub(p0)

	var sum Vec3
	numVerts := 2
	for he2 != f.he0 {
		d1 := d2
		p2 = he2.head.point
		d2 = p2.Sub(p0)
		sum = sum.Add(d1.Cross(d2))

		he1 = he2
		he2 = he2.next
		numVerts++
	}
	f.numVerts = numVerts

	mag := sum.Norm()
	f.area = mag / 2
	if mag > 0 {
		f.normal = sum.Scale(1 / mag)
	} else {
		f.normal = sum
	}

	if minArea > 0 && f.area < minArea {
		f.computeStableNormal()
	}
}

// computeStableNormal re-derives the normal from the longest edge in the
// ring: it removes the component of the current (numerically unreliable)
// normal that lies along that edge's direction and renormalizes what
// remains.
func (f *face) computeStableNormal() {
	var maxEdge *halfEdge
	maxLenSqr := 0.0
	e := f.he0
	for {
		lenSqr := e.head.point.DistanceSquared(e.tail().point)
		if lenSqr > maxLenSqr {
			maxLenSqr = lenSqr
			maxEdge = e
		}
		e = e.next
		if e == f.he0 {
			break
		}
	}
	if maxEdge == nil || maxLenSqr == 0 {
		return
	}
	u := maxEdge.head.point.Sub(maxEdge.tail().point).Scale(1 / math.Sqrt(maxLenSqr))
	dot := f.normal.Dot(u)
	f.normal = f.normal.Sub(u.Scale(dot))
	f.normal.Normalize()
}

func (f *face) computeNormalAndCentroid(minArea float64) {
	f.computeNormal(minArea)
	f.computeCentroid()
	f.planeOffset = f.normal.Dot(f.centroid)
}

// checkConsistency walks the face's ring and verifies its mesh invariants:
// at least three edges, opposite pairing symmetric, the face across an
// edge distinct from this face, and prev/next ring closure.
func (f *face) checkConsistency() error {
	numEdges := 0
	e := f.he0
	for {
		if e.opposite == nil {
			return newInvariantViolation(fmt.Sprintf("half-edge %s has no opposite", f.edgeString(e)))
		}
		if e.opposite.opposite != e {
			return newInvariantViolation(fmt.Sprintf("half-edge %s: opposite.opposite != self", f.edgeString(e)))
		}
		if e.opposite.face == f {
			return newInvariantViolation(fmt.Sprintf("half-edge %s: opposite face equals self", f.edgeString(e)))
		}
		if e.next.prev != e {
			return newInvariantViolation(fmt.Sprintf("half-edge %s: next.prev != self", f.edgeString(e)))
		}
		if e.prev.next != e {
			return newInvariantViolation(fmt.Sprintf("half-edge %s: prev.next != self", f.edgeString(e)))
		}
		numEdges++
		e = e.next
		if e == f.he0 {
			break
		}
	}
	if numEdges < 3 {
		return newInvariantViolation(fmt.Sprintf("face has only %d edges", numEdges))
	}
	return nil
}

// mergeAdjacentFace absorbs the face across hedgeAdj into f, splicing the
// two edge rings into one polygon and then sweeping the merged ring for
// redundant vertices (a vertex whose two incident edges share the same
// opposite face), removing them by further splicing. It returns every
// face whose mark must become DELETED: the absorbed face, plus any faces
// absorbed via redundant-vertex cleanup.
func (f *face) mergeAdjacentFace(hedgeAdj *halfEdge) ([]*face, error) {
	oppFace := hedgeAdj.oppositeFace()
	discarded := []*face{oppFace}
	oppFace.mark = markDeleted

	hedgeOpp := hedgeAdj.opposite

	hedgeAdjPrev := hedgeAdj.prev
	hedgeAdjNext := hedgeAdj.next
	hedgeOppPrev := hedgeOpp.prev
	hedgeOppNext := hedgeOpp.next

	for hedgeAdjPrev.oppositeFace() == oppFace {
		hedgeAdjPrev = hedgeAdjPrev.prev
		hedgeOppNext = hedgeOppNext.next
	}
	for hedgeAdjNext.oppositeFace() == oppFace {
		hedgeOppPrev = hedgeOppPrev.prev
		hedgeAdjNext = hedgeAdjNext.next
	}

	for e := hedgeOppNext; e != hedgeOppPrev.next; e = e.next {
		e.face = f
	}

	if hedgeAdj == f.he0 {
		f.he0 = hedgeAdjNext
	}

	if df := f.connectHalfEdges(hedgeOppPrev, hedgeAdjNext); df != nil {
		discarded = append(discarded, df)
	}
	if df := f.connectHalfEdges(hedgeAdjPrev, hedgeOppNext); df != nil {
		discarded = append(discarded, df)
	}

	f.computeNormalAndCentroid(f.area)
	if err := f.checkConsistency(); err != nil {
		return nil, err
	}
	return discarded, nil
}

// connectHalfEdges links hedgePrev.next = hedge (and hedge.prev =
// hedgePrev), first checking whether doing so creates a redundant vertex
// -- one whose two remaining incident edges would share the same opposite
// face. If so, that vertex is spliced out and, when its opposite face was
// a triangle, that opposite face is discarded entirely and returned.
func (f *face) connectHalfEdges(hedgePrev, hedge *halfEdge) *face {
	var discardedFace *face

	if hedgePrev.oppositeFace() == hedge.oppositeFace() {
		oppFace := hedge.oppositeFace()
		var hedgeOpp *halfEdge

		if hedgePrev == f.he0 {
			f.he0 = hedge
		}
		if oppFace.numVerts == 3 {
			hedgeOpp = hedge.opposite.prev.opposite
			oppFace.mark = markDeleted
			discardedFace = oppFace
		} else {
			hedgeOpp = hedge.opposite.next
			if oppFace.he0 == hedgeOpp.prev {
				oppFace.he0 = hedgeOpp
			}
			hedgeOpp.prev = hedgeOpp.prev.prev
			hedgeOpp.prev.next = hedgeOpp
		}
		hedge.prev = hedgePrev.prev
		hedge.prev.next = hedge

		hedge.setOpposite(hedgeOpp)

		oppFace.computeNormalAndCentroid(0)
	} else {
		hedgePrev.next = hedge
		hedge.prev = hedgePrev
	}
	return discardedFace
}

// getIndices walks the ring from he0 and collects each edge's head's
// original input index.
func (f *face) getIndices() []int {
	indices := make([]int, 0, f.numVerts)
	e := f.he0
	for {
		indices = append(indices, e.head.index)
		e = e.next
		if e == f.he0 {
			break
		}
	}
	return indices
}

// edgeString identifies a half-edge by its tail/head input indices, for
// diagnostics.
func (f *face) edgeString(e *halfEdge) string {
	t := e.tail()
	if t == nil {
		return fmt.Sprintf("?-%d", e.head.index)
	}
	return fmt.Sprintf("%d-%d", t.index, e.head.index)
}

// vertexString identifies a face by the input indices of its ring, for
// diagnostics and debug logging.
func (f *face) vertexString() string {
	s := ""
	e := f.he0
	for {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("%d", e.head.index)
		e = e.next
		if e == f.he0 {
			break
		}
	}
	return s
}
