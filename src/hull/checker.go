package hull

import (
	"fmt"
	"io"
)

// oppFaceDistance returns the distance from the centroid of the face
// opposite e (across e) to e's own face's plane. A strictly negative value
// means that centroid lies on the inward side of the plane, i.e. the two
// faces meeting at e are locally convex.
func oppFaceDistance(e *halfEdge) float64 {
	return e.face.distanceToPlane(e.opposite.face.centroid)
}

// checkFaceConvexity verifies that f is locally convex against every
// neighboring face and that its own plane fits its vertices within tol. It
// writes one diagnostic line per violation to sink (when non-nil) and
// returns false if f fails to check out.
func (qh *QuickHull) checkFaceConvexity(f *face, tol float64, sink io.Writer) bool {
	ok := true
	e := f.he0
	for {
		dist := oppFaceDistance(e)
		if dist > tol {
			if sink != nil {
				fmt.Fprintf(sink, "face %s: non-convex with opposite edge %s, dist=%g\n",
					f.vertexString(), f.edgeString(e), dist)
			}
			ok = false
		}
		e = e.next
		if e == f.he0 {
			break
		}
	}

	e = f.he0
	for {
		d := f.distanceToPlane(e.head.point)
		if d < -tol || d > tol {
			if sink != nil {
				fmt.Fprintf(sink, "face %s: vertex %d off-plane by %g\n", f.vertexString(), e.head.index, d)
			}
			ok = false
		}
		e = e.next
		if e == f.he0 {
			break
		}
	}
	return ok
}

// checkFaces runs checkFaceConvexity over every visible face in faces.
func (qh *QuickHull) checkFaces(faces []*face, tol float64, sink io.Writer) bool {
	ok := true
	for _, f := range faces {
		if f.mark != markVisible {
			continue
		}
		if !qh.checkFaceConvexity(f, tol, sink) {
			ok = false
		}
	}
	return ok
}

// checkPointsInside verifies that every point in the original input lies on
// the inward side of every visible face's plane, within pointTol. This is
// the check that actually catches a point left outside the hull; local
// face-pair convexity alone cannot.
func (qh *QuickHull) checkPointsInside(faces []*face, pointTol float64, sink io.Writer) bool {
	ok := true
	for _, v := range qh.pointBuffer {
		for _, f := range faces {
			if f.mark != markVisible {
				continue
			}
			d := f.distanceToPlane(v.point)
			if d > pointTol {
				if sink != nil {
					fmt.Fprintf(sink, "point %d: outside face %s by %g\n", v.index, f.vertexString(), d)
				}
				ok = false
			}
		}
	}
	return ok
}

// Check performs a full validation of the current hull: every face's
// internal ring consistency (face.checkConsistency), local convexity and
// planarity of every face pair at the active distance tolerance, and
// inclusion of every input point within 10x that tolerance of every
// visible face's plane. Diagnostics are written to sink when it is
// non-nil; sink may be nil to silently compute the boolean result.
func (qh *QuickHull) Check(sink io.Writer) bool {
	ok := true
	for _, f := range qh.faces {
		if f.mark != markVisible {
			continue
		}
		if err := f.checkConsistency(); err != nil {
			if sink != nil {
				fmt.Fprintf(sink, "face %s: %v\n", f.vertexString(), err)
			}
			ok = false
		}
	}
	if !qh.checkFaces(qh.faces, qh.tolerance, sink) {
		ok = false
	}
	if !qh.checkPointsInside(qh.faces, 10*qh.tolerance, sink) {
		ok = false
	}
	return ok
}
