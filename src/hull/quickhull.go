package hull

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// mergeType selects which of the two non-convexity tests doAdjacentMerge
// applies: faces erected around a new point are first merged only where
// the smaller face's centroid is not clearly below the larger face's plane
// (mergeNonConvexWRTLargerFace), and anything still marked non-convex
// afterward gets a second pass that merges wherever either face's centroid
// is not clearly below the other's plane (mergeNonConvex).
type mergeType int

const (
	mergeNonConvexWRTLargerFace mergeType = iota
	mergeNonConvex
)

// QuickHull computes the convex hull of a point set in R^3 using the
// incremental quickhull algorithm (Barber, Dobkin & Huhdanpaa, 1996), in
// the formulation popularized by John Lloyd's QuickHull3D reference port:
// an initial non-degenerate tetrahedron is grown one point at a time, each
// new point replacing the faces it can see with a fan of new triangles,
// which are then merged back into their neighbors wherever the result
// would otherwise be non-convex.
type QuickHull struct {
	pointBuffer []*vertex
	numPoints   int

	explicitTolerance float64
	tolerance         float64

	faces []*face

	claimed   vertexList
	unclaimed vertexList
	newFaces  faceList

	debug  bool
	logger *zap.Logger
}

// New constructs a QuickHull over points, ready for BuildHull. At least
// four points are required.
func New(points []Vec3, opts ...Option) (*QuickHull, error) {
	if len(points) < 4 {
		return nil, fmt.Errorf("%w: need at least 4 points, got %d", ErrMalformedInput, len(points))
	}
	qh := &QuickHull{
		explicitTolerance: AutomaticTolerance,
		logger:            newNopLogger(),
	}
	qh.pointBuffer = make([]*vertex, len(points))
	for i, p := range points {
		qh.pointBuffer[i] = newVertex(i, p)
	}
	qh.numPoints = len(points)
	for _, opt := range opts {
		opt(qh)
	}
	return qh, nil
}

// NewFromXYZ constructs a QuickHull from a flat x0,y0,z0,x1,y1,z1,...
// coordinate slice, whose length must be a multiple of 3.
func NewFromXYZ(coords []float64, opts ...Option) (*QuickHull, error) {
	if len(coords)%3 != 0 {
		return nil, fmt.Errorf("%w: coordinate count %d is not a multiple of 3", ErrMalformedInput, len(coords))
	}
	n := len(coords) / 3
	points := make([]Vec3, n)
	for i := 0; i < n; i++ {
		points[i] = NewVec3(coords[3*i], coords[3*i+1], coords[3*i+2])
	}
	return New(points, opts...)
}

// SetExplicitDistanceTolerance overrides the automatically derived
// tolerance for subsequent builds; pass AutomaticTolerance to restore
// automatic computation from the input's coordinate magnitudes.
func (qh *QuickHull) SetExplicitDistanceTolerance(tol float64) {
	qh.explicitTolerance = tol
}

// DistanceTolerance returns the tolerance in effect for the most recent
// build. Before BuildHull has run it returns 0, whether or not an explicit
// tolerance was set.
func (qh *QuickHull) DistanceTolerance() float64 {
	return qh.tolerance
}

// SetDebug enables or disables verbose iteration tracing.
func (qh *QuickHull) SetDebug(enabled bool) {
	qh.debug = enabled
}

// Debug reports whether iteration tracing is enabled.
func (qh *QuickHull) Debug() bool {
	return qh.debug
}

// Faces returns, for each visible face of the built hull, the input point
// indices of its vertices in ring order.
func (qh *QuickHull) Faces() [][]int {
	out := make([][]int, 0, len(qh.faces))
	for _, f := range qh.faces {
		if f.mark == markVisible {
			out = append(out, f.getIndices())
		}
	}
	return out
}

// HullFace describes one visible face's geometry: its vertex indices in
// ring order, its outward unit normal, and its plane offset (normal.Dot(p)
// == offset for every point p on the plane).
type HullFace struct {
	Indices []int
	Normal  Vec3
	Offset  float64
}

// HullFaces returns the full plane geometry of every visible face, for
// callers that need more than vertex connectivity (e.g. computing an
// inward-shrunk hull for use as a collision margin).
func (qh *QuickHull) HullFaces() []HullFace {
	out := make([]HullFace, 0, len(qh.faces))
	for _, f := range qh.faces {
		if f.mark == markVisible {
			out = append(out, HullFace{
				Indices: f.getIndices(),
				Normal:  f.normal,
				Offset:  f.planeOffset,
			})
		}
	}
	return out
}

// Point returns the coordinates of input point i.
func (qh *QuickHull) Point(i int) Vec3 {
	return qh.pointBuffer[i].point
}

// NumPoints returns the number of input points supplied to New/NewFromXYZ.
func (qh *QuickHull) NumPoints() int {
	return qh.numPoints
}

// computeMaxAndMin scans the input for the six extremal vertices used to
// seed the initial simplex and derive the distance tolerance.
func (qh *QuickHull) computeMaxAndMin() extrema {
	return computeExtrema(qh.pointBuffer)
}

// BuildHull runs the full incremental quickhull algorithm: it builds an
// initial non-degenerate simplex, then repeatedly adds the point farthest
// outside the current hull until none remain, merging away faces that
// become non-convex at each step. It returns ErrCoincident, ErrColinear,
// or ErrCoplanar if the input is too degenerate to admit a 3D hull.
func (qh *QuickHull) BuildHull() error {
	ext := qh.computeMaxAndMin()
	if qh.explicitTolerance >= 0 {
		qh.tolerance = qh.explicitTolerance
	} else {
		qh.tolerance = computeTolerance(ext)
	}

	if err := qh.createInitialSimplex(ext); err != nil {
		return err
	}

	for {
		eyeVtx := qh.nextPointToAdd()
		if eyeVtx == nil {
			break
		}
		if err := qh.addPointToHull(eyeVtx); err != nil {
			return err
		}
	}
	return nil
}

// createInitialSimplex builds the starting tetrahedron: pick
// the coordinate axis of greatest range and take its two extremal points as
// v0, v1; pick v2 as the point farthest from the line v0-v1; pick v3 as the
// point farthest (in absolute value) from the plane through v0, v1, v2;
// then orient the four triangular faces so v3 lies strictly inside the
// base face's plane.
func (qh *QuickHull) createInitialSimplex(ext extrema) error {
	tol := qh.tolerance

	maxAxis := 0
	maxRange := 0.0
	for i := 0; i < 3; i++ {
		r := ext.maxVtxs[i].point.Get(i) - ext.minVtxs[i].point.Get(i)
		if r > maxRange {
			maxRange = r
			maxAxis = i
		}
	}
	if maxRange <= tol {
		return ErrCoincident
	}

	v0 := ext.minVtxs[maxAxis]
	v1 := ext.maxVtxs[maxAxis]

	lineDir := v1.point.Sub(v0.point).Normalized()
	var v2 *vertex
	maxDistSq := 0.0
	for _, v := range qh.pointBuffer {
		if v == v0 || v == v1 {
			continue
		}
		d := v.point.Sub(v0.point)
		perp := d.Sub(lineDir.Scale(d.Dot(lineDir)))
		distSq := perp.NormSquared()
		if distSq > maxDistSq {
			maxDistSq = distSq
			v2 = v
		}
	}
	if v2 == nil || math.Sqrt(maxDistSq) <= 100*tol {
		return ErrColinear
	}

	// normal is already perpendicular to v1-v0 by construction of the cross
	// product, so no re-orthogonalization against the line direction is
	// needed here.
	normal := v1.point.Sub(v0.point).Cross(v2.point.Sub(v0.point))
	normal.Normalize()
	planeOffset := normal.Dot(v0.point)

	var v3 *vertex
	maxDist := 0.0
	for _, v := range qh.pointBuffer {
		if v == v0 || v == v1 || v == v2 {
			continue
		}
		d := math.Abs(normal.Dot(v.point) - planeOffset)
		if d > maxDist {
			maxDist = d
			v3 = v
		}
	}
	if v3 == nil || maxDist <= 100*tol {
		return ErrCoplanar
	}

	if normal.Dot(v3.point)-planeOffset > 0 {
		// v3 would land on the positive side of (v0,v1,v2); flip the base
		// triangle's winding so it instead lands strictly inside.
		v0, v1 = v1, v0
	}

	tris := [4]*face{
		createTriangle(v0, v1, v2, 0),
		createTriangle(v3, v1, v0, 0),
		createTriangle(v3, v2, v1, 0),
		createTriangle(v3, v0, v2, 0),
	}
	for _, t := range tris {
		t.mark = markVisible
	}

	tris[0].getEdge(0).setOpposite(tris[1].getEdge(1))
	tris[0].getEdge(1).setOpposite(tris[2].getEdge(1))
	tris[0].getEdge(2).setOpposite(tris[3].getEdge(1))
	tris[1].getEdge(2).setOpposite(tris[3].getEdge(0))
	tris[1].getEdge(0).setOpposite(tris[2].getEdge(2))
	tris[2].getEdge(0).setOpposite(tris[3].getEdge(2))

	qh.faces = append(qh.faces, tris[0], tris[1], tris[2], tris[3])

	for _, v := range qh.pointBuffer {
		if v == v0 || v == v1 || v == v2 || v == v3 {
			continue
		}
		var maxFace *face
		best := tol
		for _, f := range tris {
			d := f.distanceToPlane(v.point)
			if d > best {
				best = d
				maxFace = f
			}
		}
		if maxFace != nil {
			qh.addPointToFace(v, maxFace)
		}
	}
	return nil
}

// addPointToFace claims v for f, maintaining the claimed list's per-face
// contiguous-segment invariant by always inserting next to f's current
// outside vertex.
func (qh *QuickHull) addPointToFace(v *vertex, f *face) {
	v.face = f
	if f.outside == nil {
		qh.claimed.add(v)
	} else {
		qh.claimed.insertBefore(v, f.outside)
	}
	f.outside = v
}

// removePointFromFace unclaims v from f, repairing f.outside if v was its
// head.
func (qh *QuickHull) removePointFromFace(v *vertex, f *face) {
	if v == f.outside {
		if v.next != nil && v.next.face == f {
			f.outside = v.next
		} else {
			f.outside = nil
		}
	}
	qh.claimed.delete(v)
}

// removeAllPointsFromFace detaches f's entire outside segment from the
// claimed list and returns its head as a standalone chain (linked only
// through vertex.next), or nil if f claims no points.
func (qh *QuickHull) removeAllPointsFromFace(f *face) *vertex {
	if f.outside == nil {
		return nil
	}
	end := f.outside
	for end.next != nil && end.next.face == f {
		end = end.next
	}
	qh.claimed.deleteRange(f.outside, end)
	end.next = nil
	chain := f.outside
	f.outside = nil
	return chain
}

// deleteFacePoints detaches f's outside points. When absorbingFace is nil
// they all move to the unclaimed list; otherwise each point is reclaimed by
// absorbingFace if it is still outside that face's plane, and unclaimed
// otherwise.
func (qh *QuickHull) deleteFacePoints(f, absorbingFace *face) {
	chain := qh.removeAllPointsFromFace(f)
	if chain == nil {
		return
	}
	if absorbingFace == nil {
		qh.unclaimed.addAll(chain)
		return
	}
	for v := chain; v != nil; {
		next := v.next
		if absorbingFace.distanceToPlane(v.point) > qh.tolerance {
			qh.addPointToFace(v, absorbingFace)
		} else {
			qh.unclaimed.add(v)
		}
		v = next
	}
}

// nextPointToAdd returns the farthest outside point claimed by whichever
// face currently heads the claimed list, or nil once no points remain
// outside the hull.
func (qh *QuickHull) nextPointToAdd() *vertex {
	if qh.claimed.isEmpty() {
		return nil
	}
	eyeFace := qh.claimed.first().face
	var eyeVtx *vertex
	maxDist := 0.0
	for v := eyeFace.outside; v != nil && v.face == eyeFace; v = v.next {
		dist := eyeFace.distanceToPlane(v.point)
		if dist > maxDist {
			maxDist = dist
			eyeVtx = v
		}
	}
	return eyeVtx
}

// horizonFrame is one level of the explicit stack that replaces
// calculateHorizon's recursion: edge0 is the edge the walk started from
// (the loop terminates when it returns to edge0) and edge is the edge
// currently being examined.
type horizonFrame struct {
	edge0 *halfEdge
	edge  *halfEdge
}

// calculateHorizon walks the set of faces visible from eyePnt starting at
// startFace (entered via startEdge0, or via startFace's own first edge when
// startEdge0 is nil), deleting each visible face's claimed points and
// marking it deleted, and collects the horizon: the boundary edges between
// visible and non-visible territory where the new faces will attach. This
// is an explicit-stack translation of the original recursive depth-first
// walk; each stack frame corresponds to one level of recursion, entered by
// the same deleteFacePoints/mark-deleted/initial-edge steps the recursive
// call performs on entry, with the parent's edge advanced only once its
// child frame has fully popped.
func (qh *QuickHull) calculateHorizon(eyePnt Vec3, startEdge0 *halfEdge, startFace *face) []*halfEdge {
	var horizon []*halfEdge
	var stack []horizonFrame

	enter := func(edge0 *halfEdge, f *face) {
		qh.deleteFacePoints(f, nil)
		f.mark = markDeleted
		var edge *halfEdge
		if edge0 == nil {
			edge0 = f.getEdge(0)
			edge = edge0
		} else {
			edge = edge0.next
		}
		stack = append(stack, horizonFrame{edge0: edge0, edge: edge})
	}

	enter(startEdge0, startFace)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		edge := top.edge
		oppFace := edge.oppositeFace()

		recursed := false
		switch oppFace.mark {
		case markVisible:
			if oppFace.distanceToPlane(eyePnt) > qh.tolerance {
				enter(edge.opposite, oppFace)
				recursed = true
			} else {
				horizon = append(horizon, edge)
			}
		case markNonConvex:
			horizon = append(horizon, edge)
		case markDeleted:
			// already absorbed by an earlier branch of this walk; skip.
		}

		if recursed {
			continue
		}

		next := edge.next
		if next == top.edge0 {
			stack = stack[:len(stack)-1]
		} else {
			top.edge = next
		}
	}

	return horizon
}

// addAdjoiningFace erects a new triangle (eyeVtx, he.tail(), he.head) over
// horizon edge he. createTriangle's edge 0 runs eyeVtx->tail, edge 1 runs
// tail->head (the same direction as he, on the face he used to bound before
// it was deleted), and edge 2 runs head->eyeVtx. Edge 1 is wired opposite
// he's own opposite, since it occupies the same position in the mesh he
// did. Edge 0, the "leading" side edge, is returned so addNewFaces can pair
// it with the previous fan triangle's "trailing" side edge.
func (qh *QuickHull) addAdjoiningFace(eyeVtx *vertex, he *halfEdge) *halfEdge {
	f := createTriangle(eyeVtx, he.tail(), he.head, 0)
	qh.faces = append(qh.faces, f)
	f.getEdge(1).setOpposite(he.opposite)
	return f.getEdge(0)
}

// addNewFaces erects a fan of new triangles over the horizon, one per
// horizon edge, all sharing apex eyeVtx, and stitches each triangle's
// leading side edge (eyeVtx->tail) to the previous triangle's trailing side
// edge (head->eyeVtx, i.e. its getEdge(-1)) -- the same undirected edge,
// since one triangle's tail is the previous triangle's head along the
// horizon. The fan is closed by pairing the first triangle's leading edge
// with the last triangle's trailing edge. The new faces are recorded in
// qh.newFaces for the merge passes that follow.
func (qh *QuickHull) addNewFaces(eyeVtx *vertex, horizon []*halfEdge) {
	qh.newFaces = faceList{}
	var hedgeSidePrev, hedgeSideBegin *halfEdge
	for _, horizonHe := range horizon {
		hedgeSide := qh.addAdjoiningFace(eyeVtx, horizonHe)
		if hedgeSidePrev != nil {
			hedgeSide.setOpposite(hedgeSidePrev.prev)
		} else {
			hedgeSideBegin = hedgeSide
		}
		qh.newFaces.add(hedgeSide.face)
		hedgeSidePrev = hedgeSide
	}
	hedgeSideBegin.setOpposite(hedgeSidePrev.prev)
}

// doAdjacentMerge scans f's ring for a neighbor it should absorb under mt's
// criterion and, on the first match, merges it via face.mergeAdjacentFace,
// hands every absorbed face's outside points to f (or to the unclaimed list
// when they are not above f), and returns true so the caller can retry
// against f's now-larger ring. If no merge qualifies but some edge looks
// non-convex from the smaller face's plane, f is marked non-convex for the
// second pass.
func (qh *QuickHull) doAdjacentMerge(f *face, mt mergeType) (bool, error) {
	hedge := f.he0
	convex := true
	for {
		oppFace := hedge.oppositeFace()
		merge := false

		switch mt {
		case mergeNonConvex:
			if oppFaceDistance(hedge) > -qh.tolerance || oppFaceDistance(hedge.opposite) > -qh.tolerance {
				merge = true
			}
		default:
			if f.area > oppFace.area {
				if oppFaceDistance(hedge) > -qh.tolerance {
					merge = true
				} else if oppFaceDistance(hedge.opposite) > -qh.tolerance {
					convex = false
				}
			} else {
				if oppFaceDistance(hedge.opposite) > -qh.tolerance {
					merge = true
				} else if oppFaceDistance(hedge) > -qh.tolerance {
					convex = false
				}
			}
		}

		if merge {
			qh.logMerge(f, "adjacent")
			discarded, err := f.mergeAdjacentFace(hedge)
			if err != nil {
				return false, err
			}
			for _, df := range discarded {
				qh.deleteFacePoints(df, f)
			}
			return true, nil
		}

		hedge = hedge.next
		if hedge == f.he0 {
			break
		}
	}
	if !convex {
		f.mark = markNonConvex
	}
	return false, nil
}

// resolveUnclaimedPoints reassigns every point left on the unclaimed list
// (set aside while the horizon was computed) to whichever of newFaces'
// still-visible faces it lies farthest outside of, if any; points that
// match no face are simply dropped, since they lie within the new hull.
// The early exit at 1000x tolerance: once a point is unambiguously far
// outside some face, further candidates are not worth checking.
func (qh *QuickHull) resolveUnclaimedPoints(newFaces *faceList) {
	vtx := qh.unclaimed.first()
	for vtx != nil {
		next := vtx.next
		maxDist := qh.tolerance
		var maxFace *face
		for f := newFaces.first(); f != nil; f = f.next {
			if f.mark != markVisible {
				continue
			}
			dist := f.distanceToPlane(vtx.point)
			if dist > maxDist {
				maxDist = dist
				maxFace = f
				if maxDist > 1000*qh.tolerance {
					break
				}
			}
		}
		if maxFace != nil {
			qh.addPointToFace(vtx, maxFace)
		}
		vtx = next
	}
	qh.unclaimed.clear()
}

// addPointToHull performs one main-loop iteration: it removes eyeVtx from
// its claiming face, computes the horizon visible from it, replaces the
// visible faces with a new fan anchored at eyeVtx, merges that fan back
// into convexity in two passes, and redistributes any points left
// unclaimed by the faces that were deleted.
func (qh *QuickHull) addPointToHull(eyeVtx *vertex) error {
	qh.unclaimed.clear()
	qh.removePointFromFace(eyeVtx, eyeVtx.face)

	horizon := qh.calculateHorizon(eyeVtx.point, nil, eyeVtx.face)
	qh.logHorizon(horizon)
	qh.addNewFaces(eyeVtx, horizon)
	qh.logIteration(eyeVtx, eyeVtx.face)

	for f := qh.newFaces.first(); f != nil; f = f.next {
		if f.mark != markVisible {
			continue
		}
		for {
			merged, err := qh.doAdjacentMerge(f, mergeNonConvexWRTLargerFace)
			if err != nil {
				return err
			}
			if !merged {
				break
			}
		}
	}

	for f := qh.newFaces.first(); f != nil; f = f.next {
		if f.mark != markNonConvex {
			continue
		}
		f.mark = markVisible
		for {
			merged, err := qh.doAdjacentMerge(f, mergeNonConvex)
			if err != nil {
				return err
			}
			if !merged {
				break
			}
		}
	}

	qh.resolveUnclaimedPoints(&qh.newFaces)
	return nil
}
