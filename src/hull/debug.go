package hull

import "go.uber.org/zap"

// newNopLogger is the default logger installed on a QuickHull that has not
// been given one via WithLogger. Debug tracing is gated on qh.debug, but the
// field is never nil so call sites never need to guard against it.
func newNopLogger() *zap.Logger {
	return zap.NewNop()
}

// logIteration traces one main-loop iteration: the vertex being added and
// the face it was claimed by. Grounded on the sweep-line progress tracing
// pattern (zap.Float64/zap.Any fields around each algorithm step).
func (qh *QuickHull) logIteration(v *vertex, f *face) {
	if !qh.debug {
		return
	}
	qh.logger.Debug("adding point to hull",
		zap.Int("index", v.index),
		zap.Float64("x", v.point.X),
		zap.Float64("y", v.point.Y),
		zap.Float64("z", v.point.Z),
		zap.String("face", f.vertexString()),
	)
}

// logHorizon traces the computed horizon edges for one iteration.
func (qh *QuickHull) logHorizon(horizon []*halfEdge) {
	if !qh.debug {
		return
	}
	edges := make([]string, len(horizon))
	for i, e := range horizon {
		edges[i] = e.face.edgeString(e)
	}
	qh.logger.Debug("horizon computed", zap.Strings("edges", edges))
}

// logMerge traces a face merge performed during doAdjacentMerge.
func (qh *QuickHull) logMerge(f *face, mergeKind string) {
	if !qh.debug {
		return
	}
	qh.logger.Debug("merging non-convex face", zap.String("kind", mergeKind), zap.String("face", f.vertexString()))
}
