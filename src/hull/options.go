package hull

import "go.uber.org/zap"

// Option configures a QuickHull at construction time, offering the same
// settings as SetExplicitDistanceTolerance/SetDebug as functional options
// for callers who prefer configuring at construction.
type Option func(*QuickHull)

// WithExplicitTolerance overrides the automatically derived distance
// tolerance. Passing AutomaticTolerance restores automatic computation.
func WithExplicitTolerance(tol float64) Option {
	return func(qh *QuickHull) {
		qh.explicitTolerance = tol
	}
}

// WithDebug enables or disables verbose iteration tracing.
func WithDebug(enabled bool) Option {
	return func(qh *QuickHull) {
		qh.debug = enabled
	}
}

// WithLogger supplies the structured logger used for debug tracing when
// debug is enabled. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(qh *QuickHull) {
		if l != nil {
			qh.logger = l
		}
	}
}

// AutomaticTolerance is the sentinel value that restores automatic
// tolerance computation.
const AutomaticTolerance = -1.0
