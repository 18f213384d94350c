package hull

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors. The three degeneracy errors carry exact message text
// that callers may match on, so they are built with errors.New rather
// than wrapped through fmt.Errorf (which would be safe too, but these
// never need additional context).
var (
	// ErrMalformedInput is returned at construction when the coordinate
	// count is not a multiple of 3 or fewer than 4 points are supplied.
	ErrMalformedInput = errors.New("hull: malformed input")

	// ErrCoincident is returned by BuildHull when every input point lies
	// within the distance tolerance of a single point.
	ErrCoincident = errors.New("Input points appear to be coincident")

	// ErrColinear is returned by BuildHull when every input point lies
	// within 100x the distance tolerance of a single line.
	ErrColinear = errors.New("Input points appear to be colinear")

	// ErrCoplanar is returned by BuildHull when every input point lies
	// within 100x the distance tolerance of a single plane.
	ErrCoplanar = errors.New("Input points appear to be coplanar")

	// ErrInvariantViolation is the sentinel errors.Is target for defensive
	// mesh-consistency failures detected by face.checkConsistency. Such a
	// failure indicates a bug in the engine, not bad input.
	ErrInvariantViolation = errors.New("hull: mesh invariant violation")
)

// stackFrame identifies a source location for diagnostic purposes.
type stackFrame struct {
	file     string
	line     int
	function string
}

func (f stackFrame) String() string {
	if f.function == "" {
		return fmt.Sprintf("%s:%d", f.file, f.line)
	}
	return fmt.Sprintf("%s:%d (%s)", f.file, f.line, f.function)
}

func callerFrame(skip int) stackFrame {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return stackFrame{}
	}
	name := ""
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	return stackFrame{file: file, line: line, function: name}
}

// meshInconsistencyError describes one failed invariant check, together
// with the call site that detected it.
type meshInconsistencyError struct {
	msg   string
	frame stackFrame
}

func (e *meshInconsistencyError) Error() string {
	return fmt.Sprintf("hull: invariant violation: %s (detected at %s)", e.msg, e.frame.String())
}

func (e *meshInconsistencyError) Unwrap() error {
	return ErrInvariantViolation
}

// newInvariantViolation builds a meshInconsistencyError tagged with the
// frame of its caller.
func newInvariantViolation(msg string) error {
	return &meshInconsistencyError{msg: msg, frame: callerFrame(2)}
}
