package setup

import (
	"errors"
	"fmt"
)

var (
	// ErrAborted is returned when a fatal step fails.
	ErrAborted = errors.New("setup aborted")
	// ErrRunFailed is returned when the run completed with failures.
	ErrRunFailed = errors.New("setup completed with failures")
	// ErrUnknownPackageManager is returned for a manager name that is not
	// supported.
	ErrUnknownPackageManager = errors.New("unsupported package manager")
	// ErrNoPackageManager is returned when neither the preferred nor the
	// alternate package manager can be found.
	ErrNoPackageManager = errors.New("no usable package manager")
)

// Kind classifies a step result.
type Kind int

// Result kinds.
const (
	KindSuccess Kind = iota
	KindSkipped
	KindWarning
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindSkipped:
		return "skipped"
	case KindWarning:
		return "warning"
	case KindFailure:
		return "failure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is what one step reports.
type Result struct {
	Kind    Kind
	Message string
	Err     error
	Remedy  string   // suggested manual fix, printed under warnings and failures
	Details []string // extra lines, e.g. validation issues
}

// Ok reports success.
func Ok(format string, args ...interface{}) Result {
	return Result{Kind: KindSuccess, Message: fmt.Sprintf(format, args...)}
}

// Skip reports that nothing needed doing.
func Skip(format string, args ...interface{}) Result {
	return Result{Kind: KindSkipped, Message: fmt.Sprintf(format, args...)}
}

// Warn reports a recoverable problem.
func Warn(format string, args ...interface{}) Result {
	return Result{Kind: KindWarning, Message: fmt.Sprintf(format, args...)}
}

// Fail reports a failure caused by err.
func Fail(err error, format string, args ...interface{}) Result {
	return Result{Kind: KindFailure, Message: fmt.Sprintf(format, args...), Err: err}
}

// WithRemedy attaches a suggested manual fix.
func (r Result) WithRemedy(format string, args ...interface{}) Result {
	r.Remedy = fmt.Sprintf(format, args...)
	return r
}

// WithDetails attaches extra lines.
func (r Result) WithDetails(lines ...string) Result {
	r.Details = append(append([]string(nil), r.Details...), lines...)
	return r
}

// Outcome is the terminal classification of a completed run.
type Outcome int

// Run outcomes.
const (
	OutcomeClean Outcome = iota
	OutcomeWithCaveats
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeClean:
		return "clean"
	case OutcomeWithCaveats:
		return "with caveats"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// RunState accumulates failure and warning counts for one run. Successes
// and skips are not counted.
type RunState struct {
	Failures int
	Warnings int
}

// Record folds r into the counters.
func (s *RunState) Record(r Result) {
	switch r.Kind {
	case KindFailure:
		s.Failures++
	case KindWarning:
		s.Warnings++
	}
}

// Outcome classifies the run from its counters.
func (s *RunState) Outcome() Outcome {
	switch {
	case s.Failures > 0:
		return OutcomeFailed
	case s.Warnings > 0:
		return OutcomeWithCaveats
	default:
		return OutcomeClean
	}
}

// ExitCode is 1 iff at least one failure was recorded.
func (s *RunState) ExitCode() int {
	if s.Failures > 0 {
		return 1
	}
	return 0
}
