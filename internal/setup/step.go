package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/rnkit-labs/rnsetup/internal/report"
)

// Section names group steps under a heading in the output.
const (
	SectionPreflight = "Preflight"
	SectionArtifacts = "Configuration files"
	SectionSkeleton  = "Source skeleton"
	SectionTooling   = "Dependencies and hooks"
)

// Step is one unit of the procedure.
type Step struct {
	Name    string
	Section string
	// Fatal steps abort the run when they fail.
	Fatal bool
	Run   func(ctx context.Context, env *Env) Result
}

// Execute runs steps in order and returns the accumulated state. It returns
// an error wrapping ErrAborted when a fatal step fails, or ctx.Err() when the
// context is canceled between steps.
func Execute(ctx context.Context, env *Env, steps []Step) (*RunState, error) {
	state := &RunState{}
	section := ""

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return state, err
		}
		if step.Section != section {
			section = step.Section
			env.Reporter.Heading(section)
		}

		start := time.Now()
		res := step.Run(ctx, env)
		env.logger().Debug("step finished",
			"step", step.Name,
			"result", res.Kind.String(),
			"fatal", step.Fatal,
			"elapsed", time.Since(start).String(),
		)

		printResult(env.Reporter, res)
		state.Record(res)

		if res.Kind == KindFailure && step.Fatal {
			return state, fmt.Errorf("%s: %w", step.Name, ErrAborted)
		}
	}
	return state, nil
}

func printResult(r *report.Reporter, res Result) {
	msg := res.Message
	if res.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, res.Err)
	}

	switch res.Kind {
	case KindSuccess:
		r.Success("%s", msg)
	case KindSkipped:
		r.Skip("%s", msg)
	case KindWarning:
		r.Warn("%s", msg)
	case KindFailure:
		r.Error("%s", msg)
	}
	for _, d := range res.Details {
		r.Detail("%s", d)
	}
	if res.Remedy != "" {
		r.Detail("Fix: %s", res.Remedy)
	}
}
