package setup

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rnkit-labs/rnsetup/internal/config"
	"github.com/rnkit-labs/rnsetup/internal/report"
	"github.com/rnkit-labs/rnsetup/internal/runtime"
	"github.com/rnkit-labs/rnsetup/internal/scaffold"
)

// Options configures a run.
type Options struct {
	Dir      string
	Settings config.Settings
	Runner   runtime.Runner
	Out      io.Writer
	Logger   *slog.Logger
	// Catalog overrides the embedded artifact catalog.
	Catalog *scaffold.Catalog
}

// NewEnv returns the step environment for opts.
func NewEnv(opts Options) *Env {
	return &Env{
		Dir:      opts.Dir,
		Settings: opts.Settings,
		Runner:   opts.Runner,
		Reporter: report.New(opts.Out),
		Logger:   opts.Logger,
	}
}

// Steps returns the full procedure in execution order.
func Steps(c *scaffold.Catalog) []Step {
	var steps []Step
	steps = append(steps, PreflightSteps()...)
	steps = append(steps, RepositorySteps()...)
	steps = append(steps, ArtifactSteps(c)...)
	steps = append(steps, ToolingSteps()...)
	return steps
}

// Run executes the whole procedure in opts.Dir. The summary is printed
// unless a fatal step aborted the run. The returned state is non-nil
// whenever any step ran. The error wraps ErrAborted on a fatal abort and
// ErrRunFailed when failures were recorded; warnings alone never produce an
// error.
func Run(ctx context.Context, opts Options) (*RunState, error) {
	catalog := opts.Catalog
	if catalog == nil {
		c, err := scaffold.LoadCatalog()
		if err != nil {
			return nil, err
		}
		catalog = c
	}

	env := NewEnv(opts)
	env.logger().Debug("starting setup", "dir", opts.Dir, "package_manager", opts.Settings.PackageManager)

	state, err := Execute(ctx, env, Steps(catalog))
	if err != nil {
		return state, err
	}

	PrintSummary(env.Reporter, state)
	if state.Failures > 0 {
		return state, fmt.Errorf("%d failure(s): %w", state.Failures, ErrRunFailed)
	}
	return state, nil
}
