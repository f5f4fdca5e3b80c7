package setup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rnkit-labs/rnsetup/internal/platform"
	"github.com/rnkit-labs/rnsetup/internal/runtime"
)

const gitBinary = "git"

// PreflightSteps probes the environment. Every step is fatal on failure and
// none of them writes to the target beyond the writability probe.
func PreflightSteps() []Step {
	return []Step{
		{Name: "writable", Section: SectionPreflight, Fatal: true, Run: checkWritable},
		{Name: "version control", Section: SectionPreflight, Fatal: true, Run: checkVersionControl},
		{Name: "node runtime", Section: SectionPreflight, Fatal: true, Run: checkNodeRuntime},
		{Name: "package manager", Section: SectionPreflight, Fatal: true, Run: checkPackageManager},
	}
}

// RepositorySteps initializes version control. It runs only after every
// fatal check has passed so an aborted run leaves the target untouched.
func RepositorySteps() []Step {
	return []Step{
		{Name: "init repository", Section: SectionPreflight, Run: initRepository},
	}
}

func checkWritable(_ context.Context, env *Env) Result {
	if err := platform.CheckWritable(env.Dir); err != nil {
		return Fail(err, "target directory is not writable").
			WithRemedy("check the permissions of %s", env.Dir)
	}
	return Ok("target directory %s is writable", env.Dir)
}

func checkVersionControl(ctx context.Context, env *Env) Result {
	if _, err := env.Runner.LookPath(gitBinary); err != nil {
		return Warn("git not found, the repository will not be initialized").
			WithRemedy("install git, then run: git init")
	}
	env.gitAvailable = true

	out, err := env.Runner.Run(ctx, env.Dir, gitBinary, "rev-parse", "--is-inside-work-tree")
	if err == nil && out.Success() && strings.TrimSpace(out.Stdout) == "true" {
		return Ok("git repository found")
	}
	env.needsGitInit = true
	return Ok("git found, a repository will be initialized")
}

func checkNodeRuntime(ctx context.Context, env *Env) Result {
	minimum := env.Settings.NodeMinVersion

	raw, err := runtime.NodeVersion(ctx, env.Runner)
	if errors.Is(err, runtime.ErrRuntimeNotFound) {
		return Fail(err, "Node.js runtime is required").
			WithRemedy("install Node.js %s or newer", minimum)
	}
	if err != nil {
		return Warn("could not determine the Node.js version: %v", err)
	}

	v, err := runtime.CheckMinVersion(raw, minimum)
	switch {
	case errors.Is(err, runtime.ErrVersionUnparseable):
		return Warn("could not parse Node.js version %q, continuing", raw)
	case errors.Is(err, runtime.ErrVersionTooOld):
		return Fail(err, "Node.js %s is too old", raw).
			WithRemedy("upgrade Node.js to %s or newer", minimum)
	case err != nil:
		return Fail(err, "checking Node.js version")
	}
	env.NodeVersion = v.String()
	return Ok("Node.js %s", v.String())
}

func checkPackageManager(ctx context.Context, env *Env) Result {
	pm, err := env.preferredManager()
	if err != nil {
		return Fail(err, "choosing a package manager")
	}

	if _, err := env.Runner.LookPath(pm.Name); err == nil {
		env.PackageManager = pm
		return Ok("package manager %s found", pm.Name)
	}

	req := pm.Requirement()
	for _, fb := range req.Fallbacks {
		if _, err := env.Runner.LookPath(fb.Name); err != nil {
			env.logger().Debug("fallback unavailable", "command", fb.String(), "error", err)
			continue
		}
		if err := runtime.RunCommand(ctx, env.Runner, env.Dir, fb); err != nil {
			env.logger().Debug("fallback failed", "command", fb.String(), "error", err)
			continue
		}
		if _, err := env.Runner.LookPath(pm.Name); err == nil {
			env.PackageManager = pm
			return Ok("package manager %s installed with %q", pm.Name, fb.String())
		}
	}

	alt, ok := runtime.LookupPackageManager(env.Settings.FallbackPackageManager)
	if ok && alt.Name != pm.Name {
		if _, err := env.Runner.LookPath(alt.Name); err == nil {
			env.PackageManager = alt
			return Warn("%s could not be installed, using %s instead", pm.Name, alt.Name).
				WithRemedy("install %s manually", pm.Name)
		}
	}

	return Fail(fmt.Errorf("%w: %s", ErrNoPackageManager, pm.Name), "no package manager available").
		WithRemedy("install %s", pm.Name)
}

func initRepository(ctx context.Context, env *Env) Result {
	switch {
	case !env.gitAvailable:
		return Skip("repository initialization skipped, git is not installed")
	case !env.needsGitInit:
		return Skip("repository already initialized")
	}

	cmd := runtime.Command{Name: gitBinary, Args: []string{"init"}}
	if err := runtime.RunCommand(ctx, env.Runner, env.Dir, cmd); err != nil {
		return Warn("could not initialize a git repository: %v", err).
			WithRemedy("run: git init")
	}
	env.needsGitInit = false
	return Ok("initialized a git repository")
}
