package setup

import (
	"context"

	"github.com/rnkit-labs/rnsetup/internal/manifest"
	"github.com/rnkit-labs/rnsetup/internal/runtime"
)

const hookManagerLefthook = "lefthook"

// ToolingSteps installs dependencies and commit hooks. All of them are soft:
// failures become warnings with a manual remedy.
func ToolingSteps() []Step {
	return []Step{
		{Name: "install dependencies", Section: SectionTooling, Run: installDependencies},
		{Name: "install hook manager", Section: SectionTooling, Run: installHookManager},
		{Name: "install git hooks", Section: SectionTooling, Run: installGitHooks},
	}
}

func installDependencies(ctx context.Context, env *Env) Result {
	install := env.PackageManager.InstallCommand()
	if !manifest.Exists(env.Dir) {
		return Warn("no %s found, dependency install skipped", manifest.FileName).
			WithRemedy("create %s, then run: %s", manifest.FileName, install)
	}

	vr, err := manifest.ValidateFile(manifest.Path(env.Dir))
	if err != nil {
		return Warn("could not read %s: %v", manifest.FileName, err).
			WithRemedy("fix %s, then run: %s", manifest.FileName, install)
	}
	if !vr.Valid {
		details := make([]string, 0, len(vr.Issues))
		for _, issue := range vr.Issues {
			details = append(details, issue.String())
		}
		return Warn("%s is malformed, dependency install skipped", manifest.FileName).
			WithDetails(details...).
			WithRemedy("fix %s, then run: %s", manifest.FileName, install)
	}

	if err := runtime.RunCommand(ctx, env.Runner, env.Dir, install); err != nil {
		return Warn("dependency install failed: %v", err).
			WithRemedy("run: %s", install)
	}
	return Ok("dependencies installed with %s", install)
}

func installHookManager(ctx context.Context, env *Env) Result {
	hook := env.Settings.HookManager
	if !manifest.Exists(env.Dir) {
		return Skip("no %s found, %s not installed", manifest.FileName, hook)
	}

	if hookManagerAvailable(env, hook) {
		env.hooksReady = true
		return Ok("%s already available", hook)
	}

	add := env.PackageManager.AddDevCommand(hook)
	if err := runtime.RunCommand(ctx, env.Runner, env.Dir, add); err != nil {
		return Warn("could not install %s: %v", hook, err).
			WithRemedy("run: %s", add)
	}
	env.hooksReady = true
	return Ok("installed %s", hook)
}

func installGitHooks(ctx context.Context, env *Env) Result {
	hook := env.Settings.HookManager
	if !manifest.Exists(env.Dir) {
		return Skip("no %s found, git hooks not installed", manifest.FileName)
	}
	if !env.hooksReady {
		return Warn("%s is not available, git hooks not installed", hook)
	}

	cmd := hookInstallCommand(env.PackageManager, hook)
	if err := runtime.RunCommand(ctx, env.Runner, env.Dir, cmd); err != nil {
		return Warn("git hooks not installed: %v", err).
			WithRemedy("run: %s", cmd)
	}
	return Ok("git hooks installed with %s", hook)
}

func hookManagerAvailable(env *Env, hook string) bool {
	if runtime.HasLocalBin(env.Dir, hook) {
		return true
	}
	_, err := env.Runner.LookPath(hook)
	return err == nil
}

// hookInstallCommand returns the command that wires the hook manager into
// .git/hooks.
func hookInstallCommand(pm runtime.PackageManager, hook string) runtime.Command {
	if hook == hookManagerLefthook {
		return pm.ExecCommand(hook, "install")
	}
	return pm.ExecCommand(hook)
}
