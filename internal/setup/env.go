package setup

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/rnkit-labs/rnsetup/internal/config"
	"github.com/rnkit-labs/rnsetup/internal/manifest"
	"github.com/rnkit-labs/rnsetup/internal/report"
	"github.com/rnkit-labs/rnsetup/internal/runtime"
	"github.com/rnkit-labs/rnsetup/internal/scaffold"
)

// Env is the state shared by the steps of one run. Preflight steps fill in
// the probed facts; later steps read them.
type Env struct {
	Dir      string
	Settings config.Settings
	Runner   runtime.Runner
	Reporter *report.Reporter
	Logger   *slog.Logger

	// Probed by preflight.
	PackageManager runtime.PackageManager
	NodeVersion    string

	gitAvailable bool
	needsGitInit bool
	hooksReady   bool

	scaffolder *scaffold.Engine
}

func (e *Env) logger() *slog.Logger {
	if e.Logger == nil {
		e.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e.Logger
}

// manifest returns the parsed package.json, or nil if it is absent or
// unreadable.
func (e *Env) manifest() *manifest.PackageJSON {
	if !manifest.Exists(e.Dir) {
		return nil
	}
	pkg, err := manifest.Parse(manifest.Path(e.Dir))
	if err != nil {
		e.logger().Debug("package.json not parsed", "error", err)
		return nil
	}
	return pkg
}

// projectName is the package.json name, or the directory name.
func (e *Env) projectName() string {
	if pkg := e.manifest(); pkg != nil && strings.TrimSpace(pkg.Name) != "" {
		return pkg.Name
	}
	return filepath.Base(e.Dir)
}

// engine builds the artifact engine on first use, after preflight has
// settled the package manager.
func (e *Env) engine() *scaffold.Engine {
	if e.scaffolder == nil {
		data := scaffold.NewScaffoldData(e.projectName(), e.PackageManager, e.Settings.NodeMinVersion)
		e.scaffolder = scaffold.NewEngine(e.Dir, e.Settings.ResolveTemplatesDir(e.Dir), data)
	}
	return e.scaffolder
}

// preferredManager is the manager named by package.json's packageManager
// field when it is a supported one, else the configured manager.
func (e *Env) preferredManager() (runtime.PackageManager, error) {
	if pkg := e.manifest(); pkg != nil {
		if name := pkg.ManagerName(); name != "" {
			if pm, ok := runtime.LookupPackageManager(name); ok {
				return pm, nil
			}
			e.logger().Debug("ignoring unsupported packageManager field", "value", pkg.PackageManager)
		}
	}
	pm, ok := runtime.LookupPackageManager(e.Settings.PackageManager)
	if !ok {
		return runtime.PackageManager{}, fmt.Errorf("%w: %q", ErrUnknownPackageManager, e.Settings.PackageManager)
	}
	return pm, nil
}
