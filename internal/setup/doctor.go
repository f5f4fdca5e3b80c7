package setup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rnkit-labs/rnsetup/internal/envfile"
	"github.com/rnkit-labs/rnsetup/internal/manifest"
	"github.com/rnkit-labs/rnsetup/internal/platform"
	"github.com/rnkit-labs/rnsetup/internal/report"
	"github.com/rnkit-labs/rnsetup/internal/runtime"
	"github.com/rnkit-labs/rnsetup/internal/scaffold"
)

// CheckStatus classifies one doctor check.
type CheckStatus int

// Check statuses.
const (
	CheckOK CheckStatus = iota
	CheckWarn
	CheckMissing
	CheckFail
)

// Check is the outcome of one read-only probe.
type Check struct {
	Status  CheckStatus
	Message string
	Details []string
}

// Diagnosis collects doctor checks.
type Diagnosis struct {
	Checks []Check
}

func (d *Diagnosis) add(s CheckStatus, format string, args ...interface{}) *Check {
	d.Checks = append(d.Checks, Check{Status: s, Message: fmt.Sprintf(format, args...)})
	return &d.Checks[len(d.Checks)-1]
}

// Failed counts checks with CheckFail status.
func (d *Diagnosis) Failed() int {
	n := 0
	for _, c := range d.Checks {
		if c.Status == CheckFail {
			n++
		}
	}
	return n
}

// Print writes every check as a tagged line.
func (d *Diagnosis) Print(r *report.Reporter) {
	for _, c := range d.Checks {
		switch c.Status {
		case CheckOK:
			r.Success("%s", c.Message)
		case CheckWarn:
			r.Warn("%s", c.Message)
		case CheckMissing:
			r.Missing("%s", c.Message)
		case CheckFail:
			r.Error("%s", c.Message)
		}
		for _, line := range c.Details {
			r.Detail("- %s", line)
		}
	}
}

// DiagnoseRuntime probes the target directory, git, Node.js and the package
// manager without changing anything.
func DiagnoseRuntime(ctx context.Context, env *Env) *Diagnosis {
	d := &Diagnosis{}

	if err := platform.CheckWritable(env.Dir); err != nil {
		d.add(CheckFail, "%s is not writable: %v", env.Dir, err)
	} else {
		d.add(CheckOK, "%s is writable", env.Dir)
	}

	if path, err := env.Runner.LookPath(gitBinary); err != nil {
		d.add(CheckMissing, "git not found")
	} else {
		d.add(CheckOK, "git found at %s", path)
	}

	raw, err := runtime.NodeVersion(ctx, env.Runner)
	switch {
	case errors.Is(err, runtime.ErrRuntimeNotFound):
		d.add(CheckMissing, "node not found")
	case err != nil:
		d.add(CheckWarn, "node version unknown: %v", err)
	default:
		if _, err := runtime.CheckMinVersion(raw, env.Settings.NodeMinVersion); err != nil {
			if errors.Is(err, runtime.ErrVersionUnparseable) {
				d.add(CheckWarn, "node version %q could not be parsed", raw)
			} else {
				d.add(CheckFail, "node %s: %v", raw, err)
			}
		} else {
			d.add(CheckOK, "node %s (minimum %s)", raw, env.Settings.NodeMinVersion)
		}
	}

	pm, err := env.preferredManager()
	if err != nil {
		d.add(CheckFail, "%v", err)
		return d
	}
	if path, err := env.Runner.LookPath(pm.Name); err == nil {
		d.add(CheckOK, "%s found at %s", pm.Name, path)
		return d
	}
	if alt, ok := runtime.LookupPackageManager(env.Settings.FallbackPackageManager); ok {
		if _, err := env.Runner.LookPath(alt.Name); err == nil {
			d.add(CheckWarn, "%s not found, %s would be used", pm.Name, alt.Name)
			return d
		}
	}
	d.add(CheckMissing, "%s not found", pm.Name)
	return d
}

// DiagnoseTooling reports whether the hook manager is available.
func DiagnoseTooling(env *Env) *Diagnosis {
	d := &Diagnosis{}
	hook := env.Settings.HookManager
	switch {
	case runtime.HasLocalBin(env.Dir, hook):
		d.add(CheckOK, "%s installed in node_modules", hook)
	case hookManagerAvailable(env, hook):
		d.add(CheckOK, "%s found on PATH", hook)
	default:
		d.add(CheckMissing, "%s not installed", hook)
	}
	return d
}

// DiagnoseManifest validates the package.json at path.
func DiagnoseManifest(path string) *Diagnosis {
	d := &Diagnosis{}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		d.add(CheckFail, "%v", err)
		return d
	}
	if !result.Valid {
		c := d.add(CheckFail, "%s has %d validation issue(s)", path, len(result.Issues))
		for _, issue := range result.Issues {
			c.Details = append(c.Details, issue.String())
		}
		return d
	}

	pkg, err := manifest.Parse(path)
	if err != nil {
		d.add(CheckOK, "%s is valid", path)
		return d
	}
	if pkg.Version != "" {
		d.add(CheckOK, "valid %s: %s (v%s)", manifest.FileName, pkg.Name, pkg.Version)
	} else {
		d.add(CheckOK, "valid %s: %s", manifest.FileName, pkg.Name)
	}
	return d
}

// DiagnoseEnv compares the project's .env against .env.example.
func DiagnoseEnv(dir string) *Diagnosis {
	d := &Diagnosis{}

	if _, err := os.Stat(filepath.Join(dir, envfile.ExampleName)); err != nil {
		d.add(CheckMissing, "%s not found", envfile.ExampleName)
		return d
	}
	if _, err := os.Stat(filepath.Join(dir, envfile.LocalName)); err != nil {
		c := d.add(CheckWarn, "%s not found", envfile.LocalName)
		c.Details = []string{fmt.Sprintf("copy %s to %s and fill in the values", envfile.ExampleName, envfile.LocalName)}
		return d
	}

	drift, err := envfile.Compare(dir)
	if err != nil {
		d.add(CheckFail, "%v", err)
		return d
	}
	if drift.Clean() {
		d.add(CheckOK, "%s declares every key from %s", envfile.LocalName, envfile.ExampleName)
	}
	if len(drift.Missing) > 0 {
		c := d.add(CheckWarn, "%s is missing %d key(s)", envfile.LocalName, len(drift.Missing))
		c.Details = drift.Missing
	}
	if len(drift.Empty) > 0 {
		c := d.add(CheckWarn, "%s has %d empty key(s)", envfile.LocalName, len(drift.Empty))
		c.Details = drift.Empty
	}
	return d
}

// DiagnoseConfigs checks that every catalog artifact is present and that the
// JSON configuration files among them parse.
func DiagnoseConfigs(dir string, c *scaffold.Catalog) *Diagnosis {
	d := &Diagnosis{}
	for _, a := range c.Artifacts {
		target := filepath.Join(dir, filepath.FromSlash(a.Path))
		if _, err := os.Lstat(target); err != nil {
			if a.TemplateOnly() {
				continue
			}
			d.add(CheckMissing, "%s not found", a.Path)
			continue
		}
		if !scaffold.IsJSONConfig(a) {
			d.add(CheckOK, "%s present", a.Path)
			continue
		}
		if err := scaffold.CheckJSONConfig(target); err != nil {
			d.add(CheckFail, "%s does not parse: %v", a.Path, err)
			continue
		}
		d.add(CheckOK, "%s parses", a.Path)
	}
	return d
}
