package runtime

import (
	"os"
	"path/filepath"
	goruntime "runtime"
)

// Supported package manager names.
const (
	ManagerNPM  = "npm"
	ManagerYarn = "yarn"
	ManagerPNPM = "pnpm"
	ManagerBun  = "bun"
)

// PackageManager describes how one package manager spells the invocations
// the scaffolder needs.
type PackageManager struct {
	Name string

	installArgs []string
	addDevArgs  []string
	execName    string
	execArgs    []string
	runArgs     []string
}

var packageManagers = map[string]PackageManager{
	ManagerNPM: {
		Name:        ManagerNPM,
		installArgs: []string{"install"},
		addDevArgs:  []string{"install", "--save-dev"},
		execName:    "npx",
		execArgs:    []string{"--no-install"},
		runArgs:     []string{"run"},
	},
	ManagerYarn: {
		Name:        ManagerYarn,
		installArgs: []string{"install"},
		addDevArgs:  []string{"add", "--dev"},
		execName:    "yarn",
	},
	ManagerPNPM: {
		Name:        ManagerPNPM,
		installArgs: []string{"install"},
		addDevArgs:  []string{"add", "--save-dev"},
		execName:    "pnpm",
		execArgs:    []string{"exec"},
		runArgs:     []string{"run"},
	},
	ManagerBun: {
		Name:        ManagerBun,
		installArgs: []string{"install"},
		addDevArgs:  []string{"add", "--dev"},
		execName:    "bunx",
		runArgs:     []string{"run"},
	},
}

// LookupPackageManager returns the definition for name.
func LookupPackageManager(name string) (PackageManager, bool) {
	pm, ok := packageManagers[name]
	return pm, ok
}

// InstallCommand installs the dependencies declared in package.json.
func (pm PackageManager) InstallCommand() Command {
	return Command{Name: pm.Name, Args: clone(pm.installArgs)}
}

// AddDevCommand adds packages as development dependencies.
func (pm PackageManager) AddDevCommand(packages ...string) Command {
	return Command{Name: pm.Name, Args: append(clone(pm.addDevArgs), packages...)}
}

// RunScriptCommand runs a script declared in package.json.
func (pm PackageManager) RunScriptCommand(script string) Command {
	return Command{Name: pm.Name, Args: append(clone(pm.runArgs), script)}
}

// ExecCommand runs a locally installed package binary.
func (pm PackageManager) ExecCommand(bin string, args ...string) Command {
	a := append(clone(pm.execArgs), bin)
	return Command{Name: pm.execName, Args: append(a, args...)}
}

// ToolRequirement is a tool the environment must provide, with the ordered
// commands that can be tried to obtain it when it is missing.
type ToolRequirement struct {
	Name       string
	MinVersion string
	Fallbacks  []Command
}

// Requirement returns the preflight requirement for pm. npm ships with
// Node.js and has no fallbacks; every other manager is installed globally
// through npm first, then activated through corepack.
func (pm PackageManager) Requirement() ToolRequirement {
	req := ToolRequirement{Name: pm.Name}
	if pm.Name == ManagerNPM {
		return req
	}
	req.Fallbacks = []Command{
		{Name: ManagerNPM, Args: []string{"install", "--global", pm.Name}},
		{Name: "corepack", Args: []string{"enable", pm.Name}},
	}
	return req
}

// HasLocalBin reports whether dir/node_modules/.bin contains name.
func HasLocalBin(dir, name string) bool {
	bin := filepath.Join(dir, "node_modules", ".bin", name)
	if goruntime.GOOS == "windows" {
		bin += ".cmd"
	}
	_, err := os.Stat(bin)
	return err == nil
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
