package setup

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rnkit-labs/rnsetup/internal/config"
	"github.com/rnkit-labs/rnsetup/internal/runtime"
)

// fakeRunner answers LookPath from a set of installed tools and Run from
// canned outputs keyed by the rendered command line. Commands without a
// canned output succeed when their binary is installed.
type fakeRunner struct {
	tools   map[string]bool
	outputs map[string]*runtime.Output
	errs    map[string]error
	// provides maps a command line to a tool that becomes installed once
	// the command succeeds.
	provides map[string]string
	calls    []string
}

func newFakeRunner(tools ...string) *fakeRunner {
	f := &fakeRunner{
		tools:    map[string]bool{},
		outputs:  map[string]*runtime.Output{},
		errs:     map[string]error{},
		provides: map[string]string{},
	}
	for _, t := range tools {
		f.tools[t] = true
	}
	return f
}

// healthyRunner has git, node 18.19.0, yarn and npm, in a directory that is
// not yet a repository.
func healthyRunner() *fakeRunner {
	f := newFakeRunner("git", "node", "yarn", "npm")
	f.outputs["node --version"] = &runtime.Output{Stdout: "v18.19.0\n"}
	f.outputs["git rev-parse --is-inside-work-tree"] = &runtime.Output{ExitCode: 128, Stderr: "fatal: not a git repository"}
	return f
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.tools[name] {
		return "/usr/local/bin/" + name, nil
	}
	return "", exec.ErrNotFound
}

func (f *fakeRunner) Run(_ context.Context, _ string, name string, args ...string) (*runtime.Output, error) {
	line := runtime.Command{Name: name, Args: args}.String()
	f.calls = append(f.calls, line)

	if err, ok := f.errs[line]; ok {
		return nil, err
	}
	if !f.tools[name] {
		return nil, exec.ErrNotFound
	}
	out, ok := f.outputs[line]
	if !ok {
		out = &runtime.Output{}
	}
	if out.Success() {
		if tool, ok := f.provides[line]; ok {
			f.tools[tool] = true
		}
	}
	return out, nil
}

func (f *fakeRunner) called(line string) bool {
	for _, c := range f.calls {
		if c == line {
			return true
		}
	}
	return false
}

// runIn runs the whole procedure in dir and returns the state, everything
// printed and the error.
func runIn(t *testing.T, dir string, r *fakeRunner) (*RunState, string, error) {
	t.Helper()
	var out bytes.Buffer
	state, err := Run(context.Background(), Options{
		Dir:      dir,
		Settings: config.Defaults(),
		Runner:   r,
		Out:      &out,
	})
	return state, out.String(), err
}

// snapshot maps every file under dir to its contents.
func snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	files := map[string]string{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(dir, path)
		if d.IsDir() {
			files[filepath.ToSlash(rel)+"/"] = ""
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", dir, err)
	}
	return files
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func assertExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected %s not to exist", path)
	}
}
