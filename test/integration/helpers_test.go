//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rnkit-labs/rnsetup/internal/config"
	"github.com/rnkit-labs/rnsetup/internal/report"
	"github.com/rnkit-labs/rnsetup/internal/runtime"
	"github.com/rnkit-labs/rnsetup/internal/setup"
)

// requireTools skips the test unless every named binary is on PATH.
func requireTools(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			t.Skipf("%s not available, skipping", name)
		}
	}
}

// settings uses npm, which ships with Node.js, so no global install is
// attempted, and a minimum every supported Node.js satisfies.
func settings() config.Settings {
	s := config.Defaults()
	s.PackageManager = runtime.ManagerNPM
	s.NodeMinVersion = "14.0.0"
	return s
}

// runSetup runs the real procedure in dir with the os/exec runner.
func runSetup(t *testing.T, dir string) (*setup.RunState, string, error) {
	t.Helper()
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("HOME", t.TempDir())

	var out, logs bytes.Buffer
	logger := report.NewLogger(&logs, true)
	state, err := setup.Run(context.Background(), setup.Options{
		Dir:      dir,
		Settings: settings(),
		Runner:   &runtime.ExecRunner{Logger: logger},
		Out:      &out,
		Logger:   logger,
	})
	if testing.Verbose() {
		t.Logf("output:\n%s\nlogs:\n%s", out.String(), logs.String())
	}
	return state, out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
