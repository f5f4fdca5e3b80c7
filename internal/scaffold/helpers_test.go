package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rnkit-labs/rnsetup/internal/runtime"
)

func testData(t *testing.T) *ScaffoldData {
	t.Helper()
	pm, ok := runtime.LookupPackageManager("yarn")
	if !ok {
		t.Fatal("yarn package manager not registered")
	}
	return NewScaffoldData("mobile-app", pm, "18.0.0")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readGenerated(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("expected content to contain %q, got:\n%s", substr, content)
	}
}
