package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCheckWritable(t *testing.T) {
	tmp := t.TempDir()

	if err := CheckWritable(tmp); err != nil {
		t.Fatalf("CheckWritable failed: %v", err)
	}

	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("probe file left behind: %v", entries)
	}
}

func TestCheckWritable_Missing(t *testing.T) {
	if err := CheckWritable(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing directory, got nil")
	}
}

func TestCheckWritable_NotDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := CheckWritable(path); err == nil {
		t.Fatal("expected error for non-directory, got nil")
	}
}

func TestCheckWritable_ReadOnly(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := t.TempDir()
	if err := ApplyMode(dir, 0555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0755) })

	if err := CheckWritable(dir); err == nil {
		t.Fatal("expected error for read-only directory, got nil")
	}
}
