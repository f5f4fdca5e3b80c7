package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestApplyMode_HookScript(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no permission bits on Windows")
	}
	path := filepath.Join(t.TempDir(), "pre-commit")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := ApplyMode(path, 0o755); err != nil {
		t.Fatalf("ApplyMode failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o755 {
		t.Errorf("permissions = %o, want 755", perm)
	}
}

func TestApplyMode_IgnoresTypeBits(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no permission bits on Windows")
	}
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := ApplyMode(path, os.ModeSetuid|0o600); err != nil {
		t.Fatalf("ApplyMode failed: %v", err)
	}
	info, _ := os.Stat(path)
	if info.Mode()&os.ModeSetuid != 0 {
		t.Error("ApplyMode set type bits")
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("permissions = %o, want 600", perm)
	}
}

func TestApplyMode_Missing(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no permission bits on Windows")
	}
	if err := ApplyMode(filepath.Join(t.TempDir(), "missing"), 0o644); err == nil {
		t.Error("expected error for a missing file")
	}
}
