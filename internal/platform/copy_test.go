package platform

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFile(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.txt")
	dst := filepath.Join(tmp, "dst.txt")
	content := "node_modules/\n{{ not a template }}\n"
	if err := os.WriteFile(src, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst, 0644); err != nil {
		t.Fatalf("CopyFile failed: %v", err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != content {
		t.Errorf("copied content = %q, want %q", data, content)
	}
}

func TestCopyFile_RefusesOverwrite(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "src.txt")
	dst := filepath.Join(tmp, "dst.txt")
	os.WriteFile(src, []byte("new"), 0644)
	os.WriteFile(dst, []byte("original"), 0644)

	err := CopyFile(src, dst, 0644)
	if !errors.Is(err, fs.ErrExist) {
		t.Fatalf("CopyFile error = %v, want fs.ErrExist", err)
	}

	data, _ := os.ReadFile(dst)
	if string(data) != "original" {
		t.Errorf("destination was modified: %q", data)
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	tmp := t.TempDir()
	dst := filepath.Join(tmp, "dst.txt")

	if err := CopyFile(filepath.Join(tmp, "nope"), dst, 0644); err == nil {
		t.Fatal("expected error for missing source, got nil")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Errorf("destination should not exist, stat err = %v", err)
	}
}

func TestWriteNewFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "file.txt")

	if err := WriteNewFile(path, []byte("first"), 0644); err != nil {
		t.Fatalf("WriteNewFile failed: %v", err)
	}
	err := WriteNewFile(path, []byte("second"), 0644)
	if !errors.Is(err, fs.ErrExist) {
		t.Fatalf("second WriteNewFile error = %v, want fs.ErrExist", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "first" {
		t.Errorf("content = %q, want %q", data, "first")
	}
}
