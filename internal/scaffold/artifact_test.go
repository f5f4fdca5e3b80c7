package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestEnsure_DefaultWhenNoTemplate(t *testing.T) {
	root := t.TempDir()
	e := NewEngine(root, filepath.Join(root, "templates"), testData(t))
	a := Artifact{Name: "ignore rules", Path: ".gitignore", Kind: KindFile, Template: "gitignore", Default: "gitignore.tmpl"}

	out, err := e.Ensure(a)
	if err != nil {
		t.Fatalf("Ensure() error: %v", err)
	}
	if out.Status != StatusCreated || out.Source != SourceDefault {
		t.Errorf("outcome = %+v, want created from default", out)
	}
	assertContains(t, readGenerated(t, filepath.Join(root, ".gitignore")), "node_modules/")
}

func TestEnsure_TemplatePreferred(t *testing.T) {
	root := t.TempDir()
	templates := filepath.Join(root, "templates")
	custom := "# team ignore rules\n{{ .NotRendered }}\n"
	writeFile(t, filepath.Join(templates, "gitignore"), custom)

	e := NewEngine(root, templates, testData(t))
	a := Artifact{Name: "ignore rules", Path: ".gitignore", Kind: KindFile, Template: "gitignore", Default: "gitignore.tmpl"}

	out, err := e.Ensure(a)
	if err != nil {
		t.Fatalf("Ensure() error: %v", err)
	}
	if out.Source != SourceTemplate {
		t.Errorf("Source = %q, want %q", out.Source, SourceTemplate)
	}
	if got := readGenerated(t, filepath.Join(root, ".gitignore")); got != custom {
		t.Errorf("template not copied verbatim, got %q", got)
	}
}

func TestEnsure_ExistingFileUntouched(t *testing.T) {
	root := t.TempDir()
	templates := filepath.Join(root, "templates")
	writeFile(t, filepath.Join(templates, "gitignore"), "from template\n")
	writeFile(t, filepath.Join(root, ".gitignore"), "hand written\n")

	e := NewEngine(root, templates, testData(t))
	a := Artifact{Name: "ignore rules", Path: ".gitignore", Kind: KindFile, Template: "gitignore", Default: "gitignore.tmpl"}

	out, err := e.Ensure(a)
	if err != nil {
		t.Fatalf("Ensure() error: %v", err)
	}
	if out.Status != StatusExisted {
		t.Errorf("Status = %v, want %v", out.Status, StatusExisted)
	}
	if got := readGenerated(t, filepath.Join(root, ".gitignore")); got != "hand written\n" {
		t.Errorf("existing file modified: %q", got)
	}
}

func TestEnsure_NestedCreatesParents(t *testing.T) {
	root := t.TempDir()
	e := NewEngine(root, "", testData(t))
	a := Artifact{Name: "CI workflow", Path: ".github/workflows/ci.yml", Kind: KindFile, Default: "ci.yml.tmpl"}

	if _, err := e.Ensure(a); err != nil {
		t.Fatalf("Ensure() error: %v", err)
	}
	content := readGenerated(t, filepath.Join(root, ".github", "workflows", "ci.yml"))
	assertContains(t, content, "run: yarn install")
	assertContains(t, content, `node-version: "18"`)
}

func TestEnsure_TemplateOnlyUnavailable(t *testing.T) {
	root := t.TempDir()
	e := NewEngine(root, filepath.Join(root, "templates"), testData(t))
	a := Artifact{Name: "container compose", Path: "docker-compose.yml", Kind: KindFile, Template: "docker-compose.yml"}

	out, err := e.Ensure(a)
	if err != nil {
		t.Fatalf("Ensure() error: %v", err)
	}
	if out.Status != StatusUnavailable {
		t.Errorf("Status = %v, want %v", out.Status, StatusUnavailable)
	}
	if _, err := os.Stat(filepath.Join(root, "docker-compose.yml")); !os.IsNotExist(err) {
		t.Errorf("compose file should not exist, stat err = %v", err)
	}
}

func TestEnsure_Mode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on Windows")
	}
	root := t.TempDir()
	e := NewEngine(root, "", testData(t))
	a := Artifact{Name: "pre-commit hook", Path: ".husky/pre-commit", Kind: KindFile, Mode: "0755", Default: "pre-commit.tmpl"}

	out, err := e.Ensure(a)
	if err != nil {
		t.Fatalf("Ensure() error: %v", err)
	}
	info, err := os.Stat(out.Target)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0755 {
		t.Errorf("permissions = %o, want %o", perm, 0755)
	}
	assertContains(t, readGenerated(t, out.Target), "yarn lint-staged")
}

func TestEnsure_Directory(t *testing.T) {
	root := t.TempDir()
	e := NewEngine(root, "", testData(t))
	a := Artifact{Name: "assets", Path: "assets/images", Kind: KindDirectory}

	out, err := e.Ensure(a)
	if err != nil {
		t.Fatalf("Ensure() error: %v", err)
	}
	if out.Status != StatusCreated {
		t.Errorf("Status = %v, want %v", out.Status, StatusCreated)
	}

	out, err = e.Ensure(a)
	if err != nil {
		t.Fatalf("second Ensure() error: %v", err)
	}
	if out.Status != StatusExisted {
		t.Errorf("second Status = %v, want %v", out.Status, StatusExisted)
	}
}

func TestEnsure_DirectoryBlockedByFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "assets"), "not a dir")
	e := NewEngine(root, "", testData(t))

	_, err := e.Ensure(Artifact{Name: "assets", Path: "assets", Kind: KindDirectory})
	if !errors.Is(err, ErrNotMaterialized) {
		t.Fatalf("error = %v, want ErrNotMaterialized", err)
	}
}

func TestEnsure_PostconditionFailure(t *testing.T) {
	root := t.TempDir()
	// A regular file where the parent directory should go makes the write fail.
	writeFile(t, filepath.Join(root, ".github"), "blocker")
	e := NewEngine(root, "", testData(t))
	a := Artifact{Name: "CI workflow", Path: ".github/workflows/ci.yml", Kind: KindFile, Default: "ci.yml.tmpl"}

	_, err := e.Ensure(a)
	if !errors.Is(err, ErrNotMaterialized) {
		t.Fatalf("error = %v, want ErrNotMaterialized", err)
	}
	if got := readGenerated(t, filepath.Join(root, ".github")); got != "blocker" {
		t.Errorf("blocking file modified: %q", got)
	}
}

func TestEnsure_UnknownKind(t *testing.T) {
	e := NewEngine(t.TempDir(), "", testData(t))
	if _, err := e.Ensure(Artifact{Path: "x", Kind: "socket"}); err == nil {
		t.Fatal("expected error for unknown kind, got nil")
	}
}

func TestArtifactFileMode(t *testing.T) {
	tests := []struct {
		a       Artifact
		want    os.FileMode
		wantErr bool
	}{
		{Artifact{Kind: KindFile}, 0644, false},
		{Artifact{Kind: KindDirectory}, 0755, false},
		{Artifact{Kind: KindFile, Mode: "0600"}, 0600, false},
		{Artifact{Kind: KindFile, Mode: "rwx"}, 0, true},
	}
	for _, tt := range tests {
		got, err := tt.a.FileMode()
		if tt.wantErr {
			if err == nil {
				t.Errorf("FileMode(%q) expected error", tt.a.Mode)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("FileMode(%q) = %o, %v; want %o", tt.a.Mode, got, err, tt.want)
		}
	}
}

func TestStatusString(t *testing.T) {
	if StatusCreated.String() != "created" || StatusExisted.String() != "existed" || StatusUnavailable.String() != "unavailable" {
		t.Error("unexpected status names")
	}
	if got := Status(42).String(); got != "Status(42)" {
		t.Errorf("String() = %q", got)
	}
}
