package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rnkit-labs/rnsetup/internal/platform"
)

// ErrNotMaterialized means an artifact was still absent after the engine
// tried to create it.
var ErrNotMaterialized = errors.New("artifact could not be materialized")

// Kind is the filesystem shape of an artifact.
type Kind string

// Artifact kinds.
const (
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
)

const (
	defaultFileMode os.FileMode = 0644
	defaultDirMode  os.FileMode = 0755
)

// Artifact describes one file or directory to ensure exists.
type Artifact struct {
	Name     string `yaml:"name"`
	Path     string `yaml:"path"`               // slash-separated, relative to the project root
	Kind     Kind   `yaml:"kind"`               // file or directory
	Mode     string `yaml:"mode,omitempty"`     // octal, e.g. "0755"; files default to 0644
	Template string `yaml:"template,omitempty"` // file name inside the templates directory
	Default  string `yaml:"default,omitempty"`  // embedded default under defaults/
}

// TemplateOnly reports whether the artifact is only created from a template.
func (a Artifact) TemplateOnly() bool {
	return a.Kind == KindFile && a.Default == ""
}

// FileMode returns the permission bits for the artifact.
func (a Artifact) FileMode() (os.FileMode, error) {
	if a.Mode == "" {
		if a.Kind == KindDirectory {
			return defaultDirMode, nil
		}
		return defaultFileMode, nil
	}
	m, err := strconv.ParseUint(a.Mode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("artifact %s: invalid mode %q: %w", a.Path, a.Mode, err)
	}
	return os.FileMode(m).Perm(), nil
}

// Status is what Ensure did with an artifact.
type Status int

const (
	// StatusCreated means the artifact was written during this call.
	StatusCreated Status = iota
	// StatusExisted means the artifact was already present and left untouched.
	StatusExisted
	// StatusUnavailable means a template-only artifact had no template.
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusExisted:
		return "existed"
	case StatusUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Source is where the content of a created file came from.
type Source string

// Content sources.
const (
	SourceNone     Source = ""
	SourceTemplate Source = "template"
	SourceDefault  Source = "default"
)

// Outcome is the result of ensuring one artifact.
type Outcome struct {
	Status Status
	Source Source
	Target string // absolute path of the artifact
}

// Engine ensures artifacts exist under Root.
type Engine struct {
	Root         string
	TemplatesDir string
	Data         *ScaffoldData
}

// NewEngine returns an engine rooted at root.
func NewEngine(root, templatesDir string, data *ScaffoldData) *Engine {
	return &Engine{Root: root, TemplatesDir: templatesDir, Data: data}
}

// Target returns the absolute path for an artifact.
func (e *Engine) Target(a Artifact) string {
	return filepath.Join(e.Root, filepath.FromSlash(a.Path))
}

// Ensure creates the artifact if it is absent. Existing targets are never
// modified. A non-nil error means the artifact is missing after the attempt;
// it wraps ErrNotMaterialized together with the underlying cause.
func (e *Engine) Ensure(a Artifact) (Outcome, error) {
	target := e.Target(a)
	out := Outcome{Target: target}

	present, err := exists(target, a.Kind)
	if err != nil {
		return out, err
	}
	if present {
		out.Status = StatusExisted
		return out, nil
	}

	mode, err := a.FileMode()
	if err != nil {
		return out, err
	}

	var writeErr error
	switch a.Kind {
	case KindDirectory:
		writeErr = os.MkdirAll(target, mode)
	case KindFile:
		var src Source
		src, writeErr = e.writeFile(a, target, mode)
		if src == SourceNone && writeErr == nil {
			out.Status = StatusUnavailable
			return out, nil
		}
		out.Source = src
	default:
		return out, fmt.Errorf("artifact %s: unknown kind %q", a.Path, a.Kind)
	}

	if present, _ := exists(target, a.Kind); !present {
		return out, errors.Join(fmt.Errorf("%s: %w", a.Path, ErrNotMaterialized), writeErr)
	}
	out.Status = StatusCreated
	return out, nil
}

// writeFile creates the parent directories, then copies the template or
// renders the default. It reports SourceNone with a nil error when there is
// nothing to write.
func (e *Engine) writeFile(a Artifact, target string, mode os.FileMode) (Source, error) {
	tmpl, hasTemplate := e.templatePath(a)
	if !hasTemplate && a.Default == "" {
		return SourceNone, nil
	}

	if err := os.MkdirAll(filepath.Dir(target), defaultDirMode); err != nil {
		return SourceNone, fmt.Errorf("creating parent of %s: %w", a.Path, err)
	}

	if hasTemplate {
		if err := platform.CopyFile(tmpl, target, mode); err != nil {
			return SourceTemplate, err
		}
		return SourceTemplate, platform.ApplyMode(target, mode)
	}

	content, err := RenderDefault(a.Default, e.Data)
	if err != nil {
		return SourceDefault, err
	}
	if err := platform.WriteNewFile(target, content, mode); err != nil {
		return SourceDefault, err
	}
	return SourceDefault, platform.ApplyMode(target, mode)
}

// templatePath returns the template for a if one exists as a regular file.
func (e *Engine) templatePath(a Artifact) (string, bool) {
	if a.Template == "" || e.TemplatesDir == "" {
		return "", false
	}
	p := filepath.Join(e.TemplatesDir, filepath.FromSlash(a.Template))
	info, err := os.Stat(p)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return p, true
}

// exists reports whether target is present in the shape kind expects. A
// file artifact counts as present when anything occupies its path, so it is
// never replaced. A directory artifact blocked by a non-directory is an
// error. Paths that cannot be inspected count as absent; the write attempt
// and its postcondition check report the real problem.
func exists(target string, kind Kind) (bool, error) {
	stat := os.Lstat
	if kind == KindDirectory {
		stat = os.Stat
	}
	info, err := stat(target)
	if err != nil {
		return false, nil
	}
	if kind == KindDirectory && !info.IsDir() {
		return false, fmt.Errorf("%s exists but is not a directory: %w", target, ErrNotMaterialized)
	}
	return true, nil
}
