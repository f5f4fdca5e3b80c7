package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"text/template"
	"time"

	"github.com/rnkit-labs/rnsetup/internal/runtime"
)

//go:embed defaults/*.tmpl
var defaultsFS embed.FS

// ScaffoldData holds all template variables available to default templates.
type ScaffoldData struct {
	ProjectName       string // package.json name, or the directory name
	NodeVersion       string // major version for CI, e.g. "18"
	PackageManager    string // "npm", "yarn", "pnpm" or "bun"
	InstallCommand    string // e.g. "yarn install"
	LintCommand       string // e.g. "yarn lint"
	TypecheckCommand  string // e.g. "yarn typecheck"
	TestCommand       string // e.g. "yarn test"
	LintStagedCommand string // e.g. "yarn lint-staged"
	Year              int
}

// NewScaffoldData creates a ScaffoldData with derived fields populated.
// nodeMinVersion feeds the CI node-version; when it cannot be parsed the CI
// workflow falls back to the current LTS line.
func NewScaffoldData(projectName string, pm runtime.PackageManager, nodeMinVersion string) *ScaffoldData {
	d := &ScaffoldData{
		ProjectName:       projectName,
		NodeVersion:       "lts/*",
		PackageManager:    pm.Name,
		InstallCommand:    pm.InstallCommand().String(),
		LintCommand:       pm.RunScriptCommand("lint").String(),
		TypecheckCommand:  pm.RunScriptCommand("typecheck").String(),
		TestCommand:       pm.RunScriptCommand("test").String(),
		LintStagedCommand: pm.ExecCommand("lint-staged").String(),
		Year:              time.Now().Year(),
	}
	if v, err := runtime.ParseVersion(nodeMinVersion); err == nil {
		d.NodeVersion = strconv.FormatUint(v.Major(), 10)
	}
	return d
}

// RenderDefault renders the embedded default template name with data.
func RenderDefault(name string, data *ScaffoldData) ([]byte, error) {
	tmplBytes, err := fs.ReadFile(defaultsFS, path.Join("defaults", name))
	if err != nil {
		return nil, fmt.Errorf("default template %q not found: %w", name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// HasDefault reports whether an embedded default named name exists.
func HasDefault(name string) bool {
	_, err := fs.Stat(defaultsFS, path.Join("defaults", name))
	return err == nil
}
