package manifest

// FileName is the manifest file name inside a project root.
const FileName = "package.json"

// PackageJSON holds the package.json fields the scaffolder reads.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version,omitempty"`
	Private         bool              `json:"private,omitempty"`
	PackageManager  string            `json:"packageManager,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// HasDependency reports whether name is declared as a runtime or
// development dependency.
func (p *PackageJSON) HasDependency(name string) bool {
	if _, ok := p.Dependencies[name]; ok {
		return true
	}
	_, ok := p.DevDependencies[name]
	return ok
}

// ManagerName returns the package manager named by the "packageManager"
// field (e.g. "pnpm" for "pnpm@9.1.0"), or "" when the field is absent.
func (p *PackageJSON) ManagerName() string {
	name := p.PackageManager
	for i := 0; i < len(name); i++ {
		if name[i] == '@' {
			return name[:i]
		}
	}
	return name
}
