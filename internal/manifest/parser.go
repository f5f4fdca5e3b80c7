package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Path returns the manifest path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Exists reports whether dir contains a regular package.json file.
func Exists(dir string) bool {
	info, err := os.Stat(Path(dir))
	return err == nil && info.Mode().IsRegular()
}

// Parse reads and decodes a package.json file.
func Parse(path string) (*PackageJSON, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var pkg PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &pkg, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
