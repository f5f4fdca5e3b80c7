package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/tidwall/jsonc"
)

// IsJSONConfig reports whether a is a JSON configuration file. tsconfig and
// friends are read as JSONC, so comments and trailing commas are allowed.
func IsJSONConfig(a Artifact) bool {
	return a.Kind == KindFile && path.Ext(a.Path) == ".json"
}

// ParseJSONConfig strips JSONC comments and trailing commas from data and
// decodes the result into a generic value.
func ParseJSONConfig(data []byte) (interface{}, error) {
	var v interface{}
	if err := json.Unmarshal(jsonc.ToJSON(data), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// CheckJSONConfig reads the JSONC file at p and reports whether it parses.
func CheckJSONConfig(p string) error {
	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("reading %s: %w", p, err)
	}
	if _, err := ParseJSONConfig(data); err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	return nil
}
