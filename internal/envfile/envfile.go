// Package envfile reads dotenv files and compares a project's .env against
// its committed .env.example.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File names relative to the project root.
const (
	ExampleName = ".env.example"
	LocalName   = ".env"
)

// Entry is a single key-value pair from a dotenv file.
type Entry struct {
	Key   string
	Value string
}

// Parse reads a dotenv file. Blank lines, comments and lines without "=" are
// skipped, and a leading "export " is ignored.
func Parse(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		entries = append(entries, Entry{
			Key:   strings.TrimSpace(key),
			Value: unquote(strings.TrimSpace(value)),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return entries, nil
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

// sensitivePatterns are substrings that indicate a value should be redacted.
var sensitivePatterns = []string{"TOKEN", "SECRET", "PASSWORD", "KEY", "CREDENTIAL"}

// Redact hides the value of keys that look sensitive. Values of 4+ chars keep
// their first 4 chars followed by "***"; shorter values become "***".
func Redact(key, value string) string {
	upper := strings.ToUpper(key)
	for _, pattern := range sensitivePatterns {
		if strings.Contains(upper, pattern) {
			if len(value) >= 4 {
				return value[:4] + "***"
			}
			return "***"
		}
	}
	return value
}

// Drift describes how a local .env differs from the example.
type Drift struct {
	Missing []string // declared in the example, absent locally
	Empty   []string // present locally with an empty value
	Extra   []string // present locally, not declared in the example
}

// Clean reports whether the local file declares every example key.
func (d Drift) Clean() bool {
	return len(d.Missing) == 0 && len(d.Empty) == 0
}

// Compare diffs the .env in dir against the .env.example in dir. Keys keep
// the order of the file they come from.
func Compare(dir string) (Drift, error) {
	example, err := Parse(filepath.Join(dir, ExampleName))
	if err != nil {
		return Drift{}, err
	}
	local, err := Parse(filepath.Join(dir, LocalName))
	if err != nil {
		return Drift{}, err
	}

	declared := make(map[string]bool, len(example))
	for _, e := range example {
		declared[e.Key] = true
	}
	values := make(map[string]string, len(local))
	for _, e := range local {
		values[e.Key] = e.Value
	}

	var d Drift
	for _, e := range example {
		v, ok := values[e.Key]
		switch {
		case !ok:
			d.Missing = append(d.Missing, e.Key)
		case v == "":
			d.Empty = append(d.Empty, e.Key)
		}
	}
	for _, e := range local {
		if !declared[e.Key] {
			d.Extra = append(d.Extra, e.Key)
		}
	}
	return d, nil
}
