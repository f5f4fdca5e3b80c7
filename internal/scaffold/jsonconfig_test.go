package scaffold

import (
	"path/filepath"
	"testing"
)

func TestParseJSONConfig_AllowsComments(t *testing.T) {
	src := []byte(`{
  // strict mode for the whole project
  "compilerOptions": {
    "strict": true, /* no implicit any */
    "jsx": "react-native",
  },
}`)
	v, err := ParseJSONConfig(src)
	if err != nil {
		t.Fatalf("ParseJSONConfig failed: %v", err)
	}
	opts := v.(map[string]interface{})["compilerOptions"].(map[string]interface{})
	if opts["jsx"] != "react-native" {
		t.Errorf("jsx = %v", opts["jsx"])
	}
}

func TestParseJSONConfig_RejectsBroken(t *testing.T) {
	if _, err := ParseJSONConfig([]byte(`{"compilerOptions": {`)); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestIsJSONConfig(t *testing.T) {
	tests := []struct {
		a    Artifact
		want bool
	}{
		{Artifact{Path: "tsconfig.json", Kind: KindFile}, true},
		{Artifact{Path: ".prettierrc.json", Kind: KindFile}, true},
		{Artifact{Path: ".eslintrc.js", Kind: KindFile}, false},
		{Artifact{Path: "fixtures.json", Kind: KindDirectory}, false},
	}
	for _, tt := range tests {
		if got := IsJSONConfig(tt.a); got != tt.want {
			t.Errorf("IsJSONConfig(%s) = %v, want %v", tt.a.Path, got, tt.want)
		}
	}
}

func TestDefaults_JSONConfigsParse(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatal(err)
	}
	root := t.TempDir()
	e := NewEngine(root, "", testData(t))

	checked := 0
	for _, a := range c.Artifacts {
		if !IsJSONConfig(a) {
			continue
		}
		if _, err := e.Ensure(a); err != nil {
			t.Fatalf("Ensure(%s): %v", a.Path, err)
		}
		if err := CheckJSONConfig(e.Target(a)); err != nil {
			t.Errorf("generated %s does not parse: %v", a.Path, err)
		}
		checked++
	}
	if checked == 0 {
		t.Error("catalog has no JSON configs")
	}
}

func TestCheckJSONConfig_Missing(t *testing.T) {
	if err := CheckJSONConfig(filepath.Join(t.TempDir(), "tsconfig.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
