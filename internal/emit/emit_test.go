package emit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lugassawan/lintset/internal/ruleset"
	"github.com/tidwall/gjson"
)

func sample() ruleset.Fragment {
	return ruleset.Fragment{
		"root":    true,
		"extends": ruleset.List("eslint:recommended"),
		"rules": ruleset.Rules{
			"semi":   ruleset.Rule(ruleset.Error, "always"),
			"indent": ruleset.Rule(ruleset.Error, 4, map[string]any{"SwitchCase": 1}),
			"yoda":   ruleset.Error,
		},
		"overrides": []any{
			ruleset.Override([]string{"*.vue"}, ruleset.Rules{"indent": ruleset.Off}),
		},
	}
}

func TestFormat(t *testing.T) {
	for _, f := range Formats() {
		if !f.Valid() {
			t.Errorf("%q should be valid", f)
		}
	}
	if Format("toml").Valid() {
		t.Error("toml should not be valid")
	}

	tests := map[Format]string{
		FormatJSON:        ".eslintrc.json",
		FormatYAML:        ".eslintrc.yaml",
		FormatPackageJSON: "package.json",
		"":                ".eslintrc.json",
	}
	for f, want := range tests {
		if got := DefaultPath(f); got != want {
			t.Errorf("DefaultPath(%q) = %q, want %q", f, got, want)
		}
	}
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sample(), FormatJSON); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if got := gjson.GetBytes(buf.Bytes(), "rules.semi.0").String(); got != "error" {
		t.Errorf("rules.semi[0] = %q, want %q", got, "error")
	}
	if got := gjson.GetBytes(buf.Bytes(), "overrides.0.files.0").String(); got != "*.vue" {
		t.Errorf("overrides[0].files[0] = %q, want %q", got, "*.vue")
	}
	if !strings.Contains(buf.String(), "\n  \"extends\"") {
		t.Errorf("output not indented:\n%s", buf.String())
	}
}

func TestEncodeUnsupported(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, sample(), "toml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWriteAndReadRoundTrip(t *testing.T) {
	want, err := sample().Normalize()
	if err != nil {
		t.Fatal(err)
	}

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", DefaultPath(format))
			if err := Write(path, sample(), format); err != nil {
				t.Fatalf("Write: %v", err)
			}
			got, err := Read(path, format)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWritePackageJSONPreservesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	orig := `{"name":"app","version":"1.0.0","scripts":{"lint":"eslint ."},"eslintConfig":{"extends":"old"}}`
	if err := os.WriteFile(path, []byte(orig), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Write(path, sample(), FormatPackageJSON); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := gjson.GetBytes(data, "scripts.lint").String(); got != "eslint ." {
		t.Errorf("scripts.lint = %q, want preserved", got)
	}
	if got := gjson.GetBytes(data, "name").String(); got != "app" {
		t.Errorf("name = %q, want preserved", got)
	}
	if got := gjson.GetBytes(data, "eslintConfig.extends.0").String(); got != "eslint:recommended" {
		t.Errorf("eslintConfig.extends[0] = %q, want replaced config", got)
	}

	got, err := Read(path, FormatPackageJSON)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want, _ := sample().Normalize()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("package.json config mismatch (-want +got):\n%s", diff)
	}
}

func TestWritePackageJSONErrors(t *testing.T) {
	dir := t.TempDir()
	if err := WritePackageJSON(filepath.Join(dir, "package.json"), sample()); err == nil {
		t.Error("expected error for missing package.json")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := WritePackageJSON(bad, sample()); err == nil {
		t.Error("expected error for invalid package.json")
	}
}

func TestReadPackageJSONWithoutConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "package.json")
	if err := os.WriteFile(path, []byte(`{"name":"app"}`), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := Read(path, FormatPackageJSON)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Read() = %v, want empty", got)
	}
}

func TestReadRejectsNonObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".eslintrc.json")
	raw, _ := json.Marshal([]string{"a"})
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Read(path, FormatJSON); err == nil {
		t.Error("expected error for array document")
	}
}
