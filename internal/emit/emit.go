package emit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/lugassawan/lintset/internal/ruleset"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

// Format is an eslintrc serialization.
type Format string

const (
	FormatJSON        Format = "json"
	FormatYAML        Format = "yaml"
	FormatPackageJSON Format = "package-json"
)

// PackageJSONKey is the package.json field ESLint reads its config from.
const PackageJSONKey = "eslintConfig"

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatPackageJSON}
}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatPackageJSON:
		return true
	}
	return false
}

// DefaultPath returns the conventional file name for f.
func DefaultPath(f Format) string {
	switch f {
	case FormatYAML:
		return ".eslintrc.yaml"
	case FormatPackageJSON:
		return "package.json"
	default:
		return ".eslintrc.json"
	}
}

// Encode writes the fragment to w. The package-json format encodes the
// fragment as it would appear under the eslintConfig key.
func Encode(w io.Writer, f ruleset.Fragment, format Format) error {
	if f == nil {
		f = ruleset.Fragment{}
	}
	switch format {
	case FormatJSON, FormatPackageJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(f)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any(f)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// Write stores the fragment at path in the given format. For package-json the
// file must already exist and only the eslintConfig key is replaced.
func Write(path string, f ruleset.Fragment, format Format) error {
	if format == FormatPackageJSON {
		return WritePackageJSON(path, f)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, f, format); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return writeFile(path, buf.Bytes())
}

// WritePackageJSON sets the eslintConfig key of the package.json at path,
// leaving every other key in place.
func WritePackageJSON(path string, f ruleset.Fragment) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%s is not valid JSON", path)
	}
	if f == nil {
		f = ruleset.Fragment{}
	}

	raw, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	updated, err := sjson.SetRawBytes(data, PackageJSONKey, raw)
	if err != nil {
		return fmt.Errorf("update %s: %w", PackageJSONKey, err)
	}

	out := pretty.PrettyOptions(updated, &pretty.Options{Indent: "  ", Width: 80, SortKeys: false})
	return writeFile(path, out)
}

// Read loads a configuration previously written at path in the given format,
// normalized with ruleset.Normalize. A package.json without an eslintConfig
// key reads as an empty configuration.
func Read(path string, format Format) (map[string]any, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var doc any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case FormatPackageJSON:
		if !gjson.ValidBytes(data) {
			return nil, fmt.Errorf("%s is not valid JSON", path)
		}
		v := gjson.GetBytes(data, PackageJSONKey)
		if !v.Exists() {
			return map[string]any{}, nil
		}
		doc = v.Value()
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	m, ok := doc.(map[string]any)
	if !ok {
		if doc == nil {
			return map[string]any{}, nil
		}
		return nil, errors.New("configuration is not an object")
	}
	return ruleset.Fragment(m).Normalize()
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0644) //nolint:gosec // lint configs are committed and must be world-readable
}
