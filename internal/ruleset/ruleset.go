package ruleset

import (
	"encoding/json"
	"slices"
)

// Severity is an ESLint rule level.
type Severity string

const (
	Off   Severity = "off"
	Warn  Severity = "warn"
	Error Severity = "error"
)

// Top-level eslintrc keys produced by the builders.
const (
	KeyRoot      = "root"
	KeyEnv       = "env"
	KeyPlugins   = "plugins"
	KeyExtends   = "extends"
	KeyRules     = "rules"
	KeySettings  = "settings"
	KeyOverrides = "overrides"
	KeyFiles     = "files"
)

// Rules maps a rule id to a Severity or to a []any whose first element is
// the Severity and whose remaining elements are rule options.
type Rules = map[string]any

// Fragment is a partial eslintrc document. The zero value (nil) is the
// empty configuration.
type Fragment map[string]any

// Rule builds a rule entry with options.
func Rule(sev Severity, opts ...any) []any {
	return append([]any{sev}, opts...)
}

// List converts strings to the []any form Merge concatenates.
func List(items ...string) []any {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}
	return out
}

// Override builds a file-pattern scoped block for the overrides list.
func Override(files []string, rules Rules) map[string]any {
	return map[string]any{
		KeyFiles: List(files...),
		KeyRules: rules,
	}
}

// IsEmpty reports whether f carries no configuration at all.
func (f Fragment) IsEmpty() bool {
	return len(f) == 0
}

// Rules returns the top-level rule table, or nil.
func (f Fragment) Rules() Rules {
	r, _ := f[KeyRules].(map[string]any)
	return r
}

// Strings returns the string items of a list-valued key such as plugins or extends.
func (f Fragment) Strings(key string) []string {
	items, _ := f[key].([]any)
	var out []string
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// HasPlugin reports whether name is declared in the plugins list.
func (f Fragment) HasPlugin(name string) bool {
	return slices.Contains(f.Strings(KeyPlugins), name)
}

// Overrides returns the override blocks in declaration order.
func (f Fragment) Overrides() []map[string]any {
	items, _ := f[KeyOverrides].([]any)
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// SeverityOf extracts the level from a rule entry. Returns "" when the entry
// is not a recognized shape.
func SeverityOf(entry any) Severity {
	switch v := entry.(type) {
	case Severity:
		return v
	case string:
		return Severity(v)
	case []any:
		if len(v) > 0 {
			return SeverityOf(v[0])
		}
	}
	return ""
}

// Normalize returns f as plain JSON values (strings, float64, bool, nil,
// []any, map[string]any) so fragments can be compared with decoded files.
func (f Fragment) Normalize() (map[string]any, error) {
	if f == nil {
		return map[string]any{}, nil
	}
	raw, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
