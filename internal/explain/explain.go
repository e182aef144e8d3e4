// Package explain computes which rules ESLint applies to a given file once
// file-pattern overrides are taken into account.
package explain

import (
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lugassawan/lintset/internal/ruleset"
)

// Result is the effective rule set for one file.
type Result struct {
	File      string        `json:"file"`
	Overrides []int         `json:"overrides"`
	Rules     ruleset.Rules `json:"rules"`
	// Sources maps each rule to "base" or "overrides[i]", whichever set it last.
	Sources map[string]string `json:"sources"`
}

// Names returns the effective rule ids in sorted order.
func (r Result) Names() []string {
	names := make([]string, 0, len(r.Rules))
	for name := range r.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve applies every override whose files patterns match file, in
// declaration order, on top of the top-level rules. file is taken relative
// to the directory holding the configuration.
func Resolve(f ruleset.Fragment, file string) Result {
	rel := filepath.ToSlash(filepath.Clean(file))
	rel = strings.TrimPrefix(rel, "./")

	res := Result{
		File:      rel,
		Overrides: []int{},
		Sources:   map[string]string{},
	}
	merged := ruleset.Fragment{ruleset.KeyRules: ruleset.Rules{}}
	merged = ruleset.Merge(merged, ruleset.Fragment{ruleset.KeyRules: f.Rules()})
	for name := range f.Rules() {
		res.Sources[name] = "base"
	}

	for i, block := range f.Overrides() {
		if !Matches(ruleset.Fragment(block).Strings(ruleset.KeyFiles), rel) {
			continue
		}
		blockRules := ruleset.Fragment(block).Rules()
		merged = ruleset.Merge(merged, ruleset.Fragment{ruleset.KeyRules: blockRules})
		for name := range blockRules {
			res.Sources[name] = "overrides[" + strconv.Itoa(i) + "]"
		}
		res.Overrides = append(res.Overrides, i)
	}

	res.Rules = merged.Rules()
	return res
}

// Matches reports whether any pattern matches the slash-separated path rel.
// Patterns without a slash match the base name, as ESLint does.
func Matches(patterns []string, rel string) bool {
	for _, p := range patterns {
		target := rel
		if !strings.Contains(p, "/") {
			target = path.Base(rel)
		}
		p = strings.TrimPrefix(p, "./")
		if ok, err := doublestar.Match(p, target); err == nil && ok {
			return true
		}
	}
	return false
}
