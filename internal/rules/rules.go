// Package rules holds the per-plugin rule tables and the builders that turn
// an installed plugin version into a configuration fragment.
package rules

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/lugassawan/lintset/internal/probe"
	"github.com/lugassawan/lintset/internal/ruleset"
)

const (
	sevOff   = ruleset.Off
	sevWarn  = ruleset.Warn
	sevError = ruleset.Error
)

// opt is shorthand for a rule entry with options.
var opt = ruleset.Rule

// obj is shorthand for a rule options object.
type obj = map[string]any

// Mode selects severities that differ between environments.
type Mode string

const (
	Development Mode = "development"
	Testing     Mode = "testing"
	Production  Mode = "production"
)

// ParseMode validates a configured mode. An empty string is Development.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", Development:
		return Development, nil
	case Testing:
		return Testing, nil
	case Production:
		return Production, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want %s, %s or %s)", s, Development, Testing, Production)
	}
}

// ModeFromNodeEnv maps a NODE_ENV value to a Mode. Anything other than
// "production" or "testing" is Development.
func ModeFromNodeEnv(v string) Mode {
	switch Mode(v) {
	case Production:
		return Production
	case Testing:
		return Testing
	default:
		return Development
	}
}

// Env is the input a builder may consult besides its plugin version.
type Env struct {
	Mode Mode
	// Probe resolves companion packages. May be nil.
	Probe probe.Prober
}

func (e Env) production() bool { return e.Mode == Production }
func (e Env) testing() bool    { return e.Mode == Testing }

func (e Env) version(pkg string) (string, bool) {
	if e.Probe == nil {
		return "", false
	}
	return e.Probe.Version(pkg)
}

// Builder maps an installed plugin version to its configuration fragment.
type Builder func(v *semver.Version, env Env) ruleset.Fragment

// Increment is a rule table introduced by a plugin release.
type Increment struct {
	Since string
	Rules ruleset.Rules
}

func (inc Increment) applies(v *semver.Version) bool {
	c, err := semver.NewConstraint(">= " + inc.Since)
	if err != nil {
		return false
	}
	return c.Check(v)
}

// Table is a base rule table plus version-gated increments.
type Table struct {
	Base       ruleset.Rules
	Increments []Increment
}

// Build folds every increment whose ">= Since" constraint v satisfies into
// the base table, oldest first. The base table is always included. As with
// npm ranges, a prerelease never satisfies a release threshold.
func (t Table) Build(v *semver.Version) ruleset.Rules {
	out := ruleset.Fragment{ruleset.KeyRules: maps.Clone(t.Base)}
	for _, inc := range t.sorted() {
		if v != nil && inc.applies(v) {
			out = ruleset.Merge(out, ruleset.Fragment{ruleset.KeyRules: inc.Rules})
		}
	}
	rules := out.Rules()
	if rules == nil {
		rules = ruleset.Rules{}
	}
	return rules
}

// Thresholds returns the increment versions in ascending order.
func (t Table) Thresholds() []string {
	inc := t.sorted()
	out := make([]string, len(inc))
	for i, in := range inc {
		out[i] = in.Since
	}
	return out
}

func (t Table) sorted() []Increment {
	inc := slices.Clone(t.Increments)
	slices.SortStableFunc(inc, func(a, b Increment) int {
		return semver.MustParse(a.Since).Compare(semver.MustParse(b.Since))
	})
	return inc
}
