package composer

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Masterminds/semver/v3"
	"github.com/lugassawan/lintset/internal/probe"
	"github.com/lugassawan/lintset/internal/rules"
	"github.com/lugassawan/lintset/internal/ruleset"
)

// Status describes why a candidate was or was not merged.
type Status string

const (
	StatusIncluded    Status = "included"
	StatusMissing     Status = "missing"
	StatusUnsupported Status = "unsupported"
	StatusDisabled    Status = "disabled"
	// StatusSkipped marks usable candidates dropped because the primary
	// engine is unavailable.
	StatusSkipped Status = "skipped"
)

// Decision records the outcome for one candidate.
type Decision struct {
	Name    string `json:"name"`
	Package string `json:"package"`
	Range   string `json:"range"`
	Version string `json:"version,omitempty"`
	Primary bool   `json:"primary,omitempty"`
	Status  Status `json:"status"`
}

// Report lists decisions in registry order.
type Report struct {
	Decisions []Decision `json:"decisions"`
}

// Included returns the names of merged candidates.
func (r Report) Included() []string {
	var out []string
	for _, d := range r.Decisions {
		if d.Status == StatusIncluded {
			out = append(out, d.Name)
		}
	}
	return out
}

// Enabled reports whether any configuration was produced.
func (r Report) Enabled() bool {
	return len(r.Included()) > 0
}

type entry struct {
	Candidate
	constraint *semver.Constraints
}

// Composer builds the final configuration from a candidate registry.
type Composer struct {
	entries  []entry
	prober   probe.Prober
	env      rules.Env
	base     ruleset.Fragment
	disabled []string
}

// Option configures a Composer.
type Option func(*Composer)

// WithBase sets a fragment merged ahead of every plugin.
func WithBase(f ruleset.Fragment) Option {
	return func(c *Composer) { c.base = f }
}

// WithDisabled excludes candidates by name without probing them.
func WithDisabled(names ...string) Option {
	return func(c *Composer) { c.disabled = append(c.disabled, names...) }
}

// New validates the registry ranges and returns a Composer. When env has no
// Probe, builders share p.
func New(registry []Candidate, p probe.Prober, env rules.Env, opts ...Option) (*Composer, error) {
	if p == nil {
		return nil, errors.New("composer: nil prober")
	}
	if env.Probe == nil {
		env.Probe = p
	}

	c := &Composer{prober: p, env: env}
	var errs []error
	seen := make(map[string]bool, len(registry))
	for _, cand := range registry {
		if seen[cand.Name] {
			errs = append(errs, fmt.Errorf("duplicate candidate %q", cand.Name))
			continue
		}
		seen[cand.Name] = true

		if cand.Build == nil {
			errs = append(errs, fmt.Errorf("candidate %q has no builder", cand.Name))
			continue
		}
		constraint, err := semver.NewConstraint(cand.Range)
		if err != nil {
			errs = append(errs, fmt.Errorf("candidate %q range %q: %w", cand.Name, cand.Range, err))
			continue
		}
		c.entries = append(c.entries, entry{Candidate: cand, constraint: constraint})
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid registry: %w", errors.Join(errs...))
	}

	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Compose probes every candidate, builds the usable ones in registry order
// and deep-merges their fragments. If a primary candidate is missing or
// unsupported the result is an empty Fragment.
func (c *Composer) Compose() (ruleset.Fragment, Report) {
	var report Report
	var fragments []ruleset.Fragment
	primaryOK := true

	for _, e := range c.entries {
		v, d := c.resolve(e)
		report.Decisions = append(report.Decisions, d)
		if d.Status != StatusIncluded {
			if e.Primary {
				primaryOK = false
			}
			continue
		}
		fragments = append(fragments, e.Build(v, c.env))
	}

	if !primaryOK {
		for i := range report.Decisions {
			if report.Decisions[i].Status == StatusIncluded {
				report.Decisions[i].Status = StatusSkipped
			}
		}
		return ruleset.Fragment{}, report
	}

	out := ruleset.Merge(ruleset.Fragment{}, c.base)
	for _, f := range fragments {
		out = ruleset.Merge(out, f)
	}
	return out, report
}

// ComposeSingle builds the named candidate alone, without the base fragment
// or any merge. An unusable candidate yields an empty Fragment.
func (c *Composer) ComposeSingle(name string) (ruleset.Fragment, Decision, error) {
	for _, e := range c.entries {
		if e.Name != name {
			continue
		}
		v, d := c.resolve(e)
		if d.Status != StatusIncluded {
			return ruleset.Fragment{}, d, nil
		}
		return e.Build(v, c.env), d, nil
	}
	return nil, Decision{}, fmt.Errorf("unknown candidate %q", name)
}

// Packages returns the npm names probed by this composer, including the
// companion packages builders consult.
func (c *Composer) Packages() []string {
	out := make([]string, 0, len(c.entries)+1)
	for _, e := range c.entries {
		out = append(out, e.Package)
	}
	if !slices.Contains(out, rules.JestPackage) {
		out = append(out, rules.JestPackage)
	}
	return out
}

func (c *Composer) resolve(e entry) (*semver.Version, Decision) {
	d := Decision{
		Name:    e.Name,
		Package: e.Package,
		Range:   e.Range,
		Primary: e.Primary,
	}
	if slices.Contains(c.disabled, e.Name) {
		d.Status = StatusDisabled
		return nil, d
	}

	raw, ok := c.prober.Version(e.Package)
	if !ok {
		d.Status = StatusMissing
		return nil, d
	}
	d.Version = raw

	v, err := semver.StrictNewVersion(raw)
	if err != nil || !e.constraint.Check(v) {
		d.Status = StatusUnsupported
		return nil, d
	}
	d.Status = StatusIncluded
	return v, d
}

// Preamble builds the fragment of project-level keys that precede plugin
// configuration.
func Preamble(root bool, envs []string) ruleset.Fragment {
	f := ruleset.Fragment{}
	if root {
		f[ruleset.KeyRoot] = true
	}
	if len(envs) > 0 {
		env := make(map[string]any, len(envs))
		for _, name := range envs {
			env[name] = true
		}
		f[ruleset.KeyEnv] = env
	}
	return f
}
