package cmd

import (
	"github.com/lugassawan/lintset/internal/composer"
	"github.com/lugassawan/lintset/internal/ruleset"
	"github.com/lugassawan/lintset/internal/termcolor"
)

// statusColor returns the color for a probe status.
func statusColor(s composer.Status) termcolor.Color {
	switch s {
	case composer.StatusIncluded:
		return termcolor.Green
	case composer.StatusUnsupported:
		return termcolor.Yellow
	case composer.StatusSkipped:
		return termcolor.Red
	default:
		return termcolor.Gray
	}
}

// severityColor returns the color for a rule severity.
func severityColor(s ruleset.Severity) termcolor.Color {
	switch s {
	case ruleset.Error:
		return termcolor.Red
	case ruleset.Warn:
		return termcolor.Yellow
	default:
		return termcolor.Gray
	}
}
