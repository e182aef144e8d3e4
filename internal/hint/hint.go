package hint

import (
	"fmt"
	"os"

	"github.com/lugassawan/lintset/internal/termcolor"
	"github.com/spf13/cobra"
)

// QuietEnv names the variable that silences the trailing flag suggestions,
// whatever its value.
const QuietEnv = "LINTSET_QUIET"

// Option is one suggested flag and what it changes about the composed output.
type Option struct {
	Flag        string
	Description string
}

// Hints gathers suggestions for flags a generate or check run left at their
// defaults.
type Hints struct {
	cmd     *cobra.Command
	painter *termcolor.Painter
	options []Option
}

// New binds suggestions to cmd; p decides whether they are dimmed.
func New(cmd *cobra.Command, p *termcolor.Painter) *Hints {
	return &Hints{cmd: cmd, painter: p}
}

// Add queues a suggestion for the flag named without its leading dashes.
func (h *Hints) Add(flag, description string) *Hints {
	h.options = append(h.options, Option{Flag: flag, Description: description})
	return h
}

// Remaining lists queued suggestions whose flag was not given explicitly.
func (h *Hints) Remaining() []Option {
	var out []Option
	for _, o := range h.options {
		if f := h.cmd.Flags().Lookup(o.Flag); f != nil && f.Changed {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Show writes the remaining suggestions to the command's stderr in gray.
// Nothing is printed under QuietEnv or when every flag was already given.
func (h *Hints) Show() {
	if _, ok := os.LookupEnv(QuietEnv); ok {
		return
	}
	remaining := h.Remaining()
	if len(remaining) == 0 {
		return
	}

	w := h.cmd.ErrOrStderr()
	fmt.Fprintln(w, h.painter.Paint("Options:", termcolor.Gray))
	for _, o := range remaining {
		line := fmt.Sprintf("  --%-12s %s", o.Flag, o.Description)
		fmt.Fprintln(w, h.painter.Paint(line, termcolor.Gray))
	}
}
