package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Envelope is the document every --json command prints on success. Data
// holds the command-specific payload from types.go.
type Envelope struct {
	Version string `json:"version"`
	Command string `json:"command"`
	Data    any    `json:"data"`
}

// ErrorEnvelope is printed instead of Envelope when a --json run fails.
type ErrorEnvelope struct {
	Version string `json:"version"`
	Command string `json:"command"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// Codes reported in ErrorEnvelope.Code.
const (
	ErrGeneral = "GENERAL_ERROR"
	// ErrInvalid marks a composed configuration rejected by the eslintrc schema.
	ErrInvalid = "INVALID_CONFIG"
)

// SilentError carries an exit status for a failure the command has already
// reported, such as a stale configuration found by check.
type SilentError struct{ ExitCode int }

func (e *SilentError) Error() string { return fmt.Sprintf("exit %d", e.ExitCode) }

// WriteJSON prints data wrapped in an Envelope.
func WriteJSON(w io.Writer, version, command string, data any) error {
	return encode(w, Envelope{Version: version, Command: command, Data: data})
}

// WriteJSONError prints an ErrorEnvelope with the given code.
func WriteJSONError(w io.Writer, version, command, errMsg, code string) error {
	return encode(w, ErrorEnvelope{Version: version, Command: command, Error: errMsg, Code: code})
}

// encode indents by two spaces and leaves <, > and & literal so rule
// options and glob patterns read as written.
func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// IsJSON reports whether cmd runs with --json, declared locally or on a
// parent. A nil command or one without the flag is never in JSON mode.
func IsJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	f := cmd.Flags().Lookup("json")
	if f == nil {
		f = cmd.InheritedFlags().Lookup("json")
	}
	return f != nil && f.Value.String() == "true"
}
