package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lugassawan/lintset/cmd"
	"github.com/lugassawan/lintset/internal/output"
	"github.com/lugassawan/lintset/internal/schema"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var silent *output.SilentError
		if errors.As(err, &silent) {
			os.Exit(silent.ExitCode)
		}

		if cmd.IsJSONMode() {
			code := output.ErrGeneral
			var invalid *schema.Error
			if errors.As(err, &invalid) {
				code = output.ErrInvalid
			}
			_ = output.WriteJSONError(os.Stdout, cmd.Version(), cmd.CommandName(), err.Error(), code)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
