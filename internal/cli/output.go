package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Process exit statuses
const (
	ExitOK       = 0
	ExitRejected = 1 // the form refused the submission
	ExitUsage    = 2 // bad flags, unreadable config, TUI failure
)

// ExitError is a command failure that ends the process with Code
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitErrorf(code int, format string, args ...any) error {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}

// ExitCode maps err to a process exit status. Errors that carry no status,
// such as cobra's flag parsing errors, count as usage errors.
func ExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &exitErr):
		return exitErr.Code
	default:
		return ExitUsage
	}
}

// output writes command results as text or JSON
type output struct {
	json bool
	w    io.Writer
}

func newOutput(format string, w io.Writer) *output {
	return &output{json: format == "json", w: w}
}

func (o *output) writeJSON(v any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (o *output) printf(format string, args ...any) {
	fmt.Fprintf(o.w, format, args...)
}
