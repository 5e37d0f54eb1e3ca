package cmd

import "errors"

// Exit codes reported to the shell. Each validation failure kind maps to
// its own code so scripts can branch without parsing output.
const (
	exitOK           = 0
	exitUnknownError = 1
	exitNotFound     = 2
	exitEmptyFile    = 3
	exitUndetected   = 4
	exitParseFailure = 5
)

// exitError carries an exit code alongside the underlying error
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func exitWith(code int, err error) error {
	return &exitError{code: code, err: err}
}

// exitCodeFor extracts the exit code from an error chain, defaulting to
// the unknown-error code.
func exitCodeFor(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUnknownError
}
