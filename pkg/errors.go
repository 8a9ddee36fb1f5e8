package pkg

import (
	"errors"
	"fmt"
)

const (
	exitError    = 1
	exitArgError = 2
)

// ArgError reports invalid command-line arguments. It is always returned
// before any request is sent.
type ArgError struct {
	Msg string
}

func (e *ArgError) Error() string {
	return e.Msg
}

func argErrorf(format string, args ...any) error {
	return &ArgError{Msg: fmt.Sprintf(format, args...)}
}

// ExitCode maps the error returned by the app to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var argErr *ArgError
	if errors.As(err, &argErr) {
		return exitArgError
	}
	return exitError
}
