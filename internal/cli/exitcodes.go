package cli

import (
	"errors"
	"io/fs"
)

// Exit codes for syntree.
const (
	// ExitSuccess indicates successful execution with a clean parse.
	ExitSuccess = 0

	// ExitSyntaxErrors indicates parsing completed but the tree
	// contains error or missing nodes.
	ExitSyntaxErrors = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrUsage marks errors caused by invalid command-line usage, such as
// an unknown language name or a bad flag.
var ErrUsage = errors.New("invalid usage")

// ErrConfig marks errors in the loaded configuration.
var ErrConfig = errors.New("invalid configuration")

// ExitCodeFor maps an error returned by command execution to the
// process exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrSyntaxErrorsFound):
		return ExitSyntaxErrors
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
