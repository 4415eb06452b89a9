// Package errors provides error handling conventions for the matter CLI.
//
// It defines sentinel errors for common failure conditions, an ExitError
// type for CLI exit code handling, and exit code constants following
// standard Unix conventions.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports error unwrapping via [errors.As]:
//
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//		if exitErr.Suggestion != "" {
//			fmt.Println("Suggestion:", exitErr.Suggestion)
//		}
//		os.Exit(exitErr.Code)
//	}
package errors
