package config

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/matter/pkg/engine"
)

// Validation errors for configuration fields.
var (
	// ErrInvalidFormat indicates an unrecognized engine format name.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidDelimiter indicates a delimiter value is unusable.
	ErrInvalidDelimiter = errors.New("invalid delimiter")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Format != "" {
		if _, err := engine.ForName(cfg.Format); err != nil {
			errs = append(errs, errors.Wrap(ErrInvalidFormat, cfg.Format))
		}
	}

	for _, d := range []struct {
		field string
		value string
	}{
		{"delimiter", cfg.Delimiter},
		{"close_delimiter", cfg.CloseDelimiter},
		{"excerpt_delimiter", cfg.ExcerptDelimiter},
	} {
		if err := validateDelimiter(d.value); err != nil {
			errs = append(errs, &DelimiterError{
				Field:     d.field,
				Delimiter: d.value,
				Err:       err,
			})
		}
	}

	return errs
}

// validateDelimiter checks that a delimiter can appear on a line of its own.
// Empty delimiters are valid (they mean "use default" or "disabled").
func validateDelimiter(delim string) error {
	if delim == "" {
		return nil
	}
	if strings.ContainsAny(delim, "\r\n") {
		return ErrInvalidDelimiter
	}
	if strings.TrimSpace(delim) == "" {
		return ErrInvalidDelimiter
	}
	return nil
}

// DelimiterError represents an error for a specific delimiter field.
type DelimiterError struct {
	Field     string
	Delimiter string
	Err       error
}

func (e *DelimiterError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Delimiter
}

func (e *DelimiterError) Unwrap() error {
	return e.Err
}
