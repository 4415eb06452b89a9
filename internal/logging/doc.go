// Package logging provides structured logging for the matter CLI built on
// log/slog.
//
// The default text handler is TTY-aware: it colorizes output when writing to
// a terminal that supports it and falls back to plain text otherwise. JSON
// output is available for machine consumption via [FormatJSON].
//
// Verbosity flags map to levels with [LevelFromVerbosity]; tests get a
// logger wired to t.Log via [ForTest].
package logging
