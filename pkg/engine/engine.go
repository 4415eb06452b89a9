// Package engine defines the pluggable format decoder contract used by the
// matter package, together with the built-in YAML, TOML, and JSON engines.
//
// An engine turns the raw text between front matter delimiters into a
// [pod.Pod] and serializes a Pod back into its native textual form. The
// splitter never inspects the chosen format; it only calls this contract.
// Custom formats plug in by implementing [Engine].
package engine

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/matter/pkg/pod"
)

// Engine is the capability contract every format decoder satisfies.
//
// Decode must succeed on empty (or whitespace-only) input and yield an empty
// hash pod: the splitter relies on this for documents whose delimiters
// enclose nothing.
type Engine interface {
	// Name returns the engine's identifier, e.g. "yaml".
	Name() string

	// Decode parses raw front matter text into a Pod.
	Decode(raw string) (pod.Pod, error)

	// Encode serializes a Pod into the engine's native textual form.
	Encode(data pod.Pod) (string, error)
}

// ErrUnknownEngine indicates a format name with no registered engine.
var ErrUnknownEngine = errors.New("unknown engine")

// ForName returns the built-in engine for a format name.
func ForName(name string) (Engine, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "json":
		return JSON, nil
	default:
		return nil, errors.Wrapf(ErrUnknownEngine, "%q", name)
	}
}

// DecodeError wraps a format decoder failure with the engine that produced
// it. The underlying error carries the engine's native message.
type DecodeError struct {
	Engine string // Name of the engine that rejected the input
	Err    error  // Underlying error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding front matter: %v", e.Engine, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError wraps a serializer failure during compose.
type EncodeError struct {
	Engine string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s: encoding front matter: %v", e.Engine, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
