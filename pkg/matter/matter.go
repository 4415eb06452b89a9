package matter

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/matter/pkg/engine"
)

// DefaultDelimiter is the front matter delimiter used when none is
// configured.
const DefaultDelimiter = "---"

// Matter couples delimiter configuration with a format engine. Configure it
// once, then reuse it across any number of Parse calls; Parse never mutates
// the receiver, so concurrent use is safe.
type Matter struct {
	// Delimiter opens the front matter block. Defaults to "---".
	Delimiter string

	// CloseDelimiter terminates the block. Defaults to Delimiter.
	CloseDelimiter string

	// ExcerptDelimiter bounds the excerpt within the content. Excerpt
	// extraction is disabled while it is empty.
	ExcerptDelimiter string

	engine engine.Engine
}

// New returns a Matter using eng to decode and encode front matter, with the
// default "---" delimiter.
func New(eng engine.Engine) *Matter {
	return &Matter{Delimiter: DefaultDelimiter, engine: eng}
}

// Engine returns the configured engine.
func (m *Matter) Engine() engine.Engine {
	return m.engine
}

func (m *Matter) open() string {
	if m.Delimiter == "" {
		return DefaultDelimiter
	}
	return m.Delimiter
}

func (m *Matter) closeDelim() string {
	if m.CloseDelimiter == "" {
		return m.open()
	}
	return m.CloseDelimiter
}

// Parse splits input into front matter, excerpt, and content.
//
// The open delimiter must be the very first line (trailing whitespace on
// that line is ignored, leading whitespace is not tolerated) and a line
// holding the close delimiter must follow; otherwise the whole input is
// plain content and Data is the null pod. A bare "---" is also a Markdown
// horizontal rule, so an unterminated block is deliberately not treated as
// front matter.
//
// The only error Parse returns is the engine rejecting malformed front
// matter, wrapped in an [engine.DecodeError].
func (m *Matter) Parse(input string) (*ParsedEntity, error) {
	entity := &ParsedEntity{
		Orig:    input,
		Content: input,
	}

	raw, rest, found := splitMatter(input, m.open(), m.closeDelim())
	if found {
		if m.engine == nil {
			return nil, errors.New("matter: no engine configured")
		}
		data, err := m.engine.Decode(raw)
		if err != nil {
			return nil, err
		}
		entity.Data = data
		entity.Matter = raw
		entity.Content = strings.TrimRight(rest, " \t\r\n")
	}

	if m.ExcerptDelimiter != "" {
		if excerpt, ok := scanExcerpt(entity.Content, m.ExcerptDelimiter); ok {
			entity.Excerpt = excerpt
			entity.HasExcerpt = true
		}
	}

	return entity, nil
}

// ParseInto is Parse followed by decoding the front matter into target via
// [pod.Pod.Decode]. When the input has no front matter, target is left
// untouched.
func (m *Matter) ParseInto(input string, target any) (*ParsedEntity, error) {
	entity, err := m.Parse(input)
	if err != nil {
		return nil, err
	}
	if !entity.Data.IsNull() {
		if err := entity.Data.Decode(target); err != nil {
			return nil, err
		}
	}
	return entity, nil
}

// splitMatter locates the front matter block. It returns the raw text
// strictly between the delimiter lines and everything after the close
// delimiter line. found is false when the input does not open with the
// delimiter at line 1 or the block is unterminated.
func splitMatter(input, open, closeDelim string) (raw, rest string, found bool) {
	firstEnd := strings.IndexByte(input, '\n')
	if firstEnd < 0 {
		// A lone delimiter line has no room for a close delimiter.
		return "", "", false
	}
	if strings.TrimRight(input[:firstEnd], " \t\r") != open {
		return "", "", false
	}

	start := firstEnd + 1
	pos := start
	for pos <= len(input) {
		lineEnd := strings.IndexByte(input[pos:], '\n')
		var line string
		if lineEnd < 0 {
			line = input[pos:]
		} else {
			line = input[pos : pos+lineEnd]
		}

		if strings.TrimRight(line, " \t\r") == closeDelim {
			raw = input[start:pos]
			if lineEnd < 0 {
				return raw, "", true
			}
			return raw, input[pos+lineEnd+1:], true
		}

		if lineEnd < 0 {
			break
		}
		pos += lineEnd + 1
	}

	// Unterminated block: not front matter.
	return "", "", false
}

// scanExcerpt finds the first occurrence of the excerpt delimiter in the
// content. The delimiter need not stand alone on its line: text on either
// side of it stays where it is, and the excerpt is the untouched content
// prefix up to the occurrence.
func scanExcerpt(content, delim string) (string, bool) {
	idx := strings.Index(content, delim)
	if idx < 0 {
		return "", false
	}
	return content[:idx], true
}
