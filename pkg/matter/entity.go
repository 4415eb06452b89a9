package matter

import (
	"github.com/thoreinstein/matter/pkg/pod"
)

// ParsedEntity is the result of a single Parse call.
type ParsedEntity struct {
	// Content is everything after the front matter block, with the
	// delimiter lines removed and trailing whitespace trimmed once from the
	// right edge of the whole segment. When no front matter is present it is
	// the full input.
	Content string

	// Excerpt is the portion of Content before the excerpt delimiter.
	// Meaningful only when HasExcerpt is true.
	Excerpt string

	// HasExcerpt reports whether an excerpt delimiter was configured and
	// found. It distinguishes "no excerpt" from an empty one.
	HasExcerpt bool

	// Data is the decoded front matter. It is the null pod when the input
	// had no front matter block; an empty block decodes to an empty hash.
	Data pod.Pod

	// Matter is the raw text between the delimiter lines. Empty when no
	// front matter is present.
	Matter string

	// Orig is the untouched input.
	Orig string
}
