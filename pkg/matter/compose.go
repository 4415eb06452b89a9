package matter

import (
	"strings"

	"github.com/thoreinstein/matter/pkg/pod"
)

// Compose is the inverse of Parse: it serializes data with the configured
// engine, wraps it between the open and close delimiters, and appends
// content. A null data pod yields content unchanged. Serializer failures
// surface as an [engine.EncodeError].
//
// Key order follows the pod's hash order; whitespace and indentation inside
// the block are whatever the engine's serializer produces.
func (m *Matter) Compose(data pod.Pod, content string) (string, error) {
	if data.IsNull() {
		return content, nil
	}

	encoded, err := m.engine.Encode(data)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(m.open())
	sb.WriteString("\n")
	sb.WriteString(encoded)
	if !strings.HasSuffix(encoded, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString(m.closeDelim())
	sb.WriteString("\n")
	sb.WriteString(content)
	return sb.String(), nil
}

// ComposeEntity rebuilds a delimited document from a previously parsed
// entity.
func (m *Matter) ComposeEntity(entity *ParsedEntity) (string, error) {
	return m.Compose(entity.Data, entity.Content)
}
