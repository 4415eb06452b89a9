package engine

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/matter/pkg/pod"
)

// TOML is the engine for TOML front matter. The decoder hands back unordered
// tables, so hash pods carry keys in sorted order; datetimes are stored as
// string pods.
var TOML Engine = tomlEngine{}

type tomlEngine struct{}

func (tomlEngine) Name() string {
	return "toml"
}

func (e tomlEngine) Decode(raw string) (pod.Pod, error) {
	if strings.TrimSpace(raw) == "" {
		return pod.NewHash(), nil
	}

	var table map[string]any
	if err := toml.Unmarshal([]byte(raw), &table); err != nil {
		return pod.Pod{}, &DecodeError{Engine: e.Name(), Err: err}
	}

	p, err := pod.FromInterface(table)
	if err != nil {
		return pod.Pod{}, &DecodeError{Engine: e.Name(), Err: err}
	}
	return p, nil
}

func (e tomlEngine) Encode(data pod.Pod) (string, error) {
	if data.Kind() != pod.KindHash {
		return "", &EncodeError{
			Engine: e.Name(),
			Err:    errors.Newf("top-level value must be a hash, got %s", data.Kind()),
		}
	}
	out, err := toml.Marshal(data.Interface())
	if err != nil {
		return "", &EncodeError{Engine: e.Name(), Err: err}
	}
	return string(out), nil
}
