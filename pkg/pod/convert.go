package pod

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
)

// Interface lowers the pod to plain Go values: nil, string, int64, float64,
// bool, []any, or map[string]any. Hash key order is not representable in a
// Go map; callers that need it should walk the pod with Keys and Get.
func (p Pod) Interface() any {
	switch p.kind {
	case KindString:
		return p.str
	case KindInteger:
		return p.num
	case KindFloat:
		return p.flt
	case KindBoolean:
		return p.bln
	case KindSequence:
		out := make([]any, len(p.seq))
		for i, item := range p.seq {
			out[i] = item.Interface()
		}
		return out
	case KindHash:
		out := make(map[string]any, len(p.keys))
		for _, k := range p.keys {
			out[k] = p.vals[k].Interface()
		}
		return out
	default:
		return nil
	}
}

// FromInterface raises decoder output into a Pod. It accepts the value
// shapes produced by the YAML, TOML, and JSON decoders: nil, booleans,
// strings, Go integer and float types, json.Number, time.Time (stored as an
// RFC 3339 string), []any, and map[string]any. Keys of unordered maps are
// inserted in sorted order so the resulting hash is deterministic.
func FromInterface(v any) (Pod, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Boolean(val), nil
	case string:
		return String(val), nil
	case int:
		return Integer(int64(val)), nil
	case int32:
		return Integer(int64(val)), nil
	case int64:
		return Integer(val), nil
	case uint:
		return Integer(int64(val)), nil
	case uint32:
		return Integer(int64(val)), nil
	case uint64:
		return Integer(int64(val)), nil
	case float32:
		return Float(float64(val)), nil
	case float64:
		return Float(val), nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return Integer(i), nil
		}
		f, err := val.Float64()
		if err != nil {
			return Pod{}, errors.Wrapf(err, "number %q", val.String())
		}
		return Float(f), nil
	case time.Time:
		return String(val.Format(time.RFC3339)), nil
	case []any:
		items := make([]Pod, len(val))
		for i, item := range val {
			p, err := FromInterface(item)
			if err != nil {
				return Pod{}, errors.Wrapf(err, "element %d", i)
			}
			items[i] = p
		}
		return Sequence(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		hash := NewHash()
		for _, k := range keys {
			p, err := FromInterface(val[k])
			if err != nil {
				return Pod{}, errors.Wrapf(err, "key %q", k)
			}
			_ = hash.Set(k, p)
		}
		return hash, nil
	case fmt.Stringer:
		// Covers toml.LocalDate and friends.
		return String(val.String()), nil
	default:
		return Pod{}, errors.Newf("unsupported value type %T", v)
	}
}
