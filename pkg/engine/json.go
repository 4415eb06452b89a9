package engine

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/matter/pkg/pod"
)

// JSON is the engine for JSON front matter. Decoding streams tokens instead
// of unmarshaling into a map, so object key order survives and integers stay
// distinct from floats.
var JSON Engine = jsonEngine{}

type jsonEngine struct{}

func (jsonEngine) Name() string {
	return "json"
}

func (e jsonEngine) Decode(raw string) (pod.Pod, error) {
	if strings.TrimSpace(raw) == "" {
		return pod.NewHash(), nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	p, err := podFromTokens(dec)
	if err != nil {
		return pod.Pod{}, &DecodeError{Engine: e.Name(), Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("trailing data after value")
		}
		return pod.Pod{}, &DecodeError{Engine: e.Name(), Err: err}
	}
	return p, nil
}

func podFromTokens(dec *json.Decoder) (pod.Pod, error) {
	tok, err := dec.Token()
	if err != nil {
		return pod.Pod{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			hash := pod.NewHash()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return pod.Pod{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return pod.Pod{}, errors.Newf("object key is not a string: %v", keyTok)
				}
				val, err := podFromTokens(dec)
				if err != nil {
					return pod.Pod{}, err
				}
				_ = hash.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return pod.Pod{}, err
			}
			return hash, nil
		case '[':
			seq := pod.Sequence()
			for dec.More() {
				val, err := podFromTokens(dec)
				if err != nil {
					return pod.Pod{}, err
				}
				_ = seq.Append(val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return pod.Pod{}, err
			}
			return seq, nil
		default:
			return pod.Pod{}, errors.Newf("unexpected delimiter %q", t)
		}
	case string:
		return pod.String(t), nil
	case json.Number:
		return pod.FromInterface(t)
	case bool:
		return pod.Boolean(t), nil
	case nil:
		return pod.Null(), nil
	default:
		return pod.Pod{}, errors.Newf("unexpected token %v", tok)
	}
}

func (e jsonEngine) Encode(data pod.Pod) (string, error) {
	var sb strings.Builder
	if err := writeJSON(&sb, data, 0); err != nil {
		return "", &EncodeError{Engine: e.Name(), Err: err}
	}
	sb.WriteString("\n")
	return sb.String(), nil
}

// writeJSON renders the pod by hand so hash key order is preserved; the
// stock marshaler sorts map keys.
func writeJSON(sb *strings.Builder, p pod.Pod, depth int) error {
	indent := strings.Repeat("  ", depth)
	inner := strings.Repeat("  ", depth+1)

	switch p.Kind() {
	case pod.KindNull:
		sb.WriteString("null")
	case pod.KindString:
		s, _ := p.AsString()
		out, err := json.Marshal(s)
		if err != nil {
			return err
		}
		sb.Write(out)
	case pod.KindInteger:
		i, _ := p.AsInt()
		sb.WriteString(strconv.FormatInt(i, 10))
	case pod.KindFloat:
		f, _ := p.AsFloat()
		out, err := json.Marshal(f)
		if err != nil {
			return err
		}
		sb.Write(out)
	case pod.KindBoolean:
		b, _ := p.AsBool()
		sb.WriteString(strconv.FormatBool(b))
	case pod.KindSequence:
		items, _ := p.AsSlice()
		if len(items) == 0 {
			sb.WriteString("[]")
			return nil
		}
		sb.WriteString("[\n")
		for i, item := range items {
			sb.WriteString(inner)
			if err := writeJSON(sb, item, depth+1); err != nil {
				return err
			}
			if i < len(items)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString(indent)
		sb.WriteString("]")
	case pod.KindHash:
		keys := p.Keys()
		if len(keys) == 0 {
			sb.WriteString("{}")
			return nil
		}
		sb.WriteString("{\n")
		for i, key := range keys {
			out, err := json.Marshal(key)
			if err != nil {
				return err
			}
			sb.WriteString(inner)
			sb.Write(out)
			sb.WriteString(": ")
			if err := writeJSON(sb, p.Get(key), depth+1); err != nil {
				return err
			}
			if i < len(keys)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString(indent)
		sb.WriteString("}")
	default:
		return errors.Newf("unsupported pod kind %s", p.Kind())
	}
	return nil
}
