package engine

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/matter/pkg/pod"
)

// YAML is the engine for YAML front matter. It walks yaml.Node trees rather
// than unmarshaling into maps so hash pods keep the document's key order.
var YAML Engine = yamlEngine{}

type yamlEngine struct{}

func (yamlEngine) Name() string {
	return "yaml"
}

func (e yamlEngine) Decode(raw string) (pod.Pod, error) {
	if strings.TrimSpace(raw) == "" {
		return pod.NewHash(), nil
	}

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &root); err != nil {
		return pod.Pod{}, &DecodeError{Engine: e.Name(), Err: err}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return pod.NewHash(), nil
	}

	p, err := podFromNode(root.Content[0])
	if err != nil {
		return pod.Pod{}, &DecodeError{Engine: e.Name(), Err: err}
	}
	return p, nil
}

func podFromNode(n *yaml.Node) (pod.Pod, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return podFromNode(n.Alias)

	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return pod.Null(), nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return pod.Pod{}, err
			}
			return pod.Boolean(b), nil
		case "!!int":
			var i int64
			if err := n.Decode(&i); err != nil {
				return pod.Pod{}, err
			}
			return pod.Integer(i), nil
		case "!!float":
			var f float64
			if err := n.Decode(&f); err != nil {
				return pod.Pod{}, err
			}
			return pod.Float(f), nil
		default:
			// Strings, timestamps, and anything custom-tagged keep their
			// literal spelling.
			return pod.String(n.Value), nil
		}

	case yaml.SequenceNode:
		items := make([]pod.Pod, len(n.Content))
		for i, child := range n.Content {
			p, err := podFromNode(child)
			if err != nil {
				return pod.Pod{}, err
			}
			items[i] = p
		}
		return pod.Sequence(items...), nil

	case yaml.MappingNode:
		hash := pod.NewHash()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			val, err := podFromNode(n.Content[i+1])
			if err != nil {
				return pod.Pod{}, err
			}
			// Non-string keys (1, true, null) keep their literal spelling.
			_ = hash.Set(key.Value, val)
		}
		return hash, nil

	default:
		return pod.Pod{}, errors.Newf("unsupported node kind %d at line %d", n.Kind, n.Line)
	}
}

func (e yamlEngine) Encode(data pod.Pod) (string, error) {
	node, err := nodeFromPod(data)
	if err != nil {
		return "", &EncodeError{Engine: e.Name(), Err: err}
	}
	out, err := yaml.Marshal(node)
	if err != nil {
		return "", &EncodeError{Engine: e.Name(), Err: err}
	}
	return string(out), nil
}

func nodeFromPod(p pod.Pod) (*yaml.Node, error) {
	switch p.Kind() {
	case pod.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case pod.KindString:
		s, _ := p.AsString()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}, nil
	case pod.KindInteger:
		i, _ := p.AsInt()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(i, 10)}, nil
	case pod.KindFloat:
		f, _ := p.AsFloat()
		v := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(v, ".eE") {
			v += ".0"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: v}, nil
	case pod.KindBoolean:
		b, _ := p.AsBool()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}, nil
	case pod.KindSequence:
		items, _ := p.AsSlice()
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range items {
			child, err := nodeFromPod(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case pod.KindHash:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range p.Keys() {
			child, err := nodeFromPod(p.Get(key))
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				child)
		}
		return node, nil
	default:
		return nil, errors.Newf("unsupported pod kind %s", p.Kind())
	}
}
