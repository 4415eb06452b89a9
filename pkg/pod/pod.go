package pod

import (
	"github.com/cockroachdb/errors"
)

// Kind identifies which variant a Pod holds.
type Kind uint8

// The closed set of Pod variants. Every consumer switching on Kind should
// handle all of them.
const (
	KindNull Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindSequence
	KindHash
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindSequence:
		return "sequence"
	case KindHash:
		return "hash"
	default:
		return "unknown"
	}
}

// Sentinel errors for Pod access failures.
var (
	// ErrKindMismatch indicates a typed accessor was called on an
	// incompatible variant.
	ErrKindMismatch = errors.New("pod kind mismatch")

	// ErrIndexOutOfRange indicates a sequence index beyond the last element.
	ErrIndexOutOfRange = errors.New("sequence index out of range")
)

// Pod is a format-agnostic structured value. Engines produce Pods from raw
// front matter so callers can work with parsed data the same way regardless
// of the source format.
//
// The zero value is the Null pod. Hash pods preserve key insertion order.
// Pods are built once (by an engine or via the constructors below) and are
// treated as immutable afterwards.
type Pod struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	bln  bool
	seq  []Pod
	keys []string
	vals map[string]Pod
}

// Null returns the null pod. It doubles as the "absent" sentinel: hash
// lookups for missing keys return it, and a ParsedEntity without front
// matter carries it as Data.
func Null() Pod {
	return Pod{}
}

// String returns a string pod.
func String(s string) Pod {
	return Pod{kind: KindString, str: s}
}

// Integer returns an integer pod.
func Integer(i int64) Pod {
	return Pod{kind: KindInteger, num: i}
}

// Float returns a float pod.
func Float(f float64) Pod {
	return Pod{kind: KindFloat, flt: f}
}

// Boolean returns a boolean pod.
func Boolean(b bool) Pod {
	return Pod{kind: KindBoolean, bln: b}
}

// Sequence returns a sequence pod holding the given items in order.
func Sequence(items ...Pod) Pod {
	return Pod{kind: KindSequence, seq: items}
}

// NewHash returns an empty hash pod.
func NewHash() Pod {
	return Pod{kind: KindHash, keys: []string{}, vals: map[string]Pod{}}
}

// Kind reports which variant the pod holds.
func (p Pod) Kind() Kind {
	return p.kind
}

// IsNull reports whether the pod is the null variant.
func (p Pod) IsNull() bool {
	return p.kind == KindNull
}

func kindErr(want, got Kind) error {
	return errors.Wrapf(ErrKindMismatch, "expected %s, got %s", want, got)
}

// AsString returns the string value, or a kind-mismatch error.
func (p Pod) AsString() (string, error) {
	if p.kind != KindString {
		return "", kindErr(KindString, p.kind)
	}
	return p.str, nil
}

// AsInt returns the integer value, or a kind-mismatch error. Floats are
// never demoted to integers.
func (p Pod) AsInt() (int64, error) {
	if p.kind != KindInteger {
		return 0, kindErr(KindInteger, p.kind)
	}
	return p.num, nil
}

// AsFloat returns the float value. Integer pods are promoted to float; this
// is the only coercion any accessor performs.
func (p Pod) AsFloat() (float64, error) {
	switch p.kind {
	case KindFloat:
		return p.flt, nil
	case KindInteger:
		return float64(p.num), nil
	default:
		return 0, kindErr(KindFloat, p.kind)
	}
}

// AsBool returns the boolean value, or a kind-mismatch error.
func (p Pod) AsBool() (bool, error) {
	if p.kind != KindBoolean {
		return false, kindErr(KindBoolean, p.kind)
	}
	return p.bln, nil
}

// AsSlice returns the sequence elements in order, or a kind-mismatch error.
func (p Pod) AsSlice() ([]Pod, error) {
	if p.kind != KindSequence {
		return nil, kindErr(KindSequence, p.kind)
	}
	return p.seq, nil
}

// AsMap returns the hash entries, or a kind-mismatch error. Map iteration
// order is unspecified; use Keys for the insertion order.
func (p Pod) AsMap() (map[string]Pod, error) {
	if p.kind != KindHash {
		return nil, kindErr(KindHash, p.kind)
	}
	return p.vals, nil
}

// Keys returns the hash keys in insertion order. Non-hash pods have no keys.
func (p Pod) Keys() []string {
	return p.keys
}

// Len returns the number of elements in a sequence or entries in a hash,
// and 0 for every other variant.
func (p Pod) Len() int {
	switch p.kind {
	case KindSequence:
		return len(p.seq)
	case KindHash:
		return len(p.keys)
	default:
		return 0
	}
}

// Index returns the i-th element of a sequence.
func (p Pod) Index(i int) (Pod, error) {
	if p.kind != KindSequence {
		return Pod{}, kindErr(KindSequence, p.kind)
	}
	if i < 0 || i >= len(p.seq) {
		return Pod{}, errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", i, len(p.seq))
	}
	return p.seq[i], nil
}

// Get returns the value for key in a hash pod. Missing keys and non-hash
// pods yield the null pod; use Lookup to distinguish an absent key from a
// stored null.
func (p Pod) Get(key string) Pod {
	v, _ := p.Lookup(key)
	return v
}

// Lookup returns the value for key and whether it was present.
func (p Pod) Lookup(key string) (Pod, bool) {
	if p.kind != KindHash {
		return Pod{}, false
	}
	v, ok := p.vals[key]
	return v, ok
}

// Set stores key=value in a hash pod. First insertion determines the key's
// position; overwriting keeps it. Set is a construction-time operation and
// must not be called on a pod that is already shared.
func (p *Pod) Set(key string, value Pod) error {
	if p.kind != KindHash {
		return kindErr(KindHash, p.kind)
	}
	if _, exists := p.vals[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.vals[key] = value
	return nil
}

// Append adds a value to the end of a sequence pod. Like Set, it is a
// construction-time operation.
func (p *Pod) Append(value Pod) error {
	if p.kind != KindSequence {
		return kindErr(KindSequence, p.kind)
	}
	p.seq = append(p.seq, value)
	return nil
}

// Equal reports structural equality. Hash comparison ignores key order;
// integers and floats never compare equal across kinds.
func (p Pod) Equal(other Pod) bool {
	if p.kind != other.kind {
		return false
	}
	switch p.kind {
	case KindNull:
		return true
	case KindString:
		return p.str == other.str
	case KindInteger:
		return p.num == other.num
	case KindFloat:
		return p.flt == other.flt
	case KindBoolean:
		return p.bln == other.bln
	case KindSequence:
		if len(p.seq) != len(other.seq) {
			return false
		}
		for i := range p.seq {
			if !p.seq[i].Equal(other.seq[i]) {
				return false
			}
		}
		return true
	case KindHash:
		if len(p.keys) != len(other.keys) {
			return false
		}
		for k, v := range p.vals {
			ov, ok := other.vals[k]
			if !ok || !v.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
