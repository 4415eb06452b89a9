package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/thoreinstein/matter/pkg/pod"
)

func TestJSONDecode(t *testing.T) {
	raw := `{
  "title": "Home",
  "count": 42,
  "ratio": 0.5,
  "draft": true,
  "missing": null,
  "tags": ["a", "b"],
  "nested": {"key": "value"}
}`
	data, err := JSON.Decode(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s, err := data.Get("title").AsString(); err != nil || s != "Home" {
		t.Errorf("title = %q, %v", s, err)
	}
	if i, err := data.Get("count").AsInt(); err != nil || i != 42 {
		t.Errorf("count = %d, %v", i, err)
	}
	if f, err := data.Get("ratio").AsFloat(); err != nil || f != 0.5 {
		t.Errorf("ratio = %v, %v", f, err)
	}
	if b, err := data.Get("draft").AsBool(); err != nil || !b {
		t.Errorf("draft = %v, %v", b, err)
	}
	if !data.Get("missing").IsNull() {
		t.Error("missing should be null")
	}
	if s, err := data.Get("nested").Get("key").AsString(); err != nil || s != "value" {
		t.Errorf("nested.key = %q, %v", s, err)
	}
}

func TestJSONDecodeNumberKinds(t *testing.T) {
	data, err := JSON.Decode(`{"int": 42, "float": 42.0, "exp": 1e3}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Get("int").Kind() != pod.KindInteger {
		t.Errorf("int kind = %s, want integer", data.Get("int").Kind())
	}
	if data.Get("float").Kind() != pod.KindFloat {
		t.Errorf("float kind = %s, want float", data.Get("float").Kind())
	}
	if data.Get("exp").Kind() != pod.KindFloat {
		t.Errorf("exp kind = %s, want float", data.Get("exp").Kind())
	}
}

func TestJSONDecodePreservesKeyOrder(t *testing.T) {
	data, err := JSON.Decode(`{"zebra": 1, "alpha": 2, "middle": 3}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"zebra", "alpha", "middle"}
	got := data.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestJSONDecodeEmpty(t *testing.T) {
	data, err := JSON.Decode("  \n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Kind() != pod.KindHash || data.Len() != 0 {
		t.Errorf("empty input = %s pod with %d entries, want empty hash", data.Kind(), data.Len())
	}
}

func TestJSONDecodeMalformed(t *testing.T) {
	for _, raw := range []string{`{"broken": `, `{"a": 1} trailing`} {
		_, err := JSON.Decode(raw)
		if err == nil {
			t.Fatalf("Decode(%q): expected error", raw)
		}
		var decErr *DecodeError
		if !errors.As(err, &decErr) {
			t.Fatalf("Decode(%q): expected *DecodeError, got %T", raw, err)
		}
		if decErr.Engine != "json" {
			t.Errorf("Engine = %q, want json", decErr.Engine)
		}
	}
}

func TestJSONDecodeTrailingData(t *testing.T) {
	// A clean second value is reported as trailing data.
	_, err := JSON.Decode(`{"a": 1} 2`)
	if err == nil {
		t.Fatal("expected error for second value")
	}
	if !strings.Contains(err.Error(), "trailing data") {
		t.Errorf("error = %v, want trailing data message", err)
	}

	// A syntax error after the first value surfaces as itself, not as a
	// generic trailing-data message.
	_, err = JSON.Decode(`{"a": 1} nope`)
	if err == nil {
		t.Fatal("expected error for malformed trailer")
	}
	if strings.Contains(err.Error(), "trailing data") {
		t.Errorf("error = %v, want the decoder's own syntax error", err)
	}
	if !strings.Contains(err.Error(), "invalid character") {
		t.Errorf("error = %v, want the decoder's invalid character message", err)
	}
}

func TestJSONEncodeKeyOrder(t *testing.T) {
	h := pod.NewHash()
	_ = h.Set("zebra", pod.Integer(1))
	_ = h.Set("alpha", pod.Integer(2))

	out, err := JSON.Encode(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Index(out, "zebra") > strings.Index(out, "alpha") {
		t.Errorf("key order not preserved:\n%s", out)
	}
}

func TestJSONEncodeDecodeRoundTrip(t *testing.T) {
	h := pod.NewHash()
	_ = h.Set("title", pod.String(`quotes "inside"`))
	_ = h.Set("count", pod.Integer(7))
	_ = h.Set("ratio", pod.Float(0.25))
	_ = h.Set("empty_seq", pod.Sequence())
	_ = h.Set("empty_hash", pod.NewHash())
	_ = h.Set("tags", pod.Sequence(pod.String("a"), pod.Null()))

	out, err := JSON.Encode(h)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := JSON.Decode(out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !back.Equal(h) {
		t.Errorf("round trip mismatch:\nencoded:\n%s", out)
	}
}

func TestForName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"yaml", "yaml", false},
		{"yml", "yaml", false},
		{"YAML", "yaml", false},
		{"toml", "toml", false},
		{"json", "json", false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		eng, err := ForName(tt.name)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownEngine) {
				t.Errorf("ForName(%q): expected ErrUnknownEngine, got %v", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForName(%q): %v", tt.name, err)
			continue
		}
		if eng.Name() != tt.want {
			t.Errorf("ForName(%q).Name() = %q, want %q", tt.name, eng.Name(), tt.want)
		}
	}
}
