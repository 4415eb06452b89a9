package engine

import (
	"errors"
	"testing"

	"github.com/thoreinstein/matter/pkg/pod"
)

func TestTOMLDecode(t *testing.T) {
	raw := `title = "TOML"
int = 42
float = 3.14159265
draft = false
tags = ["front", "matter"]

[owner]
name = "Ada"
`
	data, err := TOML.Decode(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s, err := data.Get("title").AsString(); err != nil || s != "TOML" {
		t.Errorf("title = %q, %v", s, err)
	}
	if i, err := data.Get("int").AsInt(); err != nil || i != 42 {
		t.Errorf("int = %d, %v", i, err)
	}
	if f, err := data.Get("float").AsFloat(); err != nil || f != 3.14159265 {
		t.Errorf("float = %v, %v", f, err)
	}
	if b, err := data.Get("draft").AsBool(); err != nil || b {
		t.Errorf("draft = %v, %v", b, err)
	}
	if s, err := data.Get("owner").Get("name").AsString(); err != nil || s != "Ada" {
		t.Errorf("owner.name = %q, %v", s, err)
	}

	first, err := data.Get("tags").Index(0)
	if err != nil {
		t.Fatalf("tags[0]: %v", err)
	}
	if !first.Equal(pod.String("front")) {
		t.Errorf("tags[0] = %v", first)
	}
}

func TestTOMLDecodeIntStaysInt(t *testing.T) {
	data, err := TOML.Decode("int = 42\nfloat = 42.0\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Get("int").Kind() != pod.KindInteger {
		t.Errorf("int kind = %s, want integer", data.Get("int").Kind())
	}
	if data.Get("float").Kind() != pod.KindFloat {
		t.Errorf("float kind = %s, want float", data.Get("float").Kind())
	}
}

func TestTOMLDecodeDatetime(t *testing.T) {
	data, err := TOML.Decode("date = 1979-05-27T07:32:00Z\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := data.Get("date").AsString()
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	if s != "1979-05-27T07:32:00Z" {
		t.Errorf("date = %q", s)
	}
}

func TestTOMLDecodeEmpty(t *testing.T) {
	data, err := TOML.Decode("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Kind() != pod.KindHash || data.Len() != 0 {
		t.Errorf("empty input = %s pod with %d entries, want empty hash", data.Kind(), data.Len())
	}
}

func TestTOMLDecodeMalformed(t *testing.T) {
	_, err := TOML.Decode("not valid toml ===")
	if err == nil {
		t.Fatal("expected error for malformed TOML")
	}

	var decErr *DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
	if decErr.Engine != "toml" {
		t.Errorf("Engine = %q, want toml", decErr.Engine)
	}
}

func TestTOMLDecodeKeysSorted(t *testing.T) {
	data, err := TOML.Decode("zebra = 1\nalpha = 2\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	keys := data.Keys()
	if len(keys) != 2 || keys[0] != "alpha" || keys[1] != "zebra" {
		t.Errorf("Keys() = %v, want sorted [alpha zebra]", keys)
	}
}

func TestTOMLEncodeRejectsNonHash(t *testing.T) {
	_, err := TOML.Encode(pod.Sequence(pod.Integer(1)))
	if err == nil {
		t.Fatal("expected error for non-hash top level")
	}

	var encErr *EncodeError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected *EncodeError, got %T", err)
	}
}

func TestTOMLEncodeDecodeRoundTrip(t *testing.T) {
	h := pod.NewHash()
	_ = h.Set("title", pod.String("Test"))
	_ = h.Set("count", pod.Integer(7))
	_ = h.Set("tags", pod.Sequence(pod.String("a"), pod.String("b")))

	out, err := TOML.Encode(h)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := TOML.Decode(out)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !back.Equal(h) {
		t.Errorf("round trip mismatch:\nencoded:\n%s", out)
	}
}
