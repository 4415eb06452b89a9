package pod

import (
	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
)

// TagName is the struct tag consulted when decoding a hash pod into a
// struct. Untagged fields match their key case-insensitively.
const TagName = "matter"

// Decode converts the pod into target, which must be a pointer to a struct,
// map, slice, or scalar matching the pod's shape. Absent hash keys leave the
// corresponding fields at their zero value. Mismatched kinds fail with an
// error naming the offending field path; nothing is reported as success with
// a partially decoded target.
func (p Pod) Decode(target any) error {
	return p.decode(target, false)
}

// DecodeStrict is Decode, but additionally fails when a field of target has
// no corresponding key in the pod. Use it when every field is required.
func (p Pod) DecodeStrict(target any) error {
	return p.decode(target, true)
}

func (p Pod) decode(target any, strict bool) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     target,
		TagName:    TagName,
		ErrorUnset: strict,
	})
	if err != nil {
		return errors.Wrap(err, "building decoder")
	}
	if err := dec.Decode(p.Interface()); err != nil {
		return errors.Wrapf(err, "decoding %s pod", p.kind)
	}
	return nil
}
