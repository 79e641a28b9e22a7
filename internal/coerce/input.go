package coerce

import (
	"bytes"
	"encoding/json"
)

// Presence is the three-way state of a field in an Input.
type Presence uint8

const (
	// Absent means the key was not supplied at all.
	Absent Presence = iota
	// Null means the key was supplied with the JSON literal null.
	Null
	// Set means the key was supplied with any other value.
	Set
)

func (p Presence) String() string {
	switch p {
	case Null:
		return "null"
	case Set:
		return "set"
	default:
		return "absent"
	}
}

// Input is a caller-supplied field mapping as decoded from a JSON object.
// Decoding into map[string]json.RawMessage keeps a null value as the raw
// bytes `null`, so absent and null stay distinguishable.
type Input map[string]json.RawMessage

var jsonNull = []byte("null")

// Lookup returns the raw value for name and its presence.
// A key holding no bytes is treated as null.
func (in Input) Lookup(name string) (json.RawMessage, Presence) {
	raw, ok := in[name]
	if !ok {
		return nil, Absent
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull) {
		return nil, Null
	}
	return trimmed, Set
}

// Blank reports whether name is absent, null or an empty string.
func (in Input) Blank(name string) bool {
	raw, p := in.Lookup(name)
	if p != Set {
		return true
	}
	return bytes.Equal(raw, []byte(`""`))
}

// InputFrom builds an Input from plain Go values by encoding each one.
// A nil value becomes an explicit null.
func InputFrom(values map[string]any) (Input, error) {
	in := make(Input, len(values))
	for k, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		in[k] = raw
	}
	return in, nil
}
