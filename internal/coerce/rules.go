package coerce

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// scalarText returns the text of a JSON string or the literal of a JSON number.
// ok is false for any other JSON type.
func scalarText(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return strings.TrimSpace(s), true
	case c == '-' || (c >= '0' && c <= '9'):
		return string(raw), true
	}
	return "", false
}

func intRule(raw json.RawMessage) (any, error) {
	errNotInt := errors.New("must be an integer")

	s, ok := scalarText(raw)
	if !ok || s == "" {
		return nil, errNotInt
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil, errNotInt
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, errors.New("out of range")
	}
	return int64(f), nil
}

// int32Rule is intRule bounded to the INTEGER column range. The value stays
// int64 so every int kind yields the same Go type.
func int32Rule(raw json.RawMessage) (any, error) {
	v, err := intRule(raw)
	if err != nil {
		return nil, err
	}
	if n := v.(int64); n < math.MinInt32 || n > math.MaxInt32 {
		return nil, errors.New("out of range")
	}
	return v, nil
}

func floatRule(raw json.RawMessage) (any, error) {
	errNotNumber := errors.New("must be a number")

	s, ok := scalarText(raw)
	if !ok || s == "" {
		return nil, errNotNumber
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errNotNumber
	}
	return f, nil
}

func stringValue(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

const dateLayout = "2006-01-02"

// timestampLayouts are tried in order for full timestamps. Layouts without a
// zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func dateRule(raw json.RawMessage) (any, error) {
	errNotDate := errors.New("must be a date (YYYY-MM-DD or RFC 3339 timestamp)")

	s, ok := stringValue(raw)
	if !ok {
		return nil, errNotDate
	}
	s = strings.TrimSpace(s)

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		var ok bool
		if t, ok = parseTimestamp(s); !ok {
			return nil, errNotDate
		}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func stringRule(raw json.RawMessage) (any, error) {
	s, ok := stringValue(raw)
	if !ok {
		return nil, errors.New("must be a string")
	}
	return s, nil
}

// structuredRule deep-copies any JSON document by decoding and re-encoding it.
// Numbers are kept as json.Number so no precision is lost.
func structuredRule(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.New("must be valid JSON")
	}
	if dec.More() {
		return nil, errors.New("must be a single JSON value")
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.New("must be valid JSON")
	}
	return json.RawMessage(out), nil
}

// secretRule stores bcrypt hashes as given and hashes anything else.
func secretRule(cost int) Rule {
	return func(raw json.RawMessage) (any, error) {
		s, ok := stringValue(raw)
		if !ok {
			return nil, errors.New("must be a string")
		}
		if s == "" {
			return nil, errors.New("must not be empty")
		}
		if _, err := bcrypt.Cost([]byte(s)); err == nil {
			return s, nil
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s), cost)
		if err != nil {
			if errors.Is(err, bcrypt.ErrPasswordTooLong) {
				return nil, errors.New("must be at most 72 bytes")
			}
			return nil, errors.New("cannot be hashed")
		}
		return string(hash), nil
	}
}
