// Package coerce converts raw caller-supplied JSON values into storage-typed
// values according to the kind each schema field declares.
package coerce

import (
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/healthtrack-backend/internal/domain"
	"github.com/heartmarshall/healthtrack-backend/internal/schema"
)

// Rule coerces a present, non-null raw value. The returned error message is
// reported to the caller as the field's validation message.
type Rule func(raw json.RawMessage) (any, error)

// Engine dispatches coercion through a kind → rule table.
type Engine struct {
	rules map[schema.Kind]Rule
}

// Option configures an Engine.
type Option func(*Engine)

// WithRule registers or replaces the rule for kind.
func WithRule(kind schema.Kind, rule Rule) Option {
	return func(e *Engine) {
		e.rules[kind] = rule
	}
}

// WithBcryptCost sets the bcrypt cost used by the Secret rule.
func WithBcryptCost(cost int) Option {
	return WithRule(schema.Secret, secretRule(cost))
}

// NewEngine returns an Engine with a rule for every built-in kind.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rules: map[schema.Kind]Rule{
			schema.RequiredInt:        intRule,
			schema.OptionalInt:        intRule,
			schema.RequiredInt32:      int32Rule,
			schema.OptionalInt32:      int32Rule,
			schema.OptionalFloat:      floatRule,
			schema.RequiredDate:       dateRule,
			schema.OptionalDate:       dateRule,
			schema.OptionalTimeOfDay:  timeOfDayRule,
			schema.OptionalStructured: structuredRule,
			schema.String:             stringRule,
			schema.Secret:             secretRule(bcrypt.DefaultCost),
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var errUnknownKind = errors.New("unsupported field kind")

// Coerce applies the field's rule and constraints to a present, non-null value.
func (e *Engine) Coerce(f schema.Field, raw json.RawMessage) (any, error) {
	rule, ok := e.rules[f.Kind]
	if !ok {
		return nil, fmt.Errorf("%w %q", errUnknownKind, f.Kind)
	}
	v, err := rule(raw)
	if err != nil {
		return nil, err
	}
	if f.Positive {
		if err := checkPositive(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Resolve looks name up in in and coerces it according to its presence.
// An absent field yields ok == false. An explicit null yields (nil, true)
// for nullable fields and a FieldError otherwise.
func (e *Engine) Resolve(f schema.Field, in Input) (v any, ok bool, fe *domain.FieldError) {
	raw, presence := in.Lookup(f.Name)
	switch presence {
	case Absent:
		return nil, false, nil
	case Null:
		if !f.Nullable() {
			return nil, false, &domain.FieldError{Field: f.Name, Message: "must not be null"}
		}
		return nil, true, nil
	}

	v, err := e.Coerce(f, raw)
	if err != nil {
		return nil, false, &domain.FieldError{Field: f.Name, Message: err.Error()}
	}
	return v, true, nil
}

func checkPositive(v any) error {
	switch n := v.(type) {
	case int64:
		if n <= 0 {
			return errors.New("must be a positive integer")
		}
	case float64:
		if n <= 0 {
			return errors.New("must be positive")
		}
	}
	return nil
}
