// Package compose turns a caller's raw Input into the column mapping that is
// written on create or on a partial update.
package compose

import (
	"time"

	"github.com/heartmarshall/healthtrack-backend/internal/coerce"
	"github.com/heartmarshall/healthtrack-backend/internal/domain"
	"github.com/heartmarshall/healthtrack-backend/internal/schema"
)

// Values maps column names to storage-ready values. A nil value stores NULL.
type Values map[string]any

// Create builds the insert mapping for e.
//
// Missing required fields are reported together before anything is coerced.
// Optional fields that are absent or null take their create default when one
// is declared and are otherwise left to the column default.
func Create(eng *coerce.Engine, e *schema.Entity, in coerce.Input) (Values, error) {
	var missing []domain.FieldError
	for _, f := range e.RequiredFields() {
		if in.Blank(f.Name) {
			missing = append(missing, domain.FieldError{Field: f.Name, Message: "is required"})
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationErrors(missing)
	}

	values := make(Values, len(e.Fields))
	var errs []domain.FieldError

	for _, f := range e.RequiredFields() {
		v, _, fe := eng.Resolve(f, in)
		if fe != nil {
			errs = append(errs, *fe)
			continue
		}
		values[f.Name] = v
	}

	for _, f := range e.OptionalFields() {
		if _, p := in.Lookup(f.Name); p != coerce.Set {
			if f.CreateDefault != nil {
				values[f.Name] = f.CreateDefault
			}
			continue
		}
		v, _, fe := eng.Resolve(f, in)
		if fe != nil {
			errs = append(errs, *fe)
			continue
		}
		values[f.Name] = v
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return values, nil
}

// Update builds the partial update mapping for e.
//
// Only fields present in the input are included. Immutable fields and keys
// the entity does not declare are ignored. An explicit null clears a nullable
// field and is rejected for any other field. Entities that track updated_at
// always get it set to now, so an empty input still refreshes it.
func Update(eng *coerce.Engine, e *schema.Entity, in coerce.Input, now time.Time) (Values, error) {
	values := make(Values, len(in)+1)
	var errs []domain.FieldError

	for _, f := range e.Fields {
		if f.Immutable {
			continue
		}
		v, ok, fe := eng.Resolve(f, in)
		if fe != nil {
			errs = append(errs, *fe)
			continue
		}
		if ok {
			values[f.Name] = v
		}
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	if e.TracksUpdatedAt {
		values[schema.UpdatedAtColumn] = now.UTC()
	}
	return values, nil
}
