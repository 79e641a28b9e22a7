// Package schema is the static registry of record entities: which fields each
// entity accepts, the kind every field is coerced as, and which fields must
// be present on create. It holds data only; coercion rules live in package
// coerce and are looked up by Kind.
package schema

// Kind names the coercion rule applied to a field. The Int32 kinds back
// INTEGER columns; the plain Int kinds back BIGINT.
type Kind string

const (
	RequiredInt        Kind = "required_int"
	OptionalInt        Kind = "optional_int"
	RequiredInt32      Kind = "required_int32"
	OptionalInt32      Kind = "optional_int32"
	OptionalFloat      Kind = "optional_float"
	RequiredDate       Kind = "required_date"
	OptionalDate       Kind = "optional_date"
	OptionalTimeOfDay  Kind = "optional_time_of_day"
	OptionalStructured Kind = "optional_structured"
	String             Kind = "string"
	Secret             Kind = "secret"
)

// IsRequired reports whether the kind never accepts NULL.
func (k Kind) IsRequired() bool {
	return k == RequiredInt || k == RequiredInt32 || k == RequiredDate
}

// Field describes one writable column.
type Field struct {
	Name string
	Kind Kind

	// Required fields must be present, non-null and non-empty on create.
	Required bool
	// Positive fields must coerce to a number greater than zero.
	Positive bool
	// Immutable fields are accepted on create and ignored on update.
	Immutable bool
	// CreateDefault replaces an absent or null value on create only.
	CreateDefault any
}

// Nullable reports whether an explicit null may be stored in the field.
func (f Field) Nullable() bool {
	return !f.Required && !f.Kind.IsRequired() && f.CreateDefault == nil
}

// Entity describes one record family and its table.
type Entity struct {
	Name  string
	Table string

	// Fields in declaration order. Read-only columns (id, created_at,
	// updated_at) are not listed.
	Fields []Field

	// OwnerColumn is the account foreign key used by ListByOwner; empty
	// when the entity has no owner.
	OwnerColumn string
	// OrderColumn is the primary date column ListByOwner sorts on, newest first.
	OrderColumn string
	// TracksUpdatedAt entities get updated_at = now on every update.
	TracksUpdatedAt bool
}

// UpdatedAtColumn is the column stamped on update for entities that track it.
const UpdatedAtColumn = "updated_at"

// Field returns the field with the given name.
func (e *Entity) Field(name string) (Field, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// RequiredFields returns the fields that must be supplied on create, in
// declaration order.
func (e *Entity) RequiredFields() []Field {
	var out []Field
	for _, f := range e.Fields {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}

// OptionalFields returns every field not required on create.
func (e *Entity) OptionalFields() []Field {
	var out []Field
	for _, f := range e.Fields {
		if !f.Required {
			out = append(out, f)
		}
	}
	return out
}

// HasOwner reports whether the entity can be listed by owner.
func (e *Entity) HasOwner() bool {
	return e.OwnerColumn != ""
}
