package document

import (
	"bytes"
	"encoding/json"
)

// Field is a tri-state optional input field: absent, explicit null, or a
// value. Absent means "leave unchanged"; null means "clear" and is only
// admitted by the schema for nullable fields.
//
// Use the json tag option omitzero so absent fields are not emitted.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a present field holding v.
func Some[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Clear returns a present field holding explicit null.
func Clear[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// IsZero reports whether the field is absent.
func (f Field[T]) IsZero() bool {
	return !f.Set
}

// Present reports whether the field carries a non-null value.
func (f Field[T]) Present() bool {
	return f.Set && !f.Null
}

// MarshalJSON implements json.Marshaler.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// UnmarshalJSON implements json.Unmarshaler. It only runs when the key is
// present in the payload.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// Apply writes the value into dst when present. Null and absence leave
// dst unchanged.
func (f Field[T]) Apply(dst *T) {
	if f.Present() {
		*dst = f.Value
	}
}

// ApplyNullable updates a nullable destination: absent leaves it, null
// clears it, a value replaces it.
func (f Field[T]) ApplyNullable(dst **T) {
	if !f.Set {
		return
	}
	if f.Null {
		*dst = nil
		return
	}
	v := f.Value
	*dst = &v
}

// Ptr returns the field as a pointer: nil when absent or null.
func (f Field[T]) Ptr() *T {
	if !f.Present() {
		return nil
	}
	v := f.Value
	return &v
}
