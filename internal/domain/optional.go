// internal/domain/optional.go
package domain

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes a field that was absent from a JSON payload from one that was
// explicitly null. Set is false when the key was absent; Null is true for an explicit null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns a present Optional holding an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Valid reports whether the Optional carries a concrete value.
func (o Optional[T]) Valid() bool {
	return o.Set && !o.Null
}

// Apply writes the Optional onto dst when it was present in the payload: a value is copied,
// an explicit null clears dst. Absent fields leave dst untouched.
func (o Optional[T]) Apply(dst **T) {
	if !o.Set {
		return
	}
	if o.Null {
		*dst = nil
		return
	}
	v := o.Value
	*dst = &v
}

// ApplyValue writes a present, non-null Optional onto a non-nullable destination.
func (o Optional[T]) ApplyValue(dst *T) {
	if o.Valid() {
		*dst = o.Value
	}
}
