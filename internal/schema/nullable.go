package schema

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Nullable keeps the three states of an optional, nullable JSON member
// apart: absent, explicit null and a value. Update payloads use it so that
// clearing a field is distinguishable from leaving it untouched.
type Nullable[T any] struct {
	Value   T
	Valid   bool
	Present bool
}

// Value returns a present, non-null Nullable.
func Value[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Valid: true, Present: true}
}

// Null returns a present, explicitly null Nullable.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Present: true}
}

// FromPtr maps nil to an explicit null.
func FromPtr[T any](p *T) Nullable[T] {
	if p == nil {
		return Null[T]()
	}
	return Value(*p)
}

func (n Nullable[T]) IsPresent() bool {
	return n.Present
}

// Ptr returns the value or nil when null or absent.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		n.Value, n.Valid = zero, false
		return nil
	}
	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// validationValue exposes the wrapped value to the validator as a pointer
// so that omitempty skips null and absent members only.
func (n Nullable[T]) validationValue() any {
	return n.Ptr()
}

type validationValuer interface {
	validationValue() any
}

func nullableValue(field reflect.Value) any {
	if v, ok := field.Interface().(validationValuer); ok {
		return v.validationValue()
	}
	return nil
}

type presence interface {
	IsPresent() bool
}

// countPresent counts the members of an update payload that were supplied.
func countPresent(payload any) int {
	rv := reflect.Indirect(reflect.ValueOf(payload))
	if rv.Kind() != reflect.Struct {
		return 0
	}
	count := 0
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !rv.Type().Field(i).IsExported() {
			continue
		}
		if p, ok := field.Interface().(presence); ok {
			if p.IsPresent() {
				count++
			}
			continue
		}
		switch field.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map:
			if !field.IsNil() {
				count++
			}
		}
	}
	return count
}
