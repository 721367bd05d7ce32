package domain

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes the three states a field of a PATCH body can be in:
// absent (leave the stored value unchanged), explicit null (clear the stored
// value), and present with a value. encoding/json only calls UnmarshalJSON
// for keys that appear in the payload, so Set stays false for absent fields.
type Optional[T any] struct {
	Set   bool
	Value *T // nil when the field was an explicit null
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}
	v := new(T)
	if err := json.Unmarshal(b, v); err != nil {
		return err
	}
	o.Value = v
	return nil
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns a present Optional holding an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}
