package dto

import "encoding/json"

// Opt is a three-way optional for partial updates: a field can be absent
// from the payload (leave unchanged), explicitly null (clear), or carry a
// value. A plain pointer cannot tell the first two apart.
type Opt[T any] struct {
	Set   bool // key was present in the payload
	Valid bool // value was non-null
	Value T
}

// UnmarshalJSON is only invoked for keys present in the payload, which is
// what makes Set reliable.
func (o *Opt[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		return nil
	}
	if err := json.Unmarshal(b, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the value as a nullable pointer: nil for null, the value
// otherwise. Only meaningful when Set is true.
func (o Opt[T]) Ptr() *T {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
