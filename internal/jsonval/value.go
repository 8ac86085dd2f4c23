// Package jsonval provides an order-preserving representation of arbitrary
// JSON values. The standard map-based decoding loses object member order,
// which the success-record search depends on: ties between candidate
// records must resolve to whichever appears first in the document.
package jsonval

import "encoding/json"

// Kind discriminates the variants of a Value.
type Kind int

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Member is a single key/value pair of an object, in document order.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered sequence of members.
type Object []Member

// Value is a tagged union over the JSON types. Exactly one payload field
// is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Bool bool
	Num  json.Number
	Str  string
	Arr  []Value
	Obj  Object
}

// Get returns the value of the first member with the given key.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Has reports whether the object contains a member with the given key.
func (o Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Str returns the string value under key, or false if the member is
// missing or not a JSON string.
func (o Object) Str(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok || v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}

// Int returns the integer value under key. Integral floats (e.g. 42.0)
// are accepted; anything else is reported as missing.
func (o Object) Int(key string) (int, bool) {
	v, ok := o.Get(key)
	if !ok || v.Kind != KindNumber {
		return 0, false
	}
	if n, err := v.Num.Int64(); err == nil {
		return int(n), true
	}
	if f, err := v.Num.Float64(); err == nil && f == float64(int64(f)) {
		return int(f), true
	}
	return 0, false
}
