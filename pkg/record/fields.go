package record

import (
	"bytes"
	"reflect"
	"sort"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Field is one named argument captured from a call.
type Field struct {
	Key   string
	Value any
}

// Fields is a single invocation record: the named arguments of one call,
// kept in the order they were supplied. Any shape is accepted and stored
// verbatim; there is no schema and no validation.
type Fields []Field

// FromMap builds a record from a plain map. Map iteration order is
// random, so keys are sorted to keep the record deterministic.
func FromMap(m map[string]any) Fields {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make(Fields, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, Field{Key: k, Value: m[k]})
	}
	return fields
}

// Set replaces the value for key in place if the key is already present,
// otherwise appends a new field. The position of an existing key does
// not change.
func (f Fields) Set(key string, value any) Fields {
	for i := range f {
		if f[i].Key == key {
			f[i].Value = value
			return f
		}
	}
	return append(f, Field{Key: key, Value: value})
}

// Get returns the value for key and whether the key is present. The
// first occurrence wins if a record was built with duplicate keys.
func (f Fields) Get(key string) (any, bool) {
	for _, fld := range f {
		if fld.Key == key {
			return fld.Value, true
		}
	}
	return nil, false
}

// Keys returns the field names in record order.
func (f Fields) Keys() []string {
	keys := make([]string, len(f))
	for i, fld := range f {
		keys[i] = fld.Key
	}
	return keys
}

// Equal reports whether both records hold the same keys and values in
// the same order.
func (f Fields) Equal(other Fields) bool {
	if len(f) != len(other) {
		return false
	}
	for i := range f {
		if f[i].Key != other[i].Key {
			return false
		}
		if !reflect.DeepEqual(f[i].Value, other[i].Value) {
			return false
		}
	}
	return true
}

// Clone returns a copy that can be mutated without touching the
// original. Values are copied shallowly.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	copy(out, f)
	return out
}

// MarshalJSON encodes the record as a JSON object with the keys in
// record order, unlike a map which would serialize them sorted.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, fld := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(fld.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(fld.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String renders the record as its JSON form, for test failure output.
func (f Fields) String() string {
	b, err := f.MarshalJSON()
	if err != nil {
		return "record.Fields(unencodable)"
	}
	return string(b)
}
