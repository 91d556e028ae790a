package telemetry

import (
	"bytes"
	"encoding/json"
)

// Record is any decoded packet or nested sub-record. Each type declares its
// protocol fields once, in wire order, with the names documented by the
// telemetry specification. The serializer walks these static lists instead
// of reflecting over struct fields.
type Record interface {
	fields() []Field
}

// Field pairs a documented protocol field name with its decoded value. The
// value is a scalar, a string, a Record, a []Record, or a slice of scalars
// (fixed-length wire arrays).
type Field struct {
	Name  string
	Value any
}

// Object is an insertion-ordered mapping from field name to tree node. It
// marshals to a JSON object with keys in declaration order.
type Object struct {
	keys   []string
	values map[string]any
}

func NewObject() *Object {
	return &Object{values: make(map[string]any)}
}

func (o *Object) Set(key string, value any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the field names in declaration order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

func (o *Object) Len() int { return len(o.keys) }

func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToTree serializes a decoded record into the generic document tree. Fields
// keep their declaration order; fixed arrays become ordered sequences; the
// scalar widths of the wire format are preserved so numbers round-trip
// exactly through JSON text.
func ToTree(r Record) *Object {
	obj := NewObject()
	for _, f := range r.fields() {
		obj.Set(f.Name, treeValue(f.Value))
	}
	return obj
}

func treeValue(v any) any {
	switch x := v.(type) {
	case Record:
		return ToTree(x)
	case []Record:
		seq := make([]any, len(x))
		for i, rec := range x {
			seq[i] = ToTree(rec)
		}
		return seq
	case []uint8:
		// Kept as a sequence of numbers; json would otherwise base64 it.
		return scalarSeq(x)
	case []int8:
		return scalarSeq(x)
	case []uint16:
		return scalarSeq(x)
	case []int16:
		return scalarSeq(x)
	case []uint32:
		return scalarSeq(x)
	case []float32:
		return scalarSeq(x)
	default:
		return v
	}
}

func scalarSeq[T any](xs []T) []any {
	seq := make([]any, len(xs))
	for i, v := range xs {
		seq[i] = v
	}
	return seq
}

// recordSeq adapts a fixed array of sub-records for a Field value.
func recordSeq[T Record](xs []T) []Record {
	out := make([]Record, len(xs))
	for i := range xs {
		out[i] = xs[i]
	}
	return out
}
