// Package jsonval holds the dynamically typed document model produced by a
// routing engine query. Every engine result, and every engine error payload,
// is one Value of kind ObjectKind; accessor and rendering layers only ever
// read it.
package jsonval

import "math"

// Kind identifies the variant stored in a Value.
type Kind uint8

const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ArrayKind
	ObjectKind
)

// String returns the JSON name of the kind, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "boolean"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	default:
		return "invalid"
	}
}

// Value is a closed tagged union over the JSON variants. The zero value is
// JSON null. Values are cheap to copy; arrays and objects are shared, not
// deep-copied, so a Value handed out by an accessor stays valid as long as
// its root does.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
	obj  *Object
}

// A Document is the root Value of one engine result or one engine error
// payload. It is always of kind ObjectKind; response handles enforce that at
// construction time.
type Document = Value

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: BoolKind, b: b} }

// Number wraps an IEEE-754 double. Non-finite values are a valid in-memory
// state; the renderer emits them as null.
func Number(f float64) Value { return Value{kind: NumberKind, num: f} }

// String wraps owned text.
func String(s string) Value { return Value{kind: StringKind, str: s} }

// Array wraps an ordered sequence of values. The slice is taken over, not
// copied.
func Array(items ...Value) Value { return Value{kind: ArrayKind, arr: items} }

// ObjectValue wraps an object. A nil object is treated as empty.
func ObjectValue(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: ObjectKind, obj: o}
}

// Kind reports the variant stored in v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.kind == NullKind }

// Bool returns the boolean payload. The second result is false when v is not
// a boolean.
func (v Value) Bool() (bool, bool) {
	if v.kind != BoolKind {
		return false, false
	}
	return v.b, true
}

// Number returns the numeric payload. The second result is false when v is
// not a number.
func (v Value) Number() (float64, bool) {
	if v.kind != NumberKind {
		return math.NaN(), false
	}
	return v.num, true
}

// Str returns the string payload. The second result is false when v is not a
// string.
func (v Value) Str() (string, bool) {
	if v.kind != StringKind {
		return "", false
	}
	return v.str, true
}

// Array returns the element slice. The second result is false when v is not
// an array. The slice must not be mutated by callers.
func (v Value) Array() ([]Value, bool) {
	if v.kind != ArrayKind {
		return nil, false
	}
	return v.arr, true
}

// Object returns the member container. The second result is false when v is
// not an object.
func (v Value) Object() (*Object, bool) {
	if v.kind != ObjectKind {
		return nil, false
	}
	return v.obj, true
}

// Object is a mapping from string key to Value with unique keys. Iteration
// order is the insertion order of first assignment; it is stable for a given
// instance but consumers must not rely on any particular order across
// documents.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set assigns key to v. Re-assigning an existing key keeps its original
// position in the iteration order.
func (o *Object) Set(key string, v Value) *Object {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
	return o
}

// Get looks up key. The second result is false when the key is absent.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.values[key]
	return ok
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the member keys in iteration order. The slice must not be
// mutated by callers.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// Equal reports structural equality between two values. Object comparison is
// key-order insensitive; numbers compare by ==, so NaN is never equal to
// anything, including itself.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case NullKind:
		return true
	case BoolKind:
		return a.b == b.b
	case NumberKind:
		return a.num == b.num
	case StringKind:
		return a.str == b.str
	case ArrayKind:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case ObjectKind:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for _, key := range a.obj.Keys() {
			av, _ := a.obj.Get(key)
			bv, ok := b.obj.Get(key)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
