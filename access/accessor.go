// Package access navigates a document with type and bounds checking. Every
// operation reports failure through a *fault.Error carrying a precise code:
// an absent required field, an out-of-range index and a present-but-wrong
// variant are three distinct outcomes, never a silent sentinel.
package access

import (
	"github.com/routekit/routekit/fault"
	"github.com/routekit/routekit/jsonval"
)

// Field returns the member of an object. An absent key fails with the
// field-derived No<Field> code; a non-object container is a schema error.
func Field(v jsonval.Value, key string) (jsonval.Value, error) {
	obj, ok := v.Object()
	if !ok {
		return jsonval.Value{}, fault.Newf(fault.Exception, "expected object around %q, found %s", key, v.Kind())
	}
	member, ok := obj.Get(key)
	if !ok {
		return jsonval.Value{}, fault.Newf(fault.Missing(key), "field %q not found", key)
	}
	return member, nil
}

// Element returns the index-th element of an array. Indices must satisfy
// 0 <= index < length; anything else fails IndexOutOfBounds.
func Element(v jsonval.Value, index int) (jsonval.Value, error) {
	items, ok := v.Array()
	if !ok {
		return jsonval.Value{}, fault.Newf(fault.Exception, "expected array, found %s", v.Kind())
	}
	if index < 0 || index >= len(items) {
		return jsonval.Value{}, fault.Newf(fault.IndexOutOfBounds, "index %d out of range, length %d", index, len(items))
	}
	return items[index], nil
}

// Str extracts a string payload, failing on any other variant.
func Str(v jsonval.Value) (string, error) {
	s, ok := v.Str()
	if !ok {
		return "", fault.Newf(fault.Exception, "expected string, found %s", v.Kind())
	}
	return s, nil
}

// Num extracts a numeric payload, failing on any other variant.
func Num(v jsonval.Value) (float64, error) {
	f, ok := v.Number()
	if !ok {
		return 0, fault.Newf(fault.Exception, "expected number, found %s", v.Kind())
	}
	return f, nil
}

// Boolean extracts a boolean payload, failing on any other variant.
func Boolean(v jsonval.Value) (bool, error) {
	b, ok := v.Bool()
	if !ok {
		return false, fault.Newf(fault.Exception, "expected boolean, found %s", v.Kind())
	}
	return b, nil
}

// Arr extracts the element slice of an array value.
func Arr(v jsonval.Value) ([]jsonval.Value, error) {
	items, ok := v.Array()
	if !ok {
		return nil, fault.Newf(fault.Exception, "expected array, found %s", v.Kind())
	}
	return items, nil
}

// Obj extracts the member container of an object value.
func Obj(v jsonval.Value) (*jsonval.Object, error) {
	obj, ok := v.Object()
	if !ok {
		return nil, fault.Newf(fault.Exception, "expected object, found %s", v.Kind())
	}
	return obj, nil
}

// FieldStr reads a required string field.
func FieldStr(v jsonval.Value, key string) (string, error) {
	member, err := Field(v, key)
	if err != nil {
		return "", err
	}
	s, ok := member.Str()
	if !ok {
		return "", fault.Newf(fault.Exception, "field %q is %s, expected string", key, member.Kind())
	}
	return s, nil
}

// FieldNum reads a required numeric field.
func FieldNum(v jsonval.Value, key string) (float64, error) {
	member, err := Field(v, key)
	if err != nil {
		return 0, err
	}
	f, ok := member.Number()
	if !ok {
		return 0, fault.Newf(fault.Exception, "field %q is %s, expected number", key, member.Kind())
	}
	return f, nil
}

// FieldArr reads a required array field.
func FieldArr(v jsonval.Value, key string) ([]jsonval.Value, error) {
	member, err := Field(v, key)
	if err != nil {
		return nil, err
	}
	items, ok := member.Array()
	if !ok {
		return nil, fault.Newf(fault.Exception, "field %q is %s, expected array", key, member.Kind())
	}
	return items, nil
}

// OptionalStr reads a genuinely optional string field. An absent key is not
// an error; the second result reports presence. A present non-string is
// still a schema error.
func OptionalStr(v jsonval.Value, key string) (string, bool, error) {
	obj, ok := v.Object()
	if !ok {
		return "", false, fault.Newf(fault.Exception, "expected object around %q, found %s", key, v.Kind())
	}
	member, ok := obj.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := member.Str()
	if !ok {
		return "", false, fault.Newf(fault.Exception, "field %q is %s, expected string", key, member.Kind())
	}
	return s, true, nil
}

// OptionalNum reads a genuinely optional numeric field. See OptionalStr.
func OptionalNum(v jsonval.Value, key string) (float64, bool, error) {
	obj, ok := v.Object()
	if !ok {
		return 0, false, fault.Newf(fault.Exception, "expected object around %q, found %s", key, v.Kind())
	}
	member, ok := obj.Get(key)
	if !ok {
		return 0, false, nil
	}
	f, ok := member.Number()
	if !ok {
		return 0, false, fault.Newf(fault.Exception, "field %q is %s, expected number", key, member.Kind())
	}
	return f, true, nil
}

// TriBool reads a boolean field under the tri-state convention: 1 for true,
// 0 for false, -1 with an error set when the field is absent or not a
// boolean. Callers must check the error to tell "explicitly false" from
// failure, since 0 is also a legitimate result.
func TriBool(v jsonval.Value, key string) (int, error) {
	member, err := Field(v, key)
	if err != nil {
		return -1, err
	}
	b, ok := member.Bool()
	if !ok {
		return -1, fault.Newf(fault.Exception, "field %q is %s, expected boolean", key, member.Kind())
	}
	if b {
		return 1, nil
	}
	return 0, nil
}

// TriBoolValue applies the tri-state convention to a bare value, used for
// flags stored as array elements.
func TriBoolValue(v jsonval.Value) (int, error) {
	b, ok := v.Bool()
	if !ok {
		return -1, fault.Newf(fault.Exception, "expected boolean, found %s", v.Kind())
	}
	if b {
		return 1, nil
	}
	return 0, nil
}

// LonLat unpacks a [longitude, latitude] position array.
func LonLat(v jsonval.Value) (float64, float64, error) {
	items, ok := v.Array()
	if !ok {
		return 0, 0, fault.Newf(fault.Exception, "expected position array, found %s", v.Kind())
	}
	if len(items) < 2 {
		return 0, 0, fault.Newf(fault.Exception, "position array has %d elements, expected 2", len(items))
	}
	lon, ok := items[0].Number()
	if !ok {
		return 0, 0, fault.Newf(fault.Exception, "longitude is %s, expected number", items[0].Kind())
	}
	lat, ok := items[1].Number()
	if !ok {
		return 0, 0, fault.Newf(fault.Exception, "latitude is %s, expected number", items[1].Kind())
	}
	return lon, lat, nil
}
