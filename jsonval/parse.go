package jsonval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/bytedance/sonic"
)

// Parsing failure sentinels, matchable with errors.Is.
var (
	ErrEmptyInput   = errors.New("input is empty or contains only whitespace")
	ErrTrailingData = errors.New("trailing data after first JSON value")
)

// Parse decodes one JSON text into a Value. Exactly one top-level value is
// accepted; anything but whitespace after it is an error. Object keys of a
// parsed document are ordered lexicographically, which keeps rendering of
// parsed documents deterministic.
func Parse(data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Value{}, ErrEmptyInput
	}
	return ParseReader(bytes.NewReader(data))
}

// ParseReader decodes one JSON text from r. See Parse.
func ParseReader(r io.Reader) (Value, error) {
	dec := sonic.ConfigDefault.NewDecoder(r)
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, ErrEmptyInput
		}
		return Value{}, fmt.Errorf("decode JSON: %w", err)
	}
	if dec.More() {
		return Value{}, ErrTrailingData
	}
	return fromRaw(raw)
}

// fromRaw converts the decoder's generic representation into the tagged
// union, descending depth first.
func fromRaw(raw interface{}) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("number %q out of range: %w", v.String(), err)
		}
		return Number(f), nil
	case float64:
		return Number(v), nil
	case []interface{}:
		items := make([]Value, len(v))
		for i, elem := range v {
			item, err := fromRaw(elem)
			if err != nil {
				return Value{}, err
			}
			items[i] = item
		}
		return Array(items...), nil
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, key := range keys {
			member, err := fromRaw(v[key])
			if err != nil {
				return Value{}, err
			}
			obj.Set(key, member)
		}
		return ObjectValue(obj), nil
	default:
		return Value{}, fmt.Errorf("unsupported JSON value of type %T", raw)
	}
}
