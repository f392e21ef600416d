package jsonval

import (
	"math"
	"strconv"
)

const hexDigits = "0123456789abcdef"

// Render serializes v to a single contiguous compact JSON text. The output
// is deterministic for a given Value: object members appear in the
// container's iteration order, strings use the fixed escape table below, and
// finite numbers are formatted with 10 significant digits independent of
// locale. Non-finite numbers render as null.
//
// Callers may compare rendered text byte for byte, so this walk is written
// out by hand instead of delegating to a JSON library.
func Render(v Value) []byte {
	return appendValue(make([]byte, 0, 256), v)
}

func appendValue(buf []byte, v Value) []byte {
	switch v.kind {
	case NullKind:
		return append(buf, "null"...)
	case BoolKind:
		if v.b {
			return append(buf, "true"...)
		}
		return append(buf, "false"...)
	case NumberKind:
		return appendNumber(buf, v.num)
	case StringKind:
		return appendString(buf, v.str)
	case ArrayKind:
		buf = append(buf, '[')
		for i, item := range v.arr {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendValue(buf, item)
		}
		return append(buf, ']')
	case ObjectKind:
		buf = append(buf, '{')
		for i, key := range v.obj.Keys() {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendString(buf, key)
			buf = append(buf, ':')
			member, _ := v.obj.Get(key)
			buf = appendValue(buf, member)
		}
		return append(buf, '}')
	default:
		return append(buf, "null"...)
	}
}

func appendNumber(buf []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(buf, "null"...)
	}
	return strconv.AppendFloat(buf, f, 'g', 10, 64)
}

// appendString escapes the named control characters, quotes and backslashes,
// and any other byte below 0x20 as \u00XX with lowercase hex. All remaining
// bytes pass through untouched; the renderer is control-character safe but
// performs no Unicode escaping.
func appendString(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			if c < 0x20 {
				buf = append(buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			} else {
				buf = append(buf, c)
			}
		}
	}
	return append(buf, '"')
}
