package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routekit/routekit/fault"
	"github.com/routekit/routekit/jsonval"
)

func mustParse(t *testing.T, s string) jsonval.Value {
	t.Helper()
	doc, err := jsonval.Parse([]byte(s))
	require.NoError(t, err)
	return doc
}

func TestField(t *testing.T) {
	doc := mustParse(t, `{"name": "Main Street", "distance": 4.2}`)

	v, err := Field(doc, "name")
	require.NoError(t, err)
	s, _ := v.Str()
	assert.Equal(t, "Main Street", s)
}

func TestField_AbsentDerivesCode(t *testing.T) {
	doc := mustParse(t, `{"name": "x"}`)

	_, err := Field(doc, "weight")
	assert.Equal(t, fault.Code("NoWeight"), fault.CodeOf(err))

	_, err = Field(doc, "data_version")
	assert.Equal(t, fault.Code("NoDataVersion"), fault.CodeOf(err))
}

func TestField_NonObject(t *testing.T) {
	_, err := Field(jsonval.String("x"), "name")
	assert.Equal(t, fault.Exception, fault.CodeOf(err))
}

func TestElement_Bounds(t *testing.T) {
	arr := mustParse(t, `[10, 20, 30]`)

	v, err := Element(arr, 2)
	require.NoError(t, err)
	f, _ := v.Number()
	assert.Equal(t, 30.0, f)

	// An index equal to the length is out of bounds, same as past it.
	_, err = Element(arr, 3)
	assert.Equal(t, fault.IndexOutOfBounds, fault.CodeOf(err))

	_, err = Element(arr, -1)
	assert.Equal(t, fault.IndexOutOfBounds, fault.CodeOf(err))
}

func TestScalarAccessors_WrongKind(t *testing.T) {
	_, err := Str(jsonval.Number(1))
	assert.Equal(t, fault.Exception, fault.CodeOf(err))
	assert.Contains(t, err.Error(), "expected string")

	_, err = Num(jsonval.String("x"))
	assert.Equal(t, fault.Exception, fault.CodeOf(err))

	_, err = Boolean(jsonval.Null())
	assert.Equal(t, fault.Exception, fault.CodeOf(err))

	_, err = Arr(jsonval.Bool(true))
	assert.Equal(t, fault.Exception, fault.CodeOf(err))

	_, err = Obj(jsonval.Array())
	assert.Equal(t, fault.Exception, fault.CodeOf(err))
}

func TestOptionalStr(t *testing.T) {
	doc := mustParse(t, `{"hint": "abc", "bad": 7}`)

	s, present, err := OptionalStr(doc, "hint")
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, "abc", s)

	// Absence is not a failure.
	s, present, err = OptionalStr(doc, "missing")
	require.NoError(t, err)
	assert.False(t, present)
	assert.Equal(t, "", s)

	// A present field of the wrong kind is.
	_, _, err = OptionalStr(doc, "bad")
	assert.Equal(t, fault.Exception, fault.CodeOf(err))
}

func TestOptionalNum(t *testing.T) {
	doc := mustParse(t, `{"speed": 13.5}`)

	f, present, err := OptionalNum(doc, "speed")
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, 13.5, f)

	_, present, err = OptionalNum(doc, "missing")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestTriBool(t *testing.T) {
	doc := mustParse(t, `{"yes": true, "no": false, "bad": "x"}`)

	v, err := TriBool(doc, "yes")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = TriBool(doc, "no")
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	v, err = TriBool(doc, "bad")
	assert.Equal(t, -1, v)
	assert.Error(t, err)

	v, err = TriBool(doc, "missing")
	assert.Equal(t, -1, v)
	assert.Error(t, err)
}

func TestLonLat(t *testing.T) {
	lon, lat, err := LonLat(mustParse(t, `[13.388798, 52.517033]`))
	require.NoError(t, err)
	assert.Equal(t, 13.388798, lon)
	assert.Equal(t, 52.517033, lat)

	_, _, err = LonLat(mustParse(t, `[13.38]`))
	assert.Error(t, err)

	_, _, err = LonLat(jsonval.String("not coords"))
	assert.Error(t, err)
}
