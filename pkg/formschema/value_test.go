package formschema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	s := StringValue("QSB7")
	assert.Equal(t, KindString, s.Kind())
	assert.Equal(t, "QSB7", s.Str())

	n := NumberValue(1500)
	assert.Equal(t, "1500", n.Str())
	got, ok := n.Num()
	assert.True(t, ok)
	assert.Equal(t, 1500.0, got)

	l := ListValue([]string{"Oil change", "Filter"})
	assert.Equal(t, []string{"Oil change", "Filter"}, l.List())
	assert.Equal(t, "", l.Str())
	assert.Nil(t, s.List())

	var zero Value
	assert.True(t, zero.IsZero())
	assert.False(t, s.IsZero())
}

func TestValueJSONRoundTrip(t *testing.T) {
	in := FlatValues{
		"customerName": StringValue("Acme Marine"),
		"engineRPM":    NumberValue(1800),
		"services":     ListValue([]string{"Oil change"}),
	}
	blob, err := json.Marshal(in)
	require.NoError(t, err)

	var out FlatValues
	require.NoError(t, json.Unmarshal(blob, &out))
	assert.Equal(t, in, out)
}

func TestValueUnmarshalBool(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`true`), &v))
	assert.Equal(t, StringValue("true"), v)
}

func TestValueUnmarshalRejectsMixedList(t *testing.T) {
	var v Value
	assert.Error(t, json.Unmarshal([]byte(`["ok", 3]`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"nested": true}`), &v))
}

func TestGroupValues(t *testing.T) {
	tpl := Template{
		Name:     "Service Form",
		FormType: "service",
		Fields: []Field{
			{Name: "jobRef", Type: FieldText}, // untagged
			{Name: "engineModel", Type: FieldText, Section: "engineInformation"},
			{Name: "technician", Type: FieldText, Section: "signatures", DefaultValue: "unassigned"},
		},
	}
	data := GroupValues(tpl, FlatValues{
		"jobRef":      StringValue("JO-1"),
		"engineModel": StringValue("QSB7"),
	})

	require.Len(t, data, 3)
	assert.Equal(t, StringValue("JO-1"), data[DefaultSectionName]["jobRef"])
	assert.Equal(t, StringValue("QSB7"), data["engineInformation"]["engineModel"])
	// Untouched field falls back to its default value.
	assert.Equal(t, StringValue("unassigned"), data["signatures"]["technician"])
}

func TestFlattenDataInvertsGrouping(t *testing.T) {
	data := SubmissionData{
		"basicInformation": {"jobRef": StringValue("JO-1")},
		"signatures":       {"technician": StringValue("R. Diaz")},
	}
	flat := FlattenData(data)
	assert.Equal(t, StringValue("JO-1"), flat["jobRef"])
	assert.Equal(t, StringValue("R. Diaz"), flat["technician"])
	assert.Len(t, flat, 2)
}

func TestValueStrings(t *testing.T) {
	assert.Equal(t, []string{"x"}, StringValue("x").Strings())
	assert.Equal(t, []string{"2.5"}, NumberValue(2.5).Strings())
	assert.Equal(t, []string{"a", "b"}, ListValue([]string{"a", "b"}).Strings())
	var zero Value
	assert.Nil(t, zero.Strings())
}
