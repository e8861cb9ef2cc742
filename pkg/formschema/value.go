package formschema

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind tags the scalar kinds a submission value can hold.
type ValueKind int

const (
	KindEmpty ValueKind = iota
	KindString
	KindNumber
	KindList // checkbox multi-select
)

// Value is the tagged union of submission scalar kinds: string, number, or
// string list. Keeping the kind explicit catches type mismatches at the
// boundary between the renderer and the store instead of leaking interface{}
// bags through the system.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	list []string
}

func StringValue(s string) Value  { return Value{kind: KindString, str: s} }
func NumberValue(n float64) Value { return Value{kind: KindNumber, num: n} }
func ListValue(ss []string) Value { return Value{kind: KindList, list: ss} }

func (v Value) Kind() ValueKind { return v.kind }

// IsZero reports whether the value was never set.
func (v Value) IsZero() bool { return v.kind == KindEmpty }

// Str returns the string form of the value. Numbers are formatted, lists
// joined is not attempted (empty string).
func (v Value) Str() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Num returns the numeric form, false when the value is not a number.
func (v Value) Num() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// List returns the string-list form; nil for other kinds.
func (v Value) List() []string {
	if v.kind != KindList {
		return nil
	}
	return v.list
}

// Strings returns every string the value contains, used by the flattened
// search index: a scalar yields one entry, a list yields its members.
func (v Value) Strings() []string {
	switch v.kind {
	case KindString:
		return []string{v.str}
	case KindNumber:
		return []string{v.Str()}
	case KindList:
		return v.list
	default:
		return nil
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindList:
		return json.Marshal(v.list)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case nil:
		*v = Value{}
	case string:
		*v = StringValue(t)
	case float64:
		*v = NumberValue(t)
	case bool:
		// Single checkboxes arrive as booleans from some clients; store the
		// string form.
		*v = StringValue(strconv.FormatBool(t))
	case []any:
		list := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("formschema: list value contains non-string element %v", item)
			}
			list = append(list, s)
		}
		*v = ListValue(list)
	default:
		return fmt.Errorf("formschema: unsupported value type %T", raw)
	}
	return nil
}

// FlatValues is the renderer's live value map, keyed by field name.
type FlatValues map[string]Value

// SubmissionData is the persisted section-keyed two-level map.
type SubmissionData map[string]map[string]Value

// GroupValues folds a flat value map into the section-keyed shape using each
// field's declared section (untagged fields default per FieldsForSection).
// Every declared field appears in its section's inner map; untouched fields
// get their DefaultValue.
func GroupValues(t Template, values FlatValues) SubmissionData {
	data := SubmissionData{}
	for _, f := range t.Fields {
		section := sectionOf(f)
		inner, ok := data[section]
		if !ok {
			inner = map[string]Value{}
			data[section] = inner
		}
		v, touched := values[f.Name]
		if !touched || v.IsZero() {
			v = StringValue(f.DefaultValue)
		}
		inner[f.Name] = v
	}
	return data
}

// FlattenData is the inverse of GroupValues as far as editing needs: the
// two-level record collapses back into a flat field-name map. Display
// helper keys (<field>_display) survive untouched.
func FlattenData(data SubmissionData) FlatValues {
	flat := FlatValues{}
	for _, inner := range data {
		for name, v := range inner {
			flat[name] = v
		}
	}
	return flat
}
