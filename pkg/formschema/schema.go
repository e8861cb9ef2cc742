// Package formschema implements the dynamic form template engine: the
// section/field model, the builder used to author templates, the render
// session that collects values, and the grouping of submitted values into
// section-keyed records. The package is pure; persistence lives in the
// repositories.
package formschema

import (
	"regexp"
	"sort"
	"strings"
)

// FieldType enumerates the supported input kinds.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldNumber   FieldType = "number"
	FieldDate     FieldType = "date"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
	FieldRadio    FieldType = "radio"
	FieldFile     FieldType = "file"
)

// ValidFieldTypes lists every accepted field type, in display order.
var ValidFieldTypes = []FieldType{
	FieldText, FieldEmail, FieldNumber, FieldDate, FieldTextarea,
	FieldSelect, FieldCheckbox, FieldRadio, FieldFile,
}

// IsValidFieldType reports whether t is one of the supported kinds.
func IsValidFieldType(t FieldType) bool {
	for _, v := range ValidFieldTypes {
		if v == t {
			return true
		}
	}
	return false
}

// textLike reports whether the type accepts free text, which is what the
// autocomplete dropdowns attach to.
func (t FieldType) textLike() bool {
	return t == FieldText || t == FieldEmail || t == FieldTextarea
}

// HasOptions reports whether the type carries an options list.
func (t FieldType) HasOptions() bool {
	return t == FieldSelect || t == FieldRadio || t == FieldCheckbox
}

// FieldValidation is optional per-field validation metadata. It is stored
// and echoed back to clients; the engine only enforces what native inputs
// would.
type FieldValidation struct {
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Pattern string   `json:"pattern,omitempty"`
	Message string   `json:"message,omitempty"`
}

// Field is one typed input definition. The JSON tags are the backend wire
// shape (fieldName/fieldType), so marshalling a Field yields the flattened
// representation the schema store persists. ID is session-local and never
// persisted.
type Field struct {
	ID           string           `json:"-"`
	Name         string           `json:"fieldName"`
	Type         FieldType        `json:"fieldType"`
	Required     bool             `json:"required"`
	Label        string           `json:"label,omitempty"`
	Placeholder  string           `json:"placeholder,omitempty"`
	Options      []string         `json:"options,omitempty"`
	DefaultValue string           `json:"defaultValue,omitempty"`
	Validation   *FieldValidation `json:"validation,omitempty"`
	Section      string           `json:"section,omitempty"`
	Order        int              `json:"order"`
}

// Section is a named, ordered grouping of fields. SectionNumber, when every
// section in a resolved set defines one, takes precedence over Order.
type Section struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Label         string `json:"label"`
	Order         int    `json:"order"`
	SectionNumber *int   `json:"sectionNumber,omitempty"`
}

// Template is the in-memory form schema. Sections holds only the custom
// sections; the six defaults are implicit and always present.
type Template struct {
	ID        uint      `json:"id,omitempty"`
	Name      string    `json:"name"`
	FormType  string    `json:"formType"`
	CompanyID *uint     `json:"companyId,omitempty"`
	Sections  []Section `json:"sections"`
	Fields    []Field   `json:"fields"`
}

// DefaultSectionName is where untagged fields land.
const DefaultSectionName = "basicInformation"

func intPtr(i int) *int { return &i }

// DefaultSections are always part of every template, cannot be removed, and
// render even when no field is tagged to them.
var DefaultSections = []Section{
	{ID: "basicInformation", Name: "basicInformation", Label: "Basic Information", Order: 0, SectionNumber: intPtr(1)},
	{ID: "engineInformation", Name: "engineInformation", Label: "Engine Information", Order: 1, SectionNumber: intPtr(2)},
	{ID: "serviceDetails", Name: "serviceDetails", Label: "Service Details", Order: 2, SectionNumber: intPtr(3)},
	{ID: "warrantyCoverage", Name: "warrantyCoverage", Label: "Warranty Coverage", Order: 3, SectionNumber: intPtr(4)},
	{ID: "servicesSummary", Name: "servicesSummary", Label: "Services Summary", Order: 4, SectionNumber: intPtr(5)},
	{ID: "signatures", Name: "signatures", Label: "Signatures", Order: 5, SectionNumber: intPtr(6)},
}

var sectionNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*$`)

// ValidSectionName reports whether name is a legal section machine key
// (camelCase letters and digits, no separators).
func ValidSectionName(name string) bool {
	return sectionNamePattern.MatchString(name)
}

// ResolveSections returns the ordered union of the default sections and the
// template's custom sections. When every section in the set carries a
// SectionNumber, ordering follows it; otherwise Order decides. Ties keep
// insertion order, so the result is always a total order.
func ResolveSections(t Template) []Section {
	resolved := make([]Section, 0, len(DefaultSections)+len(t.Sections))
	resolved = append(resolved, DefaultSections...)
	resolved = append(resolved, t.Sections...)

	allNumbered := true
	for _, s := range resolved {
		if s.SectionNumber == nil {
			allNumbered = false
			break
		}
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		if allNumbered {
			return *resolved[i].SectionNumber < *resolved[j].SectionNumber
		}
		return resolved[i].Order < resolved[j].Order
	})
	return resolved
}

// SectionNames returns the resolved section names in render order.
func SectionNames(t Template) []string {
	resolved := ResolveSections(t)
	names := make([]string, len(resolved))
	for i, s := range resolved {
		names[i] = s.Name
	}
	return names
}

// hasSection reports whether name is present in the resolved section set.
// Matching is case-sensitive.
func hasSection(t Template, name string) bool {
	for _, s := range ResolveSections(t) {
		if s.Name == name {
			return true
		}
	}
	return false
}

// sectionOf returns the section a field belongs to, substituting the default
// section for untagged fields.
func sectionOf(f Field) string {
	if f.Section == "" {
		return DefaultSectionName
	}
	return f.Section
}

// FieldsForSection returns the template's fields tagged to sectionName
// (untagged fields count toward the default section), sorted by Order with
// insertion order breaking ties.
func FieldsForSection(t Template, sectionName string) []Field {
	var fields []Field
	for _, f := range t.Fields {
		if sectionOf(f) == sectionName {
			fields = append(fields, f)
		}
	}
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Order < fields[j].Order
	})
	return fields
}

// ParseOptions splits comma-separated user input into an options list,
// trimming whitespace and dropping empty entries.
func ParseOptions(raw string) []string {
	var opts []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			opts = append(opts, trimmed)
		}
	}
	return opts
}
