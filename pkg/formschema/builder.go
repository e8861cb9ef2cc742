package formschema

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ValidationError is a local pre-network failure: the offending input never
// reaches the schema store.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrSectionNameRequired ValidationError = "section name is required"
	ErrSectionNameInvalid  ValidationError = "section name must start with a letter and contain only letters and digits"
	ErrSectionNameTaken    ValidationError = "a section with this name already exists"
	ErrSectionProtected    ValidationError = "default sections cannot be removed"
	ErrSectionNotFound     ValidationError = "section not found"
	ErrFieldNotFound       ValidationError = "field not found"
	ErrUnknownPreset       ValidationError = "unknown preset kind"
	ErrFieldTypeInvalid    ValidationError = "unsupported field type"
	ErrTemplateNameMissing ValidationError = "template name is required"
	ErrFormTypeMissing     ValidationError = "form type is required"
)

// Builder mutates an in-memory template prior to persistence. All mutation
// is local; nothing touches the store until the edited template is saved
// wholesale.
type Builder struct {
	tpl Template
}

// NewBuilder starts an editing session over a copy of tpl. Fields without a
// session-local id get one assigned.
func NewBuilder(tpl Template) *Builder {
	tpl.Fields = append([]Field(nil), tpl.Fields...)
	tpl.Sections = append([]Section(nil), tpl.Sections...)
	for i := range tpl.Fields {
		if tpl.Fields[i].ID == "" {
			tpl.Fields[i].ID = uuid.NewString()
		}
	}
	for i := range tpl.Sections {
		if tpl.Sections[i].ID == "" {
			tpl.Sections[i].ID = uuid.NewString()
		}
	}
	return &Builder{tpl: tpl}
}

// Template returns the current editing state.
func (b *Builder) Template() Template { return b.tpl }

// Snapshot validates the editing state and serializes it into the persisted
// wire shape: the flattened field list and the custom section list as JSON
// documents.
func (b *Builder) Snapshot() (fields, sections []byte, err error) {
	if err := ValidateTemplate(b.tpl); err != nil {
		return nil, nil, err
	}
	fields, err = json.Marshal(b.tpl.Fields)
	if err != nil {
		return nil, nil, err
	}
	sections, err = json.Marshal(b.tpl.Sections)
	if err != nil {
		return nil, nil, err
	}
	return fields, sections, nil
}

// AddSection appends a custom section. The name must be a valid machine key
// and unique (case-sensitive) against the resolved default ∪ custom set.
func (b *Builder) AddSection(name, label string) (Section, error) {
	if name == "" {
		return Section{}, ErrSectionNameRequired
	}
	if !ValidSectionName(name) {
		return Section{}, ErrSectionNameInvalid
	}
	if hasSection(b.tpl, name) {
		return Section{}, ErrSectionNameTaken
	}
	s := Section{
		ID:    uuid.NewString(),
		Name:  name,
		Label: label,
		Order: len(DefaultSections) + len(b.tpl.Sections),
	}
	b.tpl.Sections = append(b.tpl.Sections, s)
	return s, nil
}

// RemoveSection deletes a custom section and cascades deletion to every
// field tagged with its name. Default sections are protected; removing one
// fails and leaves the template unchanged.
func (b *Builder) RemoveSection(sectionID string) error {
	for _, d := range DefaultSections {
		if d.ID == sectionID {
			return ErrSectionProtected
		}
	}
	idx := -1
	for i, s := range b.tpl.Sections {
		if s.ID == sectionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrSectionNotFound
	}
	name := b.tpl.Sections[idx].Name
	b.tpl.Sections = append(b.tpl.Sections[:idx], b.tpl.Sections[idx+1:]...)

	kept := b.tpl.Fields[:0]
	for _, f := range b.tpl.Fields {
		if f.Section != name {
			kept = append(kept, f)
		}
	}
	b.tpl.Fields = kept
	return nil
}

// AddField appends a blank text field tagged to sectionName.
func (b *Builder) AddField(sectionName string) Field {
	f := Field{
		ID:      uuid.NewString(),
		Type:    FieldText,
		Section: sectionName,
		Order:   len(b.tpl.Fields),
	}
	b.tpl.Fields = append(b.tpl.Fields, f)
	return f
}

// AddPresetFields stamps out the named preset bundle into sectionName, with
// Order continuing from the current field count.
func (b *Builder) AddPresetFields(kind PresetKind, sectionName string) ([]Field, error) {
	preset, ok := Presets[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, kind)
	}
	added := make([]Field, 0, len(preset))
	for i, p := range preset {
		f := Field{
			ID:      uuid.NewString(),
			Name:    p.Name,
			Label:   p.Label,
			Type:    p.Type,
			Section: sectionName,
			Order:   len(b.tpl.Fields) + i,
		}
		added = append(added, f)
	}
	b.tpl.Fields = append(b.tpl.Fields, added...)
	return added, nil
}

// FieldPatch is a partial field update; nil members are left untouched.
type FieldPatch struct {
	Name         *string
	Label        *string
	Type         *FieldType
	Required     *bool
	Placeholder  *string
	DefaultValue *string
	OptionsRaw   *string // comma-separated, parsed via ParseOptions
	Validation   **FieldValidation
	Section      *string
	Order        *int
}

// UpdateField shallow-merges patch into the field with the given id.
func (b *Builder) UpdateField(fieldID string, patch FieldPatch) error {
	for i := range b.tpl.Fields {
		f := &b.tpl.Fields[i]
		if f.ID != fieldID {
			continue
		}
		if patch.Name != nil {
			f.Name = *patch.Name
		}
		if patch.Label != nil {
			f.Label = *patch.Label
		}
		if patch.Type != nil {
			f.Type = *patch.Type
		}
		if patch.Required != nil {
			f.Required = *patch.Required
		}
		if patch.Placeholder != nil {
			f.Placeholder = *patch.Placeholder
		}
		if patch.DefaultValue != nil {
			f.DefaultValue = *patch.DefaultValue
		}
		if patch.OptionsRaw != nil {
			f.Options = ParseOptions(*patch.OptionsRaw)
		}
		if patch.Validation != nil {
			f.Validation = *patch.Validation
		}
		if patch.Section != nil {
			f.Section = *patch.Section
		}
		if patch.Order != nil {
			f.Order = *patch.Order
		}
		return nil
	}
	return ErrFieldNotFound
}

// RemoveField deletes the field with the given id.
func (b *Builder) RemoveField(fieldID string) error {
	for i, f := range b.tpl.Fields {
		if f.ID == fieldID {
			b.tpl.Fields = append(b.tpl.Fields[:i], b.tpl.Fields[i+1:]...)
			return nil
		}
	}
	return ErrFieldNotFound
}

// ValidateTemplate checks the invariants a template must satisfy before it
// may be saved: required top-level fields, well-formed and unique section
// names (against the defaults and each other), supported field types, and
// every field tagged to a known section. The builder enforces the same rules
// interactively; re-checking here keeps hand-built payloads honest.
func ValidateTemplate(t Template) error {
	if t.Name == "" {
		return ErrTemplateNameMissing
	}
	if t.FormType == "" {
		return ErrFormTypeMissing
	}
	seen := make(map[string]bool, len(DefaultSections)+len(t.Sections))
	for _, d := range DefaultSections {
		seen[d.Name] = true
	}
	for _, s := range t.Sections {
		if !ValidSectionName(s.Name) {
			return fmt.Errorf("%w: %q", ErrSectionNameInvalid, s.Name)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: %q", ErrSectionNameTaken, s.Name)
		}
		seen[s.Name] = true
	}
	for _, f := range t.Fields {
		if !IsValidFieldType(f.Type) {
			return fmt.Errorf("%w: field %q has type %q", ErrFieldTypeInvalid, f.Name, f.Type)
		}
		if !hasSection(t, sectionOf(f)) {
			return fmt.Errorf("%w: field %q references section %q", ErrSectionNotFound, f.Name, f.Section)
		}
	}
	return nil
}
