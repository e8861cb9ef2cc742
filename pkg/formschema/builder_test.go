package formschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSection(t *testing.T) {
	b := NewBuilder(Template{Name: "Service Form", FormType: "service"})

	s, err := b.AddSection("sitePhotos", "Site Photos")
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "sitePhotos", s.Name)
	assert.Equal(t, 6, s.Order, "custom orders continue after the defaults")
	assert.Nil(t, s.SectionNumber)

	_, err = b.AddSection("", "Empty")
	assert.ErrorIs(t, err, ErrSectionNameRequired)

	_, err = b.AddSection("site photos", "Spaces")
	assert.ErrorIs(t, err, ErrSectionNameInvalid)

	_, err = b.AddSection("sitePhotos", "Duplicate")
	assert.ErrorIs(t, err, ErrSectionNameTaken)

	_, err = b.AddSection("signatures", "Shadows a default")
	assert.ErrorIs(t, err, ErrSectionNameTaken)
}

func TestRemoveSectionCascadesFields(t *testing.T) {
	b := NewBuilder(Template{Name: "Service Form", FormType: "service"})
	s, err := b.AddSection("sitePhotos", "Site Photos")
	require.NoError(t, err)

	inSection := b.AddField("sitePhotos")
	kept := b.AddField("serviceDetails")

	require.NoError(t, b.RemoveSection(s.ID))

	tpl := b.Template()
	assert.Empty(t, tpl.Sections)
	require.Len(t, tpl.Fields, 1)
	assert.Equal(t, kept.ID, tpl.Fields[0].ID)
	assert.NotEqual(t, inSection.ID, tpl.Fields[0].ID)
}

func TestRemoveSectionProtectsDefaults(t *testing.T) {
	b := NewBuilder(Template{Name: "Service Form", FormType: "service"})
	b.AddField("signatures")

	err := b.RemoveSection("signatures")
	assert.ErrorIs(t, err, ErrSectionProtected)
	assert.Len(t, b.Template().Fields, 1, "template unchanged")

	assert.ErrorIs(t, b.RemoveSection("no-such-id"), ErrSectionNotFound)
}

func TestAddField(t *testing.T) {
	b := NewBuilder(Template{Name: "Service Form", FormType: "service"})

	f1 := b.AddField("serviceDetails")
	f2 := b.AddField("serviceDetails")

	assert.Equal(t, FieldText, f1.Type)
	assert.Equal(t, "serviceDetails", f1.Section)
	assert.Equal(t, 0, f1.Order)
	assert.Equal(t, 1, f2.Order)
	assert.NotEqual(t, f1.ID, f2.ID)
}

func TestAddPresetFields(t *testing.T) {
	b := NewBuilder(Template{Name: "Service Form", FormType: "service"})
	b.AddField(DefaultSectionName) // occupies order 0

	customers, err := b.AddPresetFields(PresetCustomer, DefaultSectionName)
	require.NoError(t, err)
	require.Len(t, customers, 6)
	assert.Equal(t, "customerName", customers[0].Name)
	assert.Equal(t, FieldEmail, customers[1].Type)
	assert.Equal(t, 1, customers[0].Order, "orders continue after existing fields")
	assert.Equal(t, 6, customers[5].Order)

	engines, err := b.AddPresetFields(PresetEngine, "engineInformation")
	require.NoError(t, err)
	require.Len(t, engines, 18)
	assert.Equal(t, "engineModel", engines[0].Name)
	assert.Equal(t, "engineLocation", engines[17].Name)
	assert.Equal(t, 7, engines[0].Order)

	_, err = b.AddPresetFields("vehicle", DefaultSectionName)
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestUpdateField(t *testing.T) {
	b := NewBuilder(Template{Name: "Service Form", FormType: "service"})
	f := b.AddField("serviceDetails")

	name := "oilPressure"
	ftype := FieldSelect
	opts := "Low, Normal , High"
	required := true
	require.NoError(t, b.UpdateField(f.ID, FieldPatch{
		Name:       &name,
		Type:       &ftype,
		OptionsRaw: &opts,
		Required:   &required,
	}))

	got := b.Template().Fields[0]
	assert.Equal(t, "oilPressure", got.Name)
	assert.Equal(t, FieldSelect, got.Type)
	assert.Equal(t, []string{"Low", "Normal", "High"}, got.Options)
	assert.True(t, got.Required)
	assert.Equal(t, "serviceDetails", got.Section, "untouched members survive")

	var noValidation *FieldValidation
	require.NoError(t, b.UpdateField(f.ID, FieldPatch{Validation: &noValidation}))
	assert.Nil(t, b.Template().Fields[0].Validation)

	assert.ErrorIs(t, b.UpdateField("missing", FieldPatch{}), ErrFieldNotFound)
}

func TestRemoveField(t *testing.T) {
	b := NewBuilder(Template{Name: "Service Form", FormType: "service"})
	f := b.AddField("serviceDetails")

	require.NoError(t, b.RemoveField(f.ID))
	assert.Empty(t, b.Template().Fields)
	assert.ErrorIs(t, b.RemoveField(f.ID), ErrFieldNotFound)
}

func TestValidateTemplate(t *testing.T) {
	valid := Template{
		Name:     "Service Form",
		FormType: "service",
		Fields: []Field{
			{Name: "notes", Type: FieldTextarea}, // untagged lands in the default section
			{Name: "engineModel", Type: FieldText, Section: "engineInformation"},
		},
	}
	assert.NoError(t, ValidateTemplate(valid))

	assert.ErrorIs(t, ValidateTemplate(Template{FormType: "service"}), ErrTemplateNameMissing)
	assert.ErrorIs(t, ValidateTemplate(Template{Name: "x"}), ErrFormTypeMissing)

	badSection := valid
	badSection.Sections = []Section{{ID: "s", Name: "bad name"}}
	assert.ErrorIs(t, ValidateTemplate(badSection), ErrSectionNameInvalid)

	shadowsDefault := valid
	shadowsDefault.Sections = []Section{{ID: "s", Name: "basicInformation", Label: "Shadow"}}
	assert.ErrorIs(t, ValidateTemplate(shadowsDefault), ErrSectionNameTaken)

	dupCustom := valid
	dupCustom.Sections = []Section{
		{ID: "s1", Name: "extras", Label: "Extras"},
		{ID: "s2", Name: "extras", Label: "Extras Again"},
	}
	assert.ErrorIs(t, ValidateTemplate(dupCustom), ErrSectionNameTaken)

	badType := valid
	badType.Fields = []Field{{Name: "pickOne", Type: "dropdown"}}
	assert.ErrorIs(t, ValidateTemplate(badType), ErrFieldTypeInvalid)

	orphan := valid
	orphan.Fields = append([]Field(nil), orphan.Fields...)
	orphan.Fields = append(orphan.Fields, Field{Name: "lost", Type: FieldText, Section: "ghost"})
	assert.ErrorIs(t, ValidateTemplate(orphan), ErrSectionNotFound)
}

func TestSnapshot(t *testing.T) {
	b := NewBuilder(Template{Name: "Service Form", FormType: "service"})
	_, err := b.AddSection("sitePhotos", "Site Photos")
	require.NoError(t, err)
	f := b.AddField("sitePhotos")
	name := "photoCount"
	require.NoError(t, b.UpdateField(f.ID, FieldPatch{Name: &name}))

	fields, sections, err := b.Snapshot()
	require.NoError(t, err)
	assert.Contains(t, string(fields), `"fieldName":"photoCount"`)
	assert.Contains(t, string(sections), `"name":"sitePhotos"`)
	assert.NotContains(t, string(fields), f.ID, "session-local ids never persist")

	// An invalid state refuses to serialize.
	b2 := NewBuilder(Template{FormType: "service"})
	_, _, err = b2.Snapshot()
	assert.ErrorIs(t, err, ErrTemplateNameMissing)
}

func TestNewBuilderAssignsIDsOnCopy(t *testing.T) {
	src := Template{
		Name:     "Service Form",
		FormType: "service",
		Fields:   []Field{{Name: "notes", Type: FieldTextarea}},
	}
	b := NewBuilder(src)

	assert.NotEmpty(t, b.Template().Fields[0].ID)
	assert.Empty(t, src.Fields[0].ID, "source template untouched")
}
