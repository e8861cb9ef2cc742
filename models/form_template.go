package models

import (
	"encoding/json"

	"gorm.io/datatypes"

	"powerdesk.app/pkg/formschema"
)

// FormTemplate is a persisted dynamic form schema. Fields and Sections are
// stored as JSON documents and replaced wholesale on every save.
type FormTemplate struct {
	BaseModel
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	FormType  string         `gorm:"type:varchar(100);not null;index" json:"formType"`
	CompanyID *uint          `gorm:"index" json:"companyId,omitempty"`
	Fields    datatypes.JSON `gorm:"type:jsonb" json:"fields"`
	Sections  datatypes.JSON `gorm:"type:jsonb" json:"sections"`

	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// Schema decodes the stored JSON columns into the in-memory template the
// form engine works with.
func (t *FormTemplate) Schema() (formschema.Template, error) {
	tpl := formschema.Template{
		ID:        t.ID,
		Name:      t.Name,
		FormType:  t.FormType,
		CompanyID: t.CompanyID,
	}
	if len(t.Fields) > 0 {
		if err := json.Unmarshal(t.Fields, &tpl.Fields); err != nil {
			return formschema.Template{}, err
		}
	}
	if len(t.Sections) > 0 {
		if err := json.Unmarshal(t.Sections, &tpl.Sections); err != nil {
			return formschema.Template{}, err
		}
	}
	return tpl, nil
}

// SetSchema encodes the template's fields and sections back into the JSON
// columns. Name/FormType/CompanyID travel on the row itself.
func (t *FormTemplate) SetSchema(tpl formschema.Template) error {
	fields, err := json.Marshal(tpl.Fields)
	if err != nil {
		return err
	}
	sections, err := json.Marshal(tpl.Sections)
	if err != nil {
		return err
	}
	t.Name = tpl.Name
	t.FormType = tpl.FormType
	t.CompanyID = tpl.CompanyID
	t.Fields = fields
	t.Sections = sections
	return nil
}
