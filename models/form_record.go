package models

import (
	"encoding/json"

	"gorm.io/datatypes"

	"powerdesk.app/pkg/formschema"
)

// FormRecord is one submission captured against a template. Data is the
// section-keyed two-level value map as it stood at submission time; editing
// the template afterwards never migrates existing records.
//
// CompanyFormID is a plain reference, not a FK constraint: records outlive
// template deletion.
type FormRecord struct {
	BaseModel
	CompanyFormID uint           `gorm:"not null;index" json:"companyFormId"`
	JobOrder      string         `gorm:"type:varchar(50);index" json:"jobOrder,omitempty"`
	Data          datatypes.JSON `gorm:"type:jsonb" json:"data"`
}

// Values decodes the stored data blob into the engine's section-keyed map.
func (r *FormRecord) Values() (formschema.SubmissionData, error) {
	var data formschema.SubmissionData
	if len(r.Data) == 0 {
		return formschema.SubmissionData{}, nil
	}
	if err := json.Unmarshal(r.Data, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// SetValues encodes the section-keyed map into the data blob.
func (r *FormRecord) SetValues(data formschema.SubmissionData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	r.Data = raw
	return nil
}
