package models

// Customer carries the fixed attribute set the form renderer's autocomplete
// fill copies into same-named template fields.
type Customer struct {
	BaseModel
	Name          string `gorm:"type:varchar(255);not null;index" json:"name"`
	Email         string `gorm:"type:varchar(255)" json:"email"`
	Phone         string `gorm:"type:varchar(50)" json:"phone"`
	Address       string `gorm:"type:text" json:"address"`
	ContactPerson string `gorm:"type:varchar(255)" json:"contactPerson"`
	Equipment     string `gorm:"type:text" json:"equipment"`
	CompanyID     *uint  `gorm:"index" json:"companyId,omitempty"`
}
