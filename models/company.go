package models

// Company is an owning organization for form templates.
type Company struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Email   string `gorm:"type:varchar(255)" json:"email"`
	Phone   string `gorm:"type:varchar(50)" json:"phone"`
	Address string `gorm:"type:text" json:"address"`
}
