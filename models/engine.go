package models

// Engine is a serviced generator/engine unit. The attribute set mirrors the
// engine preset field names so autocomplete fill can map one to the other.
type Engine struct {
	BaseModel
	Model                  string `gorm:"type:varchar(255);not null;index" json:"model"`
	SerialNumber           string `gorm:"type:varchar(100);index" json:"serialNumber"`
	Type                   string `gorm:"type:varchar(100)" json:"type"`
	Manufacturer           string `gorm:"type:varchar(255)" json:"manufacturer"`
	Power                  string `gorm:"type:varchar(50)" json:"power"`
	RPM                    string `gorm:"type:varchar(50)" json:"rpm"`
	Hours                  string `gorm:"type:varchar(50)" json:"hours"`
	FuelType               string `gorm:"type:varchar(50)" json:"fuelType"`
	Cylinders              string `gorm:"type:varchar(50)" json:"cylinders"`
	Displacement           string `gorm:"type:varchar(50)" json:"displacement"`
	Year                   string `gorm:"type:varchar(10)" json:"year"`
	AlternatorModel        string `gorm:"type:varchar(255)" json:"alternatorModel"`
	AlternatorSerialNumber string `gorm:"type:varchar(100)" json:"alternatorSerialNumber"`
	ControllerModel        string `gorm:"type:varchar(255)" json:"controllerModel"`
	ControllerSerialNumber string `gorm:"type:varchar(100)" json:"controllerSerialNumber"`
	RadiatorModel          string `gorm:"type:varchar(255)" json:"radiatorModel"`
	BatteryType            string `gorm:"type:varchar(100)" json:"batteryType"`
	Location               string `gorm:"type:varchar(255)" json:"location"`
	CustomerID             *uint  `gorm:"index" json:"customerId,omitempty"`
}
