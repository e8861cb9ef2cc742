package formschema

// PresetKind names a fixed bundle of pre-labeled fields insertable in one
// action. The field names are reused verbatim by the autocomplete fill, so
// a selected entity lands in the right inputs.
type PresetKind string

const (
	PresetCustomer PresetKind = "customer"
	PresetEngine   PresetKind = "engine"
)

// PresetField is one entry of a preset bundle. Static configuration, not
// procedural code: the tables below are the single source of truth for the
// field names both the builder and the fill mapping rely on.
type PresetField struct {
	Name  string
	Label string
	Type  FieldType
}

// Presets maps each kind to its ordered field table.
var Presets = map[PresetKind][]PresetField{
	PresetCustomer: {
		{Name: "customerName", Label: "Customer Name", Type: FieldText},
		{Name: "customerEmail", Label: "Customer Email", Type: FieldEmail},
		{Name: "customerPhone", Label: "Customer Phone", Type: FieldText},
		{Name: "customerAddress", Label: "Customer Address", Type: FieldText},
		{Name: "customerContactPerson", Label: "Contact Person", Type: FieldText},
		{Name: "customerEquipment", Label: "Customer Equipment", Type: FieldText},
	},
	PresetEngine: {
		{Name: "engineModel", Label: "Engine Model", Type: FieldText},
		{Name: "engineSerialNumber", Label: "Engine Serial Number", Type: FieldText},
		{Name: "engineType", Label: "Engine Type", Type: FieldText},
		{Name: "engineManufacturer", Label: "Manufacturer", Type: FieldText},
		{Name: "enginePower", Label: "Power (kVA)", Type: FieldText},
		{Name: "engineRPM", Label: "RPM", Type: FieldText},
		{Name: "engineHours", Label: "Running Hours", Type: FieldText},
		{Name: "engineFuelType", Label: "Fuel Type", Type: FieldText},
		{Name: "engineCylinders", Label: "Cylinders", Type: FieldText},
		{Name: "engineDisplacement", Label: "Displacement", Type: FieldText},
		{Name: "engineYear", Label: "Year of Manufacture", Type: FieldText},
		{Name: "engineAlternatorModel", Label: "Alternator Model", Type: FieldText},
		{Name: "engineAlternatorSerialNumber", Label: "Alternator Serial Number", Type: FieldText},
		{Name: "engineControllerModel", Label: "Controller Model", Type: FieldText},
		{Name: "engineControllerSerialNumber", Label: "Controller Serial Number", Type: FieldText},
		{Name: "engineRadiatorModel", Label: "Radiator Model", Type: FieldText},
		{Name: "engineBatteryType", Label: "Battery Type", Type: FieldText},
		{Name: "engineLocation", Label: "Engine Location", Type: FieldText},
	},
}
