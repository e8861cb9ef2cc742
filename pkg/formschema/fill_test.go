package formschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutocompleteKindOf(t *testing.T) {
	assert.Equal(t, AutocompleteCustomer, AutocompleteKindOf(Field{Name: "customerName", Type: FieldText}))
	assert.Equal(t, AutocompleteCustomer, AutocompleteKindOf(Field{Name: "billingCustomerRef", Type: FieldEmail}))
	assert.Equal(t, AutocompleteEngine, AutocompleteKindOf(Field{Name: "engineSerialNumber", Type: FieldText}))
	assert.Equal(t, AutocompleteEngine, AutocompleteKindOf(Field{Name: "ENGINEMODEL", Type: FieldTextarea}))

	// Non text-like types never get a dropdown, whatever the name says.
	assert.Equal(t, AutocompleteNone, AutocompleteKindOf(Field{Name: "customerName", Type: FieldSelect}))
	assert.Equal(t, AutocompleteNone, AutocompleteKindOf(Field{Name: "engineHours", Type: FieldNumber}))
	assert.Equal(t, AutocompleteNone, AutocompleteKindOf(Field{Name: "siteNotes", Type: FieldText}))
}

func TestFilterCustomers(t *testing.T) {
	entries := []CustomerEntry{
		{Name: "Acme Marine", Email: "ops@acme.example", ContactPerson: "J. Ruiz"},
		{Name: "Harbor Logistics", Email: "fleet@harbor.example", ContactPerson: "M. Chen"},
	}

	assert.Len(t, FilterCustomers(entries, ""), 2)
	assert.Len(t, FilterCustomers(entries, "ACME"), 1)
	assert.Len(t, FilterCustomers(entries, "chen"), 1)
	assert.Empty(t, FilterCustomers(entries, "northfield"))
}

func TestFilterEngines(t *testing.T) {
	entries := []EngineEntry{
		{Model: "QSB7-G5", SerialNumber: "22051234", Manufacturer: "Cummins"},
		{Model: "1106A-70TG1", SerialNumber: "U945123X", Manufacturer: "Perkins"},
	}

	assert.Len(t, FilterEngines(entries, "perkins"), 1)
	assert.Len(t, FilterEngines(entries, "2205"), 1)
	assert.Len(t, FilterEngines(entries, ""), 2)
	assert.Empty(t, FilterEngines(entries, "volvo"))
}

func TestFillFromCustomer(t *testing.T) {
	tpl := Template{Fields: []Field{
		{Name: "customerName", Type: FieldText},
		{Name: "CustomerEmail", Type: FieldEmail}, // case-insensitive match
		{Name: "siteNotes", Type: FieldTextarea},
	}}
	values := FlatValues{"siteNotes": StringValue("keep me")}

	FillFromCustomer(tpl, values, CustomerEntry{
		Name:  "Acme Marine",
		Email: "ops@acme.example",
		Phone: "555-0101",
	})

	assert.Equal(t, StringValue("Acme Marine"), values["customerName"])
	assert.Equal(t, StringValue("ops@acme.example"), values["CustomerEmail"])
	assert.Equal(t, StringValue("keep me"), values["siteNotes"], "unrelated fields untouched")
	_, phonePresent := values["customerPhone"]
	assert.False(t, phonePresent, "attributes without a matching field are dropped")
}

func TestFillFromEngine(t *testing.T) {
	tpl := Template{Fields: []Field{
		{Name: "engineModel", Type: FieldText},
		{Name: "engineSerialNumber", Type: FieldText},
		{Name: "engineRPM", Type: FieldText},
	}}
	values := FlatValues{}

	FillFromEngine(tpl, values, EngineEntry{
		Model:        "QSB7-G5",
		SerialNumber: "22051234",
		RPM:          "1500",
		Power:        "200",
	})

	require.Len(t, values, 3)
	assert.Equal(t, StringValue("QSB7-G5"), values["engineModel"])
	assert.Equal(t, StringValue("22051234"), values["engineSerialNumber"])
	assert.Equal(t, StringValue("1500"), values["engineRPM"])
}

func TestPresetNamesAreFillable(t *testing.T) {
	// Every preset field name must resolve in its attribute table, otherwise
	// the preset inserts fields the autocomplete can never populate.
	for _, p := range Presets[PresetCustomer] {
		tpl := Template{Fields: []Field{{Name: p.Name, Type: p.Type}}}
		values := FlatValues{}
		FillFromCustomer(tpl, values, CustomerEntry{
			Name: "x", Email: "x", Phone: "x", Address: "x", ContactPerson: "x", Equipment: "x",
		})
		assert.Contains(t, values, p.Name, "customer preset field %q has no fill mapping", p.Name)
	}
	for _, p := range Presets[PresetEngine] {
		tpl := Template{Fields: []Field{{Name: p.Name, Type: p.Type}}}
		values := FlatValues{}
		FillFromEngine(tpl, values, EngineEntry{
			Model: "x", SerialNumber: "x", Type: "x", Manufacturer: "x", Power: "x", RPM: "x",
			Hours: "x", FuelType: "x", Cylinders: "x", Displacement: "x", Year: "x",
			AlternatorModel: "x", AlternatorSerialNumber: "x", ControllerModel: "x",
			ControllerSerialNumber: "x", RadiatorModel: "x", BatteryType: "x", Location: "x",
		})
		assert.Contains(t, values, p.Name, "engine preset field %q has no fill mapping", p.Name)
	}
}
