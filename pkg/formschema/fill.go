package formschema

import "strings"

// AutocompleteKind tags which lookup a field's dropdown queries.
type AutocompleteKind string

const (
	AutocompleteNone     AutocompleteKind = ""
	AutocompleteCustomer AutocompleteKind = "customer"
	AutocompleteEngine   AutocompleteKind = "engine"
)

// CustomerEntry is the fixed attribute set the customer lookup exposes to
// the fill mapping.
type CustomerEntry struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ContactPerson string `json:"contactPerson"`
	Equipment     string `json:"equipment"`
}

// DisplayLabel is what the dropdown shows and what lands in the
// <field>_display helper value.
func (c CustomerEntry) DisplayLabel() string { return c.Name }

// EngineEntry is the fixed attribute set of the engine lookup.
type EngineEntry struct {
	ID                     uint   `json:"id"`
	Model                  string `json:"model"`
	SerialNumber           string `json:"serialNumber"`
	Type                   string `json:"type"`
	Manufacturer           string `json:"manufacturer"`
	Power                  string `json:"power"`
	RPM                    string `json:"rpm"`
	Hours                  string `json:"hours"`
	FuelType               string `json:"fuelType"`
	Cylinders              string `json:"cylinders"`
	Displacement           string `json:"displacement"`
	Year                   string `json:"year"`
	AlternatorModel        string `json:"alternatorModel"`
	AlternatorSerialNumber string `json:"alternatorSerialNumber"`
	ControllerModel        string `json:"controllerModel"`
	ControllerSerialNumber string `json:"controllerSerialNumber"`
	RadiatorModel          string `json:"radiatorModel"`
	BatteryType            string `json:"batteryType"`
	Location               string `json:"location"`
}

func (e EngineEntry) DisplayLabel() string {
	if e.SerialNumber == "" {
		return e.Model
	}
	return e.Model + " (" + e.SerialNumber + ")"
}

// customerAttrs maps recognized field names (lowercased for case-insensitive
// matching) to customer attributes. The keys mirror the customer preset.
var customerAttrs = map[string]func(CustomerEntry) string{
	"customername":          func(c CustomerEntry) string { return c.Name },
	"customeremail":         func(c CustomerEntry) string { return c.Email },
	"customerphone":         func(c CustomerEntry) string { return c.Phone },
	"customeraddress":       func(c CustomerEntry) string { return c.Address },
	"customercontactperson": func(c CustomerEntry) string { return c.ContactPerson },
	"customerequipment":     func(c CustomerEntry) string { return c.Equipment },
}

// engineAttrs mirrors the engine preset the same way.
var engineAttrs = map[string]func(EngineEntry) string{
	"enginemodel":                  func(e EngineEntry) string { return e.Model },
	"engineserialnumber":           func(e EngineEntry) string { return e.SerialNumber },
	"enginetype":                   func(e EngineEntry) string { return e.Type },
	"enginemanufacturer":           func(e EngineEntry) string { return e.Manufacturer },
	"enginepower":                  func(e EngineEntry) string { return e.Power },
	"enginerpm":                    func(e EngineEntry) string { return e.RPM },
	"enginehours":                  func(e EngineEntry) string { return e.Hours },
	"enginefueltype":               func(e EngineEntry) string { return e.FuelType },
	"enginecylinders":              func(e EngineEntry) string { return e.Cylinders },
	"enginedisplacement":           func(e EngineEntry) string { return e.Displacement },
	"engineyear":                   func(e EngineEntry) string { return e.Year },
	"enginealternatormodel":        func(e EngineEntry) string { return e.AlternatorModel },
	"enginealternatorserialnumber": func(e EngineEntry) string { return e.AlternatorSerialNumber },
	"enginecontrollermodel":        func(e EngineEntry) string { return e.ControllerModel },
	"enginecontrollerserialnumber": func(e EngineEntry) string { return e.ControllerSerialNumber },
	"engineradiatormodel":          func(e EngineEntry) string { return e.RadiatorModel },
	"enginebatterytype":            func(e EngineEntry) string { return e.BatteryType },
	"enginelocation":               func(e EngineEntry) string { return e.Location },
}

// AutocompleteKindOf decides which lookup a field binds to: any text-like
// field whose name contains "customer" or "engine" (case-insensitive).
func AutocompleteKindOf(f Field) AutocompleteKind {
	if !f.Type.textLike() {
		return AutocompleteNone
	}
	lower := strings.ToLower(f.Name)
	switch {
	case strings.Contains(lower, "customer"):
		return AutocompleteCustomer
	case strings.Contains(lower, "engine"):
		return AutocompleteEngine
	default:
		return AutocompleteNone
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// FilterCustomers returns the entries whose name, email, or contact person
// contains query (case-insensitive substring). An empty query matches all.
func FilterCustomers(entries []CustomerEntry, query string) []CustomerEntry {
	if query == "" {
		return entries
	}
	var out []CustomerEntry
	for _, c := range entries {
		if containsFold(c.Name, query) || containsFold(c.Email, query) || containsFold(c.ContactPerson, query) {
			out = append(out, c)
		}
	}
	return out
}

// FilterEngines matches against model, serial number, and manufacturer.
func FilterEngines(entries []EngineEntry, query string) []EngineEntry {
	if query == "" {
		return entries
	}
	var out []EngineEntry
	for _, e := range entries {
		if containsFold(e.Model, query) || containsFold(e.SerialNumber, query) || containsFold(e.Manufacturer, query) {
			out = append(out, e)
		}
	}
	return out
}

// FillFromCustomer overwrites every field of t whose name matches a
// recognized customer attribute (exact or case-insensitive) with the
// selected entry's value. The copy is a one-time snapshot; unrelated
// fields are untouched.
func FillFromCustomer(t Template, values FlatValues, c CustomerEntry) {
	for _, f := range t.Fields {
		if get, ok := customerAttrs[strings.ToLower(f.Name)]; ok {
			values[f.Name] = StringValue(get(c))
		}
	}
}

// FillFromEngine does the same against the engine attribute table.
func FillFromEngine(t Template, values FlatValues, e EngineEntry) {
	for _, f := range t.Fields {
		if get, ok := engineAttrs[strings.ToLower(f.Name)]; ok {
			values[f.Name] = StringValue(get(e))
		}
	}
}
