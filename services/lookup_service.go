package services

import (
	"context"

	"powerdesk.app/models"
	"powerdesk.app/pkg/formschema"
	"powerdesk.app/repositories"
)

// ILookupService feeds the autocomplete caches: the full customer and
// engine lists, converted to the fixed attribute sets the fill mapping
// consumes. Fetched once per view; staleness is accepted.
type ILookupService interface {
	Customers(ctx context.Context) ([]formschema.CustomerEntry, error)
	Engines(ctx context.Context) ([]formschema.EngineEntry, error)
}

type LookupService struct {
	customerRepo repositories.ICustomerRepository
	engineRepo   repositories.IEngineRepository
}

func NewLookupService() ILookupService {
	return &LookupService{
		customerRepo: repositories.NewCustomerRepository(),
		engineRepo:   repositories.NewEngineRepository(),
	}
}

// CustomerEntryFromModel converts a stored customer into its lookup shape.
func CustomerEntryFromModel(c models.Customer) formschema.CustomerEntry {
	return formschema.CustomerEntry{
		ID:            c.ID,
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		ContactPerson: c.ContactPerson,
		Equipment:     c.Equipment,
	}
}

// EngineEntryFromModel converts a stored engine into its lookup shape.
func EngineEntryFromModel(e models.Engine) formschema.EngineEntry {
	return formschema.EngineEntry{
		ID:                     e.ID,
		Model:                  e.Model,
		SerialNumber:           e.SerialNumber,
		Type:                   e.Type,
		Manufacturer:           e.Manufacturer,
		Power:                  e.Power,
		RPM:                    e.RPM,
		Hours:                  e.Hours,
		FuelType:               e.FuelType,
		Cylinders:              e.Cylinders,
		Displacement:           e.Displacement,
		Year:                   e.Year,
		AlternatorModel:        e.AlternatorModel,
		AlternatorSerialNumber: e.AlternatorSerialNumber,
		ControllerModel:        e.ControllerModel,
		ControllerSerialNumber: e.ControllerSerialNumber,
		RadiatorModel:          e.RadiatorModel,
		BatteryType:            e.BatteryType,
		Location:               e.Location,
	}
}

func (s *LookupService) Customers(ctx context.Context) ([]formschema.CustomerEntry, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]formschema.CustomerEntry, 0, len(customers))
	for _, c := range customers {
		entries = append(entries, CustomerEntryFromModel(c))
	}
	return entries, nil
}

func (s *LookupService) Engines(ctx context.Context) ([]formschema.EngineEntry, error) {
	engines, err := s.engineRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]formschema.EngineEntry, 0, len(engines))
	for _, e := range engines {
		entries = append(entries, EngineEntryFromModel(e))
	}
	return entries, nil
}

var _ ILookupService = (*LookupService)(nil)
