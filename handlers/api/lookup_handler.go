package api

import (
	"github.com/gofiber/fiber/v2"

	"powerdesk.app/pkg/formschema"
	"powerdesk.app/services"
)

// LookupHandler serves the autocomplete caches: full customer and engine
// lists, optionally narrowed by the dropdown's query string.
type LookupHandler struct {
	service services.ILookupService
}

func NewLookupHandler() *LookupHandler {
	return &LookupHandler{service: services.NewLookupService()}
}

// LookupCustomers returns the customer entries matching ?q= the way the
// dropdown filters: case-insensitive substring over name, email, and
// contact person.
func (h *LookupHandler) LookupCustomers(c *fiber.Ctx) error {
	entries, err := h.service.Customers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	filtered := formschema.FilterCustomers(entries, c.Query("q"))
	if filtered == nil {
		filtered = []formschema.CustomerEntry{}
	}
	return c.JSON(filtered)
}

// LookupEngines filters over model, serial number, and manufacturer.
func (h *LookupHandler) LookupEngines(c *fiber.Ctx) error {
	entries, err := h.service.Engines(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	filtered := formschema.FilterEngines(entries, c.Query("q"))
	if filtered == nil {
		filtered = []formschema.EngineEntry{}
	}
	return c.JSON(filtered)
}
