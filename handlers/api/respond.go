package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"powerdesk.app/configs/configslog"
	"powerdesk.app/pkg/formschema"
	"powerdesk.app/services"
)

// notFoundErrs are the service errors that map to 404.
var notFoundErrs = []error{
	services.ErrTemplateNotFound,
	services.ErrRecordNotFound,
	services.ErrCustomerNotFound,
	services.ErrEngineNotFound,
	services.ErrCompanyNotFound,
}

// badInputErrs are the service errors that map to 400 alongside the
// formschema validation errors.
var badInputErrs = []error{
	services.ErrTplInvalidInput,
	services.ErrTplCompanyNotFound,
	services.ErrRecInvalidInput,
	services.ErrRecTemplateHasNoFields,
	services.ErrCstInvalidInput,
	services.ErrCustomerNameRequired,
	services.ErrEngInvalidInput,
	services.ErrEngineModelRequired,
	services.ErrCmpInvalidInput,
	services.ErrCompanyNameRequired,
}

// respondError translates a service failure into the API's status mapping.
// Failures never mutate state, so callers may always retry with the same
// payload.
func respondError(c *fiber.Ctx, err error) error {
	var vErr formschema.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	for _, target := range badInputErrs {
		if errors.Is(err, target) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}
	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
	}
	if errors.Is(err, services.ErrReportUnknownKind) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	configslog.Log.Error("unhandled service error", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

// parseID reads a positive :id-style route parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id parameter")
	}
	return uint(id), nil
}
