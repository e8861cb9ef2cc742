package api

import (
	"github.com/gofiber/fiber/v2"

	"powerdesk.app/middlewares"
	"powerdesk.app/models"
	"powerdesk.app/services"
)

// EngineHandler is plain CRUD over engine units.
type EngineHandler struct {
	service services.IEngineService
}

func NewEngineHandler() *EngineHandler {
	return &EngineHandler{service: services.NewEngineService()}
}

func (h *EngineHandler) ListEngines(c *fiber.Ctx) error {
	if customerID := c.QueryInt("customer_id"); customerID > 0 {
		engines, err := h.service.GetEnginesForCustomer(c.UserContext(), uint(customerID))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(engines)
	}
	engines, err := h.service.GetAllEngines(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(engines)
}

func (h *EngineHandler) GetEngine(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	engine, err := h.service.GetEngineByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(engine)
}

func (h *EngineHandler) CreateEngine(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	var engine models.Engine
	if err := c.BodyParser(&engine); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid engine payload"})
	}
	created, err := h.service.CreateEngine(c.UserContext(), userID, engine)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *EngineHandler) UpdateEngine(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	var engine models.Engine
	if err := c.BodyParser(&engine); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid engine payload"})
	}
	if err := h.service.UpdateEngine(c.UserContext(), id, userID, engine); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *EngineHandler) DeleteEngine(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.DeleteEngine(c.UserContext(), id, userID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
