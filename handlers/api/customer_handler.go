package api

import (
	"github.com/gofiber/fiber/v2"

	"powerdesk.app/middlewares"
	"powerdesk.app/models"
	"powerdesk.app/services"
)

// CustomerHandler is plain CRUD over customer records.
type CustomerHandler struct {
	service services.ICustomerService
}

func NewCustomerHandler() *CustomerHandler {
	return &CustomerHandler{service: services.NewCustomerService()}
}

func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetAllCustomers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customers)
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	customer, err := h.service.GetCustomerByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid customer payload"})
	}
	created, err := h.service.CreateCustomer(c.UserContext(), userID, customer)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid customer payload"})
	}
	if err := h.service.UpdateCustomer(c.UserContext(), id, userID, customer); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.DeleteCustomer(c.UserContext(), id, userID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
