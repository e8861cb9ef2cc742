package api

import (
	"github.com/gofiber/fiber/v2"

	"powerdesk.app/middlewares"
	"powerdesk.app/models"
	"powerdesk.app/services"
)

// CompanyHandler is plain CRUD over owning companies.
type CompanyHandler struct {
	service services.ICompanyService
}

func NewCompanyHandler() *CompanyHandler {
	return &CompanyHandler{service: services.NewCompanyService()}
}

func (h *CompanyHandler) ListCompanies(c *fiber.Ctx) error {
	companies, err := h.service.GetAllCompanies(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(companies)
}

func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	company, err := h.service.GetCompanyByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(company)
}

func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	var company models.Company
	if err := c.BodyParser(&company); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid company payload"})
	}
	created, err := h.service.CreateCompany(c.UserContext(), userID, company)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CompanyHandler) UpdateCompany(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	var company models.Company
	if err := c.BodyParser(&company); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid company payload"})
	}
	if err := h.service.UpdateCompany(c.UserContext(), id, userID, company); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CompanyHandler) DeleteCompany(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.DeleteCompany(c.UserContext(), id, userID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
