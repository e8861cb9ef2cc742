package api

import (
	"github.com/gofiber/fiber/v2"

	"powerdesk.app/middlewares"
	"powerdesk.app/pkg/formschema"
	"powerdesk.app/pkg/queryparams"
	"powerdesk.app/services"
)

// FormTemplateHandler serves the schema-store resource: CRUD over dynamic
// form templates plus the render plan the form UI consumes.
type FormTemplateHandler struct {
	service services.IFormTemplateService
}

func NewFormTemplateHandler() *FormTemplateHandler {
	return &FormTemplateHandler{service: services.NewFormTemplateService()}
}

func (h *FormTemplateHandler) ListTemplates(c *fiber.Ctx) error {
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.GetTemplatesPaginated(c.UserContext(), params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

func (h *FormTemplateHandler) GetTemplate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	tpl, err := h.service.GetTemplateByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tpl)
}

// GetRenderPlan returns the ordered section/field input surface with
// autocomplete bindings for a template.
func (h *FormTemplateHandler) GetRenderPlan(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	plan, err := h.service.GetRenderPlan(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(plan)
}

func (h *FormTemplateHandler) CreateTemplate(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}

	var tpl formschema.Template
	if err := c.BodyParser(&tpl); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid template payload"})
	}

	created, err := h.service.CreateTemplate(c.UserContext(), userID, tpl)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateTemplate replaces the whole template document.
func (h *FormTemplateHandler) UpdateTemplate(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var tpl formschema.Template
	if err := c.BodyParser(&tpl); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid template payload"})
	}

	if err := h.service.UpdateTemplate(c.UserContext(), id, userID, tpl); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FormTemplateHandler) DeleteTemplate(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.DeleteTemplate(c.UserContext(), id, userID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
