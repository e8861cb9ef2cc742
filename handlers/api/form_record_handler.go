package api

import (
	"github.com/gofiber/fiber/v2"

	"powerdesk.app/middlewares"
	"powerdesk.app/pkg/formschema"
	"powerdesk.app/pkg/queryparams"
	"powerdesk.app/pkg/recordsearch"
	"powerdesk.app/services"
)

// FormRecordHandler serves the submission store: submit against a template,
// list with the records-view filters, and full in-place edit.
type FormRecordHandler struct {
	service services.IFormRecordService
}

func NewFormRecordHandler() *FormRecordHandler {
	return &FormRecordHandler{service: services.NewFormRecordService()}
}

// submitRequest is the renderer's flat value map.
type submitRequest struct {
	Values formschema.FlatValues `json:"values"`
}

// updateRequest is the edit payload: an optional job order and the full
// grouped data document.
type updateRequest struct {
	JobOrder string                    `json:"jobOrder"`
	Data     formschema.SubmissionData `json:"data"`
}

// SubmitRecord accepts the flat value map, groups it by the template's
// sections, and persists one record. The whole submission is a single
// atomic call; on failure nothing is stored and the client retries with
// the same values.
func (h *FormRecordHandler) SubmitRecord(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	templateID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid submission payload"})
	}

	rec, err := h.service.SubmitRecord(c.UserContext(), userID, templateID, req.Values)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// ListRecords applies search/from/to filters and pagination over a
// template's submissions.
func (h *FormRecordHandler) ListRecords(c *fiber.Ctx) error {
	templateID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	filter := recordsearch.Filter{
		Search:    c.Query("search"),
		StartDate: c.Query("from"),
		EndDate:   c.Query("to"),
	}
	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.ListRecords(c.UserContext(), templateID, filter, params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

func (h *FormRecordHandler) GetRecord(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	rec, err := h.service.GetRecordByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rec)
}

// UpdateRecord replaces the record's data document wholesale.
func (h *FormRecordHandler) UpdateRecord(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid update payload"})
	}

	if err := h.service.UpdateRecord(c.UserContext(), id, userID, req.JobOrder, req.Data); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FormRecordHandler) DeleteRecord(c *fiber.Ctx) error {
	userID, ok := middlewares.UserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing identity"})
	}
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.DeleteRecord(c.UserContext(), id, userID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
