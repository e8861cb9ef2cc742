package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"powerdesk.app/pkg/formschema"
	"powerdesk.app/services"
)

// ReportHandler exports a submission as PDF through one of the fixed legacy
// report kinds. Dynamic templates have no PDF path.
type ReportHandler struct {
	records services.IFormRecordService
	reports services.IReportService
}

func NewReportHandler(reports services.IReportService) *ReportHandler {
	return &ReportHandler{
		records: services.NewFormRecordService(),
		reports: reports,
	}
}

// ExportPDF renders /submissions/:id/report/:kind.
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	kind := services.ReportKind(c.Params("kind"))
	if !services.ValidReportKind(kind) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "unknown report kind"})
	}

	rec, err := h.records.GetRecordByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	data, err := rec.Values()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "stored submission data is corrupt"})
	}

	pdf, err := h.reports.RenderPDF(c.UserContext(), kind, services.ReportInput{
		JobOrder:  rec.JobOrder,
		CreatedAt: rec.CreatedAt,
		Values:    formschema.FlattenData(data),
	})
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s-%d.pdf", kind, rec.ID))
	return c.Send(pdf)
}
