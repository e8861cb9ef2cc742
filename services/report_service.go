package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"powerdesk.app/configs"
	"powerdesk.app/configs/configslog"
	"powerdesk.app/pkg/formschema"
	"powerdesk.app/pkg/pdfrender"
)

// ReportServiceError is the report generation failure taxonomy.
type ReportServiceError string

func (e ReportServiceError) Error() string { return string(e) }

const (
	ErrReportUnknownKind  ReportServiceError = "unknown report kind"
	ErrReportRenderFailed ReportServiceError = "report could not be rendered"
)

// ReportKind names one of the two fixed legacy report formats. The dynamic
// template engine has no PDF path; only these flat-schema reports export.
type ReportKind string

const (
	ReportServiceJob    ReportKind = "serviceReport"
	ReportCommissioning ReportKind = "commissioningReport"
)

// reportFields lists, per kind, the fixed field names substituted into the
// kind's HTML template. Static configuration, mirroring the legacy flat
// schemas.
var reportFields = map[ReportKind][]string{
	ReportServiceJob: {
		"customerName", "customerAddress", "customerContactPerson", "customerPhone",
		"customerEmail", "customerEquipment",
		"engineModel", "engineSerialNumber", "engineType", "enginePower",
		"engineRPM", "engineHours", "engineLocation",
		"serviceDate", "serviceType", "workPerformed", "partsReplaced",
		"oilUsed", "coolantUsed", "filtersReplaced", "technicianName",
		"technicianSignature", "customerSignature", "remarks",
	},
	ReportCommissioning: {
		"customerName", "customerAddress", "customerContactPerson",
		"engineModel", "engineSerialNumber", "engineManufacturer", "enginePower",
		"engineRPM", "engineFuelType", "engineAlternatorModel",
		"engineAlternatorSerialNumber", "engineControllerModel",
		"engineControllerSerialNumber", "engineBatteryType", "engineLocation",
		"commissioningDate", "loadTestResult", "voltageReading", "frequencyReading",
		"oilPressure", "coolantTemperature", "safetyShutdownsTested",
		"commissioningEngineer", "engineerSignature", "customerSignature", "remarks",
	},
}

// ReportInput is what a report substitution consumes: the record's metadata
// plus its flattened field values.
type ReportInput struct {
	JobOrder  string
	CreatedAt time.Time
	Values    formschema.FlatValues
}

// IReportService fills a report kind's HTML template from a record and
// rasterizes it to PDF.
type IReportService interface {
	RenderHTML(kind ReportKind, input ReportInput) (string, error)
	RenderPDF(ctx context.Context, kind ReportKind, input ReportInput) ([]byte, error)
}

type ReportService struct {
	engine     *html.Engine
	rasterizer pdfrender.Rasterizer
}

// NewReportService loads the report templates from the configured directory
// and attaches the given rasterizer.
func NewReportService(rasterizer pdfrender.Rasterizer) (IReportService, error) {
	engine := html.New(configs.GetConfig().ReportTemplateDir, ".html")
	if err := engine.Load(); err != nil {
		return nil, fmt.Errorf("loading report templates: %w", err)
	}
	return &ReportService{engine: engine, rasterizer: rasterizer}, nil
}

// ValidReportKind reports whether kind names a known legacy report.
func ValidReportKind(kind ReportKind) bool {
	_, ok := reportFields[kind]
	return ok
}

// bindings builds the template substitution map: every fixed field of the
// kind, empty string when the record never captured it.
func bindings(kind ReportKind, input ReportInput) map[string]any {
	b := map[string]any{
		"JobOrder":  input.JobOrder,
		"CreatedAt": input.CreatedAt.Format("2006-01-02"),
	}
	fields := map[string]string{}
	for _, name := range reportFields[kind] {
		fields[name] = input.Values[name].Str()
	}
	b["Fields"] = fields
	return b
}

func (s *ReportService) RenderHTML(kind ReportKind, input ReportInput) (string, error) {
	if !ValidReportKind(kind) {
		return "", fmt.Errorf("%w: %q", ErrReportUnknownKind, kind)
	}
	var buf bytes.Buffer
	if err := s.engine.Render(&buf, string(kind), bindings(kind, input)); err != nil {
		configslog.Log.Error("report template render failed", zap.String("kind", string(kind)), zap.Error(err))
		return "", ErrReportRenderFailed
	}
	return buf.String(), nil
}

func (s *ReportService) RenderPDF(ctx context.Context, kind ReportKind, input ReportInput) ([]byte, error) {
	htmlDoc, err := s.RenderHTML(kind, input)
	if err != nil {
		return nil, err
	}
	pdf, err := s.rasterizer.RenderPDF(ctx, htmlDoc)
	if err != nil {
		configslog.Log.Error("report rasterization failed", zap.String("kind", string(kind)), zap.Error(err))
		return nil, ErrReportRenderFailed
	}
	return pdf, nil
}

var _ IReportService = (*ReportService)(nil)
