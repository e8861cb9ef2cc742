package services

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powerdesk.app/pkg/formschema"
)

type fakeRasterizer struct {
	lastHTML string
	fail     bool
}

func (r *fakeRasterizer) RenderPDF(_ context.Context, htmlDoc string) ([]byte, error) {
	if r.fail {
		return nil, assert.AnError
	}
	r.lastHTML = htmlDoc
	return []byte("%PDF-fake"), nil
}

func (r *fakeRasterizer) Close() error { return nil }

func testReportService(t *testing.T, rasterizer *fakeRasterizer) *ReportService {
	t.Helper()
	engine := html.New("../reports/templates", ".html")
	require.NoError(t, engine.Load())
	return &ReportService{engine: engine, rasterizer: rasterizer}
}

func sampleReportInput() ReportInput {
	return ReportInput{
		JobOrder:  "JO-2024-AB12CD34",
		CreatedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		Values: formschema.FlatValues{
			"customerName": formschema.StringValue("Acme Marine"),
			"engineModel":  formschema.StringValue("QSB7-G5"),
		},
	}
}

func TestValidReportKind(t *testing.T) {
	assert.True(t, ValidReportKind(ReportServiceJob))
	assert.True(t, ValidReportKind(ReportCommissioning))
	assert.False(t, ValidReportKind("inspectionReport"))
}

func TestRenderHTML(t *testing.T) {
	svc := testReportService(t, &fakeRasterizer{})

	doc, err := svc.RenderHTML(ReportServiceJob, sampleReportInput())
	require.NoError(t, err)
	assert.Contains(t, doc, "JO-2024-AB12CD34")
	assert.Contains(t, doc, "Acme Marine")
	assert.Contains(t, doc, "2024-03-15")

	_, err = svc.RenderHTML("inspectionReport", sampleReportInput())
	assert.ErrorIs(t, err, ErrReportUnknownKind)
}

func TestRenderPDF(t *testing.T) {
	rasterizer := &fakeRasterizer{}
	svc := testReportService(t, rasterizer)

	pdf, err := svc.RenderPDF(context.Background(), ReportCommissioning, sampleReportInput())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Contains(t, rasterizer.lastHTML, "QSB7-G5")

	rasterizer.fail = true
	_, err = svc.RenderPDF(context.Background(), ReportCommissioning, sampleReportInput())
	assert.ErrorIs(t, err, ErrReportRenderFailed)
}

func TestBindingsFillsMissingFields(t *testing.T) {
	b := bindings(ReportServiceJob, sampleReportInput())
	fields := b["Fields"].(map[string]string)

	assert.Equal(t, "Acme Marine", fields["customerName"])
	assert.Equal(t, "", fields["technicianName"], "uncaptured fields render empty")
	assert.Len(t, fields, len(reportFields[ReportServiceJob]))
}
