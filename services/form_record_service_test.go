package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"powerdesk.app/models"
	"powerdesk.app/pkg/formschema"
	"powerdesk.app/pkg/queryparams"
	"powerdesk.app/pkg/recordsearch"
	"powerdesk.app/repositories"
)

type fakeRecordRepo struct {
	byID   map[uint]*models.FormRecord
	nextID uint
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{byID: map[uint]*models.FormRecord{}, nextID: 1}
}

func (r *fakeRecordRepo) Create(_ context.Context, rec *models.FormRecord) error {
	rec.ID = r.nextID
	rec.CreatedAt = time.Now().UTC()
	r.nextID++
	copied := *rec
	r.byID[rec.ID] = &copied
	return nil
}

func (r *fakeRecordRepo) FindByID(_ context.Context, id uint) (*models.FormRecord, error) {
	rec, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *rec
	return &copied, nil
}

func (r *fakeRecordRepo) FindAllByTemplateID(_ context.Context, templateID uint) ([]models.FormRecord, error) {
	var out []models.FormRecord
	for _, rec := range r.byID {
		if rec.CompanyFormID == templateID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *fakeRecordRepo) Update(_ context.Context, rec *models.FormRecord) error {
	if _, ok := r.byID[rec.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *rec
	r.byID[rec.ID] = &copied
	return nil
}

func (r *fakeRecordRepo) Delete(_ context.Context, rec *models.FormRecord, _ uint) error {
	if _, ok := r.byID[rec.ID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.byID, rec.ID)
	return nil
}

func (r *fakeRecordRepo) CountByTemplateID(_ context.Context, templateID uint) (int64, error) {
	all, _ := r.FindAllByTemplateID(context.Background(), templateID)
	return int64(len(all)), nil
}

// recordTestTemplates wires a template service backed by the fake repo and
// returns the id of one stored schema.
func recordTestTemplates(t *testing.T, schema formschema.Template) (IFormTemplateService, uint) {
	t.Helper()
	svc := newFormTemplateServiceWith(newFakeTemplateRepo(), &fakeCompanyRepo{})
	created, err := svc.CreateTemplate(context.Background(), 1, schema)
	require.NoError(t, err)
	return svc, created.ID
}

func TestSubmitRecord(t *testing.T) {
	templates, tplID := recordTestTemplates(t, validSchema())
	svc := newFormRecordServiceWith(newFakeRecordRepo(), templates)

	rec, err := svc.SubmitRecord(context.Background(), 7, tplID, formschema.FlatValues{
		"customerName": formschema.StringValue("Acme Marine"),
	})
	require.NoError(t, err)
	assert.Regexp(t, `^JO-\d{4}-[0-9A-F]{8}$`, rec.JobOrder)

	data, err := rec.Values()
	require.NoError(t, err)
	assert.Equal(t, formschema.StringValue("Acme Marine"), data["basicInformation"]["customerName"])
	// The untouched field is still present in its section.
	assert.Contains(t, data["engineInformation"], "engineModel")
}

func TestSubmitRecordRejectsEmptyTemplate(t *testing.T) {
	templates, tplID := recordTestTemplates(t, formschema.Template{Name: "Empty", FormType: "service"})
	svc := newFormRecordServiceWith(newFakeRecordRepo(), templates)

	_, err := svc.SubmitRecord(context.Background(), 7, tplID, formschema.FlatValues{})
	assert.ErrorIs(t, err, ErrRecTemplateHasNoFields)

	_, err = svc.SubmitRecord(context.Background(), 7, 0, formschema.FlatValues{})
	assert.ErrorIs(t, err, ErrRecInvalidInput)

	_, err = svc.SubmitRecord(context.Background(), 7, 999, formschema.FlatValues{})
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestListRecordsFilters(t *testing.T) {
	templates, tplID := recordTestTemplates(t, validSchema())
	repo := newFakeRecordRepo()
	svc := newFormRecordServiceWith(repo, templates)

	for _, name := range []string{"Acme Marine", "Harbor Logistics", "Acme Road"} {
		_, err := svc.SubmitRecord(context.Background(), 7, tplID, formschema.FlatValues{
			"customerName": formschema.StringValue(name),
		})
		require.NoError(t, err)
	}

	result, err := svc.ListRecords(context.Background(), tplID, recordsearch.Filter{Search: "acme"}, queryparams.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Meta.TotalItems)

	result, err = svc.ListRecords(context.Background(), tplID, recordsearch.Filter{}, queryparams.ListParams{PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Meta.TotalItems)
	assert.Equal(t, 2, result.Meta.TotalPages)
	assert.Len(t, result.Data.([]models.FormRecord), 2)
}

func TestListRecordsDateWindow(t *testing.T) {
	templates, tplID := recordTestTemplates(t, validSchema())
	repo := newFakeRecordRepo()
	svc := newFormRecordServiceWith(repo, templates)

	_, err := svc.SubmitRecord(context.Background(), 7, tplID, formschema.FlatValues{})
	require.NoError(t, err)
	// Backdate the stored record past the filter window.
	repo.byID[1].CreatedAt = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	result, err := svc.ListRecords(context.Background(), tplID,
		recordsearch.Filter{StartDate: "2024-03-10", EndDate: "2024-03-10"}, queryparams.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Meta.TotalItems)

	result, err = svc.ListRecords(context.Background(), tplID,
		recordsearch.Filter{StartDate: "2024-03-11"}, queryparams.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Meta.TotalItems)
}

func TestListRecordsSkipsCorruptBlobs(t *testing.T) {
	templates, tplID := recordTestTemplates(t, validSchema())
	repo := newFakeRecordRepo()
	svc := newFormRecordServiceWith(repo, templates)

	_, err := svc.SubmitRecord(context.Background(), 7, tplID, formschema.FlatValues{})
	require.NoError(t, err)
	repo.byID[1].Data = datatypes.JSON(`{broken`)

	result, err := svc.ListRecords(context.Background(), tplID, recordsearch.Filter{}, queryparams.ListParams{})
	require.NoError(t, err, "corrupt rows are skipped, not fatal")
	assert.Equal(t, int64(0), result.Meta.TotalItems)
}

func TestUpdateRecord(t *testing.T) {
	templates, tplID := recordTestTemplates(t, validSchema())
	repo := newFakeRecordRepo()
	svc := newFormRecordServiceWith(repo, templates)

	rec, err := svc.SubmitRecord(context.Background(), 7, tplID, formschema.FlatValues{})
	require.NoError(t, err)

	newData := formschema.SubmissionData{
		"basicInformation": {"customerName": formschema.StringValue("Harbor Logistics")},
	}
	require.NoError(t, svc.UpdateRecord(context.Background(), rec.ID, 7, "JO-2024-CUSTOM01", newData))

	stored, err := svc.GetRecordByID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "JO-2024-CUSTOM01", stored.JobOrder)
	data, err := stored.Values()
	require.NoError(t, err)
	assert.Equal(t, newData, data)

	// Empty job order keeps the minted one.
	require.NoError(t, svc.UpdateRecord(context.Background(), rec.ID, 7, "", newData))
	stored, err = svc.GetRecordByID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "JO-2024-CUSTOM01", stored.JobOrder)

	assert.ErrorIs(t, svc.UpdateRecord(context.Background(), 999, 7, "", newData), ErrRecordNotFound)
}

func TestDeleteRecord(t *testing.T) {
	templates, tplID := recordTestTemplates(t, validSchema())
	svc := newFormRecordServiceWith(newFakeRecordRepo(), templates)

	rec, err := svc.SubmitRecord(context.Background(), 7, tplID, formschema.FlatValues{})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecord(context.Background(), rec.ID, 7))
	_, err = svc.GetRecordByID(context.Background(), rec.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.ErrorIs(t, svc.DeleteRecord(context.Background(), rec.ID, 7), ErrRecordNotFound)
}
