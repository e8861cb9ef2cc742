package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powerdesk.app/models"
	"powerdesk.app/pkg/formschema"
	"powerdesk.app/pkg/queryparams"
	"powerdesk.app/repositories"
)

type fakeTemplateRepo struct {
	byID   map[uint]*models.FormTemplate
	nextID uint
	failOn string // method name that should error
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{byID: map[uint]*models.FormTemplate{}, nextID: 1}
}

func (r *fakeTemplateRepo) Create(_ context.Context, tpl *models.FormTemplate) error {
	if r.failOn == "Create" {
		return assert.AnError
	}
	tpl.ID = r.nextID
	r.nextID++
	copied := *tpl
	r.byID[tpl.ID] = &copied
	return nil
}

func (r *fakeTemplateRepo) FindByID(_ context.Context, id uint) (*models.FormTemplate, error) {
	tpl, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *tpl
	return &copied, nil
}

func (r *fakeTemplateRepo) FindAllPaginated(_ context.Context, params queryparams.ListParams) ([]models.FormTemplate, int64, error) {
	all, _ := r.FindAll(context.Background())
	return all, int64(len(all)), nil
}

func (r *fakeTemplateRepo) FindAll(_ context.Context) ([]models.FormTemplate, error) {
	var out []models.FormTemplate
	for _, tpl := range r.byID {
		out = append(out, *tpl)
	}
	return out, nil
}

func (r *fakeTemplateRepo) Update(_ context.Context, tpl *models.FormTemplate) error {
	if r.failOn == "Update" {
		return assert.AnError
	}
	if _, ok := r.byID[tpl.ID]; !ok {
		return repositories.ErrNotFound
	}
	copied := *tpl
	r.byID[tpl.ID] = &copied
	return nil
}

func (r *fakeTemplateRepo) Delete(_ context.Context, tpl *models.FormTemplate, _ uint) error {
	if _, ok := r.byID[tpl.ID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.byID, tpl.ID)
	return nil
}

func (r *fakeTemplateRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

type fakeCompanyRepo struct {
	byID map[uint]*models.Company
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *models.Company) error { return nil }
func (r *fakeCompanyRepo) FindByID(_ context.Context, id uint) (*models.Company, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return c, nil
}
func (r *fakeCompanyRepo) FindAll(_ context.Context) ([]models.Company, error)       { return nil, nil }
func (r *fakeCompanyRepo) Update(_ context.Context, c *models.Company) error         { return nil }
func (r *fakeCompanyRepo) Delete(_ context.Context, c *models.Company, _ uint) error { return nil }

func validSchema() formschema.Template {
	return formschema.Template{
		Name:     "Generator Service Form",
		FormType: "service",
		Fields: []formschema.Field{
			{Name: "customerName", Type: formschema.FieldText},
			{Name: "engineModel", Type: formschema.FieldText, Section: "engineInformation"},
		},
	}
}

func TestCreateTemplate(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := newFormTemplateServiceWith(repo, &fakeCompanyRepo{})

	created, err := svc.CreateTemplate(context.Background(), 7, validSchema())
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "Generator Service Form", created.Name)
	assert.Equal(t, "service", created.FormType)

	stored, err := svc.GetTemplateSchema(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Fields, 2)
	assert.Equal(t, "customerName", stored.Fields[0].Name)
}

func TestCreateTemplateValidatesInput(t *testing.T) {
	svc := newFormTemplateServiceWith(newFakeTemplateRepo(), &fakeCompanyRepo{})

	_, err := svc.CreateTemplate(context.Background(), 7, formschema.Template{FormType: "service"})
	assert.ErrorIs(t, err, ErrTplInvalidInput)

	companyID := uint(99)
	tpl := validSchema()
	tpl.CompanyID = &companyID
	_, err = svc.CreateTemplate(context.Background(), 7, tpl)
	assert.ErrorIs(t, err, ErrTplCompanyNotFound)
}

func TestCreateTemplateRepositoryFailure(t *testing.T) {
	repo := newFakeTemplateRepo()
	repo.failOn = "Create"
	svc := newFormTemplateServiceWith(repo, &fakeCompanyRepo{})

	_, err := svc.CreateTemplate(context.Background(), 7, validSchema())
	assert.ErrorIs(t, err, ErrTemplateCreationFailed)
}

func TestGetTemplateByIDNotFound(t *testing.T) {
	svc := newFormTemplateServiceWith(newFakeTemplateRepo(), &fakeCompanyRepo{})

	_, err := svc.GetTemplateByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestUpdateTemplateReplacesSchema(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := newFormTemplateServiceWith(repo, &fakeCompanyRepo{})
	created, err := svc.CreateTemplate(context.Background(), 7, validSchema())
	require.NoError(t, err)

	updated := validSchema()
	updated.Name = "Commissioning Form"
	updated.Fields = updated.Fields[:1]
	require.NoError(t, svc.UpdateTemplate(context.Background(), created.ID, 7, updated))

	stored, err := svc.GetTemplateSchema(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Commissioning Form", stored.Name)
	assert.Len(t, stored.Fields, 1, "full replace, not merge")
}

func TestUpdateTemplateErrors(t *testing.T) {
	svc := newFormTemplateServiceWith(newFakeTemplateRepo(), &fakeCompanyRepo{})

	assert.ErrorIs(t, svc.UpdateTemplate(context.Background(), 0, 7, validSchema()), ErrTplInvalidInput)
	assert.ErrorIs(t, svc.UpdateTemplate(context.Background(), 42, 7, validSchema()), ErrTemplateNotFound)
}

func TestDeleteTemplate(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := newFormTemplateServiceWith(repo, &fakeCompanyRepo{})
	created, err := svc.CreateTemplate(context.Background(), 7, validSchema())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTemplate(context.Background(), created.ID, 7))
	_, err = svc.GetTemplateByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	assert.ErrorIs(t, svc.DeleteTemplate(context.Background(), created.ID, 7), ErrTemplateNotFound)
}

func TestGetRenderPlan(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := newFormTemplateServiceWith(repo, &fakeCompanyRepo{})
	created, err := svc.CreateTemplate(context.Background(), 7, validSchema())
	require.NoError(t, err)

	plan, err := svc.GetRenderPlan(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, plan.HasFields)
	require.Len(t, plan.Sections, 6, "all default sections render")
	assert.Equal(t, formschema.AutocompleteCustomer, plan.Autocomplete["customerName"])
}

func TestGetTemplatesPaginated(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := newFormTemplateServiceWith(repo, &fakeCompanyRepo{})
	_, err := svc.CreateTemplate(context.Background(), 7, validSchema())
	require.NoError(t, err)

	result, err := svc.GetTemplatesPaginated(context.Background(), queryparams.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Meta.TotalItems)
	assert.Equal(t, queryparams.DefaultPerPage, result.Meta.PerPage, "params are clamped")
}
