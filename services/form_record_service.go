package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"powerdesk.app/configs/configslog"
	"powerdesk.app/models"
	"powerdesk.app/pkg/formschema"
	"powerdesk.app/pkg/queryparams"
	"powerdesk.app/pkg/recordsearch"
	"powerdesk.app/repositories"
)

// RecordServiceError is the submission service failure taxonomy.
type RecordServiceError string

func (e RecordServiceError) Error() string { return string(e) }

const (
	ErrRecordNotFound         RecordServiceError = "submission not found"
	ErrRecordCreationFailed   RecordServiceError = "submission could not be saved"
	ErrRecordUpdateFailed     RecordServiceError = "submission could not be updated"
	ErrRecordDeletionFailed   RecordServiceError = "submission could not be deleted"
	ErrRecInvalidInput        RecordServiceError = "invalid submission input"
	ErrRecTemplateHasNoFields RecordServiceError = "template has no fields, nothing to submit"
)

// IFormRecordService manages submissions: grouping flat renderer values into
// section-keyed records, listing with the records-view filters, and full
// in-place edits.
type IFormRecordService interface {
	SubmitRecord(ctx context.Context, userID uint, templateID uint, values formschema.FlatValues) (*models.FormRecord, error)
	GetRecordByID(ctx context.Context, id uint) (*models.FormRecord, error)
	ListRecords(ctx context.Context, templateID uint, filter recordsearch.Filter, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateRecord(ctx context.Context, id uint, userID uint, jobOrder string, data formschema.SubmissionData) error
	DeleteRecord(ctx context.Context, id uint, userID uint) error
}

type FormRecordService struct {
	repo            repositories.IFormRecordRepository
	templateService IFormTemplateService
}

func NewFormRecordService() IFormRecordService {
	return &FormRecordService{
		repo:            repositories.NewFormRecordRepository(),
		templateService: NewFormTemplateService(),
	}
}

// newJobOrder mints the human-facing submission identifier.
func newJobOrder(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("JO-%d-%s", now.Year(), suffix)
}

// SubmitRecord groups the renderer's flat value map by the template's
// sections (untouched fields get their default value) and persists the
// result as one atomic create.
func (s *FormRecordService) SubmitRecord(ctx context.Context, userID uint, templateID uint, values formschema.FlatValues) (*models.FormRecord, error) {
	if templateID == 0 {
		return nil, fmt.Errorf("%w: missing template id", ErrRecInvalidInput)
	}
	tpl, err := s.templateService.GetTemplateSchema(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if len(tpl.Fields) == 0 {
		return nil, ErrRecTemplateHasNoFields
	}

	rec := models.FormRecord{
		CompanyFormID: templateID,
		JobOrder:      newJobOrder(time.Now().UTC()),
	}
	if err := rec.SetValues(formschema.GroupValues(tpl, values)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecInvalidInput, err)
	}

	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Create(txCtx, &rec); err != nil {
		configslog.Log.Error("SubmitRecord failed", zap.Uint("templateID", templateID), zap.Error(err))
		return nil, ErrRecordCreationFailed
	}
	configslog.SLog.Infof("submission saved: id=%d template=%d jobOrder=%s", rec.ID, templateID, rec.JobOrder)
	return &rec, nil
}

func (s *FormRecordService) GetRecordByID(ctx context.Context, id uint) (*models.FormRecord, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return rec, nil
}

// ListRecords fetches the template's full record set and applies the
// records-view semantics in memory: case-insensitive substring search over
// the flattened values, inclusive day-granular date bounds, then fixed-size
// pagination. Records whose data blob fails to decode are skipped with a
// warning rather than failing the whole listing.
func (s *FormRecordService) ListRecords(ctx context.Context, templateID uint, filter recordsearch.Filter, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if templateID == 0 {
		return nil, fmt.Errorf("%w: missing template id", ErrRecInvalidInput)
	}
	params.Validate()

	records, err := s.repo.FindAllByTemplateID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	filtered := records[:0:0]
	for _, rec := range records {
		data, err := rec.Values()
		if err != nil {
			configslog.SLog.Warnf("skipping record %d: data blob decode failed: %v", rec.ID, err)
			continue
		}
		if filter.Match(data, rec.CreatedAt) {
			filtered = append(filtered, rec)
		}
	}

	page := recordsearch.Page(filtered, params.Page, params.PerPage)
	return &queryparams.PaginatedResult{
		Data: page,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  int64(len(filtered)),
			TotalPages:  queryparams.CalculateTotalPages(int64(len(filtered)), params.PerPage),
		},
	}, nil
}

// UpdateRecord replaces the record's data and job order wholesale
// (last-save-wins, like every write in this system). The data arrives
// already grouped; stale records edited after their template changed keep
// whatever layout the caller sends.
func (s *FormRecordService) UpdateRecord(ctx context.Context, id uint, userID uint, jobOrder string, data formschema.SubmissionData) error {
	if id == 0 {
		return fmt.Errorf("%w: missing record id", ErrRecInvalidInput)
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRecordNotFound
		}
		return err
	}

	if jobOrder != "" {
		rec.JobOrder = jobOrder
	}
	if err := rec.SetValues(data); err != nil {
		return fmt.Errorf("%w: %v", ErrRecInvalidInput, err)
	}

	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Update(txCtx, rec); err != nil {
		configslog.Log.Error("UpdateRecord failed", zap.Uint("id", id), zap.Error(err))
		return ErrRecordUpdateFailed
	}
	configslog.SLog.Infof("submission updated: id=%d (by user %d)", id, userID)
	return nil
}

func (s *FormRecordService) DeleteRecord(ctx context.Context, id uint, userID uint) error {
	if id == 0 {
		return fmt.Errorf("%w: missing record id", ErrRecInvalidInput)
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	txCtx := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Delete(txCtx, rec, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRecordNotFound
		}
		configslog.Log.Error("DeleteRecord failed", zap.Uint("id", id), zap.Error(err))
		return ErrRecordDeletionFailed
	}
	configslog.SLog.Infof("submission deleted: id=%d (by user %d)", id, userID)
	return nil
}

var _ IFormRecordService = (*FormRecordService)(nil)

// newFormRecordServiceWith is the test seam.
func newFormRecordServiceWith(repo repositories.IFormRecordRepository, templates IFormTemplateService) *FormRecordService {
	return &FormRecordService{repo: repo, templateService: templates}
}
