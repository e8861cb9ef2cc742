package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type contextKey string

// ContextUserIDKey carries the acting user's id through a request context so
// the audit hooks below can stamp created_by/updated_by/deleted_by.
const ContextUserIDKey contextKey = "user_id"

// BaseModel is embedded by every persisted entity: numeric PK, timestamps,
// soft delete and audit columns.
type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	CreatedBy *uint          `gorm:"index" json:"-"`
	UpdatedBy *uint          `gorm:"index" json:"-"`
	DeletedBy *uint          `gorm:"index" json:"-"`
}

// ContextWithUserID returns ctx annotated with the acting user's id.
func ContextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, ContextUserIDKey, userID)
}

// UserIDFromContext extracts the acting user's id, if any.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(ContextUserIDKey).(uint)
	return id, ok && id != 0
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if id, ok := UserIDFromContext(tx.Statement.Context); ok {
		m.CreatedBy = &id
		m.UpdatedBy = &id
	}
	return nil
}

func (m *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if id, ok := UserIDFromContext(tx.Statement.Context); ok {
		m.UpdatedBy = &id
	}
	return nil
}
