package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"powerdesk.app/pkg/queryparams"
)

// ErrNotFound is the repository-level not-found error; services translate it
// into their own taxonomy.
var ErrNotFound = errors.New("record not found")

// txContextKey carries an open transaction through a context so repository
// calls inside a service transaction share it.
type txContextKey struct{}

// ContextWithTx annotates ctx with an open transaction.
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// dbFromContext resolves the DB handle for a call: an in-flight transaction
// when present, otherwise the given connection scoped to ctx.
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

// BaseRepository holds the pieces every entity repository shares: the
// connection and the sort-column whitelist.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]bool
}

// NewBaseRepository wraps db for entity type T.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db, allowedSortColumns: map[string]bool{}}
}

// SetAllowedSortColumns whitelists the columns list endpoints may sort by.
func (b *BaseRepository[T]) SetAllowedSortColumns(cols []string) {
	b.allowedSortColumns = make(map[string]bool, len(cols))
	for _, c := range cols {
		b.allowedSortColumns[c] = true
	}
}

// ApplyOrder appends a validated ORDER BY to query; unknown sort columns
// fall back to created_at.
func (b *BaseRepository[T]) ApplyOrder(query *gorm.DB, params queryparams.ListParams) *gorm.DB {
	column := "created_at"
	if b.allowedSortColumns[params.SortBy] {
		column = params.SortBy
	}
	direction := strings.ToLower(params.OrderBy)
	if direction != "asc" && direction != "desc" {
		direction = queryparams.DefaultOrderBy
	}
	return query.Order(column + " " + direction)
}
