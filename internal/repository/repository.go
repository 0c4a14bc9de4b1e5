// internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
)

// Pagination is the page/limit pair shared by every list query.
type Pagination struct {
	Page  int `json:"page" validate:"min=1"`
	Limit int `json:"limit" validate:"min=1,max=100"`
}

// Clamped returns p with page >= 1 and limit in [1, MaxLimit]. A zero limit becomes DefaultLimit.
func (p Pagination) Clamped() Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	switch {
	case p.Limit == 0:
		p.Limit = DefaultLimit
	case p.Limit < 1:
		p.Limit = 1
	case p.Limit > MaxLimit:
		p.Limit = MaxLimit
	}
	return p
}

// Offset is the number of rows skipped before the current page.
func (p Pagination) Offset() int {
	c := p.Clamped()
	return (c.Page - 1) * c.Limit
}

func paginate(p Pagination) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		c := p.Clamped()
		return db.Offset(c.Offset()).Limit(c.Limit)
	}
}

// Ref addresses a row by primary key or, when the value is not a UUID, by slug.
type Ref struct {
	ID   uuid.UUID
	Slug string
}

func ParseRef(raw string) Ref {
	if id, err := uuid.Parse(raw); err == nil {
		return Ref{ID: id}
	}
	return Ref{Slug: raw}
}

func (r Ref) IsID() bool {
	return r.ID != uuid.Nil
}

func (r Ref) String() string {
	if r.IsID() {
		return r.ID.String()
	}
	return r.Slug
}

func (r Ref) scope(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if r.IsID() {
			return db.Where(table+".id = ?", r.ID)
		}
		return db.Where(table+".slug = ?", r.Slug)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// contains wraps term for a case-insensitive substring match, escaping LIKE wildcards.
func contains(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// translate maps driver errors onto domain errors and wraps everything else.
func translate(err error, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case isUniqueViolation(err):
		return domain.ErrSlugConflict
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}

// findOrCreateByName resolves names to rows keyed by a unique column, inserting the missing
// ones. The result follows the order of names.
func findOrCreateByName[T any](ctx context.Context, db *gorm.DB, column string, names []string, build func(string) T, key func(T) string) ([]T, error) {
	if len(names) == 0 {
		return []T{}, nil
	}

	rows := make([]T, len(names))
	for i, n := range names {
		rows[i] = build(n)
	}

	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: column}}, DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create %s values: %w", column, err)
	}

	var found []T
	if err := db.WithContext(ctx).Where(clause.IN{Column: clause.Column{Name: column}, Values: toAny(names)}).Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to load %s values: %w", column, err)
	}

	byKey := make(map[string]T, len(found))
	for _, f := range found {
		byKey[key(f)] = f
	}
	out := make([]T, 0, len(names))
	for _, n := range names {
		if f, ok := byKey[n]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

func toAny[T any](values []T) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// replaceChildren deletes the owned rows of parentID and inserts rows in their place.
func replaceChildren[T any](tx *gorm.DB, foreignKey string, parentID uuid.UUID, rows []T) error {
	if err := tx.Where(foreignKey+" = ?", parentID).Delete(new(T)).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

// saveRow writes the row itself and leaves associations to the caller.
func saveRow(tx *gorm.DB, value interface{}) error {
	return tx.Omit(clause.Associations).Save(value).Error
}

func exists(ctx context.Context, db *gorm.DB, table interface{}, id uuid.UUID) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return count > 0, nil
}
