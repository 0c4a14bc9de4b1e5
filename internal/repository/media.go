// internal/repository/media.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MediaSortRecent   = "recent"
	MediaSortTitleAsc = "title_asc"
)

type MediaQuery struct {
	Pagination
	Kind          string `json:"kind" validate:"omitempty,oneof=image video youtube"`
	Tag           string `json:"tag" validate:"max=80"`
	Event         string `json:"event" validate:"max=160"`
	Search        string `json:"q" validate:"max=200"`
	From          *time.Time
	To            *time.Time
	Featured      *bool
	PublishedOnly bool
	Sort          string
}

type MediaRepositoryIface interface {
	List(ctx context.Context, q MediaQuery) ([]model.MediaItem, int64, error)
	Highlights(ctx context.Context, limit int) ([]model.MediaItem, error)
	FindOne(ctx context.Context, ref Ref) (*model.MediaItem, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.MediaItem, error)
	Save(ctx context.Context, item *model.MediaItem) error
}

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// tagListMatch matches one entry of a model.CommaList column, which is stored trimmed.
func tagListMatch(column string) string {
	return fmt.Sprintf("? = ANY (string_to_array(COALESCE(%s, ''), ','))", column)
}

func mediaFilters(q MediaQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.PublishedOnly {
			db = db.Where("media_items.published_at IS NOT NULL")
		}
		if q.Kind != "" {
			db = db.Where("media_items.kind = ?", q.Kind)
		}
		if q.Tag != "" {
			db = db.Where(tagListMatch("media_items.tags"), q.Tag)
		}
		if q.Event != "" {
			db = db.Where("media_items.event ILIKE ?", contains(q.Event))
		}
		if q.Search != "" {
			term := contains(q.Search)
			db = db.Where("(media_items.title ILIKE ? OR media_items.description ILIKE ?)", term, term)
		}
		if q.From != nil {
			db = db.Where("media_items.published_at >= ?", *q.From)
		}
		if q.To != nil {
			db = db.Where("media_items.published_at <= ?", *q.To)
		}
		if q.Featured != nil {
			db = db.Where("media_items.is_featured = ?", *q.Featured)
		}
		return db
	}
}

func mediaOrder(sort string) string {
	if sort == MediaSortTitleAsc {
		return "media_items.title ASC"
	}
	return "media_items.published_at DESC NULLS LAST, media_items.created_at DESC"
}

func (r *MediaRepository) List(ctx context.Context, q MediaQuery) ([]model.MediaItem, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.MediaItem{}).Scopes(mediaFilters(q)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count media items: %w", err)
	}

	var items []model.MediaItem
	err := r.db.WithContext(ctx).
		Scopes(mediaFilters(q), paginate(q.Pagination)).
		Order(mediaOrder(q.Sort)).
		Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list media items: %w", err)
	}
	return items, total, nil
}

func (r *MediaRepository) Highlights(ctx context.Context, limit int) ([]model.MediaItem, error) {
	featured := true
	var items []model.MediaItem
	err := r.db.WithContext(ctx).
		Scopes(mediaFilters(MediaQuery{PublishedOnly: true, Featured: &featured})).
		Order(mediaOrder(MediaSortRecent)).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list media highlights: %w", err)
	}
	return items, nil
}

func (r *MediaRepository) FindOne(ctx context.Context, ref Ref) (*model.MediaItem, error) {
	var item model.MediaItem
	if err := r.db.WithContext(ctx).Scopes(ref.scope("media_items")).First(&item).Error; err != nil {
		return nil, translate(err, "find media item")
	}
	return &item, nil
}

// FindByIDs returns the items in the order of ids, skipping unknown ones.
func (r *MediaRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.MediaItem, error) {
	if len(ids) == 0 {
		return []model.MediaItem{}, nil
	}
	var items []model.MediaItem
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find media items: %w", err)
	}

	byID := make(map[uuid.UUID]model.MediaItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	ordered := make([]model.MediaItem, 0, len(items))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			ordered = append(ordered, item)
			delete(byID, id)
		}
	}
	return ordered, nil
}

func (r *MediaRepository) Save(ctx context.Context, item *model.MediaItem) error {
	return translate(saveRow(r.db.WithContext(ctx), item), "save media item")
}
