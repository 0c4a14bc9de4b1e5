// internal/repository/news.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NewsSortNewest = "newest"
	NewsSortOldest = "oldest"
)

type NewsQuery struct {
	Pagination
	Search        string `json:"q" validate:"max=200"`
	Tag           string `json:"tag" validate:"max=80"`
	Category      string `json:"category" validate:"max=80"`
	Featured      *bool
	From          *time.Time
	To            *time.Time
	PublishedOnly bool
	Sort          string
}

type NewsRepositoryIface interface {
	List(ctx context.Context, q NewsQuery) ([]model.NewsItem, int64, error)
	Highlights(ctx context.Context, limit int) ([]model.NewsItem, error)
	FindOne(ctx context.Context, ref Ref) (*model.NewsItem, error)
	ResolveTags(ctx context.Context, names []string) ([]model.NewsTag, error)
	Save(ctx context.Context, item *model.NewsItem, replaceTags bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type NewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func newsFilters(q NewsQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.PublishedOnly {
			db = db.Where("news_items.published_at IS NOT NULL")
		}
		if q.Search != "" {
			term := contains(q.Search)
			db = db.Where("(news_items.title ILIKE ? OR news_items.summary ILIKE ? OR news_items.content ILIKE ?)", term, term, term)
		}
		if q.Category != "" {
			db = db.Where("news_items.category = ?", q.Category)
		}
		if q.Featured != nil {
			db = db.Where("news_items.is_featured = ?", *q.Featured)
		}
		if q.From != nil {
			db = db.Where("news_items.published_at >= ?", *q.From)
		}
		if q.To != nil {
			db = db.Where("news_items.published_at <= ?", *q.To)
		}
		if q.Tag != "" {
			db = db.Where(`EXISTS (
				SELECT 1 FROM news_item_tags nit
				JOIN news_tags nt ON nt.id = nit.news_tag_id
				WHERE nit.news_item_id = news_items.id AND nt.name = ?)`, q.Tag)
		}
		return db
	}
}

func newsOrder(sort string) string {
	if sort == NewsSortOldest {
		return "news_items.published_at ASC NULLS LAST, news_items.created_at ASC"
	}
	return "news_items.published_at DESC NULLS LAST, news_items.created_at DESC"
}

func preloadNewsTags(db *gorm.DB) *gorm.DB {
	return db.Order("news_tags.name ASC")
}

// List returns one page of news items plus the total matching the same filters
func (r *NewsRepository) List(ctx context.Context, q NewsQuery) ([]model.NewsItem, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.NewsItem{}).Scopes(newsFilters(q)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count news items: %w", err)
	}

	var items []model.NewsItem
	err := r.db.WithContext(ctx).
		Scopes(newsFilters(q), paginate(q.Pagination)).
		Preload("Tags", preloadNewsTags).
		Order(newsOrder(q.Sort)).
		Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list news items: %w", err)
	}
	return items, total, nil
}

func (r *NewsRepository) Highlights(ctx context.Context, limit int) ([]model.NewsItem, error) {
	var items []model.NewsItem
	err := r.db.WithContext(ctx).
		Scopes(newsFilters(NewsQuery{PublishedOnly: true})).
		Preload("Tags", preloadNewsTags).
		Order(newsOrder(NewsSortNewest)).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list news highlights: %w", err)
	}
	return items, nil
}

func (r *NewsRepository) FindOne(ctx context.Context, ref Ref) (*model.NewsItem, error) {
	var item model.NewsItem
	err := r.db.WithContext(ctx).
		Scopes(ref.scope("news_items")).
		Preload("Tags", preloadNewsTags).
		First(&item).Error
	if err != nil {
		return nil, translate(err, "find news item")
	}
	return &item, nil
}

// ResolveTags returns a tag row for every name, creating missing ones
func (r *NewsRepository) ResolveTags(ctx context.Context, names []string) ([]model.NewsTag, error) {
	return findOrCreateByName(ctx, r.db, "name", names,
		func(n string) model.NewsTag { return model.NewsTag{Name: n} },
		func(t model.NewsTag) string { return t.Name },
	)
}

// Save inserts or updates the item. Tags are only rewritten when replaceTags is set.
func (r *NewsRepository) Save(ctx context.Context, item *model.NewsItem, replaceTags bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveRow(tx, item); err != nil {
			return err
		}
		if replaceTags {
			if err := tx.Model(item).Association("Tags").Replace(item.Tags); err != nil {
				return fmt.Errorf("failed to replace news tags: %w", err)
			}
		}
		return nil
	})
	return translate(err, "save news item")
}

func (r *NewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.NewsItem{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error, "delete news item")
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
