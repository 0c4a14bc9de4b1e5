// internal/repository/story.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/thinknest/internal/model"
	"gorm.io/gorm"
)

type StoryQuery struct {
	Pagination
	Search        string `json:"q" validate:"max=200"`
	Tag           string `json:"tag" validate:"max=80"`
	Featured      *bool
	PublishedOnly bool
}

type StoryRepositoryIface interface {
	List(ctx context.Context, q StoryQuery) ([]model.Story, int64, error)
	FindOne(ctx context.Context, ref Ref) (*model.Story, error)
	Save(ctx context.Context, story *model.Story, replaceGallery bool) error
}

type StoryRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

func storyFilters(q StoryQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.PublishedOnly {
			db = db.Where("stories.published_at IS NOT NULL")
		}
		if q.Search != "" {
			term := contains(q.Search)
			db = db.Where("(stories.title ILIKE ? OR stories.summary ILIKE ? OR stories.body ILIKE ?)", term, term, term)
		}
		if q.Tag != "" {
			db = db.Where(tagListMatch("stories.tags"), q.Tag)
		}
		if q.Featured != nil {
			db = db.Where("stories.is_featured = ?", *q.Featured)
		}
		return db
	}
}

func (r *StoryRepository) List(ctx context.Context, q StoryQuery) ([]model.Story, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Story{}).Scopes(storyFilters(q)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count stories: %w", err)
	}

	var stories []model.Story
	err := r.db.WithContext(ctx).
		Scopes(storyFilters(q), paginate(q.Pagination)).
		Preload("Thumbnail").
		Order("stories.published_at DESC NULLS LAST, stories.created_at DESC").
		Find(&stories).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list stories: %w", err)
	}
	return stories, total, nil
}

func (r *StoryRepository) FindOne(ctx context.Context, ref Ref) (*model.Story, error) {
	var story model.Story
	err := r.db.WithContext(ctx).
		Scopes(ref.scope("stories")).
		Preload("Thumbnail").
		Preload("Gallery", func(db *gorm.DB) *gorm.DB {
			return db.Order("media_items.published_at DESC NULLS LAST")
		}).
		First(&story).Error
	if err != nil {
		return nil, translate(err, "find story")
	}
	return &story, nil
}

func (r *StoryRepository) Save(ctx context.Context, story *model.Story, replaceGallery bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveRow(tx, story); err != nil {
			return err
		}
		if replaceGallery {
			if err := tx.Model(story).Association("Gallery").Replace(story.Gallery); err != nil {
				return fmt.Errorf("failed to replace gallery: %w", err)
			}
		}
		return nil
	})
	return translate(err, "save story")
}
