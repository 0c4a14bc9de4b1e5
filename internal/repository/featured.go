// internal/repository/featured.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	FeaturedSortPopular  = "popular"
	FeaturedSortRecent   = "recent"
	FeaturedSortYearDesc = "year_desc"
	FeaturedSortTitleAsc = "title_asc"
)

type FeaturedQuery struct {
	Pagination
	Status       string   `json:"status" validate:"max=64"`
	Category     string   `json:"category" validate:"max=64"`
	Year         *int     `json:"year" validate:"omitempty,min=1900,max=3000"`
	BusinessUnit string   `json:"businessUnit" validate:"max=64"`
	Domain       string   `json:"domain" validate:"max=64"`
	Challenge    string   `json:"challenge" validate:"max=64"`
	Tags         []string `json:"tags" validate:"dive,max=100"`
	Search       string   `json:"search" validate:"max=200"`
	Sort         string
}

type FeaturedInclude struct {
	Media        bool
	Impact       bool
	Testimonials bool
}

type FeaturedRepositoryIface interface {
	List(ctx context.Context, q FeaturedQuery) ([]model.FeaturedIdea, int64, error)
	// FindOne skips hidden rows when visibleOnly is set.
	FindOne(ctx context.Context, ref Ref, inc FeaturedInclude, visibleOnly bool) (*model.FeaturedIdea, error)
	FindBySlug(ctx context.Context, slug string) (*model.FeaturedIdea, error)
	IdeaExists(ctx context.Context, id uuid.UUID) (bool, error)
	MediaAssetExists(ctx context.Context, id uuid.UUID) (bool, error)
	Save(ctx context.Context, f *model.FeaturedIdea, inc FeaturedInclude) error
}

type FeaturedRepository struct {
	db *gorm.DB
}

func NewFeaturedRepository(db *gorm.DB) *FeaturedRepository {
	return &FeaturedRepository{db: db}
}

func featuredFilters(q FeaturedQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Joins("JOIN ideas ON ideas.id = featured_ideas.idea_id").
			Where("featured_ideas.is_visible = ?", true)
		if q.Status != "" {
			db = db.Where("featured_ideas.status = ?", q.Status)
		}
		if q.Category != "" {
			db = db.Where("featured_ideas.category = ?", q.Category)
		}
		if q.Year != nil {
			db = db.Where("featured_ideas.year = ?", *q.Year)
		}
		if q.BusinessUnit != "" {
			db = db.Where("featured_ideas.business_unit = ?", q.BusinessUnit)
		}
		if q.Domain != "" {
			db = db.Where("featured_ideas.domain = ?", q.Domain)
		}
		if q.Challenge != "" {
			db = db.Where("featured_ideas.challenge = ?", q.Challenge)
		}
		if len(q.Tags) > 0 {
			db = db.Where(`EXISTS (
				SELECT 1 FROM idea_tags it
				JOIN tags ON tags.id = it.tag_id
				WHERE it.idea_id = featured_ideas.idea_id AND tags.slug IN ?)`, q.Tags)
		}
		if q.Search != "" {
			term := contains(q.Search)
			db = db.Where("(ideas.title ILIKE ? OR ideas.summary ILIKE ?)", term, term)
		}
		return db
	}
}

func featuredOrder(sort string) string {
	switch sort {
	case FeaturedSortRecent:
		return "featured_ideas.created_at DESC"
	case FeaturedSortYearDesc:
		return "featured_ideas.year DESC NULLS LAST, featured_ideas.created_at DESC"
	case FeaturedSortTitleAsc:
		return "ideas.title ASC"
	default:
		return "featured_ideas.popularity_score DESC, featured_ideas.created_at DESC"
	}
}

// cardPreloads loads what a listing card renders.
func cardPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Idea").
		Preload("Idea.Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.slug ASC") }).
		Preload("Idea.Team").
		Preload("Idea.Team.Members", func(db *gorm.DB) *gorm.DB { return db.Order("innovators.full_name ASC") }).
		Preload("MediaPreview")
}

func (r *FeaturedRepository) List(ctx context.Context, q FeaturedQuery) ([]model.FeaturedIdea, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.FeaturedIdea{}).Scopes(featuredFilters(q)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count featured ideas: %w", err)
	}

	var rows []model.FeaturedIdea
	err := r.db.WithContext(ctx).
		Select("featured_ideas.*").
		Scopes(featuredFilters(q), paginate(q.Pagination), cardPreloads).
		Order(featuredOrder(q.Sort)).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list featured ideas: %w", err)
	}
	return rows, total, nil
}

func (r *FeaturedRepository) FindOne(ctx context.Context, ref Ref, inc FeaturedInclude, visibleOnly bool) (*model.FeaturedIdea, error) {
	query := r.db.WithContext(ctx).
		Scopes(ref.scope("featured_ideas"), cardPreloads).
		Preload("Idea.Contributors", func(db *gorm.DB) *gorm.DB { return db.Order("innovators.full_name ASC") })
	if visibleOnly {
		query = query.Where("featured_ideas.is_visible = ?", true)
	}
	if inc.Media {
		query = query.Preload("Media")
	}
	if inc.Impact {
		query = query.Preload("Impact")
	}
	if inc.Testimonials {
		query = query.Preload("Testimonials")
	}

	var f model.FeaturedIdea
	if err := query.First(&f).Error; err != nil {
		return nil, translate(err, "find featured idea")
	}
	return &f, nil
}

func (r *FeaturedRepository) FindBySlug(ctx context.Context, slug string) (*model.FeaturedIdea, error) {
	var f model.FeaturedIdea
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&f).Error; err != nil {
		return nil, translate(err, "find featured idea")
	}
	return &f, nil
}

func (r *FeaturedRepository) IdeaExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, r.db, &model.Idea{}, id)
}

func (r *FeaturedRepository) MediaAssetExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, r.db, &model.MediaAsset{}, id)
}

// Save writes the featured idea. The child collections flagged in replace are rewritten.
func (r *FeaturedRepository) Save(ctx context.Context, f *model.FeaturedIdea, replace FeaturedInclude) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveRow(tx, f); err != nil {
			return err
		}
		if replace.Media {
			for i := range f.Media {
				f.Media[i].FeaturedIdeaID = &f.ID
			}
			if err := replaceChildren(tx, "featured_idea_id", f.ID, f.Media); err != nil {
				return fmt.Errorf("failed to replace media: %w", err)
			}
		}
		if replace.Impact {
			for i := range f.Impact {
				f.Impact[i].FeaturedIdeaID = f.ID
			}
			if err := replaceChildren(tx, "featured_idea_id", f.ID, f.Impact); err != nil {
				return fmt.Errorf("failed to replace impact: %w", err)
			}
		}
		if replace.Testimonials {
			for i := range f.Testimonials {
				f.Testimonials[i].FeaturedIdeaID = f.ID
			}
			if err := replaceChildren(tx, "featured_idea_id", f.ID, f.Testimonials); err != nil {
				return fmt.Errorf("failed to replace testimonials: %w", err)
			}
		}
		return nil
	})
	return translate(err, "save featured idea")
}
