// internal/service/featured.go
package service

import (
	"context"
	"errors"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/validation"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	carouselDefault = 10
	carouselMax     = 12
)

type FeaturedPreview struct {
	ImageURL *string `json:"imageUrl"`
	VideoURL *string `json:"videoUrl"`
	Width    *int    `json:"width"`
	Height   *int    `json:"height"`
	Blurhash *string `json:"blurhash"`
}

type FeaturedCard struct {
	ID           uuid.UUID        `json:"id"`
	Slug         string           `json:"slug"`
	Title        string           `json:"title"`
	Summary      *string          `json:"summary"`
	Status       string           `json:"status"`
	Tags         []string         `json:"tags"`
	Year         *int             `json:"year"`
	BusinessUnit *string          `json:"businessUnit"`
	Category     *string          `json:"category"`
	Preview      *FeaturedPreview `json:"preview"`
	TeamMembers  []string         `json:"teamMembers"`
	Link         string           `json:"link"`
}

type FeaturedPerson struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department,omitempty"`
}

type FeaturedTeam struct {
	ID      uuid.UUID        `json:"id"`
	Name    string           `json:"name"`
	Members []FeaturedPerson `json:"members"`
}

type FeaturedDetail struct {
	FeaturedCard
	Description     *string                     `json:"description"`
	Domain          *string                     `json:"domain"`
	Challenge       *string                     `json:"challenge"`
	Team            *FeaturedTeam               `json:"team"`
	Contributors    []FeaturedPerson            `json:"contributors"`
	PopularityScore int                         `json:"popularityScore"`
	Media           []model.MediaAsset          `json:"media,omitempty"`
	Impact          []model.ImpactRecord        `json:"impact,omitempty"`
	Testimonials    []model.FeaturedTestimonial `json:"testimonials,omitempty"`
}

type MediaAssetInput struct {
	Kind     string             `json:"kind" validate:"required,oneof=image video pdf"`
	URL      string             `json:"url" validate:"required,max=2048"`
	Width    *int               `json:"width" validate:"omitempty,min=1"`
	Height   *int               `json:"height" validate:"omitempty,min=1"`
	Format   *string            `json:"format" validate:"omitempty,max=16"`
	Duration *string            `json:"duration" validate:"omitempty,max=16"`
	Blurhash *string            `json:"blurhash" validate:"omitempty,max=64"`
	Meta     *datatypes.JSONMap `json:"meta"`
}

type ImpactInput struct {
	Metric  string   `json:"metric" validate:"required,max=120"`
	Unit    *string  `json:"unit" validate:"omitempty,max=32"`
	Value   *float64 `json:"value"`
	Details *string  `json:"details"`
}

type TestimonialInput struct {
	Author string  `json:"author" validate:"required,max=120"`
	Role   *string `json:"role" validate:"omitempty,max=120"`
	Quote  string  `json:"quote" validate:"required"`
}

type FeaturedUpsertInput struct {
	Slug            string                              `json:"slug" validate:"required,min=3,max=160"`
	IdeaID          domain.Optional[uuid.UUID]          `json:"ideaId"`
	Status          domain.Optional[string]             `json:"status" validate:"omitnil,min=1,max=64"`
	Category        domain.Optional[string]             `json:"category" validate:"omitempty,max=64"`
	BusinessUnit    domain.Optional[string]             `json:"businessUnit" validate:"omitempty,max=64"`
	Year            domain.Optional[int]                `json:"year" validate:"omitnil,min=1900,max=3000"`
	Domain          domain.Optional[string]             `json:"domain" validate:"omitempty,max=64"`
	Challenge       domain.Optional[string]             `json:"challenge" validate:"omitempty,max=64"`
	IsVisible       domain.Optional[bool]               `json:"isVisible"`
	Description     domain.Optional[string]             `json:"description"`
	MediaPreviewID  domain.Optional[uuid.UUID]          `json:"mediaPreviewId"`
	PopularityScore domain.Optional[int]                `json:"popularityScore" validate:"omitempty,min=0"`
	Media           domain.Optional[[]MediaAssetInput]  `json:"media"`
	Impact          domain.Optional[[]ImpactInput]      `json:"impact"`
	Testimonials    domain.Optional[[]TestimonialInput] `json:"testimonials"`
}

type FeaturedService struct {
	repo     repository.FeaturedRepositoryIface
	validate *validation.Validator
	enabled  bool
}

func NewFeaturedService(repo repository.FeaturedRepositoryIface, validate *validation.Validator, enabled bool) *FeaturedService {
	return &FeaturedService{repo: repo, validate: validate, enabled: enabled}
}

func (s *FeaturedService) Config() ModuleConfig {
	return ModuleConfig{Module: "featured_ideas", Enabled: s.enabled}
}

func (s *FeaturedService) List(ctx context.Context, q repository.FeaturedQuery) (*ListResponse[FeaturedCard], error) {
	if !s.enabled {
		return nil, domain.ErrModuleDisabled
	}
	if err := s.validate.Struct(q); err != nil {
		return nil, err
	}
	q.Pagination = q.Pagination.Clamped()
	q.Tags = NormalizeTags(q.Tags)

	rows, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	data := make([]FeaturedCard, 0, len(rows))
	for i := range rows {
		data = append(data, toFeaturedCard(&rows[i]))
	}
	return newList(q.Pagination, total, data), nil
}

// Carousel returns the first page of the most popular visible ideas.
func (s *FeaturedService) Carousel(ctx context.Context, limit int) (*ListResponse[FeaturedCard], error) {
	return s.List(ctx, repository.FeaturedQuery{
		Pagination: repository.Pagination{Page: 1, Limit: clampInt(limit, carouselDefault, 1, carouselMax)},
		Sort:       repository.FeaturedSortPopular,
	})
}

func (s *FeaturedService) Get(ctx context.Context, idOrSlug string, inc repository.FeaturedInclude) (*FeaturedDetail, error) {
	if !s.enabled {
		return nil, domain.ErrModuleDisabled
	}
	f, err := s.repo.FindOne(ctx, repository.ParseRef(idOrSlug), inc, true)
	if err != nil {
		return nil, err
	}
	return toFeaturedDetail(f), nil
}

func (s *FeaturedService) Upsert(ctx context.Context, in FeaturedUpsertInput) (*FeaturedDetail, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}
	if err := validateEach(s.validate, in.Media.Value); err != nil {
		return nil, err
	}
	if err := validateEach(s.validate, in.Impact.Value); err != nil {
		return nil, err
	}
	if err := validateEach(s.validate, in.Testimonials.Value); err != nil {
		return nil, err
	}
	slug, err := normalizeSlug(in.Slug)
	if err != nil {
		return nil, err
	}

	f, err := s.repo.FindBySlug(ctx, slug)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if !in.IdeaID.Valid() {
			return nil, domain.ErrIdeaRequired
		}
		if err := requireFields(field{"status", in.Status.Valid()}); err != nil {
			return nil, err
		}
		f = &model.FeaturedIdea{Slug: slug, IsVisible: true}
	case err != nil:
		return nil, err
	}

	if in.IdeaID.Set {
		if !in.IdeaID.Valid() {
			return nil, domain.ErrIdeaRequired
		}
		ok, err := s.repo.IdeaExists(ctx, in.IdeaID.Value)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrIdeaRequired
		}
		f.IdeaID = in.IdeaID.Value
	}
	if in.MediaPreviewID.Valid() {
		ok, err := s.repo.MediaAssetExists(ctx, in.MediaPreviewID.Value)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrMediaNotFound
		}
	}
	in.MediaPreviewID.Apply(&f.MediaPreviewID)

	in.Status.ApplyValue(&f.Status)
	in.Category.Apply(&f.Category)
	in.BusinessUnit.Apply(&f.BusinessUnit)
	in.Year.Apply(&f.Year)
	in.Domain.Apply(&f.Domain)
	in.Challenge.Apply(&f.Challenge)
	in.IsVisible.ApplyValue(&f.IsVisible)
	in.Description.Apply(&f.Description)
	in.PopularityScore.ApplyValue(&f.PopularityScore)

	replace := repository.FeaturedInclude{Media: in.Media.Set, Impact: in.Impact.Set, Testimonials: in.Testimonials.Set}
	if replace.Media {
		f.Media = make([]model.MediaAsset, 0, len(in.Media.Value))
		for _, m := range in.Media.Value {
			f.Media = append(f.Media, model.MediaAsset{
				Kind:     model.AssetKind(m.Kind),
				URL:      m.URL,
				Width:    m.Width,
				Height:   m.Height,
				Format:   m.Format,
				Duration: m.Duration,
				Blurhash: m.Blurhash,
				Meta:     m.Meta,
			})
		}
	}
	if replace.Impact {
		f.Impact = make([]model.ImpactRecord, 0, len(in.Impact.Value))
		for _, m := range in.Impact.Value {
			f.Impact = append(f.Impact, model.ImpactRecord{Metric: m.Metric, Unit: m.Unit, Value: m.Value, Details: m.Details})
		}
	}
	if replace.Testimonials {
		f.Testimonials = make([]model.FeaturedTestimonial, 0, len(in.Testimonials.Value))
		for _, t := range in.Testimonials.Value {
			f.Testimonials = append(f.Testimonials, model.FeaturedTestimonial{Author: t.Author, Role: t.Role, Quote: t.Quote})
		}
	}

	if err := s.repo.Save(ctx, f, replace); err != nil {
		return nil, err
	}
	saved, err := s.repo.FindOne(ctx, repository.Ref{ID: f.ID}, repository.FeaturedInclude{Media: true, Impact: true, Testimonials: true}, false)
	if err != nil {
		return nil, err
	}
	return toFeaturedDetail(saved), nil
}

func toFeaturedCard(f *model.FeaturedIdea) FeaturedCard {
	card := FeaturedCard{
		ID:           f.ID,
		Slug:         f.Slug,
		Status:       f.Status,
		Tags:         []string{},
		Year:         f.Year,
		BusinessUnit: f.BusinessUnit,
		Category:     f.Category,
		TeamMembers:  []string{},
		Link:         "/featured-ideas/" + f.Slug,
	}
	if f.Idea != nil {
		card.Title = f.Idea.Title
		card.Summary = f.Idea.Summary
		for _, t := range f.Idea.Tags {
			card.Tags = append(card.Tags, t.Slug)
		}
		if f.Idea.Team != nil {
			for _, m := range f.Idea.Team.Members {
				card.TeamMembers = append(card.TeamMembers, m.FullName)
			}
		}
	}
	if p := f.MediaPreview; p != nil {
		card.Preview = &FeaturedPreview{Width: p.Width, Height: p.Height, Blurhash: p.Blurhash}
		url := p.URL
		if p.Kind == model.AssetVideo {
			card.Preview.VideoURL = &url
		} else {
			card.Preview.ImageURL = &url
		}
	}
	return card
}

func toFeaturedDetail(f *model.FeaturedIdea) *FeaturedDetail {
	detail := &FeaturedDetail{
		FeaturedCard:    toFeaturedCard(f),
		Description:     f.Description,
		Domain:          f.Domain,
		Challenge:       f.Challenge,
		Contributors:    []FeaturedPerson{},
		PopularityScore: f.PopularityScore,
		Media:           f.Media,
		Impact:          f.Impact,
		Testimonials:    f.Testimonials,
	}
	if f.Idea != nil {
		for _, c := range f.Idea.Contributors {
			detail.Contributors = append(detail.Contributors, FeaturedPerson{ID: c.ID, Name: c.FullName, Department: c.Department})
		}
		if t := f.Idea.Team; t != nil {
			detail.Team = &FeaturedTeam{ID: t.ID, Name: t.Name, Members: make([]FeaturedPerson, 0, len(t.Members))}
			for _, m := range t.Members {
				detail.Team.Members = append(detail.Team.Members, FeaturedPerson{ID: m.ID, Name: m.FullName, Department: m.Department})
			}
		}
	}
	return detail
}
