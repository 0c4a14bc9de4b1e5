// internal/service/news.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/validation"
	"github.com/google/uuid"
)

const (
	newsHighlightsDefault = 5
	newsHighlightsMax     = 20
)

type NewsCover struct {
	Kind model.CoverKind `json:"kind"`
	URL  string          `json:"url"`
}

type NewsItem struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	PublishedAt *time.Time `json:"publishedAt"`
	Cover       *NewsCover `json:"cover"`
	Category    *string    `json:"category"`
	Tags        []string   `json:"tags"`
	IsFeatured  bool       `json:"isFeatured"`
}

type NewsDetail struct {
	NewsItem
	Content   string           `json:"content"`
	CoverKind *model.CoverKind `json:"coverKind"`
	CoverURL  *string          `json:"coverUrl"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// NewsFields are the writable fields of a news item. Absent fields are left untouched and an
// explicit null clears a nullable one.
type NewsFields struct {
	Title       domain.Optional[string]    `json:"title" validate:"omitnil,min=3,max=180"`
	Summary     domain.Optional[string]    `json:"summary" validate:"omitnil,min=3,max=280"`
	Content     domain.Optional[string]    `json:"content" validate:"omitnil,min=1"`
	PublishedAt domain.Optional[time.Time] `json:"publishedAt"`
	Category    domain.Optional[string]    `json:"category" validate:"omitempty,max=80"`
	CoverKind   domain.Optional[string]    `json:"coverKind" validate:"omitnil,oneof=image video"`
	CoverURL    domain.Optional[string]    `json:"coverUrl" validate:"omitempty,url"`
	IsFeatured  domain.Optional[bool]      `json:"isFeatured"`
	Tags        domain.Optional[[]string]  `json:"tags"`
}

type NewsUpsertInput struct {
	Slug string `json:"slug" validate:"required,min=3,max=160"`
	NewsFields
}

type NewsUpdateInput struct {
	Slug domain.Optional[string] `json:"slug" validate:"omitnil,min=3,max=160"`
	NewsFields
}

type NewsService struct {
	repo     repository.NewsRepositoryIface
	validate *validation.Validator
}

func NewNewsService(repo repository.NewsRepositoryIface, validate *validation.Validator) *NewsService {
	return &NewsService{repo: repo, validate: validate}
}

func (s *NewsService) List(ctx context.Context, q repository.NewsQuery) (*ListResponse[NewsItem], error) {
	if err := s.validate.Struct(q); err != nil {
		return nil, err
	}
	q.Pagination = q.Pagination.Clamped()

	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	data := make([]NewsItem, 0, len(items))
	for i := range items {
		data = append(data, toNewsItem(&items[i]))
	}
	return newList(q.Pagination, total, data), nil
}

// Highlights returns the latest published items. limit is clamped to [1, 20], default 5.
func (s *NewsService) Highlights(ctx context.Context, limit int) (*DataResponse[[]NewsItem], error) {
	items, err := s.repo.Highlights(ctx, clampInt(limit, newsHighlightsDefault, 1, newsHighlightsMax))
	if err != nil {
		return nil, err
	}

	data := make([]NewsItem, 0, len(items))
	for i := range items {
		data = append(data, toNewsItem(&items[i]))
	}
	return &DataResponse[[]NewsItem]{Data: data}, nil
}

func (s *NewsService) Get(ctx context.Context, idOrSlug string) (*NewsDetail, error) {
	item, err := s.repo.FindOne(ctx, repository.ParseRef(idOrSlug))
	if err != nil {
		return nil, err
	}
	return toNewsDetail(item), nil
}

// Upsert creates the item named by slug or updates it in place.
func (s *NewsService) Upsert(ctx context.Context, in NewsUpsertInput) (*NewsDetail, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}
	slug, err := normalizeSlug(in.Slug)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.FindOne(ctx, repository.Ref{Slug: slug})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if err := requireFields(
			field{"title", in.Title.Valid()},
			field{"summary", in.Summary.Valid()},
			field{"content", in.Content.Valid()},
		); err != nil {
			return nil, err
		}
		item = &model.NewsItem{Slug: slug}
	case err != nil:
		return nil, err
	}

	return s.save(ctx, item, in.NewsFields)
}

// Update modifies the item with the given id. A missing id is domain.ErrNotFound.
func (s *NewsService) Update(ctx context.Context, id uuid.UUID, in NewsUpdateInput) (*NewsDetail, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	item, err := s.repo.FindOne(ctx, repository.Ref{ID: id})
	if err != nil {
		return nil, err
	}
	if in.Slug.Valid() {
		slug, err := normalizeSlug(in.Slug.Value)
		if err != nil {
			return nil, err
		}
		item.Slug = slug
	}

	return s.save(ctx, item, in.NewsFields)
}

func (s *NewsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *NewsService) save(ctx context.Context, item *model.NewsItem, f NewsFields) (*NewsDetail, error) {
	f.Title.ApplyValue(&item.Title)
	f.Summary.ApplyValue(&item.Summary)
	f.Content.ApplyValue(&item.Content)
	f.PublishedAt.Apply(&item.PublishedAt)
	f.Category.Apply(&item.Category)
	f.CoverURL.Apply(&item.CoverURL)
	f.IsFeatured.ApplyValue(&item.IsFeatured)
	if f.CoverKind.Set {
		item.CoverKind = nil
		if f.CoverKind.Valid() {
			kind := model.CoverKind(f.CoverKind.Value)
			item.CoverKind = &kind
		}
	}

	replaceTags := f.Tags.Set
	if replaceTags {
		tags, err := s.repo.ResolveTags(ctx, NormalizeTags(f.Tags.Value))
		if err != nil {
			return nil, err
		}
		item.Tags = tags
	}

	if err := s.repo.Save(ctx, item, replaceTags); err != nil {
		return nil, err
	}
	return toNewsDetail(item), nil
}

func toNewsItem(n *model.NewsItem) NewsItem {
	item := NewsItem{
		ID:          n.ID,
		Slug:        n.Slug,
		Title:       n.Title,
		Summary:     n.Summary,
		PublishedAt: n.PublishedAt,
		Category:    n.Category,
		Tags:        make([]string, 0, len(n.Tags)),
		IsFeatured:  n.IsFeatured,
	}
	if n.CoverKind != nil && n.CoverURL != nil {
		item.Cover = &NewsCover{Kind: *n.CoverKind, URL: *n.CoverURL}
	}
	for _, t := range n.Tags {
		item.Tags = append(item.Tags, t.Name)
	}
	return item
}

func toNewsDetail(n *model.NewsItem) *NewsDetail {
	return &NewsDetail{
		NewsItem:  toNewsItem(n),
		Content:   n.Content,
		CoverKind: n.CoverKind,
		CoverURL:  n.CoverURL,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
