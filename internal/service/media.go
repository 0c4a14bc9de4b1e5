// internal/service/media.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/storage"
	"github.com/dangerclosesec/thinknest/internal/validation"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	mediaHighlightsLimit = 12
	storyDefaultLimit    = 10
)

// FileStore persists uploaded bytes and reports where they are served from.
type FileStore interface {
	Save(ctx context.Context, r io.Reader, originalName string) (*storage.StoredFile, error)
}

type MediaView struct {
	ID          uuid.UUID         `json:"id"`
	Kind        model.MediaKind   `json:"kind"`
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	URL         *string           `json:"url"`
	Provider    *string           `json:"provider"`
	ProviderID  *string           `json:"providerId"`
	Width       *int              `json:"width"`
	Height      *int              `json:"height"`
	Format      *string           `json:"format"`
	Duration    *string           `json:"duration"`
	Event       *string           `json:"event"`
	Tags        []string          `json:"tags"`
	IsFeatured  bool              `json:"isFeatured"`
	PublishedAt *time.Time        `json:"publishedAt"`
	Blurhash    *string           `json:"blurhash"`
	Meta        datatypes.JSONMap `json:"meta,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type StoryCard struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     *string    `json:"summary"`
	Tags        []string   `json:"tags"`
	IsFeatured  bool       `json:"isFeatured"`
	PublishedAt *time.Time `json:"publishedAt"`
	Thumbnail   *MediaView `json:"thumbnail"`
}

type StoryDetail struct {
	StoryCard
	Body      *string     `json:"body"`
	Gallery   []MediaView `json:"gallery"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// TagInput accepts tags either as a JSON array or as one comma separated string.
type TagInput []string

func (t *TagInput) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.New("tags must be a list or a comma separated string")
	}
	*t = TagInput(model.ParseCommaList(raw))
	return nil
}

func (t TagInput) commaList() model.CommaList {
	return model.ParseCommaList(strings.Join(NormalizeTags(t), ","))
}

type MediaFields struct {
	Kind        domain.Optional[string]         `json:"kind" validate:"omitnil,oneof=image video youtube"`
	Title       domain.Optional[string]         `json:"title" validate:"omitnil,min=1,max=200"`
	Description domain.Optional[string]         `json:"description"`
	URL         domain.Optional[string]         `json:"url" validate:"omitempty,max=2048"`
	Provider    domain.Optional[string]         `json:"provider" validate:"omitempty,max=40"`
	ProviderID  domain.Optional[string]         `json:"providerId" validate:"omitempty,max=120"`
	Width       domain.Optional[int]            `json:"width" validate:"omitnil,min=1"`
	Height      domain.Optional[int]            `json:"height" validate:"omitnil,min=1"`
	Format      domain.Optional[string]         `json:"format" validate:"omitempty,max=100"`
	Duration    domain.Optional[string]         `json:"duration" validate:"omitempty,max=16"`
	Event       domain.Optional[string]         `json:"event" validate:"omitempty,max=160"`
	Tags        domain.Optional[TagInput]       `json:"tags"`
	IsFeatured  domain.Optional[bool]           `json:"isFeatured"`
	PublishedAt domain.Optional[time.Time]      `json:"publishedAt"`
	Blurhash    domain.Optional[string]         `json:"blurhash" validate:"omitempty,max=64"`
	Meta        domain.Optional[map[string]any] `json:"meta"`
}

type MediaUpsertInput struct {
	Slug string `json:"slug" validate:"required,min=1,max=160"`
	MediaFields
}

// MediaUploadInput carries the optional form fields sent next to an uploaded file.
type MediaUploadInput struct {
	Slug string
	MediaFields
}

type StoryUpsertInput struct {
	Slug        string                       `json:"slug" validate:"required,min=1,max=160"`
	Title       domain.Optional[string]      `json:"title" validate:"omitnil,min=1,max=200"`
	Summary     domain.Optional[string]      `json:"summary"`
	Body        domain.Optional[string]      `json:"body"`
	Tags        domain.Optional[TagInput]    `json:"tags"`
	IsFeatured  domain.Optional[bool]        `json:"isFeatured"`
	PublishedAt domain.Optional[time.Time]   `json:"publishedAt"`
	ThumbnailID domain.Optional[uuid.UUID]   `json:"thumbnailId"`
	GalleryIDs  domain.Optional[[]uuid.UUID] `json:"galleryIds"`
}

type MediaService struct {
	repo     repository.MediaRepositoryIface
	files    FileStore
	validate *validation.Validator
	now      Clock
}

func NewMediaService(repo repository.MediaRepositoryIface, files FileStore, validate *validation.Validator) *MediaService {
	return &MediaService{repo: repo, files: files, validate: validate, now: systemClock}
}

// WithClock replaces the time source used for upload timestamps.
func (s *MediaService) WithClock(now Clock) *MediaService {
	s.now = now
	return s
}

func (s *MediaService) List(ctx context.Context, q repository.MediaQuery) (*ListResponse[MediaView], error) {
	if err := s.validate.Struct(q); err != nil {
		return nil, err
	}
	q.Pagination = q.Pagination.Clamped()

	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return newList(q.Pagination, total, toMediaViews(items)), nil
}

func (s *MediaService) Highlights(ctx context.Context) (*DataResponse[[]MediaView], error) {
	items, err := s.repo.Highlights(ctx, mediaHighlightsLimit)
	if err != nil {
		return nil, err
	}
	return &DataResponse[[]MediaView]{Data: toMediaViews(items)}, nil
}

func (s *MediaService) Get(ctx context.Context, idOrSlug string) (*MediaView, error) {
	item, err := s.repo.FindOne(ctx, repository.ParseRef(idOrSlug))
	if err != nil {
		return nil, err
	}
	view := toMediaView(item)
	return &view, nil
}

func (s *MediaService) Upsert(ctx context.Context, in MediaUpsertInput) (*MediaView, error) {
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
			field{"kind", in.Kind.Valid()},
			field{"title", in.Title.Valid()},
		); err != nil {
			return nil, err
		}
		item = &model.MediaItem{Slug: slug}
	case err != nil:
		return nil, err
	}

	applyMediaFields(item, in.MediaFields)
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	view := toMediaView(item)
	return &view, nil
}

// Upload stores r and creates a published media item pointing at it. The kind defaults to the
// sniffed content family, the slug to the stored file name and the title to originalName.
func (s *MediaService) Upload(ctx context.Context, r io.Reader, originalName string, in MediaUploadInput) (*MediaView, error) {
	if r == nil {
		return nil, domain.ErrMissingFile
	}
	if err := s.validate.Struct(in.MediaFields); err != nil {
		return nil, err
	}

	file, err := s.files.Save(ctx, r, originalName)
	if err != nil {
		return nil, err
	}

	slug := in.Slug
	if slug == "" {
		slug = strings.TrimSuffix(file.Name, filepath.Ext(file.Name))
	}
	if slug, err = normalizeSlug(slug); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	url := file.URL
	format := file.MIME
	item := &model.MediaItem{
		Kind:        kindForMIME(file.MIME),
		Slug:        slug,
		Title:       originalName,
		URL:         &url,
		Format:      &format,
		PublishedAt: &now,
	}
	if item.Title == "" {
		item.Title = file.Name
	}
	applyMediaFields(item, in.MediaFields)

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	view := toMediaView(item)
	return &view, nil
}

func kindForMIME(mime string) model.MediaKind {
	if strings.HasPrefix(mime, "video/") {
		return model.MediaVideo
	}
	return model.MediaImage
}

func applyMediaFields(item *model.MediaItem, f MediaFields) {
	if f.Kind.Valid() {
		item.Kind = model.MediaKind(f.Kind.Value)
	}
	f.Title.ApplyValue(&item.Title)
	f.Description.Apply(&item.Description)
	f.URL.Apply(&item.URL)
	f.Provider.Apply(&item.Provider)
	f.ProviderID.Apply(&item.ProviderID)
	f.Width.Apply(&item.Width)
	f.Height.Apply(&item.Height)
	f.Format.Apply(&item.Format)
	f.Duration.Apply(&item.Duration)
	f.Event.Apply(&item.Event)
	f.IsFeatured.ApplyValue(&item.IsFeatured)
	f.PublishedAt.Apply(&item.PublishedAt)
	f.Blurhash.Apply(&item.Blurhash)
	if f.Tags.Set {
		item.Tags = f.Tags.Value.commaList()
	}
	if f.Meta.Set {
		item.Meta = nil
		if f.Meta.Valid() {
			meta := datatypes.JSONMap(f.Meta.Value)
			item.Meta = &meta
		}
	}
}

type StoryService struct {
	repo     repository.StoryRepositoryIface
	media    repository.MediaRepositoryIface
	validate *validation.Validator
}

func NewStoryService(repo repository.StoryRepositoryIface, media repository.MediaRepositoryIface, validate *validation.Validator) *StoryService {
	return &StoryService{repo: repo, media: media, validate: validate}
}

// List returns stories, ten per page unless a limit is given.
func (s *StoryService) List(ctx context.Context, q repository.StoryQuery) (*ListResponse[StoryCard], error) {
	if q.Limit == 0 {
		q.Limit = storyDefaultLimit
	}
	if err := s.validate.Struct(q); err != nil {
		return nil, err
	}
	q.Pagination = q.Pagination.Clamped()

	stories, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	data := make([]StoryCard, 0, len(stories))
	for i := range stories {
		data = append(data, toStoryCard(&stories[i]))
	}
	return newList(q.Pagination, total, data), nil
}

func (s *StoryService) Get(ctx context.Context, idOrSlug string) (*StoryDetail, error) {
	story, err := s.repo.FindOne(ctx, repository.ParseRef(idOrSlug))
	if err != nil {
		return nil, err
	}
	return toStoryDetail(story), nil
}

func (s *StoryService) Upsert(ctx context.Context, in StoryUpsertInput) (*StoryDetail, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}
	slug, err := normalizeSlug(in.Slug)
	if err != nil {
		return nil, err
	}

	story, err := s.repo.FindOne(ctx, repository.Ref{Slug: slug})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if err := requireFields(field{"title", in.Title.Valid()}); err != nil {
			return nil, err
		}
		story = &model.Story{Slug: slug}
	case err != nil:
		return nil, err
	}

	in.Title.ApplyValue(&story.Title)
	in.Summary.Apply(&story.Summary)
	in.Body.Apply(&story.Body)
	in.IsFeatured.ApplyValue(&story.IsFeatured)
	in.PublishedAt.Apply(&story.PublishedAt)
	if in.Tags.Set {
		story.Tags = in.Tags.Value.commaList()
	}

	if in.ThumbnailID.Set {
		story.ThumbnailID = nil
		story.Thumbnail = nil
		if in.ThumbnailID.Valid() {
			found, err := s.media.FindByIDs(ctx, []uuid.UUID{in.ThumbnailID.Value})
			if err != nil {
				return nil, err
			}
			if len(found) == 0 {
				return nil, domain.ErrMediaNotFound
			}
			story.ThumbnailID = &found[0].ID
			story.Thumbnail = &found[0]
		}
	}

	replaceGallery := in.GalleryIDs.Set
	if replaceGallery {
		ids := uniqueIDs(in.GalleryIDs.Value)
		gallery, err := s.media.FindByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		if len(gallery) != len(ids) {
			return nil, domain.ErrMediaNotFound
		}
		story.Gallery = gallery
	}

	if err := s.repo.Save(ctx, story, replaceGallery); err != nil {
		return nil, err
	}
	return toStoryDetail(story), nil
}

func toMediaView(m *model.MediaItem) MediaView {
	view := MediaView{
		ID:          m.ID,
		Kind:        m.Kind,
		Slug:        m.Slug,
		Title:       m.Title,
		Description: m.Description,
		URL:         m.URL,
		Provider:    m.Provider,
		ProviderID:  m.ProviderID,
		Width:       m.Width,
		Height:      m.Height,
		Format:      m.Format,
		Duration:    m.Duration,
		Event:       m.Event,
		Tags:        []string(m.Tags),
		IsFeatured:  m.IsFeatured,
		PublishedAt: m.PublishedAt,
		Blurhash:    m.Blurhash,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if view.Tags == nil {
		view.Tags = []string{}
	}
	if m.Meta != nil {
		view.Meta = *m.Meta
	}
	return view
}

func toMediaViews(items []model.MediaItem) []MediaView {
	out := make([]MediaView, 0, len(items))
	for i := range items {
		out = append(out, toMediaView(&items[i]))
	}
	return out
}

func toStoryCard(st *model.Story) StoryCard {
	card := StoryCard{
		ID:          st.ID,
		Slug:        st.Slug,
		Title:       st.Title,
		Summary:     st.Summary,
		Tags:        []string(st.Tags),
		IsFeatured:  st.IsFeatured,
		PublishedAt: st.PublishedAt,
	}
	if card.Tags == nil {
		card.Tags = []string{}
	}
	if st.Thumbnail != nil {
		thumb := toMediaView(st.Thumbnail)
		card.Thumbnail = &thumb
	}
	return card
}

func toStoryDetail(st *model.Story) *StoryDetail {
	return &StoryDetail{
		StoryCard: toStoryCard(st),
		Body:      st.Body,
		Gallery:   toMediaViews(st.Gallery),
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
	}
}
