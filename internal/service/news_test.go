package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/dangerclosesec/thinknest/internal/mocks"
	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/service"
	"github.com/dangerclosesec/thinknest/internal/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newNewsService(t *testing.T) (*service.NewsService, *mocks.MockNewsRepositoryIface) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockNewsRepositoryIface(ctrl)
	return service.NewNewsService(repo, validation.New()), repo
}

func TestNewsList(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects out of range pagination", func(t *testing.T) {
		svc, _ := newNewsService(t)

		_, err := svc.List(ctx, repository.NewsQuery{Pagination: repository.Pagination{Page: 1, Limit: 101}})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = svc.List(ctx, repository.NewsQuery{Pagination: repository.Pagination{Page: 0, Limit: 10}})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("returns meta and items", func(t *testing.T) {
		svc, repo := newNewsService(t)
		kind := model.CoverImage
		url := "https://cdn.example.com/a.png"
		items := []model.NewsItem{
			{ID: uuid.New(), Slug: "launch", Title: "Launch", CoverKind: &kind, CoverURL: &url, Tags: []model.NewsTag{{Name: "ai"}}},
			{ID: uuid.New(), Slug: "recap", Title: "Recap"},
		}

		repo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q repository.NewsQuery) ([]model.NewsItem, int64, error) {
				assert.Equal(t, 2, q.Page)
				assert.Equal(t, 2, q.Limit)
				return items, 7, nil
			})

		resp, err := svc.List(ctx, repository.NewsQuery{Pagination: repository.Pagination{Page: 2, Limit: 2}})
		require.NoError(t, err)

		assert.Equal(t, service.Meta{Page: 2, Limit: 2, Total: 7}, resp.Meta)
		require.Len(t, resp.Data, 2)
		require.NotNil(t, resp.Data[0].Cover)
		assert.Equal(t, url, resp.Data[0].Cover.URL)
		assert.Equal(t, []string{"ai"}, resp.Data[0].Tags)
		assert.Nil(t, resp.Data[1].Cover)
		assert.Equal(t, []string{}, resp.Data[1].Tags)
	})
}

func TestNewsHighlightsClampsLimit(t *testing.T) {
	svc, repo := newNewsService(t)
	ctx := context.Background()

	repo.EXPECT().Highlights(gomock.Any(), 5).Return(nil, nil)
	repo.EXPECT().Highlights(gomock.Any(), 20).Return(nil, nil)
	repo.EXPECT().Highlights(gomock.Any(), 1).Return(nil, nil)

	for _, limit := range []int{0, 500, -3} {
		resp, err := svc.Highlights(ctx, limit)
		require.NoError(t, err)
		assert.Empty(t, resp.Data)
	}
}

func TestNewsGetUnknownID(t *testing.T) {
	svc, repo := newNewsService(t)
	id := uuid.New()

	repo.EXPECT().FindOne(gomock.Any(), repository.Ref{ID: id}).Return(nil, domain.ErrNotFound)

	_, err := svc.Get(context.Background(), id.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewsUpsert(t *testing.T) {
	ctx := context.Background()
	input := service.NewsUpsertInput{
		Slug: "Big Launch",
		NewsFields: service.NewsFields{
			Title:   domain.Some("Big launch"),
			Summary: domain.Some("We launched"),
			Content: domain.Some("Body"),
			Tags:    domain.Some([]string{"A", "a ", "A"}),
		},
	}

	t.Run("second call updates the existing row", func(t *testing.T) {
		svc, repo := newNewsService(t)
		existingID := uuid.New()
		stored := map[string]*model.NewsItem{}

		repo.EXPECT().
			FindOne(gomock.Any(), repository.Ref{Slug: "big-launch"}).
			DoAndReturn(func(_ context.Context, ref repository.Ref) (*model.NewsItem, error) {
				if item, ok := stored[ref.Slug]; ok {
					cp := *item
					return &cp, nil
				}
				return nil, domain.ErrNotFound
			}).Times(2)
		repo.EXPECT().
			ResolveTags(gomock.Any(), []string{"A", "a"}).
			Return([]model.NewsTag{{Name: "A"}, {Name: "a"}}, nil).Times(2)
		repo.EXPECT().
			Save(gomock.Any(), gomock.Any(), true).
			DoAndReturn(func(_ context.Context, item *model.NewsItem, _ bool) error {
				if item.ID == uuid.Nil {
					item.ID = existingID
				}
				stored[item.Slug] = item
				return nil
			}).Times(2)

		first, err := svc.Upsert(ctx, input)
		require.NoError(t, err)
		second, err := svc.Upsert(ctx, input)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, stored, 1)
		assert.Equal(t, []string{"A", "a"}, second.Tags)
	})

	t.Run("create requires content fields", func(t *testing.T) {
		svc, repo := newNewsService(t)
		repo.EXPECT().FindOne(gomock.Any(), repository.Ref{Slug: "draft"}).Return(nil, domain.ErrNotFound)

		_, err := svc.Upsert(ctx, service.NewsUpsertInput{Slug: "draft"})
		var verr *validation.Error
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, []string{"title is required", "summary is required", "content is required"}, verr.Details)
	})

	t.Run("absent tags are left untouched", func(t *testing.T) {
		svc, repo := newNewsService(t)
		existing := &model.NewsItem{ID: uuid.New(), Slug: "big-launch", Title: "Old", Tags: []model.NewsTag{{Name: "keep"}}}

		repo.EXPECT().FindOne(gomock.Any(), repository.Ref{Slug: "big-launch"}).Return(existing, nil)
		repo.EXPECT().Save(gomock.Any(), existing, false).Return(nil)

		detail, err := svc.Upsert(ctx, service.NewsUpsertInput{
			Slug:       "big-launch",
			NewsFields: service.NewsFields{Title: domain.Some("New title")},
		})
		require.NoError(t, err)
		assert.Equal(t, "New title", detail.Title)
		assert.Equal(t, []string{"keep"}, detail.Tags)
	})
}

func TestNewsUpdateMissing(t *testing.T) {
	svc, repo := newNewsService(t)
	id := uuid.New()

	repo.EXPECT().FindOne(gomock.Any(), repository.Ref{ID: id}).Return(nil, domain.ErrNotFound)

	_, err := svc.Update(context.Background(), id, service.NewsUpdateInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewsUpdateSlugConflict(t *testing.T) {
	svc, repo := newNewsService(t)
	id := uuid.New()

	repo.EXPECT().FindOne(gomock.Any(), repository.Ref{ID: id}).Return(&model.NewsItem{ID: id, Slug: "one"}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any(), false).Return(domain.ErrSlugConflict)

	_, err := svc.Update(context.Background(), id, service.NewsUpdateInput{Slug: domain.Some("two")})
	assert.ErrorIs(t, err, domain.ErrSlugConflict)
}

func TestNewsRejectsEmptyText(t *testing.T) {
	ctx := context.Background()
	empty := service.NewsFields{
		Title:   domain.Some(""),
		Summary: domain.Some(""),
		Content: domain.Some(""),
	}

	t.Run("upsert", func(t *testing.T) {
		svc, _ := newNewsService(t)

		_, err := svc.Upsert(ctx, service.NewsUpsertInput{Slug: "abc-news", NewsFields: empty})
		var verr *validation.Error
		require.True(t, errors.As(err, &verr))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.ElementsMatch(t, []string{
			"title must be at least 3 characters",
			"summary must be at least 3 characters",
			"content must be at least 1 characters",
		}, verr.Details)
	})

	t.Run("update", func(t *testing.T) {
		svc, _ := newNewsService(t)

		_, err := svc.Update(ctx, uuid.New(), service.NewsUpdateInput{
			Slug:       domain.Some(""),
			NewsFields: service.NewsFields{Title: domain.Some("")},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("null and absent fields still skip the rules", func(t *testing.T) {
		svc, repo := newNewsService(t)
		existing := &model.NewsItem{ID: uuid.New(), Slug: "abc-news", Title: "Kept", Summary: "Kept summary", Content: "Body"}

		repo.EXPECT().FindOne(gomock.Any(), repository.Ref{Slug: "abc-news"}).Return(existing, nil)
		repo.EXPECT().Save(gomock.Any(), existing, false).Return(nil)

		detail, err := svc.Upsert(ctx, service.NewsUpsertInput{
			Slug:       "abc-news",
			NewsFields: service.NewsFields{Category: domain.Null[string]()},
		})
		require.NoError(t, err)
		assert.Equal(t, "Kept", detail.Title)
	})
}
