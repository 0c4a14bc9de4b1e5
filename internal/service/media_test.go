package service_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/dangerclosesec/thinknest/internal/mocks"
	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/service"
	"github.com/dangerclosesec/thinknest/internal/storage"
	"github.com/dangerclosesec/thinknest/internal/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTagInputUnmarshal(t *testing.T) {
	var in service.MediaUpsertInput
	require.NoError(t, json.Unmarshal([]byte(`{"slug":"x","tags":"launch, 2024 ,launch"}`), &in))
	assert.True(t, in.Tags.Valid())
	assert.Equal(t, service.TagInput{"launch", "2024"}, in.Tags.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"slug":"x","tags":["a","b"]}`), &in))
	assert.Equal(t, service.TagInput{"a", "b"}, in.Tags.Value)

	assert.Error(t, json.Unmarshal([]byte(`{"slug":"x","tags":42}`), &in))
}

func TestMediaHighlights(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMediaRepositoryIface(ctrl)
	svc := service.NewMediaService(repo, mocks.NewMockFileStore(ctrl), validation.New())

	repo.EXPECT().Highlights(gomock.Any(), 12).Return([]model.MediaItem{{Slug: "keynote", Tags: model.CommaList{"2024"}}}, nil)

	resp, err := svc.Highlights(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, []string{"2024"}, resp.Data[0].Tags)
}

func TestMediaUpload(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("defaults from stored file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockMediaRepositoryIface(ctrl)
		files := mocks.NewMockFileStore(ctrl)
		svc := service.NewMediaService(repo, files, validation.New()).WithClock(func() time.Time { return now })

		files.EXPECT().
			Save(gomock.Any(), gomock.Any(), "Team Photo.jpg").
			Return(&storage.StoredFile{Name: "1709287200000-abc123.jpg", URL: "/uploads/1709287200000-abc123.jpg", MIME: "image/jpeg", Size: 10}, nil)
		repo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *model.MediaItem) error {
				assert.Equal(t, model.MediaImage, item.Kind)
				assert.Equal(t, "1709287200000-abc123", item.Slug)
				assert.Equal(t, "Team Photo.jpg", item.Title)
				require.NotNil(t, item.PublishedAt)
				assert.True(t, item.PublishedAt.Equal(now))
				return nil
			})

		view, err := svc.Upload(ctx, strings.NewReader("data"), "Team Photo.jpg", service.MediaUploadInput{})
		require.NoError(t, err)
		require.NotNil(t, view.URL)
		assert.Equal(t, "/uploads/1709287200000-abc123.jpg", *view.URL)
		require.NotNil(t, view.Format)
		assert.Equal(t, "image/jpeg", *view.Format)
	})

	t.Run("video mime and explicit fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockMediaRepositoryIface(ctrl)
		files := mocks.NewMockFileStore(ctrl)
		svc := service.NewMediaService(repo, files, validation.New())

		files.EXPECT().
			Save(gomock.Any(), gomock.Any(), "clip.mp4").
			Return(&storage.StoredFile{Name: "1-a.mp4", URL: "/uploads/1-a.mp4", MIME: "video/mp4"}, nil)
		repo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *model.MediaItem) error {
				assert.Equal(t, model.MediaVideo, item.Kind)
				assert.Equal(t, "demo-day", item.Slug)
				assert.Equal(t, "Demo day", item.Title)
				assert.Equal(t, model.CommaList{"demo", "2024"}, item.Tags)
				return nil
			})

		_, err := svc.Upload(ctx, strings.NewReader("data"), "clip.mp4", service.MediaUploadInput{
			Slug: "Demo Day",
			MediaFields: service.MediaFields{
				Title: domain.Some("Demo day"),
				Tags:  domain.Some(service.TagInput{"demo", " 2024", "demo"}),
			},
		})
		require.NoError(t, err)
	})

	t.Run("file too large", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		files := mocks.NewMockFileStore(ctrl)
		svc := service.NewMediaService(mocks.NewMockMediaRepositoryIface(ctrl), files, validation.New())

		files.EXPECT().Save(gomock.Any(), gomock.Any(), "big.png").Return(nil, domain.ErrFileTooLarge)

		_, err := svc.Upload(ctx, strings.NewReader("data"), "big.png", service.MediaUploadInput{})
		assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	})
}

func TestMediaUpsertRequiresKindOnCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMediaRepositoryIface(ctrl)
	svc := service.NewMediaService(repo, mocks.NewMockFileStore(ctrl), validation.New())

	repo.EXPECT().FindOne(gomock.Any(), repository.Ref{Slug: "keynote"}).Return(nil, domain.ErrNotFound)

	_, err := svc.Upsert(context.Background(), service.MediaUpsertInput{
		Slug:        "keynote",
		MediaFields: service.MediaFields{Title: domain.Some("Keynote")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStoryList(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStoryRepositoryIface(ctrl)
	svc := service.NewStoryService(repo, mocks.NewMockMediaRepositoryIface(ctrl), validation.New())

	repo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q repository.StoryQuery) ([]model.Story, int64, error) {
			assert.Equal(t, 10, q.Limit)
			assert.True(t, q.PublishedOnly)
			return nil, 0, nil
		})

	resp, err := svc.List(context.Background(), repository.StoryQuery{
		Pagination:    repository.Pagination{Page: 1},
		PublishedOnly: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Meta.Limit)
	assert.Equal(t, []service.StoryCard{}, resp.Data)
}

func TestStoryUpsertGallery(t *testing.T) {
	ctx := context.Background()
	first, second := uuid.New(), uuid.New()

	t.Run("replaces gallery in given order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockStoryRepositoryIface(ctrl)
		media := mocks.NewMockMediaRepositoryIface(ctrl)
		svc := service.NewStoryService(repo, media, validation.New())

		repo.EXPECT().FindOne(gomock.Any(), repository.Ref{Slug: "hack-week"}).Return(nil, domain.ErrNotFound)
		media.EXPECT().
			FindByIDs(gomock.Any(), []uuid.UUID{second, first}).
			Return([]model.MediaItem{{ID: second, Slug: "b"}, {ID: first, Slug: "a"}}, nil)
		repo.EXPECT().
			Save(gomock.Any(), gomock.Any(), true).
			DoAndReturn(func(_ context.Context, story *model.Story, _ bool) error {
				require.Len(t, story.Gallery, 2)
				assert.Equal(t, second, story.Gallery[0].ID)
				return nil
			})

		detail, err := svc.Upsert(ctx, service.StoryUpsertInput{
			Slug:       "hack-week",
			Title:      domain.Some("Hack week"),
			GalleryIDs: domain.Some([]uuid.UUID{second, first, second}),
		})
		require.NoError(t, err)
		assert.Len(t, detail.Gallery, 2)
	})

	t.Run("unknown gallery item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockStoryRepositoryIface(ctrl)
		media := mocks.NewMockMediaRepositoryIface(ctrl)
		svc := service.NewStoryService(repo, media, validation.New())

		repo.EXPECT().FindOne(gomock.Any(), repository.Ref{Slug: "hack-week"}).Return(&model.Story{Slug: "hack-week", Title: "Hack"}, nil)
		media.EXPECT().FindByIDs(gomock.Any(), []uuid.UUID{first}).Return(nil, nil)

		_, err := svc.Upsert(ctx, service.StoryUpsertInput{
			Slug:       "hack-week",
			GalleryIDs: domain.Some([]uuid.UUID{first}),
		})
		assert.ErrorIs(t, err, domain.ErrMediaNotFound)
	})
}

func TestMediaAndStoryRejectEmptyTitle(t *testing.T) {
	ctx := context.Background()

	t.Run("media", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.NewMediaService(mocks.NewMockMediaRepositoryIface(ctrl), mocks.NewMockFileStore(ctrl), validation.New())

		_, err := svc.Upsert(ctx, service.MediaUpsertInput{
			Slug:        "keynote",
			MediaFields: service.MediaFields{Kind: domain.Some("image"), Title: domain.Some("")},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = svc.Upsert(ctx, service.MediaUpsertInput{
			Slug:        "keynote",
			MediaFields: service.MediaFields{Kind: domain.Some(""), Title: domain.Some("Keynote")},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("story", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.NewStoryService(mocks.NewMockStoryRepositoryIface(ctrl), mocks.NewMockMediaRepositoryIface(ctrl), validation.New())

		_, err := svc.Upsert(ctx, service.StoryUpsertInput{Slug: "hack-week", Title: domain.Some("")})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
