package service_test

import (
	"context"
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

func newFeaturedService(t *testing.T, enabled bool) (*service.FeaturedService, *mocks.MockFeaturedRepositoryIface) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFeaturedRepositoryIface(ctrl)
	return service.NewFeaturedService(repo, validation.New(), enabled), repo
}

func TestFeaturedCarousel(t *testing.T) {
	svc, repo := newFeaturedService(t, true)

	repo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q repository.FeaturedQuery) ([]model.FeaturedIdea, int64, error) {
			assert.Equal(t, 1, q.Page)
			assert.Equal(t, 12, q.Limit)
			assert.Equal(t, repository.FeaturedSortPopular, q.Sort)
			return []model.FeaturedIdea{{
				ID:           uuid.New(),
				Slug:         "solar-roof",
				Idea:         &model.Idea{Title: "Solar roof", Tags: []model.Tag{{Slug: "energy"}}},
				MediaPreview: &model.MediaAsset{Kind: model.AssetVideo, URL: "https://cdn.example.com/v.mp4"},
			}}, 1, nil
		})

	resp, err := svc.Carousel(context.Background(), 40)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)

	card := resp.Data[0]
	assert.Equal(t, "Solar roof", card.Title)
	assert.Equal(t, []string{"energy"}, card.Tags)
	assert.Equal(t, "/featured-ideas/solar-roof", card.Link)
	require.NotNil(t, card.Preview)
	assert.Nil(t, card.Preview.ImageURL)
	require.NotNil(t, card.Preview.VideoURL)
	assert.Equal(t, "https://cdn.example.com/v.mp4", *card.Preview.VideoURL)
}

func TestFeaturedDisabled(t *testing.T) {
	svc, _ := newFeaturedService(t, false)

	_, err := svc.Carousel(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrModuleDisabled)
	assert.False(t, svc.Config().Enabled)
}

func TestFeaturedUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("create without idea", func(t *testing.T) {
		svc, repo := newFeaturedService(t, true)
		repo.EXPECT().FindBySlug(gomock.Any(), "solar-roof").Return(nil, domain.ErrNotFound)

		_, err := svc.Upsert(ctx, service.FeaturedUpsertInput{Slug: "solar-roof", Status: domain.Some("Implemented")})
		assert.ErrorIs(t, err, domain.ErrIdeaRequired)
	})

	t.Run("unknown idea", func(t *testing.T) {
		svc, repo := newFeaturedService(t, true)
		ideaID := uuid.New()
		repo.EXPECT().FindBySlug(gomock.Any(), "solar-roof").Return(nil, domain.ErrNotFound)
		repo.EXPECT().IdeaExists(gomock.Any(), ideaID).Return(false, nil)

		_, err := svc.Upsert(ctx, service.FeaturedUpsertInput{
			Slug:   "solar-roof",
			IdeaID: domain.Some(ideaID),
			Status: domain.Some("Implemented"),
		})
		assert.ErrorIs(t, err, domain.ErrIdeaRequired)
	})

	t.Run("creates and rereads hidden row", func(t *testing.T) {
		svc, repo := newFeaturedService(t, true)
		ideaID := uuid.New()
		savedID := uuid.New()

		repo.EXPECT().FindBySlug(gomock.Any(), "solar-roof").Return(nil, domain.ErrNotFound)
		repo.EXPECT().IdeaExists(gomock.Any(), ideaID).Return(true, nil)
		repo.EXPECT().
			Save(gomock.Any(), gomock.Any(), repository.FeaturedInclude{Impact: true}).
			DoAndReturn(func(_ context.Context, f *model.FeaturedIdea, _ repository.FeaturedInclude) error {
				assert.False(t, f.IsVisible)
				assert.Equal(t, ideaID, f.IdeaID)
				require.Len(t, f.Impact, 1)
				f.ID = savedID
				return nil
			})
		repo.EXPECT().
			FindOne(gomock.Any(), repository.Ref{ID: savedID}, repository.FeaturedInclude{Media: true, Impact: true, Testimonials: true}, false).
			Return(&model.FeaturedIdea{ID: savedID, Slug: "solar-roof", Status: "Implemented"}, nil)

		detail, err := svc.Upsert(ctx, service.FeaturedUpsertInput{
			Slug:      "solar-roof",
			IdeaID:    domain.Some(ideaID),
			Status:    domain.Some("Implemented"),
			IsVisible: domain.Some(false),
			Impact:    domain.Some([]service.ImpactInput{{Metric: "CO2 saved"}}),
		})
		require.NoError(t, err)
		assert.Equal(t, savedID, detail.ID)
	})
}

func TestFeaturedUpsertRejectsEmptyStatus(t *testing.T) {
	svc, _ := newFeaturedService(t, true)

	_, err := svc.Upsert(context.Background(), service.FeaturedUpsertInput{
		Slug:   "solar-roof",
		IdeaID: domain.Some(uuid.New()),
		Status: domain.Some(""),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
