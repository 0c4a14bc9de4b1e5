package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

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

func newCaseStudyService(t *testing.T) (*service.CaseStudyService, *mocks.MockCaseStudyRepositoryIface) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCaseStudyRepositoryIface(ctrl)
	cache := service.NewCacheService(newMemoryCache(), service.CacheConfig{TTL: time.Minute}, discardLogger())
	return service.NewCaseStudyService(repo, validation.New(), cache, discardLogger()), repo
}

func TestCaseStudyFeaturedThumbnailFallback(t *testing.T) {
	svc, repo := newCaseStudyService(t)

	repo.EXPECT().Featured(gomock.Any(), 4).Return([]model.CaseStudy{
		{Slug: "a", Media: []model.MediaAsset{{URL: "https://cdn.example.com/first.png"}, {URL: "https://cdn.example.com/second.png"}}},
		{Slug: "b", Thumbnail: &model.MediaAsset{URL: "https://cdn.example.com/thumb.png"}},
		{Slug: "c"},
	}, nil)

	resp, err := svc.Featured(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "https://cdn.example.com/first.png", *resp.Data[0].ThumbnailURL)
	assert.Equal(t, "https://cdn.example.com/thumb.png", *resp.Data[1].ThumbnailURL)
	assert.Nil(t, resp.Data[2].ThumbnailURL)
}

func TestCaseStudyFilterMetaInvalidatedOnUpsert(t *testing.T) {
	svc, repo := newCaseStudyService(t)
	ctx := context.Background()
	meta := &repository.CaseStudyFilterMeta{Departments: []string{"Ops"}, Years: []int{2024}, ImpactTypes: []string{"Cost"}}
	id := uuid.New()

	repo.EXPECT().FilterMeta(gomock.Any()).Return(meta, nil).Times(2)
	repo.EXPECT().FindOne(gomock.Any(), repository.Ref{Slug: "lean-ops"}).Return(nil, domain.ErrNotFound)
	repo.EXPECT().ResolveTags(gomock.Any(), []string{"lean"}).Return([]model.CaseStudyTag{{Name: "lean"}}, nil)
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any(), repository.CaseStudyReplace{Tags: true, Metrics: true}).
		DoAndReturn(func(_ context.Context, cs *model.CaseStudy, _ repository.CaseStudyReplace) error {
			cs.ID = id
			return nil
		})
	repo.EXPECT().FindOne(gomock.Any(), repository.Ref{ID: id}).Return(&model.CaseStudy{ID: id, Slug: "lean-ops", Title: "Lean ops"}, nil)

	got, err := svc.FilterMeta(ctx)
	require.NoError(t, err)
	assert.Equal(t, meta, got)
	_, err = svc.FilterMeta(ctx)
	require.NoError(t, err)

	detail, err := svc.Upsert(ctx, service.CaseStudyUpsertInput{
		Slug:    "lean-ops",
		Title:   domain.Some("Lean ops"),
		Tags:    domain.Some([]string{"lean"}),
		Metrics: domain.Some([]service.CaseStudyMetricInput{{KPI: "Cycle time"}}),
	})
	require.NoError(t, err)
	assert.Equal(t, id, detail.ID)

	_, err = svc.FilterMeta(ctx)
	require.NoError(t, err)
}

func TestCaseStudyUpsertUnknownMedia(t *testing.T) {
	svc, repo := newCaseStudyService(t)
	mediaID := uuid.New()

	repo.EXPECT().FindOne(gomock.Any(), repository.Ref{Slug: "lean-ops"}).Return(&model.CaseStudy{Slug: "lean-ops", Title: "Lean"}, nil)
	repo.EXPECT().FindMediaAssets(gomock.Any(), []uuid.UUID{mediaID}).Return(nil, nil)

	_, err := svc.Upsert(context.Background(), service.CaseStudyUpsertInput{
		Slug:     "lean-ops",
		MediaIDs: domain.Some([]uuid.UUID{mediaID}),
	})
	assert.ErrorIs(t, err, domain.ErrMediaNotFound)
}

func TestCaseStudyUpsertRejectsEmptyTitle(t *testing.T) {
	svc, _ := newCaseStudyService(t)

	_, err := svc.Upsert(context.Background(), service.CaseStudyUpsertInput{
		Slug:                 "smart-grid",
		Title:                domain.Some(""),
		YearOfImplementation: domain.Some(0),
	})
	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{
		"title must be at least 3 characters",
		"yearOfImplementation must be at least 1900",
	}, verr.Details)
}
