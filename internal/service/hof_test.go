package service_test

import (
	"context"
	"encoding/json"
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

func newHOFService(t *testing.T) (*service.HOFService, *mocks.MockHOFRepositoryIface) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHOFRepositoryIface(ctrl)
	cache := service.NewCacheService(newMemoryCache(), service.CacheConfig{TTL: time.Minute}, discardLogger())
	return service.NewHOFService(repo, validation.New(), cache), repo
}

func TestHOFListInnovators(t *testing.T) {
	svc, repo := newHOFService(t)
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()
	dept := "Finance"

	repo.EXPECT().
		List(gomock.Any(), repository.OwnerInnovator, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ repository.Owner, q repository.HOFQuery) ([]repository.HOFRow, int64, error) {
			assert.Equal(t, []string{"ai", "fintech"}, q.Tags)
			assert.Equal(t, "green", q.Tag)
			return []repository.HOFRow{
				{ID: a, Name: "Asha", Department: &dept, IdeasCount: 3, AwardsCount: 1},
				{ID: b, Name: "Ben"},
			}, 2, nil
		})
	repo.EXPECT().Badges(gomock.Any(), repository.OwnerInnovator, []uuid.UUID{a, b}).
		Return(map[uuid.UUID][]string{a: {"Trailblazer"}}, nil)
	repo.EXPECT().Awards(gomock.Any(), repository.OwnerInnovator, []uuid.UUID{a, b}, 5).
		Return(map[uuid.UUID][]repository.HOFAward{a: {{OwnerID: a, Name: "Gold", Year: 2024, Level: model.AwardLevelWinner}}}, nil)

	resp, err := svc.ListInnovators(ctx,
		repository.HOFQuery{Pagination: repository.Pagination{Page: 1, Limit: 12}, Tag: " green ", Tags: []string{"ai", " fintech", "ai"}},
		service.HOFListOptions{Include: service.HOFInclude{Awards: true, Counts: true, Members: true}, AwardsLimit: 9},
	)
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)

	first := resp.Data[0]
	assert.Equal(t, "innovator", first.Type)
	assert.Equal(t, []string{"Trailblazer"}, first.Badges)
	require.NotNil(t, first.Counts)
	assert.Equal(t, int64(3), first.Counts.Ideas)
	assert.Nil(t, first.Counts.Members)
	assert.Nil(t, first.Ideas)
	assert.Nil(t, first.Members)
	require.NotNil(t, first.Awards)
	assert.Len(t, *first.Awards, 1)

	second := resp.Data[1]
	assert.Equal(t, []string{}, second.Badges)
	require.NotNil(t, second.Awards)
	assert.Empty(t, *second.Awards)

	raw, err := json.Marshal(second)
	require.NoError(t, err)
	var card map[string]any
	require.NoError(t, json.Unmarshal(raw, &card))
	assert.NotContains(t, card, "ideas")
	assert.Equal(t, []any{}, card["awards"])
}

func TestHOFListTeamsMembers(t *testing.T) {
	svc, repo := newHOFService(t)
	team := uuid.New()

	repo.EXPECT().List(gomock.Any(), repository.OwnerTeam, gomock.Any()).
		Return([]repository.HOFRow{{ID: team, Name: "Rocket", MembersCount: 4}}, int64(1), nil)
	repo.EXPECT().Badges(gomock.Any(), repository.OwnerTeam, []uuid.UUID{team}).Return(map[uuid.UUID][]string{}, nil)
	repo.EXPECT().Ideas(gomock.Any(), repository.OwnerTeam, []uuid.UUID{team}, 1).Return(map[uuid.UUID][]repository.HOFIdea{}, nil)
	repo.EXPECT().Members(gomock.Any(), []uuid.UUID{team}, 6).
		Return(map[uuid.UUID][]repository.HOFMember{team: {{OwnerID: team, Name: "Asha"}}}, nil)

	resp, err := svc.ListTeams(context.Background(),
		repository.HOFQuery{Pagination: repository.Pagination{Page: 1, Limit: 12}},
		service.HOFListOptions{Include: service.HOFInclude{Ideas: true, Members: true, Counts: true}},
	)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)

	card := resp.Data[0]
	assert.Equal(t, "team", card.Type)
	require.NotNil(t, card.Counts.Members)
	assert.Equal(t, int64(4), *card.Counts.Members)
	require.NotNil(t, card.Members)
	assert.Equal(t, "Asha", (*card.Members)[0].Name)
}

func TestHOFListRejectsBadYearField(t *testing.T) {
	svc, _ := newHOFService(t)

	_, err := svc.ListInnovators(context.Background(),
		repository.HOFQuery{Pagination: repository.Pagination{Page: 1, Limit: 12}, YearField: "joined"},
		service.HOFListOptions{},
	)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHOFGetInnovator(t *testing.T) {
	svc, repo := newHOFService(t)
	id := uuid.New()

	repo.EXPECT().FindInnovator(gomock.Any(), id).Return(&model.Innovator{
		ID:       id,
		FullName: "Asha",
		Badges:   []model.Badge{{Name: "Trailblazer"}},
		Tags:     []model.Tag{{Slug: "ai"}},
		Awards:   []model.Award{{Name: "Gold", Year: 2024}, {Name: "Silver", Year: 2022}},
		Teams:    []model.Team{{ID: uuid.New(), Name: "Rocket"}},
	}, nil)

	detail, err := svc.GetInnovator(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Trailblazer"}, detail.Badges)
	assert.Equal(t, []string{"ai"}, detail.Tags)
	assert.Equal(t, "Gold", detail.Awards[0].Name)
	assert.Equal(t, "Rocket", detail.Teams[0].Name)
	assert.Equal(t, []repository.HOFIdea{}, detail.Ideas)
}

func TestHOFGetTeamMissing(t *testing.T) {
	svc, repo := newHOFService(t)
	id := uuid.New()

	repo.EXPECT().FindTeam(gomock.Any(), id).Return(nil, domain.ErrNotFound)

	_, err := svc.GetTeam(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHOFFacetsCached(t *testing.T) {
	svc, repo := newHOFService(t)
	ctx := context.Background()

	repo.EXPECT().BadgeCounts(gomock.Any()).Return([]repository.NameCount{{Name: "Trailblazer", Count: 2}}, nil).Times(1)
	repo.EXPECT().TagSlugs(gomock.Any()).Return(nil, nil).Times(1)

	for i := 0; i < 2; i++ {
		badges, err := svc.Badges(ctx)
		require.NoError(t, err)
		assert.Equal(t, []repository.NameCount{{Name: "Trailblazer", Count: 2}}, badges.Data)

		tags, err := svc.Tags(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{}, tags.Data)
	}
}
