package service_test

import (
	"context"
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

func day(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestDeriveStatus(t *testing.T) {
	today := time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		challenge model.Challenge
		want      model.ChallengeStatus
	}{
		{
			name:      "results date in the past",
			challenge: model.Challenge{Status: model.ChallengeOpen, ResultsDate: day("2024-06-01")},
			want:      model.ChallengeResults,
		},
		{
			name:      "results date is today",
			challenge: model.Challenge{ResultsDate: day("2024-06-15")},
			want:      model.ChallengeResults,
		},
		{
			name: "inside judging window",
			challenge: model.Challenge{
				SubmissionDeadline: day("2024-06-01"),
				JudgingStart:       day("2024-06-10"),
				JudgingEnd:         day("2024-06-20"),
				ResultsDate:        day("2024-07-01"),
			},
			want: model.ChallengeJudging,
		},
		{
			name:      "deadline passed before judging",
			challenge: model.Challenge{SubmissionDeadline: day("2024-06-14"), JudgingStart: day("2024-06-20"), JudgingEnd: day("2024-06-30")},
			want:      model.ChallengeClosed,
		},
		{
			name:      "deadline is today",
			challenge: model.Challenge{Status: model.ChallengeOpen, SubmissionDeadline: day("2024-06-15")},
			want:      model.ChallengeOpen,
		},
		{
			name:      "empty status defaults to open",
			challenge: model.Challenge{},
			want:      model.ChallengeOpen,
		},
		{
			name:      "stored status kept without dates",
			challenge: model.Challenge{Status: model.ChallengeClosed},
			want:      model.ChallengeClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.DeriveStatus(&tt.challenge, today))
		})
	}
}

func TestChallengeModuleDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockChallengeRepositoryIface(ctrl)
	svc := service.NewChallengeService(repo, validation.New(), false)

	assert.Equal(t, service.ModuleConfig{Module: "challenges", Enabled: false}, svc.Config())

	_, err := svc.List(context.Background(), repository.ChallengeQuery{Pagination: repository.Pagination{Page: 1, Limit: 12}})
	assert.ErrorIs(t, err, domain.ErrModuleDisabled)

	_, err = svc.Get(context.Background(), "hackathon", repository.ChallengeInclude{})
	assert.ErrorIs(t, err, domain.ErrModuleDisabled)
}

func TestChallengeListDerivesStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockChallengeRepositoryIface(ctrl)
	now := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	svc := service.NewChallengeService(repo, validation.New(), true).WithClock(func() time.Time { return now })

	repo.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q repository.ChallengeQuery) ([]model.Challenge, int64, error) {
			assert.Equal(t, "Results", q.Status)
			assert.True(t, q.Today.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))
			return []model.Challenge{{ID: uuid.New(), Slug: "green", Status: model.ChallengeOpen, ResultsDate: day("2024-06-01")}}, 1, nil
		})

	resp, err := svc.List(context.Background(), repository.ChallengeQuery{
		Pagination: repository.Pagination{Page: 1, Limit: 12},
		Status:     "Results",
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, model.ChallengeResults, resp.Data[0].Status)
}

func TestChallengeListRejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewChallengeService(mocks.NewMockChallengeRepositoryIface(ctrl), validation.New(), true)

	_, err := svc.List(context.Background(), repository.ChallengeQuery{
		Pagination: repository.Pagination{Page: 1, Limit: 12},
		Status:     "Pending",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChallengeUpsertReplacesPrizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockChallengeRepositoryIface(ctrl)
	svc := service.NewChallengeService(repo, validation.New(), true)
	ctx := context.Background()

	repo.EXPECT().
		FindOne(gomock.Any(), repository.Ref{Slug: "green-tech"}, repository.ChallengeInclude{Prizes: true, FAQs: true}).
		Return(nil, domain.ErrNotFound)
	repo.EXPECT().
		Save(gomock.Any(), gomock.Any(), true, false).
		DoAndReturn(func(_ context.Context, c *model.Challenge, _, _ bool) error {
			assert.Equal(t, model.ChallengeOpen, c.Status)
			require.Len(t, c.Prizes, 1)
			assert.Equal(t, "Gold", c.Prizes[0].Title)
			require.NotNil(t, c.SubmissionDeadline)
			assert.Equal(t, "2030-01-31", c.SubmissionDeadline.Format(time.DateOnly))
			return nil
		})

	detail, err := svc.Upsert(ctx, service.ChallengeUpsertInput{
		Slug:               "Green Tech",
		Title:              domain.Some("Green tech"),
		SubmissionDeadline: domain.Some("2030-01-31"),
		Prizes:             domain.Some([]service.ChallengePrizeInput{{Title: "Gold"}}),
	})
	require.NoError(t, err)
	assert.Equal(t, "green-tech", detail.Slug)
	require.NotNil(t, detail.Timeline.SubmissionDeadline)
	assert.Equal(t, "2030-01-31", *detail.Timeline.SubmissionDeadline)
}

func TestChallengeUpsertRejectsBadDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewChallengeService(mocks.NewMockChallengeRepositoryIface(ctrl), validation.New(), true)

	_, err := svc.Upsert(context.Background(), service.ChallengeUpsertInput{
		Slug:        "green-tech",
		Title:       domain.Some("Green tech"),
		ResultsDate: domain.Some("31/01/2030"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChallengeUpsertRejectsEmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := service.NewChallengeService(mocks.NewMockChallengeRepositoryIface(ctrl), validation.New(), true)

	for name, in := range map[string]service.ChallengeUpsertInput{
		"title":             {Slug: "green-tech", Title: domain.Some("")},
		"status":            {Slug: "green-tech", Status: domain.Some("")},
		"participationType": {Slug: "green-tech", ParticipationType: domain.Some("")},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Upsert(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
