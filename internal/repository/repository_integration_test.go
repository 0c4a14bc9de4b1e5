//go:build integration

package repository_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/dangerclosesec/thinknest/internal/database"
	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, database.Migrate(sqlDB, "public", database.Up, 0, slog.New(slog.NewTextHandler(io.Discard, nil))))
	return db
}

func uniqueSlug(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

func TestNewsRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewNewsRepository(db)
	ctx := context.Background()

	tagName := uuid.NewString()
	tags, err := repo.ResolveTags(ctx, []string{tagName, tagName + "-B"})
	require.NoError(t, err)
	require.Len(t, tags, 2)

	published := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	item := &model.NewsItem{
		Slug:        uniqueSlug("launch"),
		Title:       "Launch",
		Summary:     "Summary",
		Content:     "Content",
		PublishedAt: &published,
		Tags:        tags,
	}
	require.NoError(t, repo.Save(ctx, item, true))
	require.NotEqual(t, uuid.Nil, item.ID)

	got, err := repo.FindOne(ctx, repository.ParseRef(item.Slug))
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
	assert.Len(t, got.Tags, 2)

	items, total, err := repo.List(ctx, repository.NewsQuery{
		Pagination:    repository.Pagination{Page: 1, Limit: 10},
		Tag:           tagName,
		PublishedOnly: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)

	_, total, err = repo.List(ctx, repository.NewsQuery{
		Pagination: repository.Pagination{Page: 1, Limit: 10},
		Tag:        "  " + tagName,
	})
	require.NoError(t, err)
	assert.Zero(t, total, "tag match is exact")

	require.NoError(t, repo.Delete(ctx, item.ID))
	assert.ErrorIs(t, repo.Delete(ctx, item.ID), domain.ErrNotFound)
	_, err = repo.FindOne(ctx, repository.Ref{ID: item.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewsRepositorySlugConflict(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewNewsRepository(db)
	ctx := context.Background()

	slug := uniqueSlug("dup")
	require.NoError(t, repo.Save(ctx, &model.NewsItem{Slug: slug, Title: "One", Summary: "One", Content: "One"}, false))

	other := &model.NewsItem{Slug: uniqueSlug("other"), Title: "Two", Summary: "Two", Content: "Two"}
	require.NoError(t, repo.Save(ctx, other, false))

	other.Slug = slug
	assert.ErrorIs(t, repo.Save(ctx, other, false), domain.ErrSlugConflict)
}

func TestContactRepositoryFindSince(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewContactRepository(db)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	msg := &model.ContactMessage{
		Name:    "Asha",
		Email:   "asha@example.com",
		Subject: "Hello",
		Message: "Integration test message",
		Type:    model.ContactType("General"),
	}
	require.NoError(t, repo.Create(ctx, msg))
	require.NotEqual(t, uuid.Nil, msg.ID)

	msgs, err := repo.FindSince(ctx, before)
	require.NoError(t, err)

	var found bool
	for _, m := range msgs {
		if m.ID == msg.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestHOFRepositoryTotalIgnoresJoinFanOut(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewHOFRepository(db)
	ctx := context.Background()

	tagA, tagB := uniqueSlug("tag-a"), uniqueSlug("tag-b")
	badge := uniqueSlug("badge")
	submitted := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	inv := &model.Innovator{
		FullName:   uniqueSlug("Asha"),
		Department: "Finance",
		Tags:       []model.Tag{{Slug: tagA}, {Slug: tagB}},
		Badges:     []model.Badge{{Name: badge + "-b"}, {Name: badge + "-a"}},
		Ideas: []model.Idea{
			{Title: "Ledger bot", SubmissionDate: &submitted},
			{Title: "Invoice OCR"},
		},
		Awards: []model.Award{
			{Name: "Gold", Year: 2024, Level: model.AwardLevelWinner},
			{Name: "Silver", Year: 2024, Level: model.AwardLevelRunnerUp},
			{Name: "Bronze", Year: 2023, Level: model.AwardLevelFinalist},
		},
	}
	require.NoError(t, db.WithContext(ctx).Create(inv).Error)

	year := 2024
	rows, total, err := repo.List(ctx, repository.OwnerInnovator, repository.HOFQuery{
		Pagination: repository.Pagination{Page: 1, Limit: 10},
		Tags:       []string{tagA, tagB},
		Year:       &year,
		HasAwards:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, inv.ID, rows[0].ID)
	assert.Equal(t, int64(3), rows[0].AwardsCount)
	assert.Equal(t, int64(2), rows[0].IdeasCount)
	require.NotNil(t, rows[0].RecentAwardYear)
	assert.Equal(t, 2024, *rows[0].RecentAwardYear)

	_, total, err = repo.List(ctx, repository.OwnerInnovator, repository.HOFQuery{
		Pagination: repository.Pagination{Page: 1, Limit: 10},
		Tags:       []string{tagA},
		Year:       &year,
		YearField:  repository.YearFieldIdea,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	t.Run("tag and tags must both match", func(t *testing.T) {
		_, total, err := repo.List(ctx, repository.OwnerInnovator, repository.HOFQuery{
			Pagination: repository.Pagination{Page: 1, Limit: 10},
			Tag:        tagA,
			Tags:       []string{tagB},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)

		_, total, err = repo.List(ctx, repository.OwnerInnovator, repository.HOFQuery{
			Pagination: repository.Pagination{Page: 1, Limit: 10},
			Tag:        tagA,
			Tags:       []string{uniqueSlug("missing")},
		})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	badges, err := repo.Badges(ctx, repository.OwnerInnovator, []uuid.UUID{inv.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{badge + "-a", badge + "-b"}, badges[inv.ID])
}

func TestJuryRepositoryListScansExpertise(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewJuryRepository(db)
	ctx := context.Background()

	expertise, err := repo.ResolveExpertise(ctx, []string{uniqueSlug("Robotics"), uniqueSlug("AI")})
	require.NoError(t, err)
	require.Len(t, expertise, 2)

	dept := uniqueSlug("Research")
	member := &model.JuryMember{
		FullName:     "Ravi Kumar",
		Designation:  uniqueSlug("Director"),
		Organization: "ThinkNest",
		Department:   dept,
		Expertise:    expertise,
		Assignments: []model.JuryAssignment{
			{Year: 2023, Role: model.JuryRoleMember},
			{Year: 2024, Role: model.JuryRoleChair},
		},
	}
	require.NoError(t, repo.Create(ctx, member))

	rows, total, err := repo.List(ctx, repository.JuryQuery{
		Pagination: repository.Pagination{Page: 1, Limit: 10},
		Search:     dept,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, rows, 2)

	names := []string{expertise[0].Name, expertise[1].Name}
	if names[0] > names[1] {
		names[0], names[1] = names[1], names[0]
	}
	assert.Equal(t, names, []string(rows[0].Expertise))

	rows, total, err = repo.List(ctx, repository.JuryQuery{
		Pagination: repository.Pagination{Page: 1, Limit: 10},
		Search:     dept,
		Years:      []int{2024},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, model.JuryRoleChair, rows[0].Role)

	_, total, err = repo.List(ctx, repository.JuryQuery{
		Pagination: repository.Pagination{Page: 1, Limit: 10},
		Search:     member.Designation,
	})
	require.NoError(t, err)
	assert.Zero(t, total, "search covers name and department only")
}

func TestChallengeRepositoryStatusMatchesDerivation(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewChallengeRepository(db)
	ctx := context.Background()

	today := time.Now().UTC().Truncate(24 * time.Hour)
	dayAt := func(offset int) *time.Time {
		d := today.AddDate(0, 0, offset)
		return &d
	}
	marker := uniqueSlug("status")

	seeded := map[model.ChallengeStatus]*model.Challenge{
		model.ChallengeJudging: {
			Slug: uniqueSlug("judging"), Title: marker + " judging", Status: model.ChallengeOpen,
			SubmissionDeadline: dayAt(-5), JudgingStart: dayAt(-1), JudgingEnd: dayAt(3),
		},
		model.ChallengeResults: {
			Slug: uniqueSlug("results"), Title: marker + " results", Status: model.ChallengeOpen,
			JudgingStart: dayAt(-20), JudgingEnd: dayAt(-10), ResultsDate: dayAt(-2),
		},
		model.ChallengeClosed: {
			Slug: uniqueSlug("closed"), Title: marker + " closed", Status: model.ChallengeOpen,
			SubmissionDeadline: dayAt(-1),
		},
		model.ChallengeOpen: {
			Slug: uniqueSlug("open"), Title: marker + " open", Status: model.ChallengeOpen,
			SubmissionDeadline: dayAt(10),
		},
	}
	for _, c := range seeded {
		require.NoError(t, repo.Save(ctx, c, false, false))
	}

	for status, want := range seeded {
		t.Run(string(status), func(t *testing.T) {
			got, total, err := repo.List(ctx, repository.ChallengeQuery{
				Pagination: repository.Pagination{Page: 1, Limit: 10},
				Status:     string(status),
				Search:     marker,
				Today:      today,
			})
			require.NoError(t, err)
			assert.Equal(t, int64(1), total)
			require.Len(t, got, 1)
			assert.Equal(t, want.ID, got[0].ID)
			assert.Equal(t, status, service.DeriveStatus(&got[0], today))
		})
	}
}
