// internal/repository/challenge.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/thinknest/internal/model"
	"gorm.io/gorm"
)

const (
	ChallengeSortDeadlineAsc  = "deadline_asc"
	ChallengeSortDeadlineDesc = "deadline_desc"
	ChallengeSortRecent       = "recent"
)

// derivedStatusSQL mirrors service.DeriveStatus so filtering by status agrees with what is rendered.
const derivedStatusSQL = `CASE
	WHEN challenges.results_date IS NOT NULL AND challenges.results_date <= @today THEN 'Results'
	WHEN challenges.judging_start IS NOT NULL AND challenges.judging_end IS NOT NULL
		AND @today BETWEEN challenges.judging_start AND challenges.judging_end THEN 'Judging'
	WHEN challenges.submission_deadline IS NOT NULL AND challenges.submission_deadline < @today THEN 'Closed'
	ELSE COALESCE(NULLIF(challenges.status, ''), 'Open')
END`

type ChallengeQuery struct {
	Pagination
	Status            string `json:"status" validate:"omitempty,oneof=Open Closed Judging Results"`
	Category          string `json:"category" validate:"max=120"`
	ParticipationType string `json:"participationType" validate:"omitempty,oneof=Individual Team Both"`
	DeadlineBefore    *time.Time
	DeadlineAfter     *time.Time
	Search            string `json:"search" validate:"max=200"`
	Sort              string
	// Today is the calendar date the derived status is evaluated against.
	Today time.Time
}

type ChallengeInclude struct {
	Prizes bool
	FAQs   bool
}

type ChallengeRepositoryIface interface {
	List(ctx context.Context, q ChallengeQuery) ([]model.Challenge, int64, error)
	FindOne(ctx context.Context, ref Ref, inc ChallengeInclude) (*model.Challenge, error)
	Save(ctx context.Context, c *model.Challenge, replacePrizes, replaceFAQs bool) error
}

type ChallengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

func challengeFilters(q ChallengeQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.Status != "" {
			db = db.Where(derivedStatusSQL+" = @status", map[string]interface{}{
				"today":  q.Today.Format(time.DateOnly),
				"status": q.Status,
			})
		}
		if q.Category != "" {
			db = db.Where("challenges.category = ?", q.Category)
		}
		if q.ParticipationType != "" {
			db = db.Where("challenges.participation_type = ?", q.ParticipationType)
		}
		if q.DeadlineBefore != nil {
			db = db.Where("challenges.submission_deadline <= ?", *q.DeadlineBefore)
		}
		if q.DeadlineAfter != nil {
			db = db.Where("challenges.submission_deadline >= ?", *q.DeadlineAfter)
		}
		if q.Search != "" {
			term := contains(q.Search)
			db = db.Where("(challenges.title ILIKE ? OR challenges.overview ILIKE ?)", term, term)
		}
		return db
	}
}

func challengeOrder(sort string) string {
	switch sort {
	case ChallengeSortDeadlineAsc:
		return "challenges.submission_deadline ASC NULLS LAST, challenges.created_at DESC"
	case ChallengeSortDeadlineDesc:
		return "challenges.submission_deadline DESC NULLS LAST, challenges.created_at DESC"
	case ChallengeSortRecent:
		return "challenges.start_date DESC NULLS LAST, challenges.created_at DESC"
	default:
		return "challenges.created_at DESC"
	}
}

func (r *ChallengeRepository) List(ctx context.Context, q ChallengeQuery) ([]model.Challenge, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Challenge{}).Scopes(challengeFilters(q)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count challenges: %w", err)
	}

	var challenges []model.Challenge
	err := r.db.WithContext(ctx).
		Scopes(challengeFilters(q), paginate(q.Pagination)).
		Order(challengeOrder(q.Sort)).
		Find(&challenges).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list challenges: %w", err)
	}
	return challenges, total, nil
}

func (r *ChallengeRepository) FindOne(ctx context.Context, ref Ref, inc ChallengeInclude) (*model.Challenge, error) {
	query := r.db.WithContext(ctx).Scopes(ref.scope("challenges"))
	if inc.Prizes {
		query = query.Preload("Prizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("challenge_prizes.rank ASC NULLS LAST, challenge_prizes.title ASC")
		})
	}
	if inc.FAQs {
		query = query.Preload("FAQs", func(db *gorm.DB) *gorm.DB {
			return db.Order("challenge_faqs.question ASC")
		})
	}

	var c model.Challenge
	if err := query.First(&c).Error; err != nil {
		return nil, translate(err, "find challenge")
	}
	return &c, nil
}

// Save writes the challenge. Prizes and FAQs are deleted and recreated when their replace flag is set.
func (r *ChallengeRepository) Save(ctx context.Context, c *model.Challenge, replacePrizes, replaceFAQs bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveRow(tx, c); err != nil {
			return err
		}
		if replacePrizes {
			for i := range c.Prizes {
				c.Prizes[i].ChallengeID = c.ID
			}
			if err := replaceChildren(tx, "challenge_id", c.ID, c.Prizes); err != nil {
				return fmt.Errorf("failed to replace prizes: %w", err)
			}
		}
		if replaceFAQs {
			for i := range c.FAQs {
				c.FAQs[i].ChallengeID = c.ID
			}
			if err := replaceChildren(tx, "challenge_id", c.ID, c.FAQs); err != nil {
				return fmt.Errorf("failed to replace faqs: %w", err)
			}
		}
		return nil
	})
	return translate(err, "save challenge")
}
