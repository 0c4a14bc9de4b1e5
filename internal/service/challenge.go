// internal/service/challenge.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/validation"
	"github.com/google/uuid"
)

// ModuleConfig reports whether an optional module is switched on.
type ModuleConfig struct {
	Module  string `json:"module"`
	Enabled bool   `json:"enabled"`
}

type ChallengeDates struct {
	Start              *string `json:"start"`
	End                *string `json:"end"`
	SubmissionDeadline *string `json:"submissionDeadline"`
}

type ChallengeTimeline struct {
	ChallengeDates
	JudgingStart *string `json:"judgingStart"`
	JudgingEnd   *string `json:"judgingEnd"`
	ResultsDate  *string `json:"resultsDate"`
}

type ChallengeCard struct {
	ID                uuid.UUID                `json:"id"`
	Slug              string                   `json:"slug"`
	Title             string                   `json:"title"`
	Overview          *string                  `json:"overview"`
	Category          *string                  `json:"category"`
	ParticipationType *model.ParticipationType `json:"participationType"`
	Status            model.ChallengeStatus    `json:"status"`
	Dates             ChallengeDates           `json:"dates"`
	ThumbnailURL      *string                  `json:"thumbnailUrl"`
	ApplyURL          *string                  `json:"applyUrl"`
	CreatedAt         time.Time                `json:"createdAt"`
}

type ChallengePrize struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	Currency    *string  `json:"currency"`
	Rank        *int     `json:"rank"`
}

type ChallengeFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ChallengeDetail struct {
	ChallengeCard
	Theme       *string           `json:"theme"`
	Goal        *string           `json:"goal"`
	Rules       *string           `json:"rules"`
	Eligibility *string           `json:"eligibility"`
	Timeline    ChallengeTimeline `json:"timeline"`
	Prizes      []ChallengePrize  `json:"prizes,omitempty"`
	FAQs        []ChallengeFAQ    `json:"faqs,omitempty"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type ChallengePrizeInput struct {
	Title       string   `json:"title" validate:"required,max=160"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount" validate:"omitempty,min=0"`
	Currency    *string  `json:"currency" validate:"omitempty,max=10"`
	Rank        *int     `json:"rank" validate:"omitempty,min=1"`
}

type ChallengeFAQInput struct {
	Question string `json:"question" validate:"required,max=240"`
	Answer   string `json:"answer" validate:"required"`
}

type ChallengeUpsertInput struct {
	Slug               string                                 `json:"slug" validate:"required,min=3,max=160"`
	Title              domain.Optional[string]                `json:"title" validate:"omitnil,min=3,max=200"`
	Status             domain.Optional[string]                `json:"status" validate:"omitnil,oneof=Open Closed Judging Results"`
	Overview           domain.Optional[string]                `json:"overview"`
	Theme              domain.Optional[string]                `json:"theme" validate:"omitempty,max=160"`
	Goal               domain.Optional[string]                `json:"goal"`
	Rules              domain.Optional[string]                `json:"rules"`
	Eligibility        domain.Optional[string]                `json:"eligibility"`
	Category           domain.Optional[string]                `json:"category" validate:"omitempty,max=120"`
	ParticipationType  domain.Optional[string]                `json:"participationType" validate:"omitnil,oneof=Individual Team Both"`
	StartDate          domain.Optional[string]                `json:"startDate" validate:"omitempty,date"`
	EndDate            domain.Optional[string]                `json:"endDate" validate:"omitempty,date"`
	SubmissionDeadline domain.Optional[string]                `json:"submissionDeadline" validate:"omitempty,date"`
	JudgingStart       domain.Optional[string]                `json:"judgingStart" validate:"omitempty,date"`
	JudgingEnd         domain.Optional[string]                `json:"judgingEnd" validate:"omitempty,date"`
	ResultsDate        domain.Optional[string]                `json:"resultsDate" validate:"omitempty,date"`
	ThumbnailURL       domain.Optional[string]                `json:"thumbnailUrl" validate:"omitempty,url"`
	ApplyURL           domain.Optional[string]                `json:"applyUrl" validate:"omitempty,url"`
	Prizes             domain.Optional[[]ChallengePrizeInput] `json:"prizes"`
	FAQs               domain.Optional[[]ChallengeFAQInput]   `json:"faqs"`
}

type ChallengeService struct {
	repo     repository.ChallengeRepositoryIface
	validate *validation.Validator
	enabled  bool
	now      Clock
}

func NewChallengeService(repo repository.ChallengeRepositoryIface, validate *validation.Validator, enabled bool) *ChallengeService {
	return &ChallengeService{repo: repo, validate: validate, enabled: enabled, now: systemClock}
}

// WithClock replaces the clock used to derive statuses.
func (s *ChallengeService) WithClock(now Clock) *ChallengeService {
	s.now = now
	return s
}

func (s *ChallengeService) Config() ModuleConfig {
	return ModuleConfig{Module: "challenges", Enabled: s.enabled}
}

// DeriveStatus computes the effective status on the calendar day of today:
// Results once the results date is reached, Judging inside the judging window, Closed after
// the submission deadline and the stored status (Open when empty) otherwise.
func DeriveStatus(c *model.Challenge, today time.Time) model.ChallengeStatus {
	day := dateOf(today)
	if c.ResultsDate != nil && !day.Before(dateOf(*c.ResultsDate)) {
		return model.ChallengeResults
	}
	if c.JudgingStart != nil && c.JudgingEnd != nil &&
		!day.Before(dateOf(*c.JudgingStart)) && !day.After(dateOf(*c.JudgingEnd)) {
		return model.ChallengeJudging
	}
	if c.SubmissionDeadline != nil && day.After(dateOf(*c.SubmissionDeadline)) {
		return model.ChallengeClosed
	}
	if c.Status == "" {
		return model.ChallengeOpen
	}
	return c.Status
}

func (s *ChallengeService) List(ctx context.Context, q repository.ChallengeQuery) (*ListResponse[ChallengeCard], error) {
	if !s.enabled {
		return nil, domain.ErrModuleDisabled
	}
	if err := s.validate.Struct(q); err != nil {
		return nil, err
	}
	q.Pagination = q.Pagination.Clamped()
	q.Today = dateOf(s.now())

	challenges, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	data := make([]ChallengeCard, 0, len(challenges))
	for i := range challenges {
		data = append(data, toChallengeCard(&challenges[i], q.Today))
	}
	return newList(q.Pagination, total, data), nil
}

func (s *ChallengeService) Get(ctx context.Context, idOrSlug string, inc repository.ChallengeInclude) (*ChallengeDetail, error) {
	if !s.enabled {
		return nil, domain.ErrModuleDisabled
	}
	c, err := s.repo.FindOne(ctx, repository.ParseRef(idOrSlug), inc)
	if err != nil {
		return nil, err
	}
	return toChallengeDetail(c, s.now(), inc), nil
}

func (s *ChallengeService) Upsert(ctx context.Context, in ChallengeUpsertInput) (*ChallengeDetail, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}
	if err := validateEach(s.validate, in.Prizes.Value); err != nil {
		return nil, err
	}
	if err := validateEach(s.validate, in.FAQs.Value); err != nil {
		return nil, err
	}
	slug, err := normalizeSlug(in.Slug)
	if err != nil {
		return nil, err
	}

	c, err := s.repo.FindOne(ctx, repository.Ref{Slug: slug}, repository.ChallengeInclude{Prizes: true, FAQs: true})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if err := requireFields(field{"title", in.Title.Valid()}); err != nil {
			return nil, err
		}
		c = &model.Challenge{Slug: slug, Status: model.ChallengeOpen}
	case err != nil:
		return nil, err
	}

	in.Title.ApplyValue(&c.Title)
	if in.Status.Valid() {
		c.Status = model.ChallengeStatus(in.Status.Value)
	}
	in.Overview.Apply(&c.Overview)
	in.Theme.Apply(&c.Theme)
	in.Goal.Apply(&c.Goal)
	in.Rules.Apply(&c.Rules)
	in.Eligibility.Apply(&c.Eligibility)
	in.Category.Apply(&c.Category)
	if in.ParticipationType.Set {
		c.ParticipationType = nil
		if in.ParticipationType.Valid() {
			pt := model.ParticipationType(in.ParticipationType.Value)
			c.ParticipationType = &pt
		}
	}
	for _, d := range []struct {
		in  domain.Optional[string]
		dst **time.Time
	}{
		{in.StartDate, &c.StartDate},
		{in.EndDate, &c.EndDate},
		{in.SubmissionDeadline, &c.SubmissionDeadline},
		{in.JudgingStart, &c.JudgingStart},
		{in.JudgingEnd, &c.JudgingEnd},
		{in.ResultsDate, &c.ResultsDate},
	} {
		if err := applyDate(d.in, d.dst); err != nil {
			return nil, err
		}
	}
	in.ThumbnailURL.Apply(&c.ThumbnailURL)
	in.ApplyURL.Apply(&c.ApplyURL)

	if in.Prizes.Set {
		c.Prizes = make([]model.ChallengePrize, 0, len(in.Prizes.Value))
		for _, p := range in.Prizes.Value {
			c.Prizes = append(c.Prizes, model.ChallengePrize{
				Title:       p.Title,
				Description: p.Description,
				Amount:      p.Amount,
				Currency:    p.Currency,
				Rank:        p.Rank,
			})
		}
	}
	if in.FAQs.Set {
		c.FAQs = make([]model.ChallengeFAQ, 0, len(in.FAQs.Value))
		for _, f := range in.FAQs.Value {
			c.FAQs = append(c.FAQs, model.ChallengeFAQ{Question: f.Question, Answer: f.Answer})
		}
	}

	if err := s.repo.Save(ctx, c, in.Prizes.Set, in.FAQs.Set); err != nil {
		return nil, err
	}
	return toChallengeDetail(c, s.now(), repository.ChallengeInclude{Prizes: true, FAQs: true}), nil
}

func toChallengeCard(c *model.Challenge, today time.Time) ChallengeCard {
	return ChallengeCard{
		ID:                c.ID,
		Slug:              c.Slug,
		Title:             c.Title,
		Overview:          c.Overview,
		Category:          c.Category,
		ParticipationType: c.ParticipationType,
		Status:            DeriveStatus(c, today),
		Dates: ChallengeDates{
			Start:              formatDate(c.StartDate),
			End:                formatDate(c.EndDate),
			SubmissionDeadline: formatDate(c.SubmissionDeadline),
		},
		ThumbnailURL: c.ThumbnailURL,
		ApplyURL:     c.ApplyURL,
		CreatedAt:    c.CreatedAt,
	}
}

func toChallengeDetail(c *model.Challenge, today time.Time, inc repository.ChallengeInclude) *ChallengeDetail {
	card := toChallengeCard(c, today)
	detail := &ChallengeDetail{
		ChallengeCard: card,
		Theme:         c.Theme,
		Goal:          c.Goal,
		Rules:         c.Rules,
		Eligibility:   c.Eligibility,
		Timeline: ChallengeTimeline{
			ChallengeDates: card.Dates,
			JudgingStart:   formatDate(c.JudgingStart),
			JudgingEnd:     formatDate(c.JudgingEnd),
			ResultsDate:    formatDate(c.ResultsDate),
		},
		UpdatedAt: c.UpdatedAt,
	}
	if inc.Prizes {
		detail.Prizes = make([]ChallengePrize, 0, len(c.Prizes))
		for _, p := range c.Prizes {
			detail.Prizes = append(detail.Prizes, ChallengePrize{
				Title:       p.Title,
				Description: p.Description,
				Amount:      p.Amount,
				Currency:    p.Currency,
				Rank:        p.Rank,
			})
		}
	}
	if inc.FAQs {
		detail.FAQs = make([]ChallengeFAQ, 0, len(c.FAQs))
		for _, f := range c.FAQs {
			detail.FAQs = append(detail.FAQs, ChallengeFAQ{Question: f.Question, Answer: f.Answer})
		}
	}
	return detail
}

// dateOf drops the clock part of t, keeping its calendar day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

// applyDate parses a YYYY-MM-DD Optional onto dst with Optional.Apply semantics.
func applyDate(o domain.Optional[string], dst **time.Time) error {
	if !o.Set {
		return nil
	}
	if o.Null || o.Value == "" {
		*dst = nil
		return nil
	}
	t, err := time.Parse(time.DateOnly, o.Value)
	if err != nil {
		return validation.NewError(fmt.Sprintf("invalid date %q", o.Value))
	}
	*dst = &t
	return nil
}
