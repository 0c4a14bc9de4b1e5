// internal/service/case_study.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/validation"
	"github.com/google/uuid"
)

const (
	caseStudyFeaturedDefault = 2
	caseStudyFeaturedMax     = 4
)

type CaseStudyCard struct {
	ID           uuid.UUID `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Department   *string   `json:"department"`
	Year         *int      `json:"year"`
	ImpactType   *string   `json:"impactType"`
	Summary      *string   `json:"summary"`
	IsFeatured   bool      `json:"isFeatured"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	Tags         []string  `json:"tags"`
}

type CaseStudyMetric struct {
	KPI   string  `json:"kpi"`
	Value *string `json:"value"`
	Note  *string `json:"note"`
}

type CaseStudyStep struct {
	OrderIndex    int        `json:"orderIndex"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	TeamsInvolved *string    `json:"teamsInvolved"`
	ToolsUsed     *string    `json:"toolsUsed"`
	Date          *time.Time `json:"date"`
}

type CaseStudyTestimonial struct {
	Stakeholder  string  `json:"stakeholder"`
	Organization *string `json:"organization"`
	Quote        string  `json:"quote"`
}

type CaseStudyDetail struct {
	CaseStudyCard
	ProblemStatement      *string                `json:"problemStatement"`
	IdeaDescription       *string                `json:"ideaDescription"`
	ImplementationJourney *string                `json:"implementationJourney"`
	Metrics               []CaseStudyMetric      `json:"metrics"`
	Timeline              []CaseStudyStep        `json:"timeline"`
	Testimonials          []CaseStudyTestimonial `json:"testimonials"`
	Media                 []string               `json:"media"`
	CreatedAt             time.Time              `json:"createdAt"`
	UpdatedAt             time.Time              `json:"updatedAt"`
}

type CaseStudyMetricInput struct {
	KPI   string  `json:"kpi" validate:"required,max=120"`
	Value *string `json:"value" validate:"omitempty,max=120"`
	Note  *string `json:"note"`
}

type CaseStudyStepInput struct {
	OrderIndex    int     `json:"orderIndex" validate:"min=0"`
	Title         string  `json:"title" validate:"required,max=200"`
	Description   *string `json:"description"`
	TeamsInvolved *string `json:"teamsInvolved" validate:"omitempty,max=120"`
	ToolsUsed     *string `json:"toolsUsed" validate:"omitempty,max=200"`
	Date          *string `json:"date" validate:"omitempty,date"`
}

type CaseStudyTestimonialInput struct {
	Stakeholder  string  `json:"stakeholder" validate:"required,max=120"`
	Organization *string `json:"organization" validate:"omitempty,max=150"`
	Quote        string  `json:"quote" validate:"required"`
}

type CaseStudyUpsertInput struct {
	Slug                  string                                       `json:"slug" validate:"required,min=3,max=200"`
	Title                 domain.Optional[string]                      `json:"title" validate:"omitnil,min=3,max=250"`
	Department            domain.Optional[string]                      `json:"department" validate:"omitempty,max=150"`
	YearOfImplementation  domain.Optional[int]                         `json:"yearOfImplementation" validate:"omitnil,min=1900,max=3000"`
	ImpactType            domain.Optional[string]                      `json:"impactType" validate:"omitempty,max=100"`
	Summary               domain.Optional[string]                      `json:"summary"`
	ProblemStatement      domain.Optional[string]                      `json:"problemStatement"`
	IdeaDescription       domain.Optional[string]                      `json:"ideaDescription"`
	ImplementationJourney domain.Optional[string]                      `json:"implementationJourney"`
	IsFeatured            domain.Optional[bool]                        `json:"isFeatured"`
	ThumbnailID           domain.Optional[uuid.UUID]                   `json:"thumbnailId"`
	MediaIDs              domain.Optional[[]uuid.UUID]                 `json:"mediaIds"`
	Tags                  domain.Optional[[]string]                    `json:"tags"`
	Metrics               domain.Optional[[]CaseStudyMetricInput]      `json:"metrics"`
	Timeline              domain.Optional[[]CaseStudyStepInput]        `json:"timeline"`
	Testimonials          domain.Optional[[]CaseStudyTestimonialInput] `json:"testimonials"`
}

type CaseStudyService struct {
	repo     repository.CaseStudyRepositoryIface
	validate *validation.Validator
	cache    *CacheService
	logger   *slog.Logger
}

func NewCaseStudyService(repo repository.CaseStudyRepositoryIface, validate *validation.Validator, cache *CacheService, logger *slog.Logger) *CaseStudyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CaseStudyService{repo: repo, validate: validate, cache: cache, logger: logger}
}

func (s *CaseStudyService) List(ctx context.Context, q repository.CaseStudyQuery) (*ListResponse[CaseStudyCard], error) {
	if err := s.validate.Struct(q); err != nil {
		return nil, err
	}
	q.Pagination = q.Pagination.Clamped()

	rows, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	data := make([]CaseStudyCard, 0, len(rows))
	for i := range rows {
		data = append(data, toCaseStudyCard(&rows[i]))
	}
	return newList(q.Pagination, total, data), nil
}

// Featured returns featured case studies for the rotator. limit is clamped to [1, 4], default 2.
func (s *CaseStudyService) Featured(ctx context.Context, limit int) (*DataResponse[[]CaseStudyCard], error) {
	rows, err := s.repo.Featured(ctx, clampInt(limit, caseStudyFeaturedDefault, 1, caseStudyFeaturedMax))
	if err != nil {
		return nil, err
	}

	data := make([]CaseStudyCard, 0, len(rows))
	for i := range rows {
		data = append(data, toCaseStudyCard(&rows[i]))
	}
	return &DataResponse[[]CaseStudyCard]{Data: data}, nil
}

func (s *CaseStudyService) FilterMeta(ctx context.Context) (*repository.CaseStudyFilterMeta, error) {
	return GetOrSet(ctx, s.cache, cacheKeyCaseStudiesMeta, s.repo.FilterMeta)
}

func (s *CaseStudyService) Get(ctx context.Context, idOrSlug string) (*CaseStudyDetail, error) {
	cs, err := s.repo.FindOne(ctx, repository.ParseRef(idOrSlug))
	if err != nil {
		return nil, err
	}
	return toCaseStudyDetail(cs), nil
}

func (s *CaseStudyService) Upsert(ctx context.Context, in CaseStudyUpsertInput) (*CaseStudyDetail, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}
	if err := validateEach(s.validate, in.Metrics.Value); err != nil {
		return nil, err
	}
	if err := validateEach(s.validate, in.Timeline.Value); err != nil {
		return nil, err
	}
	if err := validateEach(s.validate, in.Testimonials.Value); err != nil {
		return nil, err
	}
	slug, err := normalizeSlug(in.Slug)
	if err != nil {
		return nil, err
	}

	cs, err := s.repo.FindOne(ctx, repository.Ref{Slug: slug})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if err := requireFields(field{"title", in.Title.Valid()}); err != nil {
			return nil, err
		}
		cs = &model.CaseStudy{Slug: slug}
	case err != nil:
		return nil, err
	}

	in.Title.ApplyValue(&cs.Title)
	in.Department.Apply(&cs.Department)
	in.YearOfImplementation.Apply(&cs.YearOfImplementation)
	in.ImpactType.Apply(&cs.ImpactType)
	in.Summary.Apply(&cs.Summary)
	in.ProblemStatement.Apply(&cs.ProblemStatement)
	in.IdeaDescription.Apply(&cs.IdeaDescription)
	in.ImplementationJourney.Apply(&cs.ImplementationJourney)
	in.IsFeatured.ApplyValue(&cs.IsFeatured)

	if in.ThumbnailID.Valid() {
		assets, err := s.repo.FindMediaAssets(ctx, []uuid.UUID{in.ThumbnailID.Value})
		if err != nil {
			return nil, err
		}
		if len(assets) == 0 {
			return nil, domain.ErrMediaNotFound
		}
	}
	in.ThumbnailID.Apply(&cs.ThumbnailID)
	cs.Thumbnail = nil

	replace := repository.CaseStudyReplace{
		Tags:         in.Tags.Set,
		Media:        in.MediaIDs.Set,
		Metrics:      in.Metrics.Set,
		Timeline:     in.Timeline.Set,
		Testimonials: in.Testimonials.Set,
	}
	if replace.Tags {
		tags, err := s.repo.ResolveTags(ctx, NormalizeTags(in.Tags.Value))
		if err != nil {
			return nil, err
		}
		cs.Tags = tags
	}
	if replace.Media {
		assets, err := s.repo.FindMediaAssets(ctx, in.MediaIDs.Value)
		if err != nil {
			return nil, err
		}
		if len(assets) != len(uniqueIDs(in.MediaIDs.Value)) {
			return nil, domain.ErrMediaNotFound
		}
		cs.Media = assets
	}
	if replace.Metrics {
		cs.Metrics = make([]model.CaseStudyMetric, 0, len(in.Metrics.Value))
		for _, m := range in.Metrics.Value {
			cs.Metrics = append(cs.Metrics, model.CaseStudyMetric{KPI: m.KPI, Value: m.Value, Note: m.Note})
		}
	}
	if replace.Timeline {
		cs.Timeline = make([]model.CaseStudyTimeline, 0, len(in.Timeline.Value))
		for _, st := range in.Timeline.Value {
			step := model.CaseStudyTimeline{
				OrderIndex:    st.OrderIndex,
				Title:         st.Title,
				Description:   st.Description,
				TeamsInvolved: st.TeamsInvolved,
				ToolsUsed:     st.ToolsUsed,
			}
			if st.Date != nil {
				if err := applyDate(domain.Some(*st.Date), &step.Date); err != nil {
					return nil, err
				}
			}
			cs.Timeline = append(cs.Timeline, step)
		}
	}
	if replace.Testimonials {
		cs.Testimonials = make([]model.CaseStudyTestimonial, 0, len(in.Testimonials.Value))
		for _, t := range in.Testimonials.Value {
			cs.Testimonials = append(cs.Testimonials, model.CaseStudyTestimonial{
				Stakeholder:  t.Stakeholder,
				Organization: t.Organization,
				Quote:        t.Quote,
			})
		}
	}

	if err := s.repo.Save(ctx, cs, replace); err != nil {
		return nil, err
	}
	if err := s.cache.Delete(ctx, cacheKeyCaseStudiesMeta); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate case study filters", "error", err)
	}

	saved, err := s.repo.FindOne(ctx, repository.Ref{ID: cs.ID})
	if err != nil {
		return nil, err
	}
	return toCaseStudyDetail(saved), nil
}

func toCaseStudyCard(cs *model.CaseStudy) CaseStudyCard {
	card := CaseStudyCard{
		ID:         cs.ID,
		Slug:       cs.Slug,
		Title:      cs.Title,
		Department: cs.Department,
		Year:       cs.YearOfImplementation,
		ImpactType: cs.ImpactType,
		Summary:    cs.Summary,
		IsFeatured: cs.IsFeatured,
		Tags:       make([]string, 0, len(cs.Tags)),
	}
	switch {
	case cs.Thumbnail != nil:
		card.ThumbnailURL = &cs.Thumbnail.URL
	case len(cs.Media) > 0:
		card.ThumbnailURL = &cs.Media[0].URL
	}
	for _, t := range cs.Tags {
		card.Tags = append(card.Tags, t.Name)
	}
	return card
}

func toCaseStudyDetail(cs *model.CaseStudy) *CaseStudyDetail {
	detail := &CaseStudyDetail{
		CaseStudyCard:         toCaseStudyCard(cs),
		ProblemStatement:      cs.ProblemStatement,
		IdeaDescription:       cs.IdeaDescription,
		ImplementationJourney: cs.ImplementationJourney,
		Metrics:               make([]CaseStudyMetric, 0, len(cs.Metrics)),
		Timeline:              make([]CaseStudyStep, 0, len(cs.Timeline)),
		Testimonials:          make([]CaseStudyTestimonial, 0, len(cs.Testimonials)),
		Media:                 make([]string, 0, len(cs.Media)),
		CreatedAt:             cs.CreatedAt,
		UpdatedAt:             cs.UpdatedAt,
	}
	for _, m := range cs.Metrics {
		detail.Metrics = append(detail.Metrics, CaseStudyMetric{KPI: m.KPI, Value: m.Value, Note: m.Note})
	}
	for _, st := range cs.Timeline {
		detail.Timeline = append(detail.Timeline, CaseStudyStep{
			OrderIndex:    st.OrderIndex,
			Title:         st.Title,
			Description:   st.Description,
			TeamsInvolved: st.TeamsInvolved,
			ToolsUsed:     st.ToolsUsed,
			Date:          st.Date,
		})
	}
	for _, t := range cs.Testimonials {
		detail.Testimonials = append(detail.Testimonials, CaseStudyTestimonial{
			Stakeholder:  t.Stakeholder,
			Organization: t.Organization,
			Quote:        t.Quote,
		})
	}
	for _, m := range cs.Media {
		detail.Media = append(detail.Media, m.URL)
	}
	return detail
}
