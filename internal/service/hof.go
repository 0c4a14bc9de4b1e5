// internal/service/hof.go
package service

import (
	"context"
	"strings"

	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/validation"
	"github.com/google/uuid"
)

const (
	hofIdeasDefault   = 1
	hofIdeasMax       = 5
	hofAwardsDefault  = 3
	hofAwardsMax      = 5
	hofMembersDefault = 6
	hofMembersMax     = 12
)

// HOFInclude selects the optional blocks of a Hall-of-Fame row. Badges are always loaded.
type HOFInclude struct {
	Ideas   bool
	Awards  bool
	Counts  bool
	Members bool
}

type HOFListOptions struct {
	Include      HOFInclude
	IdeasLimit   int
	AwardsLimit  int
	MembersLimit int
}

func (o HOFListOptions) clamped() HOFListOptions {
	o.IdeasLimit = clampInt(o.IdeasLimit, hofIdeasDefault, 1, hofIdeasMax)
	o.AwardsLimit = clampInt(o.AwardsLimit, hofAwardsDefault, 1, hofAwardsMax)
	o.MembersLimit = clampInt(o.MembersLimit, hofMembersDefault, 1, hofMembersMax)
	return o
}

type HOFCounts struct {
	Ideas   int64  `json:"ideas"`
	Awards  int64  `json:"awards"`
	Members *int64 `json:"members,omitempty"`
}

type HOFCard struct {
	ID          uuid.UUID               `json:"id"`
	Type        string                  `json:"type"`
	Name        string                  `json:"name"`
	PhotoURL    *string                 `json:"photoUrl,omitempty"`
	Department  *string                 `json:"department,omitempty"`
	Description *string                 `json:"description,omitempty"`
	Badges      []string                `json:"badges"`
	Counts      *HOFCounts              `json:"counts,omitempty"`
	Ideas       *[]repository.HOFIdea   `json:"ideas,omitempty"`
	Awards      *[]repository.HOFAward  `json:"awards,omitempty"`
	Members     *[]repository.HOFMember `json:"members,omitempty"`
}

type HOFTeamRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type InnovatorDetail struct {
	ID         uuid.UUID             `json:"id"`
	Name       string                `json:"name"`
	PhotoURL   *string               `json:"photoUrl"`
	Department string                `json:"department"`
	Bio        *string               `json:"bio"`
	Badges     []string              `json:"badges"`
	Ideas      []repository.HOFIdea  `json:"ideas"`
	Awards     []repository.HOFAward `json:"awards"`
	Teams      []HOFTeamRef          `json:"teams"`
	Tags       []string              `json:"tags"`
}

type TeamDetail struct {
	ID          uuid.UUID              `json:"id"`
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	Badges      []string               `json:"badges"`
	Members     []repository.HOFMember `json:"members"`
	Ideas       []repository.HOFIdea   `json:"ideas"`
	Awards      []repository.HOFAward  `json:"awards"`
	Tags        []string               `json:"tags"`
}

type HOFService struct {
	repo     repository.HOFRepositoryIface
	validate *validation.Validator
	cache    *CacheService
}

func NewHOFService(repo repository.HOFRepositoryIface, validate *validation.Validator, cache *CacheService) *HOFService {
	return &HOFService{repo: repo, validate: validate, cache: cache}
}

func (s *HOFService) ListInnovators(ctx context.Context, q repository.HOFQuery, opts HOFListOptions) (*ListResponse[HOFCard], error) {
	opts.Include.Members = false
	return s.list(ctx, repository.OwnerInnovator, q, opts)
}

func (s *HOFService) ListTeams(ctx context.Context, q repository.HOFQuery, opts HOFListOptions) (*ListResponse[HOFCard], error) {
	return s.list(ctx, repository.OwnerTeam, q, opts)
}

func (s *HOFService) list(ctx context.Context, owner repository.Owner, q repository.HOFQuery, opts HOFListOptions) (*ListResponse[HOFCard], error) {
	if err := s.validate.Struct(q); err != nil {
		return nil, err
	}
	q.Pagination = q.Pagination.Clamped()
	q.Tags = NormalizeTags(q.Tags)
	q.Tag = strings.TrimSpace(q.Tag)
	opts = opts.clamped()

	rows, total, err := s.repo.List(ctx, owner, q)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	badges, err := s.repo.Badges(ctx, owner, ids)
	if err != nil {
		return nil, err
	}

	var (
		ideas   map[uuid.UUID][]repository.HOFIdea
		awards  map[uuid.UUID][]repository.HOFAward
		members map[uuid.UUID][]repository.HOFMember
	)
	if opts.Include.Ideas {
		if ideas, err = s.repo.Ideas(ctx, owner, ids, opts.IdeasLimit); err != nil {
			return nil, err
		}
	}
	if opts.Include.Awards {
		if awards, err = s.repo.Awards(ctx, owner, ids, opts.AwardsLimit); err != nil {
			return nil, err
		}
	}
	if opts.Include.Members && owner == repository.OwnerTeam {
		if members, err = s.repo.Members(ctx, ids, opts.MembersLimit); err != nil {
			return nil, err
		}
	}

	data := make([]HOFCard, 0, len(rows))
	for _, row := range rows {
		card := HOFCard{
			ID:     row.ID,
			Type:   "innovator",
			Name:   row.Name,
			Badges: orEmpty(badges[row.ID]),
		}
		if owner == repository.OwnerTeam {
			card.Type = "team"
			card.Description = row.Description
		} else {
			card.PhotoURL = row.PhotoURL
			card.Department = row.Department
		}
		if opts.Include.Counts {
			card.Counts = &HOFCounts{Ideas: row.IdeasCount, Awards: row.AwardsCount}
			if owner == repository.OwnerTeam {
				n := row.MembersCount
				card.Counts.Members = &n
			}
		}
		if opts.Include.Ideas {
			v := orEmpty(ideas[row.ID])
			card.Ideas = &v
		}
		if opts.Include.Awards {
			v := orEmpty(awards[row.ID])
			card.Awards = &v
		}
		if members != nil {
			v := orEmpty(members[row.ID])
			card.Members = &v
		}
		data = append(data, card)
	}
	return newList(q.Pagination, total, data), nil
}

func (s *HOFService) GetInnovator(ctx context.Context, id uuid.UUID) (*InnovatorDetail, error) {
	inv, err := s.repo.FindInnovator(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &InnovatorDetail{
		ID:         inv.ID,
		Name:       inv.FullName,
		PhotoURL:   inv.PhotoURL,
		Department: inv.Department,
		Bio:        inv.Bio,
		Badges:     badgeNames(inv.Badges),
		Ideas:      toHOFIdeas(inv.Ideas),
		Awards:     toHOFAwards(inv.Awards),
		Teams:      make([]HOFTeamRef, 0, len(inv.Teams)),
		Tags:       tagSlugs(inv.Tags),
	}
	for _, t := range inv.Teams {
		detail.Teams = append(detail.Teams, HOFTeamRef{ID: t.ID, Name: t.Name})
	}
	return detail, nil
}

func (s *HOFService) GetTeam(ctx context.Context, id uuid.UUID) (*TeamDetail, error) {
	team, err := s.repo.FindTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &TeamDetail{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		Badges:      badgeNames(team.Badges),
		Members:     make([]repository.HOFMember, 0, len(team.Members)),
		Ideas:       toHOFIdeas(team.Ideas),
		Awards:      toHOFAwards(team.Awards),
		Tags:        tagSlugs(team.Tags),
	}
	for _, m := range team.Members {
		detail.Members = append(detail.Members, repository.HOFMember{
			OwnerID:    team.ID,
			ID:         m.ID,
			Name:       m.FullName,
			PhotoURL:   m.PhotoURL,
			Department: m.Department,
		})
	}
	return detail, nil
}

func (s *HOFService) Years(ctx context.Context) (*DataResponse[[]repository.YearCount], error) {
	years, err := GetOrSet(ctx, s.cache, cacheKeyHOFYears, s.repo.AwardYears)
	if err != nil {
		return nil, err
	}
	return &DataResponse[[]repository.YearCount]{Data: orEmpty(years)}, nil
}

func (s *HOFService) Badges(ctx context.Context) (*DataResponse[[]repository.NameCount], error) {
	badges, err := GetOrSet(ctx, s.cache, cacheKeyHOFBadges, s.repo.BadgeCounts)
	if err != nil {
		return nil, err
	}
	return &DataResponse[[]repository.NameCount]{Data: orEmpty(badges)}, nil
}

func (s *HOFService) Tags(ctx context.Context) (*DataResponse[[]string], error) {
	tags, err := GetOrSet(ctx, s.cache, cacheKeyHOFTags, s.repo.TagSlugs)
	if err != nil {
		return nil, err
	}
	return &DataResponse[[]string]{Data: orEmpty(tags)}, nil
}

func orEmpty[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

func badgeNames(badges []model.Badge) []string {
	out := make([]string, 0, len(badges))
	for _, b := range badges {
		out = append(out, b.Name)
	}
	return out
}

func tagSlugs(tags []model.Tag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.Slug)
	}
	return out
}

func toHOFIdeas(ideas []model.Idea) []repository.HOFIdea {
	out := make([]repository.HOFIdea, 0, len(ideas))
	for _, i := range ideas {
		out = append(out, repository.HOFIdea{
			ID:             i.ID,
			Title:          i.Title,
			Summary:        i.Summary,
			SubmissionDate: i.SubmissionDate,
		})
	}
	return out
}

func toHOFAwards(awards []model.Award) []repository.HOFAward {
	out := make([]repository.HOFAward, 0, len(awards))
	for _, a := range awards {
		out = append(out, repository.HOFAward{
			ID:       a.ID,
			Name:     a.Name,
			Category: a.Category,
			Year:     a.Year,
			Level:    a.Level,
		})
	}
	return out
}
