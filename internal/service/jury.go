// internal/service/jury.go
package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/dangerclosesec/thinknest/internal/repository"
	"github.com/dangerclosesec/thinknest/internal/validation"
	"github.com/google/uuid"
)

type JuryCard struct {
	ID              uuid.UUID      `json:"id"`
	Name            string         `json:"name"`
	ProfilePhotoURL *string        `json:"profilePhotoUrl"`
	Designation     string         `json:"designation"`
	Organization    string         `json:"organization"`
	Department      string         `json:"department"`
	Expertise       []string       `json:"expertise"`
	Role            model.JuryRole `json:"role"`
	Year            int            `json:"year"`
}

type JuryAssignmentView struct {
	Year int            `json:"year"`
	Role model.JuryRole `json:"role"`
}

type JuryDetail struct {
	JuryCard
	Bio         *string              `json:"bio"`
	Assignments []JuryAssignmentView `json:"assignments"`
}

type JuryYearGroup struct {
	Year    int        `json:"year"`
	Count   int        `json:"count"`
	Members []JuryCard `json:"members"`
}

type JuryAssignmentInput struct {
	Year int    `json:"year" validate:"required,min=1900,max=3000"`
	Role string `json:"role" validate:"omitempty,oneof=chair co-chair member advisor"`
}

// JuryCreateInput is the seed format for one jury member.
type JuryCreateInput struct {
	FullName        string                `json:"fullName" validate:"required,min=2,max=200"`
	ProfilePhotoURL *string               `json:"profilePhotoUrl" validate:"omitempty,url"`
	Designation     string                `json:"designation" validate:"required,max=120"`
	Organization    string                `json:"organization" validate:"required,max=160"`
	Department      string                `json:"department" validate:"required,max=100"`
	Bio             *string               `json:"bio"`
	Expertise       []string              `json:"expertise" validate:"dive,max=80"`
	Assignments     []JuryAssignmentInput `json:"assignments" validate:"required,min=1,dive"`
}

type JuryService struct {
	repo     repository.JuryRepositoryIface
	validate *validation.Validator
	cache    *CacheService
	logger   *slog.Logger
}

func NewJuryService(repo repository.JuryRepositoryIface, validate *validation.Validator, cache *CacheService, logger *slog.Logger) *JuryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JuryService{repo: repo, validate: validate, cache: cache, logger: logger}
}

// List returns one card per member and assignment year.
func (s *JuryService) List(ctx context.Context, q repository.JuryQuery) (*ListResponse[JuryCard], error) {
	if err := s.validate.Struct(q); err != nil {
		return nil, err
	}
	q.Pagination = q.Pagination.Clamped()
	q.Unpaged = false

	rows, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	data := make([]JuryCard, 0, len(rows))
	for i := range rows {
		data = append(data, toJuryCard(&rows[i]))
	}
	return newList(q.Pagination, total, data), nil
}

// Grouped returns every matching card bucketed by year, newest year first. Within a year the
// requested sort order is kept. Pagination is ignored.
func (s *JuryService) Grouped(ctx context.Context, q repository.JuryQuery) (*DataResponse[[]JuryYearGroup], error) {
	q.Pagination = q.Pagination.Clamped()
	if err := s.validate.Struct(q); err != nil {
		return nil, err
	}
	q.Unpaged = true

	rows, _, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}

	byYear := make(map[int]*JuryYearGroup)
	for i := range rows {
		g, ok := byYear[rows[i].Year]
		if !ok {
			g = &JuryYearGroup{Year: rows[i].Year, Members: []JuryCard{}}
			byYear[rows[i].Year] = g
		}
		g.Members = append(g.Members, toJuryCard(&rows[i]))
		g.Count++
	}

	groups := make([]JuryYearGroup, 0, len(byYear))
	for _, g := range byYear {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Year > groups[j].Year })
	return &DataResponse[[]JuryYearGroup]{Data: groups}, nil
}

func (s *JuryService) Years(ctx context.Context) (*DataResponse[[]repository.YearCount], error) {
	years, err := GetOrSet(ctx, s.cache, cacheKeyJuryYears, s.repo.Years)
	if err != nil {
		return nil, err
	}
	if years == nil {
		years = []repository.YearCount{}
	}
	return &DataResponse[[]repository.YearCount]{Data: years}, nil
}

func (s *JuryService) Expertises(ctx context.Context) (*DataResponse[[]string], error) {
	names, err := GetOrSet(ctx, s.cache, cacheKeyJuryExpertises, s.repo.Expertises)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return &DataResponse[[]string]{Data: names}, nil
}

// Get returns the member with every assignment. The card year and role are the latest
// assignment's.
func (s *JuryService) Get(ctx context.Context, id uuid.UUID) (*JuryDetail, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toJuryDetail(member), nil
}

// Create inserts a member with assignments, linking expertise by name.
func (s *JuryService) Create(ctx context.Context, in JuryCreateInput) (*JuryDetail, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	expertise, err := s.repo.ResolveExpertise(ctx, NormalizeTags(in.Expertise))
	if err != nil {
		return nil, err
	}

	member := &model.JuryMember{
		FullName:        in.FullName,
		ProfilePhotoURL: in.ProfilePhotoURL,
		Designation:     in.Designation,
		Organization:    in.Organization,
		Department:      in.Department,
		Bio:             in.Bio,
		Expertise:       expertise,
	}
	for _, a := range in.Assignments {
		role := model.JuryRole(a.Role)
		if role == "" {
			role = model.JuryRoleMember
		}
		member.Assignments = append(member.Assignments, model.JuryAssignment{Year: a.Year, Role: role})
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	if err := s.cache.Delete(ctx, cacheKeyJuryYears, cacheKeyJuryExpertises); err != nil {
		s.logger.WarnContext(ctx, "cache invalidation failed", "error", err)
	}
	return toJuryDetail(member), nil
}

func toJuryCard(r *repository.JuryRow) JuryCard {
	expertise := []string(r.Expertise)
	if expertise == nil {
		expertise = []string{}
	}
	return JuryCard{
		ID:              r.ID,
		Name:            r.FullName,
		ProfilePhotoURL: r.ProfilePhotoURL,
		Designation:     r.Designation,
		Organization:    r.Organization,
		Department:      r.Department,
		Expertise:       expertise,
		Role:            r.Role,
		Year:            r.Year,
	}
}

func toJuryDetail(m *model.JuryMember) *JuryDetail {
	names := make([]string, 0, len(m.Expertise))
	for _, e := range m.Expertise {
		names = append(names, e.Name)
	}
	sort.Strings(names)

	assignments := make([]JuryAssignmentView, 0, len(m.Assignments))
	for _, a := range m.Assignments {
		assignments = append(assignments, JuryAssignmentView{Year: a.Year, Role: a.Role})
	}
	sort.SliceStable(assignments, func(i, j int) bool { return assignments[i].Year > assignments[j].Year })

	detail := &JuryDetail{
		JuryCard: JuryCard{
			ID:              m.ID,
			Name:            m.FullName,
			ProfilePhotoURL: m.ProfilePhotoURL,
			Designation:     m.Designation,
			Organization:    m.Organization,
			Department:      m.Department,
			Expertise:       names,
		},
		Bio:         m.Bio,
		Assignments: assignments,
	}
	if len(assignments) > 0 {
		detail.Year = assignments[0].Year
		detail.Role = assignments[0].Role
	}
	return detail
}
