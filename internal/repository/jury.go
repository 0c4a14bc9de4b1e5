// internal/repository/jury.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	JurySortNameAsc        = "name_asc"
	JurySortNameDesc       = "name_desc"
	JurySortDepartmentAsc  = "department_asc"
	JurySortDepartmentDesc = "department_desc"
	JurySortRoleAsc        = "role_asc"
	JurySortRoleDesc       = "role_desc"
)

type JuryQuery struct {
	Pagination
	Years      []int  `json:"years" validate:"dive,min=1900,max=3000"`
	Search     string `json:"search" validate:"max=200"`
	Department string `json:"department" validate:"max=100"`
	Expertise  string `json:"expertise" validate:"max=80"`
	Role       string `json:"role" validate:"omitempty,oneof=chair co-chair member advisor"`
	Sort       string
	// Unpaged returns every matching row, used by the grouped view.
	Unpaged bool
}

// JuryRow is one member in one assignment year.
type JuryRow struct {
	ID              uuid.UUID
	FullName        string
	ProfilePhotoURL *string
	Designation     string
	Organization    string
	Department      string
	Year            int
	Role            model.JuryRole
	Expertise       pq.StringArray `gorm:"type:text[]"`
}

type YearCount struct {
	Year  int   `json:"year"`
	Count int64 `json:"count"`
}

type JuryRepositoryIface interface {
	List(ctx context.Context, q JuryQuery) ([]JuryRow, int64, error)
	Years(ctx context.Context) ([]YearCount, error)
	Expertises(ctx context.Context) ([]string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.JuryMember, error)
	ResolveExpertise(ctx context.Context, names []string) ([]model.Expertise, error)
	Create(ctx context.Context, member *model.JuryMember) error
}

type JuryRepository struct {
	db *gorm.DB
}

func NewJuryRepository(db *gorm.DB) *JuryRepository {
	return &JuryRepository{db: db}
}

func juryFilters(q JuryQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Table("jury_assignments AS ja").Joins("JOIN jury_members jm ON jm.id = ja.member_id")
		if len(q.Years) > 0 {
			db = db.Where("ja.year IN ?", q.Years)
		}
		if q.Role != "" {
			db = db.Where("ja.role = ?", q.Role)
		}
		if q.Search != "" {
			term := contains(q.Search)
			db = db.Where("(jm.full_name ILIKE ? OR jm.department ILIKE ?)", term, term)
		}
		if q.Department != "" {
			db = db.Where("jm.department ILIKE ?", contains(q.Department))
		}
		if q.Expertise != "" {
			db = db.Where(`EXISTS (
				SELECT 1 FROM member_expertises me
				JOIN expertises e ON e.id = me.expertise_id
				WHERE me.member_id = jm.id AND e.name = ?)`, q.Expertise)
		}
		return db
	}
}

func juryOrder(sort string) string {
	switch sort {
	case JurySortNameDesc:
		return "jm.full_name DESC, ja.year DESC"
	case JurySortDepartmentAsc:
		return "jm.department ASC, jm.full_name ASC, ja.year DESC"
	case JurySortDepartmentDesc:
		return "jm.department DESC, jm.full_name ASC, ja.year DESC"
	case JurySortRoleAsc:
		return "ja.role ASC, jm.full_name ASC, ja.year DESC"
	case JurySortRoleDesc:
		return "ja.role DESC, jm.full_name ASC, ja.year DESC"
	default:
		return "jm.full_name ASC, ja.year DESC"
	}
}

func (r *JuryRepository) List(ctx context.Context, q JuryQuery) ([]JuryRow, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Scopes(juryFilters(q)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count jury assignments: %w", err)
	}

	query := r.db.WithContext(ctx).
		Scopes(juryFilters(q)).
		Select(`jm.id, jm.full_name, jm.profile_photo_url, jm.designation, jm.organization, jm.department,
			ja.year, ja.role,
			COALESCE(
				(SELECT array_agg(DISTINCT e.name ORDER BY e.name)
				 FROM member_expertises me JOIN expertises e ON e.id = me.expertise_id
				 WHERE me.member_id = jm.id),
				'{}') AS expertise`).
		Order(juryOrder(q.Sort))
	if !q.Unpaged {
		query = query.Scopes(paginate(q.Pagination))
	}

	var rows []JuryRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list jury assignments: %w", err)
	}
	return rows, total, nil
}

// Years counts distinct members per assignment year, newest first.
func (r *JuryRepository) Years(ctx context.Context) ([]YearCount, error) {
	var years []YearCount
	err := r.db.WithContext(ctx).
		Table("jury_assignments").
		Select("year, COUNT(DISTINCT member_id) AS count").
		Group("year").
		Order("year DESC").
		Scan(&years).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count jury years: %w", err)
	}
	return years, nil
}

func (r *JuryRepository) Expertises(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&model.Expertise{}).Order("name ASC").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list expertises: %w", err)
	}
	return names, nil
}

func (r *JuryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.JuryMember, error) {
	var member model.JuryMember
	err := r.db.WithContext(ctx).
		Preload("Expertise", func(db *gorm.DB) *gorm.DB { return db.Order("expertises.name ASC") }).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB { return db.Order("jury_assignments.year DESC") }).
		First(&member, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "find jury member")
	}
	return &member, nil
}

func (r *JuryRepository) ResolveExpertise(ctx context.Context, names []string) ([]model.Expertise, error) {
	return findOrCreateByName(ctx, r.db, "name", names,
		func(n string) model.Expertise { return model.Expertise{Name: n} },
		func(e model.Expertise) string { return e.Name },
	)
}

// Create inserts the member with its assignments and links the already resolved expertise.
func (r *JuryRepository) Create(ctx context.Context, member *model.JuryMember) error {
	err := r.db.WithContext(ctx).Omit("Expertise.*").Create(member).Error
	return translate(err, "create jury member")
}
