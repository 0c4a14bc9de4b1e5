// internal/repository/hof.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	HOFSortNameAsc         = "name_asc"
	HOFSortNameDesc        = "name_desc"
	HOFSortAwardsDesc      = "awards_desc"
	HOFSortIdeasDesc       = "ideas_desc"
	HOFSortRecentAwardDesc = "recent_award_desc"

	YearFieldAward = "award"
	YearFieldIdea  = "idea"
)

// Owner selects which side of the Hall-of-Fame a query reads: innovators or teams.
type Owner int

const (
	OwnerInnovator Owner = iota
	OwnerTeam
)

// ownerSQL holds the join fragments that differ between innovators and teams.
type ownerSQL struct {
	table      string
	alias      string
	ideas      string // yields owner_id and i.* for ideas of the owner
	awards     string // yields owner_id and a.* for awards of the owner
	badges     string // yields owner_id and b.name
	tags       string // yields owner_id and tg.slug
	membersCnt string
}

var owners = map[Owner]ownerSQL{
	OwnerInnovator: {
		table:  "innovators",
		alias:  "inv",
		ideas:  "idea_contributors ic JOIN ideas i ON i.id = ic.idea_id",
		awards: "award_innovators ai JOIN awards a ON a.id = ai.award_id",
		badges: "innovator_badges ob JOIN badges b ON b.id = ob.badge_id",
		tags:   "innovator_tags ot JOIN tags tg ON tg.id = ot.tag_id",
	},
	OwnerTeam: {
		table:      "teams",
		alias:      "tm",
		ideas:      "ideas i",
		awards:     "award_teams ai JOIN awards a ON a.id = ai.award_id",
		badges:     "team_badges ob JOIN badges b ON b.id = ob.badge_id",
		tags:       "team_tags ot JOIN tags tg ON tg.id = ot.tag_id",
		membersCnt: "(SELECT COUNT(*) FROM team_members x WHERE x.team_id = tm.id)",
	},
}

func (o Owner) sql() ownerSQL {
	return owners[o]
}

// ideaOwner is the column linking an idea row back to its owner.
func (o Owner) ideaOwner() string {
	if o == OwnerTeam {
		return "i.team_id"
	}
	return "ic.innovator_id"
}

func (o Owner) awardOwner() string {
	if o == OwnerTeam {
		return "ai.team_id"
	}
	return "ai.innovator_id"
}

func (o Owner) linkOwner() string {
	if o == OwnerTeam {
		return "team_id"
	}
	return "innovator_id"
}

type HOFQuery struct {
	Pagination
	Tag        string   `json:"tag" validate:"max=100"`
	Tags       []string `json:"tags" validate:"dive,max=100"`
	Year       *int     `json:"year" validate:"omitempty,min=1900,max=3000"`
	YearField  string   `json:"yearField" validate:"omitempty,oneof=award idea"`
	Department string   `json:"department" validate:"max=120"`
	Badge      string   `json:"badge" validate:"max=100"`
	Search     string   `json:"search" validate:"max=200"`
	HasAwards  bool
	Sort       string
}

// HOFRow is one listed innovator or team with its aggregate counts.
type HOFRow struct {
	ID              uuid.UUID
	Name            string
	PhotoURL        *string
	Department      *string
	Description     *string
	IdeasCount      int64
	AwardsCount     int64
	MembersCount    int64
	RecentAwardYear *int
}

type HOFIdea struct {
	OwnerID        uuid.UUID  `json:"-"`
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Summary        *string    `json:"summary"`
	SubmissionDate *time.Time `json:"submissionDate"`
}

type HOFAward struct {
	OwnerID  uuid.UUID        `json:"-"`
	ID       uuid.UUID        `json:"id"`
	Name     string           `json:"name"`
	Category *string          `json:"category"`
	Year     int              `json:"year"`
	Level    model.AwardLevel `json:"level"`
}

type HOFMember struct {
	OwnerID    uuid.UUID `json:"-"`
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PhotoURL   *string   `json:"photoUrl"`
	Department string    `json:"department"`
}

type NameCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type HOFRepositoryIface interface {
	List(ctx context.Context, owner Owner, q HOFQuery) ([]HOFRow, int64, error)
	Badges(ctx context.Context, owner Owner, ids []uuid.UUID) (map[uuid.UUID][]string, error)
	Ideas(ctx context.Context, owner Owner, ids []uuid.UUID, limit int) (map[uuid.UUID][]HOFIdea, error)
	Awards(ctx context.Context, owner Owner, ids []uuid.UUID, limit int) (map[uuid.UUID][]HOFAward, error)
	Members(ctx context.Context, teamIDs []uuid.UUID, limit int) (map[uuid.UUID][]HOFMember, error)
	FindInnovator(ctx context.Context, id uuid.UUID) (*model.Innovator, error)
	FindTeam(ctx context.Context, id uuid.UUID) (*model.Team, error)
	AwardYears(ctx context.Context) ([]YearCount, error)
	BadgeCounts(ctx context.Context) ([]NameCount, error)
	TagSlugs(ctx context.Context) ([]string, error)
}

type HOFRepository struct {
	db *gorm.DB
}

func NewHOFRepository(db *gorm.DB) *HOFRepository {
	return &HOFRepository{db: db}
}

func hofFilters(owner Owner, q HOFQuery) func(*gorm.DB) *gorm.DB {
	o := owner.sql()
	id := o.alias + ".id"

	return func(db *gorm.DB) *gorm.DB {
		db = db.Table(o.table + " AS " + o.alias)

		if q.Department != "" {
			if owner == OwnerTeam {
				db = db.Where(`EXISTS (
					SELECT 1 FROM team_members x JOIN innovators m ON m.id = x.innovator_id
					WHERE x.team_id = tm.id AND m.department ILIKE ?)`, contains(q.Department))
			} else {
				db = db.Where("inv.department ILIKE ?", contains(q.Department))
			}
		}
		if q.Search != "" {
			term := contains(q.Search)
			if owner == OwnerTeam {
				db = db.Where("(tm.name ILIKE ? OR EXISTS (SELECT 1 FROM ideas i WHERE i.team_id = tm.id AND i.title ILIKE ?))", term, term)
			} else {
				db = db.Where("(inv.full_name ILIKE ? OR inv.department ILIKE ?)", term, term)
			}
		}
		if q.Badge != "" {
			db = db.Where(fmt.Sprintf("EXISTS (SELECT 1 FROM %s WHERE ob.%s = %s AND b.name = ?)", o.badges, owner.linkOwner(), id), q.Badge)
		}
		// tag and tags are separate predicates: both must hold.
		if q.Tag != "" {
			db = db.Where(fmt.Sprintf("EXISTS (SELECT 1 FROM %s WHERE ot.%s = %s AND tg.slug = ?)", o.tags, owner.linkOwner(), id), q.Tag)
		}
		if len(q.Tags) > 0 {
			db = db.Where(fmt.Sprintf("EXISTS (SELECT 1 FROM %s WHERE ot.%s = %s AND tg.slug IN ?)", o.tags, owner.linkOwner(), id), q.Tags)
		}
		if q.Year != nil {
			if q.YearField == YearFieldIdea {
				db = db.Where(fmt.Sprintf("EXISTS (SELECT 1 FROM %s WHERE %s = %s AND EXTRACT(YEAR FROM i.submission_date) = ?)", o.ideas, owner.ideaOwner(), id), *q.Year)
			} else {
				db = db.Where(fmt.Sprintf("EXISTS (SELECT 1 FROM %s WHERE %s = %s AND a.year = ?)", o.awards, owner.awardOwner(), id), *q.Year)
			}
		}
		if q.HasAwards {
			db = db.Where(fmt.Sprintf("EXISTS (SELECT 1 FROM %s WHERE %s = %s)", o.awards, owner.awardOwner(), id))
		}
		return db
	}
}

func hofOrder(owner Owner, sort string) string {
	name := "inv.full_name"
	if owner == OwnerTeam {
		name = "tm.name"
	}
	switch sort {
	case HOFSortNameDesc:
		return name + " DESC"
	case HOFSortAwardsDesc:
		return "awards_count DESC, recent_award_year DESC NULLS LAST, " + name + " ASC"
	case HOFSortIdeasDesc:
		return "ideas_count DESC, " + name + " ASC"
	case HOFSortRecentAwardDesc:
		return "recent_award_year DESC NULLS LAST, awards_count DESC, " + name + " ASC"
	default:
		return name + " ASC"
	}
}

func hofColumns(owner Owner) string {
	o := owner.sql()
	id := o.alias + ".id"
	aggregates := fmt.Sprintf(`
		(SELECT COUNT(DISTINCT i.id) FROM %[1]s WHERE %[2]s = %[5]s) AS ideas_count,
		(SELECT COUNT(DISTINCT a.id) FROM %[3]s WHERE %[4]s = %[5]s) AS awards_count,
		(SELECT MAX(a.year) FROM %[3]s WHERE %[4]s = %[5]s) AS recent_award_year`,
		o.ideas, owner.ideaOwner(), o.awards, owner.awardOwner(), id)

	if owner == OwnerTeam {
		return "tm.id, tm.name, tm.description, " + o.membersCnt + " AS members_count," + aggregates
	}
	return "inv.id, inv.full_name AS name, inv.photo_url, inv.department," + aggregates
}

// List returns one page of innovators or teams. The total is a COUNT(DISTINCT id) over the same filters.
func (r *HOFRepository) List(ctx context.Context, owner Owner, q HOFQuery) ([]HOFRow, int64, error) {
	o := owner.sql()

	var total int64
	err := r.db.WithContext(ctx).
		Scopes(hofFilters(owner, q)).
		Distinct(o.alias + ".id").
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", o.table, err)
	}

	var rows []HOFRow
	err = r.db.WithContext(ctx).
		Scopes(hofFilters(owner, q), paginate(q.Pagination)).
		Select(hofColumns(owner)).
		Order(hofOrder(owner, q.Sort)).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", o.table, err)
	}
	return rows, total, nil
}

type badgeAgg struct {
	OwnerID uuid.UUID
	Names   pq.StringArray `gorm:"type:text[]"`
}

// Badges returns the badge names of every owner, sorted by name.
func (r *HOFRepository) Badges(ctx context.Context, owner Owner, ids []uuid.UUID) (map[uuid.UUID][]string, error) {
	out := make(map[uuid.UUID][]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	o := owner.sql()
	col := "ob." + owner.linkOwner()
	var rows []badgeAgg
	err := r.db.WithContext(ctx).
		Raw(fmt.Sprintf(`SELECT %[2]s AS owner_id, array_agg(b.name ORDER BY b.name) AS names
			FROM %[1]s WHERE %[2]s IN ? GROUP BY %[2]s`, o.badges, col), ids).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load badges: %w", err)
	}
	for _, row := range rows {
		out[row.OwnerID] = []string(row.Names)
	}
	return out, nil
}

// Ideas returns up to limit ideas per owner, newest submission first.
func (r *HOFRepository) Ideas(ctx context.Context, owner Owner, ids []uuid.UUID, limit int) (map[uuid.UUID][]HOFIdea, error) {
	out := make(map[uuid.UUID][]HOFIdea, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	o := owner.sql()
	var rows []HOFIdea
	err := r.db.WithContext(ctx).
		Raw(fmt.Sprintf(`SELECT owner_id, id, title, summary, submission_date FROM (
				SELECT %[2]s AS owner_id, i.id, i.title, i.summary, i.submission_date,
					ROW_NUMBER() OVER (PARTITION BY %[2]s ORDER BY i.submission_date DESC NULLS LAST, i.title ASC) AS rn
				FROM %[1]s WHERE %[2]s IN ?
			) ranked WHERE rn <= ? ORDER BY owner_id, rn`, o.ideas, owner.ideaOwner()), ids, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ideas: %w", err)
	}
	for _, row := range rows {
		out[row.OwnerID] = append(out[row.OwnerID], row)
	}
	return out, nil
}

// Awards returns up to limit awards per owner by year descending, then level.
func (r *HOFRepository) Awards(ctx context.Context, owner Owner, ids []uuid.UUID, limit int) (map[uuid.UUID][]HOFAward, error) {
	out := make(map[uuid.UUID][]HOFAward, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	o := owner.sql()
	var rows []HOFAward
	err := r.db.WithContext(ctx).
		Raw(fmt.Sprintf(`SELECT owner_id, id, name, category, year, level FROM (
				SELECT %[2]s AS owner_id, a.id, a.name, a.category, a.year, a.level,
					ROW_NUMBER() OVER (PARTITION BY %[2]s ORDER BY a.year DESC, a.level ASC) AS rn
				FROM %[1]s WHERE %[2]s IN ?
			) ranked WHERE rn <= ? ORDER BY owner_id, rn`, o.awards, owner.awardOwner()), ids, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load awards: %w", err)
	}
	for _, row := range rows {
		out[row.OwnerID] = append(out[row.OwnerID], row)
	}
	return out, nil
}

// Members returns up to limit members per team ordered by name.
func (r *HOFRepository) Members(ctx context.Context, teamIDs []uuid.UUID, limit int) (map[uuid.UUID][]HOFMember, error) {
	out := make(map[uuid.UUID][]HOFMember, len(teamIDs))
	if len(teamIDs) == 0 {
		return out, nil
	}

	var rows []HOFMember
	err := r.db.WithContext(ctx).
		Raw(`SELECT owner_id, id, name, photo_url, department FROM (
				SELECT x.team_id AS owner_id, m.id, m.full_name AS name, m.photo_url, m.department,
					ROW_NUMBER() OVER (PARTITION BY x.team_id ORDER BY m.full_name ASC) AS rn
				FROM team_members x JOIN innovators m ON m.id = x.innovator_id
				WHERE x.team_id IN ?
			) ranked WHERE rn <= ? ORDER BY owner_id, rn`, teamIDs, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	for _, row := range rows {
		out[row.OwnerID] = append(out[row.OwnerID], row)
	}
	return out, nil
}

func orderIdeas(db *gorm.DB) *gorm.DB {
	return db.Order("ideas.submission_date DESC NULLS LAST").Order("ideas.title ASC")
}

func orderAwards(db *gorm.DB) *gorm.DB {
	return db.Order("awards.year DESC").Order("awards.level ASC")
}

func orderBadges(db *gorm.DB) *gorm.DB {
	return db.Order("badges.name ASC")
}

func orderTags(db *gorm.DB) *gorm.DB {
	return db.Order("tags.slug ASC")
}

func (r *HOFRepository) FindInnovator(ctx context.Context, id uuid.UUID) (*model.Innovator, error) {
	var inv model.Innovator
	err := r.db.WithContext(ctx).
		Preload("Badges", orderBadges).
		Preload("Tags", orderTags).
		Preload("Ideas", orderIdeas).
		Preload("Awards", orderAwards).
		Preload("Teams", func(db *gorm.DB) *gorm.DB { return db.Order("teams.name ASC") }).
		First(&inv, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "find innovator")
	}
	return &inv, nil
}

func (r *HOFRepository) FindTeam(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Preload("Badges", orderBadges).
		Preload("Tags", orderTags).
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("innovators.full_name ASC") }).
		Preload("Ideas", orderIdeas).
		Preload("Awards", orderAwards).
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "find team")
	}
	return &team, nil
}

// AwardYears counts awards per year, newest first.
func (r *HOFRepository) AwardYears(ctx context.Context) ([]YearCount, error) {
	var years []YearCount
	err := r.db.WithContext(ctx).
		Model(&model.Award{}).
		Select("year, COUNT(*) AS count").
		Group("year").
		Order("year DESC").
		Scan(&years).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count award years: %w", err)
	}
	return years, nil
}

// BadgeCounts counts distinct innovators holding each badge.
func (r *HOFRepository) BadgeCounts(ctx context.Context) ([]NameCount, error) {
	var badges []NameCount
	err := r.db.WithContext(ctx).
		Table("badges AS b").
		Select("b.name, COUNT(DISTINCT ib.innovator_id) AS count").
		Joins("LEFT JOIN innovator_badges ib ON ib.badge_id = b.id").
		Where("b.name IS NOT NULL").
		Group("b.name").
		Order("b.name ASC").
		Scan(&badges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count badges: %w", err)
	}
	return badges, nil
}

func (r *HOFRepository) TagSlugs(ctx context.Context) ([]string, error) {
	var slugs []string
	if err := r.db.WithContext(ctx).Model(&model.Tag{}).Order("slug ASC").Pluck("slug", &slugs).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return slugs, nil
}
