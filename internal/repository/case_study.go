// internal/repository/case_study.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/thinknest/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CaseStudyQuery struct {
	Pagination
	Search     string `json:"q" validate:"max=200"`
	Department string `json:"department" validate:"max=150"`
	Year       *int   `json:"year" validate:"omitempty,min=1900,max=3000"`
	ImpactType string `json:"impactType" validate:"max=100"`
	Tag        string `json:"tag" validate:"max=100"`
	Featured   *bool
}

// CaseStudyFilterMeta lists the distinct values the listing can be filtered on.
type CaseStudyFilterMeta struct {
	Departments []string `json:"departments"`
	Years       []int    `json:"years"`
	ImpactTypes []string `json:"impactTypes"`
}

// CaseStudyReplace flags which owned collections a save rewrites.
type CaseStudyReplace struct {
	Tags         bool
	Media        bool
	Metrics      bool
	Timeline     bool
	Testimonials bool
}

type CaseStudyRepositoryIface interface {
	List(ctx context.Context, q CaseStudyQuery) ([]model.CaseStudy, int64, error)
	Featured(ctx context.Context, limit int) ([]model.CaseStudy, error)
	FilterMeta(ctx context.Context) (*CaseStudyFilterMeta, error)
	FindOne(ctx context.Context, ref Ref) (*model.CaseStudy, error)
	ResolveTags(ctx context.Context, names []string) ([]model.CaseStudyTag, error)
	FindMediaAssets(ctx context.Context, ids []uuid.UUID) ([]model.MediaAsset, error)
	Save(ctx context.Context, cs *model.CaseStudy, replace CaseStudyReplace) error
}

type CaseStudyRepository struct {
	db *gorm.DB
}

func NewCaseStudyRepository(db *gorm.DB) *CaseStudyRepository {
	return &CaseStudyRepository{db: db}
}

func caseStudyFilters(q CaseStudyQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if q.Search != "" {
			term := contains(q.Search)
			db = db.Where(`(case_studies.title ILIKE ? OR case_studies.summary ILIKE ?
				OR case_studies.problem_statement ILIKE ? OR case_studies.idea_description ILIKE ?)`,
				term, term, term, term)
		}
		if q.Department != "" {
			db = db.Where("case_studies.department = ?", q.Department)
		}
		if q.Year != nil {
			db = db.Where("case_studies.year_of_implementation = ?", *q.Year)
		}
		if q.ImpactType != "" {
			db = db.Where("case_studies.impact_type = ?", q.ImpactType)
		}
		if q.Featured != nil {
			db = db.Where("case_studies.is_featured = ?", *q.Featured)
		}
		if q.Tag != "" {
			db = db.Where(`EXISTS (
				SELECT 1 FROM case_study_tags_join cstj
				JOIN case_study_tags cst ON cst.id = cstj.case_study_tag_id
				WHERE cstj.case_study_id = case_studies.id AND cst.name = ?)`, q.Tag)
		}
		return db
	}
}

func caseStudyCardPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Thumbnail").
		Preload("Media").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("case_study_tags.name ASC") })
}

func (r *CaseStudyRepository) List(ctx context.Context, q CaseStudyQuery) ([]model.CaseStudy, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.CaseStudy{}).Scopes(caseStudyFilters(q)).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count case studies: %w", err)
	}

	var rows []model.CaseStudy
	err := r.db.WithContext(ctx).
		Scopes(caseStudyFilters(q), paginate(q.Pagination), caseStudyCardPreloads).
		Order("case_studies.updated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list case studies: %w", err)
	}
	return rows, total, nil
}

func (r *CaseStudyRepository) Featured(ctx context.Context, limit int) ([]model.CaseStudy, error) {
	var rows []model.CaseStudy
	err := r.db.WithContext(ctx).
		Scopes(caseStudyCardPreloads).
		Where("case_studies.is_featured = ?", true).
		Order("case_studies.updated_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list featured case studies: %w", err)
	}
	return rows, nil
}

func (r *CaseStudyRepository) FilterMeta(ctx context.Context) (*CaseStudyFilterMeta, error) {
	meta := &CaseStudyFilterMeta{Departments: []string{}, Years: []int{}, ImpactTypes: []string{}}
	db := r.db.WithContext(ctx).Model(&model.CaseStudy{})

	if err := db.Session(&gorm.Session{}).Distinct().Where("department IS NOT NULL").
		Order("department ASC").Pluck("department", &meta.Departments).Error; err != nil {
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}
	if err := db.Session(&gorm.Session{}).Distinct().Where("year_of_implementation IS NOT NULL").
		Order("year_of_implementation DESC").Pluck("year_of_implementation", &meta.Years).Error; err != nil {
		return nil, fmt.Errorf("failed to load years: %w", err)
	}
	if err := db.Session(&gorm.Session{}).Distinct().Where("impact_type IS NOT NULL").
		Order("impact_type ASC").Pluck("impact_type", &meta.ImpactTypes).Error; err != nil {
		return nil, fmt.Errorf("failed to load impact types: %w", err)
	}
	return meta, nil
}

func (r *CaseStudyRepository) FindOne(ctx context.Context, ref Ref) (*model.CaseStudy, error) {
	var cs model.CaseStudy
	err := r.db.WithContext(ctx).
		Scopes(ref.scope("case_studies"), caseStudyCardPreloads).
		Preload("Metrics").
		Preload("Timeline", func(db *gorm.DB) *gorm.DB {
			return db.Order("case_study_timeline_steps.order_index ASC")
		}).
		Preload("Testimonials").
		First(&cs).Error
	if err != nil {
		return nil, translate(err, "find case study")
	}
	return &cs, nil
}

func (r *CaseStudyRepository) ResolveTags(ctx context.Context, names []string) ([]model.CaseStudyTag, error) {
	return findOrCreateByName(ctx, r.db, "name", names,
		func(n string) model.CaseStudyTag { return model.CaseStudyTag{Name: n} },
		func(t model.CaseStudyTag) string { return t.Name },
	)
}

// FindMediaAssets returns the assets with the given ids. Unknown ids are skipped.
func (r *CaseStudyRepository) FindMediaAssets(ctx context.Context, ids []uuid.UUID) ([]model.MediaAsset, error) {
	if len(ids) == 0 {
		return []model.MediaAsset{}, nil
	}
	var assets []model.MediaAsset
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to find media assets: %w", err)
	}
	return assets, nil
}

func (r *CaseStudyRepository) Save(ctx context.Context, cs *model.CaseStudy, replace CaseStudyReplace) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveRow(tx, cs); err != nil {
			return err
		}
		if replace.Tags {
			if err := tx.Model(cs).Association("Tags").Replace(cs.Tags); err != nil {
				return fmt.Errorf("failed to replace tags: %w", err)
			}
		}
		if replace.Media {
			if err := tx.Model(cs).Association("Media").Replace(cs.Media); err != nil {
				return fmt.Errorf("failed to replace media: %w", err)
			}
		}
		if replace.Metrics {
			for i := range cs.Metrics {
				cs.Metrics[i].CaseStudyID = cs.ID
			}
			if err := replaceChildren(tx, "case_study_id", cs.ID, cs.Metrics); err != nil {
				return fmt.Errorf("failed to replace metrics: %w", err)
			}
		}
		if replace.Timeline {
			for i := range cs.Timeline {
				cs.Timeline[i].CaseStudyID = cs.ID
			}
			if err := replaceChildren(tx, "case_study_id", cs.ID, cs.Timeline); err != nil {
				return fmt.Errorf("failed to replace timeline: %w", err)
			}
		}
		if replace.Testimonials {
			for i := range cs.Testimonials {
				cs.Testimonials[i].CaseStudyID = cs.ID
			}
			if err := replaceChildren(tx, "case_study_id", cs.ID, cs.Testimonials); err != nil {
				return fmt.Errorf("failed to replace testimonials: %w", err)
			}
		}
		return nil
	})
	return translate(err, "save case study")
}
