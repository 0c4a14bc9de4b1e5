// internal/model/case_study.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type CaseStudy struct {
	ID                    uuid.UUID              `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Slug                  string                 `gorm:"type:varchar(200);uniqueIndex;not null" json:"slug"`
	Title                 string                 `gorm:"type:varchar(250);not null" json:"title"`
	Department            *string                `gorm:"type:varchar(150)" json:"department,omitempty"`
	YearOfImplementation  *int                   `json:"year_of_implementation,omitempty"`
	ImpactType            *string                `gorm:"type:varchar(100)" json:"impact_type,omitempty"`
	Summary               *string                `gorm:"type:text" json:"summary,omitempty"`
	ProblemStatement      *string                `gorm:"type:text" json:"problem_statement,omitempty"`
	IdeaDescription       *string                `gorm:"type:text" json:"idea_description,omitempty"`
	ImplementationJourney *string                `gorm:"type:text" json:"implementation_journey,omitempty"`
	IsFeatured            bool                   `gorm:"not null;default:false" json:"is_featured"`
	ThumbnailID           *uuid.UUID             `gorm:"type:uuid" json:"thumbnail_id,omitempty"`
	Thumbnail             *MediaAsset            `gorm:"foreignKey:ThumbnailID" json:"thumbnail,omitempty"`
	Media                 []MediaAsset           `gorm:"many2many:case_study_media_assets" json:"media,omitempty"`
	Tags                  []CaseStudyTag         `gorm:"many2many:case_study_tags_join" json:"tags,omitempty"`
	Metrics               []CaseStudyMetric      `gorm:"constraint:OnDelete:CASCADE" json:"metrics,omitempty"`
	Timeline              []CaseStudyTimeline    `gorm:"constraint:OnDelete:CASCADE" json:"timeline,omitempty"`
	Testimonials          []CaseStudyTestimonial `gorm:"constraint:OnDelete:CASCADE" json:"testimonials,omitempty"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
}

func (CaseStudy) TableName() string {
	return "case_studies"
}

type CaseStudyTag struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

type CaseStudyMetric struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CaseStudyID uuid.UUID `gorm:"type:uuid;not null;index" json:"case_study_id"`
	KPI         string    `gorm:"column:kpi;type:varchar(120);not null" json:"kpi"`
	Value       *string   `gorm:"type:varchar(120)" json:"value,omitempty"`
	Note        *string   `gorm:"type:text" json:"note,omitempty"`
}

type CaseStudyTimeline struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CaseStudyID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"case_study_id"`
	OrderIndex    int        `gorm:"not null" json:"order_index"`
	Title         string     `gorm:"type:varchar(200);not null" json:"title"`
	Description   *string    `gorm:"type:text" json:"description,omitempty"`
	TeamsInvolved *string    `gorm:"type:varchar(120)" json:"teams_involved,omitempty"`
	ToolsUsed     *string    `gorm:"type:varchar(200)" json:"tools_used,omitempty"`
	Date          *time.Time `gorm:"type:date" json:"date,omitempty"`
}

func (CaseStudyTimeline) TableName() string {
	return "case_study_timeline_steps"
}

type CaseStudyTestimonial struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CaseStudyID  uuid.UUID `gorm:"type:uuid;not null;index" json:"case_study_id"`
	Stakeholder  string    `gorm:"type:varchar(120);not null" json:"stakeholder"`
	Organization *string   `gorm:"type:varchar(150)" json:"organization,omitempty"`
	Quote        string    `gorm:"type:text;not null" json:"quote"`
}
