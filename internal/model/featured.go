// internal/model/featured.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AssetKind string

const (
	AssetImage AssetKind = "image"
	AssetVideo AssetKind = "video"
	AssetPDF   AssetKind = "pdf"
)

// FeaturedIdea promotes an Idea with presentation metadata. The idea cannot be deleted while featured.
type FeaturedIdea struct {
	ID              uuid.UUID             `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Slug            string                `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	IdeaID          uuid.UUID             `gorm:"type:uuid;not null" json:"idea_id"`
	Idea            *Idea                 `gorm:"constraint:OnDelete:RESTRICT" json:"idea,omitempty"`
	Status          string                `gorm:"type:varchar(64);not null" json:"status"`
	Category        *string               `gorm:"type:varchar(64)" json:"category,omitempty"`
	BusinessUnit    *string               `gorm:"type:varchar(64)" json:"business_unit,omitempty"`
	Year            *int                  `json:"year,omitempty"`
	Domain          *string               `gorm:"type:varchar(64)" json:"domain,omitempty"`
	Challenge       *string               `gorm:"type:varchar(64)" json:"challenge,omitempty"`
	IsVisible       bool                  `gorm:"not null;default:true" json:"is_visible"`
	Description     *string               `gorm:"type:text" json:"description,omitempty"`
	MediaPreviewID  *uuid.UUID            `gorm:"type:uuid" json:"media_preview_id,omitempty"`
	MediaPreview    *MediaAsset           `gorm:"foreignKey:MediaPreviewID" json:"media_preview,omitempty"`
	Media           []MediaAsset          `gorm:"foreignKey:FeaturedIdeaID;constraint:OnDelete:CASCADE" json:"media,omitempty"`
	Testimonials    []FeaturedTestimonial `gorm:"constraint:OnDelete:CASCADE" json:"testimonials,omitempty"`
	Impact          []ImpactRecord        `gorm:"constraint:OnDelete:CASCADE" json:"impact,omitempty"`
	PopularityScore int                   `gorm:"not null;default:0" json:"popularity_score"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// MediaAsset is an image, video or document attached to featured ideas or case studies.
type MediaAsset struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FeaturedIdeaID *uuid.UUID         `gorm:"type:uuid;index" json:"featured_idea_id,omitempty"`
	Kind           AssetKind          `gorm:"type:varchar(8);not null;index" json:"kind"`
	URL            string             `gorm:"type:text;not null" json:"url"`
	Width          *int               `json:"width,omitempty"`
	Height         *int               `json:"height,omitempty"`
	Format         *string            `gorm:"type:varchar(16)" json:"format,omitempty"`
	Duration       *string            `gorm:"type:varchar(16)" json:"duration,omitempty"`
	Blurhash       *string            `gorm:"type:varchar(64)" json:"blurhash,omitempty"`
	Meta           *datatypes.JSONMap `gorm:"type:jsonb" json:"meta,omitempty"`
}

type FeaturedTestimonial struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FeaturedIdeaID uuid.UUID `gorm:"type:uuid;not null;index" json:"featured_idea_id"`
	Author         string    `gorm:"type:varchar(120);not null" json:"author"`
	Role           *string   `gorm:"type:varchar(120)" json:"role,omitempty"`
	Quote          string    `gorm:"type:text;not null" json:"quote"`
}

func (FeaturedTestimonial) TableName() string {
	return "featured_testimonials"
}

type ImpactRecord struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FeaturedIdeaID uuid.UUID `gorm:"type:uuid;not null;index" json:"featured_idea_id"`
	Metric         string    `gorm:"type:varchar(120);not null" json:"metric"`
	Unit           *string   `gorm:"type:varchar(32)" json:"unit,omitempty"`
	Value          *float64  `gorm:"type:numeric" json:"value,omitempty"`
	Details        *string   `gorm:"type:text" json:"details,omitempty"`
}
