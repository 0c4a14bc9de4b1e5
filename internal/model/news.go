// internal/model/news.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type CoverKind string

const (
	CoverImage CoverKind = "image"
	CoverVideo CoverKind = "video"
)

// NewsItem is a draft while PublishedAt is nil.
type NewsItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Slug        string     `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	Title       string     `gorm:"type:varchar(180);not null" json:"title"`
	Summary     string     `gorm:"type:varchar(280);not null" json:"summary"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`
	Category    *string    `gorm:"type:varchar(80);index" json:"category,omitempty"`
	CoverKind   *CoverKind `gorm:"type:varchar(8)" json:"cover_kind,omitempty"`
	CoverURL    *string    `gorm:"type:text" json:"cover_url,omitempty"`
	IsFeatured  bool       `gorm:"not null;default:false" json:"is_featured"`
	Tags        []NewsTag  `gorm:"many2many:news_item_tags" json:"tags,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type NewsTag struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"name"`
}
