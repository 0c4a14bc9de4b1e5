// internal/model/media.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MediaKind string

const (
	MediaImage   MediaKind = "image"
	MediaVideo   MediaKind = "video"
	MediaYouTube MediaKind = "youtube"
)

type MediaItem struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Kind        MediaKind          `gorm:"type:varchar(16);not null;index" json:"kind"`
	Slug        string             `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	Title       string             `gorm:"type:varchar(200);not null" json:"title"`
	Description *string            `gorm:"type:text" json:"description,omitempty"`
	URL         *string            `gorm:"type:text" json:"url,omitempty"`
	Provider    *string            `gorm:"type:varchar(40)" json:"provider,omitempty"`
	ProviderID  *string            `gorm:"type:varchar(120)" json:"provider_id,omitempty"`
	Width       *int               `json:"width,omitempty"`
	Height      *int               `json:"height,omitempty"`
	Format      *string            `gorm:"type:varchar(100)" json:"format,omitempty"`
	Duration    *string            `gorm:"type:varchar(16)" json:"duration,omitempty"`
	Event       *string            `gorm:"type:varchar(160);index" json:"event,omitempty"`
	Tags        CommaList          `gorm:"type:text" json:"tags"`
	IsFeatured  bool               `gorm:"not null;default:false" json:"is_featured"`
	PublishedAt *time.Time         `gorm:"index" json:"published_at,omitempty"`
	Blurhash    *string            `gorm:"type:varchar(64)" json:"blurhash,omitempty"`
	Meta        *datatypes.JSONMap `gorm:"type:jsonb" json:"meta,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// Story is a long-form post with a thumbnail and a gallery of media items.
type Story struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Slug        string      `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	Title       string      `gorm:"type:varchar(200);not null" json:"title"`
	Summary     *string     `gorm:"type:text" json:"summary,omitempty"`
	Body        *string     `gorm:"type:text" json:"body,omitempty"`
	Tags        CommaList   `gorm:"type:text" json:"tags"`
	IsFeatured  bool        `gorm:"not null;default:false" json:"is_featured"`
	PublishedAt *time.Time  `gorm:"index" json:"published_at,omitempty"`
	ThumbnailID *uuid.UUID  `gorm:"type:uuid" json:"thumbnail_id,omitempty"`
	Thumbnail   *MediaItem  `gorm:"foreignKey:ThumbnailID" json:"thumbnail,omitempty"`
	Gallery     []MediaItem `gorm:"many2many:story_media_items" json:"gallery,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
