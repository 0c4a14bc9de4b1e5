// internal/model/hof.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AwardLevel string

const (
	AwardLevelWinner   AwardLevel = "winner"
	AwardLevelRunnerUp AwardLevel = "runner_up"
	AwardLevelFinalist AwardLevel = "finalist"
)

// Innovator is an individual Hall-of-Fame profile.
type Innovator struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName   string    `gorm:"type:varchar(200);not null;index" json:"full_name"`
	PhotoURL   *string   `gorm:"type:text" json:"photo_url,omitempty"`
	Department string    `gorm:"type:varchar(120);not null;index" json:"department"`
	Bio        *string   `gorm:"type:text" json:"bio,omitempty"`
	Badges     []Badge   `gorm:"many2many:innovator_badges" json:"badges,omitempty"`
	Tags       []Tag     `gorm:"many2many:innovator_tags" json:"tags,omitempty"`
	Ideas      []Idea    `gorm:"many2many:idea_contributors" json:"ideas,omitempty"`
	Awards     []Award   `gorm:"many2many:award_innovators" json:"awards,omitempty"`
	Teams      []Team    `gorm:"many2many:team_members" json:"teams,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Team struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string      `gorm:"type:varchar(160);not null;index" json:"name"`
	Description *string     `gorm:"type:text" json:"description,omitempty"`
	Members     []Innovator `gorm:"many2many:team_members" json:"members,omitempty"`
	Badges      []Badge     `gorm:"many2many:team_badges" json:"badges,omitempty"`
	Tags        []Tag       `gorm:"many2many:team_tags" json:"tags,omitempty"`
	Ideas       []Idea      `gorm:"foreignKey:TeamID" json:"ideas,omitempty"`
	Awards      []Award     `gorm:"many2many:award_teams" json:"awards,omitempty"`
}

type Idea struct {
	ID             uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title          string      `gorm:"type:varchar(200);not null;index" json:"title"`
	Summary        *string     `gorm:"type:text" json:"summary,omitempty"`
	Outcomes       *string     `gorm:"type:text" json:"outcomes,omitempty"`
	SubmissionDate *time.Time  `gorm:"type:date" json:"submission_date,omitempty"`
	TeamID         *uuid.UUID  `gorm:"type:uuid" json:"team_id,omitempty"`
	Team           *Team       `json:"team,omitempty"`
	Contributors   []Innovator `gorm:"many2many:idea_contributors" json:"contributors,omitempty"`
	Tags           []Tag       `gorm:"many2many:idea_tags" json:"tags,omitempty"`
}

type Award struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string      `gorm:"type:varchar(160);not null" json:"name"`
	Category    *string     `gorm:"type:varchar(120)" json:"category,omitempty"`
	Year        int         `gorm:"not null;index" json:"year"`
	Level       AwardLevel  `gorm:"type:award_level;not null;default:'finalist'" json:"level"`
	Description *string     `gorm:"type:text" json:"description,omitempty"`
	IdeaID      *uuid.UUID  `gorm:"type:uuid" json:"idea_id,omitempty"`
	Innovators  []Innovator `gorm:"many2many:award_innovators" json:"innovators,omitempty"`
	Teams       []Team      `gorm:"many2many:award_teams" json:"teams,omitempty"`
}

type Badge struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Icon *string   `gorm:"type:varchar(80)" json:"icon,omitempty"`
}

// Tag is shared by innovators, teams and ideas and is addressed by slug.
type Tag struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Slug  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	Label *string   `gorm:"type:varchar(140)" json:"label,omitempty"`
}
