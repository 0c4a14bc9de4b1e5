// internal/model/challenge.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ChallengeStatus string

const (
	ChallengeOpen    ChallengeStatus = "Open"
	ChallengeClosed  ChallengeStatus = "Closed"
	ChallengeJudging ChallengeStatus = "Judging"
	ChallengeResults ChallengeStatus = "Results"
)

type ParticipationType string

const (
	ParticipationIndividual ParticipationType = "Individual"
	ParticipationTeam       ParticipationType = "Team"
	ParticipationBoth       ParticipationType = "Both"
)

// Challenge.Status is only a fallback, the effective status is derived from the timeline dates.
type Challenge struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Slug               string             `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"`
	Status             ChallengeStatus    `gorm:"type:varchar(20);not null;default:'Open';index" json:"status"`
	Title              string             `gorm:"type:varchar(200);not null" json:"title"`
	Overview           *string            `gorm:"type:text" json:"overview,omitempty"`
	Theme              *string            `gorm:"type:varchar(160)" json:"theme,omitempty"`
	Goal               *string            `gorm:"type:text" json:"goal,omitempty"`
	Rules              *string            `gorm:"type:text" json:"rules,omitempty"`
	Eligibility        *string            `gorm:"type:text" json:"eligibility,omitempty"`
	Category           *string            `gorm:"type:varchar(120)" json:"category,omitempty"`
	ParticipationType  *ParticipationType `gorm:"type:varchar(30)" json:"participation_type,omitempty"`
	StartDate          *time.Time         `gorm:"type:date" json:"start_date,omitempty"`
	EndDate            *time.Time         `gorm:"type:date" json:"end_date,omitempty"`
	SubmissionDeadline *time.Time         `gorm:"type:date" json:"submission_deadline,omitempty"`
	JudgingStart       *time.Time         `gorm:"type:date" json:"judging_start,omitempty"`
	JudgingEnd         *time.Time         `gorm:"type:date" json:"judging_end,omitempty"`
	ResultsDate        *time.Time         `gorm:"type:date" json:"results_date,omitempty"`
	ThumbnailURL       *string            `gorm:"type:text" json:"thumbnail_url,omitempty"`
	ApplyURL           *string            `gorm:"type:text" json:"apply_url,omitempty"`
	Prizes             []ChallengePrize   `gorm:"constraint:OnDelete:CASCADE" json:"prizes,omitempty"`
	FAQs               []ChallengeFAQ     `gorm:"constraint:OnDelete:CASCADE" json:"faqs,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type ChallengePrize struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChallengeID uuid.UUID `gorm:"type:uuid;not null;index" json:"challenge_id"`
	Title       string    `gorm:"type:varchar(160);not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Amount      *float64  `gorm:"type:numeric" json:"amount,omitempty"`
	Currency    *string   `gorm:"type:varchar(10)" json:"currency,omitempty"`
	Rank        *int      `json:"rank,omitempty"`
}

type ChallengeFAQ struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ChallengeID uuid.UUID `gorm:"type:uuid;not null;index" json:"challenge_id"`
	Question    string    `gorm:"type:varchar(240);not null" json:"question"`
	Answer      string    `gorm:"type:text;not null" json:"answer"`
}

func (ChallengeFAQ) TableName() string {
	return "challenge_faqs"
}
