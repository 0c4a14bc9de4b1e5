// internal/model/contact.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ContactType string

const (
	ContactGeneral     ContactType = "General"
	ContactPartnership ContactType = "Partnership"
	ContactFeedback    ContactType = "Feedback"
)

type ContactMessage struct {
	ID             uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string      `gorm:"type:varchar(120);not null" json:"name"`
	Email          string      `gorm:"type:varchar(180);not null;index" json:"email"`
	Subject        string      `gorm:"type:varchar(160);not null" json:"subject"`
	Message        string      `gorm:"type:text;not null" json:"message"`
	Type           ContactType `gorm:"type:varchar(20);not null" json:"type"`
	IP             *string     `gorm:"type:varchar(64)" json:"ip,omitempty"`
	UserAgent      *string     `gorm:"type:text" json:"user_agent,omitempty"`
	RecaptchaScore *float64    `gorm:"type:numeric(3,2)" json:"recaptcha_score,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}
