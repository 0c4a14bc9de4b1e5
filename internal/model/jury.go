// internal/model/jury.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type JuryRole string

const (
	JuryRoleChair   JuryRole = "chair"
	JuryRoleCoChair JuryRole = "co-chair"
	JuryRoleMember  JuryRole = "member"
	JuryRoleAdvisor JuryRole = "advisor"
)

type JuryMember struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName        string           `gorm:"type:varchar(200);not null;index" json:"full_name"`
	ProfilePhotoURL *string          `gorm:"type:text" json:"profile_photo_url,omitempty"`
	Designation     string           `gorm:"type:varchar(120);not null" json:"designation"`
	Organization    string           `gorm:"type:varchar(160);not null" json:"organization"`
	Department      string           `gorm:"type:varchar(100);not null;index" json:"department"`
	Bio             *string          `gorm:"type:text" json:"bio,omitempty"`
	Expertise       []Expertise      `gorm:"many2many:member_expertises;joinForeignKey:MemberID;joinReferences:ExpertiseID" json:"expertise,omitempty"`
	Assignments     []JuryAssignment `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"assignments,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (JuryMember) TableName() string {
	return "jury_members"
}

type Expertise struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"name"`
}

func (Expertise) TableName() string {
	return "expertises"
}

type JuryAssignment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MemberID uuid.UUID `gorm:"type:uuid;not null;index" json:"member_id"`
	Year     int       `gorm:"not null;index" json:"year"`
	Role     JuryRole  `gorm:"type:jury_role;not null;default:'member'" json:"role"`
}

func (JuryAssignment) TableName() string {
	return "jury_assignments"
}
