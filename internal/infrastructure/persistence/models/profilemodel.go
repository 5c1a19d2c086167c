package models

import (
	"time"

	"github.com/inkpress-io/inkpress/internal/shared/constants"
)

// ProfileModel represents the database persistence model for reader accounts
type ProfileModel struct {
	ID          uint   `gorm:"primarykey"`
	Email       string `gorm:"not null;size:255;uniqueIndex:uk_profile_email"`
	Username    string `gorm:"not null;size:30;uniqueIndex:uk_profile_username"`
	DisplayName string `gorm:"size:100"`
	Role        string `gorm:"not null;size:20;index:idx_profile_role"`
	BetaStatus  string `gorm:"not null;size:20;default:none"`
	Version     int    `gorm:"not null;default:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ProfileModel) TableName() string {
	return constants.TableProfiles
}

// BetaApplicationModel represents the database persistence model for beta
// reader applications
type BetaApplicationModel struct {
	ID                 uint   `gorm:"primarykey"`
	UserID             uint   `gorm:"not null;index:idx_beta_application_user"`
	InterestStatement  string `gorm:"type:text"`
	FeedbackPhilosophy string `gorm:"type:text"`
	HoursPerWeek       int    `gorm:"not null;default:0"`
	Communication      string `gorm:"type:text"`
	PriorExperience    string `gorm:"type:text"`
	Score              int    `gorm:"not null;default:0"`
	Status             string `gorm:"not null;size:20;index:idx_beta_application_status"`
	ReviewedBy         *uint
	ReviewNotes        *string `gorm:"type:text"`
	ReviewedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Note: No foreign key constraints.
	// All relationships are managed by application business logic.
}

// TableName specifies the table name for GORM
func (BetaApplicationModel) TableName() string {
	return constants.TableBetaApplications
}
