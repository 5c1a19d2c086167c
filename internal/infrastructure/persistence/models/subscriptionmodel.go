package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/inkpress-io/inkpress/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for subscriptions
type SubscriptionModel struct {
	ID                     uint   `gorm:"primarykey"`
	UserID                 uint   `gorm:"not null;index:idx_subscription_user"`
	ProductID              uint   `gorm:"not null"`
	PlanID                 uint   `gorm:"not null"`
	Status                 string `gorm:"not null;size:20;index:idx_subscription_status"`
	CurrentPeriodStart     time.Time
	CurrentPeriodEnd       time.Time
	TrialStart             *time.Time
	TrialEnd               *time.Time
	CancelAtPeriodEnd      bool `gorm:"not null;default:false"`
	CanceledAt             *time.Time
	CancelReason           *string `gorm:"size:255"`
	ProviderSubscriptionID *string `gorm:"size:255;uniqueIndex:uk_provider_subscription"`
	Metadata               datatypes.JSON
	Version                int `gorm:"not null;default:1"`
	CreatedAt              time.Time
	UpdatedAt              time.Time

	// Note: No foreign key constraints.
	// All relationships are managed by application business logic.
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
