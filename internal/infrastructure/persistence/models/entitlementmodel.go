package models

import (
	"time"

	"github.com/inkpress-io/inkpress/internal/shared/constants"
)

// EntitlementModel represents the database persistence model for content
// grants. The (user, scope, source) triple is unique so regrants from the
// same source are idempotent.
type EntitlementModel struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"not null;index:idx_entitlement_user;uniqueIndex:uk_entitlement,priority:1"`
	Scope     string `gorm:"not null;size:255;uniqueIndex:uk_entitlement,priority:2"`
	Source    string `gorm:"not null;size:100;index:idx_entitlement_source;uniqueIndex:uk_entitlement,priority:3"`
	StartsAt  time.Time
	EndsAt    *time.Time
	CreatedAt time.Time

	// Note: No foreign key constraints.
	// All relationships are managed by application business logic.
}

// TableName specifies the table name for GORM
func (EntitlementModel) TableName() string {
	return constants.TableEntitlements
}
