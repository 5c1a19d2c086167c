package entitlement

import (
	"fmt"
	"time"
)

// Entitlement grants a user access to a content scope. The source records
// what produced the grant so it can be revoked when that source goes away.
type Entitlement struct {
	id        uint
	userID    uint
	scope     string
	source    string
	startsAt  time.Time
	endsAt    *time.Time
	createdAt time.Time
}

// SubscriptionSource builds the source tag for grants produced by a
// subscription.
func SubscriptionSource(subscriptionID uint) string {
	return fmt.Sprintf("subscription:%d", subscriptionID)
}

// OrderSource builds the source tag for grants produced by a one-time
// purchase.
func OrderSource(orderID uint) string {
	return fmt.Sprintf("order:%d", orderID)
}

// NewEntitlement creates an open-ended grant starting now.
func NewEntitlement(userID uint, scope, source string) (*Entitlement, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if scope == "" {
		return nil, fmt.Errorf("scope is required")
	}
	if source == "" {
		return nil, fmt.Errorf("source is required")
	}

	now := time.Now().UTC()
	return &Entitlement{
		userID:    userID,
		scope:     scope,
		source:    source,
		startsAt:  now,
		createdAt: now,
	}, nil
}

// ReconstructEntitlement reconstructs an entitlement from persistence
func ReconstructEntitlement(
	id, userID uint,
	scope, source string,
	startsAt time.Time,
	endsAt *time.Time,
	createdAt time.Time,
) (*Entitlement, error) {
	if id == 0 {
		return nil, fmt.Errorf("entitlement ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Entitlement{
		id:        id,
		userID:    userID,
		scope:     scope,
		source:    source,
		startsAt:  startsAt,
		endsAt:    endsAt,
		createdAt: createdAt,
	}, nil
}

func (e *Entitlement) ID() uint             { return e.id }
func (e *Entitlement) UserID() uint         { return e.userID }
func (e *Entitlement) Scope() string        { return e.scope }
func (e *Entitlement) Source() string       { return e.source }
func (e *Entitlement) StartsAt() time.Time  { return e.startsAt }
func (e *Entitlement) EndsAt() *time.Time   { return e.endsAt }
func (e *Entitlement) CreatedAt() time.Time { return e.createdAt }

// SetID sets the entitlement ID (only for persistence layer use)
func (e *Entitlement) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entitlement ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entitlement ID cannot be zero")
	}
	e.id = id
	return nil
}

// IsActive reports whether the grant is in force at the given time.
func (e *Entitlement) IsActive(now time.Time) bool {
	if now.Before(e.startsAt) {
		return false
	}
	return e.endsAt == nil || now.Before(*e.endsAt)
}

// End closes the grant at the given time.
func (e *Entitlement) End(at time.Time) {
	if e.endsAt != nil {
		return
	}
	e.endsAt = &at
}
