package subscription

import (
	"fmt"
	"time"

	vo "github.com/inkpress-io/inkpress/internal/domain/subscription/valueobjects"
)

// Subscription represents the subscription aggregate root. planID refers to
// the catalog variant that carries the recurring price.
type Subscription struct {
	id                 uint
	userID             uint
	productID          uint
	planID             uint
	status             vo.Status
	currentPeriodStart time.Time
	currentPeriodEnd   time.Time
	trialStart         *time.Time
	trialEnd           *time.Time
	cancelAtPeriodEnd  bool
	canceledAt         *time.Time
	cancelReason       *string
	providerSubID      *string
	metadata           map[string]interface{}
	version            int
	createdAt          time.Time
	updatedAt          time.Time
}

// NewSubscription creates a new subscription in the given initial status.
func NewSubscription(userID, productID, planID uint, status vo.Status, periodStart, periodEnd time.Time) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}
	if periodEnd.Before(periodStart) {
		return nil, fmt.Errorf("period end must be after period start")
	}

	now := time.Now().UTC()
	return &Subscription{
		userID:             userID,
		productID:          productID,
		planID:             planID,
		status:             status,
		currentPeriodStart: periodStart,
		currentPeriodEnd:   periodEnd,
		metadata:           make(map[string]interface{}),
		version:            1,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructSubscription reconstructs a subscription from persistence
func ReconstructSubscription(
	id, userID, productID, planID uint,
	status vo.Status,
	currentPeriodStart, currentPeriodEnd time.Time,
	trialStart, trialEnd *time.Time,
	cancelAtPeriodEnd bool,
	canceledAt *time.Time,
	cancelReason *string,
	providerSubID *string,
	metadata map[string]interface{},
	version int,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &Subscription{
		id:                 id,
		userID:             userID,
		productID:          productID,
		planID:             planID,
		status:             status,
		currentPeriodStart: currentPeriodStart,
		currentPeriodEnd:   currentPeriodEnd,
		trialStart:         trialStart,
		trialEnd:           trialEnd,
		cancelAtPeriodEnd:  cancelAtPeriodEnd,
		canceledAt:         canceledAt,
		cancelReason:       cancelReason,
		providerSubID:      providerSubID,
		metadata:           metadata,
		version:            version,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (s *Subscription) ID() uint                      { return s.id }
func (s *Subscription) UserID() uint                  { return s.userID }
func (s *Subscription) ProductID() uint               { return s.productID }
func (s *Subscription) PlanID() uint                  { return s.planID }
func (s *Subscription) Status() vo.Status             { return s.status }
func (s *Subscription) CurrentPeriodStart() time.Time { return s.currentPeriodStart }
func (s *Subscription) CurrentPeriodEnd() time.Time   { return s.currentPeriodEnd }
func (s *Subscription) TrialStart() *time.Time        { return s.trialStart }
func (s *Subscription) TrialEnd() *time.Time          { return s.trialEnd }
func (s *Subscription) CancelAtPeriodEnd() bool       { return s.cancelAtPeriodEnd }
func (s *Subscription) CanceledAt() *time.Time        { return s.canceledAt }
func (s *Subscription) CancelReason() *string         { return s.cancelReason }
func (s *Subscription) ProviderSubscriptionID() *string {
	return s.providerSubID
}
func (s *Subscription) Metadata() map[string]interface{} { return s.metadata }
func (s *Subscription) Version() int                     { return s.version }
func (s *Subscription) CreatedAt() time.Time             { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time             { return s.updatedAt }

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// ChangeStatus moves the subscription to a new lifecycle status, enforcing
// legal transitions.
func (s *Subscription) ChangeStatus(target vo.Status) error {
	if !target.IsValid() {
		return fmt.Errorf("invalid subscription status: %s", target)
	}
	if s.status == target {
		return nil
	}
	if !s.status.CanTransitionTo(target) {
		return fmt.Errorf("invalid status transition from %s to %s", s.status, target)
	}

	s.status = target
	s.updatedAt = time.Now().UTC()
	s.version++
	return nil
}

// CancelImmediately cancels the subscription with immediate effect.
func (s *Subscription) CancelImmediately(reason string) error {
	if s.status == vo.StatusCanceled {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusCanceled) {
		return fmt.Errorf("cannot cancel subscription with status %s", s.status)
	}

	now := time.Now().UTC()
	s.status = vo.StatusCanceled
	s.canceledAt = &now
	s.cancelAtPeriodEnd = false
	if reason != "" {
		s.cancelReason = &reason
	}
	s.updatedAt = now
	s.version++
	return nil
}

// ScheduleCancellation flags the subscription to end at the close of the
// current billing period. Access remains in force until then.
func (s *Subscription) ScheduleCancellation(reason string) error {
	if s.status.IsTerminal() {
		return fmt.Errorf("cannot schedule cancellation for %s subscription", s.status)
	}
	if s.cancelAtPeriodEnd {
		return nil
	}

	s.cancelAtPeriodEnd = true
	if reason != "" {
		s.cancelReason = &reason
	}
	s.updatedAt = time.Now().UTC()
	s.version++
	return nil
}

// Reactivate undoes a cancellation while the paid period is still running.
// A scheduled cancellation is simply cleared; an already canceled
// subscription is restored to active as long as the period has not ended.
func (s *Subscription) Reactivate(now time.Time) error {
	if s.cancelAtPeriodEnd {
		s.cancelAtPeriodEnd = false
		s.cancelReason = nil
		s.updatedAt = time.Now().UTC()
		s.version++
		return nil
	}

	if s.status != vo.StatusCanceled {
		return fmt.Errorf("cannot reactivate subscription with status %s", s.status)
	}
	if !s.currentPeriodEnd.After(now) {
		return fmt.Errorf("cannot reactivate subscription past its period end")
	}

	s.status = vo.StatusActive
	s.canceledAt = nil
	s.cancelReason = nil
	s.updatedAt = time.Now().UTC()
	s.version++
	return nil
}

// UpdatePeriod updates the current billing period.
func (s *Subscription) UpdatePeriod(start, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("period end must be after period start")
	}

	s.currentPeriodStart = start
	s.currentPeriodEnd = end
	s.updatedAt = time.Now().UTC()
	s.version++
	return nil
}

// SetTrialPeriod records the trial window reported by the payment provider.
func (s *Subscription) SetTrialPeriod(start, end time.Time) error {
	if end.Before(start) {
		return fmt.Errorf("trial end must be after trial start")
	}

	s.trialStart = &start
	s.trialEnd = &end
	s.updatedAt = time.Now().UTC()
	s.version++
	return nil
}

// SetProviderSubscriptionID links the subscription to the payment provider's
// record.
func (s *Subscription) SetProviderSubscriptionID(providerID string) error {
	if providerID == "" {
		return fmt.Errorf("provider subscription ID is required")
	}

	s.providerSubID = &providerID
	s.updatedAt = time.Now().UTC()
	s.version++
	return nil
}

// SetMetadataValue records a metadata entry on the subscription.
func (s *Subscription) SetMetadataValue(key string, value interface{}) {
	if s.metadata == nil {
		s.metadata = make(map[string]interface{})
	}
	s.metadata[key] = value
	s.updatedAt = time.Now().UTC()
	s.version++
}

// GrantsAccess reports whether the subscription currently unlocks content.
func (s *Subscription) GrantsAccess() bool {
	return s.status.GrantsAccess()
}

// DaysSinceStart returns full days elapsed since the current period started.
func (s *Subscription) DaysSinceStart(now time.Time) int {
	days := int(now.Sub(s.currentPeriodStart).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
