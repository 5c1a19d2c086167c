package usecases

import "context"

// Notifier delivers subscription lifecycle notifications. Delivery failures
// never block the lifecycle change itself.
type Notifier interface {
	NotifySubscriptionStatusChange(ctx context.Context, email, oldStatus, newStatus string) error
	NotifySubscriptionCancelled(ctx context.Context, email string, immediate bool) error
}
