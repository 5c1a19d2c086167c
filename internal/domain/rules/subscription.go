// Package rules centralizes the business policy tables for the storefront.
// Every function is pure: decisions depend only on the arguments, never on
// storage or clocks, so callers pass in whatever state the decision needs.
package rules

import (
	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	subvo "github.com/inkpress-io/inkpress/internal/domain/subscription/valueobjects"
	"github.com/inkpress-io/inkpress/internal/shared/authorization"
)

// GlobalMaxActiveSubscriptions caps concurrent active subscriptions for any
// account regardless of role.
const GlobalMaxActiveSubscriptions = 5

// ImmediateCancellationWindowDays is the post-purchase window during which an
// active subscription may still be canceled immediately.
const ImmediateCancellationWindowDays = 3

var maxSubscriptionsForRole = map[authorization.UserRole]int{
	authorization.RoleUser:       2,
	authorization.RoleSupport:    5,
	authorization.RoleAccountant: 5,
	authorization.RoleBetaReader: 5,
	authorization.RoleAdmin:      10,
	authorization.RoleSuperAdmin: 50,
}

const defaultMaxSubscriptions = 2

// MaxSubscriptionsForRole returns how many concurrent active subscriptions
// the role may hold. Unknown roles fall back to the basic user limit.
func MaxSubscriptionsForRole(role authorization.UserRole) int {
	if limit, ok := maxSubscriptionsForRole[role]; ok {
		return limit
	}
	return defaultMaxSubscriptions
}

// CanSubscribeToProductType reports whether the role may subscribe to the
// given product type. Single issues are open to everyone; basic users are
// otherwise limited to chapter passes, while all other roles are
// unrestricted.
func CanSubscribeToProductType(role authorization.UserRole, productType catalog.ProductType) bool {
	if !productType.IsValid() {
		return false
	}
	if productType == catalog.ProductTypeSingleIssue {
		return true
	}
	if role == authorization.RoleUser {
		return productType == catalog.ProductTypeChapterPass
	}
	return true
}

var minimumSubscriptionDurationDays = map[catalog.ProductType]int{
	catalog.ProductTypeChapterPass:  30,
	catalog.ProductTypeArcPass:      90,
	catalog.ProductTypeSubscription: 30,
}

// MinimumSubscriptionDuration returns the minimum commitment in days for the
// product type. Non-recurring types have no minimum.
func MinimumSubscriptionDuration(productType catalog.ProductType) int {
	return minimumSubscriptionDurationDays[productType]
}

// CanCancelImmediately reports whether a subscription in the given status may
// be canceled with immediate effect rather than at period end. Trials always
// cancel immediately; paid subscriptions only inside the grace window.
func CanCancelImmediately(status subvo.Status, daysSinceStart int) bool {
	if status == subvo.StatusTrialing {
		return true
	}
	if status == subvo.StatusActive && daysSinceStart <= ImmediateCancellationWindowDays {
		return true
	}
	return false
}
