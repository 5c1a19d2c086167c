package rules

import (
	"regexp"
	"strings"

	"github.com/inkpress-io/inkpress/internal/shared/authorization"
)

// Action names the administrative operations gated by role permissions.
const (
	ActionManageUsers        = "manage_users"
	ActionManageProducts     = "manage_products"
	ActionManageOrders       = "manage_orders"
	ActionViewReports        = "view_reports"
	ActionManageRefunds      = "manage_refunds"
	ActionReviewApplications = "review_applications"
	ActionManageContent      = "manage_content"
)

// permissionsForRole maps each role to its allowed actions. The wildcard on
// super_admin grants everything.
var permissionsForRole = map[authorization.UserRole][]string{
	authorization.RoleUser:       {},
	authorization.RoleSupport:    {ActionManageOrders, ActionManageRefunds, ActionViewReports},
	authorization.RoleAccountant: {ActionViewReports, ActionManageRefunds},
	authorization.RoleBetaReader: {},
	authorization.RoleAdmin: {
		ActionManageUsers, ActionManageProducts, ActionManageOrders,
		ActionViewReports, ActionManageRefunds, ActionReviewApplications, ActionManageContent,
	},
	authorization.RoleSuperAdmin: {"*"},
}

// CanPerformAction reports whether the role is allowed to perform the named
// action. When the action targets another user (targetRole set), managing
// users additionally requires strictly outranking the target.
func CanPerformAction(role authorization.UserRole, action string, targetRole ...authorization.UserRole) bool {
	allowed := false
	for _, a := range permissionsForRole[role] {
		if a == "*" || a == action {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}

	if action == ActionManageUsers && len(targetRole) > 0 {
		return role.Outranks(targetRole[0])
	}
	return true
}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var reservedUsernames = []string{
	"admin", "api", "www", "mail", "support", "help", "null", "undefined",
}

// UsernameValidation carries the outcome of a username check. Errors lists
// every violated rule, not just the first.
type UsernameValidation struct {
	Valid  bool
	Errors []string
}

// ValidateUsername checks length, character set, and the reserved-name list.
func ValidateUsername(username string) UsernameValidation {
	var errs []string

	if len(username) < 3 {
		errs = append(errs, "Username must be at least 3 characters long")
	}
	if len(username) > 30 {
		errs = append(errs, "Username must be at most 30 characters long")
	}
	if !usernamePattern.MatchString(username) {
		errs = append(errs, "Username can only contain letters, numbers, underscores, and hyphens")
	}

	lowered := strings.ToLower(username)
	for _, reserved := range reservedUsernames {
		if lowered == reserved {
			errs = append(errs, "This username is reserved")
			break
		}
	}

	return UsernameValidation{Valid: len(errs) == 0, Errors: errs}
}
