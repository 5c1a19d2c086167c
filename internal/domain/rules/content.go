package rules

import (
	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	subvo "github.com/inkpress-io/inkpress/internal/domain/subscription/valueobjects"
	"github.com/inkpress-io/inkpress/internal/shared/authorization"
)

// CanAccessContent reports whether a reader may view content of the given
// type. subscriptionStatus is the reader's current subscription status, empty
// when they have none.
//
// The ladder: public is open to all, free requires any account, premium
// requires an access-granting subscription or admin rank, beta requires beta
// reader standing or admin rank.
func CanAccessContent(role authorization.UserRole, contentType catalog.ContentType, subscriptionStatus subvo.Status) bool {
	switch contentType {
	case catalog.ContentTypePublic:
		return true
	case catalog.ContentTypeFree:
		return role.IsValid()
	case catalog.ContentTypePremium:
		if role.IsAdmin() {
			return true
		}
		return subscriptionStatus.GrantsAccess()
	case catalog.ContentTypeBeta:
		return role.IsAdmin() || role == authorization.RoleBetaReader
	}
	return false
}

// CanPreviewContent reports whether the role may read preview excerpts of a
// product before purchase. Previews are open for one-time purchases; recurring
// tiers only preview for staff and beta readers.
func CanPreviewContent(role authorization.UserRole, productType catalog.ProductType) bool {
	if !productType.IsValid() {
		return false
	}
	if !productType.IsRecurring() {
		return true
	}
	return role.IsAdmin() || role == authorization.RoleBetaReader
}

// DownloadLimit holds per-role download throttles.
type DownloadLimit struct {
	Daily      int
	Concurrent int
}

// UnlimitedDownloads marks a role with no download throttle.
const UnlimitedDownloads = -1

var downloadLimits = map[authorization.UserRole]DownloadLimit{
	authorization.RoleUser:       {Daily: 10, Concurrent: 2},
	authorization.RoleSupport:    {Daily: 50, Concurrent: 5},
	authorization.RoleAccountant: {Daily: 50, Concurrent: 5},
	authorization.RoleBetaReader: {Daily: 20, Concurrent: 5},
	authorization.RoleAdmin:      {Daily: 100, Concurrent: 10},
	authorization.RoleSuperAdmin: {Daily: UnlimitedDownloads, Concurrent: UnlimitedDownloads},
}

// DownloadLimits returns the issue download throttles for the role.
func DownloadLimits(role authorization.UserRole) DownloadLimit {
	if l, ok := downloadLimits[role]; ok {
		return l
	}
	return downloadLimits[authorization.RoleUser]
}
