package catalog

// ProductType classifies catalog entries by purchase model.
type ProductType string

const (
	ProductTypeSingleIssue      ProductType = "single_issue"
	ProductTypeBundle           ProductType = "bundle"
	ProductTypeChapterPass      ProductType = "chapter_pass"
	ProductTypeArcPass          ProductType = "arc_pass"
	ProductTypeSubscription     ProductType = "subscription"
	ProductTypeArcBundle        ProductType = "arc_bundle"
	ProductTypeSagaBundle       ProductType = "saga_bundle"
	ProductTypeVolumeBundle     ProductType = "volume_bundle"
	ProductTypeBookBundle       ProductType = "book_bundle"
	ProductTypeSubscriptionTier ProductType = "subscription_tier"
)

var validProductTypes = map[ProductType]bool{
	ProductTypeSingleIssue:      true,
	ProductTypeBundle:           true,
	ProductTypeChapterPass:      true,
	ProductTypeArcPass:          true,
	ProductTypeSubscription:     true,
	ProductTypeArcBundle:        true,
	ProductTypeSagaBundle:       true,
	ProductTypeVolumeBundle:     true,
	ProductTypeBookBundle:       true,
	ProductTypeSubscriptionTier: true,
}

func (t ProductType) IsValid() bool {
	return validProductTypes[t]
}

func (t ProductType) String() string {
	return string(t)
}

// IsRecurring reports whether the product type represents ongoing access
// rather than a one-time purchase.
func (t ProductType) IsRecurring() bool {
	switch t {
	case ProductTypeChapterPass, ProductTypeArcPass, ProductTypeSubscription, ProductTypeSubscriptionTier:
		return true
	}
	return false
}

// ContentType classifies reader-facing content for access checks.
type ContentType string

const (
	ContentTypePublic  ContentType = "public"
	ContentTypeFree    ContentType = "free"
	ContentTypePremium ContentType = "premium"
	ContentTypeBeta    ContentType = "beta"
)

// ContentGrant names a content scope unlocked by purchasing a product.
type ContentGrant struct {
	Scope string `json:"scope"`
}

// ContentGrants is the grant descriptor stored on a product.
type ContentGrants struct {
	Grants []ContentGrant `json:"grants"`
}
