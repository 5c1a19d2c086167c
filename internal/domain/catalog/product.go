package catalog

import (
	"fmt"
	"time"
)

// Product represents a sellable catalog entry: a single issue, a bundle, or
// a recurring pass. Prices live on variants.
type Product struct {
	id                uint
	name              string
	description       string
	productType       ProductType
	workRef           string
	contentGrants     ContentGrants
	imageURLs         []string
	active            bool
	providerProductID *string
	metadata          map[string]interface{}
	version           int
	createdAt         time.Time
	updatedAt         time.Time
}

// NewProduct creates a new active product.
func NewProduct(name, description string, productType ProductType, workRef string) (*Product, error) {
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if !productType.IsValid() {
		return nil, fmt.Errorf("invalid product type: %s", productType)
	}

	now := time.Now().UTC()
	return &Product{
		name:        name,
		description: description,
		productType: productType,
		workRef:     workRef,
		active:      true,
		metadata:    make(map[string]interface{}),
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructProduct reconstructs a product from persistence
func ReconstructProduct(
	id uint,
	name, description string,
	productType ProductType,
	workRef string,
	contentGrants ContentGrants,
	imageURLs []string,
	active bool,
	providerProductID *string,
	metadata map[string]interface{},
	version int,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	if id == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}
	if !productType.IsValid() {
		return nil, fmt.Errorf("invalid product type: %s", productType)
	}

	if metadata == nil {
		metadata = make(map[string]interface{})
	}

	return &Product{
		id:                id,
		name:              name,
		description:       description,
		productType:       productType,
		workRef:           workRef,
		contentGrants:     contentGrants,
		imageURLs:         imageURLs,
		active:            active,
		providerProductID: providerProductID,
		metadata:          metadata,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (p *Product) ID() uint                     { return p.id }
func (p *Product) Name() string                 { return p.name }
func (p *Product) Description() string          { return p.description }
func (p *Product) Type() ProductType            { return p.productType }
func (p *Product) WorkRef() string              { return p.workRef }
func (p *Product) ContentGrants() ContentGrants { return p.contentGrants }
func (p *Product) ImageURLs() []string          { return p.imageURLs }
func (p *Product) IsActive() bool               { return p.active }
func (p *Product) ProviderProductID() *string   { return p.providerProductID }
func (p *Product) Metadata() map[string]interface{} {
	return p.metadata
}
func (p *Product) Version() int         { return p.version }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// SetID sets the product ID (only for persistence layer use)
func (p *Product) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("product ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("product ID cannot be zero")
	}
	p.id = id
	return nil
}

// UpdateDetails updates the storefront-facing name and description.
func (p *Product) UpdateDetails(name, description string) error {
	if name == "" {
		return fmt.Errorf("product name is required")
	}

	p.name = name
	p.description = description
	p.updatedAt = time.Now().UTC()
	p.version++
	return nil
}

// SetContentGrants replaces the content scopes unlocked by this product.
func (p *Product) SetContentGrants(grants ContentGrants) {
	p.contentGrants = grants
	p.updatedAt = time.Now().UTC()
	p.version++
}

// SetImageURLs replaces the storefront images.
func (p *Product) SetImageURLs(urls []string) {
	p.imageURLs = urls
	p.updatedAt = time.Now().UTC()
	p.version++
}

// SetProviderProductID links the product to the payment provider's catalog.
func (p *Product) SetProviderProductID(providerID string) error {
	if providerID == "" {
		return fmt.Errorf("provider product ID is required")
	}

	p.providerProductID = &providerID
	p.updatedAt = time.Now().UTC()
	p.version++
	return nil
}

// Deactivate soft-removes the product from sale. Existing orders and
// entitlements are unaffected.
func (p *Product) Deactivate() {
	if !p.active {
		return
	}
	p.active = false
	p.updatedAt = time.Now().UTC()
	p.version++
}

// Activate returns the product to sale.
func (p *Product) Activate() {
	if p.active {
		return
	}
	p.active = true
	p.updatedAt = time.Now().UTC()
	p.version++
}
