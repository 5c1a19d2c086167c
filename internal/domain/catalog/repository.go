package catalog

import "context"

type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	Update(ctx context.Context, product *Product) error
	List(ctx context.Context, filter ProductFilter) ([]*Product, int64, error)
}

type ProductFilter struct {
	Type     *ProductType
	Active   *bool
	WorkRef  *string
	Page     int
	PageSize int
	SortBy   string
	SortDesc bool
}

type VariantRepository interface {
	Create(ctx context.Context, variant *Variant) error
	GetByID(ctx context.Context, id uint) (*Variant, error)
	GetByProductID(ctx context.Context, productID uint) ([]*Variant, error)
	Update(ctx context.Context, variant *Variant) error

	// DecrementInventory atomically reduces stock by quantity, failing when
	// the remaining stock is insufficient. Variants without inventory
	// tracking are unaffected and succeed.
	DecrementInventory(ctx context.Context, variantID uint, quantity int) error
}
