package handlers

import (
	"time"

	"github.com/inkpress-io/inkpress/internal/domain/catalog"
)

// ProductResponse is the public shape of a catalog product.
type ProductResponse struct {
	ID                uint                   `json:"id"`
	Name              string                 `json:"name"`
	Description       string                 `json:"description"`
	DescriptionHTML   string                 `json:"description_html,omitempty"`
	ProductType       string                 `json:"product_type"`
	WorkRef           string                 `json:"work_ref,omitempty"`
	ImageURLs         []string               `json:"image_urls,omitempty"`
	Active            bool                   `json:"active"`
	ProviderProductID *string                `json:"provider_product_id,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
	Variants          []VariantResponse      `json:"variants,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

type VariantResponse struct {
	ID                uint      `json:"id"`
	ProductID         uint      `json:"product_id"`
	Name              string    `json:"name"`
	SKU               string    `json:"sku"`
	PriceAmount       int64     `json:"price_amount"`
	Currency          string    `json:"currency"`
	BillingInterval   *string   `json:"billing_interval,omitempty"`
	InventoryQuantity int       `json:"inventory_quantity"`
	TrackInventory    bool      `json:"track_inventory"`
	Active            bool      `json:"active"`
	ProviderPriceID   *string   `json:"provider_price_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func toProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:                p.ID(),
		Name:              p.Name(),
		Description:       p.Description(),
		ProductType:       p.Type().String(),
		WorkRef:           p.WorkRef(),
		ImageURLs:         p.ImageURLs(),
		Active:            p.IsActive(),
		ProviderProductID: p.ProviderProductID(),
		Metadata:          p.Metadata(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

func toVariantResponse(v *catalog.Variant) VariantResponse {
	return VariantResponse{
		ID:                v.ID(),
		ProductID:         v.ProductID(),
		Name:              v.Name(),
		SKU:               v.SKU(),
		PriceAmount:       v.PriceAmount(),
		Currency:          v.Currency(),
		BillingInterval:   v.BillingInterval(),
		InventoryQuantity: v.InventoryQuantity(),
		TrackInventory:    v.TrackInventory(),
		Active:            v.IsActive(),
		ProviderPriceID:   v.ProviderPriceID(),
		CreatedAt:         v.CreatedAt(),
	}
}

func toProductResponses(products []*catalog.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}
