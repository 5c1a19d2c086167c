package handlers

import (
	"time"

	"github.com/inkpress-io/inkpress/internal/domain/order"
)

type OrderItemResponse struct {
	ID            uint   `json:"id"`
	ProductID     uint   `json:"product_id"`
	VariantID     uint   `json:"variant_id"`
	ProductName   string `json:"product_name"`
	VariantName   string `json:"variant_name,omitempty"`
	SKU           string `json:"sku"`
	Quantity      int    `json:"quantity"`
	UnitAmount    int64  `json:"unit_amount"`
	TotalAmount   int64  `json:"total_amount"`
	AccessGranted bool   `json:"access_granted"`
}

type OrderResponse struct {
	ID              uint                   `json:"id"`
	OrderNumber     string                 `json:"order_number"`
	Email           string                 `json:"email"`
	Status          string                 `json:"status"`
	PaymentStatus   string                 `json:"payment_status"`
	Currency        string                 `json:"currency"`
	Subtotal        int64                  `json:"subtotal"`
	TotalAmount     int64                  `json:"total_amount"`
	BillingAddress  map[string]interface{} `json:"billing_address,omitempty"`
	ShippingAddress map[string]interface{} `json:"shipping_address,omitempty"`
	Items           []OrderItemResponse    `json:"items"`
	ConfirmedAt     *time.Time             `json:"confirmed_at,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ID:            item.ID(),
			ProductID:     item.ProductID(),
			VariantID:     item.VariantID(),
			ProductName:   item.ProductName(),
			VariantName:   item.VariantName(),
			SKU:           item.SKU(),
			Quantity:      item.Quantity(),
			UnitAmount:    item.UnitAmount(),
			TotalAmount:   item.TotalAmount(),
			AccessGranted: item.AccessGranted(),
		})
	}

	return OrderResponse{
		ID:              o.ID(),
		OrderNumber:     o.OrderNumber(),
		Email:           o.Email(),
		Status:          string(o.Status()),
		PaymentStatus:   string(o.PaymentStatus()),
		Currency:        o.Currency(),
		Subtotal:        o.Subtotal(),
		TotalAmount:     o.TotalAmount(),
		BillingAddress:  o.BillingAddress(),
		ShippingAddress: o.ShippingAddress(),
		Items:           items,
		ConfirmedAt:     o.ConfirmedAt(),
		CreatedAt:       o.CreatedAt(),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}
