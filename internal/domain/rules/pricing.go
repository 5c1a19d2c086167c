package rules

import (
	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	"github.com/inkpress-io/inkpress/internal/shared/authorization"
)

// Bounds holds the inclusive price range for a product type, in the minor
// currency unit. A zero Max means unbounded.
type Bounds struct {
	Min int64
	Max int64
}

var priceBounds = map[catalog.ProductType]Bounds{
	catalog.ProductTypeSingleIssue:  {Min: 99, Max: 4999},
	catalog.ProductTypeBundle:       {Min: 299, Max: 9999},
	catalog.ProductTypeChapterPass:  {Min: 499, Max: 2999},
	catalog.ProductTypeArcPass:      {Min: 999, Max: 4999},
	catalog.ProductTypeSubscription: {Min: 999, Max: 0},
}

var defaultPriceBounds = Bounds{Min: 99, Max: 4999}

// PriceBounds returns the allowed price range for the product type.
func PriceBounds(productType catalog.ProductType) Bounds {
	if b, ok := priceBounds[productType]; ok {
		return b
	}
	return defaultPriceBounds
}

// PriceWithinBounds reports whether amount is a valid price for the product
// type.
func PriceWithinBounds(productType catalog.ProductType, amount int64) bool {
	b := PriceBounds(productType)
	if amount < b.Min {
		return false
	}
	if b.Max > 0 && amount > b.Max {
		return false
	}
	return true
}

var maxDiscountForRole = map[authorization.UserRole]int{
	authorization.RoleUser:       20,
	authorization.RoleSupport:    50,
	authorization.RoleAccountant: 75,
	authorization.RoleBetaReader: 30,
	authorization.RoleAdmin:      90,
	authorization.RoleSuperAdmin: 100,
}

// MaxDiscountPercentage returns the largest discount, in whole percent, the
// role may apply or receive.
func MaxDiscountPercentage(role authorization.UserRole) int {
	if pct, ok := maxDiscountForRole[role]; ok {
		return pct
	}
	return maxDiscountForRole[authorization.RoleUser]
}

var validCurrencies = map[string][]string{
	"us":      {"usd"},
	"ca":      {"usd", "cad"},
	"eu":      {"usd", "eur"},
	"uk":      {"usd", "gbp"},
	"au":      {"usd", "aud"},
	"default": {"usd"},
}

// ValidCurrencies returns the currencies accepted for a storefront region.
func ValidCurrencies(region string) []string {
	if currencies, ok := validCurrencies[region]; ok {
		return currencies
	}
	return validCurrencies["default"]
}

// IsValidCurrency reports whether the currency is accepted in the region.
func IsValidCurrency(region, currency string) bool {
	for _, c := range ValidCurrencies(region) {
		if c == currency {
			return true
		}
	}
	return false
}
