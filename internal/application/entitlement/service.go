// Package entitlement grants and revokes content access produced by
// purchases and subscriptions.
package entitlement

import (
	"context"
	"fmt"
	"time"

	"github.com/inkpress-io/inkpress/internal/domain/catalog"
	"github.com/inkpress-io/inkpress/internal/domain/entitlement"
	"github.com/inkpress-io/inkpress/internal/shared/logger"
)

// Service translates a product's content grants into entitlement rows and
// tears them down when their source goes away.
type Service struct {
	entitlementRepo entitlement.Repository
	productRepo     catalog.ProductRepository
	logger          logger.Interface
}

func NewService(
	entitlementRepo entitlement.Repository,
	productRepo catalog.ProductRepository,
	logger logger.Interface,
) *Service {
	return &Service{
		entitlementRepo: entitlementRepo,
		productRepo:     productRepo,
		logger:          logger,
	}
}

// GrantForSubscription creates one entitlement per content scope the
// subscribed product grants, tagged with the subscription as source.
func (s *Service) GrantForSubscription(ctx context.Context, userID, productID, subscriptionID uint) error {
	return s.grant(ctx, userID, productID, entitlement.SubscriptionSource(subscriptionID))
}

// RevokeForSubscription removes every grant the subscription produced.
func (s *Service) RevokeForSubscription(ctx context.Context, userID, subscriptionID uint) error {
	source := entitlement.SubscriptionSource(subscriptionID)
	if err := s.entitlementRepo.DeleteByUserAndSource(ctx, userID, source); err != nil {
		return fmt.Errorf("failed to revoke entitlements: %w", err)
	}

	s.logger.Infow("entitlements revoked", "user_id", userID, "source", source)
	return nil
}

// EndAllForUser closes every open-ended grant the user holds as of now. Rows
// stay in place for audit; only their end time changes.
func (s *Service) EndAllForUser(ctx context.Context, userID uint) error {
	entitlements, err := s.entitlementRepo.ListByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list entitlements: %w", err)
	}

	now := time.Now().UTC()
	ended := 0
	for _, ent := range entitlements {
		if ent.EndsAt() != nil {
			continue
		}
		ent.End(now)
		if err := s.entitlementRepo.Update(ctx, ent); err != nil {
			return fmt.Errorf("failed to end entitlement: %w", err)
		}
		ended++
	}

	if ended > 0 {
		s.logger.Infow("entitlements ended", "user_id", userID, "count", ended)
	}
	return nil
}

// GrantForOrder creates entitlements for every product on a paid order.
func (s *Service) GrantForOrder(ctx context.Context, userID, orderID uint, productIDs []uint) error {
	source := entitlement.OrderSource(orderID)
	for _, productID := range productIDs {
		if err := s.grant(ctx, userID, productID, source); err != nil {
			return err
		}
	}
	return nil
}

// ListActiveForUser returns the grants currently giving the user access.
func (s *Service) ListActiveForUser(ctx context.Context, userID uint) ([]*entitlement.Entitlement, error) {
	entitlements, err := s.entitlementRepo.ListActiveByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}
	return entitlements, nil
}

// HasScope reports whether the user holds an active grant for the scope.
func (s *Service) HasScope(ctx context.Context, userID uint, scope string) (bool, error) {
	ok, err := s.entitlementRepo.HasActiveScope(ctx, userID, scope)
	if err != nil {
		return false, fmt.Errorf("failed to check entitlement scope: %w", err)
	}
	return ok, nil
}

func (s *Service) grant(ctx context.Context, userID, productID uint, source string) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to get product for grant: %w", err)
	}

	grants := product.ContentGrants().Grants
	if len(grants) == 0 {
		s.logger.Debugw("product has no content grants", "product_id", productID)
		return nil
	}

	for _, grant := range grants {
		ent, err := entitlement.NewEntitlement(userID, grant.Scope, source)
		if err != nil {
			return fmt.Errorf("failed to build entitlement: %w", err)
		}
		if err := s.entitlementRepo.Create(ctx, ent); err != nil {
			return fmt.Errorf("failed to save entitlement: %w", err)
		}
	}

	s.logger.Infow("entitlements granted",
		"user_id", userID,
		"source", source,
		"scopes", len(grants))
	return nil
}
