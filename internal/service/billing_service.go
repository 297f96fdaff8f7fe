package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dmorgachev/ce-tracker/internal/repository"
)

// billingService implements BillingService
type billingService struct {
	users  repository.UserRepository
	logger *zap.Logger
}

// NewBillingService creates a new billing service
func NewBillingService(users repository.UserRepository, logger *zap.Logger) BillingService {
	return &billingService{
		users:  users,
		logger: logger,
	}
}

// HandleCheckoutCompleted marks the purchasing user as pro. The event is
// keyed by the checkout's customer email; an email with no matching profile
// is logged and acknowledged so the payment provider stops redelivering.
func (s *billingService) HandleCheckoutCompleted(ctx context.Context, customerEmail string) error {
	if customerEmail == "" {
		s.logger.Warn("checkout completed without customer email")
		return nil
	}

	user, err := s.users.GetByEmail(ctx, customerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("checkout completed for unknown user",
				zap.String("email", customerEmail))
			return nil
		}
		return fmt.Errorf("failed to look up user for checkout: %w", err)
	}

	if err := s.users.SetPro(ctx, user.ID, true); err != nil {
		return fmt.Errorf("failed to set pro flag: %w", err)
	}

	s.logger.Info("user upgraded to pro", zap.String("user_id", user.ID))
	return nil
}
