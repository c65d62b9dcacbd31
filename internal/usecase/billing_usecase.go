package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mentry-app/mentry-server/internal/domain/contract"
	usecasecontract "github.com/mentry-app/mentry-server/internal/usecase/contract"
)

// BillingUsecase drives the premium upgrade flow: checkout session creation
// for the caller and provider webhook events flipping the premium flag.
type BillingUsecase struct {
	userRepo contract.IUserRepository
	payments usecasecontract.IPaymentProvider
	logger   usecasecontract.IAppLogger
}

// NewBillingUsecase creates and returns a new BillingUsecase instance.
func NewBillingUsecase(userRepo contract.IUserRepository, payments usecasecontract.IPaymentProvider, logger usecasecontract.IAppLogger) *BillingUsecase {
	return &BillingUsecase{
		userRepo: userRepo,
		payments: payments,
		logger:   logger,
	}
}

// CreateCheckoutSession opens a hosted checkout session for the caller and
// returns its redirect URL. Already-premium callers are rejected before the
// provider is contacted.
func (u *BillingUsecase) CreateCheckoutSession(ctx context.Context, callerUID, callerEmail string) (string, error) {
	user, err := u.userRepo.GetUserByUID(ctx, callerUID)
	if err != nil && !errors.Is(err, contract.ErrUserNotFound) {
		return "", fmt.Errorf("failed to load caller: %w", err)
	}
	if user != nil && user.IsPremium {
		return "", ErrAlreadyPremium
	}

	session, err := u.payments.CreateCheckoutSession(ctx, callerUID, callerEmail)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return session.URL, nil
}

// HandleProviderEvent verifies and applies a payment provider webhook. Valid
// events other than checkout completion are acknowledged and ignored. The
// premium grant is idempotent, so replayed completion events are harmless.
func (u *BillingUsecase) HandleProviderEvent(ctx context.Context, payload []byte, signatureHeader string) error {
	completed, err := u.payments.ParseCompletionEvent(payload, signatureHeader)
	if err != nil {
		return err
	}
	if completed == nil {
		return nil
	}

	if completed.UID == "" {
		u.logger.Warnf("checkout completion %s carries no uid metadata, skipping", completed.SessionID)
		return nil
	}

	changed, err := u.userRepo.SetPremium(ctx, completed.UID)
	if err != nil {
		return fmt.Errorf("failed to grant premium to %s: %w", completed.UID, err)
	}
	if changed {
		u.logger.Infof("premium granted to user %s via checkout session %s", completed.UID, completed.SessionID)
	} else {
		u.logger.Infof("duplicate checkout completion for premium user %s, ignored", completed.UID)
	}
	return nil
}

var _ usecasecontract.IBillingUseCase = (*BillingUsecase)(nil)
