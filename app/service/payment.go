package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/entity"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/factory"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/lifecycle"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/payment"
)

type reconcilePaymentRequest interface {
	GetVendorId() string
	GetStatus() string
}

type subscriptionGateway interface {
	CancelSubscription(ctx context.Context, token string) error
	UpdateCardURL(token string) (string, error)
}

type ReconcileResult struct {
	Profile *entity.VendorProfile
	State   lifecycle.State
	Changed bool
}

// PaymentReturnService settles the outcome of a gateway redirect and manages the recurring
// subscription held at the gateway.
type PaymentReturnService struct {
	profileRepo vendorProfileRepository
	gateway     subscriptionGateway
	now         func() time.Time
	logger      logrus.FieldLogger
}

func NewPaymentReturnService(profileRepo vendorProfileRepository, gateway subscriptionGateway) *PaymentReturnService {
	return &PaymentReturnService{
		profileRepo: profileRepo,
		gateway:     gateway,
		now:         time.Now,
		logger:      factory.NewModuleLogger("payment-return-service"),
	}
}

func (s *PaymentReturnService) ReconcilePayment(ctx context.Context, req reconcilePaymentRequest) (*ReconcileResult, error) {
	var outcome lifecycle.Outcome
	switch strings.ToLower(strings.TrimSpace(req.GetStatus())) {
	case string(lifecycle.OutcomeSuccess):
		outcome = lifecycle.OutcomeSuccess
	case string(lifecycle.OutcomeCancel):
		outcome = lifecycle.OutcomeCancel
	default:
		return nil, fmt.Errorf("%w: invalid return status", ErrInvalidRequest)
	}

	profile, err := loadProfile(ctx, s.profileRepo, req.GetVendorId())
	if err != nil {
		return nil, err
	}

	return s.reconcile(ctx, profile, outcome)
}

// CancelRecurring stops billing at the gateway, then settles the vendor on Basic.
func (s *PaymentReturnService) CancelRecurring(ctx context.Context, vendorID string) (*ReconcileResult, error) {
	profile, err := loadProfile(ctx, s.profileRepo, vendorID)
	if err != nil {
		return nil, err
	}
	if profile.PaymentToken == nil || strings.TrimSpace(*profile.PaymentToken) == "" {
		return nil, ErrNoPaymentToken
	}

	if err := s.gateway.CancelSubscription(ctx, *profile.PaymentToken); err != nil {
		s.logger.WithField("vendor_id", profile.ID).WithError(err).Error("gateway_cancel_failed")
		if errors.Is(err, payment.ErrConfigurationMissing) {
			return nil, ErrConfigurationMissing
		}
		return nil, fmt.Errorf("%w: %v", ErrGatewayRequestFailed, err)
	}

	return s.reconcile(ctx, profile, lifecycle.OutcomeCancel)
}

func (s *PaymentReturnService) UpdateCardURL(ctx context.Context, vendorID string) (string, error) {
	profile, err := loadProfile(ctx, s.profileRepo, vendorID)
	if err != nil {
		return "", err
	}
	if profile.PaymentToken == nil || strings.TrimSpace(*profile.PaymentToken) == "" {
		return "", ErrNoPaymentToken
	}

	url, err := s.gateway.UpdateCardURL(*profile.PaymentToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGatewayRequestFailed, err)
	}
	return url, nil
}

func (s *PaymentReturnService) reconcile(ctx context.Context, profile *entity.VendorProfile, outcome lifecycle.Outcome) (*ReconcileResult, error) {
	tr := lifecycle.Reconcile(profile, outcome)
	logger := s.logger.WithFields(logrus.Fields{
		"vendor_id": profile.ID,
		"outcome":   outcome,
	})

	changed := false
	for _, cmd := range tr.Commands {
		write, ok := cmd.(lifecycle.WriteProfile)
		if !ok {
			continue
		}
		if err := writeProfile(ctx, s.profileRepo, profile, write.Patch, s.now().UTC()); err != nil {
			logger.WithError(err).Error("payment_reconciliation_failed")
			return nil, err
		}
		changed = true
	}

	logger.WithFields(logrus.Fields{
		"changed": changed,
		"tier":    profile.CurrentTier,
	}).Info("payment_reconciled")

	return &ReconcileResult{Profile: profile, State: tr.Next, Changed: changed}, nil
}
