package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/billing"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/catalog"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/entity"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/factory"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/lifecycle"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/payment"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/repository"
)

type registerVendorRequest interface {
	GetVendorId() string
	GetEmail() string
	GetProvinces() []string
	GetRegions() []string
	GetIntendedTier() string
}

type selectPlanRequest interface {
	GetVendorId() string
	GetPlanId() string
	GetTermsAccepted() bool
	GetDowngradeConfirmed() bool
}

type autoTriggerRequest interface {
	GetVendorId() string
	GetTermsAccepted() bool
	GetDowngradeConfirmed() bool
}

type updateCoverageRequest interface {
	GetVendorId() string
	GetProvinces() []string
	GetRegions() []string
}

type SubscriptionView struct {
	Profile *entity.VendorProfile
	State   lifecycle.State
	Plan    *entity.Plan
	Limits  entity.RegionalLimit
}

type SelectPlanResult struct {
	Profile    *entity.VendorProfile
	State      lifecycle.State
	Gate       lifecycle.Gate
	Plan       entity.Plan
	Terms      *billing.Terms
	Reference  string
	PaymentURL string
}

type VendorSubscriptionService struct {
	profileRepo    vendorProfileRepository
	paymentService payment.Service
	redirector     payment.Redirector
	location       *time.Location
	now            func() time.Time
	logger         logrus.FieldLogger
}

func NewVendorSubscriptionService(
	profileRepo vendorProfileRepository,
	paymentService payment.Service,
	redirector payment.Redirector,
	location *time.Location,
) *VendorSubscriptionService {
	if location == nil {
		location = time.UTC
	}
	return &VendorSubscriptionService{
		profileRepo:    profileRepo,
		paymentService: paymentService,
		redirector:     redirector,
		location:       location,
		now:            time.Now,
		logger:         factory.NewModuleLogger("vendor-subscription-service"),
	}
}

func (s *VendorSubscriptionService) RegisterVendor(ctx context.Context, req registerVendorRequest) (*entity.VendorProfile, error) {
	vendorID := strings.TrimSpace(req.GetVendorId())
	if vendorID == "" {
		return nil, fmt.Errorf("%w: vendor_id is required", ErrInvalidRequest)
	}

	plan := catalog.BasicPlan()
	if intendedID := strings.TrimSpace(req.GetIntendedTier()); intendedID != "" {
		intended, ok := catalog.GetPlan(intendedID)
		if !ok {
			return nil, ErrPlanNotFound
		}
		plan = intended
	}

	provinces := normalizeList(req.GetProvinces())
	regions := normalizeList(req.GetRegions())
	if len(provinces) == 0 || len(regions) == 0 {
		return nil, fmt.Errorf("%w: at least one province and one region are required", ErrInvalidRequest)
	}
	if err := validateCoverage(provinces, regions, catalog.Limits(plan.RegionalLimitClass)); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	profile := &entity.VendorProfile{
		ID:                   vendorID,
		Email:                strings.TrimSpace(req.GetEmail()),
		Provinces:            provinces,
		Regions:              regions,
		RegistrationProvince: provinces[0],
		RegistrationRegion:   regions[0],
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if plan.IsFree() {
		profile.CurrentTier = entity.TierBasic
	} else {
		planID := plan.ID
		profile.IntendedTier = &planID
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrVendorProfileAlreadyExists) {
			return nil, ErrVendorAlreadyExists
		}
		return nil, err
	}

	return profile, nil
}

func (s *VendorSubscriptionService) GetSubscription(ctx context.Context, vendorID string) (*SubscriptionView, error) {
	profile, err := loadProfile(ctx, s.profileRepo, vendorID)
	if err != nil {
		return nil, err
	}
	return newSubscriptionView(profile), nil
}

func (s *VendorSubscriptionService) SelectPlan(ctx context.Context, req selectPlanRequest) (*SelectPlanResult, error) {
	profile, err := loadProfile(ctx, s.profileRepo, req.GetVendorId())
	if err != nil {
		return nil, err
	}

	return s.selectPlan(ctx, profile, req.GetPlanId(), lifecycle.Confirmations{
		TermsAccepted:      req.GetTermsAccepted(),
		DowngradeConfirmed: req.GetDowngradeConfirmed(),
	})
}

// AutoTrigger resumes the paid selection recorded at registration.
func (s *VendorSubscriptionService) AutoTrigger(ctx context.Context, req autoTriggerRequest) (*SelectPlanResult, error) {
	profile, err := loadProfile(ctx, s.profileRepo, req.GetVendorId())
	if err != nil {
		return nil, err
	}
	if profile.IntendedTier == nil || strings.TrimSpace(*profile.IntendedTier) == "" {
		return nil, ErrNoIntendedTier
	}

	return s.selectPlan(ctx, profile, *profile.IntendedTier, lifecycle.Confirmations{
		TermsAccepted:      req.GetTermsAccepted(),
		DowngradeConfirmed: req.GetDowngradeConfirmed(),
	})
}

func (s *VendorSubscriptionService) UpdateCoverage(ctx context.Context, req updateCoverageRequest) (*entity.VendorProfile, error) {
	profile, err := loadProfile(ctx, s.profileRepo, req.GetVendorId())
	if err != nil {
		return nil, err
	}

	provinces := normalizeList(req.GetProvinces())
	regions := normalizeList(req.GetRegions())
	if err := validateCoverage(provinces, regions, catalog.LimitsForTier(profile.CurrentTier)); err != nil {
		return nil, err
	}

	patch := entity.ProfilePatch{Provinces: provinces, Regions: regions}
	if err := writeProfile(ctx, s.profileRepo, profile, patch, s.now().UTC()); err != nil {
		s.logger.WithField("vendor_id", profile.ID).WithError(err).Error("coverage_update_failed")
		return nil, err
	}

	return profile, nil
}

// ClearPending is a manual operator correction for a payment that will never return.
func (s *VendorSubscriptionService) ClearPending(ctx context.Context, vendorID string) (*SubscriptionView, error) {
	profile, err := loadProfile(ctx, s.profileRepo, vendorID)
	if err != nil {
		return nil, err
	}

	tr := lifecycle.ClearPending(profile)
	if err := s.applyWrites(ctx, profile, tr); err != nil {
		return nil, err
	}

	s.logger.WithField("vendor_id", profile.ID).Info("pending_payment_cleared")
	return newSubscriptionView(profile), nil
}

func (s *VendorSubscriptionService) ListStalePending(ctx context.Context, age time.Duration) ([]*entity.VendorProfile, error) {
	if age < 0 {
		return nil, fmt.Errorf("%w: age must not be negative", ErrInvalidRequest)
	}
	return s.profileRepo.ListPendingBefore(ctx, s.now().UTC().Add(-age))
}

func (s *VendorSubscriptionService) selectPlan(ctx context.Context, profile *entity.VendorProfile, planID string, confirm lifecycle.Confirmations) (*SelectPlanResult, error) {
	tr, err := lifecycle.SelectPlan(profile, planID, confirm)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrPlanNotFound):
			return nil, ErrPlanNotFound
		case errors.Is(err, lifecycle.ErrPlanAlreadyActive):
			return nil, ErrPlanAlreadyActive
		}
		return nil, err
	}

	plan, _ := catalog.GetPlan(planID)
	result := &SelectPlanResult{
		Profile: profile,
		State:   tr.Next,
		Gate:    tr.Gate,
		Plan:    plan,
	}
	if tr.Gate != lifecycle.GateNone {
		return result, nil
	}

	logger := s.logger.WithFields(logrus.Fields{
		"vendor_id": profile.ID,
		"plan_id":   plan.ID,
	})

	var prepared payment.Result
	for _, cmd := range tr.Commands {
		switch c := cmd.(type) {
		case lifecycle.PreparePayment:
			terms := billing.ComputeTerms(c.Plan.MonthlyPrice, c.Plan.TrialEligible, s.today())
			prepared, err = s.preparePaymentSafely(ctx, payment.Checkout{
				VendorID: profile.ID,
				Email:    profile.Email,
				Plan:     c.Plan,
				Terms:    terms,
			})
			if err != nil {
				logger.WithError(err).Error("payment_preparation_failed")
				return nil, mapPaymentError(err)
			}
			result.Terms = &terms
			result.Reference = prepared.Reference
			result.PaymentURL = prepared.PaymentURL
		case lifecycle.WriteProfile:
			if err := writeProfile(ctx, s.profileRepo, profile, c.Patch, s.now().UTC()); err != nil {
				logger.WithError(err).Error("profile_write_failed")
				return nil, err
			}
		case lifecycle.OpenRedirect:
			if err := s.redirector.Open(ctx, profile.ID, prepared.PaymentURL); err != nil {
				logger.WithError(err).Error("payment_redirect_failed")
				return nil, fmt.Errorf("%w: %v", ErrRedirectFailed, err)
			}
		}
	}

	logger.WithField("state", tr.Next.Kind()).Info("plan_selected")
	return result, nil
}

func (s *VendorSubscriptionService) applyWrites(ctx context.Context, profile *entity.VendorProfile, tr lifecycle.Transition) error {
	for _, cmd := range tr.Commands {
		write, ok := cmd.(lifecycle.WriteProfile)
		if !ok {
			continue
		}
		if err := writeProfile(ctx, s.profileRepo, profile, write.Patch, s.now().UTC()); err != nil {
			s.logger.WithField("vendor_id", profile.ID).WithError(err).Error("profile_write_failed")
			return err
		}
	}
	return nil
}

func (s *VendorSubscriptionService) today() time.Time {
	return s.now().In(s.location)
}

func (s *VendorSubscriptionService) preparePaymentSafely(ctx context.Context, checkout payment.Checkout) (_ payment.Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", payment.ErrSignatureComputationFailed, rec)
		}
	}()

	return s.paymentService.PrepareSubscriptionPayment(ctx, checkout)
}

func newSubscriptionView(profile *entity.VendorProfile) *SubscriptionView {
	view := &SubscriptionView{
		Profile: profile,
		State:   lifecycle.Derive(profile),
		Limits:  catalog.LimitsForTier(profile.CurrentTier),
	}
	if plan, ok := catalog.GetPlanByName(profile.CurrentTier); ok {
		view.Plan = &plan
	}
	return view
}

func mapPaymentError(err error) error {
	switch {
	case errors.Is(err, payment.ErrConfigurationMissing):
		return ErrConfigurationMissing
	case errors.Is(err, payment.ErrSignatureComputationFailed):
		return ErrSignatureComputationFailed
	case errors.Is(err, payment.ErrGatewayRequestFailed):
		return fmt.Errorf("%w: %v", ErrGatewayRequestFailed, err)
	}
	return err
}
