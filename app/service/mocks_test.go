package service

import (
	"context"
	"time"

	"github.com/vibast-solutions/ms-go-vendor-billing/app/entity"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/payment"
)

type mockVendorProfileRepo struct {
	createFn            func(ctx context.Context, profile *entity.VendorProfile) error
	findByIDFn          func(ctx context.Context, id string) (*entity.VendorProfile, error)
	applyPatchFn        func(ctx context.Context, id string, patch entity.ProfilePatch, updatedAt time.Time) error
	listPendingBeforeFn func(ctx context.Context, cutoff time.Time) ([]*entity.VendorProfile, error)

	patches []entity.ProfilePatch
}

func (m *mockVendorProfileRepo) Create(ctx context.Context, profile *entity.VendorProfile) error {
	if m.createFn != nil {
		return m.createFn(ctx, profile)
	}
	return nil
}

func (m *mockVendorProfileRepo) FindByID(ctx context.Context, id string) (*entity.VendorProfile, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockVendorProfileRepo) ApplyPatch(ctx context.Context, id string, patch entity.ProfilePatch, updatedAt time.Time) error {
	m.patches = append(m.patches, patch)
	if m.applyPatchFn != nil {
		return m.applyPatchFn(ctx, id, patch, updatedAt)
	}
	return nil
}

func (m *mockVendorProfileRepo) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]*entity.VendorProfile, error) {
	if m.listPendingBeforeFn != nil {
		return m.listPendingBeforeFn(ctx, cutoff)
	}
	return nil, nil
}

type fakePaymentService struct {
	result      payment.Result
	err         error
	panicWith   string
	calledCount int
	lastInput   payment.Checkout
	onCall      func()
}

func (f *fakePaymentService) PrepareSubscriptionPayment(_ context.Context, checkout payment.Checkout) (payment.Result, error) {
	f.calledCount++
	f.lastInput = checkout
	if f.onCall != nil {
		f.onCall()
	}
	if f.panicWith != "" {
		panic(f.panicWith)
	}
	return f.result, f.err
}

type fakeRedirector struct {
	err      error
	opened   []string
	vendorID string
}

func (f *fakeRedirector) Open(_ context.Context, vendorID string, paymentURL string) error {
	f.vendorID = vendorID
	f.opened = append(f.opened, paymentURL)
	return f.err
}

type fakeGateway struct {
	cancelFn        func(ctx context.Context, token string) error
	updateCardURLFn func(token string) (string, error)
	cancelledTokens []string
}

func (f *fakeGateway) CancelSubscription(ctx context.Context, token string) error {
	f.cancelledTokens = append(f.cancelledTokens, token)
	if f.cancelFn != nil {
		return f.cancelFn(ctx, token)
	}
	return nil
}

func (f *fakeGateway) UpdateCardURL(token string) (string, error) {
	if f.updateCardURLFn != nil {
		return f.updateCardURLFn(token)
	}
	return "https://gateway.test/eng/recurring/update/" + token, nil
}

type selectPlanReq struct {
	vendorID           string
	planID             string
	termsAccepted      bool
	downgradeConfirmed bool
}

func (r selectPlanReq) GetVendorId() string         { return r.vendorID }
func (r selectPlanReq) GetPlanId() string           { return r.planID }
func (r selectPlanReq) GetTermsAccepted() bool      { return r.termsAccepted }
func (r selectPlanReq) GetDowngradeConfirmed() bool { return r.downgradeConfirmed }

type registerReq struct {
	vendorID     string
	email        string
	provinces    []string
	regions      []string
	intendedTier string
}

func (r registerReq) GetVendorId() string     { return r.vendorID }
func (r registerReq) GetEmail() string        { return r.email }
func (r registerReq) GetProvinces() []string  { return r.provinces }
func (r registerReq) GetRegions() []string    { return r.regions }
func (r registerReq) GetIntendedTier() string { return r.intendedTier }

type coverageReq struct {
	vendorID  string
	provinces []string
	regions   []string
}

func (r coverageReq) GetVendorId() string    { return r.vendorID }
func (r coverageReq) GetProvinces() []string { return r.provinces }
func (r coverageReq) GetRegions() []string   { return r.regions }

type reconcileReq struct {
	vendorID string
	status   string
}

func (r reconcileReq) GetVendorId() string { return r.vendorID }
func (r reconcileReq) GetStatus() string   { return r.status }

func strPtr(value string) *string {
	return &value
}

func basicVendor() *entity.VendorProfile {
	return &entity.VendorProfile{
		ID:                   "v1",
		Email:                "vendor@example.com",
		CurrentTier:          entity.TierBasic,
		Provinces:            []string{"Gauteng"},
		Regions:              []string{"Sandton/Rivonia"},
		RegistrationProvince: "Gauteng",
		RegistrationRegion:   "Sandton/Rivonia",
	}
}

func repoWith(profile *entity.VendorProfile) *mockVendorProfileRepo {
	return &mockVendorProfileRepo{findByIDFn: func(_ context.Context, id string) (*entity.VendorProfile, error) {
		if profile == nil || id != profile.ID {
			return nil, nil
		}
		return profile, nil
	}}
}
