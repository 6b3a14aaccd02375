package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-vendor-billing/app/entity"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/lifecycle"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/payment"
)

func pendingVendor() *entity.VendorProfile {
	profile := basicVendor()
	profile.PendingTier = strPtr("Provincial")
	return profile
}

func TestReconcilePaymentSuccess(t *testing.T) {
	profile := pendingVendor()
	repo := repoWith(profile)
	svc := NewPaymentReturnService(repo, &fakeGateway{})

	result, err := svc.ReconcilePayment(context.Background(), reconcileReq{vendorID: "v1", status: "success"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !result.Changed {
		t.Fatal("expected a change")
	}
	if profile.CurrentTier != "Provincial" || profile.PendingTier != nil || !profile.IsApproved {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if result.State != (lifecycle.Active{Tier: "Provincial"}) {
		t.Fatalf("unexpected state: %#v", result.State)
	}
}

func TestReconcilePaymentSuccessWithoutPendingIsNoop(t *testing.T) {
	repo := repoWith(basicVendor())
	svc := NewPaymentReturnService(repo, &fakeGateway{})

	result, err := svc.ReconcilePayment(context.Background(), reconcileReq{vendorID: "v1", status: "SUCCESS"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Changed || len(repo.patches) != 0 {
		t.Fatal("expected no write")
	}
}

func TestReconcilePaymentCancel(t *testing.T) {
	profile := pendingVendor()
	profile.CurrentTier = "Three Regions"
	profile.Regions = []string{"Sandton/Rivonia", "Midrand", "Soweto"}
	repo := repoWith(profile)
	svc := NewPaymentReturnService(repo, &fakeGateway{})

	if _, err := svc.ReconcilePayment(context.Background(), reconcileReq{vendorID: "v1", status: "cancel"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if profile.CurrentTier != entity.TierBasic || profile.PendingTier != nil {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if !reflect.DeepEqual(profile.Regions, []string{"Sandton/Rivonia"}) {
		t.Fatalf("expected baseline regions, got %v", profile.Regions)
	}
}

func TestReconcilePaymentInvalidStatus(t *testing.T) {
	svc := NewPaymentReturnService(repoWith(pendingVendor()), &fakeGateway{})

	if _, err := svc.ReconcilePayment(context.Background(), reconcileReq{vendorID: "v1", status: "failed"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestReconcilePaymentWriteFailureSurfaces(t *testing.T) {
	repo := repoWith(pendingVendor())
	calls := 0
	repo.applyPatchFn = func(context.Context, string, entity.ProfilePatch, time.Time) error {
		calls++
		return errors.New("lock wait timeout")
	}
	svc := NewPaymentReturnService(repo, &fakeGateway{})

	_, err := svc.ReconcilePayment(context.Background(), reconcileReq{vendorID: "v1", status: "success"})
	if !errors.Is(err, ErrProfileWriteFailed) {
		t.Fatalf("expected ErrProfileWriteFailed, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("reconciliation writes must not be retried, got %d attempts", calls)
	}
}

func TestReconcilePaymentVendorNotFound(t *testing.T) {
	svc := NewPaymentReturnService(repoWith(nil), &fakeGateway{})

	if _, err := svc.ReconcilePayment(context.Background(), reconcileReq{vendorID: "v1", status: "success"}); !errors.Is(err, ErrVendorNotFound) {
		t.Fatalf("expected ErrVendorNotFound, got %v", err)
	}
}

func TestCancelRecurring(t *testing.T) {
	profile := basicVendor()
	profile.CurrentTier = "Provincial"
	profile.PaymentToken = strPtr("tok-1")
	gateway := &fakeGateway{}
	svc := NewPaymentReturnService(repoWith(profile), gateway)

	result, err := svc.CancelRecurring(context.Background(), "v1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(gateway.cancelledTokens, []string{"tok-1"}) {
		t.Fatalf("unexpected cancelled tokens: %v", gateway.cancelledTokens)
	}
	if result.Profile.CurrentTier != entity.TierBasic {
		t.Fatalf("expected Basic after cancel, got %s", result.Profile.CurrentTier)
	}
}

func TestCancelRecurringWithoutToken(t *testing.T) {
	gateway := &fakeGateway{}
	svc := NewPaymentReturnService(repoWith(basicVendor()), gateway)

	if _, err := svc.CancelRecurring(context.Background(), "v1"); !errors.Is(err, ErrNoPaymentToken) {
		t.Fatalf("expected ErrNoPaymentToken, got %v", err)
	}
	if len(gateway.cancelledTokens) != 0 {
		t.Fatal("gateway must not be called")
	}
}

func TestCancelRecurringGatewayFailureKeepsProfile(t *testing.T) {
	profile := basicVendor()
	profile.CurrentTier = "Provincial"
	profile.PaymentToken = strPtr("tok-1")
	repo := repoWith(profile)
	gateway := &fakeGateway{cancelFn: func(context.Context, string) error {
		return payment.ErrGatewayRequestFailed
	}}
	svc := NewPaymentReturnService(repo, gateway)

	if _, err := svc.CancelRecurring(context.Background(), "v1"); !errors.Is(err, ErrGatewayRequestFailed) {
		t.Fatalf("expected ErrGatewayRequestFailed, got %v", err)
	}
	if len(repo.patches) != 0 || profile.CurrentTier != "Provincial" {
		t.Fatal("profile must not change when the gateway rejects the cancel")
	}

	gateway.cancelFn = func(context.Context, string) error { return payment.ErrConfigurationMissing }
	if _, err := svc.CancelRecurring(context.Background(), "v1"); !errors.Is(err, ErrConfigurationMissing) {
		t.Fatalf("expected ErrConfigurationMissing, got %v", err)
	}
}

func TestUpdateCardURL(t *testing.T) {
	profile := basicVendor()
	profile.PaymentToken = strPtr("tok-1")
	svc := NewPaymentReturnService(repoWith(profile), &fakeGateway{})

	url, err := svc.UpdateCardURL(context.Background(), "v1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if url != "https://gateway.test/eng/recurring/update/tok-1" {
		t.Fatalf("unexpected url: %s", url)
	}

	profile.PaymentToken = nil
	if _, err := svc.UpdateCardURL(context.Background(), "v1"); !errors.Is(err, ErrNoPaymentToken) {
		t.Fatalf("expected ErrNoPaymentToken, got %v", err)
	}
}
