package cmd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vibast-solutions/ms-go-vendor-billing/app/entity"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/service"
)

type jobsProfileRepo struct {
	listPendingBeforeFn func(ctx context.Context, cutoff time.Time) ([]*entity.VendorProfile, error)
}

func (r *jobsProfileRepo) Create(context.Context, *entity.VendorProfile) error {
	return nil
}

func (r *jobsProfileRepo) FindByID(context.Context, string) (*entity.VendorProfile, error) {
	return nil, nil
}

func (r *jobsProfileRepo) ApplyPatch(context.Context, string, entity.ProfilePatch, time.Time) error {
	return nil
}

func (r *jobsProfileRepo) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]*entity.VendorProfile, error) {
	return r.listPendingBeforeFn(ctx, cutoff)
}

func TestReportStalePendingUsesAge(t *testing.T) {
	var gotCutoff time.Time
	pending := "Provincial"
	repo := &jobsProfileRepo{listPendingBeforeFn: func(_ context.Context, cutoff time.Time) ([]*entity.VendorProfile, error) {
		gotCutoff = cutoff
		return []*entity.VendorProfile{{ID: "v1", CurrentTier: "Basic", PendingTier: &pending}}, nil
	}}
	svc := service.NewVendorSubscriptionService(repo, nil, nil, time.UTC)

	before := time.Now().UTC()
	if err := reportStalePending(context.Background(), svc, 2*time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotCutoff.After(before.Add(-2*time.Hour).Add(time.Minute)) || gotCutoff.Before(before.Add(-2*time.Hour).Add(-time.Minute)) {
		t.Fatalf("unexpected cutoff %v", gotCutoff)
	}
}

func TestReportStalePendingPropagatesErrors(t *testing.T) {
	repo := &jobsProfileRepo{listPendingBeforeFn: func(context.Context, time.Time) ([]*entity.VendorProfile, error) {
		return nil, errors.New("db down")
	}}
	svc := service.NewVendorSubscriptionService(repo, nil, nil, time.UTC)

	if err := reportStalePending(context.Background(), svc, time.Hour); err == nil {
		t.Fatal("expected error")
	}
}
