package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-vendor-billing/app/entity"
)

type vendorProfileRepository interface {
	Create(ctx context.Context, profile *entity.VendorProfile) error
	FindByID(ctx context.Context, id string) (*entity.VendorProfile, error)
	ApplyPatch(ctx context.Context, id string, patch entity.ProfilePatch, updatedAt time.Time) error
	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]*entity.VendorProfile, error)
}

func loadProfile(ctx context.Context, repo vendorProfileRepository, vendorID string) (*entity.VendorProfile, error) {
	vendorID = strings.TrimSpace(vendorID)
	if vendorID == "" {
		return nil, fmt.Errorf("%w: vendor_id is required", ErrInvalidRequest)
	}

	profile, err := repo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrVendorNotFound
	}
	return profile, nil
}

// writeProfile persists patch and mirrors it onto profile. Any store failure is a write failure.
func writeProfile(ctx context.Context, repo vendorProfileRepository, profile *entity.VendorProfile, patch entity.ProfilePatch, now time.Time) error {
	if patch.IsEmpty() {
		return nil
	}
	if err := repo.ApplyPatch(ctx, profile.ID, patch, now); err != nil {
		return fmt.Errorf("%w: %v", ErrProfileWriteFailed, err)
	}
	profile.ApplyAt(patch, now)
	return nil
}
