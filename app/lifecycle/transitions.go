package lifecycle

import (
	"errors"
	"strings"

	"github.com/vibast-solutions/ms-go-vendor-billing/app/catalog"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/entity"
)

var (
	ErrPlanNotFound      = errors.New("plan not found")
	ErrPlanAlreadyActive = errors.New("plan already active")
)

type Confirmations struct {
	TermsAccepted      bool
	DowngradeConfirmed bool
}

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeCancel  Outcome = "cancel"
)

func SelectPlan(profile *entity.VendorProfile, planID string, confirm Confirmations) (Transition, error) {
	current := Derive(profile)

	plan, ok := catalog.GetPlan(planID)
	if !ok {
		return Transition{}, ErrPlanNotFound
	}
	if active, ok := current.(Active); ok && strings.EqualFold(active.Tier, plan.Name) {
		return Transition{}, ErrPlanAlreadyActive
	}

	if !confirm.DowngradeConfirmed && plan.MonthlyPrice < currentPrice(profile) {
		return Transition{Next: current, Gate: GateDowngrade}, nil
	}

	if plan.IsFree() {
		patch := entity.ProfilePatch{
			CurrentTier:       stringPtr(entity.TierBasic),
			ClearPendingTier:  true,
			IsApproved:        boolPtr(true),
			ClearIntendedTier: true,
		}
		resetCoverageIfExceeded(profile, catalog.Limits(plan.RegionalLimitClass), &patch)
		return Transition{
			Next:     Active{Tier: entity.TierBasic},
			Commands: []Command{WriteProfile{Patch: patch}},
		}, nil
	}

	if plan.TrialEligible && !confirm.TermsAccepted {
		return Transition{Next: current, Gate: GateTerms}, nil
	}

	return Transition{
		Next: PendingPayment{Current: strings.TrimSpace(profile.CurrentTier), Target: plan.Name},
		Commands: []Command{
			PreparePayment{Plan: plan},
			WriteProfile{Patch: entity.ProfilePatch{
				PendingTier:       stringPtr(plan.Name),
				ClearIntendedTier: true,
			}},
			OpenRedirect{},
		},
	}, nil
}

func Reconcile(profile *entity.VendorProfile, outcome Outcome) Transition {
	if outcome == OutcomeCancel {
		provinces, regions := profile.BaselineCoverage()
		return Transition{
			Next: Active{Tier: entity.TierBasic},
			Commands: []Command{WriteProfile{Patch: entity.ProfilePatch{
				CurrentTier:      stringPtr(entity.TierBasic),
				ClearPendingTier: true,
				Provinces:        provinces,
				Regions:          regions,
			}}},
		}
	}

	if profile.PendingTier == nil || *profile.PendingTier == "" {
		return Transition{Next: Derive(profile)}
	}

	tier := *profile.PendingTier
	patch := entity.ProfilePatch{
		CurrentTier:      stringPtr(tier),
		ClearPendingTier: true,
		IsApproved:       boolPtr(true),
	}
	resetCoverageIfExceeded(profile, catalog.LimitsForTier(tier), &patch)

	return Transition{
		Next:     Active{Tier: tier},
		Commands: []Command{WriteProfile{Patch: patch}},
	}
}

// ClearPending drops an outstanding payment without touching the active tier.
func ClearPending(profile *entity.VendorProfile) Transition {
	if profile.PendingTier == nil {
		return Transition{Next: Derive(profile)}
	}
	next := *profile
	next.PendingTier = nil
	return Transition{
		Next:     Derive(&next),
		Commands: []Command{WriteProfile{Patch: entity.ProfilePatch{ClearPendingTier: true}}},
	}
}

func currentPrice(profile *entity.VendorProfile) int64 {
	plan, ok := catalog.GetPlanByName(strings.TrimSpace(profile.CurrentTier))
	if !ok {
		return 0
	}
	return plan.MonthlyPrice
}

func resetCoverageIfExceeded(profile *entity.VendorProfile, limit entity.RegionalLimit, patch *entity.ProfilePatch) {
	if limit.Allows(len(profile.Provinces), len(profile.Regions)) {
		return
	}
	patch.Provinces, patch.Regions = profile.BaselineCoverage()
}

func stringPtr(value string) *string {
	return &value
}

func boolPtr(value bool) *bool {
	return &value
}
