package mapper

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/billing"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/catalog"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/entity"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/lifecycle"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/service"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/types"
)

func PlanToProto(plan entity.Plan) *types.Plan {
	limit := catalog.Limits(plan.RegionalLimitClass)
	return &types.Plan{
		Id:                 plan.ID,
		Name:               plan.Name,
		MonthlyPrice:       billing.FormatAmount(decimal.NewFromInt(plan.MonthlyPrice)),
		TrialEligible:      plan.TrialEligible,
		RegionalLimitClass: string(plan.RegionalLimitClass),
		MaxProvinces:       int32(limit.Provinces),
		MaxRegions:         int32(limit.Regions),
		Features:           append([]string{}, plan.Features...),
		Recommended:        plan.Recommended,
	}
}

func PlansToProto(plans []entity.Plan) []*types.Plan {
	result := make([]*types.Plan, 0, len(plans))
	for _, plan := range plans {
		result = append(result, PlanToProto(plan))
	}
	return result
}

func LocationsToProto() []*types.Province {
	provinces := catalog.Provinces()
	result := make([]*types.Province, 0, len(provinces))
	for _, name := range provinces {
		result = append(result, &types.Province{Name: name, Regions: catalog.RegionsOf(name)})
	}
	return result
}

func VendorProfileToProto(profile *entity.VendorProfile) *types.VendorProfile {
	if profile == nil {
		return nil
	}

	return &types.VendorProfile{
		Id:                   profile.ID,
		Email:                profile.Email,
		CurrentTier:          profile.CurrentTier,
		PendingTier:          derefString(profile.PendingTier),
		IsApproved:           profile.IsApproved,
		Provinces:            nonNil(profile.Provinces),
		Regions:              nonNil(profile.Regions),
		RegistrationProvince: profile.RegistrationProvince,
		RegistrationRegion:   profile.RegistrationRegion,
		IntendedTier:         derefString(profile.IntendedTier),
		HasPaymentToken:      derefString(profile.PaymentToken) != "",
		CreatedAt:            formatTime(profile.CreatedAt),
		UpdatedAt:            formatTime(profile.UpdatedAt),
	}
}

func SubscriptionToProto(state lifecycle.State, plan *entity.Plan, limit entity.RegionalLimit) *types.Subscription {
	if state == nil {
		return nil
	}

	result := &types.Subscription{
		State:        string(state.Kind()),
		MaxProvinces: int32(limit.Provinces),
		MaxRegions:   int32(limit.Regions),
	}
	switch s := state.(type) {
	case lifecycle.PendingPayment:
		result.CurrentTier = s.Current
		result.PendingTier = s.Target
	case lifecycle.Active:
		result.CurrentTier = s.Tier
	}
	if plan != nil {
		result.Plan = PlanToProto(*plan)
	}
	return result
}

func SubscriptionViewToProto(view *service.SubscriptionView) *types.GetVendorSubscriptionResponse {
	if view == nil {
		return nil
	}

	return &types.GetVendorSubscriptionResponse{
		Vendor:       VendorProfileToProto(view.Profile),
		Subscription: SubscriptionToProto(view.State, view.Plan, view.Limits),
	}
}

func SelectPlanResultToProto(result *service.SelectPlanResult) *types.SelectPlanResponse {
	if result == nil {
		return nil
	}

	resp := &types.SelectPlanResponse{
		Vendor:               VendorProfileToProto(result.Profile),
		Subscription:         subscriptionOf(result.Profile),
		Plan:                 PlanToProto(result.Plan),
		ConfirmationRequired: string(result.Gate),
		Reference:            result.Reference,
		PaymentUrl:           result.PaymentURL,
	}
	if result.Terms != nil {
		resp.Terms = &types.BillingTerms{
			InitialAmount:   result.Terms.InitialAmount,
			RecurringAmount: result.Terms.RecurringAmount,
			BillingDate:     result.Terms.BillingDate,
		}
	}
	return resp
}

func ReconcileResultToProto(result *service.ReconcileResult) *types.ReconcilePaymentResponse {
	if result == nil {
		return nil
	}

	return &types.ReconcilePaymentResponse{
		Vendor:       VendorProfileToProto(result.Profile),
		Subscription: subscriptionOf(result.Profile),
		Changed:      result.Changed,
	}
}

// subscriptionOf reports the stored state of the profile, which is what the vendor sees on reload.
func subscriptionOf(profile *entity.VendorProfile) *types.Subscription {
	if profile == nil {
		return nil
	}
	var plan *entity.Plan
	if p, ok := catalog.GetPlanByName(profile.CurrentTier); ok {
		plan = &p
	}
	return SubscriptionToProto(lifecycle.Derive(profile), plan, catalog.LimitsForTier(profile.CurrentTier))
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}
