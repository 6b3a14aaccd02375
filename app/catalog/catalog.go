package catalog

import (
	"strings"

	"github.com/vibast-solutions/ms-go-vendor-billing/app/entity"
)

const (
	PlanBasic         = "basic"
	PlanOneRegion     = "one_region"
	PlanThreeRegions  = "three_regions"
	PlanProvincial    = "provincial"
	PlanMultiProvince = "multi_province"
)

var plans = []entity.Plan{
	{
		ID:                 PlanBasic,
		Name:               entity.TierBasic,
		MonthlyPrice:       0,
		TrialEligible:      false,
		RegionalLimitClass: entity.RegionalLimitBasic,
		Features:           []string{"Standard business listing", "Professional profile page", "Receive requests", "Appear in search", "3 specific regions"},
	},
	{
		ID:                 PlanOneRegion,
		Name:               "One Region",
		MonthlyPrice:       199,
		TrialEligible:      true,
		RegionalLimitClass: entity.RegionalLimitSingle,
		Features:           []string{"Be Seen First in your region", "Verified Pro Badge", "Appear in Top 8 local results", "Detailed Weekly Growth Reports"},
	},
	{
		ID:                 PlanThreeRegions,
		Name:               "Three Regions",
		MonthlyPrice:       299,
		TrialEligible:      true,
		RegionalLimitClass: entity.RegionalLimitThree,
		Features:           []string{"Be Seen First in 3 regions", "Verified Pro Badge", "Appear in Top 8 local results", "Detailed Weekly Growth Reports"},
	},
	{
		ID:                 PlanProvincial,
		Name:               "Provincial",
		MonthlyPrice:       599,
		TrialEligible:      true,
		RegionalLimitClass: entity.RegionalLimitProvince,
		Features:           []string{"Coverage for an entire province", "Everything in 'One Region'", "Featured on provincial home", "Priority support", "Advanced analytics"},
		Recommended:        true,
	},
	{
		ID:                 PlanMultiProvince,
		Name:               "Multi-Province",
		MonthlyPrice:       1499,
		TrialEligible:      true,
		RegionalLimitClass: entity.RegionalLimitNational,
		Features:           []string{"Unlimited multi-province coverage", "Everything in 'Provincial'", "Verified National Partner", "Unlimited category listings"},
	},
}

var limits = map[entity.RegionalLimitClass]entity.RegionalLimit{
	entity.RegionalLimitBasic:    {Provinces: 1, Regions: 3},
	entity.RegionalLimitSingle:   {Provinces: 1, Regions: 1},
	entity.RegionalLimitThree:    {Provinces: 1, Regions: 3},
	entity.RegionalLimitProvince: {Provinces: 1, Regions: entity.Unlimited},
	entity.RegionalLimitNational: {Provinces: 9, Regions: entity.Unlimited},
}

// ListPlans returns the catalog in declaration order. The slice is a copy.
func ListPlans() []entity.Plan {
	result := make([]entity.Plan, 0, len(plans))
	for _, plan := range plans {
		result = append(result, clonePlan(plan))
	}
	return result
}

func GetPlan(id string) (entity.Plan, bool) {
	id = strings.TrimSpace(id)
	for _, plan := range plans {
		if plan.ID == id {
			return clonePlan(plan), true
		}
	}
	return entity.Plan{}, false
}

// GetPlanByName resolves a tier name as stored on vendor profiles.
func GetPlanByName(name string) (entity.Plan, bool) {
	name = strings.TrimSpace(name)
	for _, plan := range plans {
		if strings.EqualFold(plan.Name, name) {
			return clonePlan(plan), true
		}
	}
	return entity.Plan{}, false
}

func BasicPlan() entity.Plan {
	plan, _ := GetPlan(PlanBasic)
	return plan
}

func Limits(class entity.RegionalLimitClass) entity.RegionalLimit {
	if limit, ok := limits[class]; ok {
		return limit
	}
	return limits[entity.RegionalLimitBasic]
}

// LimitsForTier returns the coverage caps of a tier name. Unknown or empty tiers get Basic caps.
func LimitsForTier(name string) entity.RegionalLimit {
	plan, ok := GetPlanByName(name)
	if !ok {
		return limits[entity.RegionalLimitBasic]
	}
	return Limits(plan.RegionalLimitClass)
}

func clonePlan(plan entity.Plan) entity.Plan {
	plan.Features = append([]string(nil), plan.Features...)
	return plan
}
