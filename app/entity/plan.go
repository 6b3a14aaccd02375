package entity

type RegionalLimitClass string

const (
	RegionalLimitBasic    RegionalLimitClass = "basic"
	RegionalLimitSingle   RegionalLimitClass = "single"
	RegionalLimitThree    RegionalLimitClass = "three"
	RegionalLimitProvince RegionalLimitClass = "province"
	RegionalLimitNational RegionalLimitClass = "national"
)

// Unlimited marks a coverage dimension without a cap.
const Unlimited = -1

type RegionalLimit struct {
	Provinces int
	Regions   int
}

// Allows reports whether a coverage set of the given sizes fits the limit.
func (l RegionalLimit) Allows(provinces, regions int) bool {
	if l.Provinces != Unlimited && provinces > l.Provinces {
		return false
	}
	if l.Regions != Unlimited && regions > l.Regions {
		return false
	}
	return true
}

type Plan struct {
	ID                 string
	Name               string
	MonthlyPrice       int64
	TrialEligible      bool
	RegionalLimitClass RegionalLimitClass
	Features           []string
	Recommended        bool
}

func (p Plan) IsFree() bool {
	return p.MonthlyPrice == 0
}
