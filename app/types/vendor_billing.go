package types

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type Plan struct {
	Id                 string   `json:"id"`
	Name               string   `json:"name"`
	MonthlyPrice       string   `json:"monthly_price"`
	TrialEligible      bool     `json:"trial_eligible"`
	RegionalLimitClass string   `json:"regional_limit_class"`
	MaxProvinces       int32    `json:"max_provinces"`
	MaxRegions         int32    `json:"max_regions"`
	Features           []string `json:"features"`
	Recommended        bool     `json:"recommended"`
}

func (x *Plan) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Plan) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Plan) GetMonthlyPrice() string {
	if x != nil {
		return x.MonthlyPrice
	}
	return ""
}

type ListPlansRequest struct{}

type ListPlansResponse struct {
	Plans []*Plan `json:"plans"`
}

func (x *ListPlansResponse) GetPlans() []*Plan {
	if x != nil {
		return x.Plans
	}
	return nil
}

type GetPlanRequest struct {
	Id string `json:"id" validate:"required"`
}

func (x *GetPlanRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type PlanEnvelopeResponse struct {
	Plan *Plan `json:"plan"`
}

type Province struct {
	Name    string   `json:"name"`
	Regions []string `json:"regions"`
}

type LocationsResponse struct {
	Provinces []*Province `json:"provinces"`
}

type VendorProfile struct {
	Id                   string   `json:"id"`
	Email                string   `json:"email,omitempty"`
	CurrentTier          string   `json:"current_tier"`
	PendingTier          string   `json:"pending_tier,omitempty"`
	IsApproved           bool     `json:"is_approved"`
	Provinces            []string `json:"provinces"`
	Regions              []string `json:"regions"`
	RegistrationProvince string   `json:"registration_province,omitempty"`
	RegistrationRegion   string   `json:"registration_region,omitempty"`
	IntendedTier         string   `json:"intended_tier,omitempty"`
	HasPaymentToken      bool     `json:"has_payment_token"`
	CreatedAt            string   `json:"created_at"`
	UpdatedAt            string   `json:"updated_at"`
}

func (x *VendorProfile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *VendorProfile) GetCurrentTier() string {
	if x != nil {
		return x.CurrentTier
	}
	return ""
}

func (x *VendorProfile) GetPendingTier() string {
	if x != nil {
		return x.PendingTier
	}
	return ""
}

func (x *VendorProfile) GetIsApproved() bool {
	if x != nil {
		return x.IsApproved
	}
	return false
}

func (x *VendorProfile) GetIntendedTier() string {
	if x != nil {
		return x.IntendedTier
	}
	return ""
}

// Subscription is the derived lifecycle state of a vendor together with the limits in force.
type Subscription struct {
	State        string `json:"state"`
	CurrentTier  string `json:"current_tier,omitempty"`
	PendingTier  string `json:"pending_tier,omitempty"`
	Plan         *Plan  `json:"plan,omitempty"`
	MaxProvinces int32  `json:"max_provinces"`
	MaxRegions   int32  `json:"max_regions"`
}

func (x *Subscription) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *Subscription) GetCurrentTier() string {
	if x != nil {
		return x.CurrentTier
	}
	return ""
}

func (x *Subscription) GetPendingTier() string {
	if x != nil {
		return x.PendingTier
	}
	return ""
}

func (x *Subscription) GetPlan() *Plan {
	if x != nil {
		return x.Plan
	}
	return nil
}

type BillingTerms struct {
	InitialAmount   string `json:"initial_amount"`
	RecurringAmount string `json:"recurring_amount"`
	BillingDate     string `json:"billing_date"`
}

func (x *BillingTerms) GetInitialAmount() string {
	if x != nil {
		return x.InitialAmount
	}
	return ""
}

func (x *BillingTerms) GetRecurringAmount() string {
	if x != nil {
		return x.RecurringAmount
	}
	return ""
}

func (x *BillingTerms) GetBillingDate() string {
	if x != nil {
		return x.BillingDate
	}
	return ""
}

type RegisterVendorRequest struct {
	VendorId     string   `json:"vendor_id" validate:"required,max=128"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Provinces    []string `json:"provinces" validate:"required,min=1,dive,required"`
	Regions      []string `json:"regions" validate:"required,min=1,dive,required"`
	IntendedTier string   `json:"intended_tier" validate:"omitempty,max=64"`
}

func (x *RegisterVendorRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

func (x *RegisterVendorRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *RegisterVendorRequest) GetProvinces() []string {
	if x != nil {
		return x.Provinces
	}
	return nil
}

func (x *RegisterVendorRequest) GetRegions() []string {
	if x != nil {
		return x.Regions
	}
	return nil
}

func (x *RegisterVendorRequest) GetIntendedTier() string {
	if x != nil {
		return x.IntendedTier
	}
	return ""
}

type VendorEnvelopeResponse struct {
	Vendor *VendorProfile `json:"vendor"`
}

type GetVendorSubscriptionRequest struct {
	VendorId string `json:"vendor_id" validate:"required,max=128"`
}

func (x *GetVendorSubscriptionRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

type GetVendorSubscriptionResponse struct {
	Vendor       *VendorProfile `json:"vendor"`
	Subscription *Subscription  `json:"subscription"`
}

func (x *GetVendorSubscriptionResponse) GetVendor() *VendorProfile {
	if x != nil {
		return x.Vendor
	}
	return nil
}

func (x *GetVendorSubscriptionResponse) GetSubscription() *Subscription {
	if x != nil {
		return x.Subscription
	}
	return nil
}

type SelectPlanRequest struct {
	VendorId           string `json:"vendor_id" validate:"required,max=128"`
	PlanId             string `json:"plan_id" validate:"required,max=64"`
	TermsAccepted      bool   `json:"terms_accepted"`
	DowngradeConfirmed bool   `json:"downgrade_confirmed"`
}

func (x *SelectPlanRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

func (x *SelectPlanRequest) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

func (x *SelectPlanRequest) GetTermsAccepted() bool {
	if x != nil {
		return x.TermsAccepted
	}
	return false
}

func (x *SelectPlanRequest) GetDowngradeConfirmed() bool {
	if x != nil {
		return x.DowngradeConfirmed
	}
	return false
}

type AutoTriggerRequest struct {
	VendorId           string `json:"vendor_id" validate:"required,max=128"`
	TermsAccepted      bool   `json:"terms_accepted"`
	DowngradeConfirmed bool   `json:"downgrade_confirmed"`
}

func (x *AutoTriggerRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

func (x *AutoTriggerRequest) GetTermsAccepted() bool {
	if x != nil {
		return x.TermsAccepted
	}
	return false
}

func (x *AutoTriggerRequest) GetDowngradeConfirmed() bool {
	if x != nil {
		return x.DowngradeConfirmed
	}
	return false
}

// SelectPlanResponse carries either a pending confirmation or the signed payment redirect.
// Free selections return neither.
type SelectPlanResponse struct {
	Vendor               *VendorProfile `json:"vendor"`
	Subscription         *Subscription  `json:"subscription"`
	Plan                 *Plan          `json:"plan"`
	ConfirmationRequired string         `json:"confirmation_required,omitempty"`
	Terms                *BillingTerms  `json:"terms,omitempty"`
	Reference            string         `json:"reference,omitempty"`
	PaymentUrl           string         `json:"payment_url,omitempty"`
}

func (x *SelectPlanResponse) GetSubscription() *Subscription {
	if x != nil {
		return x.Subscription
	}
	return nil
}

func (x *SelectPlanResponse) GetConfirmationRequired() string {
	if x != nil {
		return x.ConfirmationRequired
	}
	return ""
}

func (x *SelectPlanResponse) GetTerms() *BillingTerms {
	if x != nil {
		return x.Terms
	}
	return nil
}

func (x *SelectPlanResponse) GetReference() string {
	if x != nil {
		return x.Reference
	}
	return ""
}

func (x *SelectPlanResponse) GetPaymentUrl() string {
	if x != nil {
		return x.PaymentUrl
	}
	return ""
}

type ReconcilePaymentRequest struct {
	VendorId string `json:"vendor_id" validate:"required,max=128"`
	Status   string `json:"status" validate:"required,oneof=success cancel"`
}

func (x *ReconcilePaymentRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

func (x *ReconcilePaymentRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ReconcilePaymentResponse struct {
	Vendor       *VendorProfile `json:"vendor"`
	Subscription *Subscription  `json:"subscription"`
	Changed      bool           `json:"changed"`
}

func (x *ReconcilePaymentResponse) GetVendor() *VendorProfile {
	if x != nil {
		return x.Vendor
	}
	return nil
}

func (x *ReconcilePaymentResponse) GetSubscription() *Subscription {
	if x != nil {
		return x.Subscription
	}
	return nil
}

func (x *ReconcilePaymentResponse) GetChanged() bool {
	if x != nil {
		return x.Changed
	}
	return false
}

type UpdateCoverageRequest struct {
	VendorId  string   `json:"vendor_id" validate:"required,max=128"`
	Provinces []string `json:"provinces" validate:"required,min=1,dive,required"`
	Regions   []string `json:"regions" validate:"required,min=1,dive,required"`
}

func (x *UpdateCoverageRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

func (x *UpdateCoverageRequest) GetProvinces() []string {
	if x != nil {
		return x.Provinces
	}
	return nil
}

func (x *UpdateCoverageRequest) GetRegions() []string {
	if x != nil {
		return x.Regions
	}
	return nil
}

// VendorRequest addresses a vendor by id only.
type VendorRequest struct {
	VendorId string `json:"vendor_id" validate:"required,max=128"`
}

func (x *VendorRequest) GetVendorId() string {
	if x != nil {
		return x.VendorId
	}
	return ""
}

type UpdateCardURLResponse struct {
	Url string `json:"url"`
}
