package types

import (
	"strings"

	"github.com/labstack/echo/v4"
)

func (r *ListPlansRequest) Validate() error {
	return nil
}

func NewGetPlanRequestFromContext(ctx echo.Context) (*GetPlanRequest, error) {
	return &GetPlanRequest{Id: strings.TrimSpace(ctx.Param("id"))}, nil
}

func (r *GetPlanRequest) Validate() error {
	return validateStruct(r)
}

func NewRegisterVendorRequestFromContext(ctx echo.Context) (*RegisterVendorRequest, error) {
	var body RegisterVendorRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.VendorId = strings.TrimSpace(body.VendorId)
	body.Email = strings.TrimSpace(body.Email)
	body.IntendedTier = strings.TrimSpace(body.IntendedTier)
	return &body, nil
}

func (r *RegisterVendorRequest) Validate() error {
	return validateStruct(r)
}

func NewGetVendorSubscriptionRequestFromContext(ctx echo.Context) (*GetVendorSubscriptionRequest, error) {
	return &GetVendorSubscriptionRequest{VendorId: strings.TrimSpace(ctx.Param("id"))}, nil
}

func (r *GetVendorSubscriptionRequest) Validate() error {
	return validateStruct(r)
}

func NewSelectPlanRequestFromContext(ctx echo.Context) (*SelectPlanRequest, error) {
	var body SelectPlanRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.VendorId = strings.TrimSpace(ctx.Param("id"))
	body.PlanId = strings.TrimSpace(body.PlanId)
	return &body, nil
}

func (r *SelectPlanRequest) Validate() error {
	return validateStruct(r)
}

func NewAutoTriggerRequestFromContext(ctx echo.Context) (*AutoTriggerRequest, error) {
	var body AutoTriggerRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.VendorId = strings.TrimSpace(ctx.Param("id"))
	return &body, nil
}

func (r *AutoTriggerRequest) Validate() error {
	return validateStruct(r)
}

// NewReconcilePaymentRequestFromContext accepts the status from the JSON body or, for
// browser returns, from the status query parameter.
func NewReconcilePaymentRequestFromContext(ctx echo.Context) (*ReconcilePaymentRequest, error) {
	var body ReconcilePaymentRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.VendorId = strings.TrimSpace(ctx.Param("id"))
	if strings.TrimSpace(body.Status) == "" {
		body.Status = ctx.QueryParam("status")
	}
	body.Status = strings.ToLower(strings.TrimSpace(body.Status))
	return &body, nil
}

func (r *ReconcilePaymentRequest) Validate() error {
	return validateStruct(r)
}

func NewUpdateCoverageRequestFromContext(ctx echo.Context) (*UpdateCoverageRequest, error) {
	var body UpdateCoverageRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}
	body.VendorId = strings.TrimSpace(ctx.Param("id"))
	return &body, nil
}

func (r *UpdateCoverageRequest) Validate() error {
	return validateStruct(r)
}

func NewVendorRequestFromContext(ctx echo.Context) (*VendorRequest, error) {
	return &VendorRequest{VendorId: strings.TrimSpace(ctx.Param("id"))}, nil
}

func (r *VendorRequest) Validate() error {
	return validateStruct(r)
}
