package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/catalog"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/factory"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/lifecycle"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/mapper"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/service"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/types"
)

type VendorBillingController struct {
	subscriptionService  *service.VendorSubscriptionService
	paymentReturnService *service.PaymentReturnService
	logger               logrus.FieldLogger
}

func NewVendorBillingController(
	subscriptionService *service.VendorSubscriptionService,
	paymentReturnService *service.PaymentReturnService,
) *VendorBillingController {
	return &VendorBillingController{
		subscriptionService:  subscriptionService,
		paymentReturnService: paymentReturnService,
		logger:               factory.NewModuleLogger("vendor-billing-controller"),
	}
}

func (c *VendorBillingController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}

func (c *VendorBillingController) ListPlans(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.ListPlansResponse{
		Plans: mapper.PlansToProto(catalog.ListPlans()),
	})
}

func (c *VendorBillingController) GetPlan(ctx echo.Context) error {
	req, err := types.NewGetPlanRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	plan, ok := catalog.GetPlan(req.GetId())
	if !ok {
		return c.writeError(ctx, http.StatusNotFound, "plan not found")
	}

	return ctx.JSON(http.StatusOK, &types.PlanEnvelopeResponse{Plan: mapper.PlanToProto(plan)})
}

func (c *VendorBillingController) ListLocations(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.LocationsResponse{Provinces: mapper.LocationsToProto()})
}

func (c *VendorBillingController) RegisterVendor(ctx echo.Context) error {
	req, err := types.NewRegisterVendorRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	profile, err := c.subscriptionService.RegisterVendor(ctx.Request().Context(), req)
	if err != nil {
		return c.writeServiceError(ctx, err, "Register vendor failed")
	}

	return ctx.JSON(http.StatusCreated, &types.VendorEnvelopeResponse{
		Vendor: mapper.VendorProfileToProto(profile),
	})
}

func (c *VendorBillingController) GetSubscription(ctx echo.Context) error {
	req, err := types.NewGetVendorSubscriptionRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	view, err := c.subscriptionService.GetSubscription(ctx.Request().Context(), req.GetVendorId())
	if err != nil {
		return c.writeServiceError(ctx, err, "Get subscription failed")
	}

	return ctx.JSON(http.StatusOK, mapper.SubscriptionViewToProto(view))
}

func (c *VendorBillingController) SelectPlan(ctx echo.Context) error {
	req, err := types.NewSelectPlanRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := c.subscriptionService.SelectPlan(ctx.Request().Context(), req)
	if err != nil {
		return c.writeServiceError(ctx, err, "Select plan failed")
	}

	return c.writeSelection(ctx, result)
}

func (c *VendorBillingController) AutoTrigger(ctx echo.Context) error {
	req, err := types.NewAutoTriggerRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := c.subscriptionService.AutoTrigger(ctx.Request().Context(), req)
	if err != nil {
		return c.writeServiceError(ctx, err, "Auto trigger failed")
	}

	return c.writeSelection(ctx, result)
}

func (c *VendorBillingController) ReconcilePayment(ctx echo.Context) error {
	req, err := types.NewReconcilePaymentRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := c.paymentReturnService.ReconcilePayment(ctx.Request().Context(), req)
	if err != nil {
		return c.writeServiceError(ctx, err, "Payment reconciliation failed")
	}

	return ctx.JSON(http.StatusOK, mapper.ReconcileResultToProto(result))
}

func (c *VendorBillingController) UpdateCoverage(ctx echo.Context) error {
	req, err := types.NewUpdateCoverageRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request body")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	profile, err := c.subscriptionService.UpdateCoverage(ctx.Request().Context(), req)
	if err != nil {
		return c.writeServiceError(ctx, err, "Update coverage failed")
	}

	return ctx.JSON(http.StatusOK, &types.VendorEnvelopeResponse{
		Vendor: mapper.VendorProfileToProto(profile),
	})
}

func (c *VendorBillingController) CancelSubscription(ctx echo.Context) error {
	req, err := types.NewVendorRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := c.paymentReturnService.CancelRecurring(ctx.Request().Context(), req.GetVendorId())
	if err != nil {
		return c.writeServiceError(ctx, err, "Cancel subscription failed")
	}

	return ctx.JSON(http.StatusOK, mapper.ReconcileResultToProto(result))
}

func (c *VendorBillingController) UpdateCardURL(ctx echo.Context) error {
	req, err := types.NewVendorRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, "invalid request")
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	}

	url, err := c.paymentReturnService.UpdateCardURL(ctx.Request().Context(), req.GetVendorId())
	if err != nil {
		return c.writeServiceError(ctx, err, "Update card url failed")
	}

	return ctx.JSON(http.StatusOK, &types.UpdateCardURLResponse{Url: url})
}

// writeSelection answers 409 while a confirmation is outstanding so the caller can prompt and retry.
func (c *VendorBillingController) writeSelection(ctx echo.Context, result *service.SelectPlanResult) error {
	statusCode := http.StatusOK
	if result.Gate != lifecycle.GateNone {
		statusCode = http.StatusConflict
	}
	return ctx.JSON(statusCode, mapper.SelectPlanResultToProto(result))
}

func (c *VendorBillingController) writeServiceError(ctx echo.Context, err error, logMessage string) error {
	switch {
	case errors.Is(err, service.ErrInvalidRequest), errors.Is(err, service.ErrUnknownLocation):
		return c.writeError(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrVendorNotFound):
		return c.writeError(ctx, http.StatusNotFound, "vendor not found")
	case errors.Is(err, service.ErrPlanNotFound):
		return c.writeError(ctx, http.StatusNotFound, "plan not found")
	case errors.Is(err, service.ErrVendorAlreadyExists),
		errors.Is(err, service.ErrPlanAlreadyActive),
		errors.Is(err, service.ErrNoIntendedTier),
		errors.Is(err, service.ErrNoPaymentToken):
		return c.writeError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrCoverageExceedsPlan):
		return c.writeError(ctx, http.StatusUnprocessableEntity, err.Error())
	}

	logger := factory.LoggerWithContext(c.logger, ctx)
	if vendorID := ctx.Param("id"); vendorID != "" {
		logger = factory.LoggerWithVendor(logger, vendorID)
	}
	logger = logger.WithError(err)
	switch {
	case errors.Is(err, service.ErrConfigurationMissing):
		logger.Error(logMessage)
		return c.writeError(ctx, http.StatusServiceUnavailable, service.ErrConfigurationMissing.Error())
	case errors.Is(err, service.ErrGatewayRequestFailed):
		logger.Warn(logMessage)
		return c.writeError(ctx, http.StatusBadGateway, service.ErrGatewayRequestFailed.Error())
	case errors.Is(err, service.ErrProfileWriteFailed):
		logger.Error(logMessage)
		return c.writeError(ctx, http.StatusInternalServerError, service.ErrProfileWriteFailed.Error())
	case errors.Is(err, service.ErrSignatureComputationFailed):
		logger.Error(logMessage)
		return c.writeError(ctx, http.StatusInternalServerError, service.ErrSignatureComputationFailed.Error())
	case errors.Is(err, service.ErrRedirectFailed):
		logger.Error(logMessage)
		return c.writeError(ctx, http.StatusInternalServerError, service.ErrRedirectFailed.Error())
	default:
		logger.Error(logMessage)
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}
}

func (c *VendorBillingController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
