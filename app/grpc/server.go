package grpc

import (
	"context"
	"errors"

	"github.com/vibast-solutions/ms-go-vendor-billing/app/catalog"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/mapper"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/service"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Server struct {
	types.UnimplementedVendorBillingServiceServer
	subscriptionService  *service.VendorSubscriptionService
	paymentReturnService *service.PaymentReturnService
}

func NewServer(subscriptionService *service.VendorSubscriptionService, paymentReturnService *service.PaymentReturnService) *Server {
	return &Server{
		subscriptionService:  subscriptionService,
		paymentReturnService: paymentReturnService,
	}
}

func (s *Server) ListPlans(_ context.Context, _ *types.ListPlansRequest) (*types.ListPlansResponse, error) {
	return &types.ListPlansResponse{Plans: mapper.PlansToProto(catalog.ListPlans())}, nil
}

func (s *Server) GetVendorSubscription(ctx context.Context, req *types.GetVendorSubscriptionRequest) (*types.GetVendorSubscriptionResponse, error) {
	l := loggerWithContext(ctx)
	if err := req.Validate(); err != nil {
		l.WithError(err).Debug("Get vendor subscription validation failed")
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	view, err := s.subscriptionService.GetSubscription(ctx, req.GetVendorId())
	if err != nil {
		return nil, s.statusFromError(ctx, err, "Get vendor subscription failed")
	}
	return mapper.SubscriptionViewToProto(view), nil
}

// SelectPlan reports outstanding confirmations in the response rather than as an error.
func (s *Server) SelectPlan(ctx context.Context, req *types.SelectPlanRequest) (*types.SelectPlanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.subscriptionService.SelectPlan(ctx, req)
	if err != nil {
		return nil, s.statusFromError(ctx, err, "Select plan failed")
	}
	return mapper.SelectPlanResultToProto(result), nil
}

func (s *Server) ReconcilePayment(ctx context.Context, req *types.ReconcilePaymentRequest) (*types.ReconcilePaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.paymentReturnService.ReconcilePayment(ctx, req)
	if err != nil {
		return nil, s.statusFromError(ctx, err, "Reconcile payment failed")
	}
	return mapper.ReconcileResultToProto(result), nil
}

func (s *Server) statusFromError(ctx context.Context, err error, logMessage string) error {
	switch {
	case errors.Is(err, service.ErrInvalidRequest), errors.Is(err, service.ErrUnknownLocation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrVendorNotFound):
		return status.Error(codes.NotFound, "vendor not found")
	case errors.Is(err, service.ErrPlanNotFound):
		return status.Error(codes.NotFound, "plan not found")
	case errors.Is(err, service.ErrVendorAlreadyExists), errors.Is(err, service.ErrPlanAlreadyActive):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, service.ErrNoIntendedTier), errors.Is(err, service.ErrNoPaymentToken):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, service.ErrCoverageExceedsPlan):
		return status.Error(codes.OutOfRange, err.Error())
	}

	l := loggerWithContext(ctx).WithError(err)
	switch {
	case errors.Is(err, service.ErrConfigurationMissing):
		l.Error(logMessage)
		return status.Error(codes.Unavailable, service.ErrConfigurationMissing.Error())
	case errors.Is(err, service.ErrGatewayRequestFailed):
		l.Warn(logMessage)
		return status.Error(codes.Unavailable, service.ErrGatewayRequestFailed.Error())
	case errors.Is(err, service.ErrProfileWriteFailed):
		l.Error(logMessage)
		return status.Error(codes.Internal, service.ErrProfileWriteFailed.Error())
	case errors.Is(err, service.ErrSignatureComputationFailed):
		l.Error(logMessage)
		return status.Error(codes.Internal, service.ErrSignatureComputationFailed.Error())
	case errors.Is(err, service.ErrRedirectFailed):
		l.Error(logMessage)
		return status.Error(codes.Internal, service.ErrRedirectFailed.Error())
	default:
		l.Error(logMessage)
		return status.Error(codes.Internal, "internal server error")
	}
}
