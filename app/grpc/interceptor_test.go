package grpc

import (
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestRequestIDFromMetadata(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(requestIDHeader, "grpc-abc"))
	if got := requestIDFromMetadata(ctx); got != "grpc-abc" {
		t.Fatalf("expected grpc-abc, got %q", got)
	}
}

func TestRequestIDInterceptorUsesIncomingHeader(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(requestIDHeader, "grpc-fixed"))
	interceptor := RequestIDInterceptor()

	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req interface{}) (interface{}, error) {
		if got := RequestIDFromContext(ctx); got != "grpc-fixed" {
			t.Fatalf("expected grpc-fixed, got %q", got)
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequestIDInterceptorGeneratesHeader(t *testing.T) {
	interceptor := RequestIDInterceptor()

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, req interface{}) (interface{}, error) {
		got := RequestIDFromContext(ctx)
		if !strings.HasPrefix(got, "grpc-") {
			t.Fatalf("expected generated grpc- request id, got %q", got)
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecoveryInterceptorConvertsPanicToInternal(t *testing.T) {
	interceptor := RecoveryInterceptor()
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/vendorbilling.VendorBillingService/SelectPlan"}, func(context.Context, interface{}) (interface{}, error) {
		panic("boom")
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected codes.Internal, got %v", err)
	}
}

func TestLoggingInterceptorPassThrough(t *testing.T) {
	interceptor := LoggingInterceptor()
	resp, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/vendorbilling.VendorBillingService/GetVendorSubscription"}, func(context.Context, interface{}) (interface{}, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestLoggingInterceptorPassesErrorThrough(t *testing.T) {
	interceptor := LoggingInterceptor()
	req := &types.GetVendorSubscriptionRequest{VendorId: "v1"}
	_, err := interceptor(context.Background(), req, &grpc.UnaryServerInfo{FullMethod: types.VendorBillingService_GetVendorSubscription_FullMethodName}, func(context.Context, interface{}) (interface{}, error) {
		return nil, status.Error(codes.NotFound, "vendor not found")
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected codes.NotFound, got %v", err)
	}
}

func TestLoggerWithContextCarriesRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), requestIDContextKey{}, "grpc-1")
	entry, ok := loggerWithContext(ctx).(*logrus.Entry)
	if !ok {
		t.Fatalf("expected *logrus.Entry, got %T", loggerWithContext(ctx))
	}
	if entry.Data["request_id"] != "grpc-1" {
		t.Fatalf("expected request_id field, got %+v", entry.Data)
	}
}
