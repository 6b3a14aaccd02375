//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"testing"

	authpb "github.com/vibast-solutions/ms-go-auth/app/types"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	defaultVendorBillingCallerAPIKey   = "vendor-billing-caller-key"
	defaultVendorBillingNoAccessAPIKey = "vendor-billing-no-access-key"
	defaultVendorBillingAppAPIKey      = "vendor-billing-app-api-key"
	vendorBillingAuthMockAddr          = "127.0.0.1:38093"
)

func vendorBillingCallerAPIKey() string {
	if value := strings.TrimSpace(os.Getenv("VENDOR_BILLING_CALLER_API_KEY")); value != "" {
		return value
	}
	return defaultVendorBillingCallerAPIKey
}

func vendorBillingNoAccessAPIKey() string {
	if value := strings.TrimSpace(os.Getenv("VENDOR_BILLING_NO_ACCESS_API_KEY")); value != "" {
		return value
	}
	return defaultVendorBillingNoAccessAPIKey
}

func vendorBillingAppAPIKey() string {
	if value := strings.TrimSpace(os.Getenv("VENDOR_BILLING_APP_API_KEY")); value != "" {
		return value
	}
	return defaultVendorBillingAppAPIKey
}

type vendorBillingAuthGRPCServer struct {
	authpb.UnimplementedAuthServiceServer
}

func (s *vendorBillingAuthGRPCServer) ValidateInternalAccess(ctx context.Context, req *authpb.ValidateInternalAccessRequest) (*authpb.ValidateInternalAccessResponse, error) {
	if incomingVendorBillingAPIKey(ctx) != vendorBillingAppAPIKey() {
		return nil, status.Error(codes.Unauthenticated, "unauthorized caller")
	}

	apiKey := strings.TrimSpace(req.GetApiKey())
	switch apiKey {
	case vendorBillingCallerAPIKey():
		return &authpb.ValidateInternalAccessResponse{
			ServiceName:   "vendor-portal",
			AllowedAccess: []string{"vendor-billing-service", "profile-service"},
		}, nil
	case vendorBillingNoAccessAPIKey():
		return &authpb.ValidateInternalAccessResponse{
			ServiceName:   "vendor-portal",
			AllowedAccess: []string{"profile-service"},
		}, nil
	default:
		return nil, status.Error(codes.Unauthenticated, "invalid api key")
	}
}

func incomingVendorBillingAPIKey(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get("x-api-key")
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}

func TestMain(m *testing.M) {
	if os.Getenv("VENDOR_BILLING_CALLER_API_KEY") == "" {
		_ = os.Setenv("VENDOR_BILLING_CALLER_API_KEY", defaultVendorBillingCallerAPIKey)
	}
	if os.Getenv("VENDOR_BILLING_NO_ACCESS_API_KEY") == "" {
		_ = os.Setenv("VENDOR_BILLING_NO_ACCESS_API_KEY", defaultVendorBillingNoAccessAPIKey)
	}
	if os.Getenv("VENDOR_BILLING_APP_API_KEY") == "" {
		_ = os.Setenv("VENDOR_BILLING_APP_API_KEY", defaultVendorBillingAppAPIKey)
	}

	listener, err := net.Listen("tcp", vendorBillingAuthMockAddr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start vendor billing auth grpc mock: %v\n", err)
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	authpb.RegisterAuthServiceServer(grpcServer, &vendorBillingAuthGRPCServer{})

	go func() {
		_ = grpcServer.Serve(listener)
	}()

	exitCode := m.Run()

	grpcServer.GracefulStop()
	_ = listener.Close()

	os.Exit(exitCode)
}
