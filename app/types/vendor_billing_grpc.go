package types

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	VendorBillingService_ListPlans_FullMethodName             = "/vendorbilling.VendorBillingService/ListPlans"
	VendorBillingService_GetVendorSubscription_FullMethodName = "/vendorbilling.VendorBillingService/GetVendorSubscription"
	VendorBillingService_SelectPlan_FullMethodName            = "/vendorbilling.VendorBillingService/SelectPlan"
	VendorBillingService_ReconcilePayment_FullMethodName      = "/vendorbilling.VendorBillingService/ReconcilePayment"
)

type VendorBillingServiceClient interface {
	ListPlans(ctx context.Context, in *ListPlansRequest, opts ...grpc.CallOption) (*ListPlansResponse, error)
	GetVendorSubscription(ctx context.Context, in *GetVendorSubscriptionRequest, opts ...grpc.CallOption) (*GetVendorSubscriptionResponse, error)
	SelectPlan(ctx context.Context, in *SelectPlanRequest, opts ...grpc.CallOption) (*SelectPlanResponse, error)
	ReconcilePayment(ctx context.Context, in *ReconcilePaymentRequest, opts ...grpc.CallOption) (*ReconcilePaymentResponse, error)
}

type vendorBillingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVendorBillingServiceClient(cc grpc.ClientConnInterface) VendorBillingServiceClient {
	return &vendorBillingServiceClient{cc: cc}
}

func (c *vendorBillingServiceClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}

func (c *vendorBillingServiceClient) ListPlans(ctx context.Context, in *ListPlansRequest, opts ...grpc.CallOption) (*ListPlansResponse, error) {
	out := new(ListPlansResponse)
	if err := c.invoke(ctx, VendorBillingService_ListPlans_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vendorBillingServiceClient) GetVendorSubscription(ctx context.Context, in *GetVendorSubscriptionRequest, opts ...grpc.CallOption) (*GetVendorSubscriptionResponse, error) {
	out := new(GetVendorSubscriptionResponse)
	if err := c.invoke(ctx, VendorBillingService_GetVendorSubscription_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vendorBillingServiceClient) SelectPlan(ctx context.Context, in *SelectPlanRequest, opts ...grpc.CallOption) (*SelectPlanResponse, error) {
	out := new(SelectPlanResponse)
	if err := c.invoke(ctx, VendorBillingService_SelectPlan_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vendorBillingServiceClient) ReconcilePayment(ctx context.Context, in *ReconcilePaymentRequest, opts ...grpc.CallOption) (*ReconcilePaymentResponse, error) {
	out := new(ReconcilePaymentResponse)
	if err := c.invoke(ctx, VendorBillingService_ReconcilePayment_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// VendorBillingServiceServer is the server API. Implementations must embed
// UnimplementedVendorBillingServiceServer.
type VendorBillingServiceServer interface {
	ListPlans(context.Context, *ListPlansRequest) (*ListPlansResponse, error)
	GetVendorSubscription(context.Context, *GetVendorSubscriptionRequest) (*GetVendorSubscriptionResponse, error)
	SelectPlan(context.Context, *SelectPlanRequest) (*SelectPlanResponse, error)
	ReconcilePayment(context.Context, *ReconcilePaymentRequest) (*ReconcilePaymentResponse, error)
	mustEmbedUnimplementedVendorBillingServiceServer()
}

type UnimplementedVendorBillingServiceServer struct{}

func (UnimplementedVendorBillingServiceServer) ListPlans(context.Context, *ListPlansRequest) (*ListPlansResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPlans not implemented")
}

func (UnimplementedVendorBillingServiceServer) GetVendorSubscription(context.Context, *GetVendorSubscriptionRequest) (*GetVendorSubscriptionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetVendorSubscription not implemented")
}

func (UnimplementedVendorBillingServiceServer) SelectPlan(context.Context, *SelectPlanRequest) (*SelectPlanResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SelectPlan not implemented")
}

func (UnimplementedVendorBillingServiceServer) ReconcilePayment(context.Context, *ReconcilePaymentRequest) (*ReconcilePaymentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReconcilePayment not implemented")
}

func (UnimplementedVendorBillingServiceServer) mustEmbedUnimplementedVendorBillingServiceServer() {}

func RegisterVendorBillingServiceServer(s grpc.ServiceRegistrar, srv VendorBillingServiceServer) {
	s.RegisterService(&VendorBillingService_ServiceDesc, srv)
}

func _VendorBillingService_ListPlans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPlansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VendorBillingServiceServer).ListPlans(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: VendorBillingService_ListPlans_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VendorBillingServiceServer).ListPlans(ctx, req.(*ListPlansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VendorBillingService_GetVendorSubscription_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetVendorSubscriptionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VendorBillingServiceServer).GetVendorSubscription(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: VendorBillingService_GetVendorSubscription_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VendorBillingServiceServer).GetVendorSubscription(ctx, req.(*GetVendorSubscriptionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VendorBillingService_SelectPlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SelectPlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VendorBillingServiceServer).SelectPlan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: VendorBillingService_SelectPlan_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VendorBillingServiceServer).SelectPlan(ctx, req.(*SelectPlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VendorBillingService_ReconcilePayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReconcilePaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VendorBillingServiceServer).ReconcilePayment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: VendorBillingService_ReconcilePayment_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VendorBillingServiceServer).ReconcilePayment(ctx, req.(*ReconcilePaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var VendorBillingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "vendorbilling.VendorBillingService",
	HandlerType: (*VendorBillingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListPlans", Handler: _VendorBillingService_ListPlans_Handler},
		{MethodName: "GetVendorSubscription", Handler: _VendorBillingService_GetVendorSubscription_Handler},
		{MethodName: "SelectPlan", Handler: _VendorBillingService_SelectPlan_Handler},
		{MethodName: "ReconcilePayment", Handler: _VendorBillingService_ReconcilePayment_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vendorbilling",
}
