package types

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"google.golang.org/grpc/encoding"
)

func newJSONContext(method, target, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestNewRegisterVendorRequestFromContext(t *testing.T) {
	ctx := newJSONContext("POST", "/vendors", `{"vendor_id":" v1 ","email":" a@b.co ","provinces":["Gauteng"],"regions":["Johannesburg"],"intended_tier":" provincial "}`)

	parsed, err := NewRegisterVendorRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.GetVendorId() != "v1" || parsed.GetEmail() != "a@b.co" || parsed.GetIntendedTier() != "provincial" {
		t.Fatalf("unexpected parsed request: %+v", parsed)
	}
	if len(parsed.GetProvinces()) != 1 || len(parsed.GetRegions()) != 1 {
		t.Fatalf("unexpected coverage: %+v", parsed)
	}
	if err := parsed.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestRegisterVendorValidate(t *testing.T) {
	cases := []struct {
		name string
		req  *RegisterVendorRequest
		want string
	}{
		{"missing vendor", &RegisterVendorRequest{Provinces: []string{"Gauteng"}, Regions: []string{"Pretoria"}}, "vendor_id is required"},
		{"bad email", &RegisterVendorRequest{VendorId: "v1", Email: "nope", Provinces: []string{"Gauteng"}, Regions: []string{"Pretoria"}}, "email must be a valid email address"},
		{"no provinces", &RegisterVendorRequest{VendorId: "v1", Regions: []string{"Pretoria"}}, "provinces is required"},
		{"empty regions", &RegisterVendorRequest{VendorId: "v1", Provinces: []string{"Gauteng"}, Regions: []string{}}, "regions must contain at least 1 item(s)"},
		{"blank region", &RegisterVendorRequest{VendorId: "v1", Provinces: []string{"Gauteng"}, Regions: []string{""}}, "regions must not contain empty values"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Error() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestNewSelectPlanRequestFromContextUsesPathVendor(t *testing.T) {
	ctx := newJSONContext("POST", "/vendors/v9/subscription/select", `{"vendor_id":"other","plan_id":" provincial ","terms_accepted":true}`)
	ctx.SetParamNames("id")
	ctx.SetParamValues("v9")

	parsed, err := NewSelectPlanRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.GetVendorId() != "v9" || parsed.GetPlanId() != "provincial" || !parsed.GetTermsAccepted() || parsed.GetDowngradeConfirmed() {
		t.Fatalf("unexpected parsed request: %+v", parsed)
	}
}

func TestSelectPlanValidate(t *testing.T) {
	req := &SelectPlanRequest{VendorId: "v1"}
	if err := req.Validate(); err == nil || err.Error() != "plan_id is required" {
		t.Fatalf("expected plan_id error, got %v", err)
	}
}

func TestNewReconcilePaymentRequestFromQuery(t *testing.T) {
	ctx := newJSONContext("POST", "/vendors/v1/subscription/return?status=SUCCESS", "")
	ctx.SetParamNames("id")
	ctx.SetParamValues("v1")

	parsed, err := NewReconcilePaymentRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.GetStatus() != "success" || parsed.GetVendorId() != "v1" {
		t.Fatalf("unexpected parsed request: %+v", parsed)
	}
	if err := parsed.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestReconcilePaymentValidateRejectsUnknownStatus(t *testing.T) {
	req := &ReconcilePaymentRequest{VendorId: "v1", Status: "refunded"}
	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if err.Error() != "status must be one of: success, cancel" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVendorRequestValidate(t *testing.T) {
	req := &VendorRequest{VendorId: strings.Repeat("x", 129)}
	if err := req.Validate(); err == nil || err.Error() != "vendor_id must be at most 128 characters" {
		t.Fatalf("expected max length error, got %v", err)
	}
}

func TestNilGettersAreSafe(t *testing.T) {
	var req *SelectPlanRequest
	if req.GetVendorId() != "" || req.GetTermsAccepted() {
		t.Fatal("expected zero values from nil request")
	}
	var resp *SelectPlanResponse
	if resp.GetTerms().GetBillingDate() != "" {
		t.Fatal("expected zero values from nil response")
	}
}

func TestJSONCodecIsRegistered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	if codec == nil {
		t.Fatal("expected json codec to be registered")
	}

	data, err := codec.Marshal(&SelectPlanRequest{VendorId: "v1", PlanId: "provincial", TermsAccepted: true})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var decoded SelectPlanRequest
	if err := codec.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded.PlanId != "provincial" || !decoded.TermsAccepted {
		t.Fatalf("unexpected decoded message: %+v", decoded)
	}
	if err := codec.Unmarshal(nil, &decoded); err != nil {
		t.Fatalf("expected empty payload to be accepted, got %v", err)
	}
}
