package payment

import (
	"context"
	"errors"

	"github.com/vibast-solutions/ms-go-vendor-billing/app/billing"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/entity"
)

var (
	ErrConfigurationMissing = errors.New("payment gateway merchant configuration missing")
	ErrGatewayRequestFailed = errors.New("payment gateway request failed")
)

type Checkout struct {
	VendorID string
	Email    string
	Plan     entity.Plan
	Terms    billing.Terms
}

type Result struct {
	Reference  string
	PaymentURL string
	Signature  string
}

type Service interface {
	PrepareSubscriptionPayment(ctx context.Context, checkout Checkout) (Result, error)
}
