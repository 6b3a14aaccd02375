package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/factory"
	"github.com/vibast-solutions/ms-go-vendor-billing/config"
)

// Gateway prepares signed redirect payments for recurring monthly subscriptions.
type Gateway struct {
	cfg    config.GatewayConfig
	now    func() time.Time
	logger logrus.FieldLogger
}

func NewGateway(cfg config.GatewayConfig, now func() time.Time) *Gateway {
	if now == nil {
		now = time.Now
	}
	return &Gateway{
		cfg:    cfg,
		now:    now,
		logger: factory.NewModuleLogger("payment-gateway"),
	}
}

func (g *Gateway) PrepareSubscriptionPayment(_ context.Context, checkout Checkout) (Result, error) {
	if g.cfg.MerchantID == "" || g.cfg.MerchantKey == "" {
		return Result{}, ErrConfigurationMissing
	}

	reference := PaymentReference(checkout.VendorID, g.now())
	request := PaymentRequest{
		MerchantID:       g.cfg.MerchantID,
		MerchantKey:      g.cfg.MerchantKey,
		ReturnURL:        g.cfg.ReturnURL,
		CancelURL:        g.cfg.CancelURL,
		NotifyURL:        g.cfg.NotifyURL,
		EmailAddress:     checkout.Email,
		PaymentID:        reference,
		Amount:           checkout.Terms.InitialAmount,
		ItemName:         fmt.Sprintf("%s %s Subscription", g.cfg.BrandName, checkout.Plan.Name),
		ItemDescription:  fmt.Sprintf("Monthly subscription for the %s tier.", checkout.Plan.Name),
		SubscriptionType: SubscriptionTypeRecurring,
		BillingDate:      checkout.Terms.BillingDate,
		RecurringAmount:  checkout.Terms.RecurringAmount,
		Frequency:        FrequencyMonthly,
		Cycles:           CyclesUntilCancelled,
	}

	redirect, err := BuildSignedRedirect(request.Fields(), g.cfg.Passphrase)
	if err != nil {
		return Result{}, err
	}

	g.logger.WithFields(logrus.Fields{
		"vendor_id":        checkout.VendorID,
		"plan_id":          checkout.Plan.ID,
		"reference":        reference,
		"amount":           request.Amount,
		"recurring_amount": request.RecurringAmount,
		"billing_date":     request.BillingDate,
	}).Info("payment_request_signed")

	return Result{
		Reference:  reference,
		PaymentURL: g.cfg.ProcessURL + "?" + redirect.QueryString,
		Signature:  redirect.Signature,
	}, nil
}

// PaymentReference identifies one initiation attempt: sub_<vendorID>_<unix millis>.
func PaymentReference(vendorID string, at time.Time) string {
	return fmt.Sprintf("sub_%s_%d", vendorID, at.UnixMilli())
}
