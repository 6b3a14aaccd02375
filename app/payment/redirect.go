package payment

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/factory"
)

// Redirector hands a signed payment URL over to the vendor's browser.
type Redirector interface {
	Open(ctx context.Context, vendorID string, paymentURL string) error
}

// ResponseRedirector is used by the API servers: the URL travels back in the response body
// and the client opens it, so the hand-off itself only records the event.
type ResponseRedirector struct {
	logger logrus.FieldLogger
}

func NewResponseRedirector() *ResponseRedirector {
	return &ResponseRedirector{logger: factory.NewModuleLogger("payment-redirect")}
}

func (r *ResponseRedirector) Open(_ context.Context, vendorID string, _ string) error {
	r.logger.WithField("vendor_id", vendorID).Info("payment_redirect_issued")
	return nil
}
