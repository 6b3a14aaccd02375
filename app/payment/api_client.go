package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/factory"
	"github.com/vibast-solutions/ms-go-vendor-billing/config"
)

const apiVersion = "v1"

type apiResponse struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// APIClient talks to the gateway REST API for recurring subscription management.
type APIClient struct {
	cfg        config.GatewayConfig
	httpClient *http.Client
	now        func() time.Time
	logger     logrus.FieldLogger
}

func NewAPIClient(cfg config.GatewayConfig, httpClient *http.Client, now func() time.Time) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	if now == nil {
		now = time.Now
	}
	return &APIClient{
		cfg:        cfg,
		httpClient: httpClient,
		now:        now,
		logger:     factory.NewModuleLogger("payment-api-client"),
	}
}

func (c *APIClient) CancelSubscription(ctx context.Context, token string) error {
	if c.cfg.MerchantID == "" {
		return ErrConfigurationMissing
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: empty subscription token", ErrGatewayRequestFailed)
	}

	endpoint := fmt.Sprintf("%s/subscriptions/%s/cancel", c.cfg.APIURL, url.PathEscape(token))
	if c.cfg.Sandbox {
		endpoint += "?testing=true"
	}

	timestamp := c.now().Format(time.RFC3339)
	headers := Fields{
		"merchant-id": c.cfg.MerchantID,
		"version":     apiVersion,
		"timestamp":   timestamp,
	}
	signature := BuildAPISignature(headers, c.cfg.Passphrase)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGatewayRequestFailed, err)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	req.Header.Set("signature", signature)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGatewayRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		c.logger.WithError(err).WithField("status_code", resp.StatusCode).Warn("gateway_cancel_unreadable")
		return fmt.Errorf("%w: read response: %v", ErrGatewayRequestFailed, err)
	}
	var decoded apiResponse
	decodeErr := json.Unmarshal(body, &decoded)

	logger := c.logger.WithFields(logrus.Fields{
		"status_code":    resp.StatusCode,
		"gateway_status": decoded.Status,
	})

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warn("gateway_cancel_rejected")
		return fmt.Errorf("%w: status %d", ErrGatewayRequestFailed, resp.StatusCode)
	}
	// A cancel only counts once the gateway confirms it in a decodable body.
	if decodeErr != nil {
		logger.WithError(decodeErr).Warn("gateway_cancel_unreadable")
		return fmt.Errorf("%w: decode response: %v", ErrGatewayRequestFailed, decodeErr)
	}
	if strings.EqualFold(decoded.Status, "failed") {
		logger.Warn("gateway_cancel_rejected")
		return fmt.Errorf("%w: %s", ErrGatewayRequestFailed, strings.TrimSpace(string(decoded.Data)))
	}

	logger.Info("gateway_cancel_accepted")
	return nil
}

// UpdateCardURL is the gateway page where a vendor replaces the card behind a subscription token.
func (c *APIClient) UpdateCardURL(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("%w: empty subscription token", ErrGatewayRequestFailed)
	}
	return fmt.Sprintf("%s/eng/recurring/update/%s?return=%s/dashboard/vendor", c.cfg.SiteURL, url.PathEscape(token), c.cfg.AppSiteURL), nil
}
