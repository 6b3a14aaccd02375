package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-vendor-billing/config"
)

var gatewayCancelToken string

var gatewayCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Operate on recurring subscriptions held at the payment gateway",
}

// gatewayCancelCmd cancels at the gateway only; the vendor profile is left as is.
var gatewayCancelCmd = &cobra.Command{
	Use:   "cancel-subscription",
	Short: "Cancel a recurring subscription by its gateway token",
	Run: func(_ *cobra.Command, _ []string) {
		runCommand(
			"gateway_cancel_subscription",
			false,
			nil,
			func(cfg *config.Config, s *services, ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, cfg.Gateway.RequestTimeout+5*time.Second)
				defer cancel()
				return s.apiClient.CancelSubscription(ctx, gatewayCancelToken)
			},
		)
	},
}

func init() {
	rootCmd.AddCommand(gatewayCmd)
	gatewayCmd.AddCommand(gatewayCancelCmd)

	gatewayCancelCmd.Flags().StringVar(&gatewayCancelToken, "token", "", "Gateway subscription token")
	_ = gatewayCancelCmd.MarkFlagRequired("token")
}
