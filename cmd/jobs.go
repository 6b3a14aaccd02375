package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/factory"
	"github.com/vibast-solutions/ms-go-vendor-billing/app/service"
	"github.com/vibast-solutions/ms-go-vendor-billing/config"
)

var (
	pendingReportWorker bool
	pendingClearVendor  string
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Inspect and correct vendors waiting on a gateway payment",
}

// Pending payments never time out on their own; this only surfaces them to operators.
var pendingReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Log vendors whose payment has been pending longer than the configured age",
	Run: func(_ *cobra.Command, _ []string) {
		runCommand(
			"pending_report",
			pendingReportWorker,
			func(cfg *config.Config) time.Duration { return cfg.Jobs.PendingReportInterval },
			func(cfg *config.Config, s *services, ctx context.Context) error {
				return reportStalePending(ctx, s.subscription, cfg.Jobs.PendingStaleAge)
			},
		)
	},
}

var pendingClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop the pending payment of one vendor, keeping its active tier",
	Run: func(_ *cobra.Command, _ []string) {
		runCommand(
			"pending_clear",
			false,
			nil,
			func(_ *config.Config, s *services, ctx context.Context) error {
				_, err := s.subscription.ClearPending(ctx, pendingClearVendor)
				return err
			},
		)
	},
}

func init() {
	rootCmd.AddCommand(pendingCmd)
	pendingCmd.AddCommand(pendingReportCmd)
	pendingCmd.AddCommand(pendingClearCmd)

	pendingReportCmd.Flags().BoolVar(&pendingReportWorker, "worker", false, "Run continuously using configured interval")
	pendingClearCmd.Flags().StringVar(&pendingClearVendor, "vendor-id", "", "Vendor whose pending payment is cleared")
	_ = pendingClearCmd.MarkFlagRequired("vendor-id")
}

func reportStalePending(ctx context.Context, subscriptionService *service.VendorSubscriptionService, age time.Duration) error {
	profiles, err := subscriptionService.ListStalePending(ctx, age)
	if err != nil {
		return err
	}

	logger := factory.NewModuleLogger("pending-report")
	for _, profile := range profiles {
		pending := ""
		if profile.PendingTier != nil {
			pending = *profile.PendingTier
		}
		since := profile.UpdatedAt
		if profile.PendingSince != nil {
			since = *profile.PendingSince
		}
		factory.LoggerWithVendor(logger, profile.ID).WithFields(logrus.Fields{
			"current_tier":  profile.CurrentTier,
			"pending_tier":  pending,
			"pending_since": since.UTC().Format(time.RFC3339),
		}).Warn("payment_pending_stale")
	}
	logger.WithField("count", len(profiles)).Info("pending_report_finished")
	return nil
}

func runCommand(
	name string,
	worker bool,
	intervalResolver func(cfg *config.Config) time.Duration,
	fn func(cfg *config.Config, s *services, ctx context.Context) error,
) {
	cfg := mustLoadConfig()
	db := mustOpenDatabase(cfg)
	defer closeDatabase(db)
	svcs := mustBuildServices(cfg, db)

	if worker {
		runWorker(name, intervalResolver(cfg), func(ctx context.Context) error { return fn(cfg, svcs, ctx) })
		return
	}

	ctx := context.Background()
	runJob(name, func() error { return fn(cfg, svcs, ctx) })
}

func runWorker(name string, interval time.Duration, fn func(ctx context.Context) error) {
	if interval <= 0 {
		logrus.WithField("job", name).Fatal("invalid worker interval")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runJob(name, func() error { return fn(ctx) })

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	for {
		select {
		case <-quit:
			logrus.WithField("job", name).Info("Worker shutdown requested")
			return
		case <-ticker.C:
			runJob(name, func() error { return fn(ctx) })
		}
	}
}

func runJob(name string, fn func() error) {
	start := time.Now()
	err := fn()
	latency := time.Since(start)
	if err != nil {
		logrus.WithError(err).WithField("job", name).WithField("latency", latency.String()).Error("job_failed")
		return
	}
	logrus.WithField("job", name).WithField("latency", latency.String()).Info("job_completed")
}
