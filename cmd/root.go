package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vendor-billing-service",
	Short: "Vendor subscription billing service",
	Long:  "Vendor subscription lifecycle, payment gateway signing and operator jobs for vendor billing.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
