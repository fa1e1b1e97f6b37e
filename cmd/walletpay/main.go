package main

import (
	"os"

	"github.com/spf13/cobra"

	"walletpay/internal/interfaces/cli/configcmd"
	"walletpay/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "walletpay",
		Short: "WalletPay webhook receiver",
		Long:  `walletpay receives WalletPay order webhooks, verifies origin and signature, and dispatches paid and failed orders to registered callbacks.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		configcmd.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
