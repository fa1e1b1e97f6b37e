package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"walletpay"
	"walletpay/internal/application/webhook"
	domain "walletpay/internal/domain/webhook"
	"walletpay/internal/infrastructure/config"
	walletpayClient "walletpay/internal/infrastructure/walletpay"
	"walletpay/internal/shared/logger"
)

var (
	env        string
	configPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the webhook receiver",
		Long:  `Start the WalletPay webhook receiver with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: configs/config.yaml)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting server",
		"environment", env,
		"mode", cfg.Server.Mode,
	)

	gin.SetMode(cfg.Server.Mode)

	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	client := walletpayClient.NewClient(cfg.WalletPay, log.Named("walletpay"))

	manager, err := walletpay.NewManager(client, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create webhook manager: %w", err)
	}

	auditLog := log.Named("orders")
	manager.OnOrderPaid(auditCallback(auditLog))
	manager.OnOrderFailed(auditCallback(auditLog))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return manager.Run(ctx)
}

// auditCallback records every verified order event.
func auditCallback(log logger.Interface) webhook.Handler {
	return func(ctx context.Context, event *domain.Event, client webhook.APIClient) error {
		args := []any{
			"event_id", event.EventID,
			"event_type", event.Type.String(),
			"order_id", event.Payload.OrderID,
			"external_id", event.Payload.ExternalID,
			"amount", event.Payload.OrderAmount.String(),
		}
		if !event.Payload.CustomData.IsEmpty() {
			args = append(args, "custom_data", event.Payload.CustomData.Raw)
		}
		log.Infow("order event received", args...)
		return nil
	}
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
