// Package walletpay receives WalletPay order webhooks, verifies them and hands
// paid and failed orders to application callbacks.
package walletpay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"walletpay/internal/application/webhook"
	domain "walletpay/internal/domain/webhook"
	"walletpay/internal/infrastructure/config"
	httpRouter "walletpay/internal/interfaces/http"
	"walletpay/internal/shared/goroutine"
	"walletpay/internal/shared/logger"
)

const shutdownTimeout = 30 * time.Second

type (
	Config       = config.Config
	Event        = domain.Event
	OrderPreview = domain.OrderPreview
	APIClient    = webhook.APIClient
	Handler      = webhook.Handler
	Logger       = logger.Interface
)

// Manager owns the webhook endpoint: allowed origins, signature verification,
// the callback registry and the HTTP server around them.
type Manager struct {
	cfg        *Config
	allowed    *webhook.AllowedIPSet
	registry   *webhook.CallbackRegistry
	dispatcher *webhook.Dispatcher
	router     *httpRouter.Router
	gatherer   prometheus.Gatherer
	logger     logger.Interface
}

// NewManager builds a Manager that verifies webhooks with client's API key.
func NewManager(client APIClient, cfg *Config, log Logger) (*Manager, error) {
	if client == nil {
		return nil, errors.New("walletpay client is required")
	}
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if log == nil {
		log = logger.NewLogger()
	}

	allowed, err := webhook.NewAllowedIPSet(cfg.Webhook.AllowedIPs)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook.allowed_ips: %w", err)
	}

	registry := webhook.NewCallbackRegistry()
	dispatcher := webhook.NewDispatcher(
		webhook.NewAddressResolver(allowed, log.Named("resolver")),
		webhook.NewSignatureVerifier(client.APIKey()),
		registry,
		client,
		log.Named("dispatcher"),
	)
	dispatcher.SetCallbackTimeout(cfg.Webhook.CallbackTimeout)

	m := &Manager{
		cfg:        cfg,
		allowed:    allowed,
		registry:   registry,
		dispatcher: dispatcher,
		logger:     log,
	}

	if cfg.Server.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		dispatcher.SetMetrics(webhook.NewMetrics(reg))
		m.gatherer = reg
	}

	m.router = httpRouter.NewRouter(dispatcher, httpRouter.RouterConfig{
		Webhook:        cfg.Webhook,
		SwaggerEnabled: cfg.Server.SwaggerEnabled,
		Gatherer:       m.gatherer,
	}, log)
	m.router.SetupRoutes()

	return m, nil
}

// OnOrderPaid registers h for ORDER_PAID events and returns it unchanged.
func (m *Manager) OnOrderPaid(h Handler) Handler {
	return m.registry.OnSuccess(h)
}

// OnOrderFailed registers h for ORDER_FAILED events and returns it unchanged.
func (m *Manager) OnOrderFailed(h Handler) Handler {
	return m.registry.OnFailure(h)
}

// AllowedIPs returns the normalized allowlist in sorted order.
func (m *Manager) AllowedIPs() []string {
	return m.allowed.List()
}

func (m *Manager) Registry() *webhook.CallbackRegistry {
	return m.registry
}

// Handler exposes the routes for embedding into an existing server.
func (m *Manager) Handler() http.Handler {
	return m.router.GetEngine()
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (m *Manager) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         m.cfg.Server.GetAddr(),
		Handler:      m.Handler(),
		ReadTimeout:  m.cfg.Server.ReadTimeout,
		WriteTimeout: m.cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	goroutine.SafeGo(m.logger, "http-server", func() {
		m.logger.Infow("server starting",
			"address", srv.Addr,
			"webhook_path", m.cfg.Webhook.NormalizedPath(),
			"allowed_ips", m.AllowedIPs(),
			"paid_callbacks", m.registry.Len(webhook.CategorySuccess),
			"failed_callbacks", m.registry.Len(webhook.CategoryFailure),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	})

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	m.logger.Infow("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		m.logger.Errorw("server forced to shutdown", "error", err)
		return err
	}

	m.logger.Infow("server exited gracefully")
	return nil
}
