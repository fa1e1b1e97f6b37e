package walletpay

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"walletpay/internal/application/webhook"
	domain "walletpay/internal/domain/webhook"
	sharedConfig "walletpay/internal/shared/config"
	apperrors "walletpay/internal/shared/errors"
	"walletpay/internal/shared/logger"
)

const (
	HeaderAPIKey = "Wpay-Store-Api-Key"

	orderPreviewPath = "/wpay/store-api/v1/order/preview"
	// Default HTTP request timeout
	defaultTimeout = 10 * time.Second
	// Maximum response body size for store API responses (256KB)
	maxResponseSize = 256 << 10

	StatusSuccess = "SUCCESS"
)

// apiResponse is the envelope every store API endpoint answers with.
type apiResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to the WalletPay store API and owns the store API key, which
// is also the secret webhooks are signed with.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     logger.Interface
}

var _ webhook.APIClient = (*Client)(nil)

func NewClient(cfg sharedConfig.WalletPayConfig, logger logger.Interface) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *Client) APIKey() string {
	return c.apiKey
}

// GetOrderPreview fetches the current state of an order.
func (c *Client) GetOrderPreview(ctx context.Context, orderID int64) (*domain.OrderPreview, error) {
	query := url.Values{"id": {strconv.FormatInt(orderID, 10)}}

	var preview domain.OrderPreview
	if err := c.get(ctx, orderPreviewPath, query, &preview); err != nil {
		c.logger.Warnw("failed to fetch order preview",
			"order_id", orderID,
			"error", err,
		)
		return nil, err
	}
	return &preview, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperrors.NewInternalError("failed to create request").WithCause(err)
	}
	req.Header.Set(HeaderAPIKey, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError("walletpay request failed").WithCause(err)
	}
	defer resp.Body.Close()

	var envelope apiResponse
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&envelope)

	if resp.StatusCode != http.StatusOK {
		detail := fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
		if decodeErr == nil && envelope.Status != "" {
			detail = fmt.Sprintf("%s (%s: %s)", detail, envelope.Status, envelope.Message)
		}
		return apperrors.NewUpstreamError("walletpay request failed", detail)
	}
	if decodeErr != nil {
		return apperrors.NewUpstreamError("failed to decode walletpay response").WithCause(decodeErr)
	}
	if envelope.Status != StatusSuccess {
		return apperrors.NewUpstreamError("walletpay request failed",
			fmt.Sprintf("%s: %s", envelope.Status, envelope.Message))
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return apperrors.NewUpstreamError("failed to decode walletpay response").WithCause(err)
	}
	return nil
}
