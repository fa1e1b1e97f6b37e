package walletpay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "walletpay/internal/domain/webhook/valueobjects"
	sharedConfig "walletpay/internal/shared/config"
	apperrors "walletpay/internal/shared/errors"
	"walletpay/internal/shared/logger"
)

const previewBody = `{
  "status": "SUCCESS",
  "message": "",
  "data": {
    "id": 2703383946854401,
    "status": "PAID",
    "number": "9aeb581c",
    "amount": {"currencyCode": "TON", "amount": "10.5"},
    "createdDateTime": "2023-07-28T10:20:17.681338Z",
    "expirationDateTime": "2023-07-28T10:25:17.681338Z",
    "completedDateTime": "2023-07-28T10:21:03.511Z",
    "payLink": "https://t.me/wallet/start?startapp=wpay_order-orderId__2703383946854401",
    "directPayLink": "https://t.me/wallet?attach=wallet&startattach=wpay_order-orderId__2703383946854401"
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(sharedConfig.WalletPayConfig{
		APIKey:  "store-key",
		BaseURL: server.URL + "/",
		Timeout: 2 * time.Second,
	}, logger.NewNop())
}

func TestClient_APIKey(t *testing.T) {
	client := NewClient(sharedConfig.WalletPayConfig{APIKey: "secret"}, logger.NewNop())
	assert.Equal(t, "secret", client.APIKey())
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
}

func TestClient_GetOrderPreview(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, orderPreviewPath, r.URL.Path)
		assert.Equal(t, "2703383946854401", r.URL.Query().Get("id"))
		assert.Equal(t, "store-key", r.Header.Get(HeaderAPIKey))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(previewBody))
	})

	preview, err := client.GetOrderPreview(context.Background(), 2703383946854401)
	require.NoError(t, err)

	assert.Equal(t, int64(2703383946854401), preview.ID)
	assert.Equal(t, vo.OrderStatusPaid, preview.Status)
	assert.True(t, preview.IsPaid())
	assert.Equal(t, "9aeb581c", preview.Number)
	assert.Equal(t, vo.NewMoneyAmount("10.5", "TON"), preview.Amount)
	require.NotNil(t, preview.CompletedDateTime)
	assert.Equal(t, 2023, preview.CompletedDateTime.Year())
}

func TestClient_GetOrderPreview_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{
			name:       "http error with envelope",
			status:     http.StatusNotFound,
			body:       `{"status":"ORDER_NOT_FOUND","message":"Order not found"}`,
			wantDetail: "unexpected status code: 404 (ORDER_NOT_FOUND: Order not found)",
		},
		{
			name:       "http error without envelope",
			status:     http.StatusBadGateway,
			body:       `<html>bad gateway</html>`,
			wantDetail: "unexpected status code: 502",
		},
		{
			name:       "non success envelope",
			status:     http.StatusOK,
			body:       `{"status":"INVALID_REQUEST","message":"id is required"}`,
			wantDetail: "INVALID_REQUEST: id is required",
		},
		{
			name:   "undecodable body",
			status: http.StatusOK,
			body:   `not json`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			preview, err := client.GetOrderPreview(context.Background(), 1)
			require.Error(t, err)
			assert.Nil(t, preview)

			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeUpstream, appErr.Type)
			assert.Equal(t, http.StatusBadGateway, appErr.Code)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, appErr.Details)
			}
		})
	}
}

func TestClient_GetOrderPreview_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(previewBody))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetOrderPreview(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
