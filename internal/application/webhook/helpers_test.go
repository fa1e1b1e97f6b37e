package webhook

import (
	"context"
	"net/http"

	"walletpay/internal/domain/webhook"
	"walletpay/internal/shared/logger"
)

const (
	testSecret    = "test-store-api-key"
	testPath      = "/wp_webhook"
	testTimestamp = "168425"
)

type fakeClient struct{}

func (fakeClient) APIKey() string { return testSecret }

func (fakeClient) GetOrderPreview(ctx context.Context, orderID int64) (*webhook.OrderPreview, error) {
	return &webhook.OrderPreview{ID: orderID}, nil
}

func eventBody(eventType string) []byte {
	return []byte(`[{"eventId": 1001, "eventDateTime": "2023-07-28T10:20:17Z", "type": "` + eventType + `",
		"payload": {"id": 77, "number": "XYTNJP2O", "externalId": "ORD-1",
		"orderAmount": {"currencyCode": "TON", "amount": "1.25"}}}]`)
}

// signedRequest builds a request from peer whose signature is valid for body.
func signedRequest(peer string, body []byte) IncomingRequest {
	headers := http.Header{}
	headers.Set(HeaderTimestamp, testTimestamp)
	headers.Set(HeaderSignature, NewSignatureVerifier(testSecret).Sign(http.MethodPost, testPath, testTimestamp, body))
	return IncomingRequest{
		Method:     http.MethodPost,
		Path:       testPath,
		Body:       body,
		Headers:    headers,
		RemoteAddr: peer + ":52311",
	}
}

func newTestDispatcher(registry *CallbackRegistry) *Dispatcher {
	log := logger.NewNop()
	return NewDispatcher(
		NewAddressResolver(MustAllowedIPSet(DefaultAllowedIPs...), log),
		NewSignatureVerifier(testSecret),
		registry,
		fakeClient{},
		log,
	)
}
