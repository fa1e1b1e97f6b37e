package webhook

import (
	"errors"
	"fmt"
)

// Client-facing messages. WalletPay only looks at the status code, but the
// bodies are part of the documented contract.
const (
	MessageOrderPaid    = "Successful event processed!"
	MessageOrderFailed  = "Failed event processed!"
	MessageUnrecognized = "Webhook received with unknown status!"

	DetailIPNotAllowed     = "IP not allowed"
	DetailInvalidSignature = "Invalid signature"
	DetailMalformedPayload = "Malformed payload"
	DetailCallbackFailed   = "Callback execution failed"
)

var (
	ErrForbiddenOrigin  = errors.New("request origin is not in the allowed IP set")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMalformedPayload = errors.New("malformed webhook payload")
	ErrCallbackTimeout  = errors.New("callback timed out")
)

// CallbackError reports the callback that stopped a dispatch.
type CallbackError struct {
	Category Category
	Index    int
	Err      error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("%s callback #%d failed: %v", e.Category, e.Index, e.Err)
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}
