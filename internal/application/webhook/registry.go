package webhook

import (
	"context"
	"slices"
	"sync"

	"walletpay/internal/domain/webhook"
)

// APIClient is the WalletPay client handed to every callback. It owns the
// store API key that signs webhooks.
type APIClient interface {
	APIKey() string
	GetOrderPreview(ctx context.Context, orderID int64) (*webhook.OrderPreview, error)
}

// Handler is an application callback for a verified event. Returning an error
// stops the remaining callbacks of the same dispatch.
type Handler func(ctx context.Context, event *webhook.Event, client APIClient) error

// CallbackRegistry keeps the success and failure handlers in registration
// order. It only grows; Handlers returns a snapshot, so dispatch never sees a
// list that is being appended to.
type CallbackRegistry struct {
	mu      sync.RWMutex
	success []Handler
	failure []Handler
}

func NewCallbackRegistry() *CallbackRegistry {
	return &CallbackRegistry{}
}

// OnSuccess appends h to the ORDER_PAID handlers and returns it unchanged.
// Registering the same handler twice runs it twice.
func (r *CallbackRegistry) OnSuccess(h Handler) Handler {
	return r.register(CategorySuccess, h)
}

// OnFailure appends h to the ORDER_FAILED handlers and returns it unchanged.
func (r *CallbackRegistry) OnFailure(h Handler) Handler {
	return r.register(CategoryFailure, h)
}

func (r *CallbackRegistry) register(category Category, h Handler) Handler {
	if h == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	switch category {
	case CategorySuccess:
		r.success = append(r.success, h)
	case CategoryFailure:
		r.failure = append(r.failure, h)
	}
	return h
}

// Handlers returns a copy of the handlers registered for category.
func (r *CallbackRegistry) Handlers(category Category) []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	switch category {
	case CategorySuccess:
		return slices.Clone(r.success)
	case CategoryFailure:
		return slices.Clone(r.failure)
	default:
		return nil
	}
}

func (r *CallbackRegistry) Len(category Category) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	switch category {
	case CategorySuccess:
		return len(r.success)
	case CategoryFailure:
		return len(r.failure)
	default:
		return 0
	}
}
