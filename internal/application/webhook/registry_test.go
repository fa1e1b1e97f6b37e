package webhook

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletpay/internal/domain/webhook"
)

func noopHandler(ctx context.Context, event *webhook.Event, client APIClient) error {
	return nil
}

func TestCallbackRegistry_RegisterReturnsHandler(t *testing.T) {
	registry := NewCallbackRegistry()

	var calls int
	h := Handler(func(ctx context.Context, event *webhook.Event, client APIClient) error {
		calls++
		return nil
	})

	returned := registry.OnSuccess(h)
	require.NotNil(t, returned)
	require.NoError(t, returned(context.Background(), nil, nil))
	assert.Equal(t, 1, calls)

	assert.Equal(t, 1, registry.Len(CategorySuccess))
	assert.Equal(t, 0, registry.Len(CategoryFailure))
	assert.Nil(t, registry.OnFailure(nil))
	assert.Equal(t, 0, registry.Len(CategoryFailure))
}

func TestCallbackRegistry_DuplicatesAndSnapshot(t *testing.T) {
	registry := NewCallbackRegistry()
	registry.OnFailure(noopHandler)
	registry.OnFailure(noopHandler)

	snapshot := registry.Handlers(CategoryFailure)
	assert.Len(t, snapshot, 2)

	registry.OnFailure(noopHandler)
	assert.Len(t, snapshot, 2, "snapshot is not affected by later registration")
	assert.Len(t, registry.Handlers(CategoryFailure), 3)
	assert.Nil(t, registry.Handlers(CategoryUnrecognized))
}

func TestCallbackRegistry_ConcurrentRegisterAndRead(t *testing.T) {
	registry := NewCallbackRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			registry.OnSuccess(noopHandler)
		}()
		go func() {
			defer wg.Done()
			for _, h := range registry.Handlers(CategorySuccess) {
				_ = h(context.Background(), nil, nil)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, registry.Len(CategorySuccess))
}
