package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventType_IsRecognized(t *testing.T) {
	tests := []struct {
		eventType EventType
		want      bool
	}{
		{EventTypeOrderPaid, true},
		{EventTypeOrderFailed, true},
		{EventType("ORDER_REFUNDED"), false},
		{EventType("order_paid"), false},
		{EventType(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.eventType), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.eventType.IsRecognized())
		})
	}
}

func TestOrderStatus_IsFinal(t *testing.T) {
	assert.False(t, OrderStatusActive.IsFinal())
	assert.True(t, OrderStatusPaid.IsFinal())
	assert.True(t, OrderStatusExpired.IsFinal())
	assert.True(t, OrderStatusCancelled.IsFinal())
	assert.False(t, OrderStatus("UNKNOWN").IsValid())
}

func TestMoneyAmount(t *testing.T) {
	a := NewMoneyAmount("1.50", "TON")
	assert.Equal(t, "1.50 TON", a.String())
	assert.True(t, a.Equals(NewMoneyAmount("1.50", "TON")))
	assert.False(t, a.Equals(NewMoneyAmount("1.5", "TON")))
}
