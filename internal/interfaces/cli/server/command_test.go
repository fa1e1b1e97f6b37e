package server

import (
	"context"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	domain "walletpay/internal/domain/webhook"
	vo "walletpay/internal/domain/webhook/valueobjects"
	"walletpay/internal/shared/logger"
)

func TestMapEnvToGinMode(t *testing.T) {
	tests := map[string]string{
		"production":  gin.ReleaseMode,
		"prod":        gin.ReleaseMode,
		"test":        gin.TestMode,
		"development": gin.DebugMode,
		"":            gin.DebugMode,
	}
	for env, want := range tests {
		assert.Equal(t, want, mapEnvToGinMode(env), env)
	}
}

func TestAuditCallback(t *testing.T) {
	amount := vo.NewMoneyAmount("1.5", "TON")
	event := &domain.Event{
		EventID: 1,
		Type:    vo.EventTypeOrderPaid,
		Payload: &domain.Payload{
			OrderID:     10,
			OrderAmount: &amount,
			CustomData:  domain.ParseCustomData(`{"user":1}`),
		},
	}

	err := auditCallback(logger.NewNop())(context.Background(), event, nil)
	assert.NoError(t, err)
}
