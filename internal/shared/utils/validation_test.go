package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "walletpay/internal/shared/errors"
)

type sampleAmount struct {
	CurrencyCode string `json:"currencyCode" validate:"required"`
	Amount       string `json:"amount" validate:"required,numeric"`
}

type sampleEvent struct {
	Type   string        `json:"type" validate:"required"`
	Amount *sampleAmount `json:"orderAmount" validate:"required"`
}

type sampleConfig struct {
	AllowedIPs []string `mapstructure:"allowed_ips" validate:"required,min=1,dive,ip"`
}

func TestValidateStruct_OK(t *testing.T) {
	err := ValidateStruct(sampleEvent{Type: "ORDER_PAID", Amount: &sampleAmount{CurrencyCode: "TON", Amount: "1.5"}})
	assert.NoError(t, err)
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	err := ValidateStruct(sampleEvent{Amount: &sampleAmount{CurrencyCode: "TON", Amount: "abc"}})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.Contains(t, appErr.Details, "type is required")
	assert.Contains(t, appErr.Details, "orderAmount.amount must be a valid number")
}

func TestValidateStruct_UsesMapstructureNames(t *testing.T) {
	err := ValidateStruct(sampleConfig{AllowedIPs: []string{"127.0.0.1", "not-an-ip"}})
	require.Error(t, err)
	assert.Contains(t, apperrors.GetAppError(err).Details, "allowed_ips[1] must be a valid IP address")
}
