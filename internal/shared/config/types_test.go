package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWebhookPath(t *testing.T) {
	assert.Equal(t, "/wp_webhook", NormalizeWebhookPath("wp_webhook"))
	assert.Equal(t, "/wp_webhook", NormalizeWebhookPath("/wp_webhook"))
	assert.Equal(t, "/hooks/wp", NormalizeWebhookPath(" hooks/wp "))
}

func TestServerConfig_GetAddr(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", Port: 9123}
	assert.Equal(t, "0.0.0.0:9123", cfg.GetAddr())
}
