package config

import (
	"fmt"
	"strings"
	"time"
)

type ServerConfig struct {
	Host           string        `mapstructure:"host" yaml:"host" validate:"required"`
	Port           int           `mapstructure:"port" yaml:"port" validate:"gte=1,lte=65535"`
	Mode           string        `mapstructure:"mode" yaml:"mode"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	SwaggerEnabled bool          `mapstructure:"swagger_enabled" yaml:"swagger_enabled"`
	MetricsEnabled bool          `mapstructure:"metrics_enabled" yaml:"metrics_enabled"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format" validate:"omitempty,oneof=json console"`
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
}

type WebhookConfig struct {
	Path            string        `mapstructure:"path" yaml:"path" validate:"required"`
	AllowedIPs      []string      `mapstructure:"allowed_ips" yaml:"allowed_ips" validate:"required,min=1,dive,ip"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes" yaml:"max_body_bytes" validate:"gt=0"`
	CallbackTimeout time.Duration `mapstructure:"callback_timeout" yaml:"callback_timeout" validate:"gte=0"`
}

// NormalizedPath returns the webhook path with a guaranteed leading slash.
func (w *WebhookConfig) NormalizedPath() string {
	return NormalizeWebhookPath(w.Path)
}

func NormalizeWebhookPath(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}

type WalletPayConfig struct {
	APIKey  string        `mapstructure:"api_key" yaml:"api_key" validate:"required"`
	BaseURL string        `mapstructure:"base_url" yaml:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}
