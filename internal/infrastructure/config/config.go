package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"walletpay/internal/application/webhook"
	sharedConfig "walletpay/internal/shared/config"
	"walletpay/internal/shared/utils"
)

const EnvPrefix = "WALLETPAY"

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server" yaml:"server"`
	Webhook   sharedConfig.WebhookConfig   `mapstructure:"webhook" yaml:"webhook"`
	WalletPay sharedConfig.WalletPayConfig `mapstructure:"walletpay" yaml:"walletpay"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger" yaml:"logger"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads .env (if present), then configs/config.yaml (or configPath when
// given), then WALLETPAY_* environment variables, on top of the defaults.
// A missing default config file is not an error.
func Load(env, configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath("../configs")
		v.AddConfigPath("../../configs")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Webhook.Path = config.Webhook.NormalizedPath()

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	return utils.ValidateStruct(c)
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() Config {
	out := *c
	out.WalletPay.APIKey = utils.MaskSecret(c.WalletPay.APIKey)
	out.Webhook.AllowedIPs = append([]string(nil), c.Webhook.AllowedIPs...)
	return out
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 9123)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.swagger_enabled", false)
	v.SetDefault("server.metrics_enabled", true)

	v.SetDefault("webhook.path", "/wp_webhook")
	v.SetDefault("webhook.allowed_ips", webhook.DefaultAllowedIPs)
	v.SetDefault("webhook.max_body_bytes", 1<<20)
	v.SetDefault("webhook.callback_timeout", 30*time.Second)

	v.SetDefault("walletpay.api_key", "")
	v.SetDefault("walletpay.base_url", "https://pay.wallet.tg")
	v.SetDefault("walletpay.timeout", 10*time.Second)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")
}
