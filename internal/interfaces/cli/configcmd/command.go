package configcmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"walletpay/internal/infrastructure/config"
)

func NewCommand() *cobra.Command {
	var (
		env        string
		configPath string
		validate   bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  `Print the configuration after defaults, config file and WALLETPAY_* environment overrides are applied. The API key is masked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(env, configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := printConfig(cmd.OutOrStdout(), cfg); err != nil {
				return err
			}
			if validate {
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("invalid config: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: configs/config.yaml)")
	cmd.Flags().BoolVar(&validate, "validate", false, "Fail if the configuration is invalid")

	return cmd
}

func printConfig(w io.Writer, cfg *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg.Redacted()); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
