package cmd

import (
	"fmt"
	"io"
	"os"

	cobra "github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"

	config "github.com/inference-gateway/osint-toolkit/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage toolkit configuration",
	Long:  `Manage the OSINT toolkit configuration settings.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new project configuration",
	Long: `Initialize a new .osint/config.yaml configuration file in the current directory.
The API key is best left out of the file and provided through API_KEY or a .env file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		return runConfigInit(cmd.OutOrStdout(), config.DefaultConfigPath, overwrite)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long:  `Print the configuration after defaults, the config file and OSINT_* environment overrides are applied. The API key is masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromViper()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return runConfigShow(cmd.OutOrStdout(), cfg)
	},
}

func runConfigInit(out io.Writer, configPath string, overwrite bool) error {
	if _, err := os.Stat(configPath); err == nil && !overwrite {
		return fmt.Errorf("configuration file %s already exists (use --overwrite to replace)", configPath)
	}

	if err := config.DefaultConfig().SaveConfig(configPath); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	_, err := fmt.Fprintf(out, "Successfully created %s\nYou can now customize the configuration for this project.\n", configPath)
	return err
}

func runConfigShow(out io.Writer, cfg *config.Config) error {
	masked := *cfg
	if key := cfg.ResolveAPIKey(); key != "" {
		masked.Generation.APIKey = maskSecret(key)
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(&masked); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return encoder.Close()
}

func maskSecret(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "..." + s[len(s)-4:]
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().Bool("overwrite", false, "Overwrite existing configuration file")
}
