package cmd

import (
	"context"
	"fmt"
	"os"

	cobra "github.com/spf13/cobra"
	viper "github.com/spf13/viper"

	config "github.com/inference-gateway/osint-toolkit/config"
	logger "github.com/inference-gateway/osint-toolkit/internal/logger"
)

// V holds the configuration resolved by initConfig
var V *viper.Viper

var rootCmd = &cobra.Command{
	Use:   "osint",
	Short: "Browse and simulate OSINT & red team tools",
	Long: `A terminal catalog of Open Source Intelligence, social engineering and
red team tools. Search the catalog, read about each tool and simulate its
command-line output with a hosted generative model. No command is ever
executed. For educational purposes only.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd)
	},
}

func Execute() {
	defer logger.Close()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Close()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", fmt.Sprintf("config file (default is %s)", config.DefaultConfigPath))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	configPath, _ := rootCmd.PersistentFlags().GetString("config")
	v, err := config.NewViper(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	V = v

	cfg, err := getConfigFromViper()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
	if err := logger.Init(cfg.Logging.Debug || verbose, cfg.Logging.Dir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
}

// getConfigFromViper returns the validated configuration, or the defaults
// when initConfig has not run
func getConfigFromViper() (*config.Config, error) {
	if V == nil {
		return config.DefaultConfig(), nil
	}
	return config.FromViper(V)
}
