package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	cobra "github.com/spf13/cobra"

	config "github.com/inference-gateway/osint-toolkit/config"
	app "github.com/inference-gateway/osint-toolkit/internal/app"
	container "github.com/inference-gateway/osint-toolkit/internal/container"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive tool browser",
	Long: `Open the interactive tool browser. Type to filter the catalog, press enter
to open a tool card and simulate the tool from there.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd)
	},
}

func runBrowse(cmd *cobra.Command) error {
	if !isInteractiveTerminal() {
		return fmt.Errorf("the browser needs an interactive terminal; use 'osint list' or 'osint run' instead")
	}

	cfg, err := getConfigFromViper()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	return StartBrowser(cmd.Context(), cfg)
}

// StartBrowser runs the interactive browser until the user quits
func StartBrowser(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	services, err := container.NewServiceContainer(ctx, cfg)
	if err != nil {
		return err
	}

	application := app.NewBrowserApplication(ctx, services)
	program := tea.NewProgram(application, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}

// isInteractiveTerminal checks if we're running in an interactive terminal
func isInteractiveTerminal() bool {
	if fileInfo, _ := os.Stdin.Stat(); fileInfo == nil || (fileInfo.Mode()&os.ModeCharDevice) == 0 {
		return false
	}
	if fileInfo, _ := os.Stdout.Stat(); fileInfo == nil || (fileInfo.Mode()&os.ModeCharDevice) == 0 {
		return false
	}
	return true
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
