package cmd

import (
	"fmt"
	"io"

	cobra "github.com/spf13/cobra"

	catalog "github.com/inference-gateway/osint-toolkit/internal/catalog"
	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
	markdown "github.com/inference-gateway/osint-toolkit/internal/ui/markdown"
)

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a tool's card",
	Long:  `Show the catalog entry of one tool: description, simulated command and website.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")
		width, _ := cmd.Flags().GetInt("width")

		cfg, err := getConfigFromViper()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		cat, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}

		themes := domain.NewThemeProvider()
		if cfg.UI.Theme != "" {
			_ = themes.SetTheme(cfg.UI.Theme)
		}

		return runShow(cmd.OutOrStdout(), cat, args[0], themes, width, raw)
	},
}

func runShow(out io.Writer, cat *catalog.Catalog, id string, themes domain.ThemeService, width int, raw bool) error {
	tool, ok := cat.Get(id)
	if !ok {
		return fmt.Errorf("unknown tool %q (see 'osint list')", id)
	}

	doc := markdown.ToolDocument(tool)
	if !raw {
		doc = markdown.NewRenderer(themes, width).Render(doc)
	}

	_, err := fmt.Fprintln(out, doc)
	return err
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("raw", false, "Print the markdown source instead of rendering it")
	showCmd.Flags().Int("width", 80, "Wrap width")
}
