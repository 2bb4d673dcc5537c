package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	cobra "github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"

	catalog "github.com/inference-gateway/osint-toolkit/internal/catalog"
	styles "github.com/inference-gateway/osint-toolkit/internal/ui/styles"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog tools",
	Long: `List the tools in the catalog. With --query only tools whose name,
description or category contain the query (case-insensitive) are shown.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query, _ := cmd.Flags().GetString("query")
		format, _ := cmd.Flags().GetString("format")

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		return runList(cmd.OutOrStdout(), cat, query, format)
	},
}

// loadCatalog loads the configured catalog without building a generator
func loadCatalog() (*catalog.Catalog, error) {
	cfg, err := getConfigFromViper()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

func runList(out io.Writer, cat *catalog.Catalog, query, format string) error {
	tools := cat.Search(query)

	switch strings.ToLower(format) {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(tools)
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(tools); err != nil {
			return fmt.Errorf("failed to encode tools: %w", err)
		}
		return encoder.Close()
	case "text", "":
	default:
		return fmt.Errorf("unsupported format %q (expected text, json or yaml)", format)
	}

	if len(tools) == 0 {
		_, err := fmt.Fprintln(out, "No tools found matching your search.")
		return err
	}

	s := styles.NewCommonStyles()
	if _, err := fmt.Fprintf(out, "Showing %d of %d tools:\n\n", len(tools), cat.Len()); err != nil {
		return err
	}

	for _, tool := range tools {
		line := fmt.Sprintf("%s %s %s",
			s.Name.Render(tool.Name),
			s.Category.Render("["+tool.Category+"]"),
			s.Dim.Render("("+tool.ID+")"),
		)
		if tool.CommandTemplate != "" {
			line += "  " + s.Command.Render("$ "+tool.CommandTemplate)
		}
		if _, err := fmt.Fprintf(out, "%s\n   %s\n", line, s.Description.Render(tool.Description)); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("query", "q", "", "Filter tools by name, description or category")
	listCmd.Flags().StringP("format", "f", "text", "Output format (text, json, yaml)")
}
