package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	cobra "github.com/spf13/cobra"

	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Display version information for the OSINT toolkit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return printVersion(cmd.OutOrStdout(), GetVersionInfo(), format)
	},
}

// GetVersionInfo returns the current version information
func GetVersionInfo() domain.VersionInfo {
	return domain.VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

func printVersion(out io.Writer, info domain.VersionInfo, format string) error {
	if strings.ToLower(format) == "json" {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(info)
	}

	_, err := fmt.Fprintf(out, "osint version %s\ncommit: %s\nbuilt at: %s\n", info.Version, info.Commit, info.Date)
	return err
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}
