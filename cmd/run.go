package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	cobra "github.com/spf13/cobra"

	catalog "github.com/inference-gateway/osint-toolkit/internal/catalog"
	container "github.com/inference-gateway/osint-toolkit/internal/container"
	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
	logger "github.com/inference-gateway/osint-toolkit/internal/logger"
)

var runCmd = &cobra.Command{
	Use:   "run ID [INPUT]",
	Short: "Simulate one tool run",
	Long: `Simulate a single run of a catalog tool and print the fabricated terminal
output. Text tools take INPUT, file tools take --file. Nothing is executed.`,
	Example: `  osint run whois example.com
  osint run exiftool --file ./photo.jpg
  osint run photon --file ./page.html`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath, _ := cmd.Flags().GetString("file")

		cfg, err := getConfigFromViper()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		services, err := container.NewServiceContainer(ctx, cfg)
		if err != nil {
			return err
		}

		return runTool(ctx, cmd.OutOrStdout(), services.GetCatalog(), services.GetToolRunner(), args, filePath)
	},
}

// toolInput picks the input for a run; a file always wins over text
func toolInput(args []string, filePath string) domain.Input {
	if filePath != "" {
		return domain.NewFileInput(filePath)
	}
	if len(args) > 1 {
		if text := strings.TrimSpace(args[1]); text != "" {
			return domain.TextInput{Value: text}
		}
	}
	return nil
}

func runTool(ctx context.Context, out io.Writer, cat *catalog.Catalog, runner domain.ToolRunner, args []string, filePath string) error {
	tool, ok := cat.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown tool %q (see 'osint list')", args[0])
	}
	if !tool.IsRunnable() {
		return fmt.Errorf("%s is listed for reference only and cannot be simulated", tool.Name)
	}

	input := toolInput(args, filePath)
	if input == nil {
		if tool.InputType == domain.InputFile {
			return fmt.Errorf("%s needs a file: use --file PATH", tool.Name)
		}
		return fmt.Errorf("%s needs input, e.g. osint run %s %s", tool.Name, tool.ID, exampleInput(tool))
	}
	if !runner.CanRun(tool, input) {
		return fmt.Errorf("%s cannot be simulated with this input", tool.Name)
	}

	output, err := runner.Run(ctx, tool, input)
	if err != nil {
		var failure *domain.RequestFailure
		if errors.As(err, &failure) {
			logger.Debug("tool run failed", "tool_id", tool.ID, "error", failure.Err)
			return errors.New(failure.UserMessage())
		}
		return err
	}

	_, err = fmt.Fprintln(out, output)
	return err
}

func exampleInput(tool domain.ToolRecord) string {
	if tool.CommandPlaceholder != "" {
		return tool.CommandPlaceholder
	}
	return "<input>"
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("file", "f", "", "File to attach (image or document tools)")
}
