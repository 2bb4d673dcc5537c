package markdown

import (
	"fmt"
	"strings"

	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
)

// ToolDocument describes a catalog entry as markdown
func ToolDocument(tool domain.ToolRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", tool.Name)
	fmt.Fprintf(&b, "*%s*\n\n", tool.Category)
	fmt.Fprintf(&b, "%s\n", tool.Description)

	if tool.IsRunnable() {
		b.WriteString("\n## Simulate\n\n")

		switch {
		case tool.InputType == domain.InputFile:
			b.WriteString("- **Input:** file")
			if tool.Accept != "" {
				fmt.Fprintf(&b, " (`%s`)", tool.Accept)
			}
			b.WriteString("\n")
		default:
			b.WriteString("- **Input:** text\n")
			if tool.AllowFileUpload {
				b.WriteString("- **Attach:** file")
				if tool.Accept != "" {
					fmt.Fprintf(&b, " (`%s`)", tool.Accept)
				}
				b.WriteString("\n")
			}
		}

		if tool.CommandTemplate != "" {
			example := tool.CommandPlaceholder
			if example == "" {
				example = "<input>"
			}
			fmt.Fprintf(&b, "\n```\n$ %s\n```\n", tool.ApplyTemplate(example))
		}

		fmt.Fprintf(&b, "\nRun it with `osint run %s`.\n", tool.ID)
	}

	if tool.URL != "" {
		fmt.Fprintf(&b, "\n---\n\n[Visit Website](%s)\n", tool.URL)
	}

	return b.String()
}
