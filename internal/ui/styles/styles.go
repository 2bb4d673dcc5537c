package styles

import (
	lipgloss "github.com/charmbracelet/lipgloss"

	colors "github.com/inference-gateway/osint-toolkit/internal/ui/styles/colors"
)

// CommonStyles contains reusable lipgloss styles for non-interactive output
type CommonStyles struct {
	Name        lipgloss.Style
	Category    lipgloss.Style
	Description lipgloss.Style
	Command     lipgloss.Style
	Error       lipgloss.Style
	Dim         lipgloss.Style
}

// NewCommonStyles creates a new set of common styles with consistent theming
func NewCommonStyles() *CommonStyles {
	return &CommonStyles{
		Name: lipgloss.NewStyle().
			Foreground(colors.AccentColor.GetLipglossColor()).
			Bold(true),
		Category: lipgloss.NewStyle().
			Foreground(colors.BadgeColor.GetLipglossColor()),
		Description: lipgloss.NewStyle().
			Foreground(colors.TextColor.GetLipglossColor()),
		Command: lipgloss.NewStyle().
			Foreground(colors.SuccessColor.GetLipglossColor()),
		Error: lipgloss.NewStyle().
			Foreground(colors.ErrorColor.GetLipglossColor()).
			Bold(true),
		Dim: lipgloss.NewStyle().
			Foreground(colors.DimColor.GetLipglossColor()),
	}
}
