package styles

import (
	"strings"

	lipgloss "github.com/charmbracelet/lipgloss"

	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
)

// Provider centralizes all styling logic and provides complete abstraction from Lipgloss.
// Components should NEVER import lipgloss directly - they interact with styling through this provider.
type Provider struct {
	themeService domain.ThemeService
}

// NewProvider creates a new style provider
func NewProvider(themeService domain.ThemeService) *Provider {
	return &Provider{
		themeService: themeService,
	}
}

// Header styles

// RenderTitle renders the application title
func (p *Provider) RenderTitle(title string, width int) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetAccentColor())).
		Bold(true).
		Width(width).
		Align(lipgloss.Center)
	return style.Render(title)
}

// RenderSubtitle renders the muted line under a title
func (p *Provider) RenderSubtitle(text string, width int) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetDimColor())).
		Width(width).
		Align(lipgloss.Center)
	return style.Render(text)
}

// List/Selection styles

// RenderToolRow renders one catalog entry in the tool list
func (p *Provider) RenderToolRow(name, category, description string, selected bool) string {
	theme := p.themeService.GetCurrentTheme()

	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.GetTextColor()))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.GetDimColor()))
	prefix := "  "

	if selected {
		nameStyle = nameStyle.Foreground(lipgloss.Color(theme.GetAccentColor())).Bold(true)
		prefix = "▶ "
	}

	return prefix + nameStyle.Render(name) + " " + p.RenderBadge(category) + "\n    " + descStyle.Render(description)
}

// RenderBadge renders a category badge
func (p *Provider) RenderBadge(text string) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetBadgeColor())).
		Bold(true)
	return style.Render("[" + text + "]")
}

// Card styles

// RenderCard renders a tool card with rounded border
func (p *Provider) RenderCard(content string, width int) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.GetBorderColor())).
		Padding(1, 2).
		Width(width)
	return style.Render(content)
}

// RenderCardTitle renders a card title with emphasis
func (p *Provider) RenderCardTitle(title string) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetAccentColor())).
		Bold(true)
	return style.Render(title)
}

// RenderSectionLabel renders an uppercase field label
func (p *Provider) RenderSectionLabel(label string) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetDimColor())).
		Bold(true)
	return style.Render(strings.ToUpper(label))
}

// Input styles

// RenderInputField renders an input field with border
func (p *Provider) RenderInputField(content string, width int, focused bool) string {
	theme := p.themeService.GetCurrentTheme()

	borderColor := theme.GetBorderColor()
	if focused {
		borderColor = theme.GetAccentColor()
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1).
		Width(width)

	return style.Render(content)
}

// RenderInputPlaceholder renders placeholder text
func (p *Provider) RenderInputPlaceholder(text string) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetDimColor())).
		Italic(true)
	return style.Render(text)
}

// RenderCommandAffix renders the fixed parts of a command around the input
func (p *Provider) RenderCommandAffix(text string) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetAccentColor()))
	return style.Render(text)
}

// Button styles

// RenderButton renders a button, dimmed when disabled
func (p *Provider) RenderButton(text string, enabled bool) string {
	theme := p.themeService.GetCurrentTheme()

	style := lipgloss.NewStyle().Padding(0, 2)
	if enabled {
		style = style.
			Background(lipgloss.Color(theme.GetAccentColor())).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)
	} else {
		style = style.
			Foreground(lipgloss.Color(theme.GetDimColor()))
	}
	return style.Render(text)
}

// Text styles

// RenderErrorText renders error text
func (p *Provider) RenderErrorText(text string) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetErrorColor()))
	return style.Render(text)
}

// RenderSuccessText renders success text
func (p *Provider) RenderSuccessText(text string) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetSuccessColor()))
	return style.Render(text)
}

// RenderDimText renders dimmed text
func (p *Provider) RenderDimText(text string) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetDimColor()))
	return style.Render(text)
}

// RenderLinkText renders a hyperlink target
func (p *Provider) RenderLinkText(text string) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetStatusColor())).
		Underline(true)
	return style.Render(text)
}

// RenderBoldText renders bold text
func (p *Provider) RenderBoldText(text string) string {
	style := lipgloss.NewStyle().Bold(true)
	return style.Render(text)
}

// Layout/Structure styles

// RenderSeparator renders a horizontal separator line
func (p *Provider) RenderSeparator(width int, char string) string {
	if width <= 0 {
		return ""
	}
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetDimColor()))
	return style.Render(strings.Repeat(char, width))
}

// RenderFooter renders a centered muted footer line
func (p *Provider) RenderFooter(text string, width int) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetDimColor())).
		Width(width).
		Align(lipgloss.Center)
	return style.Render(text)
}

// RenderOutputPanel renders simulated terminal output
func (p *Provider) RenderOutputPanel(content string, width int) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetSuccessColor())).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.GetBorderColor())).
		Padding(0, 1).
		Width(width)
	return style.Render(content)
}

// Status styles

// RenderSpinner renders a spinner with status color
func (p *Provider) RenderSpinner(frame string) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetStatusColor()))
	return style.Render(frame)
}

// GetSpinnerStyle returns the style bubbles/spinner renders frames with
func (p *Provider) GetSpinnerStyle() lipgloss.Style {
	theme := p.themeService.GetCurrentTheme()
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.GetStatusColor()))
}

// RenderStatusLine renders a transient status message
func (p *Provider) RenderStatusLine(content string) string {
	theme := p.themeService.GetCurrentTheme()
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.GetStatusColor())).
		Italic(true)
	return style.Render(content)
}

// Layout utilities to avoid components depending on lipgloss

// JoinVertical joins strings vertically
func (p *Provider) JoinVertical(strs ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, strs...)
}

// JoinHorizontal joins strings horizontally
func (p *Provider) JoinHorizontal(strs ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, strs...)
}

// PlaceHorizontal places two components horizontally with the second one on the right
func (p *Provider) PlaceHorizontal(width int, left string, right string) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)

	if leftWidth+rightWidth >= width {
		return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	padding := width - leftWidth - rightWidth
	spacer := strings.Repeat(" ", padding)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right)
}

// GetHeight returns the rendered height of a string
func (p *Provider) GetHeight(s string) int {
	return lipgloss.Height(s)
}

// GetWidth returns the rendered width of a string
func (p *Provider) GetWidth(s string) int {
	return lipgloss.Width(s)
}

// GetThemeService exposes the theme service for components that switch themes
func (p *Provider) GetThemeService() domain.ThemeService {
	return p.themeService
}
