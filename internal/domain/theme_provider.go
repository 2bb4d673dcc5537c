package domain

import (
	"fmt"
	"sort"

	"github.com/inference-gateway/osint-toolkit/internal/ui/styles/colors"
)

// DefaultThemeName is the theme used when none is configured
const DefaultThemeName = "terminal-green"

// ThemeProvider implements ThemeService and manages available themes
type ThemeProvider struct {
	themes      map[string]Theme
	currentName string
}

// NewThemeProvider creates a new theme provider with default themes
func NewThemeProvider() *ThemeProvider {
	provider := &ThemeProvider{
		themes:      make(map[string]Theme),
		currentName: DefaultThemeName,
	}

	provider.registerDefaultThemes()
	return provider
}

func (tp *ThemeProvider) registerDefaultThemes() {
	tp.themes[DefaultThemeName] = NewTerminalGreenTheme()
	tp.themes["tokyo-night"] = NewTokyoNightTheme()
	tp.themes["dracula"] = NewDraculaTheme()
}

// SetTheme sets the current theme by name
func (tp *ThemeProvider) SetTheme(name string) error {
	if _, exists := tp.themes[name]; !exists {
		return fmt.Errorf("theme '%s' not found", name)
	}

	tp.currentName = name
	return nil
}

// GetCurrentTheme returns the currently active theme
func (tp *ThemeProvider) GetCurrentTheme() Theme {
	return tp.themes[tp.currentName]
}

// GetCurrentThemeName returns the name of the currently active theme
func (tp *ThemeProvider) GetCurrentThemeName() string {
	return tp.currentName
}

// ListThemes returns all available theme names, sorted
func (tp *ThemeProvider) ListThemes() []string {
	names := make([]string, 0, len(tp.themes))
	for name := range tp.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TerminalGreenTheme is the default green-on-dark look
type TerminalGreenTheme struct{}

func NewTerminalGreenTheme() *TerminalGreenTheme {
	return &TerminalGreenTheme{}
}

func (t *TerminalGreenTheme) GetAccentColor() string  { return colors.AccentColor.Lipgloss }
func (t *TerminalGreenTheme) GetTextColor() string    { return colors.TextColor.Lipgloss }
func (t *TerminalGreenTheme) GetDimColor() string     { return colors.DimColor.Lipgloss }
func (t *TerminalGreenTheme) GetErrorColor() string   { return colors.ErrorColor.Lipgloss }
func (t *TerminalGreenTheme) GetSuccessColor() string { return colors.SuccessColor.Lipgloss }
func (t *TerminalGreenTheme) GetStatusColor() string  { return colors.StatusColor.Lipgloss }
func (t *TerminalGreenTheme) GetBorderColor() string  { return colors.BorderColor.Lipgloss }
func (t *TerminalGreenTheme) GetBadgeColor() string   { return colors.BadgeColor.Lipgloss }

// TokyoNightTheme provides the Tokyo Night palette
type TokyoNightTheme struct{}

func NewTokyoNightTheme() *TokyoNightTheme {
	return &TokyoNightTheme{}
}

func (t *TokyoNightTheme) GetAccentColor() string  { return colors.TokyoBlue }
func (t *TokyoNightTheme) GetTextColor() string    { return colors.TokyoWhite }
func (t *TokyoNightTheme) GetDimColor() string     { return colors.TokyoGray }
func (t *TokyoNightTheme) GetErrorColor() string   { return colors.TokyoRed }
func (t *TokyoNightTheme) GetSuccessColor() string { return colors.TokyoGreen }
func (t *TokyoNightTheme) GetStatusColor() string  { return colors.TokyoMagenta }
func (t *TokyoNightTheme) GetBorderColor() string  { return colors.TokyoGray }
func (t *TokyoNightTheme) GetBadgeColor() string   { return colors.TokyoCyan }

// DraculaTheme provides the popular Dracula color scheme
type DraculaTheme struct{}

func NewDraculaTheme() *DraculaTheme {
	return &DraculaTheme{}
}

func (t *DraculaTheme) GetAccentColor() string  { return colors.DraculaPink }
func (t *DraculaTheme) GetTextColor() string    { return colors.DraculaForeground }
func (t *DraculaTheme) GetDimColor() string     { return colors.DraculaComment }
func (t *DraculaTheme) GetErrorColor() string   { return colors.DraculaRed }
func (t *DraculaTheme) GetSuccessColor() string { return colors.DraculaGreen }
func (t *DraculaTheme) GetStatusColor() string  { return colors.DraculaPurple }
func (t *DraculaTheme) GetBorderColor() string  { return colors.DraculaSelection }
func (t *DraculaTheme) GetBadgeColor() string   { return colors.DraculaCyan }
