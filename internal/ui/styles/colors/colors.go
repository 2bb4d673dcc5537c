package colors

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI Color Codes - Terminal Green Theme
const (
	Reset = "\033[0m"
	Green = "\033[38;2;74;222;128m"  // #4ade80 - primary accent
	Red   = "\033[38;2;239;68;68m"   // #ef4444 - errors
	Gray  = "\033[38;2;107;114;128m" // #6b7280 - dim text
	White = "\033[38;2;209;213;219m" // #d1d5db - body text
	Amber = "\033[38;2;250;204;21m"  // #facc15 - status
	Bold  = "\033[1m"
)

// Lipgloss Color Names
const (
	TerminalGreen     = "#4ade80"
	TerminalDarkGreen = "#16a34a"
	TerminalText      = "#d1d5db"
	TerminalMuted     = "#9ca3af"
	TerminalDim       = "#6b7280"
	TerminalBorder    = "#374151"
	TerminalRed       = "#ef4444"
	TerminalAmber     = "#facc15"

	// Tokyo Night Theme Colors
	TokyoBlue    = "#7aa2f7"
	TokyoWhite   = "#a9b1d6"
	TokyoGray    = "#565f89"
	TokyoRed     = "#f7768e"
	TokyoGreen   = "#9ece6a"
	TokyoMagenta = "#bb9af7"
	TokyoCyan    = "#7dcfff"

	// Dracula Theme Colors
	DraculaForeground = "#f8f8f2"
	DraculaComment    = "#6272a4"
	DraculaSelection  = "#44475a"
	DraculaRed        = "#ff5555"
	DraculaGreen      = "#50fa7b"
	DraculaPurple     = "#bd93f9"
	DraculaPink       = "#ff79c6"
	DraculaCyan       = "#8be9fd"
)

// Color represents a color that can be used in both ANSI and Lipgloss contexts
type Color struct {
	ANSI     string
	Lipgloss string
}

var (
	AccentColor  = Color{ANSI: Green, Lipgloss: TerminalGreen}
	TextColor    = Color{ANSI: White, Lipgloss: TerminalText}
	DimColor     = Color{ANSI: Gray, Lipgloss: TerminalDim}
	ErrorColor   = Color{ANSI: Red, Lipgloss: TerminalRed}
	SuccessColor = Color{ANSI: Green, Lipgloss: TerminalDarkGreen}
	StatusColor  = Color{ANSI: Amber, Lipgloss: TerminalAmber}
	BorderColor  = Color{ANSI: Gray, Lipgloss: TerminalBorder}
	BadgeColor   = Color{ANSI: Green, Lipgloss: TerminalDarkGreen}
)

// GetLipglossColor returns a lipgloss color for the given Color
func (c Color) GetLipglossColor() lipgloss.Color {
	return lipgloss.Color(c.Lipgloss)
}

// CreateSeparator creates a separator line with the given width and character
func CreateSeparator(width int, char string) string {
	if width <= 0 {
		return ""
	}
	return DimColor.ANSI + strings.Repeat(char, width) + Reset
}

// CreateColoredText creates colored text with automatic reset
func CreateColoredText(text string, color Color) string {
	return color.ANSI + text + Reset
}
