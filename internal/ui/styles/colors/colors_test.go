package colors

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestColor_GetLipglossColor(t *testing.T) {
	color := Color{ANSI: Red, Lipgloss: "31"}

	if color.GetLipglossColor() != lipgloss.Color("31") {
		t.Errorf("Expected lipgloss color '31', got '%s'", string(color.GetLipglossColor()))
	}
}

func TestCreateSeparator(t *testing.T) {
	tests := []struct {
		name  string
		width int
		char  string
		want  int
	}{
		{name: "regular width", width: 10, char: "─", want: 10},
		{name: "zero width", width: 0, char: "─", want: 0},
		{name: "negative width", width: -3, char: "─", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CreateSeparator(tt.width, tt.char)
			if count := strings.Count(got, tt.char); count != tt.want {
				t.Errorf("Expected %d separator characters, got %d", tt.want, count)
			}
		})
	}
}

func TestCreateColoredText(t *testing.T) {
	got := CreateColoredText("sherlock", AccentColor)

	if !strings.HasPrefix(got, Green) {
		t.Errorf("Expected text to start with the accent ANSI code, got %q", got)
	}
	if !strings.HasSuffix(got, Reset) {
		t.Errorf("Expected text to end with reset code, got %q", got)
	}
}
