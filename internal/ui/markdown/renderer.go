package markdown

import (
	"strings"

	glamour "github.com/charmbracelet/glamour"
	ansi "github.com/charmbracelet/glamour/ansi"

	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
)

// Renderer turns markdown into themed terminal output
type Renderer struct {
	themeService domain.ThemeService
	width        int
	renderer     *glamour.TermRenderer
}

// NewRenderer creates a markdown renderer using the current theme colors
func NewRenderer(themeService domain.ThemeService, width int) *Renderer {
	r := &Renderer{
		themeService: themeService,
		width:        width,
	}
	r.updateRenderer()
	return r
}

// SetWidth updates the wrap width
func (r *Renderer) SetWidth(width int) {
	if width != r.width {
		r.width = width
		r.updateRenderer()
	}
}

// RefreshTheme rebuilds the renderer after a theme change
func (r *Renderer) RefreshTheme() {
	r.updateRenderer()
}

// Render converts markdown to styled terminal output. Plain text and
// rendering failures are returned unchanged.
func (r *Renderer) Render(content string) string {
	if r.renderer == nil || !containsMarkdown(content) {
		return content
	}

	rendered, err := r.renderer.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimSpace(rendered)
}

func (r *Renderer) updateRenderer() {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(r.buildStyleConfig()),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(r.width),
		)
	}
	r.renderer = renderer
}

func (r *Renderer) buildStyleConfig() ansi.StyleConfig {
	theme := r.themeService.GetCurrentTheme()
	accent := theme.GetAccentColor()
	text := theme.GetTextColor()
	dim := theme.GetDimColor()
	success := theme.GetSuccessColor()
	status := theme.GetStatusColor()
	border := theme.GetBorderColor()
	badge := theme.GetBadgeColor()

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: stringPtr(text)},
			Margin:         uintPtr(0),
		},
		Paragraph: ansi.StyleBlock{},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: stringPtr(dim)},
			Indent:         uintPtr(1),
			IndentToken:    stringPtr("│ "),
		},
		List: ansi.StyleList{
			LevelIndent: 2,
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Bold: boolPtr(true), Color: stringPtr(accent)},
		},
		H1: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Bold: boolPtr(true), Color: stringPtr(accent)},
		},
		H2: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Bold: boolPtr(true), Color: stringPtr(status)},
		},
		H3: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Bold: boolPtr(true), Color: stringPtr(success)},
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: stringPtr(success)},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{Color: stringPtr(success)},
				Margin:         uintPtr(1),
			},
		},
		Strong: ansi.StylePrimitive{Bold: boolPtr(true)},
		Emph:   ansi.StylePrimitive{Italic: boolPtr(true), Color: stringPtr(badge)},
		HorizontalRule: ansi.StylePrimitive{
			Color:  stringPtr(border),
			Format: "\n────────────────────────────────────────\n",
		},
		Item:        ansi.StylePrimitive{BlockPrefix: "• "},
		Enumeration: ansi.StylePrimitive{BlockPrefix: ". "},
		Link: ansi.StylePrimitive{
			Color:     stringPtr(accent),
			Underline: boolPtr(true),
		},
		LinkText: ansi.StylePrimitive{
			Color: stringPtr(accent),
			Bold:  boolPtr(true),
		},
	}
}

// containsMarkdown reports whether content uses any markdown syntax worth rendering
func containsMarkdown(content string) bool {
	patterns := []string{
		"```",
		"**",
		"__",
		"# ",
		"1. ",
		"- ",
		"> ",
		"---",
		"`",
	}

	for _, pattern := range patterns {
		if strings.Contains(content, pattern) {
			return true
		}
	}

	return strings.Contains(content, "](") && strings.Contains(content, "[")
}

func stringPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func uintPtr(u uint) *uint {
	return &u
}
