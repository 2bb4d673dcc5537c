package components

import (
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	styles "github.com/inference-gateway/osint-toolkit/internal/ui/styles"
)

const SearchPlaceholder = "Search for a tool (e.g., 'Sherlock', 'Metadata')..."

// SearchBar is the free-text filter above the tool list
type SearchBar struct {
	input         textinput.Model
	styleProvider *styles.Provider
	width         int
}

func NewSearchBar(styleProvider *styles.Provider) *SearchBar {
	input := textinput.New()
	input.Placeholder = SearchPlaceholder
	input.Prompt = "⌕ "
	input.Focus()

	return &SearchBar{
		input:         input,
		styleProvider: styleProvider,
		width:         80,
	}
}

func (sb *SearchBar) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards a message to the text input. It reports whether the
// query changed so the caller can refilter.
func (sb *SearchBar) Update(msg tea.Msg) (bool, tea.Cmd) {
	before := sb.input.Value()

	var cmd tea.Cmd
	sb.input, cmd = sb.input.Update(msg)

	return sb.input.Value() != before, cmd
}

func (sb *SearchBar) Value() string {
	return sb.input.Value()
}

func (sb *SearchBar) SetValue(value string) {
	sb.input.SetValue(value)
}

func (sb *SearchBar) Focus() tea.Cmd {
	return sb.input.Focus()
}

func (sb *SearchBar) Blur() {
	sb.input.Blur()
}

func (sb *SearchBar) Focused() bool {
	return sb.input.Focused()
}

func (sb *SearchBar) SetWidth(width int) {
	sb.width = width
	sb.input.Width = max(width-8, 10)
}

func (sb *SearchBar) Render() string {
	return sb.styleProvider.RenderInputField(sb.input.View(), sb.width-2, sb.input.Focused())
}
