package components

import (
	"fmt"
	"strings"

	truncate "github.com/muesli/reflow/truncate"

	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
	styles "github.com/inference-gateway/osint-toolkit/internal/ui/styles"
)

const (
	EmptyListMessage = "No tools found matching your search."

	// rows are two lines plus a blank spacer
	toolRowHeight = 3
)

// ToolListView renders the visible subset of the catalog with a cursor
type ToolListView struct {
	tools         []domain.ToolRecord
	total         int
	selected      int
	offset        int
	width         int
	height        int
	styleProvider *styles.Provider
}

func NewToolListView(styleProvider *styles.Provider) *ToolListView {
	return &ToolListView{
		width:         80,
		height:        20,
		styleProvider: styleProvider,
	}
}

// SetTools replaces the visible tools. The cursor stays on the same tool
// when it is still visible and resets to the top otherwise.
func (v *ToolListView) SetTools(tools []domain.ToolRecord, total int) {
	var selectedID string
	if tool, ok := v.Selected(); ok {
		selectedID = tool.ID
	}

	v.tools = tools
	v.total = total
	v.selected = 0
	v.offset = 0

	for i, tool := range tools {
		if tool.ID == selectedID {
			v.selected = i
			break
		}
	}
	v.ensureVisible()
}

func (v *ToolListView) Tools() []domain.ToolRecord {
	return v.tools
}

// Selected returns the tool under the cursor
func (v *ToolListView) Selected() (domain.ToolRecord, bool) {
	if v.selected < 0 || v.selected >= len(v.tools) {
		return domain.ToolRecord{}, false
	}
	return v.tools[v.selected], true
}

func (v *ToolListView) MoveUp() {
	if v.selected > 0 {
		v.selected--
	}
	v.ensureVisible()
}

func (v *ToolListView) MoveDown() {
	if v.selected < len(v.tools)-1 {
		v.selected++
	}
	v.ensureVisible()
}

func (v *ToolListView) PageUp() {
	v.selected = max(v.selected-v.visibleRows(), 0)
	v.ensureVisible()
}

func (v *ToolListView) PageDown() {
	v.selected = max(min(v.selected+v.visibleRows(), len(v.tools)-1), 0)
	v.ensureVisible()
}

func (v *ToolListView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.ensureVisible()
}

func (v *ToolListView) visibleRows() int {
	return max((v.height-1)/toolRowHeight, 1)
}

func (v *ToolListView) ensureVisible() {
	rows := v.visibleRows()
	if v.selected < v.offset {
		v.offset = v.selected
	}
	if v.selected >= v.offset+rows {
		v.offset = v.selected - rows + 1
	}
	v.offset = max(min(v.offset, len(v.tools)-rows), 0)
}

func (v *ToolListView) Render() string {
	if len(v.tools) == 0 {
		return "\n" + v.styleProvider.RenderFooter(EmptyListMessage, v.width) + "\n"
	}

	descWidth := uint(max(v.width-6, 10))
	end := min(v.offset+v.visibleRows(), len(v.tools))

	var b strings.Builder
	b.WriteString(v.styleProvider.RenderDimText(fmt.Sprintf("Showing %d of %d tools", len(v.tools), v.total)))
	b.WriteString("\n")

	for i := v.offset; i < end; i++ {
		tool := v.tools[i]
		desc := truncate.StringWithTail(tool.Description, descWidth, "…")
		b.WriteString(v.styleProvider.RenderToolRow(tool.Name, tool.Category, desc, i == v.selected))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}

	return b.String()
}
