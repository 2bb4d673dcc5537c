package components

import (
	"fmt"
	"strings"
	"testing"

	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"

	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
)

func makeTools(n int) []domain.ToolRecord {
	tools := make([]domain.ToolRecord, n)
	for i := range tools {
		tools[i] = domain.ToolRecord{
			ID:          fmt.Sprintf("tool-%d", i),
			Name:        fmt.Sprintf("Tool %d", i),
			Category:    "Test",
			Description: "A test tool",
		}
	}
	return tools
}

func selectedID(v *ToolListView) string {
	tool, _ := v.Selected()
	return tool.ID
}

func TestToolListView_EmptyMessage(t *testing.T) {
	v := NewToolListView(newTestStyleProvider())
	v.SetTools(nil, 23)

	assert.Contains(t, v.Render(), EmptyListMessage)
	_, ok := v.Selected()
	assert.False(t, ok)
}

func TestToolListView_Navigation(t *testing.T) {
	v := NewToolListView(newTestStyleProvider())
	v.SetSize(80, 10)
	v.SetTools(makeTools(10), 10)

	v.MoveUp()
	assert.Equal(t, "tool-0", selectedID(v))

	v.MoveDown()
	v.MoveDown()
	assert.Equal(t, "tool-2", selectedID(v))

	v.PageDown()
	assert.Equal(t, "tool-5", selectedID(v))

	for range 20 {
		v.MoveDown()
	}
	assert.Equal(t, "tool-9", selectedID(v))

	v.PageUp()
	assert.Equal(t, "tool-6", selectedID(v))
}

func TestToolListView_KeepsSelectionAcrossFilter(t *testing.T) {
	v := NewToolListView(newTestStyleProvider())
	tools := makeTools(5)
	v.SetTools(tools, 5)
	v.MoveDown()
	v.MoveDown()

	v.SetTools([]domain.ToolRecord{tools[0], tools[2], tools[4]}, 5)
	selected, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "tool-2", selected.ID)

	v.SetTools([]domain.ToolRecord{tools[3]}, 5)
	selected, ok = v.Selected()
	require.True(t, ok)
	assert.Equal(t, "tool-3", selected.ID)
}

func TestToolListView_RenderWindowFollowsCursor(t *testing.T) {
	v := NewToolListView(newTestStyleProvider())
	v.SetSize(80, 10)
	v.SetTools(makeTools(10), 23)

	out := v.Render()
	assert.Contains(t, out, "Showing 10 of 23 tools")
	assert.Contains(t, out, "Tool 0")
	assert.NotContains(t, out, "Tool 9")

	for range 9 {
		v.MoveDown()
	}
	out = v.Render()
	assert.Contains(t, out, "▶ Tool 9")
	assert.NotContains(t, out, "Tool 0")
}

func TestToolListView_TruncatesLongDescriptions(t *testing.T) {
	v := NewToolListView(newTestStyleProvider())
	v.SetSize(30, 10)

	tool := makeTools(1)[0]
	tool.Description = strings.Repeat("word ", 40)
	v.SetTools([]domain.ToolRecord{tool}, 1)

	for _, line := range strings.Split(v.Render(), "\n") {
		assert.LessOrEqual(t, v.styleProvider.GetWidth(line), 30)
	}
}
