package components

import (
	"testing"

	assert "github.com/stretchr/testify/assert"

	keys "github.com/inference-gateway/osint-toolkit/internal/ui/keys"
)

func TestHeader_Render(t *testing.T) {
	h := NewHeader(newTestStyleProvider())
	h.SetWidth(60)

	out := h.Render()
	assert.Contains(t, out, AppTitle)
	assert.Contains(t, out, "A curated list")
}

func TestHelpBar_Render(t *testing.T) {
	hb := NewHelpBar()
	assert.Empty(t, hb.Render())

	hb.SetKeyMap(keys.NewCardKeyMap())
	hb.SetWidth(200)
	short := hb.Render()
	assert.Contains(t, short, "run")
	assert.NotContains(t, short, "scroll up")

	hb.ToggleFullHelp()
	assert.True(t, hb.IsShowingAll())
	assert.Contains(t, hb.Render(), "scroll up")
}
