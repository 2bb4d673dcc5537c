package components

import (
	help "github.com/charmbracelet/bubbles/help"
)

// HelpBar displays keyboard shortcuts at the bottom of the screen
type HelpBar struct {
	help   help.Model
	keyMap help.KeyMap
}

func NewHelpBar() *HelpBar {
	h := help.New()
	h.Width = 80
	return &HelpBar{help: h}
}

func (hb *HelpBar) SetKeyMap(keyMap help.KeyMap) {
	hb.keyMap = keyMap
}

func (hb *HelpBar) SetWidth(width int) {
	hb.help.Width = width
}

// ToggleFullHelp switches between the one-line and the grouped help
func (hb *HelpBar) ToggleFullHelp() {
	hb.help.ShowAll = !hb.help.ShowAll
}

func (hb *HelpBar) IsShowingAll() bool {
	return hb.help.ShowAll
}

func (hb *HelpBar) Render() string {
	if hb.keyMap == nil {
		return ""
	}
	return hb.help.View(hb.keyMap)
}
