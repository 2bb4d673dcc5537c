package components

import (
	styles "github.com/inference-gateway/osint-toolkit/internal/ui/styles"
	icons "github.com/inference-gateway/osint-toolkit/internal/ui/styles/icons"
)

// StatusView shows transient error messages in the shell
type StatusView struct {
	message       string
	width         int
	styleProvider *styles.Provider
}

func NewStatusView(styleProvider *styles.Provider) *StatusView {
	return &StatusView{
		styleProvider: styleProvider,
	}
}

func (sv *StatusView) ShowError(message string) {
	sv.message = message
}

func (sv *StatusView) ClearStatus() {
	sv.message = ""
}

func (sv *StatusView) SetWidth(width int) {
	sv.width = width
}

func (sv *StatusView) Render() string {
	if sv.message == "" {
		return ""
	}
	return sv.styleProvider.RenderErrorText(icons.CrossMark + " " + sv.message)
}
