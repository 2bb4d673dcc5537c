package components

import (
	wordwrap "github.com/muesli/reflow/wordwrap"

	styles "github.com/inference-gateway/osint-toolkit/internal/ui/styles"
)

const (
	AppTitle   = "OSINT & RED TEAM TOOLKIT"
	AppTagline = "A curated list of powerful tools for Open Source Intelligence, Social Engineering, and Red Team operations. Find, understand, and protect against digital threats."
)

// Header renders the application title block
type Header struct {
	styleProvider *styles.Provider
	width         int
}

func NewHeader(styleProvider *styles.Provider) *Header {
	return &Header{
		styleProvider: styleProvider,
		width:         80,
	}
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) Render() string {
	tagline := AppTagline
	if h.width > 10 {
		tagline = wordwrap.String(AppTagline, h.width-4)
	}

	return h.styleProvider.JoinVertical(
		h.styleProvider.RenderTitle(AppTitle, h.width),
		h.styleProvider.RenderSubtitle(tagline, h.width),
	)
}
