package components

import (
	tea "github.com/charmbracelet/bubbletea"

	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
	styles "github.com/inference-gateway/osint-toolkit/internal/ui/styles"
)

func newTestStyleProvider() *styles.Provider {
	return styles.NewProvider(domain.NewThemeProvider())
}

func typeText(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

// collectMsgs runs a command, expanding batches, and returns every message
// produced. Only use it on commands that do not block.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}

	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, collectMsgs(c)...)
	}
	return msgs
}

var (
	testWhois = domain.ToolRecord{
		ID:                 "whois",
		Name:               "Whois",
		Category:           "Domain",
		Description:        "Query domain registration records.",
		InputType:          domain.InputText,
		Profile:            domain.ProfileTemplate,
		CommandTemplate:    "whois {INPUT}",
		CommandPlaceholder: "example.com",
		URL:                "https://www.whois.com",
	}
	testPhoton = domain.ToolRecord{
		ID:              "photon",
		Name:            "Photon",
		Category:        "Web Crawling",
		Description:     "Incredibly fast crawler designed for OSINT.",
		InputType:       domain.InputText,
		Profile:         domain.ProfileDocumentCrawl,
		CommandTemplate: "photon -u {INPUT}",
		AllowFileUpload: true,
		Accept:          ".html,.htm",
	}
	testExif = domain.ToolRecord{
		ID:              "exiftool",
		Name:            "ExifTool",
		Category:        "Metadata",
		Description:     "Read image metadata.",
		InputType:       domain.InputFile,
		Profile:         domain.ProfileImageAnalysis,
		CommandTemplate: "exiftool {INPUT}",
		Accept:          "image/*",
	}
	testMaltego = domain.ToolRecord{
		ID:          "maltego",
		Name:        "Maltego",
		Category:    "Link Analysis",
		Description: "Graphical link analysis.",
		InputType:   domain.InputNone,
		Profile:     domain.ProfileTemplate,
	}
)
