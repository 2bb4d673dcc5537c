package domain

import (
	"strings"
)

// InputPlaceholder is the token a command template substitutes with user input
const InputPlaceholder = "{INPUT}"

// InputType selects which input widget a tool card renders
type InputType string

const (
	InputNone InputType = "none"
	InputText InputType = "text"
	InputFile InputType = "file"
)

// ExecutionProfile selects how a tool run is turned into a generation request.
// It is fixed in the catalog data rather than derived from the tool name.
type ExecutionProfile string

const (
	// ProfileTemplate substitutes text input into the command template
	ProfileTemplate ExecutionProfile = "template"
	// ProfileImageAnalysis sends an attached file inline with a fixed instruction
	ProfileImageAnalysis ExecutionProfile = "image_analysis"
	// ProfileDocumentCrawl embeds an attached document's text in the prompt
	ProfileDocumentCrawl ExecutionProfile = "document_crawl"
)

// ToolRecord describes one catalog entry. Records are read-only once loaded.
type ToolRecord struct {
	ID                 string           `yaml:"id" json:"id"`
	Name               string           `yaml:"name" json:"name"`
	Category           string           `yaml:"category" json:"category"`
	Description        string           `yaml:"description" json:"description"`
	InputType          InputType        `yaml:"input_type,omitempty" json:"input_type,omitempty"`
	Profile            ExecutionProfile `yaml:"profile,omitempty" json:"profile,omitempty"`
	CommandTemplate    string           `yaml:"command_template,omitempty" json:"command_template,omitempty"`
	CommandPlaceholder string           `yaml:"command_placeholder,omitempty" json:"command_placeholder,omitempty"`
	AllowFileUpload    bool             `yaml:"allow_file_upload,omitempty" json:"allow_file_upload,omitempty"`
	Accept             string           `yaml:"accept,omitempty" json:"accept,omitempty"`
	URL                string           `yaml:"url,omitempty" json:"url,omitempty"`
}

// IsRunnable reports whether the card shows a simulate form
func (t ToolRecord) IsRunnable() bool {
	return (t.InputType != "" && t.InputType != InputNone) || t.CommandTemplate != ""
}

// AcceptsFiles reports whether the card offers a file picker
func (t ToolRecord) AcceptsFiles() bool {
	return t.InputType == InputFile || t.AllowFileUpload
}

// ApplyTemplate substitutes the first placeholder in the command template.
// A record without a template yields an empty command.
func (t ToolRecord) ApplyTemplate(input string) string {
	if t.CommandTemplate == "" {
		return ""
	}
	return strings.Replace(t.CommandTemplate, InputPlaceholder, input, 1)
}

// CommandParts splits the template around the placeholder for display
func (t ToolRecord) CommandParts() (prefix, suffix string) {
	if t.CommandTemplate == "" {
		return "", ""
	}
	prefix, suffix, _ = strings.Cut(t.CommandTemplate, InputPlaceholder)
	return prefix, suffix
}
