package services

import (
	"fmt"
	"strings"

	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
)

const promptPreamble = `You are an expert cybersecurity professional simulating the OSINT command-line tool %q.`

const noCommentary = `Do not provide any explanations, apologies, or introductory text like "Here is the simulated output:".`

// PromptBuilder turns a tool and its input into a generation request.
// The branch is chosen by the tool's execution profile only.
type PromptBuilder struct {
	files FileReader
}

// NewPromptBuilder creates a prompt builder reading attachments through files
func NewPromptBuilder(files FileReader) *PromptBuilder {
	return &PromptBuilder{files: files}
}

// CanBuild reports whether a request would be dispatched for the pair,
// without touching the filesystem
func (b *PromptBuilder) CanBuild(tool domain.ToolRecord, input domain.Input) bool {
	switch in := input.(type) {
	case domain.FileInput:
		if in.Path == "" || !tool.AcceptsFiles() {
			return false
		}
		return tool.Profile == domain.ProfileImageAnalysis || tool.Profile == domain.ProfileDocumentCrawl
	case domain.TextInput:
		return in.Value != "" && tool.InputType != domain.InputFile && tool.CommandTemplate != ""
	default:
		return false
	}
}

// Build assembles the request, reading any attached file. It returns
// domain.ErrNothingToDispatch when no branch applies.
func (b *PromptBuilder) Build(tool domain.ToolRecord, input domain.Input) (domain.GenerationRequest, error) {
	if !b.CanBuild(tool, input) {
		return domain.GenerationRequest{}, domain.ErrNothingToDispatch
	}

	switch in := input.(type) {
	case domain.FileInput:
		if tool.Profile == domain.ProfileImageAnalysis {
			return b.buildImageAnalysis(tool, in)
		}
		return b.buildDocumentCrawl(tool, in)
	case domain.TextInput:
		return domain.GenerationRequest{Prompt: commandPrompt(tool, tool.ApplyTemplate(in.Value))}, nil
	}

	return domain.GenerationRequest{}, domain.ErrNothingToDispatch
}

func (b *PromptBuilder) buildImageAnalysis(tool domain.ToolRecord, file domain.FileInput) (domain.GenerationRequest, error) {
	data, err := b.files.ReadInline(file.Path)
	if err != nil {
		return domain.GenerationRequest{}, fmt.Errorf("failed to read image %s: %w", file.Name, err)
	}

	command := tool.ApplyTemplate(file.Name)
	if command == "" {
		command = strings.ToLower(tool.Name) + " " + file.Name
	}

	return domain.GenerationRequest{
		Prompt:     imageAnalysisPrompt(tool, command),
		Attachment: data,
	}, nil
}

func (b *PromptBuilder) buildDocumentCrawl(tool domain.ToolRecord, file domain.FileInput) (domain.GenerationRequest, error) {
	content, err := b.files.ReadText(file.Path)
	if err != nil {
		return domain.GenerationRequest{}, fmt.Errorf("failed to read document %s: %w", file.Name, err)
	}

	return domain.GenerationRequest{Prompt: documentCrawlPrompt(tool, file.Name, content)}, nil
}

func commandPrompt(tool domain.ToolRecord, command string) string {
	lines := []string{
		fmt.Sprintf(promptPreamble, tool.Name),
		"Your output must be realistic, mimicking the exact format the real tool would produce.",
		noCommentary,
		fmt.Sprintf(`Provide only the raw, simulated terminal output for the command: "$ %s".`, command),
		"The data should look authentic but be completely fictional.",
	}
	return strings.Join(lines, "\n")
}

func imageAnalysisPrompt(tool domain.ToolRecord, command string) string {
	lines := []string{
		fmt.Sprintf(promptPreamble, tool.Name),
		"Your output must be realistic, mimicking the exact format the real tool would produce for the provided image, including fields like Camera Model Name, Date/Time Original, GPS Latitude, GPS Longitude, Image Size, etc.",
		noCommentary,
		fmt.Sprintf(`Provide only the raw, simulated terminal output as if you ran "%s".`, command),
		"The data should be plausible for the image provided but can be fictional.",
	}
	return strings.Join(lines, " ")
}

func documentCrawlPrompt(tool domain.ToolRecord, fileName, content string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(promptPreamble, tool.Name))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf(`The user has uploaded a file named "%s". Your task is to "crawl" this file's content and extract information like URLs (internal and external), emails, and any other data %s would typically find.`, fileName, tool.Name))
	sb.WriteString("\n")
	sb.WriteString(`Your output must be realistic, mimicking the exact format the real tool would produce, often organized into sections like "URLs", "Emails", etc.`)
	sb.WriteString("\n")
	sb.WriteString(noCommentary)
	sb.WriteString("\n")
	sb.WriteString("Provide only the raw, simulated terminal output.\n")
	sb.WriteString("The data should look authentic and be based *only* on the provided content below.\n\n")
	sb.WriteString("--- CONTENT START ---\n")
	sb.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("--- CONTENT END ---\n")
	return sb.String()
}
