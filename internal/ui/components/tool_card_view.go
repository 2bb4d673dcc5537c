package components

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	key "github.com/charmbracelet/bubbles/key"
	spinner "github.com/charmbracelet/bubbles/spinner"
	textinput "github.com/charmbracelet/bubbles/textinput"
	viewport "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	wordwrap "github.com/muesli/reflow/wordwrap"
	wrap "github.com/muesli/reflow/wrap"

	clipboard "github.com/inference-gateway/osint-toolkit/internal/clipboard"
	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
	logger "github.com/inference-gateway/osint-toolkit/internal/logger"
	keys "github.com/inference-gateway/osint-toolkit/internal/ui/keys"
	styles "github.com/inference-gateway/osint-toolkit/internal/ui/styles"
	icons "github.com/inference-gateway/osint-toolkit/internal/ui/styles/icons"
	utils "github.com/inference-gateway/osint-toolkit/internal/utils"
)

// ToolCardView is the detail view of one tool. It owns a single card
// session and dispatches at most one run at a time.
type ToolCardView struct {
	ctx           context.Context
	session       *domain.CardSession
	runner        domain.ToolRunner
	styleProvider *styles.Provider
	keys          keys.CardKeyMap

	input   textinput.Model
	spinner spinner.Model
	output  viewport.Model
	picker  *FilePickerView
	lastDir string
	status  string

	width  int
	height int

	writeClipboard func(string)
	openURL        func(string) error
}

func NewToolCardView(ctx context.Context, tool domain.ToolRecord, runner domain.ToolRunner, styleProvider *styles.Provider) *ToolCardView {
	prefix, _ := tool.CommandParts()

	input := textinput.New()
	input.Prompt = "$ " + prefix
	input.Placeholder = tool.CommandPlaceholder

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleProvider.GetSpinnerStyle()

	c := &ToolCardView{
		ctx:            ctx,
		session:        domain.NewCardSession(tool),
		runner:         runner,
		styleProvider:  styleProvider,
		keys:           keys.NewCardKeyMap(),
		input:          input,
		spinner:        s,
		output:         viewport.New(76, 8),
		width:          80,
		height:         24,
		writeClipboard: clipboard.WriteText,
		openURL:        utils.OpenBrowser,
	}

	if c.acceptsText() {
		c.input.Focus()
	}
	return c
}

// SetClipboardWriter replaces the clipboard sink (for testing)
func (c *ToolCardView) SetClipboardWriter(fn func(string)) {
	c.writeClipboard = fn
}

// SetURLOpener replaces the browser launcher (for testing)
func (c *ToolCardView) SetURLOpener(fn func(string) error) {
	c.openURL = fn
}

func (c *ToolCardView) Session() *domain.CardSession {
	return c.session
}

func (c *ToolCardView) KeyMap() keys.CardKeyMap {
	return c.keys
}

func (c *ToolCardView) IsPickingFile() bool {
	return c.picker != nil
}

func (c *ToolCardView) SetSize(width, height int) {
	c.width = width
	c.height = height

	inner := c.innerWidth()
	c.input.Width = max(inner-c.styleProvider.GetWidth(c.input.Prompt)-14, 10)
	c.output.Width = max(inner-4, 10)
	c.output.Height = max(height-22, 5)
	c.refreshOutput()
}

func (c *ToolCardView) innerWidth() int {
	return max(c.width-8, 20)
}

func (c *ToolCardView) acceptsText() bool {
	tool := c.session.Tool()
	return tool.IsRunnable() && tool.InputType != domain.InputFile
}

func (c *ToolCardView) Init() tea.Cmd {
	if c.acceptsText() {
		return textinput.Blink
	}
	return nil
}

func (c *ToolCardView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case domain.ToolRunCompletedEvent:
		if msg.SessionID != c.session.ID() {
			return nil
		}
		c.session.Complete(msg.Output)
		c.output.GotoTop()
		c.refreshOutput()
		return c.focusInput()

	case domain.ToolRunFailedEvent:
		if msg.SessionID != c.session.ID() {
			return nil
		}
		logger.Debug("tool run failed", "session_id", msg.SessionID, "tool_id", msg.ToolID, "error", msg.Err)
		c.session.Fail(domain.RequestFailureMessage)
		c.refreshOutput()
		return c.focusInput()

	case spinner.TickMsg:
		if !c.session.IsLoading() {
			return nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return cmd

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	if c.picker != nil {
		return c.picker.Update(msg)
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

func (c *ToolCardView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if c.picker != nil {
		return c.handlePickerKey(msg)
	}

	c.status = ""
	tool := c.session.Tool()

	switch {
	case key.Matches(msg, c.keys.Back):
		sessionID := c.session.ID()
		return func() tea.Msg {
			return domain.CardClosedEvent{SessionID: sessionID}
		}
	case key.Matches(msg, c.keys.Copy):
		return c.copyResult()
	case key.Matches(msg, c.keys.Visit):
		return c.visitSite()
	case key.Matches(msg, c.keys.ScrollUp), key.Matches(msg, c.keys.ScrollDown):
		var cmd tea.Cmd
		c.output, cmd = c.output.Update(msg)
		return cmd
	}

	if !tool.IsRunnable() || c.session.IsLoading() {
		return nil
	}

	switch {
	case key.Matches(msg, c.keys.Run):
		if tool.InputType == domain.InputFile && !c.session.HasInput() {
			return c.openPicker()
		}
		return c.submit()
	case key.Matches(msg, c.keys.Attach):
		if tool.AcceptsFiles() {
			return c.openPicker()
		}
		return nil
	case key.Matches(msg, c.keys.ClearFile):
		c.session.ClearFile()
		return nil
	}

	if !c.acceptsText() {
		return nil
	}

	before := c.input.Value()
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if after := c.input.Value(); after != before {
		c.session.SetText(after)
	}
	return cmd
}

func (c *ToolCardView) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	cmd := c.picker.Update(msg)
	if !c.picker.IsDone() {
		return cmd
	}

	if c.picker.IsCancelled() {
		logger.Debug("file selection cancelled", "session_id", c.session.ID(), "tool_id", c.session.Tool().ID)
	}
	if c.picker.IsSelected() {
		path := c.picker.SelectedPath()
		c.lastDir = filepath.Dir(path)
		c.session.SelectFile(domain.NewFileInput(path))
		c.input.SetValue("")
	}
	c.picker = nil

	return tea.Batch(cmd, c.focusInput())
}

func (c *ToolCardView) openPicker() tea.Cmd {
	c.input.Blur()
	c.picker = NewFilePickerView(c.styleProvider, c.session.Tool().Accept, c.lastDir, c.innerWidth(), max(c.height-12, 6))
	return c.picker.Init()
}

func (c *ToolCardView) focusInput() tea.Cmd {
	if !c.acceptsText() {
		return nil
	}
	return c.input.Focus()
}

// submit dispatches one run when the session has input, is idle, and the
// runner has a plan for the pair
func (c *ToolCardView) submit() tea.Cmd {
	if !c.session.CanSubmit() {
		return nil
	}

	tool := c.session.Tool()
	input := c.session.Input()
	if !c.runner.CanRun(tool, input) {
		return nil
	}
	if !c.session.Begin() {
		return nil
	}

	c.input.Blur()
	c.refreshOutput()

	ctx := c.ctx
	runner := c.runner
	sessionID := c.session.ID()

	run := func() tea.Msg {
		output, err := runner.Run(ctx, tool, input)
		if err != nil {
			return domain.ToolRunFailedEvent{SessionID: sessionID, ToolID: tool.ID, Err: err}
		}
		return domain.ToolRunCompletedEvent{SessionID: sessionID, ToolID: tool.ID, Output: output}
	}

	return tea.Batch(c.spinner.Tick, run)
}

func (c *ToolCardView) copyResult() tea.Cmd {
	result := c.session.Result()
	if result == "" {
		return nil
	}

	c.status = icons.CheckMark + " Copied to clipboard"
	write := c.writeClipboard
	return func() tea.Msg {
		write(result)
		return nil
	}
}

func (c *ToolCardView) visitSite() tea.Cmd {
	url := c.session.Tool().URL
	if url == "" {
		return nil
	}

	c.status = "Opening " + url
	open := c.openURL
	return func() tea.Msg {
		if err := open(url); err != nil {
			return domain.ShowErrorEvent{Error: fmt.Sprintf("Could not open %s: %v", url, err)}
		}
		return nil
	}
}

func (c *ToolCardView) refreshOutput() {
	result := c.session.Result()
	if result == "" {
		c.output.SetContent("")
		return
	}
	c.output.SetContent(wrap.String(wordwrap.String(result, c.output.Width), c.output.Width))
}

func (c *ToolCardView) View() string {
	tool := c.session.Tool()
	sp := c.styleProvider
	inner := c.innerWidth()

	var b strings.Builder
	b.WriteString(sp.RenderBadge(tool.Category))
	b.WriteString("\n")
	b.WriteString(sp.RenderCardTitle(tool.Name))
	b.WriteString("\n")
	b.WriteString(sp.RenderDimText(wordwrap.String(tool.Description, inner)))
	b.WriteString("\n")

	if c.picker != nil {
		b.WriteString("\n")
		b.WriteString(c.picker.View())
	} else if tool.IsRunnable() {
		b.WriteString("\n")
		c.renderForm(&b)
	}

	if tool.URL != "" {
		b.WriteString("\n\n")
		b.WriteString(sp.RenderDimText("Visit Website " + icons.Link + " "))
		b.WriteString(sp.RenderLinkText(tool.URL))
	}

	if c.status != "" {
		b.WriteString("\n")
		b.WriteString(sp.RenderStatusLine(c.status))
	}

	return sp.RenderCard(b.String(), c.width-2)
}

func (c *ToolCardView) renderForm(b *strings.Builder) {
	sp := c.styleProvider
	tool := c.session.Tool()

	b.WriteString(sp.RenderSectionLabel("Simulate Command"))
	b.WriteString("\n")
	b.WriteString(sp.JoinHorizontal(c.renderField(), " ", c.renderRunButton()))

	if file, ok := c.session.File(); ok && tool.AllowFileUpload {
		b.WriteString("\n")
		b.WriteString(sp.RenderDimText(icons.Paperclip + " Attached: "))
		b.WriteString(sp.RenderSuccessText(file.Name))
		b.WriteString(sp.RenderDimText("  (ctrl+x to clear)"))
	}

	if errText := c.session.ErrorText(); errText != "" {
		b.WriteString("\n")
		b.WriteString(sp.RenderErrorText(icons.CrossMark + " " + errText))
	}

	if c.session.Result() != "" {
		b.WriteString("\n\n")
		b.WriteString(sp.RenderSectionLabel("Simulated Output"))
		b.WriteString(sp.RenderDimText("  (ctrl+y to copy)"))
		b.WriteString("\n")
		b.WriteString(sp.RenderOutputPanel(c.output.View(), c.innerWidth()))
	}
}

func (c *ToolCardView) renderField() string {
	sp := c.styleProvider
	tool := c.session.Tool()
	fieldWidth := c.innerWidth() - 14

	if tool.InputType == domain.InputFile {
		label := sp.RenderInputPlaceholder("Choose a file... (enter to browse)")
		if file, ok := c.session.File(); ok {
			label = sp.RenderSuccessText(file.Name)
		}
		return sp.RenderInputField(label, fieldWidth, false)
	}

	_, suffix := tool.CommandParts()
	content := c.input.View()
	if suffix != "" {
		content += sp.RenderCommandAffix(suffix)
	}
	return sp.RenderInputField(content, fieldWidth, c.input.Focused())
}

func (c *ToolCardView) renderRunButton() string {
	if c.session.IsLoading() {
		return c.spinner.View() + " Running..."
	}
	return c.styleProvider.RenderButton("Run", c.session.CanSubmit())
}
