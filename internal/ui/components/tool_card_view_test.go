package components

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"

	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
	logger "github.com/inference-gateway/osint-toolkit/internal/logger"
	mocks "github.com/inference-gateway/osint-toolkit/tests/mocks/domain"
)

func newTestCard(tool domain.ToolRecord, runner domain.ToolRunner) *ToolCardView {
	card := NewToolCardView(logger.NopContext(), tool, runner, newTestStyleProvider())
	card.SetSize(100, 40)
	return card
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if typed, ok := msg.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

func TestToolCardView_TypingSetsTextInput(t *testing.T) {
	card := newTestCard(testWhois, &mocks.FakeToolRunner{})

	card.Update(typeText("example.com"))

	text, ok := card.Session().Input().(domain.TextInput)
	require.True(t, ok)
	assert.Equal(t, "example.com", text.Value)
	assert.Equal(t, domain.CardIdle, card.Session().State())
}

func TestToolCardView_KeepsLongInput(t *testing.T) {
	card := newTestCard(testWhois, &mocks.FakeToolRunner{})
	long := strings.Repeat("sub.", 200) + "example.com"

	card.Update(typeText(long))

	text, ok := card.Session().Input().(domain.TextInput)
	require.True(t, ok)
	assert.Equal(t, long, text.Value)
}

func TestToolCardView_SubmitAndComplete(t *testing.T) {
	runner := &mocks.FakeToolRunner{}
	runner.CanRunReturns(true)
	runner.RunReturns("Domain Name: EXAMPLE.COM", nil)
	card := newTestCard(testWhois, runner)

	card.Update(typeText("example.com"))
	cmd := card.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, card.Session().IsLoading())
	assert.Contains(t, card.View(), "Running...")

	completed, ok := findMsg[domain.ToolRunCompletedEvent](collectMsgs(cmd))
	require.True(t, ok)
	assert.Equal(t, card.Session().ID(), completed.SessionID)
	assert.Equal(t, "whois", completed.ToolID)

	_, tool, input := runner.RunArgsForCall(0)
	assert.Equal(t, "whois", tool.ID)
	assert.Equal(t, domain.TextInput{Value: "example.com"}, input)

	card.Update(completed)
	assert.False(t, card.Session().IsLoading())
	assert.Equal(t, "Domain Name: EXAMPLE.COM", card.Session().Result())
	assert.Contains(t, card.View(), "Domain Name: EXAMPLE.COM")
}

func TestToolCardView_FailureShowsGenericMessage(t *testing.T) {
	runner := &mocks.FakeToolRunner{}
	runner.CanRunReturns(true)
	runner.RunReturns("", &domain.RequestFailure{ToolID: "whois", Err: errors.New("403")})
	card := newTestCard(testWhois, runner)

	card.Update(typeText("example.com"))
	cmd := card.Update(tea.KeyMsg{Type: tea.KeyEnter})

	failed, ok := findMsg[domain.ToolRunFailedEvent](collectMsgs(cmd))
	require.True(t, ok)

	card.Update(failed)
	assert.Equal(t, domain.CardFailed, card.Session().State())
	assert.Equal(t, domain.RequestFailureMessage, card.Session().ErrorText())
	assert.Empty(t, card.Session().Result())
	assert.NotContains(t, card.View(), "403")
}

func TestToolCardView_NoPlanDispatchesNothing(t *testing.T) {
	runner := &mocks.FakeToolRunner{}
	runner.CanRunReturns(false)
	card := newTestCard(testWhois, runner)

	card.Update(typeText("example.com"))
	cmd := card.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, card.Session().IsLoading())
	assert.Equal(t, 0, runner.RunCallCount())
}

func TestToolCardView_SubmitWithoutInputIsIgnored(t *testing.T) {
	runner := &mocks.FakeToolRunner{}
	runner.CanRunReturns(true)
	card := newTestCard(testWhois, runner)

	cmd := card.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, runner.CanRunCallCount())
	assert.Equal(t, domain.CardIdle, card.Session().State())
}

func TestToolCardView_InputFrozenWhileLoading(t *testing.T) {
	runner := &mocks.FakeToolRunner{}
	runner.CanRunReturns(true)
	card := newTestCard(testWhois, runner)

	card.Update(typeText("example.com"))
	require.NotNil(t, card.Update(tea.KeyMsg{Type: tea.KeyEnter}))

	card.Update(typeText("zzz"))
	assert.Equal(t, "example.com", card.Session().Text())

	assert.Nil(t, card.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Nil(t, card.Update(tea.KeyMsg{Type: tea.KeyCtrlO}))
	assert.False(t, card.IsPickingFile())
}

func TestToolCardView_IgnoresOtherSessions(t *testing.T) {
	card := newTestCard(testWhois, &mocks.FakeToolRunner{})

	card.Update(domain.ToolRunCompletedEvent{SessionID: "stale", Output: "old"})
	card.Update(domain.ToolRunFailedEvent{SessionID: "stale", Err: errors.New("x")})

	assert.Empty(t, card.Session().Result())
	assert.Empty(t, card.Session().ErrorText())
	assert.Equal(t, domain.CardIdle, card.Session().State())
}

func TestToolCardView_BackEmitsCardClosed(t *testing.T) {
	card := newTestCard(testWhois, &mocks.FakeToolRunner{})

	msgs := collectMsgs(card.Update(tea.KeyMsg{Type: tea.KeyEsc}))

	closed, ok := findMsg[domain.CardClosedEvent](msgs)
	require.True(t, ok)
	assert.Equal(t, card.Session().ID(), closed.SessionID)
}

func TestToolCardView_CopyResult(t *testing.T) {
	runner := &mocks.FakeToolRunner{}
	runner.CanRunReturns(true)
	runner.RunReturns("output text", nil)
	card := newTestCard(testWhois, runner)

	var copied []string
	card.SetClipboardWriter(func(text string) { copied = append(copied, text) })

	assert.Nil(t, card.Update(tea.KeyMsg{Type: tea.KeyCtrlY}))

	card.Update(typeText("example.com"))
	completed, _ := findMsg[domain.ToolRunCompletedEvent](collectMsgs(card.Update(tea.KeyMsg{Type: tea.KeyEnter})))
	card.Update(completed)

	collectMsgs(card.Update(tea.KeyMsg{Type: tea.KeyCtrlY}))
	assert.Equal(t, []string{"output text"}, copied)
	assert.Contains(t, card.View(), "Copied to clipboard")
}

func TestToolCardView_VisitSite(t *testing.T) {
	card := newTestCard(testWhois, &mocks.FakeToolRunner{})

	var opened []string
	card.SetURLOpener(func(url string) error {
		opened = append(opened, url)
		return errors.New("no display")
	})

	msgs := collectMsgs(card.Update(tea.KeyMsg{Type: tea.KeyCtrlB}))
	assert.Equal(t, []string{"https://www.whois.com"}, opened)

	showErr, ok := findMsg[domain.ShowErrorEvent](msgs)
	require.True(t, ok)
	assert.Contains(t, showErr.Error, "no display")
}

func TestToolCardView_FilePickerLifecycle(t *testing.T) {
	card := newTestCard(testPhoton, &mocks.FakeToolRunner{})
	card.Update(typeText("https://example.com"))

	card.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	require.True(t, card.IsPickingFile())

	card.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, card.IsPickingFile())
	assert.Equal(t, "https://example.com", card.Session().Text(), "cancelling keeps the typed text")

	card.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	require.True(t, card.IsPickingFile())
	card.picker.selected = "/tmp/site/index.html"
	card.picker.done = true
	card.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, card.IsPickingFile())
	file, ok := card.Session().File()
	require.True(t, ok)
	assert.Equal(t, "index.html", file.Name)
	assert.Empty(t, card.Session().Text())
	assert.Contains(t, card.View(), "Attached: ")

	card.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.False(t, card.Session().HasInput())
}

func TestToolCardView_TypingReplacesAttachedFile(t *testing.T) {
	card := newTestCard(testPhoton, &mocks.FakeToolRunner{})
	card.Session().SelectFile(domain.NewFileInput("/tmp/a.html"))

	card.Update(typeText("x"))

	_, hasFile := card.Session().File()
	assert.False(t, hasFile)
	assert.Equal(t, "x", card.Session().Text())
}

func TestToolCardView_FileToolOpensPickerOnRun(t *testing.T) {
	card := newTestCard(testExif, &mocks.FakeToolRunner{})

	card.Update(typeText("ignored"))
	assert.False(t, card.Session().HasInput())

	card.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, card.IsPickingFile())
}

func TestToolCardView_NonRunnableTool(t *testing.T) {
	runner := &mocks.FakeToolRunner{}
	card := newTestCard(testMaltego, runner)

	assert.Nil(t, card.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.NotContains(t, card.View(), "SIMULATE COMMAND")
	assert.Contains(t, card.View(), "Maltego")
	assert.Equal(t, 0, runner.CanRunCallCount())
}
