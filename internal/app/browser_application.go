package app

import (
	"context"

	key "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	catalog "github.com/inference-gateway/osint-toolkit/internal/catalog"
	container "github.com/inference-gateway/osint-toolkit/internal/container"
	domain "github.com/inference-gateway/osint-toolkit/internal/domain"
	logger "github.com/inference-gateway/osint-toolkit/internal/logger"
	components "github.com/inference-gateway/osint-toolkit/internal/ui/components"
	keys "github.com/inference-gateway/osint-toolkit/internal/ui/keys"
	styles "github.com/inference-gateway/osint-toolkit/internal/ui/styles"
)

// FooterText is shown below every view
const FooterText = "OSINT & Red Team Toolkit | For educational purposes only."

// ViewState represents the screen currently owning the keyboard
type ViewState int

const (
	ViewList ViewState = iota
	ViewCard
)

// String returns a human-readable representation of the view state
func (v ViewState) String() string {
	switch v {
	case ViewList:
		return "List"
	case ViewCard:
		return "Card"
	default:
		return "Unknown"
	}
}

// BrowserApplication is the root bubbletea model: a searchable tool list
// and, when a tool is opened, its card
type BrowserApplication struct {
	ctx      context.Context
	services *container.ServiceContainer
	catalog  *catalog.Catalog

	styleProvider *styles.Provider
	listKeys      keys.ListKeyMap

	header  *components.Header
	search  *components.SearchBar
	list    *components.ToolListView
	card    *components.ToolCardView
	status  *components.StatusView
	helpBar *components.HelpBar

	currentView ViewState
	width       int
	height      int
}

// NewBrowserApplication creates the browser with every tool visible
func NewBrowserApplication(ctx context.Context, services *container.ServiceContainer) *BrowserApplication {
	sp := services.GetStyleProvider()

	app := &BrowserApplication{
		ctx:           ctx,
		services:      services,
		catalog:       services.GetCatalog(),
		styleProvider: sp,
		listKeys:      keys.NewListKeyMap(),
		header:        components.NewHeader(sp),
		search:        components.NewSearchBar(sp),
		list:          components.NewToolListView(sp),
		status:        components.NewStatusView(sp),
		helpBar:       components.NewHelpBar(),
		currentView:   ViewList,
		width:         80,
		height:        24,
	}

	app.helpBar.SetKeyMap(app.listKeys)
	app.refilter()
	app.layout()

	return app
}

// Init starts the search cursor blinking
func (app *BrowserApplication) Init() tea.Cmd {
	return app.search.Init()
}

func (app *BrowserApplication) CurrentView() ViewState {
	return app.currentView
}

// Update routes messages to the list or the open card
func (app *BrowserApplication) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height
		app.layout()
		return app, app.forward(msg)

	case tea.KeyMsg:
		return app, app.handleKey(msg)

	case domain.CardClosedEvent:
		if app.card != nil && app.card.Session().ID() == msg.SessionID {
			return app, app.closeCard()
		}
		return app, nil

	case domain.ToolRunCompletedEvent:
		return app, app.routeRunEvent(msg.SessionID, msg)

	case domain.ToolRunFailedEvent:
		return app, app.routeRunEvent(msg.SessionID, msg)

	case domain.ShowErrorEvent:
		app.status.ShowError(msg.Error)
		return app, nil
	}

	return app, app.forward(msg)
}

func (app *BrowserApplication) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, app.listKeys.Quit) {
		return tea.Quit
	}
	if key.Matches(msg, app.listKeys.Help) {
		app.helpBar.ToggleFullHelp()
		app.layout()
		return nil
	}

	app.status.ClearStatus()

	if app.currentView == ViewCard && app.card != nil {
		return app.card.Update(msg)
	}

	switch {
	case key.Matches(msg, app.listKeys.Up):
		app.list.MoveUp()
		return nil
	case key.Matches(msg, app.listKeys.Down):
		app.list.MoveDown()
		return nil
	case key.Matches(msg, app.listKeys.PageUp):
		app.list.PageUp()
		return nil
	case key.Matches(msg, app.listKeys.PageDown):
		app.list.PageDown()
		return nil
	case key.Matches(msg, app.listKeys.Open):
		return app.openCard()
	case key.Matches(msg, app.listKeys.Clear):
		if app.search.Value() != "" {
			app.search.SetValue("")
			app.refilter()
		}
		return nil
	}

	changed, cmd := app.search.Update(msg)
	if changed {
		app.refilter()
	}
	return cmd
}

// routeRunEvent delivers a run result to the card that dispatched it;
// results for discarded sessions are dropped
func (app *BrowserApplication) routeRunEvent(sessionID string, msg tea.Msg) tea.Cmd {
	if app.card == nil || app.card.Session().ID() != sessionID {
		logger.Debug("dropping result for discarded card session", "session_id", sessionID)
		return nil
	}
	return app.card.Update(msg)
}

func (app *BrowserApplication) forward(msg tea.Msg) tea.Cmd {
	if app.card != nil {
		return app.card.Update(msg)
	}
	_, cmd := app.search.Update(msg)
	return cmd
}

func (app *BrowserApplication) refilter() {
	app.list.SetTools(app.catalog.Search(app.search.Value()), app.catalog.Len())
}

func (app *BrowserApplication) openCard() tea.Cmd {
	tool, ok := app.list.Selected()
	if !ok {
		return nil
	}

	app.search.Blur()
	app.card = components.NewToolCardView(app.ctx, tool, app.services.GetToolRunner(), app.styleProvider)
	app.currentView = ViewCard
	app.helpBar.SetKeyMap(app.card.KeyMap())
	app.layout()

	logger.Debug("opened tool card", "tool_id", tool.ID, "session_id", app.card.Session().ID())
	return app.card.Init()
}

func (app *BrowserApplication) closeCard() tea.Cmd {
	logger.Debug("closed tool card", "session_id", app.card.Session().ID())

	app.card = nil
	app.currentView = ViewList
	app.helpBar.SetKeyMap(app.listKeys)
	app.layout()

	return app.search.Focus()
}

func (app *BrowserApplication) layout() {
	app.header.SetWidth(app.width)
	app.search.SetWidth(app.width)
	app.status.SetWidth(app.width)
	app.helpBar.SetWidth(app.width)

	chrome := app.styleProvider.GetHeight(app.header.Render()) +
		app.styleProvider.GetHeight(app.helpBar.Render()) + 3

	if app.card != nil {
		app.card.SetSize(app.width, max(app.height-chrome, 10))
		return
	}

	searchHeight := app.styleProvider.GetHeight(app.search.Render())
	app.list.SetSize(app.width, max(app.height-chrome-searchHeight, 3))
}

// View renders the header, the active view and the footer
func (app *BrowserApplication) View() string {
	sections := []string{app.header.Render()}

	switch app.currentView {
	case ViewCard:
		sections = append(sections, app.card.View())
	default:
		sections = append(sections, app.search.Render(), app.list.Render())
	}

	if status := app.status.Render(); status != "" {
		sections = append(sections, status)
	}

	sections = append(sections,
		app.styleProvider.RenderFooter(FooterText, app.width),
		app.helpBar.Render(),
	)

	return app.styleProvider.JoinVertical(sections...)
}
