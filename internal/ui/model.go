package ui

import (
	"fmt"
	"log"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"treepick/internal/config"
	"treepick/internal/eventbus"
	"treepick/internal/ui/coordinator"
	"treepick/internal/ui/services/dropdown"
	"treepick/internal/ui/services/events"
	"treepick/internal/ui/services/navigation"
	"treepick/internal/ui/services/query"
	"treepick/internal/ui/summary"
	"treepick/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus       *events.Bus
	domainBus eventbus.EventBus
	config    *config.Config
	coord     *coordinator.Coordinator
	renderer  *views.Renderer

	width  int
	height int
	help   help.Model
	keys   keyMap

	statusMessage string
}

// NewModel creates a new UI model
func NewModel(domainBus eventbus.EventBus, cfg *config.Config) *Model {
	bus := events.NewBus()
	return &Model{
		bus:       bus,
		domainBus: domainBus,
		config:    cfg,
		coord:     coordinator.NewCoordinator(bus, domainBus, cfg),
		renderer:  views.NewRenderer(),
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Coordinator exposes the service coordinator, mainly for tests.
func (m *Model) Coordinator() *coordinator.Coordinator {
	return m.coord
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewport := msg.Height - 6 // title, control, borders, status, help
		if viewport > 12 {
			viewport = 12
		}
		m.coord.Navigation.SetViewportHeight(viewport)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	dd := m.coord.Dropdown

	switch {
	case key.Matches(msg, keys.Quit):
		m.coord.Teardown()
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, keys.Open):
		m.toggleOpen()

	case key.Matches(msg, keys.Up):
		if dd.IsOpen() {
			m.coord.Navigation.Navigate(navigation.DirectionUp)
		}

	case key.Matches(msg, keys.Down):
		if dd.IsOpen() {
			m.coord.Navigation.Navigate(navigation.DirectionDown)
		}

	case key.Matches(msg, keys.Toggle):
		if dd.IsOpen() {
			m.coord.ActivateCursor()
		} else {
			m.toggleOpen()
		}

	case key.Matches(msg, keys.SelectAll):
		if dd.IsOpen() && m.config.SelectAllBtn {
			m.coord.Selection.ToggleAll()
		}

	case key.Matches(msg, keys.Confirm):
		if dd.IsOpen() {
			dd.Confirm()
		} else {
			m.toggleOpen()
		}

	case key.Matches(msg, keys.Yank):
		csv := m.coord.Selection.Selected().CSV()
		if err := clipboard.WriteAll(csv); err != nil {
			log.Printf("Clipboard write failed: %v", err)
			m.statusMessage = "copy failed"
		} else {
			m.statusMessage = fmt.Sprintf("copied %q", csv)
		}
	}

	return m, nil
}

// handleMouse publishes every press as a document-wide pointer event with a
// bounds verdict, then routes inside presses to the row they landed on.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	state := m.viewState()
	inside := m.renderer.InBounds(state, msg.X, msg.Y)
	m.bus.Publish(dropdown.GlobalPressEvent{Inside: inside, X: msg.X, Y: msg.Y})

	if !inside {
		return m, nil
	}

	if m.renderer.OnControl(state, msg.X, msg.Y) {
		m.toggleOpen()
		return m, nil
	}

	if index, ok := m.renderer.RowAtY(state, msg.Y); ok {
		m.coord.Navigation.MoveToIndex(index)
		m.coord.ActivateRow(index)
	}

	return m, nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.OptionsReloadedEvent:
		m.coord.SetOptions(e.Options)
		m.statusMessage = "options reloaded"

	case eventbus.SelectionChangedEvent:
		m.statusMessage = fmt.Sprintf("change emitted (%d selected)", len(e.Selected))

	case eventbus.ErrorEvent:
		log.Printf("Error: %s: %v", e.Message, e.Err)
		m.statusMessage = fmt.Sprintf("error: %s", e.Message)
	}

	return m, nil
}

func (m *Model) toggleOpen() {
	wasOpen := m.coord.Dropdown.IsOpen()
	m.coord.Dropdown.ToggleOpen()
	if !wasOpen && m.coord.Dropdown.IsOpen() {
		m.coord.Navigation.Reset()
	}
}

// View implements tea.Model
func (m *Model) View() string {
	state := m.viewState()
	state.Help = m.help.View(m.keys)
	return m.renderer.Render(state)
}

// viewState assembles the render snapshot from the services.
func (m *Model) viewState() views.ViewState {
	sel := m.coord.Selection
	tree := sel.Options()

	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		IsOpen:         m.coord.Dropdown.IsOpen(),
		HasChanges:     m.coord.Dropdown.HasChanges(),
		Cursor:         m.coord.Navigation.GetCursor(),
		ViewportOffset: m.coord.Navigation.GetViewportOffset(),
		ViewportHeight: m.coord.Navigation.GetViewportHeight(),
		EmptyTree:      len(tree) == 0,
		EmptyText:      m.config.EmptyText,
		StatusMessage:  m.statusMessage,
	}

	for _, row := range m.coord.Query.Rows() {
		rv := views.RowView{Row: row}
		switch {
		case row.Kind == query.RowSelectAll:
			rv.Status.Checked = sel.AllSelected()
		case row.Option.Value != "":
			rv.Status = sel.Status(row.Option)
		}
		state.Rows = append(state.Rows, rv)
	}

	budget := m.renderer.ControlWidth(state) - 4
	state.Summary = summary.Format(tree, sel.Selected(), budget, m.config.PlaceholderText)

	return state
}
