package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stormlightlabs/doctrail/internal/query"
)

// appMode represents the current application state.
type appMode int

const (
	modeSearch appMode = iota
	modeList
	modePreview
)

// RootModel is the top-level application model that orchestrates all components.
type RootModel struct {
	engine   *query.Engine
	mode     appMode
	quitting bool
	showHelp bool
	search   SearchModel
	list     ListModel
	preview  PreviewModel
	evidence []query.Evidence
	help     help.Model
	keys     keyBindings
}

// NewRootModel creates a new root application model.
func NewRootModel(engine *query.Engine) RootModel {
	h := help.New()
	h.ShowAll = true
	return RootModel{
		engine:  engine,
		mode:    modeSearch,
		search:  NewSearchModel(engine),
		list:    NewListModel(),
		preview: NewPreviewModel(),
		help:    h,
		keys:    newKeyBindings(),
	}
}

// Init returns the initial command for startup.
func (m RootModel) Init() tea.Cmd {
	return m.search.Init()
}

// Update processes messages and returns the updated model.
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q":
			if m.mode != modeSearch || !m.search.Focused() {
				m.quitting = true
				return m, tea.Quit
			}
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-4)
		m.preview, _ = m.preview.Update(msg)

	case searchTickMsg:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd

	case searchResultsMsg:
		m.search.SetResults(len(msg.result.Candidates), nil)
		m.evidence = msg.result.Evidence
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		if len(msg.result.Candidates) > 0 && m.mode == modeSearch {
			m.mode = modeList
			m.search = m.search.Blur()
		}
		return m, cmd

	case searchErrMsg:
		m.search.SetResults(0, msg.err)
		return m, nil

	case listSelectMsg:
		m.mode = modePreview
		m.preview.Show(msg.candidate, m.evidence)
		return m, nil

	case backToListMsg:
		m.mode = modeList
		return m, nil

	case focusSearchMsg:
		m.mode = modeSearch
		m.search = m.search.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeSearch:
		m.search, cmd = m.search.Update(msg)
	case modeList:
		m.list, cmd = m.list.Update(msg)
	case modePreview:
		m.preview, cmd = m.preview.Update(msg)
	}

	return m, cmd
}

// View renders the UI as a string.
func (m RootModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if m.showHelp {
		return m.renderHelpView()
	}

	helpText := m.help.View(m.keys)

	switch m.mode {
	case modeSearch:
		return lipgloss.JoinVertical(lipgloss.Left, m.search.View(), "", helpText)
	case modeList:
		return lipgloss.JoinVertical(lipgloss.Left, m.search.View(), "", m.list.View(), "", helpText)
	case modePreview:
		return lipgloss.JoinVertical(lipgloss.Left, m.preview.View(), "", helpText)
	default:
		return ""
	}
}

// renderHelpView renders the full help overlay.
func (m RootModel) renderHelpView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Keyboard Shortcuts"),
		"",
		m.help.View(m.keys),
		"",
		dimStyle.Render("Press ? to close help"),
	)
}
