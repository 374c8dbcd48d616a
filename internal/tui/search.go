package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stormlightlabs/doctrail/internal/query"
)

// searchTickMsg is sent when the debounce timer expires.
type searchTickMsg struct{ query string }

// searchResultsMsg is sent when a query completes.
type searchResultsMsg struct {
	result *query.Result
	query  string
}

// searchErrMsg is sent when a query fails.
type searchErrMsg struct{ err error }

// SearchModel is the question input component.
type SearchModel struct {
	input       textinput.Model
	engine      *query.Engine
	debounce    time.Duration
	lastQuery   string
	resultCount int
	searching   bool
	err         error
}

// NewSearchModel creates a new search model.
func NewSearchModel(engine *query.Engine) SearchModel {
	input := textinput.New()
	input.Placeholder = "Ask the docs..."
	input.Focus()
	d := 200 * time.Millisecond
	return SearchModel{input: input, engine: engine, debounce: d}
}

// Init returns the initial command.
func (m SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m SearchModel) Update(msg tea.Msg) (SearchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.input.Value() != "" {
				return m, m.performQuery(m.input.Value())
			}
		case "esc":
			m.input.Reset()
			m.resultCount = 0
			m.err = nil
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		q := m.input.Value()
		if q != m.lastQuery && len(q) >= 2 {
			m.lastQuery = q
			return m, tea.Sequence(cmd, m.startDebounce(q))
		}

		return m, cmd

	case searchTickMsg:
		if msg.query == m.input.Value() {
			return m, m.performQuery(msg.query)
		}
		return m, nil
	}

	return m, nil
}

// View renders the search input.
func (m SearchModel) View() string {
	var status string
	if m.err != nil {
		status = errorStyle.Render(" Query failed: " + m.err.Error())
	} else if m.searching {
		status = dimStyle.Render(" Searching...")
	} else if m.resultCount > 0 {
		status = accentStyle.Render(" " + strconv.Itoa(m.resultCount) + " candidates")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, searchInputStyle.Render(m.input.View()), status)
}

// Value returns the current question text.
func (m SearchModel) Value() string {
	return m.input.Value()
}

// Focused returns whether the input is focused.
func (m SearchModel) Focused() bool {
	return m.input.Focused()
}

// Focus sets focus on the input.
func (m SearchModel) Focus() SearchModel {
	m.input.Focus()
	return m
}

// Blur removes focus from the input.
func (m SearchModel) Blur() SearchModel {
	m.input.Blur()
	return m
}

// startDebounce starts the debounce timer.
func (m SearchModel) startDebounce(q string) tea.Cmd {
	return tea.Tick(m.debounce, func(_ time.Time) tea.Msg {
		return searchTickMsg{query: q}
	})
}

// performQuery runs the engine against the current question.
func (m SearchModel) performQuery(q string) tea.Cmd {
	m.searching = true
	return func() tea.Msg {
		result, err := m.engine.Run(context.Background(), q, query.Options{})
		if err != nil {
			return searchErrMsg{err: err}
		}
		return searchResultsMsg{result: result, query: q}
	}
}

// SetResults updates the model after a query finishes.
func (m *SearchModel) SetResults(count int, err error) {
	m.searching = false
	m.resultCount = count
	m.err = err
}
