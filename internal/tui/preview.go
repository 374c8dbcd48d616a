package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/stormlightlabs/doctrail/internal/query"
)

// backToListMsg is sent when the user leaves the preview.
type backToListMsg struct{}

// PreviewModel renders the evidence section behind a selected candidate.
type PreviewModel struct {
	viewport  viewport.Model
	candidate query.Candidate
	evidence  *query.Evidence
	ready     bool
}

// NewPreviewModel creates a new preview model.
func NewPreviewModel() PreviewModel {
	return PreviewModel{viewport: viewport.New(0, 0)}
}

// Show loads a candidate and its evidence into the preview.
func (m *PreviewModel) Show(c query.Candidate, evidence []query.Evidence) {
	m.candidate = c
	m.evidence = nil
	for i := range evidence {
		if evidence[i].Path == c.Path && evidence[i].SectionID == c.SectionID {
			m.evidence = &evidence[i]
			break
		}
	}

	body := "No evidence captured for this candidate."
	if m.evidence != nil {
		rendered, err := glamour.Render(m.evidence.Text, "dark")
		if err != nil {
			rendered = m.evidence.Text
		}
		body = rendered
	}
	m.viewport.SetContent(body)
	m.viewport.GotoTop()
	m.ready = true
}

// Init returns the initial command.
func (m PreviewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PreviewModel) Update(msg tea.Msg) (PreviewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return m, func() tea.Msg { return backToListMsg{} }
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 6
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the preview pane.
func (m PreviewModel) View() string {
	if !m.ready {
		return emptyStateStyle.Render("Nothing selected.")
	}

	header := titleStyle.Render(m.candidate.Name)
	location := m.candidate.Path
	if m.evidence != nil {
		location = fmt.Sprintf("%s:%d-%d", m.evidence.Path, m.evidence.StartLine, m.evidence.EndLine)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		previewPathStyle.Render(location),
		"",
		m.viewport.View(),
	)
}
