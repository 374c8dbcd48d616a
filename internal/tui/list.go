package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stormlightlabs/doctrail/internal/query"
)

// listSelectMsg is sent when the user presses Enter on a candidate.
type listSelectMsg struct {
	candidate query.Candidate
}

// focusSearchMsg is sent when the user presses "/" to return to search.
type focusSearchMsg struct{}

// CandidateItem wraps a query candidate for display in the list.
type CandidateItem struct {
	candidate query.Candidate
}

// NewCandidateItem creates a new list item from a candidate.
func NewCandidateItem(c query.Candidate) CandidateItem {
	return CandidateItem{candidate: c}
}

// Candidate returns the underlying candidate.
func (i CandidateItem) Candidate() query.Candidate {
	return i.candidate
}

// FilterValue implements list.Item.
func (i CandidateItem) FilterValue() string {
	return i.candidate.Name
}

// CandidateDelegate defines how candidates are rendered in the list.
type CandidateDelegate struct{}

// NewCandidateDelegate creates a new candidate delegate.
func NewCandidateDelegate() CandidateDelegate {
	return CandidateDelegate{}
}

// Height implements list.ItemDelegate.
func (d CandidateDelegate) Height() int {
	return 2
}

// Spacing implements list.ItemDelegate.
func (d CandidateDelegate) Spacing() int {
	return 1
}

// Update implements list.ItemDelegate.
func (d CandidateDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render implements list.ItemDelegate.
func (d CandidateDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(CandidateItem)
	if !ok {
		return
	}

	c := i.candidate
	detail := c.Kind
	if title := sectionLabel(c.Section); title != "" {
		detail += " · " + title
	}

	var name, kind string
	if index == m.Index() {
		name = selectedNameStyle.Render(c.Name)
		kind = selectedKindStyle.Render(detail)
	} else {
		name = nameStyle.Render(c.Name)
		kind = kindStyle.Render(detail)
	}

	fmt.Fprintf(w, "%s\n%s", name, kind)
}

func sectionLabel(s query.SectionTitle) string {
	switch {
	case s.H3 != "":
		return s.H3
	case s.H2 != "":
		return s.H2
	default:
		return s.H1
	}
}

// ListModel wraps bubbles/list for candidate navigation.
type ListModel struct {
	list       list.Model
	candidates []query.Candidate
}

// NewListModel creates a new list model.
func NewListModel() ListModel {
	delegate := NewCandidateDelegate()

	l := list.New(nil, delegate, 0, 0)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(true)
	l.SetShowFilter(false)
	l.DisableQuitKeybindings()

	l.KeyMap.NextPage.SetKeys("ctrl+d", "pgdown")
	l.KeyMap.PrevPage.SetKeys("ctrl+u", "pgup")
	l.KeyMap.GoToStart.SetKeys("g", "home")
	l.KeyMap.GoToEnd.SetKeys("G", "end")

	return ListModel{list: l}
}

// Init returns the initial command.
func (m ListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.list.Index() >= 0 && m.list.SelectedItem() != nil {
				if item, ok := m.list.SelectedItem().(CandidateItem); ok {
					return m, func() tea.Msg {
						return listSelectMsg{candidate: item.candidate}
					}
				}
			}
		case "/":
			return m, func() tea.Msg {
				return focusSearchMsg{}
			}
		case "j", "down":
			m.list.CursorDown()
			return m, nil
		case "k", "up":
			m.list.CursorUp()
			return m, nil
		case "G":
			if len(m.list.Items()) > 0 {
				m.list.Select(len(m.list.Items()) - 1)
			}
			return m, nil
		case "g":
			if len(m.list.Items()) > 0 {
				m.list.Select(0)
			}
			return m, nil
		}

	case searchResultsMsg:
		m.SetCandidates(msg.result.Candidates)
		return m, nil
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list.
func (m ListModel) View() string {
	if len(m.list.Items()) == 0 {
		return emptyStateStyle.Render("No candidates found. Try a different question.")
	}

	return m.list.View()
}

// SetCandidates replaces the listed candidates.
func (m *ListModel) SetCandidates(candidates []query.Candidate) {
	m.candidates = candidates
	items := make([]list.Item, len(candidates))
	for i, c := range candidates {
		items[i] = NewCandidateItem(c)
	}
	m.list.SetItems(items)
	if len(items) > 0 {
		m.list.Select(0)
	}
}

// SetSize sets the width and height of the list.
func (m *ListModel) SetSize(w, h int) {
	m.list.SetWidth(w)
	m.list.SetHeight(h)
}
