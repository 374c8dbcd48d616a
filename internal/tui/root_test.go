package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stormlightlabs/doctrail/internal/query"
)

func testResult() *query.Result {
	return &query.Result{
		Candidates: testCandidates(),
		Evidence: []query.Evidence{
			{Path: "/docs/orders.md", StartLine: 5, EndLine: 9, Text: "## Placing\n\ntext"},
		},
	}
}

// TestRootModel_InitialMode verifies startup lands on the search input
func TestRootModel_InitialMode(t *testing.T) {
	model := NewRootModel(nil)

	if model.mode != modeSearch {
		t.Errorf("initial mode = %d, want modeSearch", model.mode)
	}
	if model.Init() == nil {
		t.Error("expected Init to return a command")
	}
}

// TestRootModel_ResultsSwitchToList verifies results move focus to the list
func TestRootModel_ResultsSwitchToList(t *testing.T) {
	model := NewRootModel(nil)

	updated, _ := model.Update(searchResultsMsg{result: testResult(), query: "orders"})
	root := updated.(RootModel)

	if root.mode != modeList {
		t.Errorf("mode = %d, want modeList", root.mode)
	}
	if len(root.evidence) != 1 {
		t.Errorf("evidence not captured: %d", len(root.evidence))
	}
}

// TestRootModel_SelectShowsPreview verifies Enter on a candidate opens evidence
func TestRootModel_SelectShowsPreview(t *testing.T) {
	model := NewRootModel(nil)

	updated, _ := model.Update(searchResultsMsg{result: testResult(), query: "orders"})
	updated, _ = updated.(RootModel).Update(listSelectMsg{candidate: testCandidates()[0]})
	root := updated.(RootModel)

	if root.mode != modePreview {
		t.Errorf("mode = %d, want modePreview", root.mode)
	}

	updated, _ = root.Update(backToListMsg{})
	if updated.(RootModel).mode != modeList {
		t.Error("backToListMsg did not return to list")
	}
}

// TestRootModel_SearchError verifies a failed query stays on search
func TestRootModel_SearchError(t *testing.T) {
	model := NewRootModel(nil)

	updated, _ := model.Update(searchErrMsg{err: errors.New("boom")})
	root := updated.(RootModel)

	if root.mode != modeSearch {
		t.Errorf("mode = %d, want modeSearch after error", root.mode)
	}
	if root.search.View() == "" {
		t.Error("expected error view to render")
	}
}

// TestRootModel_Quit verifies ctrl+c quits from any mode
func TestRootModel_Quit(t *testing.T) {
	model := NewRootModel(nil)

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !updated.(RootModel).quitting {
		t.Error("ctrl+c did not set quitting")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

// TestSearchModel_Typing verifies typed runes reach the input
func TestSearchModel_Typing(t *testing.T) {
	model := NewSearchModel(nil)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello")})
	if model.Value() != "hello" {
		t.Errorf("value = %q, want hello", model.Value())
	}
}

// TestSearchModel_EscResets verifies esc clears the input
func TestSearchModel_EscResets(t *testing.T) {
	model := NewSearchModel(nil)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if model.Value() != "" {
		t.Errorf("value = %q, want empty after esc", model.Value())
	}
}
