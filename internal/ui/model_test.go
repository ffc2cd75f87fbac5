package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NicholasBallard/calories-parse/internal/export"
)

func sampleTable() export.Table {
	return export.Table{
		Header: []string{"food", "date", "meal"},
		Records: []export.Record{
			{Food: "oatmeal", Date: "2024/01/01", Meal: 1},
			{Food: "large coffee", Date: "2024/01/01", Meal: 1},
			{Food: "soup", Date: "2024/01/01", Meal: 2},
			{Food: "toast", Date: "2024/01/02", Meal: 1},
			{Food: "medium apple", Date: "2024/01/03", Meal: 1},
		},
	}
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestDayNavigation(t *testing.T) {
	m := NewModel("calories.txt", sampleTable())

	m = press(t, m, "n")
	if got := m.table.Cursor(); got != 3 {
		t.Fatalf("cursor after n = %d, want 3", got)
	}
	m = press(t, m, "n")
	if got := m.table.Cursor(); got != 4 {
		t.Fatalf("cursor after second n = %d, want 4", got)
	}
	m = press(t, m, "n")
	if got := m.table.Cursor(); got != 4 {
		t.Fatalf("cursor after n on last day = %d, want 4", got)
	}
	m = press(t, m, "p")
	if got := m.table.Cursor(); got != 3 {
		t.Fatalf("cursor after p = %d, want 3", got)
	}
	m = press(t, m, "p")
	m = press(t, m, "p")
	if got := m.table.Cursor(); got != 0 {
		t.Fatalf("cursor after p on first day = %d, want 0", got)
	}
}

func TestPrevDayFromMiddleOfDay(t *testing.T) {
	m := NewModel("calories.txt", sampleTable())
	m = press(t, m, "n")
	m = press(t, m, "n")
	if got := m.prevDay(4); got != 3 {
		t.Fatalf("prevDay(4) = %d, want 3", got)
	}
	if got := m.prevDay(2); got != 0 {
		t.Fatalf("prevDay(2) = %d, want 0", got)
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel("calories.txt", sampleTable())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q returned nil command, want tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not produce tea.QuitMsg")
	}
}

func TestViewShowsStatus(t *testing.T) {
	m := NewModel("calories.txt", sampleTable())
	m = press(t, m, "down")

	view := m.View()
	for _, want := range []string{"calories.txt", "large coffee", "row 2 of 5", "meal 1", "3 days"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestViewWithoutRows(t *testing.T) {
	m := NewModel("empty.txt", export.Table{Header: []string{"food", "date", "meal"}})
	view := m.View()
	if !strings.Contains(view, "(no rows)") || !strings.Contains(view, "0 rows") {
		t.Fatalf("View() = %q", view)
	}
}
