package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NicholasBallard/calories-parse/internal/export"
)

const chromeHeight = 7

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tableBorder = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

// Model owns Bubble Tea state for browsing parsed rows before export.
type Model struct {
	source  string
	records []export.Record
	table   table.Model

	// dayStarts holds the index of the first record of each date.
	dayStarts []int
}

// NewModel seeds the preview with an already formatted table.
func NewModel(source string, t export.Table) Model {
	columns := make([]table.Column, 0, len(t.Header))
	widths := columnWidths(t)
	for i, h := range t.Header {
		columns = append(columns, table.Column{Title: h, Width: widths[i]})
	}

	rows := make([]table.Row, 0, len(t.Records))
	for _, rec := range t.Records {
		rows = append(rows, table.Row(rec.Strings()))
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 20)),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	tbl.SetStyles(styles)

	return Model{
		source:    source,
		records:   t.Records,
		table:     tbl,
		dayStarts: dayStarts(t.Records),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-chromeHeight, 3))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "n", "right":
			m.table.SetCursor(m.nextDay(m.table.Cursor()))
			return m, nil
		case "p", "left":
			m.table.SetCursor(m.prevDay(m.table.Cursor()))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the title, table, status and key help.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.source))
	b.WriteString("\n\n")
	if len(m.records) == 0 {
		b.WriteString("(no rows)\n")
	} else {
		b.WriteString(tableBorder.Render(m.table.View()))
		b.WriteByte('\n')
	}
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k move  n/p next/prev day  q quit"))
	b.WriteByte('\n')
	return b.String()
}

func (m Model) status() string {
	if len(m.records) == 0 {
		return "0 rows"
	}
	cur := m.table.Cursor()
	rec := m.records[cur]
	return fmt.Sprintf("row %d of %d  %s  meal %d  (%d day%s)",
		cur+1, len(m.records), rec.Date, rec.Meal, len(m.dayStarts), plural(len(m.dayStarts)))
}

func (m Model) nextDay(cursor int) int {
	for _, start := range m.dayStarts {
		if start > cursor {
			return start
		}
	}
	return cursor
}

func (m Model) prevDay(cursor int) int {
	current := 0
	for i, start := range m.dayStarts {
		if start > cursor {
			break
		}
		current = i
	}
	if current == 0 {
		return 0
	}
	return m.dayStarts[current-1]
}

func dayStarts(records []export.Record) []int {
	var starts []int
	for i, rec := range records {
		if i == 0 || rec.Date != records[i-1].Date {
			starts = append(starts, i)
		}
	}
	return starts
}

func columnWidths(t export.Table) []int {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = lipgloss.Width(h)
	}
	for _, rec := range t.Records {
		for i, cell := range rec.Strings() {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	for i := range widths {
		widths[i] = min(widths[i]+2, 48)
	}
	return widths
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
