// Package browse is a read-only terminal view over the weapon catalogue.
//
// The table lists weapons in catalogue order with their Common and Legendary
// damage; "/" focuses a filter that matches weapon names and tags.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"megabonk/internal/weapon"
)

var (
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	detailStyle = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model for the catalogue browser.
type Model struct {
	records  []weapon.Record
	visible  []weapon.Record
	table    table.Model
	filter   textinput.Model
	filterOn bool
}

// New returns a browser over records. records is not modified.
func New(records []weapon.Record) Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Weapon", Width: 18},
			{Title: "Type", Width: 11},
			{Title: "Element", Width: 10},
			{Title: "DmgC", Width: 5},
			{Title: "DmgL", Width: 5},
			{Title: "Unlock", Width: 40},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	fi := textinput.New()
	fi.Placeholder = "Filter by name or tag..."
	fi.CharLimit = 64

	m := Model{
		records: records,
		table:   t,
		filter:  fi,
	}
	m.applyFilter()
	return m
}

// Visible returns the records currently listed, in catalogue order.
func (m Model) Visible() []weapon.Record {
	return m.visible
}

// Selected returns the highlighted record, if any.
func (m Model) Selected() (weapon.Record, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return weapon.Record{}, false
	}
	return m.visible[i], true
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			if m.filterOn {
				m.filterOn = false
				m.filter.Blur()
				m.filter.SetValue("")
				m.applyFilter()
				return m, nil
			}
			return m, tea.Quit
		case tea.KeyEnter:
			if m.filterOn {
				m.filterOn = false
				m.filter.Blur()
				m.table.Focus()
				return m, nil
			}
		}
		if !m.filterOn {
			switch key.String() {
			case "q":
				return m, tea.Quit
			case "/":
				m.filterOn = true
				m.table.Blur()
				cmd = m.filter.Focus()
				return m, cmd
			}
		}
	}

	if m.filterOn {
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	if m.filterOn || m.filter.Value() != "" {
		b.WriteString(m.filter.View() + "\n")
	}
	b.WriteString(borderStyle.Render(m.table.View()) + "\n")
	if r, ok := m.Selected(); ok {
		b.WriteString(detailStyle.Render(detail(r)) + "\n")
	}
	b.WriteString(detailStyle.Render(fmt.Sprintf("%d/%d weapons • / filter • q quit", len(m.visible), len(m.records))))
	return b.String()
}

// applyFilter recomputes the visible records and table rows from the filter.
func (m *Model) applyFilter() {
	m.visible = Filter(m.records, m.filter.Value())
	rows := make([]table.Row, 0, len(m.visible))
	for i, r := range m.visible {
		dmg := r.Stat(weapon.Damage)
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			r.Name,
			r.Types,
			r.Element,
			string(dmg.At(weapon.Common)),
			string(dmg.At(weapon.Legendary)),
			r.Unlock,
		})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

// Filter returns the records whose name contains query or whose tag set
// contains a tag with query as prefix, ignoring case. An empty query matches
// everything.
func Filter(records []weapon.Record, query string) []weapon.Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}
	var out []weapon.Record
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), q) || hasTag(r.Tags, q) {
			out = append(out, r)
		}
	}
	return out
}

func hasTag(tags, prefix string) bool {
	for _, tag := range strings.Split(tags, ";") {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(tag)), prefix) {
			return true
		}
	}
	return false
}

// detail summarizes the present stats of r on one line each.
func detail(r weapon.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", r.Name, r.Behavior)
	for _, s := range weapon.Stats {
		t := r.Stat(s)
		if !t.Present() {
			continue
		}
		vals := t.Values()
		parts := make([]string, len(vals))
		for i, v := range vals {
			parts[i] = string(v)
		}
		fmt.Fprintf(&b, "  %-16s %s\n", s, strings.Join(parts, " / "))
	}
	fmt.Fprintf(&b, "  %s", r.Strategy)
	return b.String()
}

// Run starts the browser on the terminal and blocks until the user quits.
func Run(records []weapon.Record) error {
	if _, err := tea.NewProgram(New(records)).Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}
