// Package forktable is the terminal fork table: a bubbles table fed from
// forks.Row values, with column sorting and a search filter.
package forktable

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/gh-forks/internal/forks"
	"github.com/altinukshini/gh-forks/internal/search"
	"github.com/altinukshini/gh-forks/internal/ui"
)

const minColumnWidth = 8

type Model struct {
	columns forks.Columns
	engine  *search.Engine
	table   table.Model
	search  textinput.Model

	rows      []forks.Row
	visible   []forks.Row
	sort      forks.SortSpec
	query     string
	searching bool
	filterErr error

	theme  ui.Theme
	now    func() time.Time
	width  int
	height int
}

func New(columns forks.Columns, theme ui.Theme) Model {
	si := textinput.New()
	si.Prompt = "Search: "
	si.Placeholder = "text, /regex or stars:>10"
	si.CharLimit = 128
	si.Width = 40

	m := Model{
		columns: columns,
		engine:  search.New(columns),
		table:   table.New(table.WithFocused(true)),
		search:  si,
		sort:    forks.DefaultSort(columns.StarsIndex()),
		theme:   theme,
		now:     time.Now,
	}
	m.SetTheme(theme)
	m.refresh()
	return m
}

// SetRows replaces the table contents and moves the cursor to the top.
func (m *Model) SetRows(rows []forks.Row) {
	m.rows = rows
	m.refresh()
	m.table.GotoTop()
}

// SetSort applies spec, falling back to the Stars column when spec.Column
// is not a valid index.
func (m *Model) SetSort(spec forks.SortSpec) {
	spec.Column = m.columns.ResolveSort(spec.Column)
	m.sort = spec
	m.refresh()
}

func (m Model) Sort() forks.SortSpec {
	return m.sort
}

// CycleSort moves the sort column by delta, wrapping around. Direction is
// kept.
func (m *Model) CycleSort(delta int) {
	n := len(m.columns)
	if n == 0 {
		return
	}
	m.sort.Column = ((m.sort.Column+delta)%n + n) % n
	m.refresh()
}

func (m *Model) Reverse() {
	m.sort.Desc = !m.sort.Desc
	m.refresh()
}

// SetFilter applies a search query. An invalid query shows every loaded row
// and is reported by FilterErr.
func (m *Model) SetFilter(q string) error {
	m.query = q
	m.refresh()
	return m.filterErr
}

func (m Model) Filter() string {
	return m.query
}

func (m Model) FilterErr() error {
	return m.filterErr
}

func (m Model) IsSearching() bool {
	return m.searching
}

func (m *Model) SetTheme(t ui.Theme) {
	m.theme = t
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Bold(true).
		Foreground(t.Foreground)
	s.Cell = s.Cell.Foreground(t.Foreground)
	s.Selected = s.Selected.
		Foreground(t.SelectedFg).
		Background(t.Selected).
		Bold(false)
	m.table.SetStyles(s)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetWidth(width)
	// the table subtracts its own header; keep one line for the search bar
	h := height - 1
	if h < 1 {
		h = 1
	}
	m.table.SetHeight(h)
	m.table.SetColumns(m.tableColumns())
}

func (m *Model) Focus() { m.table.Focus() }
func (m *Model) Blur()  { m.table.Blur() }

// Selected returns the row under the cursor.
func (m Model) Selected() (forks.Row, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return forks.Row{}, false
	}
	return m.visible[i], true
}

// Len is the number of loaded rows; VisibleLen counts those passing the
// filter.
func (m Model) Len() int        { return len(m.rows) }
func (m Model) VisibleLen() int { return len(m.visible) }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.searching {
		return m.updateSearch(msg)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, ui.Keys.Search):
			m.searching = true
			m.search.SetValue(m.query)
			m.search.CursorEnd()
			return m, m.search.Focus()
		case key.Matches(kmsg, ui.Keys.Sort):
			m.CycleSort(1)
			return m, nil
		case key.Matches(kmsg, ui.Keys.SortPrev):
			m.CycleSort(-1)
			return m, nil
		case key.Matches(kmsg, ui.Keys.Reverse):
			m.Reverse()
			return m, nil
		case key.Matches(kmsg, ui.Keys.Back) && m.query != "":
			_ = m.SetFilter("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.Msg) (Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.Type {
		case tea.KeyEnter:
			m.searching = false
			m.search.Blur()
			return m, nil
		case tea.KeyEsc:
			m.searching = false
			m.search.Blur()
			_ = m.SetFilter("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.query {
		_ = m.SetFilter(m.search.Value())
	}
	return m, cmd
}

func (m *Model) refresh() {
	filtered, err := m.engine.FilterString(m.rows, m.query)
	m.filterErr = err
	if err != nil {
		filtered = m.rows
	}
	m.visible = forks.SortRows(filtered, m.sort)

	now := m.now()
	trows := make([]table.Row, len(m.visible))
	for i, r := range m.visible {
		cells := make(table.Row, len(r.Cells))
		for j, c := range r.Cells {
			cells[j] = c.Display(now)
		}
		trows[i] = cells
	}
	m.table.SetColumns(m.tableColumns())
	m.table.SetRows(trows)
	if len(trows) > 0 && m.table.Cursor() < 0 {
		m.table.SetCursor(0)
	}
}

// tableColumns marks the sort column and gives the Owner column any spare
// width.
func (m Model) tableColumns() []table.Column {
	cols := make([]table.Column, len(m.columns))
	used := 0
	for i, c := range m.columns {
		title := c.Title
		if i == m.sort.Column {
			arrow := "▲"
			if m.sort.Desc {
				arrow = "▼"
			}
			title += " " + arrow
		}
		w := max(c.Width, lipgloss.Width(title))
		cols[i] = table.Column{Title: title, Width: w}
		// cell padding is one column on each side
		used += w + 2
	}
	if m.width <= 0 {
		return cols
	}
	spare := m.width - used
	if spare > 0 && len(cols) > 0 {
		cols[0].Width += spare
	}
	// narrow terminal: give up width from Owner and Link first
	for i := 0; i < len(cols) && i < 2 && spare < 0; i++ {
		take := min(-spare, cols[i].Width-minColumnWidth)
		if take > 0 {
			cols[i].Width -= take
			spare += take
		}
	}
	return cols
}

func (m Model) View() string {
	var line string
	switch {
	case m.searching:
		line = m.search.View()
	case m.filterErr != nil:
		line = ui.StyleFailure.Render(m.filterErr.Error())
	case m.query != "":
		line = ui.StyleMuted.Render(fmt.Sprintf("Filter: %s  (%d of %d)  esc to clear", m.query, len(m.visible), len(m.rows)))
	default:
		line = ui.StyleMuted.Render(fmt.Sprintf("%d forks", len(m.rows)))
	}
	return m.table.View() + "\n" + line
}
