package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/stackbadge/pkg/icons"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// IconListModel - Interactive icon selection
// =============================================================================

// IconListModel is the bubbletea model for picking a catalog icon. Typing
// filters the list by title.
type IconListModel struct {
	Catalog  *icons.Catalog
	Query    string
	Visible  []*icons.Icon
	Cursor   int
	Offset   int
	Height   int
	Selected *icons.Icon
}

// NewIconListModel creates a picker over catalog.
func NewIconListModel(catalog *icons.Catalog) IconListModel {
	return IconListModel{
		Catalog: catalog,
		Visible: catalog.Icons(),
		Height:  15,
	}
}

func (m IconListModel) Init() tea.Cmd {
	return nil
}

func (m IconListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case tea.KeyDown:
			if m.Cursor < len(m.Visible)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case tea.KeyEnter:
			if len(m.Visible) == 0 {
				return m, nil
			}
			m.Selected = m.Visible[m.Cursor]
			return m, tea.Quit
		case tea.KeyBackspace:
			if m.Query != "" {
				r := []rune(m.Query)
				m.setQuery(string(r[:len(r)-1]))
			}
		case tea.KeyRunes, tea.KeySpace:
			m.setQuery(m.Query + string(msg.Runes))
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m *IconListModel) setQuery(q string) {
	m.Query = q
	m.Visible = m.Catalog.Filter(q)
	m.Cursor = 0
	m.Offset = 0
}

func (m IconListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Icon"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("type to filter  ↑/↓ navigate  ⏎ select  esc quit"))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("filter: ") + StyleValue.Render(m.Query))
	b.WriteString("\n")

	end := min(m.Offset+m.Height, len(m.Visible))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		icon := m.Visible[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		hex := icon.BaseColor().Hex()
		rows = append(rows, []string{cursor, icon.Title, hex, "  "})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("", "Icon", "Color", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleTableHeader
			}
			idx := m.Offset + row
			if idx >= len(m.Visible) {
				return lipgloss.NewStyle()
			}
			if col == 3 {
				return lipgloss.NewStyle().Background(lipgloss.Color(m.Visible[idx].BaseColor().Hex()))
			}
			if idx == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 2 {
				return StyleDim
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	if len(m.Visible) == 0 {
		b.WriteString(StyleWarning.Render("  no icon matches"))
	} else {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Visible))))
	}

	return b.String()
}
