package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/stackbadge/pkg/icons"
)

func testIconModel(t *testing.T) IconListModel {
	t.Helper()
	svg := `<svg REPLACE="TAG"/>`
	index := "0\t20\tff0000\tStar\n20\t20\t00ff00\tCheck\n40\t20\t0000ff\tShield\n"
	catalog, err := icons.Parse([]byte(index), []byte(svg+svg+svg))
	if err != nil {
		t.Fatal(err)
	}
	return NewIconListModel(catalog)
}

func update(m IconListModel, msg tea.Msg) (IconListModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(IconListModel), cmd
}

func TestIconListNavigation(t *testing.T) {
	m := testIconModel(t)
	if len(m.Visible) != 3 {
		t.Fatalf("Visible = %d icons, want 3", len(m.Visible))
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, should stay at the top", m.Cursor)
	}
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, should stop at the last icon", m.Cursor)
	}

	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("enter should quit")
	}
	if m.Selected == nil || m.Selected.Title != "Star" {
		t.Errorf("Selected = %v, want Star (title order: Check, Shield, Star)", m.Selected)
	}
}

func TestIconListFilter(t *testing.T) {
	m := testIconModel(t)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyDown})

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("sh")})
	if m.Query != "sh" || len(m.Visible) != 1 || m.Visible[0].Title != "Shield" {
		t.Fatalf("filter %q left %d icons", m.Query, len(m.Visible))
	}
	if m.Cursor != 0 {
		t.Errorf("filtering should reset the cursor, got %d", m.Cursor)
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if len(m.Visible) != 0 {
		t.Errorf("no icon should match %q", m.Query)
	}
	if !strings.Contains(m.View(), "no icon matches") {
		t.Error("empty result should be reported")
	}
	if m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil || m.Selected != nil {
		t.Error("enter with no match should do nothing")
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyBackspace})
	if m.Query != "sh" || len(m.Visible) != 1 {
		t.Errorf("backspace should widen the filter, query %q", m.Query)
	}
}

func TestIconListQuit(t *testing.T) {
	m := testIconModel(t)
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("esc should quit")
	}
	if m.Selected != nil {
		t.Error("esc should not select")
	}
}

func TestIconListView(t *testing.T) {
	m := testIconModel(t)
	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 10})
	if m.Height != 5 {
		t.Errorf("Height = %d, want the minimum of 5", m.Height)
	}

	view := m.View()
	for _, want := range []string{"Select Icon", "Check", "#00ff00", "[1/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
