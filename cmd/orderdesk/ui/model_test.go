package ui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomypizza/orderdesk/cmd/orderdesk/ui"
	"github.com/tomypizza/orderdesk/orders"
	"github.com/tomypizza/orderdesk/orders/store"
	"github.com/tomypizza/orderdesk/testutil"
	"github.com/tomypizza/orderdesk/theme"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(m tea.Model, keys ...string) tea.Model {
	for _, k := range keys {
		m, _ = m.Update(key(k))
	}
	return m
}

func mustAll(t *testing.T, s store.Store) []orders.Order {
	t.Helper()
	all, err := s.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	return all
}

func TestModelRendersFixtureOrders(t *testing.T) {
	s, _ := testutil.NewFixtureStore(t)
	m := ui.NewModel(s, ui.NewStyles(theme.Light))

	out := m.View()
	for _, name := range []string{"Margherita", "Capricciosa", "Diavola"} {
		if !strings.Contains(out, name) {
			t.Errorf("view missing order %q:\n%s", name, out)
		}
	}
}

func TestModelFilterCycling(t *testing.T) {
	s, _ := testutil.NewFixtureStore(t)
	m := press(ui.NewModel(s, ui.NewStyles(theme.Light)), "f")

	out := m.View()
	if !strings.Contains(out, string(orders.FilterPending)) {
		t.Errorf("expected pending filter after one cycle:\n%s", out)
	}
	if strings.Contains(out, "Diavola") {
		t.Errorf("completed order shown under pending filter:\n%s", out)
	}
}

func TestModelCompleteSelected(t *testing.T) {
	s, _ := testutil.NewFixtureStore(t)
	// Due-ascending puts Capricciosa first; the cursor starts there.
	press(ui.NewModel(s, ui.NewStyles(theme.Light)), "c")

	testutil.AssertStatus(t, mustAll(t, s), 1002, orders.StatusCompleted)
}

func TestModelDeleteNeedsConfirmation(t *testing.T) {
	s, _ := testutil.NewFixtureStore(t)
	m := press(ui.NewModel(s, ui.NewStyles(theme.Light)), "d")

	testutil.AssertOrderCount(t, mustAll(t, s), 3, "before confirming")
	if !strings.Contains(m.(ui.Model).View(), "(y/n)") {
		t.Errorf("expected a confirmation prompt after pressing d")
	}

	press(m, "n")
	testutil.AssertOrderCount(t, mustAll(t, s), 3, "after declining")
	testutil.AssertOrderExists(t, mustAll(t, s), 1002)
}

func TestModelDeleteConfirmed(t *testing.T) {
	s, _ := testutil.NewFixtureStore(t)
	press(ui.NewModel(s, ui.NewStyles(theme.Light)), "d", "y")

	testutil.AssertOrderCount(t, mustAll(t, s), 2)
	testutil.AssertOrderNotExists(t, mustAll(t, s), 1002)
}

func TestModelAddPrompt(t *testing.T) {
	s, _ := testutil.NewFixtureStore(t)
	m := press(ui.NewModel(s, ui.NewStyles(theme.Light)), "a")

	if !strings.Contains(m.(ui.Model).View(), "new order name") {
		t.Fatalf("expected the add prompt after pressing a")
	}

	press(m, "Quattro", "enter", "45m", "enter")

	all := mustAll(t, s)
	testutil.AssertOrderCount(t, all, 4)
	found := false
	for _, o := range all {
		if o.Name == "Quattro" {
			found = true
		}
	}
	if !found {
		t.Errorf("added order not found in %v", all)
	}
}

func TestModelAddPromptCancel(t *testing.T) {
	s, _ := testutil.NewFixtureStore(t)
	press(ui.NewModel(s, ui.NewStyles(theme.Light)), "a", "Quattro", "esc")

	testutil.AssertOrderCount(t, mustAll(t, s), 3)
}
