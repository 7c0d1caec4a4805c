package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomypizza/orderdesk/orders"
	"github.com/tomypizza/orderdesk/orders/store"
)

// Model is the interactive host. It renders whatever the store's current
// view selection produces and maps key presses onto typed commands; all
// state changes flow through the store and come back as events.
type Model struct {
	store  store.Store
	styles Styles
	events <-chan store.Event

	records []orders.Order
	filter  orders.Filter
	sort    orders.Sort
	cursor  int

	// pending two-step confirmation, if any
	confirmToken string
	confirmWhat  string

	// minimal add prompt: name first, then a due offset like "45m"
	adding   bool
	addStage int
	addName  string
	input    string

	status string
	err    error
}

// NewModel creates the TUI model bound to a store.
func NewModel(s store.Store, styles Styles) Model {
	m := Model{
		store:  s,
		styles: styles,
		events: s.Watch(),
	}
	m.reload()
	return m
}

// eventMsg wraps a store event for bubbletea.
type eventMsg store.Event

// eventsClosed signals the store shut down.
type eventsClosed struct{}

func (m Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return eventsClosed{}
		}
		return eventMsg(ev)
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m *Model) reload() {
	filter, sortKey, records, err := m.store.View()
	if err != nil {
		m.err = err
		return
	}
	m.filter, m.sort, m.records = filter, sortKey, records
	if m.cursor >= len(m.records) {
		m.cursor = len(m.records) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selected() *orders.Order {
	if m.cursor < 0 || m.cursor >= len(m.records) {
		return nil
	}
	return &m.records[m.cursor]
}

var filterCycle = []orders.Filter{orders.FilterAll, orders.FilterPending, orders.FilterCompleted}
var sortCycle = []orders.Sort{orders.SortDueAsc, orders.SortName, orders.SortPriorityDesc}

func next[T comparable](cycle []T, current T) T {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		ev := store.Event(msg)
		if ev.Kind == store.EventPersistFailed {
			m.status = "warning: could not save, changes kept in memory only"
		}
		m.reload()
		return m, m.waitForEvent()

	case eventsClosed:
		return m, tea.Quit

	case tea.KeyMsg:
		if m.adding {
			m.updateAddPrompt(msg)
			m.reload()
			return m, nil
		}

		// A pending confirmation swallows everything except y/n.
		if m.confirmToken != "" {
			switch msg.String() {
			case "y", "Y":
				if err := m.store.Confirm(m.confirmToken); err != nil {
					m.status = fmt.Sprintf("error: %v", err)
				} else {
					m.status = m.confirmWhat + " done"
				}
				m.confirmToken, m.confirmWhat = "", ""
			case "n", "N", "esc":
				_ = m.store.Cancel(m.confirmToken)
				m.confirmToken, m.confirmWhat = "", ""
				m.status = "cancelled"
			}
			m.reload()
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.records)-1 {
				m.cursor++
			}
		case "f":
			if err := m.store.Dispatch(&store.SetFilterCommand{Filter: next(filterCycle, m.filter)}); err != nil {
				m.status = fmt.Sprintf("error: %v", err)
			}
		case "s":
			if err := m.store.Dispatch(&store.SetSortCommand{Sort: next(sortCycle, m.sort)}); err != nil {
				m.status = fmt.Sprintf("error: %v", err)
			}
		case "c":
			if o := m.selected(); o != nil {
				if err := m.store.Dispatch(&store.CompleteCommand{ID: o.ID}); err != nil {
					m.status = fmt.Sprintf("error: %v", err)
				}
			}
		case "d":
			if o := m.selected(); o != nil {
				cmd := &store.RequestDeleteCommand{ID: o.ID}
				if err := m.store.Dispatch(cmd); err != nil {
					m.status = fmt.Sprintf("error: %v", err)
					break
				}
				m.confirmToken = cmd.Token
				m.confirmWhat = fmt.Sprintf("delete %q", o.Name)
			}
		case "a":
			m.adding = true
			m.addStage = 0
			m.addName, m.input = "", ""
			m.status = ""
		case "x":
			cmd := &store.ClearAllCommand{}
			if err := m.store.Dispatch(cmd); err != nil {
				m.status = fmt.Sprintf("error: %v", err)
				break
			}
			m.confirmToken = cmd.Token
			m.confirmWhat = "clear all orders"
		}
		m.reload()
	}
	return m, nil
}

// updateAddPrompt handles keys while the add prompt is open: a name first,
// then a due offset parsed as a duration from now.
func (m *Model) updateAddPrompt(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.status = "cancelled"
	case "enter":
		if m.addStage == 0 {
			m.addName = m.input
			m.input = ""
			m.addStage = 1
			return
		}
		d, err := time.ParseDuration(m.input)
		if err != nil {
			m.status = fmt.Sprintf("error: cannot parse %q as a duration", m.input)
			m.input = ""
			return
		}
		m.adding = false
		draft := orders.Draft{Name: m.addName, Due: time.Now().Add(d)}
		if err := m.store.Dispatch(&store.AddCommand{Draft: draft}); err != nil {
			m.status = fmt.Sprintf("error: %v", err)
			return
		}
		m.status = fmt.Sprintf("added %q", m.addName)
	case "backspace":
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.input += msg.String()
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.err != nil {
		return m.styles.Accent.Render(fmt.Sprintf("error: %v\n", m.err))
	}

	title := fmt.Sprintf("Orders (filter: %s, sort: %s)", m.filter, m.sort)
	table := NewOrderTable(title, m.records)
	out := table.View(m.styles, time.Now())

	// Cursor marker rendered as a separate line to keep the table simple.
	if o := m.selected(); o != nil {
		out += m.styles.Muted.Render(fmt.Sprintf("selected: #%d %s", o.ID, o.Name)) + "\n"
	}

	if m.adding {
		label := "name"
		if m.addStage == 1 {
			label = "due in (e.g. 45m)"
		}
		out += m.styles.Accent.Render(fmt.Sprintf("new order %s: %s_", label, m.input)) + "\n"
	} else if m.confirmToken != "" {
		out += m.styles.Accent.Render(fmt.Sprintf("%s? (y/n) ", m.confirmWhat)) + "\n"
	} else if m.status != "" {
		out += m.styles.Muted.Render(m.status) + "\n"
	}

	out += m.styles.Help.Render("↑/↓ select · a add · c complete · d delete · x clear · f filter · s sort · q quit") + "\n"
	return out
}
