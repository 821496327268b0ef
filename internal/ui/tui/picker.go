package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/astromechza/eha/internal/domain"
)

type entryItem struct {
	rec domain.Record
	now int64
}

func (e entryItem) Title() string { return e.rec.Domain }

func (e entryItem) Description() string {
	remaining := time.Duration(e.rec.ExpiresAt()-e.now) * time.Second
	return fmt.Sprintf("%s, expires in %s", e.rec.Address, remaining)
}

func (e entryItem) FilterValue() string { return e.rec.Domain }

type model struct {
	theme  Theme
	menu   list.Model
	choice string
}

// PickDomain shows an interactive list of managed entries and returns the
// selected domain. ok is false when the user cancels.
func PickDomain(records []domain.Record, now time.Time) (string, bool, error) {
	items := make([]list.Item, 0, len(records))
	for _, rec := range records {
		items = append(items, entryItem{rec: rec, now: now.Unix()})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select an entry to remove"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	p := tea.NewProgram(model{theme: DefaultTheme(), menu: l}, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, ok := final.(model)
	if !ok || m.choice == "" {
		return "", false, nil
	}
	return m.choice, true, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if it, ok := m.menu.SelectedItem().(entryItem); ok {
				m.choice = it.rec.Domain
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) View() string {
	help := m.theme.Help.Render("enter: remove · esc: cancel")
	return m.menu.View() + "\n" + help
}
