package monitor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewMode defines the current screen of the dashboard.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// String returns a short name for the view mode.
func (v ViewMode) String() string {
	if v == ViewDetail {
		return "detail"
	}
	return "list"
}

// keyMap holds every binding the dashboard reacts to.
type keyMap struct {
	Quit    key.Binding
	Refresh key.Binding
	Up      key.Binding
	Down    key.Binding
	First   key.Binding
	Last    key.Binding
	Open    key.Binding
	Back    key.Binding
	Help    key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	First: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first"),
	),
	Last: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}

// ShortHelp returns the bindings shown in the summary footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Refresh, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the help overlay, one column per row.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.First, k.Last},
		{k.Open, k.Back, k.Refresh},
		{k.Help, k.Quit},
	}
}

// detailKeyMap is the footer help while a detail is open.
type detailKeyMap struct {
	keyMap
}

// ShortHelp returns the bindings shown in the detail footer.
func (k detailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Up, k.Down, k.Refresh, k.Quit}
}

// HandleKeyMsg processes keyboard input.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Help toggle takes priority
	if key.Matches(msg, keys.Help) {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// Any back key closes the help overlay first
	if m.showHelp && key.Matches(msg, keys.Back) {
		m.showHelp = false
		return true, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, keys.Refresh):
		if m.viewMode == ViewDetail {
			m.openDetail(m.detail.Name)
		} else {
			m.refresh()
		}
		return true, nil
	}

	if m.viewMode == ViewDetail {
		if key.Matches(msg, keys.Back) {
			return true, Back()
		}
		// Scrolling keys fall through to the viewport.
		return false, nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return true, nil

	case key.Matches(msg, keys.Down):
		if m.selected < len(m.snapshot.Readings)-1 {
			m.selected++
		}
		return true, nil

	case key.Matches(msg, keys.First):
		m.selected = 0
		return true, nil

	case key.Matches(msg, keys.Last):
		if n := len(m.snapshot.Readings); n > 0 {
			m.selected = n - 1
		}
		return true, nil

	case key.Matches(msg, keys.Open):
		if name := m.SelectedMetric(); name != "" {
			return true, SelectMetric(name)
		}
		return true, nil
	}

	return false, nil
}
