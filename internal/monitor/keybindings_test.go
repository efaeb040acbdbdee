package monitor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyMap_ShortHelp(t *testing.T) {
	assert.Len(t, keys.ShortHelp(), 6)
	assert.Len(t, detailKeyMap{keys}.ShortHelp(), 5)
}

func TestKeyMap_FullHelp(t *testing.T) {
	help := keys.FullHelp()

	assert.Len(t, help, 3)
	var total int
	for _, col := range help {
		total += len(col)
	}
	assert.Equal(t, 9, total, "every binding appears once")
}

func TestHandleKeyMsg_Selection(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		key    tea.KeyMsg
		expect int
	}{
		{"down moves", 0, tea.KeyMsg{Type: tea.KeyDown}, 1},
		{"j moves", 2, runeKey("j"), 3},
		{"down stops at last", 5, tea.KeyMsg{Type: tea.KeyDown}, 5},
		{"up moves", 3, tea.KeyMsg{Type: tea.KeyUp}, 2},
		{"k moves", 1, runeKey("k"), 0},
		{"up stops at first", 0, tea.KeyMsg{Type: tea.KeyUp}, 0},
		{"home", 4, tea.KeyMsg{Type: tea.KeyHome}, 0},
		{"end", 1, tea.KeyMsg{Type: tea.KeyEnd}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, Options{})
			m.selected = tt.start

			handled, cmd := m.HandleKeyMsg(tt.key)

			assert.True(t, handled)
			assert.Nil(t, cmd)
			assert.Equal(t, tt.expect, m.selected)
		})
	}
}

func TestHandleKeyMsg_Open(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m.selected = 3

	handled, cmd := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, handled)
	require.NotNil(t, cmd)
	assert.Equal(t, selectMetricMsg{name: "Frequency"}, cmd())
}

func TestHandleKeyMsg_Back(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyBackspace}} {
		t.Run(k.String(), func(t *testing.T) {
			m, _ := newTestModel(t, Options{})
			m, _ = update(t, m, selectMetricMsg{name: "RSRP"})

			m, _ = update(t, m, k)

			assert.Equal(t, ViewList, m.Mode())
		})
	}
}

func TestHandleKeyMsg_BackOnSummaryIsIgnored(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	handled, cmd := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, ViewList, m.Mode())
}

func TestHandleKeyMsg_Refresh(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		m, src := newTestModel(t, Options{})
		first := m.Snapshot().ID

		m, _ = update(t, m, runeKey("r"))

		assert.NotEqual(t, first, m.Snapshot().ID)
		assert.Equal(t, 12, src.Calls)
	})

	t.Run("detail regenerates values only", func(t *testing.T) {
		m, src := newTestModel(t, Options{})
		m, _ = update(t, m, selectMetricMsg{name: "Throughput"})
		summary := m.Snapshot()
		calls := src.Calls

		m, _ = update(t, m, runeKey("r"))

		assert.Equal(t, ViewDetail, m.Mode())
		assert.Equal(t, "Throughput", m.Detail().Name)
		assert.Equal(t, calls+5, src.Calls)
		assert.Equal(t, summary, m.Snapshot())
	})
}

func TestHandleKeyMsg_Help(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = update(t, m, runeKey("?"))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	// Esc closes help without leaving the current screen
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelp)
	assert.Equal(t, ViewList, m.Mode())

	m, _ = update(t, m, runeKey("?"))
	m, _ = update(t, m, runeKey("?"))
	assert.False(t, m.showHelp)
}

func TestHandleKeyMsg_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		t.Run(k.String(), func(t *testing.T) {
			m, _ := newTestModel(t, Options{})

			m, cmd := update(t, m, k)

			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.quitting)
			assert.Empty(t, m.View())
		})
	}
}

func TestHandleKeyMsg_DetailScrollFallsThrough(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	m, _ = update(t, m, selectMetricMsg{name: "Latency"})

	handled, _ := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyDown})

	assert.False(t, handled)
	assert.Equal(t, 0, m.selected)
}
