package monitor

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/netmon/internal/errors"
	"github.com/rileyhilliard/netmon/internal/logger"
	"github.com/rileyhilliard/netmon/internal/metrics"
	metricstest "github.com/rileyhilliard/netmon/internal/metrics/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestModel builds a model over a fixed midpoint source, so every reading
// sits inside its acceptable range.
func newTestModel(t *testing.T, opts Options) (Model, *metricstest.Sequence) {
	t.Helper()
	src := metricstest.NewSequence(0.5)
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	return NewModel(metrics.NewGenerator(src), opts), src
}

// update feeds msg to the model and follows navigation commands the way the
// Bubble Tea runtime would.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	m, ok := next.(Model)
	require.True(t, ok)

	if cmd != nil {
		switch out := cmd().(type) {
		case selectMetricMsg, backMsg:
			return update(t, m, out)
		}
	}
	return m, cmd
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	m, src := newTestModel(t, Options{})

	assert.Equal(t, ViewList, m.Mode())
	assert.Nil(t, m.Detail())
	assert.Equal(t, "Signal Strength", m.SelectedMetric())

	snap := m.Snapshot()
	require.Len(t, snap.Readings, len(metrics.Kinds()))
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, 6, snap.Within())

	// One draw per metric for the first snapshot
	assert.Equal(t, 6, src.Calls)

	// Defaults applied
	assert.Equal(t, metrics.DefaultRecentSamples, m.opts.DetailSamples)
	assert.Equal(t, DefaultHistorySize, m.History().Size())
	assert.Equal(t, 1, m.History().Count("Latency"))
}

func TestModel_Init(t *testing.T) {
	t.Run("no refresh interval", func(t *testing.T) {
		m, _ := newTestModel(t, Options{})
		assert.Nil(t, m.Init())
	})

	t.Run("refresh interval schedules a tick", func(t *testing.T) {
		m, _ := newTestModel(t, Options{Refresh: time.Second})
		assert.NotNil(t, m.Init())
	})
}

func TestModel_SelectMetric(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = update(t, m, selectMetricMsg{name: "Latency"})

	assert.Equal(t, ViewDetail, m.Mode())
	d := m.Detail()
	require.NotNil(t, d)
	assert.Equal(t, "Latency", d.Name)
	assert.True(t, d.Known)
	assert.Equal(t, metrics.Latency, d.Spec.Kind)
	assert.NoError(t, d.Err)
	assert.Equal(t, []float64{50, 50, 50, 50, 50}, d.Values)
}

func TestModel_SelectMetricCommand(t *testing.T) {
	msg := SelectMetric("RSRP")()
	assert.Equal(t, selectMetricMsg{name: "RSRP"}, msg)

	assert.Equal(t, backMsg{}, Back()())
}

func TestModel_DetailSampleCount(t *testing.T) {
	m, _ := newTestModel(t, Options{DetailSamples: 8})

	m, _ = update(t, m, selectMetricMsg{name: "rsrq"})

	require.NotNil(t, m.Detail())
	assert.Len(t, m.Detail().Values, 8)
}

func TestModel_NavigationPreservesSummary(t *testing.T) {
	gen := metrics.NewGenerator(metrics.NewSource(42))
	m := NewModel(gen, Options{Logger: logger.Noop()})
	before := m.Snapshot()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ViewDetail, m.Mode())
	assert.Equal(t, "Latency", m.Detail().Name)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, ViewList, m.Mode())
	assert.Nil(t, m.Detail())

	assert.Equal(t, before, m.Snapshot())
	assert.Equal(t, "Latency", m.SelectedMetric(), "selection survives the round trip")
}

func TestModel_UnknownMetric(t *testing.T) {
	m, src := newTestModel(t, Options{})
	callsBefore := src.Calls

	m, _ = update(t, m, selectMetricMsg{name: "Bandwidth"})

	require.Equal(t, ViewDetail, m.Mode())
	d := m.Detail()
	require.NotNil(t, d)
	assert.False(t, d.Known)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, d.Values)
	assert.True(t, errors.IsCode(d.Err, errors.ErrMetric))
	assert.Equal(t, callsBefore, src.Calls, "no values are drawn for an unknown metric")

	view := m.View()
	assert.Contains(t, view, "Unknown metric 'Bandwidth'")
	assert.Contains(t, view, "Pick one of:")
	assert.Contains(t, view, "0.00")
}

func TestModel_UnknownMetricLogsWarning(t *testing.T) {
	buf := logger.NewBufferLogger()
	m, _ := newTestModel(t, Options{Logger: buf})

	_, _ = update(t, m, selectMetricMsg{name: "jitter"})

	assert.True(t, buf.HasLevel("warn"))
}

func TestModel_RefreshTick(t *testing.T) {
	t.Run("summary regenerates", func(t *testing.T) {
		m, src := newTestModel(t, Options{Refresh: time.Millisecond})
		first := m.Snapshot().ID

		m, cmd := update(t, m, refreshTickMsg(time.Now()))

		assert.NotEqual(t, first, m.Snapshot().ID)
		assert.Equal(t, 12, src.Calls)
		assert.Equal(t, 2, m.History().Count("RSRP"))
		assert.NotNil(t, cmd, "next tick is scheduled")
	})

	t.Run("skipped while detail is open", func(t *testing.T) {
		m, _ := newTestModel(t, Options{Refresh: time.Millisecond})
		m, _ = update(t, m, selectMetricMsg{name: "Frequency"})
		before := m.Snapshot()

		m, cmd := update(t, m, refreshTickMsg(time.Now()))

		assert.Equal(t, before, m.Snapshot())
		assert.Equal(t, 1, m.History().Count("RSRP"))
		assert.NotNil(t, cmd, "ticking continues")
	})
}

func TestModel_WindowSize(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 40, m.height)
	assert.True(t, m.viewportReady)
	assert.Equal(t, 35, m.detailViewport.Height)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 3})
	assert.Equal(t, 1, m.detailViewport.Height)
	assert.Equal(t, 60, m.detailViewport.Width)
}

func TestModel_SelectedMetric(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m.selected = 5
	assert.Equal(t, "RSRQ", m.SelectedMetric())

	m.selected = 99
	assert.Equal(t, "", m.SelectedMetric())

	m.selected = -1
	assert.Equal(t, "", m.SelectedMetric())
}

func TestModel_SnapshotIsCopy(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	snap := m.Snapshot()
	snap.Readings[0].Value = 999

	assert.NotEqual(t, 999.0, m.Snapshot().Readings[0].Value)
}

func TestViewMode_String(t *testing.T) {
	assert.Equal(t, "list", ViewList.String())
	assert.Equal(t, "detail", ViewDetail.String())
}
