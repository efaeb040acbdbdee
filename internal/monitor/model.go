package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/netmon/internal/logger"
	"github.com/rileyhilliard/netmon/internal/metrics"
)

// Options configures a dashboard Model. Zero values pick the defaults.
type Options struct {
	// DetailSamples is how many values a detail view generates (default 5).
	DetailSamples int
	// HistorySize is how many summary values each card keeps (default 60).
	HistorySize int
	// Refresh regenerates the summary on a timer. Zero disables the timer.
	Refresh time.Duration
	// Logger receives debug output. Defaults to logger.Default().
	Logger logger.Logger
}

// Detail is the state of an open detail view.
type Detail struct {
	Name   string
	Spec   metrics.Spec // zero value when Known is false
	Known  bool
	Values []float64
	Err    error
}

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	gen      *metrics.Generator
	opts     Options
	log      logger.Logger
	snapshot metrics.Snapshot
	history  *History
	selected int
	viewMode ViewMode
	detail   *Detail
	width    int
	height   int
	showHelp bool
	quitting bool
	help     help.Model

	// Detail view viewport for scrollable content
	detailViewport viewport.Model
	viewportReady  bool
}

// refreshTickMsg signals a timed summary refresh.
type refreshTickMsg time.Time

// selectMetricMsg asks the dashboard to open the detail for a metric.
type selectMetricMsg struct {
	name string
}

// backMsg asks the dashboard to return to the summary.
type backMsg struct{}

// SelectMetric returns a command that opens the detail view for name.
func SelectMetric(name string) tea.Cmd {
	return func() tea.Msg {
		return selectMetricMsg{name: name}
	}
}

// Back returns a command that leaves the detail view.
func Back() tea.Cmd {
	return func() tea.Msg {
		return backMsg{}
	}
}

// NewModel creates a dashboard that draws from gen and takes its first
// snapshot immediately.
func NewModel(gen *metrics.Generator, opts Options) Model {
	if opts.DetailSamples <= 0 {
		opts.DetailSamples = metrics.DefaultRecentSamples
	}
	if opts.HistorySize <= 0 {
		opts.HistorySize = DefaultHistorySize
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}

	m := Model{
		gen:     gen,
		opts:    opts,
		log:     opts.Logger,
		history: NewHistory(opts.HistorySize),
		help:    help.New(),
	}
	m.refresh()
	return m
}

// Init starts the refresh timer when one is configured.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}
		if m.viewMode == ViewDetail && m.viewportReady {
			var vpCmd tea.Cmd
			m.detailViewport, vpCmd = m.detailViewport.Update(msg)
			return m, vpCmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Reserve space for the detail header and footer
		headerHeight := 3
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.detailViewport = viewport.New(m.width, viewportHeight)
			m.detailViewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.detailViewport.Width = m.width
			m.detailViewport.Height = viewportHeight
		}

		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case refreshTickMsg:
		// Leave the summary alone while a detail is open.
		if m.viewMode == ViewList {
			m.refresh()
		}
		return m, m.tickCmd()

	case selectMetricMsg:
		m.openDetail(msg.name)

	case backMsg:
		m.closeDetail()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	if m.viewMode == ViewDetail {
		return m.renderDetailView()
	}
	return m.renderSummary()
}

// tickCmd returns a command that fires after the refresh interval, or nil
// when auto-refresh is off.
func (m Model) tickCmd() tea.Cmd {
	if m.opts.Refresh <= 0 {
		return nil
	}
	return tea.Tick(m.opts.Refresh, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// refresh replaces the summary snapshot and records it in history.
func (m *Model) refresh() {
	m.snapshot = m.gen.Snapshot()
	m.history.Push(m.snapshot)
	if m.selected >= len(m.snapshot.Readings) {
		m.selected = 0
	}
	m.log.Debug("snapshot %s: %d/%d within acceptable",
		m.snapshot.ID, m.snapshot.Within(), len(m.snapshot.Readings))
}

// openDetail generates fresh values for name and switches to the detail view.
func (m *Model) openDetail(name string) {
	values, err := m.gen.Recent(name, m.opts.DetailSamples)
	spec, known := metrics.Lookup(name)

	m.detail = &Detail{
		Name:   name,
		Spec:   spec,
		Known:  known,
		Values: values,
		Err:    err,
	}
	m.viewMode = ViewDetail
	m.showHelp = false

	if err != nil {
		m.log.Warn("detail for %q: unknown metric, showing zeros", name)
	} else {
		m.log.Debug("detail for %q: %d values", name, len(values))
	}

	if m.viewportReady {
		m.detailViewport.GotoTop()
	}
	m.updateDetailViewportContent()
}

// closeDetail returns to the summary. The snapshot is left as it was.
func (m *Model) closeDetail() {
	m.viewMode = ViewList
	m.detail = nil
}

// updateDetailViewportContent re-renders the scrollable detail body.
func (m *Model) updateDetailViewportContent() {
	if !m.viewportReady || m.detail == nil {
		return
	}
	m.detailViewport.SetContent(m.renderDetailBody())
}

// Snapshot returns the summary snapshot currently on screen.
func (m Model) Snapshot() metrics.Snapshot {
	snap := m.snapshot
	snap.Readings = append([]metrics.Reading(nil), m.snapshot.Readings...)
	return snap
}

// SelectedMetric returns the name of the highlighted summary card.
func (m Model) SelectedMetric() string {
	if m.selected >= 0 && m.selected < len(m.snapshot.Readings) {
		return m.snapshot.Readings[m.selected].Name
	}
	return ""
}

// Mode returns the current view mode.
func (m Model) Mode() ViewMode {
	return m.viewMode
}

// Detail returns the open detail, or nil on the summary screen.
func (m Model) Detail() *Detail {
	if m.detail == nil {
		return nil
	}
	d := *m.detail
	d.Values = append([]float64(nil), m.detail.Values...)
	return &d
}

// History returns the summary history.
func (m Model) History() *History {
	return m.history
}
