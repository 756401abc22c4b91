// Package ui is the interactive mission control dashboard.
package ui

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qazaqspace/internal/assistant"
	"qazaqspace/internal/risk"
	"qazaqspace/internal/session"
	"qazaqspace/internal/telemetry"
)

const (
	coarseStep        = 10
	maxPresetKeys     = 9
	minResponseHeight = 3
	gaugeWidth        = 40
	labelWidth        = 20
)

// analysisDoneMsg fires when the cosmetic analysis delay has elapsed. Only the
// message matching the current sequence number is acted on.
type analysisDoneMsg struct{ seq int }

// Options configures the dashboard model.
type Options struct {
	// Asset is the header banner line: the decorative asset summary or the
	// missing-asset warning.
	Asset        string
	AssetMissing bool
	Logger       *slog.Logger
}

// Model is the bubbletea model of the dashboard.
type Model struct {
	sess      *session.Session
	logger    *slog.Logger
	focus     telemetry.Field
	input     textinput.Model
	typing    bool
	vp        viewport.Model
	readout   table.Model
	spinner   spinner.Model
	gauge     progress.Model
	analyzing bool
	seq       int
	response  []string
	notice    string
	warn      bool
	asset     string
	assetWarn bool
	wrap      bool
	help      bool
	width     int
	height    int
}

// New builds the dashboard around an existing session.
func New(s *session.Session, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = queryHint()
	ti.Prompt = "› "
	ti.CharLimit = 0

	cols := []table.Column{
		{Title: "Telemetry", Width: 16},
		{Title: "Value", Width: 14},
	}
	t := table.New(table.WithColumns(cols), table.WithHeight(7))

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m := Model{
		sess:      s,
		logger:    logger,
		focus:     telemetry.Energy,
		input:     ti,
		vp:        viewport.New(0, minResponseHeight),
		readout:   t,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		gauge:     progress.New(progress.WithSolidFill(colorGauge), progress.WithoutPercentage(), progress.WithWidth(gaugeWidth)),
		asset:     opts.Asset,
		assetWarn: opts.AssetMissing,
		wrap:      true,
	}
	m.syncReadout()
	return m
}

// Session returns the session driven by the dashboard.
func (m Model) Session() *session.Session { return m.sess }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		m.layout()
		m.refreshResponse()
	case analysisDoneMsg:
		if !m.analyzing || msg.seq != m.seq {
			return m, nil
		}
		m.analyzing = false
		o := m.sess.Recommend()
		m.setResponse(o.Lines)
		m.setNotice("Analysis complete", false)
		m.layout()
	case spinner.TickMsg:
		if !m.analyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.typing {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		o, err := m.sess.Ask(m.input.Value())
		if errors.Is(err, session.ErrEmptyQuery) {
			m.setNotice(o.Warning, true)
			return m, nil
		}
		m.input.Reset()
		m.setResponse(o.Lines)
		m.setNotice("Intent: "+string(o.Intent), false)
		m.layout()
		return m, nil
	case tea.KeyEsc:
		m.typing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit
	case "tab":
		m.focus = telemetry.Fields[(int(m.focus)+1)%len(telemetry.Fields)]
	case "shift+tab":
		m.focus = telemetry.Fields[(int(m.focus)+len(telemetry.Fields)-1)%len(telemetry.Fields)]
	case "right", "l":
		m.adjust(1)
	case "left", "h":
		m.adjust(-1)
	case "pgup":
		m.adjust(coarseStep)
	case "pgdown":
		m.adjust(-coarseStep)
	case "a":
		return m.startAnalysis()
	case "esc":
		if m.analyzing {
			m.analyzing = false
			m.seq++
			m.setNotice("Analysis cancelled", true)
			m.logger.Debug("analysis cancelled")
		}
	case "/", "i":
		m.typing = true
		return m, m.input.Focus()
	case "?":
		m.help = !m.help
	case "w":
		m.wrap = !m.wrap
		m.refreshResponse()
	case "up", "down", "k", "j", "ctrl+u", "ctrl+d":
		if len(m.response) > 0 {
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.applyPreset(int(key[0] - '1'))
	}
	return m, nil
}

// queryHint names the first keyword of every intent the assistant routes.
func queryHint() string {
	intents := assistant.Intents()
	hints := make([]string, 0, len(intents))
	for _, in := range intents {
		if kw := assistant.Keywords(in); len(kw) > 0 {
			hints = append(hints, kw[0])
		}
	}
	return strings.Join(hints, ", ")
}

func (m *Model) adjust(delta int) {
	m.sess.Adjust(m.focus, delta)
	m.syncReadout()
}

func (m *Model) applyPreset(idx int) {
	presets := m.sess.Presets()
	if idx >= len(presets) || idx >= maxPresetKeys {
		return
	}
	o := m.sess.ApplyScenario(presets[idx])
	m.setNotice(o.Text(), false)
	m.syncReadout()
	m.layout()
}

func (m Model) startAnalysis() (tea.Model, tea.Cmd) {
	if m.analyzing {
		return m, nil
	}
	m.analyzing = true
	m.seq++
	m.setNotice("AI analyzing telemetry...", false)
	m.logger.Debug("analysis started", "delay", m.sess.AnalysisDelay())
	return m, tea.Batch(m.spinner.Tick, analysisCmd(m.seq, m.sess.AnalysisDelay()))
}

func analysisCmd(seq int, delay time.Duration) tea.Cmd {
	done := func(time.Time) tea.Msg { return analysisDoneMsg{seq: seq} }
	if delay <= 0 {
		return func() tea.Msg { return done(time.Time{}) }
	}
	return tea.Tick(delay, done)
}

func (m *Model) setResponse(lines []string) {
	m.response = lines
	m.refreshResponse()
}

func (m *Model) setNotice(text string, warn bool) {
	m.notice = text
	m.warn = warn
}

// layout sizes the response viewport to the space the other sections leave.
func (m *Model) layout() {
	if m.height == 0 {
		return
	}
	m.vp.Height = max(m.height-lipgloss.Height(m.chrome()), minResponseHeight)
}

func (m *Model) syncReadout() {
	s := m.sess.Sample()
	rows := make([]table.Row, 0, len(telemetry.Fields)+3)
	for _, f := range telemetry.Fields {
		rows = append(rows, table.Row{f.Label(), formatValue(s.Get(f), f.Unit())})
	}
	dash := risk.Dashboard(s)
	asst := risk.Assistant(s)
	rows = append(rows, table.Row{"Dashboard risk", formatRisk(dash.Score, dash.Tier)})
	rows = append(rows, table.Row{"Assistant risk", formatRisk(asst.Score, asst.Tier)})
	rows = append(rows, table.Row{"Session", shortID(m.sess.ID())})
	m.readout.SetRows(rows)
}
