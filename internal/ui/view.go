package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"qazaqspace/internal/risk"
	"qazaqspace/internal/telemetry"
)

const (
	colorGauge  = "#00AFFF"
	colorDanger = lipgloss.Color("9")
	colorOK     = lipgloss.Color("10")
	colorWarn   = lipgloss.Color("11")
	colorMuted  = lipgloss.Color("8")

	defaultWidth = 72
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	warnStyle  = lipgloss.NewStyle().Foreground(colorWarn)
	markStyle  = lipgloss.NewStyle().Foreground(colorDanger)
)

func (m Model) View() string {
	if m.help {
		return m.renderHelp()
	}
	sections := append(m.top(), m.renderResponse())
	sections = append(sections, m.bottom()...)
	return strings.Join(sections, "\n")
}

// chrome is every section except the response pane.
func (m Model) chrome() string {
	return strings.Join(append(m.top(), m.bottom()...), "\n")
}

func (m Model) top() []string {
	divider := m.divider()
	return []string{
		m.renderHeader(),
		divider,
		m.renderSliders(),
		divider,
		lipgloss.JoinHorizontal(lipgloss.Top, m.renderBanner(), "  ", m.readout.View()),
		m.renderPresets(),
		divider,
		"AI Assistant:",
		m.input.View(),
	}
}

func (m Model) bottom() []string {
	divider := m.divider()
	return []string{
		divider,
		m.renderLog(),
		divider,
		m.renderBottom(),
	}
}

func (m Model) divider() string {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	return mutedStyle.Render(strings.Repeat("─", w))
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("🛰 QazaqSpace Mission Control")
	if m.asset == "" {
		return title
	}
	asset := mutedStyle.Render(m.asset)
	if m.assetWarn {
		asset = warnStyle.Render(m.asset)
	}
	return title + "  " + asset
}

func (m Model) renderSliders() string {
	s := m.sess.Sample()
	var b strings.Builder
	for _, f := range telemetry.Fields {
		cursor := "  "
		if f == m.focus && !m.typing {
			cursor = "▶ "
		}
		v := s.GaugeValue(f)
		fmt.Fprintf(&b, "%s%-*s %s %s\n", cursor, labelWidth, f.GaugeLabel(),
			m.gauge.ViewAs(float64(v)/100), formatValue(s.Get(f), f.Unit()))
	}
	b.WriteString(m.renderMarker())
	return b.String()
}

// renderMarker draws the danger threshold under the gauges.
func (m Model) renderMarker() string {
	pos := gaugeWidth * telemetry.GaugeDangerThreshold / 100
	pad := strings.Repeat(" ", 2+labelWidth+1+pos)
	return pad + markStyle.Render(fmt.Sprintf("▲ %d", telemetry.GaugeDangerThreshold))
}

func (m Model) renderBanner() string {
	ev := m.sess.Risk().Risk
	c := tierColor(ev.Tier)
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(c).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Padding(0, 1).
		Render(ev.String())
}

func (m Model) renderPresets() string {
	presets := m.sess.Presets()
	parts := make([]string, 0, len(presets))
	for i, p := range presets {
		if i >= maxPresetKeys {
			break
		}
		parts = append(parts, fmt.Sprintf("[%d] %s", i+1, p.Name))
	}
	line := "Scenarios: " + strings.Join(parts, "  ")
	if m.wrap && m.width > 0 {
		line = wordwrap.String(line, m.width)
	}
	return line
}

func (m Model) renderResponse() string {
	if len(m.response) == 0 {
		return mutedStyle.Render("Press a to analyze telemetry or / to ask the assistant.")
	}
	return m.vp.View()
}

func (m *Model) refreshResponse() {
	text := strings.Join(m.response, "\n")
	if m.wrap && m.vp.Width > 0 {
		text = wordwrap.String(text, m.vp.Width)
	}
	m.vp.SetContent(text)
	m.vp.GotoTop()
}

func (m Model) renderLog() string {
	lines := m.sess.Activity().Lines
	if len(lines) == 0 {
		return "Mission Log:\n" + mutedStyle.Render("  no activity yet")
	}
	return "Mission Log:\n  " + strings.Join(lines, "\n  ")
}

func indicator(on bool) string {
	c := colorDanger
	if on {
		c = colorOK
	}
	return lipgloss.NewStyle().Foreground(c).Render("●")
}

func (m Model) renderBottom() string {
	line := fmt.Sprintf("Focus %s | Analyze %s | Input %s | Wrap %s | Help %s",
		m.focus.Label(), indicator(m.analyzing), indicator(m.typing), indicator(m.wrap), indicator(m.help))
	notice := m.notice
	if m.analyzing {
		notice = m.spinner.View() + " " + notice
	}
	if notice == "" {
		return line
	}
	if m.warn {
		notice = warnStyle.Render(notice)
	}
	return notice + "\n" + line
}

func (m Model) renderHelp() string {
	lines := []string{
		"Key Bindings:",
		" q           quit",
		" tab         focus next slider (shift+tab previous)",
		" ←/→ h/l     adjust focused slider by 1",
		" pgup/pgdown adjust focused slider by 10",
		" 1-9         apply scenario preset",
		" a           let AI analyze telemetry",
		" esc         cancel analysis / leave the query input",
		" / or i      ask the assistant, enter to submit",
		"             topics: " + queryHint(),
		" ↑/↓ k/j     scroll the response (ctrl+u/ctrl+d half page)",
		" w           toggle wrap",
		" ?           toggle this help view",
	}
	return strings.Join(lines, "\n")
}

func tierColor(t risk.Tier) lipgloss.Color {
	switch t {
	case risk.High:
		return colorDanger
	case risk.Medium:
		return colorWarn
	default:
		return colorOK
	}
}

func formatValue(v int, unit string) string {
	return fmt.Sprintf("%d%s", v, unit)
}

func formatRisk(score int, t risk.Tier) string {
	return fmt.Sprintf("%d/100 %s", score, t)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
