package sim

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"failpolicy-sim/internal/policy"
	"failpolicy-sim/internal/record"
)

// teaProgram abstracts bubbletea.Program for testing.
type teaProgram interface {
	Send(tea.Msg)
}

// outcomeMsg carries a formatted outcome line plus its row data.
type outcomeMsg struct {
	line string
	row  record.OutcomeRow
}

// reportMsg carries a completed run report.
type reportMsg struct{ record.ReportRow }

const maxLogLines = 1000

// TUIWriter renders outcomes and run reports using a bubbletea TUI.
type TUIWriter struct {
	program    teaProgram
	done       chan struct{}
	sendSignal atomic.Bool
}

// NewTUIWriter starts a bubbletea program and returns a TUIWriter.
func NewTUIWriter(scenario string) *TUIWriter {
	w := &TUIWriter{done: make(chan struct{})}
	w.sendSignal.Store(true)
	m := newTUIModel(scenario)
	p := tea.NewProgram(m, tea.WithAltScreen())
	w.program = p
	go func() {
		_, _ = p.Run()
		close(w.done)
		if w.sendSignal.Load() {
			if proc, err := os.FindProcess(os.Getpid()); err == nil {
				_ = proc.Signal(os.Interrupt)
			}
		}
	}()
	return w
}

// Write implements OutcomeWriter.
func (w *TUIWriter) Write(row record.OutcomeRow) error {
	kindColor := colorGreen
	switch row.Kind {
	case string(policy.KindRecoveredError):
		kindColor = colorYellow
	case string(policy.KindFallbackUsed):
		kindColor = colorMagenta
	case string(policy.KindFatalAbort):
		kindColor = colorRed
	case record.KindSkipped:
		kindColor = colorGray
	}

	line := fmt.Sprintf("%s[%s]%s %spolicy=%s%s %s#%d%s %s%s%s",
		colorGray, row.Timestamp.Format(time.RFC3339), colorReset,
		colorBlue, row.Policy, colorReset,
		colorCyan, row.Index, colorReset,
		kindColor, row.Kind, colorReset,
	)
	if row.Detail != "" {
		line += fmt.Sprintf(" %s%s%s", colorGray, row.Detail, colorReset)
	}
	w.program.Send(outcomeMsg{line: line, row: row})
	return nil
}

// WriteBatch outputs multiple outcome rows.
func (w *TUIWriter) WriteBatch(rows []record.OutcomeRow) error {
	for _, r := range rows {
		_ = w.Write(r)
	}
	return nil
}

// WriteReport implements ReportWriter.
func (w *TUIWriter) WriteReport(rep record.ReportRow) error {
	w.program.Send(reportMsg{ReportRow: rep})
	return nil
}

// Close shuts down the TUI program and waits for cleanup.
func (w *TUIWriter) Close() error {
	w.sendSignal.Store(false)
	if w.program != nil {
		w.program.Send(tea.Quit())
	}
	if w.done != nil {
		<-w.done
	}
	return nil
}

type tuiModel struct {
	scenario     string
	table        table.Model
	vp           viewport.Model
	logs         []string
	reports      []record.ReportRow
	kindCounts   map[string]int
	wrap         bool
	autoscroll   bool
	showReports  bool
	help         bool
	header       string
	headerHeight int
	height       int
}

func newTUIModel(scenario string) tuiModel {
	cols := []table.Column{
		{Title: "Policy", Width: 10},
		{Title: "OK", Width: 5},
		{Title: "Failed", Width: 7},
		{Title: "Avail%", Width: 7},
		{Title: "Abort", Width: 6},
		{Title: "Elapsed", Width: 12},
	}
	t := table.New(table.WithColumns(cols), table.WithHeight(2))
	vp := viewport.New(0, 0)
	return tuiModel{
		scenario:    scenario,
		table:       t,
		vp:          vp,
		kindCounts:  make(map[string]int),
		autoscroll:  true,
		showReports: true,
	}
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width)
		m.vp.Width = msg.Width
		m.height = msg.Height
		m.header = m.renderHeader()
		m.headerHeight = lipgloss.Height(m.header)
		m.updateViewportHeight()
		m.refreshViewport()
	case tea.KeyMsg:
		if m.help {
			switch msg.String() {
			case "?", "h", "esc":
				m.help = false
				m.updateViewportHeight()
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "w":
			m.wrap = !m.wrap
			m.refreshViewport()
			return m, nil
		case "s":
			m.autoscroll = !m.autoscroll
			if m.autoscroll {
				m.vp.GotoBottom()
			}
			return m, nil
		case "t":
			m.showReports = !m.showReports
			m.updateViewportHeight()
			return m, nil
		case "h", "?":
			m.help = !m.help
			m.updateViewportHeight()
			return m, nil
		}
		if !m.autoscroll {
			switch msg.String() {
			case "j", "down":
				m.vp.LineDown(1)
			case "k", "up":
				m.vp.LineUp(1)
			case "pgdown", "ctrl+n":
				m.vp.LineDown(10)
			case "pgup", "ctrl+p":
				m.vp.LineUp(10)
			default:
				var cmd tea.Cmd
				m.vp, cmd = m.vp.Update(msg)
				return m, cmd
			}
		}
		return m, nil
	case outcomeMsg:
		m.logs = append(m.logs, msg.line)
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}
		m.kindCounts[msg.row.Kind]++
		m.header = m.renderHeader()
		m.refreshViewport()
	case reportMsg:
		m.reports = append(m.reports, msg.ReportRow)
		m.refreshReportTable()
		m.updateViewportHeight()
	}
	return m, nil
}

func (m *tuiModel) refreshReportTable() {
	rows := make([]table.Row, 0, len(m.reports))
	for _, r := range m.reports {
		abort := "-"
		if r.AbortIndex != nil {
			abort = fmt.Sprintf("%d", *r.AbortIndex)
		}
		rows = append(rows, table.Row{
			r.Policy,
			fmt.Sprintf("%d", r.Successful),
			fmt.Sprintf("%d", r.Failed),
			fmt.Sprintf("%.1f", r.AvailabilityPct),
			abort,
			r.Elapsed.String(),
		})
	}
	m.table.SetRows(rows)
	m.table.SetHeight(len(rows) + 1)
}

func (m *tuiModel) updateViewportHeight() {
	bottomHeight := lipgloss.Height(m.renderBottom())
	reportHeight := 0
	if m.showReports && len(m.reports) > 0 {
		reportHeight = lipgloss.Height(m.table.View()) + 1
	}
	h := m.height - m.headerHeight - bottomHeight - reportHeight - 3
	if h < 0 {
		h = 0
	}
	m.vp.Height = h
	if m.autoscroll {
		m.vp.GotoBottom()
	}
}

func (m *tuiModel) refreshViewport() {
	var lines []string
	for _, l := range m.logs {
		if m.wrap {
			lines = append(lines, wordwrap.String(l, m.vp.Width))
		} else {
			lines = append(lines, l)
		}
	}
	m.vp.SetContent(strings.Join(lines, "\n"))
	if m.autoscroll {
		m.vp.GotoBottom()
	}
}

func (m tuiModel) View() string {
	if m.help {
		return m.renderHelp()
	}
	divider := strings.Repeat("─", m.vp.Width)
	sections := []string{
		m.header,
		divider,
		m.vp.View(),
	}
	if m.showReports && len(m.reports) > 0 {
		sections = append(sections, divider, "Run Reports:", m.table.View())
	}
	sections = append(sections, divider, m.renderBottom())
	return strings.Join(sections, "\n")
}

func (m tuiModel) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("failpolicy-sim ▸ scenario=%s", m.scenario))
	counts := fmt.Sprintf("%sprocessed=%d%s %srecovered=%d%s %sfallback=%d%s %sfatal=%d%s %sskipped=%d%s",
		colorGreen, m.kindCounts[string(policy.KindProcessed)], colorReset,
		colorYellow, m.kindCounts[string(policy.KindRecoveredError)], colorReset,
		colorMagenta, m.kindCounts[string(policy.KindFallbackUsed)], colorReset,
		colorRed, m.kindCounts[string(policy.KindFatalAbort)], colorReset,
		colorGray, m.kindCounts[record.KindSkipped], colorReset)
	return title + "\n" + counts
}

func (m tuiModel) renderBottom() string {
	wrapColor := lipgloss.Color("9")
	if m.wrap {
		wrapColor = lipgloss.Color("10")
	}
	scrollColor := lipgloss.Color("10")
	if !m.autoscroll {
		scrollColor = lipgloss.Color("9")
	}
	reportsColor := lipgloss.Color("10")
	if !m.showReports {
		reportsColor = lipgloss.Color("9")
	}
	wrapIndicator := lipgloss.NewStyle().Foreground(wrapColor).Render("●")
	scrollIndicator := lipgloss.NewStyle().Foreground(scrollColor).Render("●")
	reportsIndicator := lipgloss.NewStyle().Foreground(reportsColor).Render("●")
	return fmt.Sprintf("Wrap %s | Scroll %s | Reports %s | h help | q quit",
		wrapIndicator, scrollIndicator, reportsIndicator)
}

func (m tuiModel) renderHelp() string {
	lines := []string{
		"Key Bindings:",
		" q  quit",
		" w  toggle line wrap",
		" s  toggle auto-scroll",
		" t  toggle run report table",
		" h/? toggle this help view",
		"",
		"When auto-scroll is disabled:",
		" j/k or up/down    scroll one line",
		" pgdown/pgup       scroll a page",
	}
	return strings.Join(lines, "\n")
}
