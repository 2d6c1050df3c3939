package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// progressStep is how many results pass between redraws.
const progressStep = 512

var progressLabel = lipgloss.NewStyle().Faint(true)

type probeProgressMsg struct {
	completed int
	total     int
}

type scanDoneMsg struct{}

type progressModel struct {
	host      string
	bar       progress.Model
	completed int
	total     int
	done      bool
}

func newProgressModel(host string) progressModel {
	return progressModel{
		host: host,
		bar:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case probeProgressMsg:
		m.completed, m.total = msg.completed, msg.total
	case scanDoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.bar.Width = max(10, min(60, msg.Width-40))
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.completed) / float64(m.total)
	}
	label := progressLabel.Render(fmt.Sprintf("%d/%d ports", m.completed, m.total))
	return fmt.Sprintf("Scanning %s %s %s\n", m.host, m.bar.ViewAs(pct), label)
}

// progressReporter drives a progress program on stderr. All methods are
// safe on a nil receiver so callers need not check whether it is enabled.
type progressReporter struct {
	program *tea.Program
	done    chan struct{}
	last    int
}

func newProgressReporter(host string, w io.Writer) *progressReporter {
	p := tea.NewProgram(newProgressModel(host),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	return &progressReporter{program: p, done: make(chan struct{})}
}

func (r *progressReporter) start() {
	if r == nil {
		return
	}
	go func() {
		defer close(r.done)
		_, _ = r.program.Run()
	}()
}

// update is called by the pool collector for every result.
func (r *progressReporter) update(completed, total int) {
	if r == nil {
		return
	}
	if completed != total && completed-r.last < progressStep {
		return
	}
	r.last = completed
	r.program.Send(probeProgressMsg{completed: completed, total: total})
}

func (r *progressReporter) stop() {
	if r == nil {
		return
	}
	r.program.Send(scanDoneMsg{})
	<-r.done
}
