package cmd

import (
	"strings"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/sumwatshade/saltwater/cmd/logbook"
	"github.com/sumwatshade/saltwater/cmd/result"
	"github.com/sumwatshade/saltwater/cmd/sample"
)

type model struct {
	rightView string // "logbook" or "sample"
	latest    *sample.Record
	logbook   *logbook.Logbook
	draft     *sample.Model
	svc       logbook.Service
	width     int
	height    int
	// help / key bindings
	keys keyMap
	help bhelp.Model
}

func initialModel() model {
	svc, err := logbook.NewFileService(viper.GetString("logbook.dir"))
	if err != nil {
		log.Warn("logbook storage unavailable; records will not persist", "err", err)
		svc = nil
	}
	lb := logbook.NewLogbook(svc)
	return model{
		rightView: "logbook",
		latest:    lb.Latest(),
		logbook:   lb,
		svc:       svc,
		keys:      keys,
		help:      bhelp.New(),
	}
}

func (m model) Init() tea.Cmd {
	// Just return `nil`, which means "no I/O right now, please."
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		// While the sample form is active, letters belong to the form;
		// only quit stays global.
		inForm := m.rightView == "sample" && m.draft.InForm()
		switch {
		case key.Matches(msg, m.keys.Quit) && !inForm:
			return m, tea.Quit
		case key.Matches(msg, m.keys.Logbook) && !inForm:
			m.rightView = "logbook"
		case key.Matches(msg, m.keys.Sample) && !inForm:
			if m.rightView != "sample" {
				m.rightView = "sample"
				m.draft = sample.NewModel(configAssumptions())
				return m, nil
			}
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	// propagate updates to active right pane
	if m.rightView == "sample" {
		m.draft, cmd = sample.UpdateModel(m.draft, msg, configAssumptions())
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if m.draft.IsDoneAndUnpersisted() {
			m.persistDraft()
		}
	}
	if m.rightView == "logbook" && m.logbook != nil {
		cmd = m.logbook.Update(msg, rightPaneWidth(m.width), m.height)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// persistDraft saves the confirmed draft to the logbook and makes it the
// latest analysis shown on the left.
func (m *model) persistDraft() {
	rec := m.draft.Record
	if m.svc != nil {
		saved, err := m.svc.Create(rec)
		if err != nil {
			log.Error("could not save logbook record", "err", err)
		} else {
			rec = saved
		}
	}
	m.draft.MarkPersisted()
	m.logbook.AddRecord(rec)
	m.latest = &rec
	m.draft = nil
	m.rightView = "logbook"
}

func (m model) View() string {
	left := result.View(m.latest)
	var right string
	switch m.rightView {
	case "logbook":
		if m.logbook != nil {
			right = m.logbook.View()
		} else {
			right = "logbook unavailable"
		}
	case "sample":
		right = sample.View(m.draft)
	default:
		right = "unknown"
	}

	// determine split sizes (30% left min width 24)
	leftW := max(24, int(float64(m.width)*0.3))
	rightW := max(20, m.width-leftW-1)
	leftRendered := lipgloss.NewStyle().Width(leftW).Render(contentStyle.Render(left))
	rightRendered := lipgloss.NewStyle().Width(rightW).Render(contentStyle.Render(right))
	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, dividerStyle.Render("│"), rightRendered)

	header := headerStyle.Render(appTitle) + " " + tabs(m.rightView, max(0, m.width-10))
	sep := dividerStyle.Render(lipgloss.NewStyle().Width(m.width).Render(strings.Repeat("─", max(0, m.width))))
	foot := m.help.View(m.keys)
	layout := lipgloss.JoinVertical(lipgloss.Left, header, sep, columns, sep, foot)
	if m.width > 0 {
		layout = lipgloss.NewStyle().Width(m.width).Render(layout)
	}
	return layout
}

// small helper until Go 1.21+ min/max generics maybe
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// helper to compute right pane width for updates
func rightPaneWidth(total int) int {
	leftW := max(24, int(float64(total)*0.3))
	return max(20, total-leftW-1)
}
