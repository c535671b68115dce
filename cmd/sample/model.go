package sample

import (
	"errors"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/sumwatshade/saltwater/internal/chem"
	"github.com/sumwatshade/saltwater/internal/salinity"
)

// Record is a single saved analysis: the measured inputs, the computed
// result and the component table for the detail view.
// ID is assigned by the logbook service when the record is saved.
type Record struct {
	ID                string                  `json:"id"`
	Label             string                  `json:"label"`
	Inputs            chem.Sample             `json:"inputs"`
	Result            salinity.Result         `json:"result"`
	Components        []salinity.ComponentRow `json:"components,omitempty"`
	ChlorideEstimated bool                    `json:"chloride_estimated"`
	Comments          string                  `json:"comments"`
	CreatedAt         string                  `json:"created_at"`
}

// Model drives the new-sample form with huh and runs the calculation once
// the form completes.
type Model struct {
	Record      Record
	form        *huh.Form
	assumptions chem.Assumptions
	calcErr     error
	calculated  bool

	labelStr    string
	naStr       string
	caStr       string
	mgStr       string
	kStr        string
	srStr       string
	brStr       string
	sStr        string
	bStr        string
	clStr       string
	fStr        string
	alkStr      string
	commentsStr string

	persisted bool
	completed bool // form has been completed
	confirmed bool // user confirmed save
}

func NewModel(a chem.Assumptions) *Model {
	m := &Model{assumptions: a}
	m.buildForm()
	return m
}

func (m *Model) buildForm() {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Label").Value(&m.labelStr),
			huh.NewInput().Title("Na (mg/L)").Validate(validFloat).Value(&m.naStr),
			huh.NewInput().Title("Ca (mg/L)").Validate(validFloat).Value(&m.caStr),
			huh.NewInput().Title("Mg (mg/L)").Validate(validFloat).Value(&m.mgStr),
			huh.NewInput().Title("K (mg/L)").Validate(validFloat).Value(&m.kStr),
			huh.NewInput().Title("Sr (mg/L)").Validate(validFloat).Value(&m.srStr),
			huh.NewInput().Title("Br (mg/L)").Validate(validFloat).Value(&m.brStr),
		),
		huh.NewGroup(
			huh.NewInput().Title("S (mg/L)").Validate(validFloat).Value(&m.sStr),
			huh.NewInput().Title("B (mg/L)").Validate(validFloat).Value(&m.bStr),
			huh.NewInput().Title("Cl (mg/L, blank = estimate)").Validate(validFloat).Value(&m.clStr),
			huh.NewInput().Title("F (mg/L, blank = default)").Validate(validFloat).Value(&m.fStr),
			huh.NewInput().Title("Alkalinity (dKH, blank = assumed)").Validate(validFloat).Value(&m.alkStr),
			huh.NewText().Title("Comments").Value(&m.commentsStr),
		),
	).WithShowHelp(false)
}

// validFloat allows blank (optional) or any parsable number.
func validFloat(v string) error {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

func parseFloat(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

// parseOptional returns nil for blank input so downstream code can tell
// "not measured" apart from zero.
func parseOptional(v string) *float64 {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	f := parseFloat(v)
	return &f
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m == nil {
		return nil
	}
	if m.form == nil {
		m.buildForm()
	}
	var cmd tea.Cmd
	if updated, ucmd := m.form.Update(msg); ucmd != nil {
		cmd = ucmd
		if f, ok := updated.(*huh.Form); ok {
			m.form = f
		}
	}
	if m.form.State == huh.StateCompleted && !m.completed {
		m.completed = true
		m.Record.Label = strings.TrimSpace(m.labelStr)
		if m.Record.Label == "" {
			m.Record.Label = "Sample " + time.Now().Format("2006-01-02 15:04")
		}
		m.Record.Comments = m.commentsStr
		m.Record.Inputs = chem.Sample{
			Na:     parseFloat(m.naStr),
			Ca:     parseFloat(m.caStr),
			Mg:     parseFloat(m.mgStr),
			K:      parseFloat(m.kStr),
			Sr:     parseFloat(m.srStr),
			Br:     parseFloat(m.brStr),
			S:      parseFloat(m.sStr),
			B:      parseFloat(m.bStr),
			Cl:     parseOptional(m.clStr),
			F:      parseOptional(m.fStr),
			AlkDKH: parseOptional(m.alkStr),
		}
		return tea.Batch(cmd, m.calculateCmd())
	}
	return cmd
}

// calculateCmd runs the salinity calculation off the update loop.
func (m *Model) calculateCmd() tea.Cmd {
	inputs := m.Record.Inputs
	a := m.assumptions
	a.ReturnComponents = true
	return func() tea.Msg {
		det, err := salinity.CalculateDetailed(inputs, a)
		return analysisMsg{Detailed: det, Err: err}
	}
}

// InForm reports whether keystrokes currently belong to the form, so the
// outer model knows not to treat them as navigation.
func (m *Model) InForm() bool {
	return m != nil && !m.completed
}

// IsDoneAndUnpersisted returns true only after user confirmed save.
func (m *Model) IsDoneAndUnpersisted() bool {
	return m != nil && m.completed && m.calculated && m.confirmed && !m.persisted
}
func (m *Model) MarkPersisted() {
	if m != nil {
		m.persisted = true
	}
}

type analysisMsg struct {
	Detailed salinity.Detailed
	Err      error
}
