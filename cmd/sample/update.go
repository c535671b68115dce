package sample

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sumwatshade/saltwater/internal/chem"
)

// UpdateModel updates the sample form model and returns potential command.
func UpdateModel(m *Model, msg tea.Msg, a chem.Assumptions) (*Model, tea.Cmd) {
	if m == nil {
		m = NewModel(a)
	}
	switch msg := msg.(type) {
	case analysisMsg:
		if msg.Err != nil {
			m.calcErr = msg.Err
		} else {
			m.Record.Result = msg.Detailed.Result
			m.Record.Components = msg.Detailed.Components
			m.Record.ChlorideEstimated = msg.Detailed.ChlorideEstimated
			m.calcErr = nil
			m.calculated = true
		}
		return m, nil
	}

	// If the calculation is in, watch for confirmation keys.
	if m.completed && !m.confirmed && !m.persisted {
		if km, ok := msg.(tea.KeyMsg); ok {
			s := km.String()
			if (s == "y" || s == "enter") && m.calculated { // confirm save
				m.confirmed = true
				return m, nil
			}
			if s == "n" || s == "esc" { // discard and reset
				return NewModel(a), nil
			}
		}
	}
	cmd := m.Update(msg)
	return m, cmd
}
