package sample

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sampleTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
var faint = lipgloss.NewStyle().Faint(true)
var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
var highlight = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)

// View renders the huh form state and, once complete, the computed result
// with a save confirmation prompt.
func View(m *Model) string {
	if m == nil {
		return sampleTitleStyle.Render("New Sample") + "\n" + faint.Render("(initializing)")
	}
	b := &strings.Builder{}
	fmt.Fprintln(b, sampleTitleStyle.Render("New Sample"))

	if !m.completed {
		fmt.Fprintln(b, faint.Render("Concentrations in mg/L; leave optional fields blank."))
		if m.form != nil {
			fmt.Fprintln(b, m.form.View())
		}
		return b.String()
	}

	if m.calcErr != nil {
		fmt.Fprintln(b, errStyle.Render("Calculation error: "+m.calcErr.Error()))
		fmt.Fprintln(b, highlight.Render("Press 'n' to edit the sample and try again."))
		return b.String()
	}
	if !m.calculated {
		fmt.Fprintln(b, faint.Render("Calculating..."))
		return b.String()
	}

	r := m.Record.Result
	fmt.Fprintln(b)
	fmt.Fprintln(b, highlight.Render(m.Record.Label))
	fmt.Fprintf(b, "SP: %.4f   SA: %.4f g/kg\n", r.SP, r.SA)
	fmt.Fprintf(b, "Density: %.3f kg/m^3\n", r.Density)
	fmt.Fprintf(b, "SG 20/20: %.5f   SG 25/25: %.5f\n", r.SG2020, r.SG2525)
	if m.Record.ChlorideEstimated {
		fmt.Fprintln(b, faint.Render("Chloride was estimated from the other ions."))
	}
	if !r.Converged {
		fmt.Fprintln(b, errStyle.Render(fmt.Sprintf("Solver did not converge after %d iterations.", r.Iterations)))
	}
	if !m.persisted {
		if !m.confirmed {
			fmt.Fprintln(b, highlight.Render("\nPress 'y' to save to the logbook or 'n' to discard & start over."))
		} else {
			fmt.Fprintln(b, "\nConfirmed. Saving record...")
		}
	}
	return b.String()
}
