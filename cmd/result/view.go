package result

import (
	"fmt"
	"sort"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/sumwatshade/saltwater/cmd/sample"
	"github.com/sumwatshade/saltwater/internal/salinity"
)

var resultTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
var resultInfoStyle = lipgloss.NewStyle().Faint(true)
var resultWarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red

var barStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("87")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("123")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
}

// maxBars keeps the chart to the dominant ions so labels stay readable in a
// narrow pane.
const maxBars = 6

// View renders the most recent analysis: the salinity numbers plus a bar
// chart of the dominant ionic components.
func View(rec *sample.Record) string {
	b := &strings.Builder{}
	b.WriteString(resultTitleStyle.Render("Latest Analysis"))
	b.WriteString("\n")
	if rec == nil {
		b.WriteString(resultInfoStyle.Render("No analysis yet. Press 's' to enter a sample."))
		return b.String()
	}
	if rec.Label != "" {
		b.WriteString(rec.Label)
		b.WriteString("\n")
	}
	r := rec.Result
	fmt.Fprintf(b, "SP: %.4f\n", r.SP)
	fmt.Fprintf(b, "SA: %.4f g/kg\n", r.SA)
	fmt.Fprintf(b, "Density: %.3f kg/m^3\n", r.Density)
	fmt.Fprintf(b, "SG 20/20: %.5f  SG 25/25: %.5f\n", r.SG2020, r.SG2525)
	if rec.ChlorideEstimated {
		b.WriteString(resultInfoStyle.Render("Cl- estimated from the other ions"))
		b.WriteString("\n")
	}
	if !r.Converged {
		b.WriteString(resultWarnStyle.Render(fmt.Sprintf("solver did not converge (%d iterations)", r.Iterations)))
		b.WriteString("\n")
	}
	if chart := componentChart(rec.Components); chart != "" {
		b.WriteString("\nComposition (mg/L):\n")
		b.WriteString(chart)
	}
	return b.String()
}

// componentChart draws the dominant components as a bar chart. Returns ""
// when there is nothing worth charting.
func componentChart(rows []salinity.ComponentRow) string {
	major := make([]salinity.ComponentRow, 0, len(rows))
	for _, row := range rows {
		if row.MgPerL > 0 {
			major = append(major, row)
		}
	}
	if len(major) < 2 {
		return ""
	}
	sort.Slice(major, func(i, j int) bool { return major[i].MgPerL > major[j].MgPerL })
	if len(major) > maxBars {
		major = major[:maxBars]
	}

	width := 42
	height := 10
	bc := barchart.New(width, height)
	for i, row := range major {
		bc.Push(barchart.BarData{
			Label: string(row.Species),
			Values: []barchart.BarValue{{
				Name:  string(row.Species),
				Value: row.MgPerL,
				Style: barStyles[i%len(barStyles)],
			}},
		})
	}
	bc.Draw()
	return bc.View()
}
