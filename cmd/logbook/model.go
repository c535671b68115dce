package logbook

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sumwatshade/saltwater/cmd/sample"
)

// Logbook holds the saved records plus the interactive list model.
type Logbook struct {
	Records []sample.Record `json:"records"`
	list    list.Model
	ready   bool
	width   int
	height  int
	detail  bool // whether we're showing a single record
}

var (
	statusBarStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	filterMatchStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("219")).Bold(true)
	logbookTitleBarStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	detailHeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")).Underline(true)
	detailMetaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	faintStyle           = lipgloss.NewStyle().Faint(true)
)

// NewLogbook constructs a logbook from the records the service has on disk.
// A nil service yields an empty, in-memory logbook.
func NewLogbook(svc Service) *Logbook {
	lb := &Logbook{}
	if svc == nil {
		return lb
	}
	records, err := svc.List()
	if err != nil {
		return lb
	}
	// List returns newest first; keep the slice oldest first so AddRecord
	// appends naturally.
	for i := len(records) - 1; i >= 0; i-- {
		lb.Records = append(lb.Records, records[i])
	}
	return lb
}

// Latest returns the most recently saved record, or nil when empty.
func (lb *Logbook) Latest() *sample.Record {
	if lb == nil || len(lb.Records) == 0 {
		return nil
	}
	return &lb.Records[len(lb.Records)-1]
}

// AddRecord appends to underlying slice and (if list initialized) inserts item.
func (lb *Logbook) AddRecord(r sample.Record) {
	lb.Records = append(lb.Records, r)
	if lb.ready {
		lb.list.InsertItem(0, logbookItem{r}) // newest first
	}
}

// ensureList creates or resizes the list model based on dimensions.
func (lb *Logbook) ensureList(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	lb.width = width
	lb.height = height
	listHeight := max(5, height-6) // leave space for header/footer around view
	if !lb.ready {
		items := make([]list.Item, 0, len(lb.Records))
		// newest first
		for i := len(lb.Records) - 1; i >= 0; i-- {
			items = append(items, logbookItem{lb.Records[i]})
		}
		l := list.New(items, itemDelegate{}, width-4, listHeight) // -4 for padding
		l.Title = "Logbook"
		l.SetShowStatusBar(true)
		l.SetShowPagination(true)
		l.SetFilteringEnabled(true)
		l.Styles.Title = logbookTitleBarStyle
		l.Styles.StatusBar = statusBarStyle
		l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		l.Styles.HelpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
		lb.list = l
		lb.ready = true
		return
	}
	// resize
	lb.list.SetSize(width-4, listHeight)
}

// Update handles messages specific to the logbook list.
func (lb *Logbook) Update(msg tea.Msg, width, height int) tea.Cmd {
	lb.ensureList(width, height)
	if !lb.ready {
		return nil
	}
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "esc":
			if lb.detail { // leave detail view
				lb.detail = false
				return nil
			}
			if lb.list.FilterState() == list.Filtering {
				lb.list.ResetFilter()
				return nil
			}
		case "enter":
			// open detail (even if filtering; keep filter applied so selection context remains)
			lb.detail = true
			return nil
		}
	}
	var cmd tea.Cmd
	lb.list, cmd = lb.list.Update(msg)
	return cmd
}

// View renders the logbook list, or the selected record in full.
func (lb *Logbook) View() string {
	if !lb.ready {
		return logbookTitleBarStyle.Render("Logbook") + "\n" + "Loading..."
	}
	if len(lb.Records) == 0 {
		return logbookTitleBarStyle.Render("Logbook") + "\n" + faintStyle.Render("No records yet. Press 's' to analyze a sample.")
	}
	if lb.detail {
		sel, ok := lb.list.SelectedItem().(logbookItem)
		if !ok {
			lb.detail = false
			return lb.list.View()
		}
		return lipgloss.NewStyle().Width(lb.width - 4).Render(renderDetail(sel.Record))
	}
	return lb.list.View()
}

// renderDetail writes the full record: salinity numbers and the per-species
// component table.
func renderDetail(r sample.Record) string {
	b := &strings.Builder{}
	fmt.Fprintln(b, logbookTitleBarStyle.Render("Logbook Record"))
	fmt.Fprintln(b)
	fmt.Fprintln(b, detailHeaderStyle.Render(r.Label))
	res := r.Result
	fmt.Fprintln(b, detailMetaStyle.Render(fmt.Sprintf("SP: %.4f  SA: %.4f g/kg", res.SP, res.SA)))
	fmt.Fprintln(b, detailMetaStyle.Render(fmt.Sprintf("Density: %.3f kg/m^3  SG 20/20: %.5f  SG 25/25: %.5f", res.Density, res.SG2020, res.SG2525)))
	if r.ChlorideEstimated {
		fmt.Fprintln(b, faintStyle.Render("Cl- estimated from the other ions"))
	}
	if len(r.Components) > 0 {
		fmt.Fprintln(b)
		fmt.Fprintf(b, "%-8s %10s %10s %10s\n", "Species", "mg/L", "mg/kg", "mg/kg@norm")
		for _, row := range r.Components {
			fmt.Fprintf(b, "%-8s %10.3f %10.3f %10.3f\n", row.Species, row.MgPerL, row.MgPerKg, row.MgPerKgNorm)
		}
	}
	if r.Comments != "" {
		fmt.Fprintln(b)
		fmt.Fprintln(b, r.Comments)
	}
	fmt.Fprintln(b)
	fmt.Fprintln(b, faintStyle.Render("(esc to go back)"))
	return b.String()
}

// helper until Go generics version or shared util
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
