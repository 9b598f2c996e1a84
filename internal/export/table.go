package export

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/usestring/schemax/pkg/schema"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Table renders a terminal summary of a schema: a header block with the
// document stats followed by one row per field.
func Table(s *schema.Schema) string {
	var b strings.Builder

	summary := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(int, int) lipgloss.Style { return cellStyle }).
		Row("Name", s.Name).
		Row("Kind", string(s.Kind)).
		Row("Root type", string(s.RootType)).
		Row("Fields", strconv.Itoa(s.NumFields())).
		Row("Nodes", strconv.Itoa(s.TotalNodes())).
		Row("Max depth", strconv.Itoa(s.MaxDepth())).
		Row("Created", s.CreatedAt.Format("2006-01-02 15:04:05"))
	b.WriteString(summary.Render())
	b.WriteString("\n")

	fields := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("PATH", "TYPES", "COUNT", "OPTIONAL", "ARRAY")
	for desc := range s.Fields() {
		types := make([]string, len(desc.Types))
		for i, t := range desc.Types {
			types[i] = string(t)
		}
		fields.Row(
			desc.Path,
			strings.Join(types, ", "),
			strconv.Itoa(desc.Count),
			strconv.FormatBool(desc.Optional),
			strconv.FormatBool(desc.Array),
		)
	}
	b.WriteString(fields.Render())
	b.WriteString("\n")
	return b.String()
}

// ReportTable renders a validation report for the terminal.
func ReportTable(r *schema.Report) string {
	status := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34")).Render("VALID")
	if !r.Valid {
		status = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")).Render("INVALID")
	}
	var b strings.Builder
	b.WriteString(status)
	b.WriteString("\n")
	if len(r.Discrepancies) == 0 {
		return b.String()
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("KIND", "PATH", "GOT", "EXPECTED")
	for _, d := range r.Discrepancies {
		tbl.Row(string(d.Kind), d.Path, string(d.Got), strings.Join(typeStrings(d.Expected), ", "))
	}
	b.WriteString(tbl.Render())
	b.WriteString("\n")
	return b.String()
}

func typeStrings(types []schema.DataType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}
