// Package report renders the validation run as plain text for operators.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/joacominatel/accessdbcheck/internal/config"
	"github.com/joacominatel/accessdbcheck/internal/database"
)

// Printer writes the human-readable validation report.
type Printer struct {
	w           io.Writer
	theme       theme
	format      string
	previewRows int
}

// NewPrinter creates a printer that previews at most previewRows rows in the
// given format.
func NewPrinter(w io.Writer, format string, previewRows int) *Printer {
	if previewRows < 1 {
		previewRows = 5
	}
	return &Printer{
		w:           w,
		theme:       newTheme(lipgloss.NewRenderer(w)),
		format:      format,
		previewRows: previewRows,
	}
}

// Start announces the run.
func (p *Printer) Start(databaseName string) {
	p.printf("Validating connection to %s...\n", databaseName)
}

// Descriptor prints the connection string. masked must already be redacted.
func (p *Printer) Descriptor(masked string) {
	p.printf("Using connection string: %s\n", masked)
}

// Query announces the diagnostic query.
func (p *Printer) Query(query string) {
	p.printf("Executing query: %s\n", query)
}

// Result prints the column list, the row count and a bounded preview.
func (p *Printer) Result(tableName string, r *database.QueryResult) {
	p.printf("Columns: %s\n", strings.Join(r.Columns, ", "))

	if r.Empty() {
		p.printf("%s table is empty\n", tableName)
		return
	}

	p.printf("Found %d records in %s table\n", r.RowCount, tableName)

	rows := r.Head(p.previewRows)
	p.printf("\nShowing first %d records:\n", len(rows))

	if p.format == config.FormatTable {
		p.table(r.Columns, rows)
		return
	}

	for i, row := range rows {
		p.printf("Row %d:\n", i+1)
		for j, value := range row {
			p.printf("  %s: %s\n", columnName(r.Columns, j), database.FormatValue(value))
		}
		p.println()
	}
}

func (p *Printer) table(columns []string, rows [][]any) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.theme.border).
		Headers(columns...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return p.theme.header
			}
			return p.theme.cell
		})

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = database.FormatValue(v)
		}
		t.Row(cells...)
	}

	p.println(t.String())
}

// Failure prints the error that ended the run, with any secret it echoes
// masked.
func (p *Printer) Failure(err error) {
	p.printf("Connection error: %s\n", config.Mask(err.Error()))
}

// Banner prints the final verdict.
func (p *Printer) Banner(ok bool) {
	p.println()
	if ok {
		p.println(p.theme.success.Render("Connection validation successful!"))
		return
	}
	p.println(p.theme.err.Render("Connection validation failed!"))
}

func (p *Printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) println(args ...any) {
	_, _ = fmt.Fprintln(p.w, args...)
}

// columnName guards against drivers returning more values than columns.
func columnName(columns []string, i int) string {
	if i < len(columns) {
		return columns[i]
	}
	return fmt.Sprintf("column%d", i+1)
}
