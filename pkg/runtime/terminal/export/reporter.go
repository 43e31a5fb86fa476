package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/de-tools/macro-report/pkg/models/domain"
)

type TableConfig struct {
	// Padding is the number of spaces on each side of a cell
	Padding int
	// HeaderMargin is added to a header's width when sizing its column
	HeaderMargin int
	// Precision is the number of decimals printed for values
	Precision int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		Padding:      1,
		HeaderMargin: 2,
		Precision:    2,
	}
}

// Reporter prints a report table as a grid with a 1-based index column
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type column struct {
	width      int
	rightAlign bool
}

const tableTemplate = `{{separator "-"}}
{{header}}
{{separator "="}}
{{range $i, $row := .Rows}}{{formatRow $i $row}}
{{separator "-"}}
{{else}}{{separator "-"}}
{{end}}`

func (c *Reporter) Handle(table *domain.ReportTable) error {
	if table == nil {
		return fmt.Errorf("report table is nil")
	}

	headers := c.headers(table)
	cells := c.cells(table)
	columns := c.layout(headers, cells)

	funcMap := template.FuncMap{
		"separator": func(fill string) string {
			var b strings.Builder
			b.WriteString("+")
			for _, col := range columns {
				b.WriteString(strings.Repeat(fill, col.width+2*c.config.Padding))
				b.WriteString("+")
			}
			return b.String()
		},
		"header": func() string {
			return c.line(columns, headers)
		},
		"formatRow": func(i int, _ domain.ReportRow) string {
			return c.line(columns, cells[i])
		},
	}

	t, err := template.New("report").Funcs(funcMap).Parse(tableTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, table)
}

func (c *Reporter) headers(table *domain.ReportTable) []string {
	headers := []string{""}
	headers = append(headers, table.Headers...)
	for len(headers) < 3 {
		headers = append(headers, "")
	}
	return headers
}

func (c *Reporter) cells(table *domain.ReportTable) [][]string {
	cells := make([][]string, 0, len(table.Rows))
	for i, row := range table.Rows {
		cells = append(cells, []string{
			strconv.Itoa(i + 1),
			row.Label,
			strconv.FormatFloat(row.Value, 'f', c.config.Precision, 64),
		})
	}
	return cells
}

// layout sizes every column and picks its alignment. Index and value columns are
// right aligned; with no rows there is nothing numeric to align, so all go left.
func (c *Reporter) layout(headers []string, cells [][]string) []column {
	numeric := len(cells) > 0
	columns := []column{
		{rightAlign: numeric},
		{rightAlign: false},
		{rightAlign: numeric},
	}

	for i := range columns {
		columns[i].width = utf8.RuneCountInString(headers[i]) + c.config.HeaderMargin
		for _, row := range cells {
			if w := utf8.RuneCountInString(row[i]); w > columns[i].width {
				columns[i].width = w
			}
		}
	}
	return columns
}

func (c *Reporter) line(columns []column, values []string) string {
	pad := strings.Repeat(" ", c.config.Padding)

	var b strings.Builder
	b.WriteString("|")
	for i, col := range columns {
		fill := strings.Repeat(" ", col.width-utf8.RuneCountInString(values[i]))
		b.WriteString(pad)
		if col.rightAlign {
			b.WriteString(fill + values[i])
		} else {
			b.WriteString(values[i] + fill)
		}
		b.WriteString(pad)
		b.WriteString("|")
	}
	return b.String()
}
