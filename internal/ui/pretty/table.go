package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/syntree/pkg/syntree"
)

// Table formatting constants.
const (
	tablePadding   = 2
	minIDWidth     = 6
	minNameWidth   = 12
	namedColWidth  = 5
	heavySeparator = "="
)

// SymbolRow represents a single grammar symbol in the symbol table.
type SymbolRow struct {
	Symbol syntree.Symbol
	Name   string
	Named  bool
}

// TableFormatter formats grammar symbols as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// CollectRows extracts every symbol of a grammar into table rows,
// in symbol order.
func CollectRows(lang *syntree.Language) []SymbolRow {
	count := lang.SymbolCount()
	rows := make([]SymbolRow, 0, count)
	for id := uint32(0); id < count; id++ {
		sym := syntree.Symbol(id)
		name := lang.SymbolName(sym)
		if name == "" {
			continue
		}
		rows = append(rows, SymbolRow{
			Symbol: sym,
			Name:   name,
			Named:  lang.SymbolIsNamed(sym),
		})
	}
	return rows
}

// FormatTable formats symbol rows as a styled table.
func (t *TableFormatter) FormatTable(rows []SymbolRow) string {
	if len(rows) == 0 {
		return ""
	}

	idWidth, nameWidth := t.columnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(idWidth, nameWidth))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(idWidth, nameWidth))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, idWidth, nameWidth))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(idWidth, nameWidth))
	builder.WriteString("\n")
	builder.WriteString(t.formatLegend(len(rows)))
	builder.WriteString("\n")

	return builder.String()
}

// columnWidths sizes the ID and NAME columns to their widest content,
// clamped so the table fits the terminal.
func (t *TableFormatter) columnWidths(rows []SymbolRow) (idWidth, nameWidth int) {
	idWidth = minIDWidth
	nameWidth = minNameWidth
	for _, row := range rows {
		if w := len(fmt.Sprintf("%d", row.Symbol)); w > idWidth {
			idWidth = w
		}
		if w := len(row.Name); w > nameWidth {
			nameWidth = w
		}
	}

	maxName := t.termWidth - idWidth - namedColWidth - 2*tablePadding
	if maxName > minNameWidth && nameWidth > maxName {
		nameWidth = maxName
	}
	return idWidth, nameWidth
}

func (t *TableFormatter) formatHeader(idWidth, nameWidth int) string {
	line := fmt.Sprintf("%-*s%s%-*s%s%-*s",
		idWidth, "ID",
		strings.Repeat(" ", tablePadding),
		nameWidth, "NAME",
		strings.Repeat(" ", tablePadding),
		namedColWidth, "NAMED",
	)
	return t.styles.TableHeader.Render(line)
}

func (t *TableFormatter) formatSeparator(idWidth, nameWidth int) string {
	width := idWidth + nameWidth + namedColWidth + 2*tablePadding
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, width))
}

func (t *TableFormatter) formatRow(row SymbolRow, idWidth, nameWidth int) string {
	name := truncate(row.Name, nameWidth)

	named := ""
	if row.Named {
		named = "yes"
	}

	line := fmt.Sprintf("%-*d%s%-*s%s%-*s",
		idWidth, row.Symbol,
		strings.Repeat(" ", tablePadding),
		nameWidth, name,
		strings.Repeat(" ", tablePadding),
		namedColWidth, named,
	)

	if row.Named {
		return t.styles.TableNamedRow.Render(line)
	}
	return t.styles.TableAnonRow.Render(line)
}

func (t *TableFormatter) formatLegend(count int) string {
	return t.styles.TableLegend.Render(fmt.Sprintf("%d symbols", count))
}
