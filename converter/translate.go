package converter

// translate.go — TBL markup → HTML table.
//
// One line is one row, columns are split on '|', and each column may carry an
// option prefix terminated by ": " (see options.go). Translate is a pure
// function: no I/O, no shared state, safe for concurrent use.

import (
	"strconv"
	"strings"
)

// Markup delimiters.
const (
	delimColumn    = "|"
	delimOption    = ":"
	delimOptionEnd = delimOption + " "
)

// Defaults injected into the opening tag when the caller does not set them.
const (
	defaultBorder      = "1"
	defaultCellSpacing = "0"
)

// trimSet is the whitespace stripped around lines and after cell content.
const trimSet = " \t\n\r\x00\x0b"

// Translate renders body as an HTML table. attrs is not modified; border and
// cellspacing are added to a copy when missing. A nil attrs is allowed.
func Translate(body string, attrs *Attributes) string {
	var sb strings.Builder
	sb.WriteString(openTag(attrs))

	for _, line := range strings.Split(body, "\n") {
		line = strings.Trim(line, trimSet)
		if line == "" {
			continue
		}
		sb.WriteString("<tr>")
		for _, segment := range strings.Split(strings.Trim(line, delimColumn), delimColumn) {
			content, opts := splitColumn(segment)
			sb.WriteString(renderCell(content, opts))
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</tbody></table>")
	return sb.String()
}

func openTag(attrs *Attributes) string {
	a := attrs.Clone()
	if !a.Has("border") {
		a.Set("border", defaultBorder)
	}
	if !a.Has("cellspacing") {
		a.Set("cellspacing", defaultCellSpacing)
	}

	var sb strings.Builder
	sb.WriteString("<table")
	a.Each(func(name, value string) {
		sb.WriteString(" " + name + `="` + value + `"`)
	})
	sb.WriteString("><tbody>")
	return sb.String()
}

// splitColumn separates the option prefix from the cell content. The first
// ": " ends the prefix, including one at offset 0 (empty option list).
func splitColumn(segment string) (string, ColumnOptions) {
	pos := strings.Index(segment, delimOptionEnd)
	if pos < 0 {
		return segment, defaultOptions()
	}
	opts := ParseOptions(strings.Split(segment[:pos], delimOption))
	return segment[pos+len(delimOptionEnd):], opts
}

func renderCell(content string, opts ColumnOptions) string {
	var style string
	if opts.Align != "" {
		style += "text-align: " + string(opts.Align) + ";"
	}
	if opts.Width != nil {
		style += "width: " + *opts.Width + ";"
	}

	var attr string
	if opts.RowSpan != nil {
		attr += ` rowspan="` + strconv.Itoa(*opts.RowSpan) + `"`
	}
	if opts.ColSpan != nil {
		attr += ` colspan="` + strconv.Itoa(*opts.ColSpan) + `"`
	}
	if style != "" {
		attr += ` style="` + style + `"`
	}

	// Only a single leading space is dropped; the rest are kept as &nbsp;.
	content = strings.TrimPrefix(content, " ")
	content = strings.ReplaceAll(strings.TrimRight(content, trimSet), " ", "&nbsp;")

	tag := opts.Tag
	if tag == "" {
		tag = tagData
	}
	return "<" + tag + attr + ">" + content + "</" + tag + ">"
}
