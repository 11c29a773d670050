package converter

// table.go — shared TBL markup writer.
//
// The inverse of Translate: given a grid of plain cell texts it writes TBL
// markup that renders back to those texts. Used by the spreadsheet importer.

import (
	"html"
	"strings"
)

// emptyOptions is an option prefix with no tokens. It shields cell text that
// itself contains ": " from being read as options.
const emptyOptions = delimOptionEnd

// RenderMarkup converts rows into TBL markup, one line per row. Short rows
// are padded with empty cells to the widest row. Every cell gets at least one
// character so rows of empty cells keep their width. When header is true the
// first row is marked with the th option.
func RenderMarkup(rows [][]string, header bool) string {
	maxCols := 0
	for _, row := range rows {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}
	if maxCols == 0 {
		return ""
	}

	var sb strings.Builder
	for r, row := range rows {
		sb.WriteString(delimColumn)
		for i := 0; i < maxCols; i++ {
			var text string
			if i < len(row) {
				text = row[i]
			}
			sb.WriteString(markupCell(text, header && r == 0))
			sb.WriteString(delimColumn)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// markupCell writes one cell. The content always starts with the single
// space Translate strips, so leading spaces in text survive.
func markupCell(text string, th bool) string {
	text = " " + escapeCell(text)
	switch {
	case th:
		return tagHeader + emptyOptions + text
	case strings.Contains(text, delimOptionEnd):
		return emptyOptions + text
	default:
		return text
	}
}

// escapeCell HTML-escapes a cell and keeps it on one line and free of column
// delimiters.
func escapeCell(s string) string {
	s = html.EscapeString(s)
	return strings.NewReplacer(
		"\r\n", " ",
		"\n", " ",
		"\r", " ",
		delimColumn, "&#124;",
	).Replace(s)
}
