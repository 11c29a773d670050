package converter

// xlsx.go — XLSX/XLS → TBL markup using the excelize library.
// The first row of a sheet becomes the header row; the markup itself is
// written by the shared RenderMarkup function from table.go.

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound is returned when a named sheet is absent from a workbook.
var ErrSheetNotFound = errors.New("sheet not found")

const xlsxSheetHeading = "h2" // heading tag placed above each sheet's table

// ImportXLSX returns TBL markup for one sheet of the workbook at filePath.
// An empty sheet name selects the first sheet.
func ImportXLSX(filePath, sheet string) (string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return "", fmt.Errorf("open xlsx %s: %w", filePath, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", nil
	}
	if sheet == "" {
		sheet = sheets[0]
	} else if !containsSheet(sheets, sheet) {
		return "", fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheet, filePath)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return "", fmt.Errorf("read sheet %q in %s: %w", sheet, filePath, err)
	}
	return RenderMarkup(rows, true), nil
}

// convertXLSX renders every non-empty sheet as a heading plus an HTML table.
func convertXLSX(filePath string) (string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return "", fmt.Errorf("open xlsx %s: %w", filePath, err)
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return sb.String(), fmt.Errorf("read sheet %q in %s: %w", sheet, filePath, err)
		}
		if len(rows) == 0 {
			continue
		}

		sb.WriteString("<" + xlsxSheetHeading + ">" + html.EscapeString(sheet) + "</" + xlsxSheetHeading + ">\n")
		sb.WriteString(Translate(RenderMarkup(rows, true), nil))
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

func containsSheet(sheets []string, name string) bool {
	for _, s := range sheets {
		if s == name {
			return true
		}
	}
	return false
}
