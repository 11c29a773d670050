package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// nativeExts are the file formats ConvertFile accepts.
var nativeExts = map[string]bool{
	".tbl":  true,
	".txt":  true,
	".xlsx": true,
	".xls":  true,
}

// formatConverter turns files into HTML tables.
type formatConverter struct{}

func newFormatConverter() *formatConverter {
	return &formatConverter{}
}

// CanConvert returns true when the file extension is handled.
func (c *formatConverter) CanConvert(filePath string) bool {
	return nativeExts[strings.ToLower(filepath.Ext(filePath))]
}

// SupportedFormats returns supported extensions without the leading dot.
func (c *formatConverter) SupportedFormats() []string {
	out := make([]string, 0, len(nativeExts))
	for ext := range nativeExts {
		out = append(out, strings.TrimPrefix(ext, "."))
	}
	return out
}

// ConvertFile reads filePath and returns HTML.
func (c *formatConverter) ConvertFile(filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	if !nativeExts[ext] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	switch ext {
	case ".xlsx", ".xls":
		return convertXLSX(filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return Translate(string(data), nil), nil
}
