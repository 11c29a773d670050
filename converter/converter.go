package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Cortexa-LLC/mcp/src/tbl/config"
)

// TagName is the custom tag a host pipeline binds to Converter.RenderTag.
const TagName = "tbl"

var (
	// ErrBodyTooLarge is returned when markup exceeds the configured limit.
	ErrBodyTooLarge = errors.New("body too large")

	// ErrUnsupportedFormat is returned for file extensions with no converter.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Hook is the callback shape a host rendering pipeline invokes for a tag:
// the raw text between the tags plus the tag's parsed attributes.
type Hook func(body string, attrs *Attributes) string

// TagRenderer is implemented by Converter. Hosts depend on it so tests can
// inject a stub.
type TagRenderer interface {
	RenderTag(ctx context.Context, body string, attrs *Attributes) (string, error)
	ConvertFile(ctx context.Context, filePath string) (string, error)
	SyntaxInfo(ctx context.Context) string
}

// Converter is the entry point used by the MCP server and host pipelines.
type Converter struct {
	native *formatConverter
	cfg    *config.Config
}

// NewConverter creates a Converter using environment-driven config.
func NewConverter() *Converter {
	return NewConverterWithConfig(config.Load())
}

// NewConverterWithConfig creates a Converter with an explicit config.
func NewConverterWithConfig(cfg *config.Config) *Converter {
	return &Converter{
		native: newFormatConverter(),
		cfg:    cfg,
	}
}

// Hook adapts RenderTag to the host callback shape. A body over the
// configured limit renders as an empty string.
func (c *Converter) Hook() Hook {
	return func(body string, attrs *Attributes) string {
		out, err := c.RenderTag(context.Background(), body, attrs)
		if err != nil {
			return ""
		}
		return out
	}
}

// RenderTag renders the body of one tag as an HTML table.
func (c *Converter) RenderTag(_ context.Context, body string, attrs *Attributes) (string, error) {
	if int64(len(body)) > c.cfg.MaxBodyBytes {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrBodyTooLarge, len(body), c.cfg.MaxBodyBytes)
	}
	return Translate(body, attrs), nil
}

// ConvertFile converts a local markup file or workbook to HTML.
func (c *Converter) ConvertFile(_ context.Context, filePath string) (string, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return "", fmt.Errorf("file not found: %s", filePath)
	}
	if info.Size() > c.cfg.MaxFileSizeBytes {
		return "", fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), c.cfg.MaxFileSizeBytes)
	}
	if !c.native.CanConvert(filePath) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filePath)
	}
	return c.native.ConvertFile(filePath)
}

// SyntaxInfo returns a Markdown summary of the markup grammar, supported
// file formats and config.
func (c *Converter) SyntaxInfo(_ context.Context) string {
	fmts := c.native.SupportedFormats()
	sort.Strings(fmts)

	return fmt.Sprintf(`# TBL Syntax

One line per row, columns separated by "|". Leading and trailing "|" are ignored.
A column may start with options separated by ":" and ended by ": ".

    |th:w100px: 1|ac: 2|al: 3|
    |ac:th: A|rs2: B|

## Options (case-insensitive)
- th: header cell
- al / ar / ac: align left / right / center
- w<size>: width, e.g. w100px
- rs<n>: rowspan
- cs<n>: colspan

## Supported Files
%s

## Configuration
- Max body size: %d KB
- Max file size: %d MB`,
		"- "+strings.Join(fmts, "\n- "),
		c.cfg.MaxBodyKB(),
		c.cfg.MaxFileSizeMB(),
	)
}
