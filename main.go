package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Cortexa-LLC/mcp/src/tbl/config"
	"github.com/Cortexa-LLC/mcp/src/tbl/converter"
	"github.com/Cortexa-LLC/mcp/src/tbl/logging"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server identity constants.
const (
	serverName    = "tbl"
	serverVersion = "0.1.0"
)

// MCP tool parameter key constants — shared between schema definitions and
// argument extraction so a typo in one place is caught by the other.
const (
	argBody       = "body"
	argAttributes = "attributes"
	argPath       = "path"
	argSheet      = "sheet"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	s := server.NewMCPServer(serverName, serverVersion)
	conv := converter.NewConverterWithConfig(cfg)
	registerTools(s, conv)

	slog.Info("serving on stdio", "server", serverName, "version", serverVersion)
	if err := server.ServeStdio(s); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

// registerTools binds MCP tool definitions to their handlers.
// It accepts the TagRenderer interface so tests can inject a mock.
func registerTools(s *server.MCPServer, conv converter.TagRenderer) {
	// render_tbl — translate TBL markup to an HTML table
	s.AddTool(
		mcp.NewTool("render_tbl",
			mcp.WithDescription("Render TBL table markup as an HTML table. "+
				"One line per row, columns separated by |, per-column options before \": \" "+
				"(th, al/ar/ac, w<size>, rs<n>, cs<n>). Call get_tbl_syntax for details."),
			mcp.WithString(argBody,
				mcp.Required(),
				mcp.Description("TBL markup, the text between <tbl> and </tbl>"),
			),
			mcp.WithArray(argAttributes,
				mcp.Description(`Table attributes as "name=value" strings, in output order. `+
					`border=1 and cellspacing=0 are added when missing.`),
			),
		),
		renderTblHandler(conv),
	)

	// convert_file — render a .tbl file or a workbook
	s.AddTool(
		mcp.NewTool("convert_file",
			mcp.WithDescription("Render a local .tbl/.txt markup file or an .xlsx/.xls workbook as HTML tables."),
			mcp.WithString(argPath,
				mcp.Required(),
				mcp.Description("Absolute file path"),
			),
		),
		convertFileHandler(conv),
	)

	// xlsx_to_tbl — import one sheet as TBL markup
	s.AddTool(
		mcp.NewTool("xlsx_to_tbl",
			mcp.WithDescription("Convert one sheet of an .xlsx workbook into TBL markup. The first row becomes the header."),
			mcp.WithString(argPath,
				mcp.Required(),
				mcp.Description("Absolute path to the workbook"),
			),
			mcp.WithString(argSheet,
				mcp.Description("Sheet name (default: first sheet)"),
			),
		),
		xlsxToTblHandler,
	)

	// get_tbl_syntax — grammar summary and configuration
	s.AddTool(
		mcp.NewTool("get_tbl_syntax",
			mcp.WithDescription("Return the TBL markup grammar, supported files, and active configuration."),
		),
		func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(conv.SyntaxInfo(ctx)), nil
		},
	)
}

type toolHandler = func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

func renderTblHandler(conv converter.TagRenderer) toolHandler {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body, ok := req.Params.Arguments[argBody].(string)
		if !ok {
			return mcp.NewToolResultError(argBody + " is required"), nil
		}
		items, err := stringList(req.Params.Arguments[argAttributes])
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		attrs, err := converter.ParseAttributePairs(items)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		out, err := conv.RenderTag(ctx, body, attrs)
		if err != nil {
			slog.Warn("render_tbl failed", "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		slog.Debug("render_tbl", "body_bytes", len(body), "attributes", attrs.Len())
		return mcp.NewToolResultText(out), nil
	}
}

func convertFileHandler(conv converter.TagRenderer) toolHandler {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, ok := req.Params.Arguments[argPath].(string)
		if !ok || path == "" {
			return mcp.NewToolResultError(argPath + " is required"), nil
		}
		out, err := conv.ConvertFile(ctx, path)
		if err != nil {
			slog.Warn("convert_file failed", "path", path, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

func xlsxToTblHandler(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, ok := req.Params.Arguments[argPath].(string)
	if !ok || path == "" {
		return mcp.NewToolResultError(argPath + " is required"), nil
	}
	sheet, _ := req.Params.Arguments[argSheet].(string)
	out, err := converter.ImportXLSX(path, sheet)
	if err != nil {
		slog.Warn("xlsx_to_tbl failed", "path", path, "sheet", sheet, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}

// stringList decodes an optional JSON array of strings.
func stringList(v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an array of strings", argAttributes)
	}
	out := make([]string, 0, len(raw))
	for i, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be a string", argAttributes, i)
		}
		out = append(out, s)
	}
	return out, nil
}
