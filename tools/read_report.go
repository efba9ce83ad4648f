package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReadTextReportHandler creates a handler that returns the raw content of
// a .txt report.
func ReadTextReportHandler(reader ReportService) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return readReportHandler(reader, ".txt")
}

// ReadDocxReportHandler creates a handler that returns the extracted text
// of a .docx report.
func ReadDocxReportHandler(reader ReportService) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return readReportHandler(reader, ".docx")
}

func readReportHandler(reader ReportService, wantExt string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		filename := stringArg(args, "filename")
		if filename == "" {
			return mcp.NewToolResultError("filename is required"), nil
		}
		if ext := strings.ToLower(filepath.Ext(filename)); ext != wantExt {
			return mcp.NewToolResultError(fmt.Sprintf("expected a %s report, got %q", wantExt, filename)), nil
		}

		text, err := reader.Extract(filename)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		response := map[string]interface{}{
			"filename": filename,
			"content":  text,
		}

		jsonData, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to format response: %v", err)), nil
		}

		return mcp.NewToolResultText(string(jsonData)), nil
	}
}
