package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rgabriel/mcp-doc-analyzer/report"
)

// ProduceReportSummaryHandler creates a handler that extracts a report and
// returns its summary without sending anything.
func ProduceReportSummaryHandler(reader ReportService) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		filename := stringArg(args, "filename")
		if filename == "" {
			return mcp.NewToolResultError("filename is required"), nil
		}

		maxChars := intArg(args, "max_chars", report.DefaultSummaryBudget)
		if maxChars < 1 {
			return mcp.NewToolResultError("max_chars must be positive"), nil
		}

		text, err := reader.Extract(filename)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		summary := report.Summarize(text, maxChars)

		response := map[string]interface{}{
			"filename": filename,
			"summary":  summary,
		}

		jsonData, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to format response: %v", err)), nil
		}

		return mcp.NewToolResultText(string(jsonData)), nil
	}
}
