package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rgabriel/mcp-doc-analyzer/config"
	"github.com/rgabriel/mcp-doc-analyzer/mail"
	"github.com/rgabriel/mcp-doc-analyzer/report"
)

// SendReportSummaryEmailHandler creates a handler that extracts a report,
// summarizes it, and emails the summary plus defect insights.
func SendReportSummaryEmailHandler(reader ReportService, sender MailSender, cfg *config.Config) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		// Credentials are checked before any file or network I/O.
		smtp, err := parseSMTPParams(args, cfg)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		recipients, err := mail.ParseRecipients(stringArg(args, "recipient"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		filename := stringArg(args, "filename")
		if filename == "" {
			return mcp.NewToolResultError("filename is required"), nil
		}

		// Report errors propagate here; no SMTP session is opened for them.
		text, err := reader.Extract(filename)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		summary := report.Summarize(text, report.DefaultSummaryBudget)
		insights := report.ScanInsights(text)

		body := fmt.Sprintf("Report Summary:\n%s\n\nInsights:\n%s", summary, insights)
		if custom := stringArg(args, "custom_message"); custom != "" {
			body = custom + "\n\n" + body
		}
		if err := validateBodySize(body); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		msg := mail.Message{
			Server:   smtp.server,
			Port:     smtp.port,
			Username: smtp.user,
			Password: smtp.password,
			To:       recipients,
			Subject:  fmt.Sprintf("Penetration Test Report Summary: %s", filename),
			Body:     body,
		}

		if err := sender.Send(ctx, msg); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		response := map[string]interface{}{
			"success":    true,
			"message":    fmt.Sprintf("Email sent successfully to %v", recipients),
			"filename":   filename,
			"recipients": recipients,
		}

		jsonData, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to format response: %v", err)), nil
		}

		return mcp.NewToolResultText(string(jsonData)), nil
	}
}
