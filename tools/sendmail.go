package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rgabriel/mcp-doc-analyzer/config"
	"github.com/rgabriel/mcp-doc-analyzer/mail"
)

// SendMailHandler creates a handler that sends an email with the given
// subject and body.
func SendMailHandler(sender MailSender, cfg *config.Config) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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

		subject := stringArg(args, "subject")
		if subject == "" {
			return mcp.NewToolResultError("subject is required"), nil
		}
		if err := validateSubjectSize(subject); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		body := stringArg(args, "body")
		if body == "" {
			return mcp.NewToolResultError("body is required"), nil
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
			Subject:  subject,
			Body:     body,
		}

		if err := sender.Send(ctx, msg); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		response := map[string]interface{}{
			"success":    true,
			"message":    fmt.Sprintf("Email sent successfully to %v", recipients),
			"subject":    subject,
			"recipients": recipients,
		}

		jsonData, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to format response: %v", err)), nil
		}

		return mcp.NewToolResultText(string(jsonData)), nil
	}
}
