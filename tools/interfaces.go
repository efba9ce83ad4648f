package tools

import (
	"context"

	"github.com/rgabriel/mcp-doc-analyzer/mail"
)

// ReportService defines report text extraction. The concrete
// *report.Reader satisfies this.
type ReportService interface {
	Extract(filename string) (string, error)
}

// MailSender defines the outbound email operation. The concrete
// *mail.Client satisfies this.
type MailSender interface {
	Send(ctx context.Context, msg mail.Message) error
}
