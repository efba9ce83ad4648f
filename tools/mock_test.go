package tools

import (
	"context"

	"github.com/rgabriel/mcp-doc-analyzer/mail"
)

// MockReportService implements ReportService for testing.
type MockReportService struct {
	// Return values
	Text string

	// Error injection
	Err error

	// Call tracking
	LastFilename string
	CallCount    int
}

func (m *MockReportService) Extract(filename string) (string, error) {
	m.LastFilename = filename
	m.CallCount++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}

// MockMailSender implements MailSender for testing.
type MockMailSender struct {
	Err         error
	LastMessage mail.Message
	CallCount   int
}

func (m *MockMailSender) Send(ctx context.Context, msg mail.Message) error {
	m.LastMessage = msg
	m.CallCount++
	return m.Err
}
