package tools

import (
	"fmt"

	"github.com/rgabriel/mcp-doc-analyzer/config"
)

// stringArg extracts a non-empty string argument, or "" when absent.
func stringArg(args map[string]interface{}, key string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return ""
}

// intArg extracts a numeric argument (JSON numbers arrive as float64),
// falling back to def when absent or not a number.
func intArg(args map[string]interface{}, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// smtpParams holds the per-call SMTP endpoint and credentials. Values live
// only for the duration of one tool invocation and are never logged.
type smtpParams struct {
	server   string
	port     int
	user     string
	password string
}

// parseSMTPParams extracts SMTP arguments, applying configured defaults for
// the endpoint. It fails when either credential is missing so that no file
// or network I/O happens on a call that could never send.
func parseSMTPParams(args map[string]interface{}, cfg *config.Config) (smtpParams, error) {
	p := smtpParams{
		server:   cfg.DefaultSMTPServer,
		port:     cfg.DefaultSMTPPort,
		user:     stringArg(args, "smtp_user"),
		password: stringArg(args, "smtp_password"),
	}

	if p.user == "" {
		return smtpParams{}, fmt.Errorf("missing credentials: smtp_user is required")
	}
	if p.password == "" {
		return smtpParams{}, fmt.Errorf("missing credentials: smtp_password is required")
	}

	if server := stringArg(args, "smtp_server"); server != "" {
		p.server = server
	}
	p.port = intArg(args, "smtp_port", p.port)
	if p.port < 1 || p.port > 65535 {
		return smtpParams{}, fmt.Errorf("smtp_port must be between 1 and 65535")
	}

	return p, nil
}
