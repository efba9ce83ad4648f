package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults used when the corresponding environment variable is unset.
const (
	DefaultReportsDir = "reports"
	DefaultPort       = 8000
	DefaultSMTPServer = "smtp.gmail.com"
	DefaultSMTPPort   = 587
)

// Config holds the application configuration. SMTP credentials are
// deliberately absent: they arrive as per-call tool arguments and are
// never read from the environment.
type Config struct {
	// ReportsDir is the directory report files are read from.
	ReportsDir string

	// Port is the HTTP listen port for the MCP server.
	Port int

	// Transport selects the MCP transport: "http" or "stdio".
	Transport string

	// DefaultSMTPServer and DefaultSMTPPort are used when a tool call
	// does not override them.
	DefaultSMTPServer string
	DefaultSMTPPort   int
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		ReportsDir:        DefaultReportsDir,
		Port:              DefaultPort,
		Transport:         "http",
		DefaultSMTPServer: DefaultSMTPServer,
		DefaultSMTPPort:   DefaultSMTPPort,
	}

	if dir := os.Getenv("REPORTS_DIR"); dir != "" {
		cfg.ReportsDir = dir
	}

	if port := os.Getenv("MCP_PORT"); port != "" {
		p, err := parsePort(port)
		if err != nil {
			return nil, fmt.Errorf("MCP_PORT: %w", err)
		}
		cfg.Port = p
	}

	switch transport := os.Getenv("MCP_TRANSPORT"); transport {
	case "", "http":
		cfg.Transport = "http"
	case "stdio":
		cfg.Transport = "stdio"
	default:
		return nil, fmt.Errorf("MCP_TRANSPORT must be \"http\" or \"stdio\", got %q", transport)
	}

	if server := os.Getenv("SMTP_DEFAULT_SERVER"); server != "" {
		cfg.DefaultSMTPServer = server
	}

	if port := os.Getenv("SMTP_DEFAULT_PORT"); port != "" {
		p, err := parsePort(port)
		if err != nil {
			return nil, fmt.Errorf("SMTP_DEFAULT_PORT: %w", err)
		}
		cfg.DefaultSMTPPort = p
	}

	return cfg, nil
}

func parsePort(s string) (int, error) {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return 0, fmt.Errorf("must be a port number between 1 and 65535, got %q", s)
	}
	return p, nil
}
