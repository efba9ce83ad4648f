package config

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		wantErr    string
		wantDir    string
		wantPort   int
		wantTrans  string
		wantServer string
		wantSMTP   int
	}{
		{
			name:       "all defaults",
			env:        map[string]string{},
			wantDir:    "reports",
			wantPort:   8000,
			wantTrans:  "http",
			wantServer: "smtp.gmail.com",
			wantSMTP:   587,
		},
		{
			name: "everything overridden",
			env: map[string]string{
				"REPORTS_DIR":         "/var/reports",
				"MCP_PORT":            "9100",
				"MCP_TRANSPORT":       "stdio",
				"SMTP_DEFAULT_SERVER": "smtp.example.com",
				"SMTP_DEFAULT_PORT":   "2525",
			},
			wantDir:    "/var/reports",
			wantPort:   9100,
			wantTrans:  "stdio",
			wantServer: "smtp.example.com",
			wantSMTP:   2525,
		},
		{
			name:    "non-numeric port",
			env:     map[string]string{"MCP_PORT": "eight thousand"},
			wantErr: "MCP_PORT",
		},
		{
			name:    "port out of range",
			env:     map[string]string{"MCP_PORT": "70000"},
			wantErr: "MCP_PORT",
		},
		{
			name:    "bad smtp default port",
			env:     map[string]string{"SMTP_DEFAULT_PORT": "0"},
			wantErr: "SMTP_DEFAULT_PORT",
		},
		{
			name:    "unknown transport",
			env:     map[string]string{"MCP_TRANSPORT": "websocket"},
			wantErr: "MCP_TRANSPORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear any .env influence by setting explicit values
			for _, key := range []string{"REPORTS_DIR", "MCP_PORT", "MCP_TRANSPORT", "SMTP_DEFAULT_SERVER", "SMTP_DEFAULT_PORT"} {
				t.Setenv(key, tt.env[key])
			}

			cfg, err := Load()

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
				if cfg != nil {
					t.Fatal("expected nil config on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.ReportsDir != tt.wantDir {
				t.Errorf("ReportsDir = %q, want %q", cfg.ReportsDir, tt.wantDir)
			}
			if cfg.Port != tt.wantPort {
				t.Errorf("Port = %d, want %d", cfg.Port, tt.wantPort)
			}
			if cfg.Transport != tt.wantTrans {
				t.Errorf("Transport = %q, want %q", cfg.Transport, tt.wantTrans)
			}
			if cfg.DefaultSMTPServer != tt.wantServer {
				t.Errorf("DefaultSMTPServer = %q, want %q", cfg.DefaultSMTPServer, tt.wantServer)
			}
			if cfg.DefaultSMTPPort != tt.wantSMTP {
				t.Errorf("DefaultSMTPPort = %d, want %d", cfg.DefaultSMTPPort, tt.wantSMTP)
			}
		})
	}
}
