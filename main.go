package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rgabriel/mcp-doc-analyzer/config"
	"github.com/rgabriel/mcp-doc-analyzer/mail"
	"github.com/rgabriel/mcp-doc-analyzer/report"
	"github.com/rgabriel/mcp-doc-analyzer/tools"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	// Initialize structured logging
	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelInfo)
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		switch strings.ToUpper(lvl) {
		case "DEBUG":
			logLevel.Set(slog.LevelDebug)
		case "WARN":
			logLevel.Set(slog.LevelWarn)
		case "ERROR":
			logLevel.Set(slog.LevelError)
		}
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	reader := report.NewReader(cfg.ReportsDir)
	mailClient := mail.NewClient()

	// Set up signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	// Create MCP server with middleware (applied in reverse: logging wraps timeout wraps handler)
	s := server.NewMCPServer(
		"Doc Analyzer Server",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(timeoutMiddleware(60*time.Second)),
		server.WithToolHandlerMiddleware(loggingMiddleware()),
	)

	// Register read_text_report tool
	readTextReportTool := mcp.NewTool("read_text_report",
		mcp.WithDescription("Read the full content of a .txt report from the reports directory."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Name of the .txt report file in the reports directory. Bare filename only, no path."),
		),
	)
	s.AddTool(readTextReportTool, tools.ReadTextReportHandler(reader))

	// Register read_docx_report tool
	readDocxReportTool := mcp.NewTool("read_docx_report",
		mcp.WithDescription("Read the extracted plain text of a .docx report from the reports directory. Paragraphs are joined with newlines; images are skipped."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Name of the .docx report file in the reports directory. Bare filename only, no path."),
		),
	)
	s.AddTool(readDocxReportTool, tools.ReadDocxReportHandler(reader))

	// Register produce_report_summary tool
	produceReportSummaryTool := mcp.NewTool("produce_report_summary",
		mcp.WithDescription("Summarize a report without sending anything. Prefers the content under an 'Executive Summary', 'Summary of Findings', 'Conclusion', or 'Summary' heading; falls back to a preview of the leading paragraphs."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Name of the .docx or .txt report file in the reports directory."),
		),
		mcp.WithNumber("max_chars",
			mcp.Description("Summary length cap in characters."),
			mcp.DefaultNumber(report.DefaultSummaryBudget),
			mcp.Min(1),
		),
	)
	s.AddTool(produceReportSummaryTool, tools.ProduceReportSummaryHandler(reader))

	// Register send_report_summary_email tool
	sendReportSummaryTool := mcp.NewTool("send_report_summary_email",
		mcp.WithDescription("Summarize a report and email the summary with a defect-severity breakdown. SMTP credentials are required per call and are never stored. Calling twice sends duplicate emails."),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithString("recipient",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Recipient email address, or several separated by commas."),
		),
		mcp.WithString("filename",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Name of the .docx or .txt report file in the reports directory."),
		),
		mcp.WithString("smtp_user",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("SMTP username, also used as the From address."),
		),
		mcp.WithString("smtp_password",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("SMTP password or app password."),
		),
		mcp.WithString("smtp_server",
			mcp.Description("SMTP server address."),
			mcp.DefaultString(config.DefaultSMTPServer),
		),
		mcp.WithNumber("smtp_port",
			mcp.Description("SMTP server port (STARTTLS)."),
			mcp.DefaultNumber(config.DefaultSMTPPort),
			mcp.Min(1),
			mcp.Max(65535),
		),
		mcp.WithString("custom_message",
			mcp.Description("Optional message prefixed to the email body."),
		),
	)
	s.AddTool(sendReportSummaryTool, tools.SendReportSummaryEmailHandler(reader, mailClient, cfg))

	// Register sendmail tool
	sendMailTool := mcp.NewTool("sendmail",
		mcp.WithDescription("Send an email with the given subject and body via SMTP. SMTP credentials are required per call and are never stored. Calling twice sends duplicate emails."),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithString("recipient",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Recipient email address, or several separated by commas."),
		),
		mcp.WithString("subject",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Email subject line."),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("Email body content (plain text)."),
		),
		mcp.WithString("smtp_user",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("SMTP username, also used as the From address."),
		),
		mcp.WithString("smtp_password",
			mcp.Required(),
			mcp.MinLength(1),
			mcp.Description("SMTP password or app password."),
		),
		mcp.WithString("smtp_server",
			mcp.Description("SMTP server address."),
			mcp.DefaultString(config.DefaultSMTPServer),
		),
		mcp.WithNumber("smtp_port",
			mcp.Description("SMTP server port (STARTTLS)."),
			mcp.DefaultNumber(config.DefaultSMTPPort),
			mcp.Min(1),
			mcp.Max(65535),
		),
	)
	s.AddTool(sendMailTool, tools.SendMailHandler(mailClient, cfg))

	// Log startup
	slog.Info("server starting",
		"version", version,
		"transport", cfg.Transport,
		"port", cfg.Port,
		"reports_dir", cfg.ReportsDir,
		"default_smtp", fmt.Sprintf("%s:%d", cfg.DefaultSMTPServer, cfg.DefaultSMTPPort),
	)

	switch cfg.Transport {
	case "stdio":
		stdioServer := server.NewStdioServer(s)
		if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	default:
		httpServer := server.NewStreamableHTTPServer(s)
		go func() {
			<-ctx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("shutdown error", "error", err)
			}
		}()
		if err := httpServer.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("server stopped")
}

// timeoutMiddleware wraps each tool handler with a context deadline.
func timeoutMiddleware(timeout time.Duration) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return next(ctx, req)
		}
	}
}

// loggingMiddleware logs each tool call with a unique request ID, tool name,
// duration, and outcome. Arguments are never logged; they can carry credentials.
func loggingMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			requestID := uuid.New().String()
			tool := req.Params.Name
			logger := slog.With("request_id", requestID, "tool", tool)

			logger.Debug("tool call started")
			start := time.Now()

			result, err := next(ctx, req)
			duration := time.Since(start)

			if err != nil {
				logger.Error("tool call failed", "duration_ms", duration.Milliseconds(), "error", err)
			} else if result != nil && result.IsError {
				logger.Warn("tool call returned error", "duration_ms", duration.Milliseconds())
			} else {
				logger.Info("tool call completed", "duration_ms", duration.Milliseconds())
			}

			return result, err
		}
	}
}
