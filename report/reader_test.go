package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeReport(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
}

func TestExtractText(t *testing.T) {
	dir := t.TempDir()
	writeReport(t, dir, "report.txt", "Line1\nLine2\nLine3")

	reader := NewReader(dir)
	got, err := reader.Extract("report.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Line1\nLine2\nLine3" {
		t.Errorf("Extract = %q, want raw file content", got)
	}
}

func TestExtractErrors(t *testing.T) {
	dir := t.TempDir()
	writeReport(t, dir, "findings.txt", "some findings")
	writeReport(t, dir, "broken.docx", "this is not a zip archive")

	tests := []struct {
		name     string
		filename string
		wantErr  error
	}{
		{"missing txt", "missing.txt", ErrNotFound},
		{"missing docx", "missing.docx", ErrNotFound},
		{"empty filename", "", ErrNotFound},
		{"pdf extension", "report.pdf", ErrUnsupportedFormat},
		{"no extension", "report", ErrUnsupportedFormat},
		{"parent traversal", "../findings.txt", ErrNotFound},
		{"absolute path", "/etc/passwd", ErrNotFound},
		{"backslash path", "sub\\findings.txt", ErrNotFound},
		{"null byte", "report\x00.txt", ErrNotFound},
		{"corrupt docx", "broken.docx", ErrRead},
	}

	reader := NewReader(dir)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reader.Extract(tt.filename)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Extract(%q) error = %v, want %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}

func TestExtractCaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	writeReport(t, dir, "REPORT.TXT", "upper case name")

	got, err := NewReader(dir).Extract("REPORT.TXT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "upper case name" {
		t.Errorf("Extract = %q", got)
	}
}

func TestValidateFilename(t *testing.T) {
	valid := []string{"report.txt", "Q3 findings.docx", "scan-2025.06.txt"}
	for _, name := range valid {
		if err := ValidateFilename(name); err != nil {
			t.Errorf("ValidateFilename(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "../escape.txt", "a/b.txt", "a\\b.txt", "dots..txt", "nul\x00.txt"}
	for _, name := range invalid {
		if err := ValidateFilename(name); err == nil {
			t.Errorf("ValidateFilename(%q) = nil, want error", name)
		}
	}
}
