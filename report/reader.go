// Package report loads report files from a fixed directory and turns them
// into plain text for summarizing and emailing.
package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Error kinds surfaced to callers. Wrap-checked with errors.Is.
var (
	// ErrNotFound means the named report does not exist in the reports directory.
	ErrNotFound = errors.New("report not found")

	// ErrUnsupportedFormat means the filename extension is not .docx or .txt.
	ErrUnsupportedFormat = errors.New("unsupported report format")

	// ErrRead means the file exists but could not be read or parsed.
	ErrRead = errors.New("failed to read report")
)

// Reader extracts plain text from report files in a fixed directory.
type Reader struct {
	dir string
}

// NewReader creates a Reader rooted at dir.
func NewReader(dir string) *Reader {
	return &Reader{dir: dir}
}

// extractor converts one file format into plain text.
type extractor func(path string) (string, error)

// extractors maps a lowercased filename extension to its extractor.
var extractors = map[string]extractor{
	".txt":  extractText,
	".docx": extractDocx,
}

// Extract loads the named report and returns its plain text content.
// The filename must be a bare name inside the reports directory;
// anything that could escape it is rejected before touching the filesystem.
func (r *Reader) Extract(filename string) (string, error) {
	if err := ValidateFilename(filename); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	extract, ok := extractors[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q (supported: .docx, .txt)", ErrUnsupportedFormat, ext)
	}

	path := filepath.Join(r.dir, filename)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrRead, filename, err)
	}

	text, err := extract(path)
	if err != nil {
		return "", err
	}
	return text, nil
}

// ValidateFilename rejects filenames that could escape the reports directory.
func ValidateFilename(name string) error {
	if name == "" {
		return fmt.Errorf("%w: filename is empty", ErrNotFound)
	}

	// Reject null bytes
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: filename must not contain null bytes", ErrNotFound)
	}

	// Reject path separators and traversal
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("%w: filename must not contain path separators", ErrNotFound)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: filename must not contain '..'", ErrNotFound)
	}

	return nil
}

// extractText reads a plain text report as-is.
func extractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, filepath.Base(path))
		}
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	return string(data), nil
}
