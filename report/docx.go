package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// extractDocx parses a .docx file and linearizes it to plain text.
// Paragraphs are joined with newlines; tables are rendered row by row
// best-effort; images and other non-text elements are skipped.
func extractDocx(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}

	var parts []string
	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			parts = append(parts, it.String())
		case *docx.Table:
			parts = append(parts, it.String())
		}
	}

	return strings.Join(parts, "\n"), nil
}
