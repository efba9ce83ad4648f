package tools

import (
	"fmt"
)

const (
	maxBodySize    = 10 * 1024 * 1024 // 10 MB
	maxSubjectSize = 998              // RFC 2822 line length limit
)

// validateBodySize checks that body content doesn't exceed limits.
func validateBodySize(body string) error {
	if len(body) > maxBodySize {
		return fmt.Errorf("body exceeds maximum size of %d bytes", maxBodySize)
	}
	return nil
}

// validateSubjectSize checks that subject doesn't exceed limits.
func validateSubjectSize(subject string) error {
	if len(subject) > maxSubjectSize {
		return fmt.Errorf("subject exceeds maximum length of %d characters", maxSubjectSize)
	}
	return nil
}
