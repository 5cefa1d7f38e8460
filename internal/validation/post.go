package validation

import (
	"fmt"
	"strings"
)

const maxPostLen = 50000

// ValidatePostText validates the body of a post before create or update.
func ValidatePostText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is required")
	}
	if len(text) > maxPostLen {
		return fmt.Errorf("text must not exceed %d characters", maxPostLen)
	}
	return nil
}

const maxCommentLen = 10000

// ValidateCommentText validates a comment body.
func ValidateCommentText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is required")
	}
	if len(text) > maxCommentLen {
		return fmt.Errorf("text must not exceed %d characters", maxCommentLen)
	}
	return nil
}
