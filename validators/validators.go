// Package validators holds the pure input checks for incoming payloads.
// Validation never touches the store or the transport: it takes field values
// and returns a field-to-message error map.
package validators

import (
	"strings"

	"bugtrail/models"
)

// Result is the outcome of validating one payload.
type Result struct {
	Errors  map[string]string
	IsValid bool
}

// ValidatePostInput checks a post creation payload. Title and content are
// required and must be non-empty after trimming.
func ValidatePostInput(title, content string) Result {
	errs := map[string]string{}
	if strings.TrimSpace(title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(content) == "" {
		errs["content"] = "Content is required"
	}
	return Result{Errors: errs, IsValid: len(errs) == 0}
}

// ValidateBugInput checks a bug creation payload. Title is required,
// description is always optional, and status, when present, must be one of
// the three known values.
func ValidateBugInput(title, status string) Result {
	errs := map[string]string{}
	if strings.TrimSpace(title) == "" {
		errs["title"] = "Title is required"
	}
	if status != "" && !models.ValidBugStatus(status) {
		errs["status"] = "Invalid status"
	}
	return Result{Errors: errs, IsValid: len(errs) == 0}
}
