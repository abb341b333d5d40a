package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePostInput(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		wantErr map[string]string
	}{
		{"valid", "Hello", "World", map[string]string{}},
		{"missing title", "", "World", map[string]string{"title": "Title is required"}},
		{"blank title", "   ", "World", map[string]string{"title": "Title is required"}},
		{"missing content", "Hello", "", map[string]string{"content": "Content is required"}},
		{"missing both", "", "\t", map[string]string{
			"title":   "Title is required",
			"content": "Content is required",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidatePostInput(tt.title, tt.content)
			assert.Equal(t, tt.wantErr, result.Errors)
			assert.Equal(t, len(tt.wantErr) == 0, result.IsValid)
		})
	}
}

func TestValidateBugInput(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		status  string
		wantErr map[string]string
	}{
		{"valid with status", "Crash", "open", map[string]string{}},
		{"valid without status", "Crash", "", map[string]string{}},
		{"in-progress", "Crash", "in-progress", map[string]string{}},
		{"resolved", "Crash", "resolved", map[string]string{}},
		{"missing title", "", "open", map[string]string{"title": "Title is required"}},
		{"bad status", "Crash", "bogus", map[string]string{"status": "Invalid status"}},
		{"missing title and bad status", " ", "closed", map[string]string{
			"title":  "Title is required",
			"status": "Invalid status",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateBugInput(tt.title, tt.status)
			assert.Equal(t, tt.wantErr, result.Errors)
			assert.Equal(t, len(tt.wantErr) == 0, result.IsValid)
		})
	}
}
