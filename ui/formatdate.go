package ui

import "time"

// FormatDateISO renders a timestamp as YYYY-MM-DD in UTC. Every input,
// including the zero time, yields a well-formed date string.
func FormatDateISO(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
