package ui

import (
	"strings"
	"time"

	"coolant/internal/prefs"
)

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}

// formatDate renders an ISO date or timestamp as YYYY-MM-DD, passing
// through anything it cannot parse.
func formatDate(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return value
}

func savePrefsTheme(path, theme string) error {
	return prefs.Save(path, prefs.Prefs{Theme: theme})
}
