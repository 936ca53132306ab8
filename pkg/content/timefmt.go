package content

import (
	"strings"
	"time"
)

const displayTimeLayout = "2006-01-02 15:04"

// FormatCreateTime formats a memo creation timestamp for display. The primary
// field wins when set, otherwise the fallback; a bare "Z" suffix is treated as
// a "+00:00" offset. Returns "" when neither value parses.
func FormatCreateTime(primary, fallback string) string {
	raw := primary
	if raw == "" {
		raw = fallback
	}
	if raw == "" {
		return ""
	}

	if strings.HasSuffix(raw, "Z") {
		raw = strings.TrimSuffix(raw, "Z") + "+00:00"
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return ""
	}
	return t.Format(displayTimeLayout)
}
