package types

import (
	"strings"
	"time"

	ierr "github.com/listingdesk/backoffice/internal/errors"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseTimestamp accepts RFC3339 as well as the bare date and datetime forms
// clients tend to send. Values without a zone are read as UTC.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ierr.NewErrorf("unparsable timestamp %q", raw).
		WithHintf("%q is not a valid timestamp", raw).
		Mark(ierr.ErrValidation)
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
