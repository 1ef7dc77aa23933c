package utils

import (
	"fmt"
	"time"
)

// Supabase timestamp columns come back in a handful of shapes depending on
// whether the column carries a timezone.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
}

func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp format: %q", value)
}
