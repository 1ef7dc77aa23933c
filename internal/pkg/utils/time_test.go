package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimestamp(t *testing.T) {
	t.Run("Accepts Supabase Timestamp Shapes", func(t *testing.T) {
		for _, value := range []string{
			"2024-03-01T14:30:00Z",
			"2024-03-01T14:30:00+05:00",
			"2024-03-01T14:30:00",
			"2024-03-01T14:30:00.123456",
			"2024-03-01 14:30:00",
		} {
			parsed, err := ParseTimestamp(value)
			assert.NoError(t, err, value)
			assert.Equal(t, 2024, parsed.Year())
			assert.Equal(t, time.March, parsed.Month())
			assert.Equal(t, 30, parsed.Minute())
		}
	})

	t.Run("Rejects Unknown Shapes", func(t *testing.T) {
		for _, value := range []string{"", "next tuesday", "01/03/2024"} {
			_, err := ParseTimestamp(value)
			assert.Error(t, err, value)
		}
	})
}
