package helpers

import (
	"fmt"
	"strings"
	"time"
)

// displayLayout renders times the way the API stores them, e.g.
// "31/3/2022, 9:30:00 am".
const displayLayout = "2/1/2006, 3:04:05 pm"

// FormatDisplay renders a time as the display string stored in task
// records (dueAt, createdAt).
func FormatDisplay(t time.Time) string {
	return t.Format(displayLayout)
}

// ParseDate parses the date formats clients are known to send, e.g.
// "03-31-2022", "12-1-2010", "2022-03-31" or RFC 3339.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	layouts := []string{
		"1-2-2006",
		"1/2/2006",
		"2006-01-02",
		time.RFC3339,
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
