package helpers

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want time.Time
	}{
		{"03-31-2022", time.Date(2022, time.March, 31, 0, 0, 0, 0, time.UTC)},
		{"12-1-2010", time.Date(2010, time.December, 1, 0, 0, 0, 0, time.UTC)},
		{"2022-03-31", time.Date(2022, time.March, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Fatalf("ParseDate(%q) error: %v", tt.in, err)
		}
		if !got.Equal(tt.want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDate("not-a-date"); err == nil {
		t.Fatalf("expected error for garbage input, got nil")
	}
}

func TestFormatDisplay(t *testing.T) {
	t.Parallel()

	in := time.Date(2022, time.March, 31, 9, 30, 0, 0, time.UTC)
	if got, want := FormatDisplay(in), "31/3/2022, 9:30:00 am"; got != want {
		t.Fatalf("FormatDisplay = %q, want %q", got, want)
	}
}
