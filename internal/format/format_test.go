package format

import (
	"testing"
	"time"
)

func TestArabicNumber(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "٠"},
		{7, "٧"},
		{114, "١١٤"},
		{255, "٢٥٥"},
		{6236, "٦٢٣٦"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := ArabicNumber(tt.input)
			if result != tt.expected {
				t.Errorf("ArabicNumber(%d) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestVerseNumber(t *testing.T) {
	result := VerseNumber(255)
	expected := "﴿٢٥٥﴾"
	if result != expected {
		t.Errorf("VerseNumber(255) = %q, expected %q", result, expected)
	}
}

func TestSanitizeQuery(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  mercy  ", "mercy"},
		{"<script>mercy</script>", "scriptmercy/script"},
		{"mercy", "mercy"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := SanitizeQuery(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeQuery(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{"seconds ago", now.Add(-30 * time.Second), "just now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"hours ago", now.Add(-3 * time.Hour), "3 hours ago"},
		{"days ago", now.Add(-48 * time.Hour), "2 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RelativeTime(tt.input)
			if result != tt.expected {
				t.Errorf("RelativeTime(%v) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRelativeTime_OldDatesAreAbsolute(t *testing.T) {
	old := time.Date(2024, time.March, 9, 12, 0, 0, 0, time.UTC)
	result := RelativeTime(old)
	expected := "Mar 9, 2024"
	if result != expected {
		t.Errorf("RelativeTime(%v) = %q, expected %q", old, result, expected)
	}
}
