// Package format holds display helpers for verse numbers, search queries
// and timestamps.
package format

import (
	"fmt"
	"strings"
	"time"
)

var arabicDigits = []rune{'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩'}

// ArabicNumber renders n using eastern-arabic digits.
func ArabicNumber(n int) string {
	if n < 0 {
		return "-" + ArabicNumber(-n)
	}
	var b strings.Builder
	for _, digit := range fmt.Sprintf("%d", n) {
		b.WriteRune(arabicDigits[digit-'0'])
	}
	return b.String()
}

// VerseNumber renders n inside ornate verse-end brackets.
func VerseNumber(n int) string {
	return "﴿" + ArabicNumber(n) + "﴾"
}

// SanitizeQuery trims a search query and strips markup-significant
// characters before it is sent to the remote API.
func SanitizeQuery(query string) string {
	query = strings.TrimSpace(query)
	query = strings.ReplaceAll(query, "<", "")
	query = strings.ReplaceAll(query, ">", "")
	return query
}

// RelativeTime renders t relative to now ("just now", "5 minutes ago"),
// falling back to an absolute date beyond thirty days.
func RelativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(diff.Hours()))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
