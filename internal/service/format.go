package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"status_monitor/internal/models"
)

const separatorWidth = 80

var separator = strings.Repeat("-", separatorWidth)

// formatTimestamp renders t in the record layout, in UTC.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(models.RecordTimeLayout)
}

// formatWebhookBlock renders the console block for a webhook delivery.
func formatWebhookBlock(at time.Time, product, statusDescription, latestBody string) string {
	return fmt.Sprintf("[%s] Product: %s\nStatus: %s - %s\n%s",
		formatTimestamp(at), product, statusDescription, latestBody, separator)
}

// formatFeedBlock renders the console block for a newly detected feed entry.
func formatFeedBlock(rec models.LogRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] NEW INCIDENT DETECTED\n", rec.Timestamp)
	fmt.Fprintf(&b, "Product: %s\n", rec.Product)
	fmt.Fprintf(&b, "Event: %s\n", rec.Event)
	fmt.Fprintf(&b, "Status: %s\n", rec.Status)
	b.WriteString(separator)
	b.WriteByte('\n')
	return b.String()
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
