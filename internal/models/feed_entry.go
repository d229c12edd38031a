package models

import "time"

// FeedEntry is a single item of the status RSS feed.
type FeedEntry struct {
	Title     string    `json:"title"`
	Summary   string    `json:"summary"` // plain text, markup stripped
	Link      string    `json:"link,omitempty"`
	Published time.Time `json:"published"` // zero when the feed had no parseable date
}
