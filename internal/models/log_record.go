package models

import "time"

// RecordTimeLayout is the timestamp layout persisted in log records.
const RecordTimeLayout = "2006-01-02 15:04:05"

// LogRecord is one detected incident as written to the log store.
type LogRecord struct {
	Timestamp string `json:"timestamp"` // YYYY-MM-DD HH:MM:SS
	Product   string `json:"product"`
	Event     string `json:"event"`
	Status    string `json:"status"`
}

// Time parses Timestamp as UTC. Zero time on malformed values.
func (r LogRecord) Time() time.Time {
	t, err := time.ParseInLocation(RecordTimeLayout, r.Timestamp, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}
