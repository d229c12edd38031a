package models

import "time"

// IncidentNotice is what the webhook receiver emits for one accepted delivery.
type IncidentNotice struct {
	DeliveryID        string    `json:"delivery_id"`
	ReceivedAt        time.Time `json:"received_at"`
	Product           string    `json:"product"`
	IncidentName      string    `json:"incident_name"`
	StatusDescription string    `json:"status_description"`
	LatestUpdate      string    `json:"latest_update"`
	Line              string    `json:"line"`
}
