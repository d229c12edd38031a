package status_monitor

// StatusPayload is the Statuspage webhook body for an incident update.
type StatusPayload struct {
	Page     *Page     `json:"page,omitempty"`
	Incident *Incident `json:"incident,omitempty"`
}

type Page struct {
	ID                string `json:"id,omitempty"`
	StatusIndicator   string `json:"status_indicator,omitempty"` // none | minor | major | critical
	StatusDescription string `json:"status_description,omitempty"`
}

// Incident is the incident object embedded in a webhook payload.
type Incident struct {
	ID              string           `json:"id,omitempty"`
	Name            string           `json:"name,omitempty"`
	Status          string           `json:"status,omitempty"` // investigating | identified | monitoring | resolved
	Impact          string           `json:"impact,omitempty"` // none | minor | major | critical
	Shortlink       string           `json:"shortlink,omitempty"`
	IncidentUpdates []IncidentUpdate `json:"incident_updates,omitempty"`
}

// IncidentUpdate is one entry of an incident's update history, oldest first.
type IncidentUpdate struct {
	ID     string `json:"id,omitempty"`
	Body   string `json:"body,omitempty"`
	Status string `json:"status,omitempty"`
}
