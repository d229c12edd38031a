package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	sm "status_monitor"
	"status_monitor/internal/classifier"
	"status_monitor/internal/models"

	"github.com/google/uuid"
)

const (
	defaultIncidentName   = "Unknown incident"
	defaultIncidentStatus = "unknown"
)

// WebhookService turns Statuspage deliveries into incident notices.
type WebhookService struct {
	classifier *classifier.Classifier
	now        func() time.Time
	newID      func() string
}

func NewWebhookService(c *classifier.Classifier) *WebhookService {
	return &WebhookService{
		classifier: c,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Process validates body, classifies the incident and renders its block.
// It has no side effects; the caller emits the notice.
func (s *WebhookService) Process(ctx context.Context, body []byte) (models.IncidentNotice, error) {
	if err := ctx.Err(); err != nil {
		return models.IncidentNotice{}, err
	}
	payload, err := decodePayload(body)
	if err != nil {
		return models.IncidentNotice{}, err
	}
	inc := payload.Incident

	name := inc.Name
	latest := latestUpdateBody(*inc)
	product := s.classifier.Classify(name + " " + latest)
	statusDesc := statusDescription(payload.Page, *inc)
	at := s.now().UTC()

	return models.IncidentNotice{
		DeliveryID:        s.newID(),
		ReceivedAt:        at,
		Product:           product,
		IncidentName:      name,
		StatusDescription: statusDesc,
		LatestUpdate:      latest,
		Line:              formatWebhookBlock(at, product, statusDesc, latest),
	}, nil
}

// decodePayload requires a JSON object carrying a non-empty "incident" object.
// Fields are read one by one; a field of the wrong type is treated as absent
// instead of rejecting the delivery. Absent name and status get their defaults,
// present empty strings are kept.
func decodePayload(body []byte) (sm.StatusPayload, error) {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil || env == nil {
		return sm.StatusPayload{}, fmt.Errorf("%w: invalid JSON", ErrMalformedInput)
	}

	rawIncident := env["incident"]
	if isAbsent(rawIncident) {
		return sm.StatusPayload{}, fmt.Errorf("%w: no incident object in payload", ErrMalformedInput)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(rawIncident, &fields); err != nil {
		return sm.StatusPayload{}, fmt.Errorf("%w: incident must be an object", ErrMalformedInput)
	}
	if len(fields) == 0 {
		return sm.StatusPayload{}, fmt.Errorf("%w: no incident object in payload", ErrMalformedInput)
	}

	inc := &sm.Incident{
		ID:        stringField(fields, "id", ""),
		Name:      stringField(fields, "name", defaultIncidentName),
		Status:    stringField(fields, "status", defaultIncidentStatus),
		Impact:    stringField(fields, "impact", ""),
		Shortlink: stringField(fields, "shortlink", ""),
	}
	var updates []json.RawMessage
	if err := json.Unmarshal(fields["incident_updates"], &updates); err == nil {
		for _, raw := range updates {
			var uf map[string]json.RawMessage
			_ = json.Unmarshal(raw, &uf)
			inc.IncidentUpdates = append(inc.IncidentUpdates, sm.IncidentUpdate{
				ID:     stringField(uf, "id", ""),
				Body:   stringField(uf, "body", ""),
				Status: stringField(uf, "status", defaultIncidentStatus),
			})
		}
	}

	out := sm.StatusPayload{Incident: inc}
	var pf map[string]json.RawMessage
	if err := json.Unmarshal(env["page"], &pf); err == nil && pf != nil {
		out.Page = &sm.Page{
			ID:                stringField(pf, "id", ""),
			StatusIndicator:   stringField(pf, "status_indicator", ""),
			StatusDescription: stringField(pf, "status_description", ""),
		}
	}
	return out, nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// stringField returns fields[key] when it holds a JSON string, def otherwise.
func stringField(fields map[string]json.RawMessage, key, def string) string {
	raw, ok := fields[key]
	if !ok || isAbsent(raw) {
		return def
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return def
	}
	return s
}

// latestUpdateBody returns the body of the last update, falling back to a
// status line when there are no updates or the body is empty.
func latestUpdateBody(inc sm.Incident) string {
	if len(inc.IncidentUpdates) == 0 {
		return "Incident status: " + inc.Status
	}
	last := inc.IncidentUpdates[len(inc.IncidentUpdates)-1]
	if last.Body != "" {
		return last.Body
	}
	return "Incident status: " + last.Status
}

// statusDescription picks the page description, then "<Impact> impact", then
// the capitalized incident status.
func statusDescription(page *sm.Page, inc sm.Incident) string {
	if page != nil && page.StatusDescription != "" {
		return page.StatusDescription
	}
	if inc.Impact != "" {
		return capitalize(inc.Impact) + " impact"
	}
	return capitalize(inc.Status)
}
