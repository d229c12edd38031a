package service

import (
	"context"
	"testing"
	"time"

	"status_monitor/internal/models"
)

type fakeLogStore struct {
	gotFrom, gotTo time.Time
	gotProduct     string
	calls          int
	records        []models.LogRecord
}

func (f *fakeLogStore) Append(ctx context.Context, rec models.LogRecord) error { return nil }

func (f *fakeLogStore) List(ctx context.Context, from, to time.Time, product string) ([]models.LogRecord, error) {
	f.calls++
	f.gotFrom, f.gotTo, f.gotProduct = from, to, product
	return f.records, nil
}

func TestIncidentLogService_NormalizesFilter(t *testing.T) {
	t.Parallel()

	store := &fakeLogStore{records: []models.LogRecord{{Product: "Batch API"}}}
	svc := NewIncidentLogService(store)

	loc := time.FixedZone("UTC+3", 3*3600)
	from := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)
	got, err := svc.List(context.Background(), LogFilter{From: from, Product: "  Batch API "})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || store.calls != 1 {
		t.Fatalf("unexpected result %+v (calls=%d)", got, store.calls)
	}
	if store.gotFrom.Location() != time.UTC || !store.gotFrom.Equal(from) {
		t.Fatalf("from not normalized: %v", store.gotFrom)
	}
	if !store.gotTo.IsZero() || store.gotProduct != "Batch API" {
		t.Fatalf("unexpected args: to=%v product=%q", store.gotTo, store.gotProduct)
	}
}

func TestIncidentLogService_InvalidRange(t *testing.T) {
	t.Parallel()

	store := &fakeLogStore{}
	svc := NewIncidentLogService(store)
	now := time.Now()
	if _, err := svc.List(context.Background(), LogFilter{From: now, To: now.Add(-time.Hour)}); err != errInvalidTimeRange {
		t.Fatalf("want errInvalidTimeRange, got %v", err)
	}
	if store.calls != 0 {
		t.Fatalf("store should not be called")
	}
}
