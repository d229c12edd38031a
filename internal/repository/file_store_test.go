package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"status_monitor/internal/config"
	"status_monitor/internal/models"
)

func sampleRecord(i int) models.LogRecord {
	return models.LogRecord{
		Timestamp: fmt.Sprintf("2025-06-%02d 10:00:00", i+1),
		Product:   fmt.Sprintf("Product %d", i%2),
		Event:     fmt.Sprintf("Event %d", i),
		Status:    fmt.Sprintf("Status %d", i),
	}
}

func TestJSONFileStore_AppendRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "openai_status_log.json")
	store := NewJSONFileStore(path)

	const n = 5
	for i := 0; i < n; i++ {
		if err := store.Append(ctx(t), sampleRecord(i)); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var onDisk []map[string]string
	if err := json.Unmarshal(raw, &onDisk); err != nil {
		t.Fatalf("file is not a JSON array: %v", err)
	}
	if len(onDisk) != n {
		t.Fatalf("want %d records on disk, got %d", n, len(onDisk))
	}
	for i, m := range onDisk {
		want := sampleRecord(i)
		if m["timestamp"] != want.Timestamp || m["product"] != want.Product || m["event"] != want.Event || m["status"] != want.Status {
			t.Fatalf("record %d = %v; want %+v", i, m, want)
		}
		if len(m) != 4 {
			t.Fatalf("record %d has extra fields: %v", i, m)
		}
	}
	if !strings.Contains(string(raw), "\n  {") {
		t.Fatalf("expected indented array, got %s", raw)
	}
}

func TestJSONFileStore_ExistingFileIsExtended(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.json")
	if err := os.WriteFile(path, []byte(`[{"timestamp":"2025-01-01 00:00:00","product":"p","event":"e","status":"s"}]`), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	store := NewJSONFileStore(path)
	if err := store.Append(ctx(t), sampleRecord(3)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	got, err := store.List(ctx(t), time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].Event != "e" || got[1].Event != "Event 3" {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestJSONFileStore_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "log.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	err := NewJSONFileStore(path).Append(ctx(t), sampleRecord(0))
	if err == nil || !strings.Contains(err.Error(), "decode log file") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestJSONFileStore_ListFilters(t *testing.T) {
	t.Parallel()

	store := NewJSONFileStore(filepath.Join(t.TempDir(), "log.json"))
	for i := 0; i < 4; i++ {
		if err := store.Append(ctx(t), sampleRecord(i)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := store.List(ctx(t), time.Time{}, time.Time{}, "Product 1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].Event != "Event 1" || got[1].Event != "Event 3" {
		t.Fatalf("product filter: %+v", got)
	}

	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 3, 23, 59, 59, 0, time.UTC)
	got, err = store.List(ctx(t), from, to, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].Event != "Event 1" || got[1].Event != "Event 2" {
		t.Fatalf("range filter: %+v", got)
	}
}

func TestJSONFileStore_ListMissingFile(t *testing.T) {
	t.Parallel()

	got, err := NewJSONFileStore(filepath.Join(t.TempDir(), "none.json")).List(ctx(t), time.Time{}, time.Time{}, "")
	if err != nil || len(got) != 0 {
		t.Fatalf("want empty list, got %v, %v", got, err)
	}
}

func TestNewRepository_Drivers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repo, err := NewRepository(config.StoreConfig{Driver: config.DriverJSON, Path: filepath.Join(dir, "log.json")})
	if err != nil {
		t.Fatalf("json driver: %v", err)
	}
	if _, ok := repo.LogStore.(*JSONFileStore); !ok {
		t.Fatalf("want *JSONFileStore, got %T", repo.LogStore)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("close json repo: %v", err)
	}

	repo, err = NewRepository(config.StoreConfig{Driver: config.DriverSQLite, SQLitePath: filepath.Join(dir, "db", "log.db")})
	if err != nil {
		t.Fatalf("sqlite driver: %v", err)
	}
	defer repo.Close()
	if err := repo.LogStore.Append(ctx(t), sampleRecord(0)); err != nil {
		t.Fatalf("sqlite append: %v", err)
	}
	if err := repo.LogStore.Append(ctx(t), sampleRecord(1)); err != nil {
		t.Fatalf("sqlite append: %v", err)
	}
	got, err := repo.LogStore.List(ctx(t), time.Time{}, time.Time{}, "")
	if err != nil {
		t.Fatalf("sqlite list: %v", err)
	}
	if len(got) != 2 || got[0] != sampleRecord(0) || got[1] != sampleRecord(1) {
		t.Fatalf("sqlite round trip: %+v", got)
	}

	if _, err := NewRepository(config.StoreConfig{Driver: "postgres"}); err == nil {
		t.Fatalf("expected unknown driver error")
	}
}
