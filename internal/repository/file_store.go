package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"status_monitor/internal/models"
)

// JSONFileStore keeps every record in one JSON array on disk. Each Append
// reads the whole array and rewrites it.
type JSONFileStore struct {
	path string
}

func NewJSONFileStore(path string) *JSONFileStore {
	return &JSONFileStore{path: path}
}

var _ LogStore = (*JSONFileStore)(nil)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

// Path returns the backing file location.
func (s *JSONFileStore) Path() string { return s.path }

// Append adds rec to the end of the array, creating the file as [] first.
func (s *JSONFileStore) Append(ctx context.Context, rec models.LogRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.ensureFile(); err != nil {
		return err
	}

	records, err := s.readAll()
	if err != nil {
		return err
	}
	records = append(records, rec)
	return s.writeAll(records)
}

// List reads the array and applies the filter.
func (s *JSONFileStore) List(ctx context.Context, from, to time.Time, product string) ([]models.LogRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := s.readAll()
	if errors.Is(err, fs.ErrNotExist) {
		return []models.LogRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	out := make([]models.LogRecord, 0, len(records))
	for _, r := range records {
		if product != "" && r.Product != product {
			continue
		}
		if (!from.IsZero() || !to.IsZero()) && !inRange(r.Time(), from, to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *JSONFileStore) ensureFile() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("create log dir %q: %w", dir, err)
		}
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat log file %q: %w", s.path, err)
	}
	return s.writeAll([]models.LogRecord{})
}

func (s *JSONFileStore) readAll() ([]models.LogRecord, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read log file %q: %w", s.path, err)
	}
	var records []models.LogRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, fmt.Errorf("decode log file %q: %w", s.path, err)
	}
	return records, nil
}

func (s *JSONFileStore) writeAll(records []models.LogRecord) error {
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode log records: %w", err)
	}
	if err := os.WriteFile(s.path, b, fileMode); err != nil {
		return fmt.Errorf("write log file %q: %w", s.path, err)
	}
	return nil
}
