package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"status_monitor/internal/config"
	"status_monitor/internal/models"
	"status_monitor/internal/repository/db"
)

// LogStore persists detected incidents. Implementations assume a single writer.
type LogStore interface {
	Append(ctx context.Context, rec models.LogRecord) error
	// List returns records in append order, filtered by [from, to] (zero bounds
	// are open) and exact product label when non-empty.
	List(ctx context.Context, from, to time.Time, product string) ([]models.LogRecord, error)
}

type Repository struct {
	LogStore LogStore

	db *sql.DB
}

// NewRepository opens the store selected by cfg.Driver.
func NewRepository(cfg config.StoreConfig) (*Repository, error) {
	switch cfg.Driver {
	case config.DriverJSON, "":
		return &Repository{LogStore: NewJSONFileStore(cfg.Path)}, nil
	case config.DriverSQLite:
		conn, err := db.InitDB(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Repository{LogStore: NewIncidentSQLite(conn), db: conn}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// Close releases the database handle, if any.
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// inRange reports whether t lies in [from, to]; zero bounds are open.
func inRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && t.After(to) {
		return false
	}
	return true
}
