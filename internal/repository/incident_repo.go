package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"status_monitor/internal/models"

	"github.com/google/uuid"
)

type IncidentSQLite struct {
	db *sql.DB
}

func NewIncidentSQLite(db *sql.DB) *IncidentSQLite { return &IncidentSQLite{db: db} }

var _ LogStore = (*IncidentSQLite)(nil)

const insertIncidentSQL = `
		INSERT INTO incident_log (id, occurred_at, product, event, status)
		VALUES (?, ?, ?, ?, ?)
	`

// Append inserts rec under a fresh id. occurred_at keeps the record's own
// "YYYY-MM-DD HH:MM:SS" text so range filters compare lexically.
func (r *IncidentSQLite) Append(ctx context.Context, rec models.LogRecord) error {
	_, err := r.db.ExecContext(ctx, insertIncidentSQL,
		uuid.NewString(),
		rec.Timestamp,
		rec.Product,
		rec.Event,
		rec.Status,
	)
	return err
}

// List returns records in insertion order.
func (r *IncidentSQLite) List(ctx context.Context, from, to time.Time, product string) ([]models.LogRecord, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC().Format(models.RecordTimeLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC().Format(models.RecordTimeLayout))
	}
	if product = strings.TrimSpace(product); product != "" {
		conds = append(conds, "product = ?")
		args = append(args, product)
	}

	q := `SELECT occurred_at, product, event, status FROM incident_log`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY rowid ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.LogRecord, 0, 64)
	for rows.Next() {
		var rec models.LogRecord
		if err := rows.Scan(&rec.Timestamp, &rec.Product, &rec.Event, &rec.Status); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
