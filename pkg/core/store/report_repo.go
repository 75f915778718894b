package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bizlens/pkg/core/report"

	"github.com/jackc/pgx/v5"
)

// ReportRepo handles persistence of assembled business reports. The
// pipeline itself is stateless; history lives here and only here.
type ReportRepo struct{}

// NewReportRepo creates a new repository instance.
func NewReportRepo() *ReportRepo {
	return &ReportRepo{}
}

// Save persists the report as a JSONB blob, upserting on business ID so
// the latest report per business is always one lookup away.
//
// Schema assumption (migrations are managed out of band):
//
//	CREATE TABLE IF NOT EXISTS business_reports (
//	  business_id TEXT PRIMARY KEY,
//	  report_id   TEXT NOT NULL,
//	  report_json JSONB NOT NULL,
//	  updated_at  TIMESTAMPTZ NOT NULL
//	);
func (r *ReportRepo) Save(ctx context.Context, rep *report.BusinessReport) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	query := `
		INSERT INTO business_reports (business_id, report_id, report_json, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (business_id)
		DO UPDATE SET
			report_id = EXCLUDED.report_id,
			report_json = EXCLUDED.report_json,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := pool.Exec(ctx, query, rep.BusinessID, rep.ReportID, jsonData, time.Now()); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// Load retrieves the latest stored report for a business.
func (r *ReportRepo) Load(ctx context.Context, businessID string) (*report.BusinessReport, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT report_json FROM business_reports WHERE business_id = $1`

	var jsonData []byte
	if err := pool.QueryRow(ctx, query, businessID).Scan(&jsonData); err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no report found for business %s", businessID)
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	var rep report.BusinessReport
	if err := json.Unmarshal(jsonData, &rep); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &rep, nil
}

// ListRecent returns the business IDs with the most recently updated
// reports, newest first.
func (r *ReportRepo) ListRecent(ctx context.Context, limit int) ([]string, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := pool.Query(ctx, `SELECT business_id FROM business_reports ORDER BY updated_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
