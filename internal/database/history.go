package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akyairhashvil/contribcheck/internal/models"
)

// RecordFetch stores one applied fetch outcome.
func (d *Database) RecordFetch(ctx context.Context, rec models.FetchRecord) error {
	if rec.ID == "" {
		return wrapHistoryErr("record", rec.ID, fmt.Errorf("empty fetch id"))
	}
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO fetch_history (id, login, token_fp, started_at, finished_at, status, message, total_contributions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Login, nullableString(rec.TokenFingerprint),
		formatTime(rec.StartedAt), formatTime(rec.FinishedAt),
		rec.Status.String(), nullableString(rec.Message), int64(rec.TotalContributions))
	return wrapHistoryErr("record", rec.ID, err)
}

// RecentFetches returns up to limit records, newest first.
func (d *Database) RecentFetches(ctx context.Context, limit int) ([]models.FetchRecord, error) {
	return d.QueryFetches(ctx, NewHistoryQuery().Limit(limit))
}

// QueryFetches runs q and scans the matching records.
func (d *Database) QueryFetches(ctx context.Context, q *HistoryQuery) ([]models.FetchRecord, error) {
	query, args := q.Build()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapHistoryErr("list", "", err)
	}
	defer rows.Close()

	var out []models.FetchRecord
	for rows.Next() {
		var (
			rec              models.FetchRecord
			tokenFP, message sql.NullString
			started, ended   string
			status           string
			total            int64
		)
		if err := rows.Scan(&rec.ID, &rec.Login, &tokenFP, &started, &ended, &status, &message, &total); err != nil {
			return nil, wrapHistoryErr("scan", "", err)
		}
		rec.TokenFingerprint = tokenFP.String
		rec.Message = message.String
		rec.StartedAt = parseTime(started)
		rec.FinishedAt = parseTime(ended)
		rec.Status = parseStatus(status)
		if total > 0 {
			rec.TotalContributions = uint(total)
		}
		out = append(out, rec)
	}
	return out, wrapHistoryErr("list", "", rows.Err())
}

// PruneHistory keeps only the newest keep records.
func (d *Database) PruneHistory(ctx context.Context, keep int) (int64, error) {
	res, err := d.DB.ExecContext(ctx, `
		DELETE FROM fetch_history
		WHERE id NOT IN (SELECT id FROM fetch_history ORDER BY finished_at DESC LIMIT ?)`, keep)
	if err != nil {
		return 0, wrapHistoryErr("prune", "", err)
	}
	n, err := res.RowsAffected()
	return n, wrapHistoryErr("prune", "", err)
}
