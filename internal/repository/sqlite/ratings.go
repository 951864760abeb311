package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/dogwalk/internal/models"
	"github.com/garnizeh/dogwalk/pkg/repository"
)

// CreateWalkRating inserts a rating for a completed walk. The walk must exist
// and be completed, and a request can only be rated once; the existence check
// and the insert share a transaction so concurrent raters cannot race past
// the completed-status check.
func (r *SQLiteRepo) CreateWalkRating(ctx context.Context, rt *models.WalkRating) (int64, error) {
	if rt == nil {
		return 0, fmt.Errorf("rating is nil")
	}

	tx, err := r.conn.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var status models.RequestStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM walk_requests WHERE request_id = ?`, rt.RequestID).Scan(&status)
	if err == sql.ErrNoRows {
		return 0, repository.ErrBadReference
	}
	if err != nil {
		return 0, err
	}
	if status != models.RequestCompleted {
		return 0, repository.ErrInvalidTransition
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO walk_ratings (request_id, walker_id, owner_id, rating, comment)
		VALUES (?, ?, ?, ?, ?)`,
		rt.RequestID, rt.WalkerID, rt.OwnerID, rt.Rating, rt.Comment)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			// one rating per request
			return 0, repository.ErrDuplicate
		case isFKViolation(err):
			return 0, repository.ErrBadReference
		}
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	return id, tx.Commit()
}

// ListWalkRatings returns ratings, optionally narrowed to one walker.
// walkerID <= 0 means "all walkers".
func (r *SQLiteRepo) ListWalkRatings(ctx context.Context, walkerID int64) ([]models.WalkRating, error) {
	query := `SELECT rating_id, request_id, walker_id, owner_id, rating, comment, rated_at FROM walk_ratings`
	args := []any{}
	if walkerID > 0 {
		query += ` WHERE walker_id = ?`
		args = append(args, walkerID)
	}

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.WalkRating
	for rows.Next() {
		var rt models.WalkRating
		if err := rows.Scan(&rt.ID, &rt.RequestID, &rt.WalkerID, &rt.OwnerID, &rt.Rating, &rt.Comment, &rt.RatedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}

	return out, rows.Err()
}
