package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/dogwalk/internal/models"
	"github.com/garnizeh/dogwalk/pkg/repository"
)

func (r *SQLiteRepo) CreateWalkRequest(ctx context.Context, wr *models.WalkRequest) (int64, error) {
	if wr == nil {
		return 0, fmt.Errorf("walk request is nil")
	}

	res, err := r.conn.Exec(ctx, `
		INSERT INTO walk_requests (dog_id, requested_time, duration_minutes, location, status)
		VALUES (?, ?, ?, ?, 'open')`,
		wr.DogID, wr.RequestedTime, wr.DurationMinutes, wr.Location)
	if err != nil {
		if isFKViolation(err) {
			return 0, repository.ErrBadReference
		}
		return 0, err
	}

	return res.LastInsertId()
}

// ListWalkRequests returns all walk requests, optionally narrowed to one
// status. An empty status means "any".
func (r *SQLiteRepo) ListWalkRequests(ctx context.Context, status models.RequestStatus) ([]models.WalkRequest, error) {
	query := `SELECT request_id, dog_id, requested_time, duration_minutes, location, status, created_at
		FROM walk_requests`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.WalkRequest
	for rows.Next() {
		var wr models.WalkRequest
		if err := rows.Scan(&wr.ID, &wr.DogID, &wr.RequestedTime, &wr.DurationMinutes, &wr.Location, &wr.Status, &wr.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, wr)
	}

	return out, rows.Err()
}

// ListOpenWalkRequests joins open requests with their dog and owner for the
// walker-facing board.
func (r *SQLiteRepo) ListOpenWalkRequests(ctx context.Context) ([]models.OpenWalkRequest, error) {
	rows, err := r.conn.QueryRows(ctx, `
		SELECT wr.request_id, d.name, d.size, u.username,
		       wr.requested_time, wr.duration_minutes, wr.location
		FROM walk_requests wr
		JOIN dogs d ON wr.dog_id = d.dog_id
		JOIN users u ON d.owner_id = u.user_id
		WHERE wr.status = 'open'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.OpenWalkRequest
	for rows.Next() {
		var o models.OpenWalkRequest
		if err := rows.Scan(&o.ID, &o.DogName, &o.Size, &o.OwnerUsername, &o.RequestedTime, &o.DurationMinutes, &o.Location); err != nil {
			return nil, err
		}
		out = append(out, o)
	}

	return out, rows.Err()
}

// UpdateWalkRequestStatus moves a request through its lifecycle. The read and
// the write run in one transaction so two concurrent transitions cannot both
// succeed from the same starting state.
func (r *SQLiteRepo) UpdateWalkRequestStatus(ctx context.Context, id int64, to models.RequestStatus) error {
	tx, err := r.conn.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var current models.RequestStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM walk_requests WHERE request_id = ?`, id).Scan(&current)
	if err == sql.ErrNoRows {
		return repository.ErrNotFound
	}
	if err != nil {
		return err
	}

	if !current.CanTransition(to) {
		return repository.ErrInvalidTransition
	}

	if _, err := tx.ExecContext(ctx, `UPDATE walk_requests SET status = ? WHERE request_id = ?`, to, id); err != nil {
		return err
	}

	return tx.Commit()
}
