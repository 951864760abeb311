package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/garnizeh/dogwalk/internal/models"
	"github.com/garnizeh/dogwalk/pkg/repository"
)

func (r *SQLiteRepo) CreateWalkApplication(ctx context.Context, a *models.WalkApplication) (int64, error) {
	if a == nil {
		return 0, fmt.Errorf("application is nil")
	}

	res, err := r.conn.Exec(ctx, `
		INSERT INTO walk_applications (request_id, walker_id, status)
		VALUES (?, ?, 'pending')`,
		a.RequestID, a.WalkerID)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			// one application per (request, walker)
			return 0, repository.ErrDuplicate
		case isFKViolation(err):
			return 0, repository.ErrBadReference
		}
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListWalkApplications(ctx context.Context, f repository.WalkApplicationFilter) ([]models.WalkApplication, error) {
	query := `SELECT application_id, request_id, walker_id, status, applied_at FROM walk_applications`
	var (
		where []string
		args  []any
	)
	if f.RequestID > 0 {
		where = append(where, `request_id = ?`)
		args = append(args, f.RequestID)
	}
	if f.WalkerID > 0 {
		where = append(where, `walker_id = ?`)
		args = append(args, f.WalkerID)
	}
	if f.Status != "" {
		where = append(where, `status = ?`)
		args = append(args, f.Status)
	}
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}

	rows, err := r.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.WalkApplication
	for rows.Next() {
		var a models.WalkApplication
		if err := rows.Scan(&a.ID, &a.RequestID, &a.WalkerID, &a.Status, &a.AppliedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

// UpdateWalkApplicationStatus decides a pending application.
func (r *SQLiteRepo) UpdateWalkApplicationStatus(ctx context.Context, id int64, to models.ApplicationStatus) error {
	tx, err := r.conn.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var current models.ApplicationStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM walk_applications WHERE application_id = ?`, id).Scan(&current)
	if err == sql.ErrNoRows {
		return repository.ErrNotFound
	}
	if err != nil {
		return err
	}

	if !current.CanTransition(to) {
		return repository.ErrInvalidTransition
	}

	if _, err := tx.ExecContext(ctx, `UPDATE walk_applications SET status = ? WHERE application_id = ?`, to, id); err != nil {
		return err
	}

	return tx.Commit()
}
