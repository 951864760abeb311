package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/garnizeh/dogwalk/internal/models"
	"github.com/garnizeh/dogwalk/pkg/repository"
)

func (r *SQLiteRepo) CreatePayment(ctx context.Context, p *models.Payment) (int64, error) {
	if p == nil {
		return 0, fmt.Errorf("payment is nil")
	}

	res, err := r.conn.Exec(ctx, `
		INSERT INTO payments (request_id, owner_id, walker_id, amount, status)
		VALUES (?, ?, ?, ?, 'pending')`,
		p.RequestID, p.OwnerID, p.WalkerID, p.Amount)
	if err != nil {
		if isFKViolation(err) {
			return 0, repository.ErrBadReference
		}
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListPayments(ctx context.Context, f repository.PaymentFilter) ([]models.Payment, error) {
	query := `SELECT payment_id, request_id, owner_id, walker_id, amount, status, payment_date FROM payments`
	var (
		where []string
		args  []any
	)
	if f.RequestID > 0 {
		where = append(where, `request_id = ?`)
		args = append(args, f.RequestID)
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

	var out []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.RequestID, &p.OwnerID, &p.WalkerID, &p.Amount, &p.Status, &p.PaymentDate); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

// UpdatePaymentStatus settles or fails a pending payment.
func (r *SQLiteRepo) UpdatePaymentStatus(ctx context.Context, id int64, to models.PaymentStatus) error {
	tx, err := r.conn.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var current models.PaymentStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM payments WHERE payment_id = ?`, id).Scan(&current)
	if err == sql.ErrNoRows {
		return repository.ErrNotFound
	}
	if err != nil {
		return err
	}

	if !current.CanTransition(to) {
		return repository.ErrInvalidTransition
	}

	if _, err := tx.ExecContext(ctx, `UPDATE payments SET status = ? WHERE payment_id = ?`, to, id); err != nil {
		return err
	}

	return tx.Commit()
}
