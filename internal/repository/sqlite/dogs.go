package sqlite

import (
	"context"
	"fmt"

	"github.com/garnizeh/dogwalk/internal/models"
	"github.com/garnizeh/dogwalk/pkg/repository"
)

func (r *SQLiteRepo) CreateDog(ctx context.Context, d *models.Dog) (int64, error) {
	if d == nil {
		return 0, fmt.Errorf("dog is nil")
	}

	res, err := r.conn.Exec(ctx,
		`INSERT INTO dogs (owner_id, name, size) VALUES (?, ?, ?)`,
		d.OwnerID, d.Name, d.Size)
	if err != nil {
		if isFKViolation(err) {
			return 0, repository.ErrBadReference
		}
		return 0, err
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) ListDogsWithOwner(ctx context.Context) ([]models.DogWithOwner, error) {
	rows, err := r.conn.QueryRows(ctx, `
		SELECT d.name, d.size, u.username
		FROM dogs d
		JOIN users u ON d.owner_id = u.user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.DogWithOwner
	for rows.Next() {
		var d models.DogWithOwner
		if err := rows.Scan(&d.DogName, &d.Size, &d.OwnerUsername); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

func (r *SQLiteRepo) ListDogsByOwner(ctx context.Context, ownerID int64) ([]models.Dog, error) {
	rows, err := r.conn.QueryRows(ctx,
		`SELECT dog_id, owner_id, name, size FROM dogs WHERE owner_id = ?`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Dog
	for rows.Next() {
		var d models.Dog
		if err := rows.Scan(&d.ID, &d.OwnerID, &d.Name, &d.Size); err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, rows.Err()
}
