package sqlite

import (
	"context"

	"github.com/garnizeh/dogwalk/internal/models"
)

// WalkerSummaries aggregates per-walker stats: completed walks (requests that
// reached status completed through an accepted application by the walker) and
// rating count/mean. One pair of aggregate queries per walker; fine at this
// scale.
func (r *SQLiteRepo) WalkerSummaries(ctx context.Context) ([]models.WalkerSummary, error) {
	rows, err := r.conn.QueryRows(ctx,
		`SELECT user_id, username FROM users WHERE role = 'walker'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type walker struct {
		id       int64
		username string
	}
	var walkers []walker
	for rows.Next() {
		var w walker
		if err := rows.Scan(&w.id, &w.username); err != nil {
			return nil, err
		}
		walkers = append(walkers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]models.WalkerSummary, 0, len(walkers))
	for _, w := range walkers {
		s := models.WalkerSummary{WalkerUsername: w.username}

		var avg *float64
		err := r.conn.QueryRow(ctx, `
			SELECT COUNT(1), AVG(rating)
			FROM walk_ratings
			WHERE walker_id = ?`, w.id).Scan(&s.TotalRatings, &avg)
		if err != nil {
			return nil, err
		}
		// AVG over zero rows is NULL, which matches the contract:
		// average_rating is null when there are no ratings.
		s.AverageRating = avg

		err = r.conn.QueryRow(ctx, `
			SELECT COUNT(1)
			FROM walk_requests wr
			JOIN walk_applications wa ON wa.request_id = wr.request_id
			WHERE wa.walker_id = ? AND wa.status = 'accepted' AND wr.status = 'completed'`,
			w.id).Scan(&s.CompletedWalks)
		if err != nil {
			return nil, err
		}

		out = append(out, s)
	}

	return out, nil
}
