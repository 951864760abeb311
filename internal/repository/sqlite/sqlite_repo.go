package sqlite

import (
	"log/slog"
	"strings"

	"github.com/garnizeh/dogwalk/internal/db"
	"github.com/garnizeh/dogwalk/pkg/repository"
)

// SQLiteRepo implements the repository interfaces using the internal DB
// wrapper. One instance backs every handler; the DB pool handles concurrency.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.UserRepo = (*SQLiteRepo)(nil)
var _ repository.DogRepo = (*SQLiteRepo)(nil)
var _ repository.WalkRequestRepo = (*SQLiteRepo)(nil)
var _ repository.WalkApplicationRepo = (*SQLiteRepo)(nil)
var _ repository.WalkRatingRepo = (*SQLiteRepo)(nil)
var _ repository.PaymentRepo = (*SQLiteRepo)(nil)
var _ repository.WalkerSummaryRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

// isUniqueViolation reports whether err came from a UNIQUE constraint. The
// modernc driver exposes no typed error for this, only the message.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isFKViolation reports whether err came from a FOREIGN KEY constraint.
func isFKViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
