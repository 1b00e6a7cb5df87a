package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"caritasAPI/internal/database"
	"caritasAPI/internal/models"
)

var (
	// ErrNotFound means no visible row matched.
	ErrNotFound = database.ErrNotFound
	// ErrDuplicate means a unique constraint rejected the write.
	ErrDuplicate = errors.New("duplicate record")
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// where accumulates a conjunction of parameterized conditions. Clause text is
// always a constant from this package; user input only reaches args.
type where struct {
	clauses []string
	args    []any
}

func (w *where) add(clause string, args ...any) {
	w.clauses = append(w.clauses, clause)
	w.args = append(w.args, args...)
}

// search adds a case-insensitive substring match over the given columns.
func (w *where) search(term string, columns ...string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	pattern := "%" + strings.ToLower(term) + "%"
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = "LOWER(" + c + ") LIKE ?"
		w.args = append(w.args, pattern)
	}
	w.clauses = append(w.clauses, "("+strings.Join(parts, " OR ")+")")
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// paged returns the filter args followed by LIMIT and OFFSET values.
func (w *where) paged(p models.Page) []any {
	args := make([]any, 0, len(w.args)+2)
	args = append(args, w.args...)
	return append(args, p.Limit, p.Offset())
}

// tableStats provides the status/recency aggregates shared by the resource tables.
type tableStats struct {
	db           *database.DB
	table        string
	statusColumn string
}

func (s tableStats) Count(ctx context.Context) (int, error) {
	n, err := s.db.Count(ctx, "SELECT COUNT(*) FROM "+s.table)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", s.table, err)
	}
	return n, nil
}

func (s tableStats) CountSince(ctx context.Context, since time.Time) (int, error) {
	n, err := s.db.Count(ctx, "SELECT COUNT(*) FROM "+s.table+" WHERE created_at >= ?", since)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent %s: %w", s.table, err)
	}
	return n, nil
}

func (s tableStats) CountByStatus(ctx context.Context) ([]models.StatusCount, error) {
	counts := []models.StatusCount{}
	query := fmt.Sprintf(
		"SELECT %[1]s AS status, COUNT(*) AS count FROM %[2]s GROUP BY %[1]s ORDER BY %[1]s",
		s.statusColumn, s.table)
	if err := s.db.FetchMany(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("failed to group %s by status: %w", s.table, err)
	}
	return counts, nil
}

func notFoundOr(err error, what string, id int64) error {
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("failed to get %s %d: %w", what, id, err)
}

func requireAffected(res database.Result, what string, id int64) error {
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}
