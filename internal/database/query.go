package database

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned by FetchOne when no row matches.
var ErrNotFound = errors.New("record not found")

type Result struct {
	InsertedID   int64
	RowsAffected int64
}

// Queries are written with ? placeholders and rebound for the active driver.
// Values always travel as bound parameters.

// Execute runs a statement that returns no rows.
func (db *DB) Execute(ctx context.Context, query string, args ...any) (Result, error) {
	res, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return Result{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return Result{}, err
	}

	// postgres does not report insert ids; use Insert with RETURNING there
	id, _ := res.LastInsertId()

	return Result{InsertedID: id, RowsAffected: affected}, nil
}

// Insert runs an INSERT ... RETURNING id and reports the new id.
func (db *DB) Insert(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	if err := db.QueryRowxContext(ctx, db.Rebind(query), args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// FetchOne scans a single row into dest, or returns ErrNotFound.
func (db *DB) FetchOne(ctx context.Context, dest any, query string, args ...any) error {
	err := db.GetContext(ctx, dest, db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// FetchMany scans all rows into dest, which should be a pointer to a non-nil slice
// so that an empty result encodes as [] rather than null.
func (db *DB) FetchMany(ctx context.Context, dest any, query string, args ...any) error {
	return db.SelectContext(ctx, dest, db.Rebind(query), args...)
}

// Count runs a COUNT(*)-style query.
func (db *DB) Count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := db.GetContext(ctx, &n, db.Rebind(query), args...); err != nil {
		return 0, err
	}
	return n, nil
}
