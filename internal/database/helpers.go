package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/thenoetrevino/eventreg/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr(err, "failed to begin transaction")
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("failed to rollback transaction: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageErr(err, "failed to commit transaction")
	}

	return nil
}

// closeRows closes a result set, logging instead of returning the error
func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		log.Printf("failed to close rows: %v", err)
	}
}

// storageErr wraps a driver error with context and the matching domain
// sentinel, so callers can use errors.Is against models.Err* while the
// original driver error stays in the chain.
func storageErr(err error, format string, args ...any) error {
	args = append(args, classify(err), err)
	return fmt.Errorf(format+": %w: %w", args...)
}

// classify maps a driver error onto the domain error taxonomy
func classify(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return models.ErrDuplicateKey
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return models.ErrNotFound
		}

		// Extended codes may be off for a connection; fall back to the message
		if sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			msg := sqliteErr.Error()
			switch {
			case strings.Contains(msg, "UNIQUE constraint failed"):
				return models.ErrDuplicateKey
			case strings.Contains(msg, "FOREIGN KEY constraint failed"):
				return models.ErrNotFound
			}
		}
	}

	return models.ErrStorage
}

// NullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
