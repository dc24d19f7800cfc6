// Package dberrors defines the failures the store reports to its callers.
//
// Callers distinguish them with errors.Is and errors.As:
//
//	if errors.Is(err, dberrors.ErrDuplicateKey) { ... }
//
//	var txErr *dberrors.TransactionError
//	if errors.As(err, &txErr) { ... }
package dberrors

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateKey is returned when an insert collides with an existing primary key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned by single-row lookups that match nothing.
	ErrNotFound = errors.New("record not found")
)

// StorageInitError means the store file could not be opened or the schema
// could not be applied. Nothing else can run after it.
type StorageInitError struct {
	Path string
	Op   string
	Err  error
}

func (e *StorageInitError) Error() string {
	return fmt.Sprintf("storage init (%s) at %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageInitError) Unwrap() error {
	return e.Err
}

// TransactionError reports the step of a multi-statement operation that
// failed. The transaction has been rolled back when it is returned.
type TransactionError struct {
	Op   string
	Step string
	Err  error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s: %s failed, rolled back: %v", e.Op, e.Step, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// IsDuplicateKey reports whether err is a primary-key or unique constraint
// violation raised by SQLite.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDuplicateKey) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}

// Translate maps driver errors onto the sentinels above. what names the
// record for the error message, e.g. "student s1".
func Translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case IsDuplicateKey(err):
		return fmt.Errorf("%s: %w", what, ErrDuplicateKey)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	default:
		return err
	}
}
