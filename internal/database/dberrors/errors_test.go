package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	pk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
	notNull := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}

	assert.True(t, IsDuplicateKey(pk))
	assert.True(t, IsDuplicateKey(fmt.Errorf("insert: %w", pk)))
	assert.True(t, IsDuplicateKey(gorm.ErrDuplicatedKey))
	assert.False(t, IsDuplicateKey(notNull))
	assert.False(t, IsDuplicateKey(errors.New("disk I/O error")))
	assert.False(t, IsDuplicateKey(nil))
}

func TestTranslate(t *testing.T) {
	pk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}

	err := Translate(pk, "student s1")
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "student s1")

	assert.ErrorIs(t, Translate(gorm.ErrRecordNotFound, "itinerary it1"), ErrNotFound)
	assert.NoError(t, Translate(nil, "student s1"))

	other := errors.New("database is locked")
	assert.Same(t, other, Translate(other, "student s1"))
}

func TestTypedErrorsUnwrap(t *testing.T) {
	cause := errors.New("no such table: itineraries")

	txErr := fmt.Errorf("delete student: %w", &TransactionError{Op: "delete student s1", Step: "delete itineraries", Err: cause})
	var target *TransactionError
	assert.True(t, errors.As(txErr, &target))
	assert.Equal(t, "delete itineraries", target.Step)
	assert.ErrorIs(t, txErr, cause)

	initErr := &StorageInitError{Path: "/nope/app.db", Op: "open", Err: cause}
	assert.ErrorIs(t, initErr, cause)
	assert.Contains(t, initErr.Error(), "/nope/app.db")
}
