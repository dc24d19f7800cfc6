package payments

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/reforco/internal/entities"
	"github.com/mrlokans/reforco/internal/validation"
)

// tickingClock returns a clock that advances one minute per call.
func tickingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(time.Minute)
		return t
	}
}

func setupTestDB(t *testing.T) (*gorm.DB, *Repository) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "payments.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.PaymentRecord{}))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	clock := tickingClock(time.Date(2025, time.June, 5, 12, 0, 0, 0, time.UTC))
	return db, NewRepositoryWithClock(db, clock)
}

func TestRepository_RecordPayment(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	record, err := repo.RecordPayment(ctx, "s1", "2025-06")
	require.NoError(t, err)
	assert.Equal(t, "s1-2025-06", record.ID)
	assert.Equal(t, "2025-06-05T12:00:00.000Z", record.DatePaid)

	payments, err := repo.GetPaymentsForMonth(ctx, "2025-06")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "s1", payments[0].StudentID)
}

func TestRepository_RecordPayment_Twice_KeepsOneRow(t *testing.T) {
	db, repo := setupTestDB(t)
	ctx := context.Background()

	_, err := repo.RecordPayment(ctx, "s1", "2025-06")
	require.NoError(t, err)
	_, err = repo.RecordPayment(ctx, "s1", "2025-06")
	require.NoError(t, err)

	var rows []entities.PaymentRecord
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "s1-2025-06", rows[0].ID)
	assert.Equal(t, "2025-06-05T12:01:00.000Z", rows[0].DatePaid, "second call overwrites datePaid")
}

func TestRepository_RecordPayment_RejectsBadMonth(t *testing.T) {
	_, repo := setupTestDB(t)

	_, err := repo.RecordPayment(context.Background(), "s1", "June 2025")
	assert.True(t, validation.IsValidationError(err))

	_, err = repo.RecordPayment(context.Background(), "", "2025-06")
	assert.True(t, validation.IsValidationError(err))
}

func TestRepository_GetPaymentsForMonth_NoMatch(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	_, err := repo.RecordPayment(ctx, "s1", "2025-06")
	require.NoError(t, err)

	payments, err := repo.GetPaymentsForMonth(ctx, "1999-01")
	require.NoError(t, err)
	assert.NotNil(t, payments)
	assert.Empty(t, payments)
}

func TestRepository_GetPaymentsForStudent(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()

	for _, month := range []string{"2025-04", "2025-06", "2025-05"} {
		_, err := repo.RecordPayment(ctx, "s1", month)
		require.NoError(t, err)
	}
	_, err := repo.RecordPayment(ctx, "s2", "2025-06")
	require.NoError(t, err)

	history, err := repo.GetPaymentsForStudent(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "2025-06", history[0].MonthYear)
	assert.Equal(t, "2025-04", history[2].MonthYear)
}
