// Package payments provides database operations for monthly payment records.
//
// A payment record only states that a student paid a billing month; writing
// the same (student, month) pair again overwrites the payment date.
//
// # Usage
//
//	repo := payments.NewRepository(db)
//	err := repo.RecordPayment(ctx, "s1", "2025-06")
package payments

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/reforco/internal/entities"
	"github.com/mrlokans/reforco/internal/validation"
)

// Repository handles all payment record database operations.
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRepository creates a new payments repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// NewRepositoryWithClock creates a payments repository stamping payments with now().
func NewRepositoryWithClock(db *gorm.DB, now func() time.Time) *Repository {
	return &Repository{db: db, now: now}
}

// GetPaymentsForMonth returns the payment records of a billing month.
func (r *Repository) GetPaymentsForMonth(ctx context.Context, monthYear string) ([]entities.PaymentRecord, error) {
	records := []entities.PaymentRecord{}
	err := r.db.WithContext(ctx).Where("monthYear = ?", monthYear).Find(&records).Error
	return records, err
}

// GetPaymentsForStudent returns a student's payment history, newest month first.
func (r *Repository) GetPaymentsForStudent(ctx context.Context, studentID string) ([]entities.PaymentRecord, error) {
	records := []entities.PaymentRecord{}
	err := r.db.WithContext(ctx).Where("studentId = ?", studentID).Order("monthYear DESC").Find(&records).Error
	return records, err
}

// RecordPayment marks studentID as paid for monthYear. Repeating the call for
// the same pair keeps a single record and refreshes its payment date.
func (r *Repository) RecordPayment(ctx context.Context, studentID, monthYear string) (*entities.PaymentRecord, error) {
	record := entities.NewPaymentRecord(studentID, monthYear, r.now())
	if err := validation.Struct("payment record", &record); err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"studentId", "monthYear", "datePaid"}),
	}).Create(&record).Error
	if err != nil {
		return nil, fmt.Errorf("record payment %s: %w", record.ID, err)
	}
	return &record, nil
}
