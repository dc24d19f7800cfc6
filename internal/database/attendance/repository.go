// Package attendance provides database operations for per-class attendance logs.
//
// # Usage
//
//	repo := attendance.NewRepository(db)
//	logs, err := repo.GetAttendanceForDate(ctx, "A", "2025-06-10")
package attendance

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/reforco/internal/entities"
	"github.com/mrlokans/reforco/internal/validation"
)

// Repository handles all attendance database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new attendance repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAttendanceForDate returns the logs of one class session.
func (r *Repository) GetAttendanceForDate(ctx context.Context, classID, logDate string) ([]entities.AttendanceLog, error) {
	logs := []entities.AttendanceLog{}
	err := r.db.WithContext(ctx).
		Where("classId = ? AND logDate = ?", classID, logDate).
		Find(&logs).Error
	return logs, err
}

// GetAttendanceForStudent returns a student's attendance history, newest first.
func (r *Repository) GetAttendanceForStudent(ctx context.Context, studentID string) ([]entities.AttendanceLog, error) {
	logs := []entities.AttendanceLog{}
	err := r.db.WithContext(ctx).
		Where("studentId = ?", studentID).
		Order("logDate DESC").
		Find(&logs).Error
	return logs, err
}

// UpsertAttendance inserts the log or, when its key already exists, rewrites
// status, topics and attachment. An empty ID is derived from the student,
// class and date; a non-empty ID must equal that derived key.
func (r *Repository) UpsertAttendance(ctx context.Context, log *entities.AttendanceLog) error {
	if err := validation.Struct("attendance log", log); err != nil {
		return err
	}
	derived := log.DerivedID()
	if log.ID == "" {
		log.ID = derived
	} else if log.ID != derived {
		return validation.Field("attendance log", "id", "derived")
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "topics", "attachmentName", "attachmentContent"}),
	}).Create(log).Error
	if err != nil {
		return fmt.Errorf("upsert attendance %s: %w", log.ID, err)
	}
	return nil
}
