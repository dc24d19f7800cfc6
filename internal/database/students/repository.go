// Package students provides database operations for student records.
//
// Deleting a student cascades to the rows that reference it (payment
// records, attendance logs and itineraries) inside one transaction.
//
// # Usage
//
//	repo := students.NewRepository(db)
//	list, err := repo.GetStudents(ctx)
package students

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/reforco/internal/database/dberrors"
	"github.com/mrlokans/reforco/internal/entities"
	"github.com/mrlokans/reforco/internal/validation"
)

// Repository handles all student database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new students repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetStudents returns every student ordered by name.
func (r *Repository) GetStudents(ctx context.Context) ([]entities.Student, error) {
	students := []entities.Student{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&students).Error
	return students, err
}

// GetStudentsByClass returns the students of one class group ordered by name.
func (r *Repository) GetStudentsByClass(ctx context.Context, classID string) ([]entities.Student, error) {
	students := []entities.Student{}
	err := r.db.WithContext(ctx).Where("classId = ?", classID).Order("name ASC").Find(&students).Error
	return students, err
}

// GetStudentByID retrieves a student by ID.
func (r *Repository) GetStudentByID(ctx context.Context, id string) (*entities.Student, error) {
	var student entities.Student
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&student).Error
	if err != nil {
		return nil, dberrors.Translate(err, "student "+id)
	}
	return &student, nil
}

// CountStudents returns the number of stored students.
func (r *Repository) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Student{}).Count(&count).Error
	return count, err
}

// AddStudent inserts a new student. An existing ID yields dberrors.ErrDuplicateKey.
func (r *Repository) AddStudent(ctx context.Context, student *entities.Student) error {
	if err := validation.Struct("student", student); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(student).Error; err != nil {
		return fmt.Errorf("add student: %w", dberrors.Translate(err, "student "+student.ID))
	}
	return nil
}

// UpdateStudent replaces every field except ID and RegistrationDate.
// It returns the number of rows matched; zero means no student has that ID.
func (r *Repository) UpdateStudent(ctx context.Context, student *entities.Student) (int64, error) {
	if err := validation.Struct("student", student); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Model(&entities.Student{}).
		Where("id = ?", student.ID).
		Updates(map[string]any{
			"name":       student.Name,
			"guardian":   student.Guardian,
			"contact":    student.Contact,
			"school":     student.School,
			"grade":      student.Grade,
			"report":     student.Report,
			"allergy":    student.Allergy,
			"classId":    student.ClassID,
			"paymentDay": student.PaymentDay,
			"amount":     student.Amount,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("update student %s: %w", student.ID, result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteStudent removes a student and every payment record, attendance log
// and itinerary referencing it. Either all four deletes apply or none do.
// It returns the number of student rows removed.
func (r *Repository) DeleteStudent(ctx context.Context, id string) (int64, error) {
	op := "delete student " + id
	var deleted int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&entities.Student{})
		if result.Error != nil {
			return &dberrors.TransactionError{Op: op, Step: "students", Err: result.Error}
		}
		deleted = result.RowsAffected

		dependents := []struct {
			step  string
			model any
		}{
			{"payment_records", &entities.PaymentRecord{}},
			{"attendance_logs", &entities.AttendanceLog{}},
			{"itineraries", &entities.Itinerary{}},
		}
		for _, dep := range dependents {
			if err := tx.Where("studentId = ?", id).Delete(dep.model).Error; err != nil {
				return &dberrors.TransactionError{Op: op, Step: dep.step, Err: err}
			}
		}
		return nil
	})
	if err != nil {
		var txErr *dberrors.TransactionError
		if !errors.As(err, &txErr) {
			// Begin or commit failed.
			err = &dberrors.TransactionError{Op: op, Step: "commit", Err: err}
		}
		return 0, err
	}
	return deleted, nil
}
