package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/reforco/internal/entities"
)

// seedStudents returns the demo pupils loaded into an empty store.
func seedStudents() []entities.Student {
	return []entities.Student{
		{
			ID:               "s1",
			Name:             "Ana Silva",
			Guardian:         "Mariana Silva",
			Contact:          "(86) 99999-1111",
			School:           "Escola ABC",
			Grade:            "5º Ano",
			Report:           "N/A",
			Allergy:          "Nenhuma",
			ClassID:          entities.ClassA,
			PaymentDay:       10,
			Amount:           250.00,
			RegistrationDate: entities.Timestamp(time.Date(2025, time.May, 15, 0, 0, 0, 0, time.Local)),
		},
		{
			ID:               "s2",
			Name:             "Bruno Costa",
			Guardian:         "Ricardo Costa",
			Contact:          "(86) 99999-2222",
			School:           "Escola XYZ",
			Grade:            "4º Ano",
			Report:           "Dislexia",
			Allergy:          "Amendoim",
			ClassID:          entities.ClassA,
			PaymentDay:       5,
			Amount:           250.00,
			RegistrationDate: entities.Timestamp(time.Date(2025, time.May, 20, 0, 0, 0, 0, time.Local)),
		},
	}
}

// SeedIfEmpty loads the demo students, plus a payment for the first one in
// the current month, when the students table is empty. It reports whether
// anything was written. A store holding any student is left untouched.
func (d *Database) SeedIfEmpty(ctx context.Context) (bool, error) {
	count, err := d.Students.CountStudents(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count students: %w", err)
	}
	if count > 0 {
		log.Printf("Seed data already present (%d students), skipping", count)
		return false, nil
	}

	students := seedStudents()
	now := d.now()
	payment := entities.NewPaymentRecord(students[0].ID, entities.MonthYear(now), now)

	err = d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range students {
			if err := tx.Create(&students[i]).Error; err != nil {
				return fmt.Errorf("failed to create student %s: %w", students[i].ID, err)
			}
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&payment).Error
	})
	if err != nil {
		return false, err
	}

	log.Printf("Seeded %d students and a payment for %s in %s", len(students), payment.StudentID, payment.MonthYear)
	return true, nil
}
