package http

import (
	"context"
	"time"

	"github.com/mrlokans/reforco/internal/entities"
	"github.com/mrlokans/reforco/internal/services"
)

// Each controller declares the store methods it uses in its own file.
// Store is the union, satisfied by *database.Database.

// StudentGetter provides single-student lookups shared by several controllers.
type StudentGetter interface {
	GetStudentByID(ctx context.Context, id string) (*entities.Student, error)
}

// Store combines all store interfaces for wiring the router.
type Store interface {
	StudentStore
	ItineraryStore
	PaymentStore
	AttendanceStore
}

// Reports provides the derived views served next to raw records.
type Reports interface {
	UnpaidStudents(ctx context.Context, monthYear string) ([]entities.Student, error)
	AttendanceSheet(ctx context.Context, classID, logDate string) ([]services.SheetEntry, error)
	DueReminders(ctx context.Context, today time.Time) ([]services.Reminder, error)
	Dashboard(ctx context.Context, now time.Time) (*services.Dashboard, error)
}
