package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mrlokans/reforco/internal/entities"
)

// StudentReader provides the student queries the reports need.
type StudentReader interface {
	GetStudents(ctx context.Context) ([]entities.Student, error)
	GetStudentsByClass(ctx context.Context, classID string) ([]entities.Student, error)
}

// PaymentReader provides payment lookups by billing month.
type PaymentReader interface {
	GetPaymentsForMonth(ctx context.Context, monthYear string) ([]entities.PaymentRecord, error)
}

// AttendanceReader provides attendance lookups by class session.
type AttendanceReader interface {
	GetAttendanceForDate(ctx context.Context, classID, logDate string) ([]entities.AttendanceLog, error)
}

// ReportStore combines everything ReportService reads.
type ReportStore interface {
	StudentReader
	PaymentReader
	AttendanceReader
}

// SheetEntry pairs a student with the attendance shown for one session.
// Recorded is false when no log exists yet and Log holds the pending default.
type SheetEntry struct {
	Student  entities.Student       `json:"student"`
	Log      entities.AttendanceLog `json:"log"`
	Recorded bool                   `json:"recorded"`
}

// Reminder is a student whose payment for the month is due and missing.
type Reminder struct {
	Student   entities.Student `json:"student"`
	MonthYear string           `json:"monthYear"`
	DueDate   string           `json:"dueDate"`
	DaysLate  int              `json:"daysLate"`
}

// Dashboard summarises the office for the current month.
type Dashboard struct {
	MonthYear       string         `json:"monthYear"`
	TotalStudents   int            `json:"totalStudents"`
	PendingPayments int            `json:"pendingPayments"`
	PaidPayments    int            `json:"paidPayments"`
	StudentsByClass map[string]int `json:"studentsByClass"`
}

// ReportService derives the views the office screens show from raw records.
type ReportService struct {
	store ReportStore
}

// NewReportService creates a report service over store.
func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store}
}

// UnpaidStudents returns the students, ordered by name, with no payment
// record for monthYear.
func (s *ReportService) UnpaidStudents(ctx context.Context, monthYear string) ([]entities.Student, error) {
	students, err := s.store.GetStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	payments, err := s.store.GetPaymentsForMonth(ctx, monthYear)
	if err != nil {
		return nil, fmt.Errorf("list payments for %s: %w", monthYear, err)
	}

	paid := make(map[string]struct{}, len(payments))
	for _, p := range payments {
		paid[p.StudentID] = struct{}{}
	}

	unpaid := []entities.Student{}
	for _, st := range students {
		if _, ok := paid[st.ID]; !ok {
			unpaid = append(unpaid, st)
		}
	}
	return unpaid, nil
}

// AttendanceSheet lists every student of classID with the log recorded for
// logDate, defaulting to a pending entry with no topics or attachment.
func (s *ReportService) AttendanceSheet(ctx context.Context, classID, logDate string) ([]SheetEntry, error) {
	students, err := s.store.GetStudentsByClass(ctx, classID)
	if err != nil {
		return nil, fmt.Errorf("list class %s: %w", classID, err)
	}
	logs, err := s.store.GetAttendanceForDate(ctx, classID, logDate)
	if err != nil {
		return nil, fmt.Errorf("list attendance for %s on %s: %w", classID, logDate, err)
	}

	byStudent := make(map[string]entities.AttendanceLog, len(logs))
	for _, l := range logs {
		byStudent[l.StudentID] = l
	}

	sheet := make([]SheetEntry, 0, len(students))
	for _, st := range students {
		entry := SheetEntry{Student: st}
		if l, ok := byStudent[st.ID]; ok {
			entry.Log = l
			entry.Recorded = true
		} else {
			entry.Log = entities.PendingAttendance(st.ID, classID, logDate)
		}
		sheet = append(sheet, entry)
	}
	return sheet, nil
}

// DueReminders returns the unpaid students of today's month whose payment
// day has already passed, most overdue first. Payment days beyond the end of
// the month fall due on its last day.
func (s *ReportService) DueReminders(ctx context.Context, today time.Time) ([]Reminder, error) {
	monthYear := entities.MonthYear(today)
	unpaid, err := s.UnpaidStudents(ctx, monthYear)
	if err != nil {
		return nil, err
	}

	lastDay := daysIn(today.Year(), today.Month())
	reminders := []Reminder{}
	for _, st := range unpaid {
		day := st.PaymentDay
		if day > lastDay {
			day = lastDay
		}
		if day > today.Day() {
			continue
		}
		due := time.Date(today.Year(), today.Month(), day, 0, 0, 0, 0, today.Location())
		reminders = append(reminders, Reminder{
			Student:   st,
			MonthYear: monthYear,
			DueDate:   entities.LogDate(due),
			DaysLate:  today.Day() - day,
		})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DaysLate > reminders[j].DaysLate
	})
	return reminders, nil
}

// Dashboard counts students and this month's payment status.
func (s *ReportService) Dashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	monthYear := entities.MonthYear(now)
	students, err := s.store.GetStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	unpaid, err := s.UnpaidStudents(ctx, monthYear)
	if err != nil {
		return nil, err
	}

	byClass := make(map[string]int)
	for _, st := range students {
		byClass[st.ClassID]++
	}

	return &Dashboard{
		MonthYear:       monthYear,
		TotalStudents:   len(students),
		PendingPayments: len(unpaid),
		PaidPayments:    len(students) - len(unpaid),
		StudentsByClass: byClass,
	}, nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
