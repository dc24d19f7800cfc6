package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/reforco/internal/database/attendance"
	"github.com/mrlokans/reforco/internal/database/dberrors"
	"github.com/mrlokans/reforco/internal/database/itineraries"
	"github.com/mrlokans/reforco/internal/database/payments"
	"github.com/mrlokans/reforco/internal/database/students"
	"github.com/mrlokans/reforco/internal/entities"
)

// Database owns the single connection to the local store and the
// repositories built on it.
type Database struct {
	DB *gorm.DB

	path string
	now  func() time.Time

	Students    *students.Repository
	Payments    *payments.Repository
	Attendance  *attendance.Repository
	Itineraries *itineraries.Repository
}

type options struct {
	logLevel logger.LogLevel
	now      func() time.Time
	seed     bool
}

// Option configures NewDatabase and Init.
type Option func(*options)

// WithLogLevel sets the GORM SQL log level.
func WithLogLevel(level logger.LogLevel) Option {
	return func(o *options) { o.logLevel = level }
}

// WithClock replaces time.Now for payment dates and seeding.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithSeed makes Init load the demo records into an empty store.
func WithSeed(seed bool) Option {
	return func(o *options) { o.seed = seed }
}

// ParseLogLevel maps a config value onto a GORM log level. Unknown values
// fall back to Warn.
func ParseLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// NewDatabase opens the store file at dbPath and applies the schema. Any
// failure is a *dberrors.StorageInitError.
func NewDatabase(dbPath string, opts ...Option) (*Database, error) {
	o := options{logLevel: logger.Warn, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  o.logLevel,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, &dberrors.StorageInitError{Path: dbPath, Op: "open", Err: err}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, &dberrors.StorageInitError{Path: dbPath, Op: "open", Err: err}
	}
	// One handle, one writer.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, &dberrors.StorageInitError{Path: dbPath, Op: "open", Err: err}
	}

	database := &Database{
		DB:          db,
		path:        dbPath,
		now:         o.now,
		Students:    students.NewRepository(db),
		Payments:    payments.NewRepositoryWithClock(db, o.now),
		Attendance:  attendance.NewRepository(db),
		Itineraries: itineraries.NewRepository(db),
	}

	if err := database.EnsureSchema(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

// Init opens the store, applies the schema and, when WithSeed(true) is
// given, seeds an empty store with demo records.
func Init(ctx context.Context, dbPath string, opts ...Option) (*Database, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	db, err := NewDatabase(dbPath, opts...)
	if err != nil {
		return nil, err
	}

	if o.seed {
		if _, err := db.SeedIfEmpty(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}
	return db, nil
}

// Path returns the store file location.
func (d *Database) Path() string {
	return d.path
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the store file is still reachable.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// --- Collaborator surface ---

func (d *Database) GetStudents(ctx context.Context) ([]entities.Student, error) {
	return d.Students.GetStudents(ctx)
}

func (d *Database) GetStudentByID(ctx context.Context, id string) (*entities.Student, error) {
	return d.Students.GetStudentByID(ctx, id)
}

func (d *Database) GetStudentsByClass(ctx context.Context, classID string) ([]entities.Student, error) {
	return d.Students.GetStudentsByClass(ctx, classID)
}

func (d *Database) CountStudents(ctx context.Context) (int64, error) {
	return d.Students.CountStudents(ctx)
}

func (d *Database) AddStudent(ctx context.Context, student *entities.Student) error {
	return d.Students.AddStudent(ctx, student)
}

func (d *Database) UpdateStudent(ctx context.Context, student *entities.Student) (int64, error) {
	return d.Students.UpdateStudent(ctx, student)
}

func (d *Database) DeleteStudent(ctx context.Context, id string) (int64, error) {
	return d.Students.DeleteStudent(ctx, id)
}

func (d *Database) GetPaymentsForMonth(ctx context.Context, monthYear string) ([]entities.PaymentRecord, error) {
	return d.Payments.GetPaymentsForMonth(ctx, monthYear)
}

func (d *Database) GetPaymentsForStudent(ctx context.Context, studentID string) ([]entities.PaymentRecord, error) {
	return d.Payments.GetPaymentsForStudent(ctx, studentID)
}

func (d *Database) RecordPayment(ctx context.Context, studentID, monthYear string) (*entities.PaymentRecord, error) {
	return d.Payments.RecordPayment(ctx, studentID, monthYear)
}

func (d *Database) GetAttendanceForDate(ctx context.Context, classID, logDate string) ([]entities.AttendanceLog, error) {
	return d.Attendance.GetAttendanceForDate(ctx, classID, logDate)
}

func (d *Database) GetAttendanceForStudent(ctx context.Context, studentID string) ([]entities.AttendanceLog, error) {
	return d.Attendance.GetAttendanceForStudent(ctx, studentID)
}

func (d *Database) UpsertAttendance(ctx context.Context, log *entities.AttendanceLog) error {
	return d.Attendance.UpsertAttendance(ctx, log)
}

func (d *Database) GetItinerariesForStudent(ctx context.Context, studentID string) ([]entities.Itinerary, error) {
	return d.Itineraries.GetItinerariesForStudent(ctx, studentID)
}

func (d *Database) GetItineraryByID(ctx context.Context, id string) (*entities.Itinerary, error) {
	return d.Itineraries.GetItineraryByID(ctx, id)
}

func (d *Database) AddItinerary(ctx context.Context, itinerary *entities.Itinerary) error {
	return d.Itineraries.AddItinerary(ctx, itinerary)
}

func (d *Database) UpdateItinerary(ctx context.Context, itinerary *entities.Itinerary) (int64, error) {
	return d.Itineraries.UpdateItinerary(ctx, itinerary)
}

func (d *Database) DeleteItinerary(ctx context.Context, id string) (int64, error) {
	return d.Itineraries.DeleteItinerary(ctx, id)
}
