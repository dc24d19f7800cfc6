// Package database provides the local store of the tutoring office.
//
// # Architecture
//
// The store is one SQLite file opened through GORM with a single
// connection. Record access is split into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, collaborator surface
//	├── schema.go        # Idempotent table creation
//	├── seed.go          # Demo records for an empty store
//	├── dberrors/        # Error taxonomy shared by all repositories
//	├── students/        # Student CRUD and cascading delete
//	├── payments/        # Monthly payment records (upsert)
//	├── attendance/      # Attendance logs per class and date (upsert)
//	└── itineraries/     # Study plans per student
//
// # Lifecycle
//
//	db, err := database.Init(ctx, "./reforco-escolar.db", database.WithSeed(true))
//	if err != nil {
//		var initErr *dberrors.StorageInitError
//		// errors.As(err, &initErr) is fatal: nothing else can run
//	}
//	defer db.Close()
//
// # Using Sub-packages
//
// Database exposes the operations the presentation layer calls
// (GetStudents, AddStudent, RecordPayment, UpsertAttendance, ...) and
// delegates each one to the matching repository. The repositories are also
// reachable directly:
//
//	list, err := db.Students.GetStudentsByClass(ctx, "A")
//
// # Keys
//
// All identifiers are caller-supplied strings. Payment records and
// attendance logs use derived keys (entities.PaymentID,
// entities.AttendanceID) so that writing the same pair twice updates the
// existing row instead of adding one.
//
// # Update and delete results
//
// Update and delete return the number of rows matched. Zero rows is not an
// error here; the caller decides whether a missing record matters.
package database
