// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - StudentStore, ItineraryStore, PaymentStore, AttendanceStore: the
//     per-controller views of the store (internal/http)
//   - Store: their union, implemented by *database.Database
//   - ReportStore: the reads behind derived views (internal/services/reports.go)
//
// ## Reporting Interfaces
//
//   - Reports: unpaid lists, attendance sheets, reminders and the dashboard
//     as served over HTTP (internal/http/stores.go)
//   - ReminderSource: what the payment reminder job polls
//     (internal/scheduler/payment_reminders.go)
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g., class schedules):
//
//  1. Create sub-package: internal/database/schedules/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Add the model to schemaModels in internal/database/schema.go
//
//  4. Delegate from *database.Database and add compile-time checks:
//
//     var _ http.ScheduleStore = (*database.Database)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for examples.
package interfaces
