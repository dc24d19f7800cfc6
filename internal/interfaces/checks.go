package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/reforco/internal/database"
	"github.com/mrlokans/reforco/internal/database/attendance"
	"github.com/mrlokans/reforco/internal/database/payments"
	"github.com/mrlokans/reforco/internal/database/students"
	"github.com/mrlokans/reforco/internal/http"
	"github.com/mrlokans/reforco/internal/scheduler"
	"github.com/mrlokans/reforco/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// The facade serves every controller and the report service
var _ http.Store = (*database.Database)(nil)
var _ http.Pinger = (*database.Database)(nil)
var _ services.ReportStore = (*database.Database)(nil)

// Sub-package repositories can back narrower consumers directly
var _ services.StudentReader = (*students.Repository)(nil)
var _ services.PaymentReader = (*payments.Repository)(nil)
var _ services.AttendanceReader = (*attendance.Repository)(nil)
var _ http.AttendanceStore = (*attendance.Repository)(nil)

// =============================================================================
// Reports
// =============================================================================

var _ http.Reports = (*services.ReportService)(nil)
var _ scheduler.ReminderSource = (*services.ReportService)(nil)
