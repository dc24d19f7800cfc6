package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/reforco/internal/entities"
	"github.com/mrlokans/reforco/internal/utils"
	"github.com/mrlokans/reforco/internal/validation"
)

// AttendanceStore defines database operations for attendance logs.
type AttendanceStore interface {
	GetAttendanceForDate(ctx context.Context, classID, logDate string) ([]entities.AttendanceLog, error)
	UpsertAttendance(ctx context.Context, log *entities.AttendanceLog) error
}

type AttendanceController struct {
	store   AttendanceStore
	reports Reports
	now     func() time.Time
}

func NewAttendanceController(store AttendanceStore, reports Reports, now func() time.Time) *AttendanceController {
	return &AttendanceController{store: store, reports: reports, now: now}
}

// ListForDate returns the logs recorded for one class session.
// GET /api/attendance?classId=A&date=2025-06-10
func (ac *AttendanceController) ListForDate(c *gin.Context) {
	classID, ok := requireQuery(c, "classId", nil)
	if !ok {
		return
	}
	date, ok := requireQuery(c, "date", validation.IsDate)
	if !ok {
		return
	}

	logs, err := ac.store.GetAttendanceForDate(c.Request.Context(), classID, date)
	if err != nil {
		respondInternalError(c, err, "list attendance")
		return
	}
	c.JSON(http.StatusOK, logs)
}

// UpsertAttendance records or overwrites one student's outcome for a session.
// PUT /api/attendance
func (ac *AttendanceController) UpsertAttendance(c *gin.Context) {
	var log entities.AttendanceLog
	if err := c.ShouldBindJSON(&log); err != nil {
		respondBadRequest(c, "invalid attendance payload")
		return
	}
	log.AttachmentName = utils.SanitizeAttachmentName(log.AttachmentName)

	if err := ac.store.UpsertAttendance(c.Request.Context(), &log); err != nil {
		respondStoreError(c, err, "attendance", "upsert attendance")
		return
	}
	c.JSON(http.StatusOK, log)
}

// Sheet returns the class roster with each student's log for the date,
// pending where nothing was recorded. The date defaults to today.
// GET /api/attendance/sheet?classId=A&date=2025-06-10
func (ac *AttendanceController) Sheet(c *gin.Context) {
	classID, ok := requireQuery(c, "classId", nil)
	if !ok {
		return
	}
	date, ok := optionalQuery(c, "date", entities.LogDate(ac.now()), validation.IsDate)
	if !ok {
		return
	}

	sheet, err := ac.reports.AttendanceSheet(c.Request.Context(), classID, date)
	if err != nil {
		respondInternalError(c, err, "attendance sheet")
		return
	}
	c.JSON(http.StatusOK, sheet)
}
