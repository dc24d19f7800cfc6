package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/reforco/internal/entities"
	"github.com/mrlokans/reforco/internal/validation"
)

// PaymentStore defines database operations for monthly payments.
type PaymentStore interface {
	StudentGetter
	GetPaymentsForMonth(ctx context.Context, monthYear string) ([]entities.PaymentRecord, error)
	RecordPayment(ctx context.Context, studentID, monthYear string) (*entities.PaymentRecord, error)
}

type PaymentsController struct {
	store   PaymentStore
	reports Reports
	now     func() time.Time
}

func NewPaymentsController(store PaymentStore, reports Reports, now func() time.Time) *PaymentsController {
	return &PaymentsController{store: store, reports: reports, now: now}
}

// ListForMonth returns the payments recorded for a month, the current one by default.
// GET /api/payments?month=2025-06
func (pc *PaymentsController) ListForMonth(c *gin.Context) {
	month, ok := optionalQuery(c, "month", entities.MonthYear(pc.now()), validation.IsMonthYear)
	if !ok {
		return
	}

	payments, err := pc.store.GetPaymentsForMonth(c.Request.Context(), month)
	if err != nil {
		respondInternalError(c, err, "list payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// RecordPayment marks a student as paid for a month. Recording the same
// month again refreshes the payment date.
// POST /api/payments
func (pc *PaymentsController) RecordPayment(c *gin.Context) {
	var req struct {
		StudentID string `json:"studentId" binding:"required"`
		MonthYear string `json:"monthYear"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "studentId is required")
		return
	}
	if req.MonthYear == "" {
		req.MonthYear = entities.MonthYear(pc.now())
	}

	ctx := c.Request.Context()
	if _, err := pc.store.GetStudentByID(ctx, req.StudentID); err != nil {
		respondStoreError(c, err, "student", "record payment")
		return
	}

	record, err := pc.store.RecordPayment(ctx, req.StudentID, req.MonthYear)
	if err != nil {
		respondStoreError(c, err, "payment", "record payment")
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListUnpaid returns the students with no payment for a month.
// GET /api/payments/unpaid?month=2025-06
func (pc *PaymentsController) ListUnpaid(c *gin.Context) {
	month, ok := optionalQuery(c, "month", entities.MonthYear(pc.now()), validation.IsMonthYear)
	if !ok {
		return
	}

	students, err := pc.reports.UnpaidStudents(c.Request.Context(), month)
	if err != nil {
		respondInternalError(c, err, "list unpaid students")
		return
	}
	c.JSON(http.StatusOK, students)
}

// ListReminders returns this month's overdue students, most overdue first.
// GET /api/payments/reminders
func (pc *PaymentsController) ListReminders(c *gin.Context) {
	reminders, err := pc.reports.DueReminders(c.Request.Context(), pc.now())
	if err != nil {
		respondInternalError(c, err, "list payment reminders")
		return
	}
	c.JSON(http.StatusOK, reminders)
}
