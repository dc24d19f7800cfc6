package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/reforco/internal/entities"
	"github.com/mrlokans/reforco/internal/services"
)

func TestPaymentsController_RecordPayment(t *testing.T) {
	t.Run("defaults to the current month and upserts", func(t *testing.T) {
		router, db := setupRouter(t, false)
		seedStudent(t, db, "s1", "Ana", "A")

		w := doRequest(router, "POST", "/api/payments", map[string]string{"studentId": "s1"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		record := decode[entities.PaymentRecord](t, w)
		assert.Equal(t, "s1-2025-06", record.ID)
		assert.Equal(t, "2025-06", record.MonthYear)

		w = doRequest(router, "POST", "/api/payments", map[string]string{"studentId": "s1", "monthYear": "2025-06"})
		require.Equal(t, http.StatusOK, w.Code)

		payments, err := db.GetPaymentsForMonth(context.Background(), "2025-06")
		require.NoError(t, err)
		assert.Len(t, payments, 1)
	})

	t.Run("unknown student", func(t *testing.T) {
		router, _ := setupRouter(t, false)

		w := doRequest(router, "POST", "/api/payments", map[string]string{"studentId": "ghost"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing student id", func(t *testing.T) {
		router, _ := setupRouter(t, false)

		w := doRequest(router, "POST", "/api/payments", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid month", func(t *testing.T) {
		router, db := setupRouter(t, false)
		seedStudent(t, db, "s1", "Ana", "A")

		w := doRequest(router, "POST", "/api/payments", map[string]string{"studentId": "s1", "monthYear": "06/2025"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), CodeValidation)
	})
}

func TestPaymentsController_ListForMonth(t *testing.T) {
	router, db := setupRouter(t, false)
	ctx := context.Background()
	seedStudent(t, db, "s1", "Ana", "A")
	_, err := db.RecordPayment(ctx, "s1", "2025-05")
	require.NoError(t, err)

	w := doRequest(router, "GET", "/api/payments?month=2025-05", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]entities.PaymentRecord](t, w), 1)

	w = doRequest(router, "GET", "/api/payments", nil)
	assert.Empty(t, decode[[]entities.PaymentRecord](t, w))

	w = doRequest(router, "GET", "/api/payments?month=2025-13", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentsController_ListUnpaid(t *testing.T) {
	router, db := setupRouter(t, false)
	seedStudent(t, db, "s1", "Ana", "A")
	seedStudent(t, db, "s2", "Bruno", "A")
	_, err := db.RecordPayment(context.Background(), "s1", "2025-06")
	require.NoError(t, err)

	w := doRequest(router, "GET", "/api/payments/unpaid", nil)

	require.Equal(t, http.StatusOK, w.Code)
	unpaid := decode[[]entities.Student](t, w)
	require.Len(t, unpaid, 1)
	assert.Equal(t, "s2", unpaid[0].ID)
}

func TestPaymentsController_ListReminders(t *testing.T) {
	router, db := setupRouter(t, false)
	seedStudent(t, db, "s1", "Ana", "A")

	w := doRequest(router, "GET", "/api/payments/reminders", nil)

	require.Equal(t, http.StatusOK, w.Code)
	reminders := decode[[]services.Reminder](t, w)
	require.Len(t, reminders, 1)
	assert.Equal(t, "2025-06-10", reminders[0].DueDate)
	assert.Equal(t, 2, reminders[0].DaysLate)
}
