package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/reforco/internal/entities"
	"github.com/mrlokans/reforco/internal/services"
)

func TestAttendanceController_UpsertAndList(t *testing.T) {
	router, db := setupRouter(t, false)
	seedStudent(t, db, "s1", "Ana", "A")

	body := map[string]any{
		"studentId": "s1", "classId": "A", "logDate": "2025-06-10",
		"status": "Presente", "topics": "Equações",
	}
	w := doRequest(router, "PUT", "/api/attendance", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	saved := decode[entities.AttendanceLog](t, w)
	assert.Equal(t, "s1-A-2025-06-10", saved.ID)

	body["status"] = "Ausente"
	body["topics"] = nil
	w = doRequest(router, "PUT", "/api/attendance", body)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "GET", "/api/attendance?classId=A&date=2025-06-10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	logs := decode[[]entities.AttendanceLog](t, w)
	require.Len(t, logs, 1)
	assert.Equal(t, entities.AttendanceAbsent, logs[0].Status)
	assert.Nil(t, logs[0].Topics)
}

func TestAttendanceController_Rejects(t *testing.T) {
	router, _ := setupRouter(t, false)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"unknown status", map[string]any{"studentId": "s1", "classId": "A", "logDate": "2025-06-10", "status": "Talvez"}},
		{"bad date", map[string]any{"studentId": "s1", "classId": "A", "logDate": "10/06/2025", "status": "Presente"}},
		{"mismatched id", map[string]any{"id": "x", "studentId": "s1", "classId": "A", "logDate": "2025-06-10", "status": "Presente"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, "PUT", "/api/attendance", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAttendanceController_ListRequiresParams(t *testing.T) {
	router, _ := setupRouter(t, false)

	w := doRequest(router, "GET", "/api/attendance?date=2025-06-10", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "classId is required")

	w = doRequest(router, "GET", "/api/attendance?classId=A&date=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttendanceController_Sheet(t *testing.T) {
	router, db := setupRouter(t, false)
	seedStudent(t, db, "s1", "Ana", "A")
	seedStudent(t, db, "s2", "Bruno", "A")

	w := doRequest(router, "PUT", "/api/attendance", map[string]any{
		"studentId": "s2", "classId": "A", "logDate": "2025-06-12", "status": "Presente",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, "GET", "/api/attendance/sheet?classId=A", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sheet := decode[[]services.SheetEntry](t, w)
	require.Len(t, sheet, 2)
	assert.Equal(t, entities.AttendancePending, sheet[0].Log.Status)
	assert.False(t, sheet[0].Recorded)
	assert.Equal(t, entities.AttendancePresent, sheet[1].Log.Status)
	assert.True(t, sheet[1].Recorded)
}
