package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/reforco/internal/database/dberrors"
	"github.com/mrlokans/reforco/internal/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseIDParam_Valid(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "s123"}}

	id, ok := parseIDParam(c, "id")

	assert.True(t, ok)
	assert.Equal(t, "s123", id)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestParseIDParam_Blank(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "  "}}

	id, ok := parseIDParam(c, "id")

	assert.False(t, ok)
	assert.Empty(t, id)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid id")
}

func TestRequireQuery(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		_, ok := requireQuery(c, "month", validation.IsMonthYear)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "month is required")
	})

	t.Run("rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/?month=2025-13", nil)

		_, ok := requireQuery(c, "month", validation.IsMonthYear)

		assert.False(t, ok)
		assert.Contains(t, w.Body.String(), "invalid month")
	})

	t.Run("valid", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/?month=2025-06", nil)

		month, ok := requireQuery(c, "month", validation.IsMonthYear)

		assert.True(t, ok)
		assert.Equal(t, "2025-06", month)
	})
}

func TestOptionalQuery_Fallback(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	month, ok := optionalQuery(c, "month", "2025-01", validation.IsMonthYear)

	assert.True(t, ok)
	assert.Equal(t, "2025-01", month)
}

func TestRespondStoreError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"validation", validation.Field("student", "paymentDay", "max"), http.StatusBadRequest, CodeValidation},
		{"duplicate", fmt.Errorf("add student: %w", dberrors.ErrDuplicateKey), http.StatusConflict, CodeDuplicate},
		{"not found", fmt.Errorf("get: %w", dberrors.ErrNotFound), http.StatusNotFound, CodeNotFound},
		{"other", errors.New("disk I/O error"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondStoreError(c, tc.err, "student", "test")

			assert.Equal(t, tc.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantBody)
		})
	}
}

func TestRespondStoreError_ValidationDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondStoreError(c, validation.Field("payment", "monthYear", "monthyear"), "payment", "test")

	var resp struct {
		Code    string                  `json:"code"`
		Details []validation.FieldError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CodeValidation, resp.Code)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "monthYear", resp.Details[0].Field)
}
