package demo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(m *Middleware) *gin.Engine {
	router := gin.New()
	router.Use(m.Handler())
	ok := func(c *gin.Context) { c.String(http.StatusOK, "OK") }
	router.GET("/api/students", ok)
	router.HEAD("/api/students", ok)
	router.OPTIONS("/api/students", ok)
	router.POST("/api/students", ok)
	router.PUT("/api/attendance", ok)
	router.DELETE("/api/students/:id", ok)
	router.POST("/api/payments", ok)
	return router
}

func TestNewMiddleware(t *testing.T) {
	assert.True(t, NewMiddleware(true).IsEnabled())
	assert.False(t, NewMiddleware(false).IsEnabled())

	var m *Middleware
	assert.False(t, m.IsEnabled())
}

func TestMiddleware_Enabled(t *testing.T) {
	router := newTestRouter(NewMiddleware(true))

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/students", http.StatusOK},
		{http.MethodHead, "/api/students", http.StatusOK},
		{http.MethodOptions, "/api/students", http.StatusOK},
		{http.MethodPost, "/api/students", http.StatusForbidden},
		{http.MethodPut, "/api/attendance", http.StatusForbidden},
		{http.MethodDelete, "/api/students/s1", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestMiddleware_BlockedResponseBody(t *testing.T) {
	router := newTestRouter(NewMiddleware(true))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/students", nil))
	require.Equal(t, http.StatusForbidden, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["demo_mode"])
	assert.Equal(t, BlockedMessage, response["error"])
}

func TestMiddleware_AllowedPaths(t *testing.T) {
	router := newTestRouter(NewMiddleware(true, "/api/payments"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/payments", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/students", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMiddleware_DisabledAllowsAllRequests(t *testing.T) {
	router := newTestRouter(NewMiddleware(false))

	for _, method := range []string{http.MethodPost, http.MethodDelete} {
		path := "/api/students"
		if method == http.MethodDelete {
			path = "/api/students/s1"
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, method)
	}
}

func TestMiddleware_InjectContext(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		m := NewMiddleware(enabled)
		router := gin.New()
		router.Use(m.InjectContext())
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"demo": c.GetBool(ContextKeyDemoMode)})
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		var body map[string]bool
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, enabled, body["demo"])
	}
}
