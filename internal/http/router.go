package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply demo mode middleware if enabled
	if cfg.DemoMiddleware.IsEnabled() {
		router.Use(cfg.DemoMiddleware.InjectContext())
		router.Use(cfg.DemoMiddleware.Handler())
	}

	now := cfg.clock()
	health := NewHealthController(cfg.Health, cfg.Version)
	students := NewStudentsController(cfg.Store, now)
	itineraries := NewItinerariesController(cfg.Store, now)
	payments := NewPaymentsController(cfg.Store, cfg.Reports, now)
	attendance := NewAttendanceController(cfg.Store, cfg.Reports, now)
	dashboard := NewDashboardController(cfg.Reports, now)
	demoController := NewDemoController(cfg.DemoMiddleware)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")

	// Students
	api.GET("/students", students.ListStudents)
	api.POST("/students", students.CreateStudent)
	api.GET("/students/:id", students.GetStudent)
	api.PUT("/students/:id", students.UpdateStudent)
	api.DELETE("/students/:id", students.DeleteStudent)
	api.GET("/students/:id/payments", students.ListPayments)
	api.GET("/students/:id/attendance", students.ListAttendance)

	// Itineraries
	api.GET("/students/:id/itineraries", itineraries.ListForStudent)
	api.POST("/students/:id/itineraries", itineraries.CreateItinerary)
	api.GET("/itineraries/:id", itineraries.GetItinerary)
	api.PUT("/itineraries/:id", itineraries.UpdateItinerary)
	api.DELETE("/itineraries/:id", itineraries.DeleteItinerary)

	// Payments
	api.GET("/payments", payments.ListForMonth)
	api.POST("/payments", payments.RecordPayment)
	api.GET("/payments/unpaid", payments.ListUnpaid)
	api.GET("/payments/reminders", payments.ListReminders)

	// Attendance
	api.GET("/attendance", attendance.ListForDate)
	api.PUT("/attendance", attendance.UpsertAttendance)
	api.GET("/attendance/sheet", attendance.Sheet)

	// Dashboard
	api.GET("/dashboard", dashboard.GetDashboard)

	// Demo mode status endpoint (always available)
	api.GET("/demo/status", demoController.GetStatus)

	return router
}
