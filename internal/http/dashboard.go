package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	reports Reports
	now     func() time.Time
}

func NewDashboardController(reports Reports, now func() time.Time) *DashboardController {
	return &DashboardController{reports: reports, now: now}
}

// GetDashboard returns student totals and this month's payment status.
// GET /api/dashboard
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	dashboard, err := dc.reports.Dashboard(c.Request.Context(), dc.now())
	if err != nil {
		respondInternalError(c, err, "dashboard")
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
