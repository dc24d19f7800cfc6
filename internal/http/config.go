package http

import (
	"time"

	"github.com/mrlokans/reforco/internal/demo"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Store   Store
	Reports Reports

	// Health checks; nil reports the database as not configured
	Health Pinger

	// Demo mode; nil or disabled leaves writes open
	DemoMiddleware *demo.Middleware

	// Application info
	Version string

	// Clock for registration dates, creation dates and current-month
	// defaults. Defaults to time.Now.
	Now func() time.Time
}

func (cfg RouterConfig) clock() func() time.Time {
	if cfg.Now != nil {
		return cfg.Now
	}
	return time.Now
}
