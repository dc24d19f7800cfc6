package demo

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// BlockedMessage is returned to clients whose write was refused.
const BlockedMessage = "This action is disabled in demo mode"

// ContextKeyDemoMode stores the demo flag in the gin context.
const ContextKeyDemoMode = "demo_mode"

// Middleware keeps the office data read-only in demo mode.
// GET, HEAD and OPTIONS always pass; other methods pass only for
// allowlisted path prefixes.
type Middleware struct {
	enabled      bool
	allowedPaths []string
}

// NewMiddleware creates a demo mode middleware. allowedPaths are path
// prefixes that accept writes even while demo mode is on.
func NewMiddleware(enabled bool, allowedPaths ...string) *Middleware {
	return &Middleware{enabled: enabled, allowedPaths: allowedPaths}
}

// IsEnabled returns whether demo mode is active.
func (m *Middleware) IsEnabled() bool {
	return m != nil && m.enabled
}

// Handler returns a Gin middleware that blocks write operations.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.IsEnabled() {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if m.isAllowedPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":     BlockedMessage,
			"demo_mode": true,
		})
	}
}

func (m *Middleware) isAllowedPath(path string) bool {
	for _, allowed := range m.allowedPaths {
		if strings.HasPrefix(path, allowed) {
			return true
		}
	}
	return false
}

// InjectContext adds the demo flag to the request context.
func (m *Middleware) InjectContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyDemoMode, m.IsEnabled())
		c.Next()
	}
}
