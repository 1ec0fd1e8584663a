package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/buildwise/smart-estimator/internal/buildwise/session"
)

const (
	SessionCookie = "bw_session"
	SessionHeader = "X-Session-Id"

	workspaceKey  = "workspace"
	sessionMaxAge = 7 * 24 * 60 * 60
)

// SessionMiddleware attaches the visitor's workspace, creating one when the
// cookie or header names none we know. The id is echoed in both.
func SessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			id, _ = c.Cookie(SessionCookie)
		}

		ws, _ := store.Open(id)
		c.Set(workspaceKey, ws)
		c.Header(SessionHeader, ws.ID())
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, ws.ID(), sessionMaxAge, "/", "", false, true)

		c.Next()
	}
}

func workspace(c *gin.Context) *session.Workspace {
	return c.MustGet(workspaceKey).(*session.Workspace)
}

// RateLimitMiddleware caps submissions across the service. A nil limiter
// lets everything through.
func RateLimitMiddleware(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter != nil && !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many submissions, try again shortly"})
			return
		}
		c.Next()
	}
}

// NewLimiter returns nil when perSecond is not positive.
func NewLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}
