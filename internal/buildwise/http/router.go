package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/buildwise/smart-estimator/internal/buildwise/session"
)

// RegisterPage mounts the HTML page and its form posts.
func (h *Handler) RegisterPage(r gin.IRouter, limiter *rate.Limiter) {
	r.GET("/", h.page)

	submit := r.Group("", RateLimitMiddleware(limiter))
	submit.POST("/estimate", h.submitEstimateForm)
	submit.POST("/plan", h.submitPlanForm)
}

// RegisterAPI mounts the JSON API.
func (h *Handler) RegisterAPI(rg *gin.RouterGroup, limiter *rate.Limiter) {
	rg.GET("/state", h.getState)
	rg.PUT("/form", h.updateForm)
	rg.POST("/insights/split", h.splitInsights)

	submit := rg.Group("", RateLimitMiddleware(limiter))
	submit.POST("/estimate", h.estimate)
	submit.POST("/generate-smart-plan", h.generatePlan)
}

// Register mounts both surfaces behind the session middleware.
func Register(r gin.IRouter, backend Backend, store *session.Store, limiter *rate.Limiter) {
	h := New(backend, store)

	web := r.Group("", SessionMiddleware(store))
	h.RegisterPage(web, limiter)
	h.RegisterAPI(web.Group("/api/v1"), limiter)
}
