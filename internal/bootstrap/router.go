package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/buildwise/smart-estimator/internal/api/http"
	"github.com/buildwise/smart-estimator/internal/api/http/middleware"
	"github.com/buildwise/smart-estimator/internal/buildwise/backend"
	bwhttp "github.com/buildwise/smart-estimator/internal/buildwise/http"
	"github.com/buildwise/smart-estimator/internal/buildwise/render"
	"github.com/buildwise/smart-estimator/internal/buildwise/session"
)

type RouterDeps struct {
	ServiceName     string
	Version         string
	AllowedOrigins  []string
	SubmitRateLimit float64
	SubmitRateBurst int
	Backend         *backend.Client
	Sessions        *session.Store
	Logger          *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", bwhttp.SessionHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{bwhttp.SessionHeader, middleware.RequestIDHeader},
		AllowCredentials: true,
	}))
	r.SetHTMLTemplate(render.Templates())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Backend)
	healthHandler.RegisterRoutes(r)

	limiter := bwhttp.NewLimiter(dep.SubmitRateLimit, dep.SubmitRateBurst)
	bwhttp.Register(r, dep.Backend, dep.Sessions, limiter)

	return r
}
