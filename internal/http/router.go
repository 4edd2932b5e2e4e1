package api

import (
	stdhttp "net/http"

	intconfig "loadhaul/internal/config"
	"loadhaul/internal/domain"
	"loadhaul/internal/fuel"
	"loadhaul/internal/geo"
	h "loadhaul/internal/http/handlers"
	"loadhaul/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps carries the shared engine pieces the router needs.
type Deps struct {
	Geo    *geo.Resolver
	Prices fuel.PriceResolver
	Remote *domain.RemoteEstimateConfig
}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	system := h.SystemHandler{Geo: deps.Geo}
	estimate := h.EstimateHandler{Geo: deps.Geo, Prices: deps.Prices, Remote: deps.Remote}

	api := r.Group("/api")
	{
		api.GET("/health", system.Health)

		authed := api.Group("", middleware.Auth(env.JWTSecret, env.APIKeyHash))

		estimates := authed.Group("/estimates")
		estimates.POST("/mileage", estimate.Mileage)
		estimates.POST("/fuel", estimate.Fuel)
		estimates.POST("/breakdown", estimate.Breakdown)

		summaries := authed.Group("/summaries")
		summaries.POST("/monthly", estimate.MonthlySummary)
		summaries.POST("/monthly/statement", estimate.MonthlyStatement)
	}

	return r
}
