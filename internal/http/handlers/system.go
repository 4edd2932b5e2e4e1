package handlers

import (
	"net/http"

	"loadhaul/internal/config"
	"loadhaul/internal/geo"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves liveness and diagnostics.
type SystemHandler struct {
	Geo *geo.Resolver
}

// GET /api/health
func (h SystemHandler) Health(c *gin.Context) {
	out := gin.H{
		"status": "ok",
		"db":     "disabled",
	}
	if h.Geo != nil {
		out["geo_cache_size"] = h.Geo.CacheSize()
	}
	if config.DB != nil {
		if err := config.DB.PingContext(c.Request.Context()); err != nil {
			out["db"] = "unreachable"
		} else {
			out["db"] = "ok"
		}
	}
	c.JSON(http.StatusOK, out)
}
