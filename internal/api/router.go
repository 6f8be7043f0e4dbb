package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the public API engine.
func NewRouter(log *slog.Logger, h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/lookups", h.SubmitLookup)
		v1.GET("/lookups/current", h.CurrentLookup)
		v1.GET("/map.geojson", h.MapLayer)

		vehicles := v1.Group("/vehicles")
		vehicles.GET("", h.ListVehicles)
		vehicles.POST("", h.CreateVehicle)
		vehicles.DELETE("/:id", h.DeleteVehicle)
		vehicles.PUT("/:id/select", h.SelectVehicle)
	}

	return router
}
