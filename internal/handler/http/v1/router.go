package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты движка присутствия
	presence := api.Group("/presence")
	{
		presence.POST("/samples", h.submitSample)
		presence.POST("/events", h.submitRegionEvent)
		presence.GET("/:userId", h.getPresence)
		presence.GET("/:userId/regions", h.getMonitoredRegions)
		presence.POST("/:userId/regions/refresh", h.refreshMonitoredRegions)
		presence.POST("/:userId/stop", h.stopMonitoring)
		presence.DELETE("/:userId", h.signOut)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
