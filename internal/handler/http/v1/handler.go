package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/zone_presence_engine/internal/config"
	"github.com/shenikar/zone_presence_engine/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	presenceService service.PresenceService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(presenceService service.PresenceService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		presenceService: presenceService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Submit a polled GPS fix
// @Description Submit a periodic GPS fix for presence evaluation. Requires API key.
// @Tags Presence
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sample body SubmitSampleRequest true "Polled fix"
// @Success 200 {object} EvaluationResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or invalid sample"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Zone catalog unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /presence/samples [post]
func (h *Handler) submitSample(c *gin.Context) {
	var input SubmitSampleRequest
	log := h.logger.WithField("method", "submitSample")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sample := SampleDTOToModel(input)
	result, err := h.presenceService.ProcessSample(c.Request.Context(), input.UserID, sample)
	if err != nil {
		h.respondEvaluationError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ResultToEvaluationResponse(result))
}

// @Summary Submit an OS region-monitoring event
// @Description Submit a region enter/exit callback with the device's current coordinates. Requires API key.
// @Tags Presence
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param event body RegionEventRequest true "Region event"
// @Success 200 {object} EvaluationResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or invalid sample"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Zone catalog unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /presence/events [post]
func (h *Handler) submitRegionEvent(c *gin.Context) {
	var input RegionEventRequest
	log := h.logger.WithField("method", "submitRegionEvent")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	zoneID, err := uuid.Parse(input.ZoneID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}

	sample := RegionEventDTOToModel(input, zoneID)
	result, err := h.presenceService.ProcessSample(c.Request.Context(), input.UserID, sample)
	if err != nil {
		h.respondEvaluationError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ResultToEvaluationResponse(result))
}

// respondEvaluationError переводит ошибки прохода оценки в HTTP-статусы
func (h *Handler) respondEvaluationError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidSample):
		log.WithError(err).Warn("Sample rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location sample"})
	case errors.Is(err, service.ErrCatalogUnavailable):
		log.WithError(err).Error("Zone catalog unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "zone catalog unavailable"})
	default:
		log.WithError(err).Error("Failed to process sample in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get current presence
// @Description Get the set of zones the user currently occupies. Requires API key.
// @Tags Presence
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Success 200 {object} PresenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /presence/{userId} [get]
func (h *Handler) getPresence(c *gin.Context) {
	userID := c.Param("userId")
	log := h.logger.WithField("method", "getPresence").WithField("user_id", userID)

	state, err := h.presenceService.GetPresence(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to get presence from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, StateToPresenceResponse(state))
}

// @Summary Get the active monitored region set
// @Description Get the capacity-capped zone set the device should register with the OS region-monitoring primitive. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Success 200 {array} ZoneResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Zone catalog unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /presence/{userId}/regions [get]
func (h *Handler) getMonitoredRegions(c *gin.Context) {
	userID := c.Param("userId")
	log := h.logger.WithField("method", "getMonitoredRegions").WithField("user_id", userID)

	zones, err := h.presenceService.MonitoredRegions(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrCatalogUnavailable) {
			log.WithError(err).Error("Zone catalog unavailable")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "zone catalog unavailable"})
			return
		}
		log.WithError(err).Error("Failed to get monitored regions from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ZonesToResponses(zones))
}

// @Summary Rebuild the active monitored region set
// @Description Invalidate the cached zone catalog and rebuild the active region set after a catalog change. Requires API key.
// @Tags Regions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Success 200 {array} ZoneResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Zone catalog unavailable"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /presence/{userId}/regions/refresh [post]
func (h *Handler) refreshMonitoredRegions(c *gin.Context) {
	userID := c.Param("userId")
	log := h.logger.WithField("method", "refreshMonitoredRegions").WithField("user_id", userID)

	zones, err := h.presenceService.RefreshMonitoredZones(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrCatalogUnavailable) {
			log.WithError(err).Error("Zone catalog unavailable")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "zone catalog unavailable"})
			return
		}
		log.WithError(err).Error("Failed to refresh monitored regions in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ZonesToResponses(zones))
}

// @Summary Stop monitoring
// @Description Deregister all monitored regions without clearing presence state. Requires API key.
// @Tags Presence
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /presence/{userId}/stop [post]
func (h *Handler) stopMonitoring(c *gin.Context) {
	userID := c.Param("userId")
	log := h.logger.WithField("method", "stopMonitoring").WithField("user_id", userID)

	if err := h.presenceService.StopMonitoring(c.Request.Context(), userID); err != nil {
		log.WithError(err).Error("Failed to stop monitoring in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to stop monitoring"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Sign out
// @Description Deregister all monitored regions and clear persisted presence state. Requires API key.
// @Tags Presence
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /presence/{userId} [delete]
func (h *Handler) signOut(c *gin.Context) {
	userID := c.Param("userId")
	log := h.logger.WithField("method", "signOut").WithField("user_id", userID)

	if err := h.presenceService.SignOut(c.Request.Context(), userID); err != nil {
		log.WithError(err).Error("Failed to sign out in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign out"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
