package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/connec_payment_sync/internal/core/ports/services"
	"github.com/SscSPs/connec_payment_sync/internal/dto"
	"github.com/SscSPs/connec_payment_sync/internal/middleware"
	"github.com/gin-gonic/gin"
)

// idMapHandler handles HTTP requests on the correspondence registry.
type idMapHandler struct {
	idMapService portssvc.IDMapSvc
}

func newIDMapHandler(svc portssvc.IDMapSvc) *idMapHandler {
	return &idMapHandler{idMapService: svc}
}

// registerIDMapRoutes registers routes related to correspondences.
func registerIDMapRoutes(rg *gin.RouterGroup, svc portssvc.IDMapSvc) {
	h := newIDMapHandler(svc)

	idMaps := rg.Group("/idmaps")
	{
		idMaps.POST("", h.recordIDMap)
		idMaps.GET("", h.listIDMaps)
		idMaps.GET("/:entityName/:localID", h.getIDMap)
		idMaps.DELETE("/:entityName/:localID", h.deleteIDMap)
	}
}

// recordIDMap godoc
// @Summary Record a correspondence
// @Description Stores the remote guid of a local record after the driver wrote it remotely
// @Tags idmaps
// @Accept  json
// @Produce  json
// @Param   idmap body dto.RecordIDMapRequest true "Correspondence"
// @Success 201 {object} dto.IDMapResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Record already mapped to another guid"
// @Failure 500 {object} map[string]string "Failed to record correspondence"
// @Security BearerAuth
// @Router /idmaps [post]
func (h *idMapHandler) recordIDMap(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordIDMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordIDMap", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Caller ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("local_entity_name", req.LocalEntityName), slog.Int64("local_id", req.LocalID))
	idMap, err := h.idMapService.RecordIDMap(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to record correspondence")
		return
	}

	logger.Info("Correspondence recorded", slog.String("remote_guid", idMap.RemoteEntityGUID))
	c.JSON(http.StatusCreated, dto.ToIDMapResponse(idMap))
}

// getIDMap godoc
// @Summary Get a correspondence
// @Tags idmaps
// @Produce  json
// @Param   entityName path string true "Local entity name"
// @Param   localID path int true "Local record ID"
// @Success 200 {object} dto.IDMapResponse
// @Failure 400 {object} map[string]string "Invalid local ID"
// @Failure 404 {object} map[string]string "Correspondence not found"
// @Security BearerAuth
// @Router /idmaps/{entityName}/{localID} [get]
func (h *idMapHandler) getIDMap(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityName, localID, ok := idMapKey(c)
	if !ok {
		return
	}

	idMap, err := h.idMapService.FindIDMap(c.Request.Context(), localID, entityName)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve correspondence")
		return
	}
	c.JSON(http.StatusOK, dto.ToIDMapResponse(idMap))
}

// deleteIDMap godoc
// @Summary Delete a correspondence
// @Tags idmaps
// @Param   entityName path string true "Local entity name"
// @Param   localID path int true "Local record ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid local ID"
// @Failure 404 {object} map[string]string "Correspondence not found"
// @Security BearerAuth
// @Router /idmaps/{entityName}/{localID} [delete]
func (h *idMapHandler) deleteIDMap(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entityName, localID, ok := idMapKey(c)
	if !ok {
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.idMapService.DeleteIDMap(c.Request.Context(), localID, entityName, actorID); err != nil {
		respondError(c, logger, err, "Failed to delete correspondence")
		return
	}
	logger.Info("Correspondence deleted", slog.String("local_entity_name", entityName), slog.Int64("local_id", localID))
	c.Status(http.StatusNoContent)
}

// listIDMaps godoc
// @Summary List correspondences
// @Description Pages through the live correspondences of one local entity name
// @Tags idmaps
// @Produce  json
// @Param   entityName query string true "Local entity name"
// @Param   limit query int false "Page size (1-500, default 50)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListIDMapsResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Security BearerAuth
// @Router /idmaps [get]
func (h *idMapHandler) listIDMaps(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListIDMapsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if params.Limit == 0 {
		params.Limit = 50
	}

	page, err := h.idMapService.ListIDMaps(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list correspondences")
		return
	}
	c.JSON(http.StatusOK, page)
}

// idMapKey parses the (entityName, localID) path parameters, writing a 400 when invalid.
func idMapKey(c *gin.Context) (string, int64, bool) {
	entityName := c.Param("entityName")
	localID, err := strconv.ParseInt(c.Param("localID"), 10, 64)
	if err != nil || localID <= 0 || entityName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Local ID must be a positive integer"})
		return "", 0, false
	}
	return entityName, localID, true
}
