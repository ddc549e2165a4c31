package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"decarb_pathways/internal/models"
)

// @Summary      Save equipment
// @Description  Creates or replaces one equipment library entry.
// @Tags         library
// @Accept       json
// @Produce      json
// @Param        body  body  models.EquipmentSpec  true  "Equipment spec"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/library/equipment [post]
// @Security     BearerAuth
func (h *Handler) saveEquipment(c *gin.Context) {
	var spec models.EquipmentSpec
	if ok := h.bindJSONOrBadRequest(c, &spec); !ok {
		return
	}
	if err := h.services.Library.SaveEquipment(c.Request.Context(), spec); err != nil {
		if h.log != nil {
			h.log.Infow("equipment_save_rejected", "id", spec.ID, "type", spec.Type, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusSaved})
}

// @Summary      List equipment
// @Tags         library
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, equipment"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/library/equipment [get]
// @Security     BearerAuth
func (h *Handler) listEquipment(c *gin.Context) {
	items, err := h.services.Library.ListEquipment(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to list equipment", "equipment_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "equipment": items})
}

// @Summary      Get equipment
// @Tags         library
// @Produce      json
// @Param        id   path      string  true  "Equipment id"
// @Success      200  {object}  models.EquipmentSpec
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/library/equipment/{id} [get]
// @Security     BearerAuth
func (h *Handler) getEquipment(c *gin.Context) {
	spec, err := h.services.Library.GetEquipment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load equipment", "equipment_get_failed", err, "id", c.Param("id"))
		return
	}
	if spec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
		return
	}
	c.JSON(http.StatusOK, spec)
}

// @Summary      Delete equipment
// @Tags         library
// @Produce      json
// @Param        id   path      string  true  "Equipment id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/library/equipment/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteEquipment(c *gin.Context) {
	if err := h.services.Library.DeleteEquipment(c.Request.Context(), c.Param("id")); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to delete equipment", "equipment_delete_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted})
}

// @Summary      Save scenario
// @Description  Validates the equipment configuration against the library before storing it; an inconsistent scenario is rejected.
// @Tags         library
// @Accept       json
// @Produce      json
// @Param        body  body  models.ScenarioConfig  true  "Scenario config"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/library/scenarios [post]
// @Security     BearerAuth
func (h *Handler) saveScenario(c *gin.Context) {
	var cfg models.ScenarioConfig
	if ok := h.bindJSONOrBadRequest(c, &cfg); !ok {
		return
	}
	if err := h.services.Library.SaveScenario(c.Request.Context(), cfg); err != nil {
		if h.log != nil {
			h.log.Infow("scenario_save_rejected", "id", cfg.ID, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusSaved})
}

// @Summary      List scenarios
// @Tags         library
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, scenarios"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/library/scenarios [get]
// @Security     BearerAuth
func (h *Handler) listScenarios(c *gin.Context) {
	items, err := h.services.Library.ListScenarios(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to list scenarios", "scenarios_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "scenarios": items})
}

// @Summary      Get scenario
// @Tags         library
// @Produce      json
// @Param        id   path      string  true  "Scenario id"
// @Success      200  {object}  models.ScenarioConfig
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/library/scenarios/{id} [get]
// @Security     BearerAuth
func (h *Handler) getScenario(c *gin.Context) {
	cfg, err := h.services.Library.GetScenario(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load scenario", "scenario_get_failed", err, "id", c.Param("id"))
		return
	}
	if cfg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// @Summary      Delete scenario
// @Tags         library
// @Produce      json
// @Param        id   path      string  true  "Scenario id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/library/scenarios/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteScenario(c *gin.Context) {
	if err := h.services.Library.DeleteScenario(c.Request.Context(), c.Param("id")); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to delete scenario", "scenario_delete_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted})
}
