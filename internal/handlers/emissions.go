package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"decarb_pathways/internal/models"
)

// Request DTO for dataset import.
type importRatesRequest struct {
	Rows []models.EmissionsRow `json:"rows" binding:"required"`
}

// @Summary      Import grid-emissions dataset rows
// @Description  Bulk upsert of marginal-rate rows keyed by grid scenario, region, year, month, and hour of day. One bad row rejects the batch.
// @Tags         emissions
// @Accept       json
// @Produce      json
// @Param        body  body  importRatesRequest  true  "Dataset rows"
// @Success      200   {object}  map[string]interface{}  "status, imported"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/emissions/rates [post]
// @Security     BearerAuth
func (h *Handler) importRates(c *gin.Context) {
	var req importRatesRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	n, err := h.services.EmissionsData.ImportRates(c.Request.Context(), req.Rows)
	if err != nil {
		if h.log != nil {
			h.log.Infow("rates_import_rejected", "rows", len(req.Rows), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusSaved, "imported": n})
}

// @Summary      Get dataset rows
// @Tags         emissions
// @Produce      json
// @Param        grid_scenario  query  string  true  "Grid scenario name"  example(MidCase)
// @Param        grid_region    query  string  true  "Grid region"         example(CAISO)
// @Success      200  {object}  map[string]interface{}  "count, rows"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/emissions/rates [get]
// @Security     BearerAuth
func (h *Handler) getRates(c *gin.Context) {
	gridScenario := c.Query("grid_scenario")
	gridRegion := c.Query("grid_region")
	if gridScenario == "" || gridRegion == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grid_scenario and grid_region are required"})
		return
	}

	rows, err := h.services.EmissionsData.GetRates(c.Request.Context(), gridScenario, gridRegion)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load rates", "rates_get_failed", err,
			"grid_scenario", gridScenario, "grid_region", gridRegion)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "rows": rows})
}

// @Summary      Save emissions config
// @Description  Stores a named emissions scenario: dataset slice, requested grid years, rate type, and SR/LR weighting.
// @Tags         emissions
// @Accept       json
// @Produce      json
// @Param        body  body  models.EmissionsConfig  true  "Emissions config"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/emissions/configs [post]
// @Security     BearerAuth
func (h *Handler) saveEmissionsConfig(c *gin.Context) {
	var cfg models.EmissionsConfig
	if ok := h.bindJSONOrBadRequest(c, &cfg); !ok {
		return
	}
	if err := h.services.EmissionsData.SaveConfig(c.Request.Context(), cfg); err != nil {
		if h.log != nil {
			h.log.Infow("emissions_config_rejected", "id", cfg.ID, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusSaved})
}

// @Summary      List emissions configs
// @Tags         emissions
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, configs"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/emissions/configs [get]
// @Security     BearerAuth
func (h *Handler) listEmissionsConfigs(c *gin.Context) {
	configs, err := h.services.EmissionsData.ListConfigs(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to list configs", "emissions_configs_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(configs), "configs": configs})
}

// @Summary      Get emissions config
// @Tags         emissions
// @Produce      json
// @Param        id   path      string  true  "Config id"
// @Success      200  {object}  models.EmissionsConfig
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/emissions/configs/{id} [get]
// @Security     BearerAuth
func (h *Handler) getEmissionsConfig(c *gin.Context) {
	cfg, err := h.services.EmissionsData.GetConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load config", "emissions_config_get_failed", err, "id", c.Param("id"))
		return
	}
	if cfg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
		return
	}
	c.JSON(http.StatusOK, cfg)
}
