package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"decarb_pathways/internal/engine"
	"decarb_pathways/internal/service"
)

// @Summary      Execute run
// @Description  Runs the dispatch + emissions pipeline for a stored {profile, scenario, emissions config} triple and records the outcome. Input problems (missing references, inconsistent scenarios, dataset gaps) come back as 400; the failed run is still recorded.
// @Tags         runs
// @Accept       json
// @Produce      json
// @Param        body  body  service.RunParams  true  "Run inputs"
// @Success      200   {object}  map[string]interface{}  "status, run"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/runs [post]
// @Security     BearerAuth
func (h *Handler) executeRun(c *gin.Context) {
	var req service.RunParams
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	run, err := h.services.Runner.Execute(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidInput) ||
			errors.Is(err, engine.ErrInconsistentScenario) ||
			errors.Is(err, engine.ErrMissingEmissionsRate) {
			if h.log != nil {
				h.log.Infow("run_rejected", "scenario_id", req.ScenarioID, "err", err)
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "run failed", "run_execute_failed", err,
			"scenario_id", req.ScenarioID)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "completed", "run": run})
}

// @Summary      List runs
// @Description  Returns run records newest first.
// @Tags         runs
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, runs"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/runs [get]
// @Security     BearerAuth
func (h *Handler) listRuns(c *gin.Context) {
	runs, err := h.services.Runner.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to list runs", "runs_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(runs), "runs": runs})
}

// @Summary      Latest run
// @Tags         runs
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/runs/latest [get]
// @Security     BearerAuth
func (h *Handler) latestRun(c *gin.Context) {
	run, err := h.services.Runner.Latest(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load latest run", "run_latest_failed", err)
		return
	}
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no runs yet"})
		return
	}
	c.JSON(http.StatusOK, run)
}

// @Summary      Get run
// @Tags         runs
// @Produce      json
// @Param        id   path      string  true  "Run id"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/runs/{id} [get]
// @Security     BearerAuth
func (h *Handler) getRun(c *gin.Context) {
	run, err := h.services.Runner.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load run", "run_get_failed", err, "id", c.Param("id"))
		return
	}
	if run == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
		return
	}
	c.JSON(http.StatusOK, run)
}
