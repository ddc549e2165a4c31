package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"decarb_pathways/internal/service"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK      = "ok"
	statusSaved   = "saved"
	statusDeleted = "deleted"

	errNotFound        = "not found"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Save load profile
// @Description  Stores an hourly heating/cooling/outdoor-temperature timeline. Rows may carry explicit timestamps or hour_of_year indexes resolved against year.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body  service.ProfileParams  true  "Profile payload"
// @Success      200   {object}  map[string]interface{}  "status, id, hours"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/profiles [post]
// @Security     BearerAuth
func (h *Handler) saveProfile(c *gin.Context) {
	var req service.ProfileParams
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	profile, err := h.services.Profiles.Save(c.Request.Context(), req)
	if err != nil {
		// Validation failures are the common case here; report them as 400.
		if h.log != nil {
			h.log.Infow("profile_save_rejected", "name", req.Name, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": statusSaved,
		"id":     profile.ID,
		"hours":  len(profile.Hours),
	})
}

// @Summary      List load profiles
// @Description  Returns profile headers without hourly data.
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, profiles"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/profiles [get]
// @Security     BearerAuth
func (h *Handler) listProfiles(c *gin.Context) {
	profiles, err := h.services.Profiles.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to list profiles", "profiles_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(profiles),
		"profiles": profiles,
	})
}

// @Summary      Get load profile
// @Tags         profiles
// @Produce      json
// @Param        id   path      string  true  "Profile id"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/profiles/{id} [get]
// @Security     BearerAuth
func (h *Handler) getProfile(c *gin.Context) {
	profile, err := h.services.Profiles.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load profile", "profile_get_failed", err, "id", c.Param("id"))
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// @Summary      Delete load profile
// @Tags         profiles
// @Produce      json
// @Param        id   path      string  true  "Profile id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/profiles/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteProfile(c *gin.Context) {
	if err := h.services.Profiles.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to delete profile", "profile_delete_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusDeleted})
}
