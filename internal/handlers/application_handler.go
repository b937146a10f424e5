package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/applytrack/applytrack/internal/database"
	"github.com/applytrack/applytrack/internal/dtos"
	"github.com/applytrack/applytrack/internal/identity"
	"github.com/applytrack/applytrack/internal/services"
)

// ApplicationHandler exposes the /api/applications endpoints.
type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps}
}

// authorize runs the per-request checks common to every endpoint:
// misconfiguration first, so an unset endpoint or key is reported with
// guidance even to anonymous callers, then the session.
func (h *ApplicationHandler) authorize(c *gin.Context) (*identity.User, bool) {
	if err := h.Applications.Ready(); err != nil {
		respondStoreError(c, err)
		return nil, false
	}
	user, ok := identity.Current(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized. Please sign in."})
		return nil, false
	}
	return user, true
}

// respondStoreError maps a service failure onto the error taxonomy:
// not-found, misconfiguration with operator guidance, or a generic 500
// carrying the underlying message. Nothing escapes unformatted.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
	case errors.Is(err, database.ErrMisconfigured):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Backend not configured. Set APPLYTRACK_DATABASE_URL and APPLYTRACK_SESSION_KEY and restart.",
		})
	case database.IsTableMissing(err):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Database table not found. Run the schema migration against your database.",
		})
	default:
		log.Printf("store error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// List is GET /api/applications: the caller's records, newest first.
func (h *ApplicationHandler) List(c *gin.Context) {
	user, ok := h.authorize(c)
	if !ok {
		return
	}
	apps, err := h.Applications.List(c.Request.Context(), user.ID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Get is GET /api/applications/:id.
func (h *ApplicationHandler) Get(c *gin.Context) {
	user, ok := h.authorize(c)
	if !ok {
		return
	}
	app, err := h.Applications.Get(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Create is POST /api/applications.
func (h *ApplicationHandler) Create(c *gin.Context) {
	user, ok := h.authorize(c)
	if !ok {
		return
	}
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.Applications.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// Update is PUT /api/applications/:id. Full replacement of all editable
// fields; updated_at is refreshed on success.
func (h *ApplicationHandler) Update(c *gin.Context) {
	user, ok := h.authorize(c)
	if !ok {
		return
	}
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.Applications.Update(c.Request.Context(), user.ID, c.Param("id"), &req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// Delete is DELETE /api/applications/:id. Succeeds whether or not the
// record existed.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	user, ok := h.authorize(c)
	if !ok {
		return
	}
	if err := h.Applications.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HealthCheck is GET /api/health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
