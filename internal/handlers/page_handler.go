package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/applytrack/applytrack/internal/identity"
	"github.com/applytrack/applytrack/internal/models"
	"github.com/applytrack/applytrack/internal/services"
	"github.com/applytrack/applytrack/internal/web"
)

// PageHandler serves the server-rendered shell pages. The dashboard is
// rendered with the caller's records so the first paint is complete; the
// embedded script owns all state afterwards.
type PageHandler struct {
	Applications *services.ApplicationService
	Renderer     *web.Renderer
}

func NewPageHandler(apps *services.ApplicationService, r *web.Renderer) *PageHandler {
	return &PageHandler{Applications: apps, Renderer: r}
}

type dashboardData struct {
	Email  string
	Apps   []models.JobApplication
	Counts web.StatusCounts
	Error  string
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	user, ok := identity.Current(c)
	if !ok {
		// the session guard redirects anonymous visitors before this runs
		c.Redirect(http.StatusFound, "/login")
		return
	}

	data := dashboardData{Email: user.Email, Apps: []models.JobApplication{}}
	apps, err := h.Applications.List(c.Request.Context(), user.ID)
	if err != nil {
		// render the empty dashboard with the error banner instead of
		// failing the whole page
		data.Error = err.Error()
	} else {
		data.Apps = apps
	}
	data.Counts = web.CountByStatus(data.Apps)

	h.Renderer.HTML(c, http.StatusOK, "dashboard", data)
}

func (h *PageHandler) Login(c *gin.Context) {
	h.Renderer.HTML(c, http.StatusOK, "login", nil)
}

func (h *PageHandler) Signup(c *gin.Context) {
	h.Renderer.HTML(c, http.StatusOK, "signup", nil)
}
