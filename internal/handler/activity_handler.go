package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mergington/activity-registry/internal/service"
	"github.com/mergington/activity-registry/pkg/response"
)

// StaticIndexPath is where the root endpoint sends browsers. The static
// front end is served by a separate process behind the same origin.
const StaticIndexPath = "/static/index.html"

// ActivityHandler handles activity registry HTTP requests
type ActivityHandler struct {
	activityService service.ActivityService
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// Root handles GET / and redirects to the static landing page
func (h *ActivityHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, StaticIndexPath)
}

// List handles GET /activities
func (h *ActivityHandler) List(c *gin.Context) {
	activities, err := h.activityService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list activities"))
		return
	}

	c.JSON(http.StatusOK, activities)
}

// Signup handles POST /activities/:name/signup
func (h *ActivityHandler) Signup(c *gin.Context) {
	activityName := c.Param("name")
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Email is required"))
		return
	}

	result, err := h.activityService.Signup(c.Request.Context(), activityName, email)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Activity not found"))
			return
		}
		if errors.Is(err, service.ErrAlreadySignedUp) {
			c.JSON(http.StatusBadRequest, response.Detail("Student already signed up for this activity"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to sign up"))
		return
	}

	c.JSON(http.StatusOK, result)
}

// Unregister handles DELETE /activities/:name/unregister
func (h *ActivityHandler) Unregister(c *gin.Context) {
	activityName := c.Param("name")
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Email is required"))
		return
	}

	result, err := h.activityService.Unregister(c.Request.Context(), activityName, email)
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Activity not found"))
			return
		}
		if errors.Is(err, service.ErrNotRegistered) {
			c.JSON(http.StatusBadRequest, response.Detail("Student is not registered for this activity"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to unregister"))
		return
	}

	c.JSON(http.StatusOK, result)
}
