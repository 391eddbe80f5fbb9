package handlers

import (
	"net/http"

	"github.com/dkurbatov/career-center/internal/services"
	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	service *services.ApplicationService
}

func NewApplicationHandler(service *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Apply is POST /vacancies/:id/apply. A second application from the same
// user to the same vacancy yields 409.
func (h *ApplicationHandler) Apply(c *gin.Context) {

	id, ok := parseID(c, "id", "Invalid vacancy ID")
	if !ok {
		return
	}

	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var input services.ApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload: " + err.Error()})
		return
	}

	application, err := h.service.Apply(c.Request.Context(), user, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) ListForVacancy(c *gin.Context) {

	id, ok := parseID(c, "id", "Invalid vacancy ID")
	if !ok {
		return
	}

	applications, err := h.service.ListForVacancy(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {

	id, ok := parseID(c, "id", "Invalid application ID")
	if !ok {
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload: " + err.Error()})
		return
	}

	application, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status, currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}
