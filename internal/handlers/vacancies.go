package handlers

import (
	"net/http"

	"github.com/dkurbatov/career-center/internal/services"
	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	service *services.VacancyService
}

func NewVacancyHandler(service *services.VacancyService) *VacancyHandler {
	return &VacancyHandler{service: service}
}

// List is GET /vacancies. With no parameters it returns all active
// vacancies, newest first.
func (h *VacancyHandler) List(c *gin.Context) {

	page, err := h.service.List(c.Request.Context(), listingParams(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListMine is GET /vacancies/mine: the caller's company vacancies,
// archived included. Anonymous callers get an empty page.
func (h *VacancyHandler) ListMine(c *gin.Context) {

	page, err := h.service.ListMine(c.Request.Context(), currentUser(c), listingParams(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *VacancyHandler) Get(c *gin.Context) {

	id, ok := parseID(c, "id", "Invalid vacancy ID")
	if !ok {
		return
	}

	vacancy, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vacancy)
}

func (h *VacancyHandler) Create(c *gin.Context) {

	var input services.VacancyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload: " + err.Error()})
		return
	}

	vacancy, err := h.service.Create(c.Request.Context(), input, currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vacancy)
}

func (h *VacancyHandler) Update(c *gin.Context) {

	id, ok := parseID(c, "id", "Invalid vacancy ID")
	if !ok {
		return
	}

	var input services.VacancyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload: " + err.Error()})
		return
	}

	vacancy, err := h.service.Update(c.Request.Context(), id, input, currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vacancy)
}

// Archive is POST /vacancies/:id/archive. Calling it on an archived
// vacancy succeeds and returns the unchanged representation.
func (h *VacancyHandler) Archive(c *gin.Context) {

	id, ok := parseID(c, "id", "Invalid vacancy ID")
	if !ok {
		return
	}

	vacancy, err := h.service.Archive(c.Request.Context(), id, currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vacancy)
}

func (h *VacancyHandler) Delete(c *gin.Context) {

	id, ok := parseID(c, "id", "Invalid vacancy ID")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, currentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *VacancyHandler) History(c *gin.Context) {

	id, ok := parseID(c, "id", "Invalid vacancy ID")
	if !ok {
		return
	}

	history, err := h.service.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
