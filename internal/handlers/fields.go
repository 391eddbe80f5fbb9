package handlers

import (
	"context"
	"net/http"

	"github.com/dkurbatov/career-center/internal/entities"
	"github.com/gin-gonic/gin"
)

type fieldLister interface {
	List(ctx context.Context) ([]entities.FieldOfStudy, error)
}

// FieldHandler serves the FieldOfStudy list backing the specialization
// filter dropdown.
type FieldHandler struct {
	fields fieldLister
}

func NewFieldHandler(fields fieldLister) *FieldHandler {
	return &FieldHandler{fields: fields}
}

func (h *FieldHandler) List(c *gin.Context) {

	fields, err := h.fields.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fields)
}
