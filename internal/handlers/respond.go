package handlers

import (
	"net/http"
	"strconv"

	"github.com/dkurbatov/career-center/internal/logger"
	"github.com/dkurbatov/career-center/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// respondError maps the service error taxonomy onto HTTP. Filter errors
// carry a plain-text reason; mutation errors carry a field map; anything
// unexpected is logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {

	var filterErr *services.FilterError
	var validationErrs services.ValidationErrors

	switch {
	case errors.As(err, &filterErr):
		c.String(http.StatusBadRequest, filterErr.Reason)
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErrs})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrDuplicateApplication):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeUnknown).
			Errorf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// parseID validates a numeric path segment. A non-numeric id is a client
// error, never a server fault.
func parseID(c *gin.Context, param, reason string) (uint, bool) {

	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, reason)
		return 0, false
	}
	return uint(id), true
}

func listingParams(c *gin.Context) services.ListingParams {
	return services.ListingParams{
		Position:        c.Query("position"),
		Specialization:  c.Query("specialization"),
		EmploymentType:  c.Query("employment_type"),
		Experience:      c.Query("experience"),
		IsActive:        c.Query("is_active"),
		SalaryMin:       c.Query("salary_min"),
		City:            c.Query("city"),
		CompanyIndustry: c.Query("company__industry"),
		Ordering:        c.Query("ordering"),
		Page:            c.Query("page"),
		PageSize:        c.Query("page_size"),
	}
}
