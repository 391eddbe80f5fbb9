package handlers

import (
	"fmt"
	"net/http"

	"github.com/dkurbatov/career-center/internal/services"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	service *services.ExportService
}

func NewExportHandler(service *services.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// CompanyVacancies is GET /export/vacancies/company/:company_id. The
// response is an xlsx attachment named after the company identifier.
func (h *ExportHandler) CompanyVacancies(c *gin.Context) {

	companyID, ok := parseID(c, "company_id", "Invalid company ID")
	if !ok {
		return
	}

	buf, err := h.service.CompanyVacancies(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="vacancies_%d.xlsx"`, companyID))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
