package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SchmidtMatheus/gym-simulator-web/internal/api"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/apperr"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetStudentReport godoc
// @Summary      Student usage report
// @Description  Current-month class consumption, remaining allowance and
// @Description  class-type distribution.
// @Tags         reports
// @Produce      json
// @Param        studentID  path      string  true  "Student ID"
// @Success      200        {object}  StudentReport
// @Failure      404        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /api/students/{studentID}/report [get]
func (h *Handler) GetStudentReport(c *gin.Context) {
	report, err := h.service.GetStudentReport(c.Request.Context(), c.Param("studentID"))
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), api.ErrorResponse{Message: apperr.MessageOf(err)})
		return
	}

	c.JSON(http.StatusOK, report)
}
