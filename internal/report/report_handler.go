package report

import (
	"github.com/pedrodese/Check-Time/internal/shared/apperror"
	"github.com/pedrodese/Check-Time/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Generate answers with the report file itself, not an envelope: the
// admin UI expects a direct download.
func (h *Handler) Generate(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	format := c.Query("format")

	artifact, err := h.service.GenerateReport(c.Request.Context(), startDate, endDate, format)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	c.FileAttachment(artifact.FilePath, artifact.FileName)
}
