package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studyzap/studyzap-backend/internal/quiz"
	"github.com/studyzap/studyzap-backend/internal/response"
	"github.com/studyzap/studyzap-backend/internal/service"
)

// PaperHandler serves paper metadata and questions (answer key stripped).
type PaperHandler struct {
	papers *service.PaperService
}

// NewPaperHandler creates a new PaperHandler.
func NewPaperHandler(papers *service.PaperService) *PaperHandler {
	return &PaperHandler{papers: papers}
}

// Get godoc
// GET /api/v1/papers/:paper_id
func (h *PaperHandler) Get(c *gin.Context) {
	payload, err := h.papers.GetPayload(c.Request.Context(), c.Param("paper_id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaperNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, quiz.ErrPaperIntegrity):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrPaperIntegrity)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.Success(c, http.StatusOK, payload)
}
