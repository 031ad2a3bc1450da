package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/studyzap/studyzap-backend/internal/model"
	"github.com/studyzap/studyzap-backend/internal/response"
	"github.com/studyzap/studyzap-backend/internal/service"
	"github.com/studyzap/studyzap-backend/internal/validator"
)

// GenerationHandler handles paper-generation job requests.
type GenerationHandler struct {
	generations *service.GenerationService
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(generations *service.GenerationService) *GenerationHandler {
	return &GenerationHandler{generations: generations}
}

// Create godoc
// POST /api/v1/generations
func (h *GenerationHandler) Create(c *gin.Context) {
	var req model.CreateGenerationRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	job, err := h.generations.Enqueue(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrModuleNotFound), errors.Is(err, service.ErrMaterialNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusAccepted, job)
}

// Get godoc
// GET /api/v1/generations/:job_id
func (h *GenerationHandler) Get(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	job, err := h.generations.GetJob(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, job)
}
