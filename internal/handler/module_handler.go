package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studyzap/studyzap-backend/internal/model"
	"github.com/studyzap/studyzap-backend/internal/response"
	"github.com/studyzap/studyzap-backend/internal/service"
	"github.com/studyzap/studyzap-backend/internal/validator"
)

// ModuleHandler serves the dashboard's module listing and detail views.
type ModuleHandler struct {
	modules *service.ModuleService
}

// NewModuleHandler creates a new ModuleHandler.
func NewModuleHandler(modules *service.ModuleService) *ModuleHandler {
	return &ModuleHandler{modules: modules}
}

// List godoc
// GET /api/v1/modules
// Returns all modules with aggregate progress.
func (h *ModuleHandler) List(c *gin.Context) {
	modules, err := h.modules.ListProgress(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if modules == nil {
		modules = []model.ModuleProgress{}
	}
	response.Success(c, http.StatusOK, gin.H{"modules": modules})
}

// Get godoc
// GET /api/v1/modules/:module_id
// Returns one module with progress and its paper summaries.
func (h *ModuleHandler) Get(c *gin.Context) {
	detail, err := h.modules.GetDetail(c.Request.Context(), c.Param("module_id"))
	if err != nil {
		if errors.Is(err, service.ErrModuleNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// Create godoc
// POST /api/v1/modules
func (h *ModuleHandler) Create(c *gin.Context) {
	var req model.CreateModuleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	m := &model.Module{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.modules.Create(c.Request.Context(), m); err != nil {
		response.Fail(c, http.StatusConflict, response.ErrConflict)
		return
	}
	response.Success(c, http.StatusCreated, m)
}
