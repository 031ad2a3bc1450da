package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/studyzap/studyzap-backend/internal/model"
	"github.com/studyzap/studyzap-backend/internal/quiz"
	"github.com/studyzap/studyzap-backend/internal/response"
	"github.com/studyzap/studyzap-backend/internal/service"
	"github.com/studyzap/studyzap-backend/internal/validator"
)

// SessionHandler drives a single paper attempt over HTTP: open, answer,
// navigate, submit, review, reset, close.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Open godoc
// POST /api/v1/papers/:paper_id/sessions
// Loads and validates the paper, then starts a fresh attempt.
func (h *SessionHandler) Open(c *gin.Context) {
	snap, err := h.sessions.Open(c.Request.Context(), c.Param("paper_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, snap)
}

// Get godoc
// GET /api/v1/sessions/:session_id
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	snap, err := h.sessions.Get(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, snap)
}

// SelectAnswer godoc
// POST /api/v1/sessions/:session_id/answer
// Records an option for the current question, overwriting any previous
// selection.
func (h *SessionHandler) SelectAnswer(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req model.SelectAnswerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	snap, err := h.sessions.SelectAnswer(id, *req.OptionIndex)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, snap)
}

// GoTo godoc
// POST /api/v1/sessions/:session_id/goto
// Jumps to a question; out-of-range targets clamp to the paper's bounds.
func (h *SessionHandler) GoTo(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req model.GoToRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	snap, err := h.sessions.GoTo(id, *req.Index)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, snap)
}

// Next godoc
// POST /api/v1/sessions/:session_id/next
func (h *SessionHandler) Next(c *gin.Context) {
	h.navigate(c, h.sessions.Next)
}

// Previous godoc
// POST /api/v1/sessions/:session_id/previous
func (h *SessionHandler) Previous(c *gin.Context) {
	h.navigate(c, h.sessions.Previous)
}

// Submit godoc
// POST /api/v1/sessions/:session_id/submit
// Grades the attempt and returns score, percentage, and review. Requires
// at least one answered question.
func (h *SessionHandler) Submit(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	result, err := h.sessions.Submit(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Result godoc
// GET /api/v1/sessions/:session_id/result
// Returns the graded result of a submitted attempt.
func (h *SessionHandler) Result(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	result, err := h.sessions.Result(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Reset godoc
// POST /api/v1/sessions/:session_id/reset
// Returns the attempt to its initial state ("Try Again").
func (h *SessionHandler) Reset(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	snap, err := h.sessions.Reset(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, snap)
}

// Close godoc
// DELETE /api/v1/sessions/:session_id
// Destroys the attempt (navigating away from the paper).
func (h *SessionHandler) Close(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	h.sessions.Close(id)
	response.Success(c, http.StatusOK, gin.H{"closed": true})
}

func (h *SessionHandler) navigate(c *gin.Context, op func(uuid.UUID) (*service.Snapshot, error)) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	snap, err := op(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, snap)
}

func (h *SessionHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("session_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// fail maps engine and service errors onto the response taxonomy.
func (h *SessionHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrPaperNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, quiz.ErrPaperIntegrity):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrPaperIntegrity)
	case errors.Is(err, quiz.ErrSessionSubmitted):
		response.Fail(c, http.StatusConflict, response.ErrSessionSubmitted)
	case errors.Is(err, quiz.ErrNoAnswers):
		response.Fail(c, http.StatusConflict, response.ErrNoAnswers)
	case errors.Is(err, quiz.ErrOptionOutOfRange):
		response.Fail(c, http.StatusConflict, response.ErrOptionOutOfRange)
	case errors.Is(err, quiz.ErrNotSubmitted):
		response.Fail(c, http.StatusConflict, response.ErrNotSubmitted)
	case errors.Is(err, context.Canceled):
		// The client navigated away mid-load; nothing useful to send.
		c.Abort()
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
