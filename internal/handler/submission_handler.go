package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ottodot/mathpal-backend/internal/llm"
	"github.com/ottodot/mathpal-backend/internal/model"
	"github.com/ottodot/mathpal-backend/internal/response"
	"github.com/ottodot/mathpal-backend/internal/service"
	"github.com/ottodot/mathpal-backend/internal/validator"
)

type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// SubmitAnswer godoc
// POST /api/v1/submit-answer
// Grades the answer, records the submission, and returns it with feedback.
func (h *SubmissionHandler) SubmitAnswer(c *gin.Context) {
	var req model.SubmitAnswerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.submissionService.Submit(c.Request.Context(), req.SessionID, req.UserAnswer.Float64())
	if err != nil {
		var notCfg *llm.ErrNotConfigured
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
		case errors.Is(err, service.ErrSubmissionInProgress):
			response.Fail(c, http.StatusConflict, response.ErrSubmissionInProgress)
		case errors.As(err, &notCfg):
			response.Fail(c, http.StatusInternalServerError, response.ErrLLMNotConfigured)
		case errors.Is(err, service.ErrFeedbackFailed):
			response.Fail(c, http.StatusBadGateway, response.ErrFeedbackFailed)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"submission": result})
}
